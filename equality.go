package assertor

import "github.com/google/go-cmp/cmp"

// IsEqualTo asserts deep equality between the wrapped value and expected.
// Equality and the failure diff are computed with go-cmp, so slices, maps and
// exported struct fields compare element-wise.
func (subject *Subject[T, R]) IsEqualTo(expected T) R {
	if cmp.Equal(expected, subject.actual) {
		return subject.NewResult().DoOK()
	}

	builder := subject.NewResult().
		AddFact("expected", formatElement(expected)).
		AddFact("actual", formatElement(subject.actual))

	if diff := cmp.Diff(expected, subject.actual); diff != "" {
		builder.AddSplitter().AddFact("diff (-expected +actual)", diff)
	}

	return builder.DoFail()
}

// IsNotEqualTo asserts the wrapped value differs from other.
func (subject *Subject[T, R]) IsNotEqualTo(other T) R {
	if !cmp.Equal(other, subject.actual) {
		return subject.NewResult().DoOK()
	}

	return subject.NewResult().
		AddFact("expected not to equal", formatElement(other)).
		AddFact("actual", formatElement(subject.actual)).
		DoFail()
}
