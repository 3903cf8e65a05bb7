package assertor

import (
	"fmt"
	"slices"
)

// ContainsExactlyInOrder asserts the wrapped slice equals expected
// element-wise: same elements, same order, same length.
//
// On failure the explanation leads with the subject's label, then the
// multiset difference ("missing (n)" / "unexpected (n)", or a plain order
// statement when the contents match), then the expected/actual dump after a
// splitter.
func ContainsExactlyInOrder[E comparable, R any](subject *Subject[[]E, R], expected []E) R {
	actual := subject.Actual()
	if slices.Equal(actual, expected) {
		return subject.NewResult().DoOK()
	}

	missing, unexpected := multisetDiff(expected, actual)

	builder := subject.NewResult().
		AddFact("value of", subject.DescriptionOrExpr())

	if len(missing) > 0 {
		builder.AddFact(fmt.Sprintf("missing (%d)", len(missing)), formatList(missing))
	}

	if len(unexpected) > 0 {
		builder.AddFact(fmt.Sprintf("unexpected (%d)", len(unexpected)), formatList(unexpected))
	}

	if len(missing) == 0 && len(unexpected) == 0 {
		builder.AddSimpleFact("contents match, but order differs")
	}

	return builder.
		AddSplitter().
		AddFact("expected", formatList(expected)).
		AddFact("actual", formatList(actual)).
		DoFail()
}

// ContainsAtLeastInOrder asserts expected is an in-order subsequence of the
// wrapped slice: every expected element appears, in the given order, with
// unmatched extra elements allowed anywhere.
func ContainsAtLeastInOrder[E comparable, R any](subject *Subject[[]E, R], expected []E) R {
	actual := subject.Actual()

	// Greedy match: an element of expected that is absent, or present only
	// before its predecessor's match, stays unmatched.
	next := 0
	for _, element := range actual {
		if next < len(expected) && element == expected[next] {
			next++
		}
	}

	if next == len(expected) {
		return subject.NewResult().DoOK()
	}

	missing := expected[next:]

	return subject.NewResult().
		AddFact("value of", subject.DescriptionOrExpr()).
		AddFact(fmt.Sprintf("missing (%d)", len(missing)), formatList(missing)).
		AddSplitter().
		AddFact("expected (in order)", formatList(expected)).
		AddFact("actual", formatList(actual)).
		DoFail()
}

// Contains asserts the wrapped slice contains want at least once, at any
// position.
func Contains[E comparable, R any](subject *Subject[[]E, R], want E) R {
	actual := subject.Actual()
	if slices.Contains(actual, want) {
		return subject.NewResult().DoOK()
	}

	return subject.NewResult().
		AddFact("value of", subject.DescriptionOrExpr()).
		AddFact("expected to contain", formatElement(want)).
		AddSplitter().
		AddFact("actual", formatList(actual)).
		DoFail()
}

// multisetDiff splits expected and actual into the elements each side has
// that the other lacks, counting duplicates. Result order follows the input
// slices.
func multisetDiff[E comparable](expected, actual []E) (missing, unexpected []E) {
	counts := make(map[E]int, len(expected))
	for _, element := range expected {
		counts[element]++
	}

	for _, element := range actual {
		if counts[element] > 0 {
			counts[element]--
		} else {
			unexpected = append(unexpected, element)
		}
	}

	for _, element := range expected {
		if counts[element] > 0 {
			counts[element]--

			missing = append(missing, element)
		}
	}

	return missing, unexpected
}
