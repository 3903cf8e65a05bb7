package assertor

import "testing"

// AssertThat wraps actual in a subject bound to the fatal strategy: any
// failed assertion panics with the rendered message. Use Named to attach the
// source expression or a label.
//
// Example:
//
//	assertor.AssertThat(balance).Named("balance").IsEqualTo(expected)
func AssertThat[T any](actual T) *Subject[T, FatalVerdict] {
	return NewSubject(actual, "", fatalStrategy{})
}

// AssertWith is AssertThat bound to a testing.TB: failures are reported with
// tb.Fatal instead of a panic, which plays nicer with test output.
func AssertWith[T any](tb testing.TB, actual T) *Subject[T, FatalVerdict] {
	return NewSubject(actual, "", tbStrategy{tb: tb})
}

// CheckThat wraps actual in a subject bound to the value-returning strategy:
// the final verdict is handed back as a CheckResult usable anywhere,
// including as the subject of a further assertion.
//
// Example:
//
//	out := assertor.CheckThat(header).Named("header").IsEqualTo(want)
//	if out.Failed() {
//		log.Println(out.Result().GenerateMessage())
//	}
func CheckThat[T any](actual T) *Subject[T, CheckResult] {
	return NewSubject(actual, "", checkedStrategy{})
}
