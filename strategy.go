package assertor

import "testing"

// ReturnStrategy decouples how an assertion is evaluated from what happens at
// its pass/fail verdict. A strategy is selected once at the entry point and
// propagates unchanged through every derived subject in a chain.
type ReturnStrategy[R any] interface {
	// DoOK produces the caller-visible value for a passed assertion.
	DoOK() R
	// DoFail produces the caller-visible value for a failed assertion, or
	// aborts instead of returning.
	DoFail(result *AssertionResult) R
}

// FatalVerdict is the result type of fatal assertions. Carrying no data, it
// exists so fatal and checked assertions share one implementation: a fatal
// assertion that returns at all has passed.
type FatalVerdict struct{}

// fatalStrategy panics with the rendered failure. Under `go test` the panic
// fails the current test, not the process.
type fatalStrategy struct{}

var _ ReturnStrategy[FatalVerdict] = fatalStrategy{}

func (fatalStrategy) DoOK() FatalVerdict {
	return FatalVerdict{}
}

func (fatalStrategy) DoFail(result *AssertionResult) FatalVerdict {
	panic(&FailureError{Result: result})
}

// tbStrategy reports failures through testing.TB, the conventional in-test
// abort. It shares FatalVerdict with fatalStrategy.
type tbStrategy struct {
	tb testing.TB
}

var _ ReturnStrategy[FatalVerdict] = tbStrategy{}

func (strategy tbStrategy) DoOK() FatalVerdict {
	return FatalVerdict{}
}

func (strategy tbStrategy) DoFail(result *AssertionResult) FatalVerdict {
	strategy.tb.Fatal(result.GenerateMessage())
	return FatalVerdict{}
}

// CheckResult is the outcome of a checked assertion: an ordinary value the
// caller must inspect. The zero value is a passed outcome.
type CheckResult struct {
	result *AssertionResult
}

// OK reports whether the assertion passed.
func (check CheckResult) OK() bool {
	return check.result == nil
}

// Failed reports whether the assertion failed.
func (check CheckResult) Failed() bool {
	return check.result != nil
}

// Result returns the structured failure, or nil for a passed outcome.
func (check CheckResult) Result() *AssertionResult {
	return check.result
}

// checkedStrategy hands the structured result back instead of failing
// anything. This is what enables assertions about assertion outcomes.
type checkedStrategy struct{}

var _ ReturnStrategy[CheckResult] = checkedStrategy{}

func (checkedStrategy) DoOK() CheckResult {
	return CheckResult{}
}

func (checkedStrategy) DoFail(result *AssertionResult) CheckResult {
	return CheckResult{result: result}
}

// Checked returns the value-returning strategy. It is exported so external
// strategies (such as observe.Reporter) can decorate it.
func Checked() ReturnStrategy[CheckResult] {
	return checkedStrategy{}
}
