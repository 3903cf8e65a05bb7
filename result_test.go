package assertor

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// failedResult builds a failed outcome through the public builder chain.
func failedResult(description string, build func(*ResultBuilder[CheckResult])) *AssertionResult {
	builder := CheckThat(struct{}{}).Named(description).NewResult()
	build(builder)

	return builder.DoFail().Result()
}

func TestResultBuilder_PreservesInsertionOrder(t *testing.T) {
	t.Parallel()

	result := failedResult("subject", func(builder *ResultBuilder[CheckResult]) {
		builder.
			AddSimpleFact("not same").
			AddSplitter().
			AddFact("expected", "[]").
			AddFact("actual", "[1]")
	})

	require.Equal(t, []Fact{
		NewSimpleFact("not same"),
		NewSplitter(),
		NewFact("expected", "[]"),
		NewFact("actual", "[1]"),
	}, result.Facts())
}

func TestAssertionResult_FactsReturnsCopy(t *testing.T) {
	t.Parallel()

	result := failedResult("subject", func(builder *ResultBuilder[CheckResult]) {
		builder.AddFact("k", "v")
	})

	facts := result.Facts()
	facts[0] = NewSimpleFact("mutated")

	require.Equal(t, []Fact{NewFact("k", "v")}, result.Facts())
}

func TestAssertionResult_GenerateMessage(t *testing.T) {
	t.Parallel()

	result := failedResult("request.headers", func(builder *ResultBuilder[CheckResult]) {
		builder.
			AddSimpleFact("not same").
			AddSplitter().
			AddFact("expected", "[]").
			AddFact("actual", "[not same]")
	})

	want := "assertion failed: request.headers\n" +
		"not same\n" +
		"---\n" +
		"expected: []\n" +
		"actual: [not same]"
	require.Equal(t, want, result.GenerateMessage())
}

func TestAssertionResult_GenerateMessage_Idempotent(t *testing.T) {
	t.Parallel()

	result := failedResult("subject", func(builder *ResultBuilder[CheckResult]) {
		builder.AddFact("k", "v")
	})

	require.Equal(t, result.GenerateMessage(), result.GenerateMessage())
}

func TestAssertionResult_GenerateMessage_NoFacts(t *testing.T) {
	t.Parallel()

	result := failedResult("bare", func(*ResultBuilder[CheckResult]) {})

	require.Equal(t, "assertion failed: bare", result.GenerateMessage())
}

// --- FailureError ---

func TestFailureError_Error(t *testing.T) {
	t.Parallel()

	result := failedResult("subject", func(builder *ResultBuilder[CheckResult]) {
		builder.AddSimpleFact("not same")
	})

	failure := &FailureError{Result: result}
	require.Equal(t, result.GenerateMessage(), failure.Error())
}

func TestFailureError_NilReceiver(t *testing.T) {
	t.Parallel()

	var failure *FailureError
	require.Equal(t, ErrAssertionFailed.Error(), failure.Error())
}

func TestFailureError_NilResult(t *testing.T) {
	t.Parallel()

	failure := &FailureError{}
	require.Equal(t, ErrAssertionFailed.Error(), failure.Error())
}

func TestFailureError_Unwrap(t *testing.T) {
	t.Parallel()

	failure := &FailureError{}
	require.ErrorIs(t, failure, ErrAssertionFailed)
}
