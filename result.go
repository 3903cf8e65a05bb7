package assertor

import (
	"errors"
	"slices"
	"strings"
)

// ErrAssertionFailed is the sentinel error for failed assertions.
var ErrAssertionFailed = errors.New("assertion failed")

// AssertionResult is the outcome of one failed assertion evaluation: the
// subject's description plus the ordered sequence of facts explaining the
// failure. It is constructed exactly once per evaluation and consumed by the
// bound return strategy.
type AssertionResult struct {
	description string
	facts       []Fact
}

// Description returns the human-readable label of the subject under test.
func (result *AssertionResult) Description() string {
	return result.description
}

// Facts returns the ordered fact sequence. The returned slice is a copy;
// results are immutable after conclusion.
func (result *AssertionResult) Facts() []Fact {
	return slices.Clone(result.facts)
}

// GenerateMessage renders the full failure message: the description line
// followed by each fact line in insertion order. Rendering is pure; the same
// result always produces identical text.
func (result *AssertionResult) GenerateMessage() string {
	var sb strings.Builder

	sb.WriteString("assertion failed: ")
	sb.WriteString(result.description)

	for _, fact := range result.facts {
		sb.WriteString("\n")
		sb.WriteString(fact.String())
	}

	return sb.String()
}

// FailureError is the panic payload of the fatal return strategy. It carries
// the full structured result so recovered callers lose no information.
type FailureError struct {
	Result *AssertionResult
}

// Error returns the rendered failure message.
func (failure *FailureError) Error() string {
	if failure == nil || failure.Result == nil {
		return ErrAssertionFailed.Error()
	}

	return failure.Result.GenerateMessage()
}

// Unwrap returns the sentinel assertion error for errors.Is.
func (failure *FailureError) Unwrap() error {
	return ErrAssertionFailed
}

// ResultBuilder accumulates facts for one assertion outcome and concludes it
// through the subject's return strategy. Builders are started with
// Subject.NewResult and used exactly once.
type ResultBuilder[R any] struct {
	result   *AssertionResult
	strategy ReturnStrategy[R]
}

// AddFact appends a labeled key/value fact.
func (builder *ResultBuilder[R]) AddFact(key, value string) *ResultBuilder[R] {
	builder.result.facts = append(builder.result.facts, NewFact(key, value))
	return builder
}

// AddSimpleFact appends a free-form statement fact.
func (builder *ResultBuilder[R]) AddSimpleFact(value string) *ResultBuilder[R] {
	builder.result.facts = append(builder.result.facts, NewSimpleFact(value))
	return builder
}

// AddSplitter appends a splitter fact.
func (builder *ResultBuilder[R]) AddSplitter() *ResultBuilder[R] {
	builder.result.facts = append(builder.result.facts, NewSplitter())
	return builder
}

// DoOK concludes the assertion as passed.
func (builder *ResultBuilder[R]) DoOK() R {
	return builder.strategy.DoOK()
}

// DoFail concludes the assertion as failed, handing the accumulated result to
// the bound strategy.
func (builder *ResultBuilder[R]) DoFail() R {
	return builder.strategy.DoFail(builder.result)
}
