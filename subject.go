package assertor

// descriptionFallback labels subjects that were never given an explicit name.
const descriptionFallback = "value of"

// Subject wraps a value under test together with its assertion context: an
// optional description used in messages, an opaque chaining context some
// assertions use to carry extra comparison state, and the return strategy
// every assertion on this subject concludes through.
//
// Subjects are short-lived: created per assertion call chain, optionally
// derived into subjects over projected values, concluded exactly once, and
// discarded. They own no long-lived resources and must not cross goroutines.
type Subject[T, R any] struct {
	actual      T
	description string
	context     any
	strategy    ReturnStrategy[R]
}

// NewSubject wraps actual with the given description and return strategy.
// Entry points and custom strategies build subjects through this constructor;
// most callers use AssertThat or CheckThat instead.
func NewSubject[T, R any](actual T, description string, strategy ReturnStrategy[R]) *Subject[T, R] {
	return &Subject[T, R]{
		actual:      actual,
		description: description,
		strategy:    strategy,
	}
}

// Actual returns the wrapped value. The subject only reads it, never mutates.
func (subject *Subject[T, R]) Actual() T {
	return subject.actual
}

// Context returns the opaque chaining context, or nil.
func (subject *Subject[T, R]) Context() any {
	return subject.context
}

// Named sets the description used in failure messages and returns the
// subject for chaining.
func (subject *Subject[T, R]) Named(description string) *Subject[T, R] {
	subject.description = description
	return subject
}

// DescriptionOrExpr returns the human-readable label for messages, falling
// back to a generic placeholder when no explicit name was supplied.
func (subject *Subject[T, R]) DescriptionOrExpr() string {
	if subject.description == "" {
		return descriptionFallback
	}

	return subject.description
}

// NewResult begins constructing a fresh outcome tied to this subject's
// description and strategy.
func (subject *Subject[T, R]) NewResult() *ResultBuilder[R] {
	return &ResultBuilder[R]{
		result:   &AssertionResult{description: subject.DescriptionOrExpr()},
		strategy: subject.strategy,
	}
}

// Derive produces a subject over a projected value, preserving the parent's
// return strategy so chained assertions compose without re-specifying
// execution mode. The derived subject owns value.
//
// This is a function rather than a method because Go methods cannot introduce
// the projected value's type parameter.
func Derive[U, T, R any](subject *Subject[T, R], value U, description string, context any) *Subject[U, R] {
	return &Subject[U, R]{
		actual:      value,
		description: description,
		context:     context,
		strategy:    subject.strategy,
	}
}
