package assertor

import "fmt"

// usageErrNotFailed aborts meta-assertions applied to a passed outcome.
// Asserting failure structure on a success is a malformed test, not a normal
// assertion failure, so it never routes through the return strategy.
const usageErrNotFailed = "Because this is assertion for error message."

// mustFailedResult extracts the structured failure from a check outcome
// subject, aborting on a passed outcome.
func mustFailedResult[R any](subject *Subject[CheckResult, R]) *AssertionResult {
	result := subject.Actual().Result()
	if result == nil {
		panic(usageErrNotFailed)
	}

	return result
}

// FactsAre asserts the failed outcome's fact sequence equals expected:
// same facts, same order, same length.
func FactsAre[R any](subject *Subject[CheckResult, R], expected []Fact) R {
	facts := Derive(subject,
		mustFailedResult(subject).Facts(),
		subject.DescriptionOrExpr()+".facts()",
		nil)

	return ContainsExactlyInOrder(facts, expected)
}

// FactsAreAtLeast asserts expected is an in-order subsequence of the failed
// outcome's fact sequence, allowing extra unmatched facts.
func FactsAreAtLeast[R any](subject *Subject[CheckResult, R], expected []Fact) R {
	facts := Derive(subject,
		mustFailedResult(subject).Facts(),
		subject.DescriptionOrExpr()+".facts()",
		nil)

	return ContainsAtLeastInOrder(facts, expected)
}

// FactValueForKey derives a subject over the value of the first key/value
// fact whose key matches. A missing key indicates a programming error in the
// test, so it aborts unconditionally with the key and the rendered outcome
// rather than reporting through the return strategy.
func FactValueForKey[R any](subject *Subject[CheckResult, R], key string) *Subject[string, R] {
	result := mustFailedResult(subject)

	for _, fact := range result.Facts() {
		if fact.IsKeyValue() && fact.Key() == key {
			return Derive(subject,
				fact.Value(),
				fmt.Sprintf("%s.[key=%s]", subject.DescriptionOrExpr(), key),
				nil)
		}
	}

	panic(fmt.Sprintf("key %q not found in assertion result.\n%s",
		key, result.GenerateMessage()))
}

// FactKeys derives a subject over the set of distinct keys among the failed
// outcome's key/value facts. Simple and splitter facts are ignored;
// duplicate keys collapse and order is not preserved.
func FactKeys[R any](subject *Subject[CheckResult, R]) *Subject[map[string]struct{}, R] {
	result := mustFailedResult(subject)

	keys := make(map[string]struct{})
	for _, fact := range result.Facts() {
		if fact.IsKeyValue() {
			keys[fact.Key()] = struct{}{}
		}
	}

	return Derive(subject,
		keys,
		subject.DescriptionOrExpr()+".keys()",
		nil)
}
