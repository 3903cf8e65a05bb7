package assertor

import (
	"cmp"
	"fmt"
	"slices"
)

// ContainsKey asserts the wrapped key set contains key.
func ContainsKey[K cmp.Ordered, R any](subject *Subject[map[K]struct{}, R], key K) R {
	if _, ok := subject.Actual()[key]; ok {
		return subject.NewResult().DoOK()
	}

	return subject.NewResult().
		AddFact("value of", subject.DescriptionOrExpr()).
		AddFact("expected to contain", formatElement(key)).
		AddSplitter().
		AddFact("actual", formatList(sortedKeys(subject.Actual()))).
		DoFail()
}

// ContainsExactlyKeys asserts the wrapped key set holds exactly the given
// keys, regardless of order. Duplicates among keys collapse, matching set
// semantics.
func ContainsExactlyKeys[K cmp.Ordered, R any](subject *Subject[map[K]struct{}, R], keys ...K) R {
	expected := make(map[K]struct{}, len(keys))
	for _, key := range keys {
		expected[key] = struct{}{}
	}

	actual := subject.Actual()

	var missing, unexpected []K

	for key := range expected {
		if _, ok := actual[key]; !ok {
			missing = append(missing, key)
		}
	}

	for key := range actual {
		if _, ok := expected[key]; !ok {
			unexpected = append(unexpected, key)
		}
	}

	if len(missing) == 0 && len(unexpected) == 0 {
		return subject.NewResult().DoOK()
	}

	slices.Sort(missing)
	slices.Sort(unexpected)

	builder := subject.NewResult().
		AddFact("value of", subject.DescriptionOrExpr())

	if len(missing) > 0 {
		builder.AddFact(fmt.Sprintf("missing (%d)", len(missing)), formatList(missing))
	}

	if len(unexpected) > 0 {
		builder.AddFact(fmt.Sprintf("unexpected (%d)", len(unexpected)), formatList(unexpected))
	}

	return builder.
		AddSplitter().
		AddFact("expected", formatList(sortedKeys(expected))).
		AddFact("actual", formatList(sortedKeys(actual))).
		DoFail()
}

// sortedKeys renders a set deterministically regardless of map iteration
// order.
func sortedKeys[K cmp.Ordered](set map[K]struct{}) []K {
	keys := make([]K, 0, len(set))
	for key := range set {
		keys = append(keys, key)
	}

	slices.Sort(keys)

	return keys
}
