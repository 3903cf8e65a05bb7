package assertor

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func keySet(keys ...string) map[string]struct{} {
	set := make(map[string]struct{}, len(keys))
	for _, key := range keys {
		set[key] = struct{}{}
	}

	return set
}

func TestContainsKey(t *testing.T) {
	t.Parallel()

	require.True(t, ContainsKey(CheckThat(keySet("expected", "actual")), "actual").OK())

	out := ContainsKey(CheckThat(keySet("b", "a")).Named("keys"), "c")
	require.True(t, out.Failed())
	require.Equal(t, []Fact{
		NewFact("value of", "keys"),
		NewFact("expected to contain", `"c"`),
		NewSplitter(),
		NewFact("actual", `["a", "b"]`),
	}, out.Result().Facts())
}

func TestContainsExactlyKeys_Match(t *testing.T) {
	t.Parallel()

	require.True(t, ContainsExactlyKeys(CheckThat(keySet("a", "b")), "b", "a").OK())
	require.True(t, ContainsExactlyKeys(CheckThat(keySet())).OK())

	// Duplicates among the expectation collapse.
	require.True(t, ContainsExactlyKeys(CheckThat(keySet("a")), "a", "a").OK())
}

func TestContainsExactlyKeys_Mismatch(t *testing.T) {
	t.Parallel()

	out := ContainsExactlyKeys(CheckThat(keySet("a", "x")).Named("keys"), "a", "b")
	require.True(t, out.Failed())
	require.Equal(t, []Fact{
		NewFact("value of", "keys"),
		NewFact("missing (1)", `["b"]`),
		NewFact("unexpected (1)", `["x"]`),
		NewSplitter(),
		NewFact("expected", `["a", "b"]`),
		NewFact("actual", `["a", "x"]`),
	}, out.Result().Facts())
}
