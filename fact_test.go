package assertor

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFact_String(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		fact Fact
		want string
	}{
		{"simple", NewSimpleFact("not same"), "not same"},
		{"empty simple", NewSimpleFact(""), ""},
		{"key value", NewFact("expected", "[]"), "expected: []"},
		{"key value with empty value", NewFact("actual", ""), "actual: "},
		{"splitter", NewSplitter(), "---"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			require.Equal(t, tt.want, tt.fact.String())
		})
	}
}

func TestFact_Equality(t *testing.T) {
	t.Parallel()

	require.Equal(t, NewFact("k", "v"), NewFact("k", "v"))
	require.Equal(t, NewSplitter(), NewSplitter())
	require.NotEqual(t, NewFact("k", "v"), NewFact("k", "w"))
	require.NotEqual(t, NewFact("k", "v"), NewFact("j", "v"))

	// Same text, different form.
	require.NotEqual(t, NewSimpleFact("v"), NewFact("", "v"))
	require.NotEqual(t, NewSimpleFact(""), NewSplitter())
}

func TestFact_Accessors(t *testing.T) {
	t.Parallel()

	kv := NewFact("key", "value")
	require.True(t, kv.IsKeyValue())
	require.Equal(t, "key", kv.Key())
	require.Equal(t, "value", kv.Value())

	simple := NewSimpleFact("stmt")
	require.False(t, simple.IsKeyValue())
	require.Empty(t, simple.Key())
	require.Equal(t, "stmt", simple.Value())

	splitter := NewSplitter()
	require.False(t, splitter.IsKeyValue())
	require.Empty(t, splitter.Key())
	require.Empty(t, splitter.Value())
}

func TestFact_DebugString(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		fact Fact
		want string
	}{
		{"simple", NewSimpleFact("not same"), `Value { value: "not same" }`},
		{"key value", NewFact("expected", "[]"), `KeyValue { key: "expected", value: "[]" }`},
		{"quoting", NewSimpleFact(`say "hi"`), `Value { value: "say \"hi\"" }`},
		{"splitter", NewSplitter(), "Splitter"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			require.Equal(t, tt.want, tt.fact.debugString())
		})
	}
}

func TestFormatList_Facts(t *testing.T) {
	t.Parallel()

	require.Equal(t, "[]", formatList([]Fact(nil)))
	require.Equal(t,
		`[Value { value: "not same" }, KeyValue { key: "k", value: "v" }, Splitter]`,
		formatList([]Fact{NewSimpleFact("not same"), NewFact("k", "v"), NewSplitter()}))
}

func TestFormatList_Scalars(t *testing.T) {
	t.Parallel()

	require.Equal(t, `["a", "b"]`, formatList([]string{"a", "b"}))
	require.Equal(t, "[1, 2, 3]", formatList([]int{1, 2, 3}))
}
