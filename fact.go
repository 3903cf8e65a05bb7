package assertor

import (
	"fmt"
	"strconv"
)

// factKind discriminates the Fact variants.
type factKind uint8

const (
	factValue factKind = iota
	factKeyValue
	factSplitter
)

// splitterLine is the rendered form of a splitter fact.
const splitterLine = "---"

// Fact is one statement in a failure explanation. It has three forms: a
// free-form statement, a labeled key/value statement, and a splitter used to
// delimit the unexpected part of a failure from the expected/actual dump.
//
// Fact is a comparable value type: two facts are equal iff they have the same
// form and the same field values. Facts are immutable once constructed.
type Fact struct {
	kind  factKind
	key   string
	value string
}

// NewFact returns a labeled key/value fact.
func NewFact(key, value string) Fact {
	return Fact{kind: factKeyValue, key: key, value: value}
}

// NewSimpleFact returns a free-form statement fact.
func NewSimpleFact(value string) Fact {
	return Fact{kind: factValue, value: value}
}

// NewSplitter returns a splitter fact. It carries no payload.
func NewSplitter() Fact {
	return Fact{kind: factSplitter}
}

// Key returns the key of a key/value fact, or "" for the other forms.
func (fact Fact) Key() string {
	return fact.key
}

// Value returns the fact's value, or "" for a splitter.
func (fact Fact) Value() string {
	return fact.value
}

// IsKeyValue reports whether the fact is a labeled key/value statement.
func (fact Fact) IsKeyValue() bool {
	return fact.kind == factKeyValue
}

// String renders the fact as a single message line: "key: value" for labeled
// facts, the bare value for simple facts, and a fixed delimiter line for
// splitters.
func (fact Fact) String() string {
	switch fact.kind {
	case factKeyValue:
		return fact.key + ": " + fact.value
	case factSplitter:
		return splitterLine
	default:
		return fact.value
	}
}

// debugString renders the fact the way fact lists appear inside failure
// messages, e.g. `Value { value: "not same" }`. This format is part of the
// observable message contract and must stay stable.
func (fact Fact) debugString() string {
	switch fact.kind {
	case factKeyValue:
		return fmt.Sprintf("KeyValue { key: %s, value: %s }",
			strconv.Quote(fact.key), strconv.Quote(fact.value))
	case factSplitter:
		return "Splitter"
	default:
		return fmt.Sprintf("Value { value: %s }", strconv.Quote(fact.value))
	}
}
