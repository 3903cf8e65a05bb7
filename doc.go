// Package assertor is a fluent assertion library. A value under test is
// wrapped in a Subject and inspected through chainable assertion calls; on
// failure the library produces a structured explanation (an ordered sequence
// of Facts) instead of a raw boolean.
//
// The same assertion code runs under two return strategies, chosen once at
// the entry point:
//
//	assertor.AssertThat("a").IsEqualTo("a")        // panics on failure
//	out := assertor.CheckThat("a").IsEqualTo("b")  // returns a CheckResult
//
// A CheckResult is an ordinary value, so assertions can be made about the
// outcome of a previous assertion:
//
//	failed := assertor.CheckThat("actual").Named("actual").IsEqualTo("expected")
//	assertor.FactsAreAtLeast(assertor.AssertThat(failed), []assertor.Fact{
//		assertor.NewFact("expected", `"expected"`),
//	})
//
// Concrete assertions for new types are built on the same substrate: read the
// value with Actual, build an outcome with NewResult, and conclude it with
// DoOK or DoFail. Derived subjects (Derive) project a new value out of an
// existing subject while keeping the bound strategy, which is how nested
// assertions compose without re-specifying execution mode.
package assertor
