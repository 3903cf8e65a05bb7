// Package observe provides a return strategy for soft assertions in running
// services. Failures are logged through a structured logger, counted on an
// OpenTelemetry counter, and recorded on the active span, while the caller
// keeps control flow: the outcome is an ordinary assertor.CheckResult.
//
// Typical usage at a service invariant:
//
//	reporter, err := observe.NewReporter(ctx, logger, meter, "ledger", "post-transaction")
//	if err != nil {
//		return err
//	}
//
//	out := observe.That(reporter, total).Named("total").IsEqualTo(expected)
//	if out.Failed() {
//		return ErrUnbalanced
//	}
package observe
