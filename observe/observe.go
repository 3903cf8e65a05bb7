package observe

import (
	"context"
	"fmt"
	"strconv"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"github.com/lcnr/assertor"
)

// Logger is the minimal logging interface required by the reporter.
// *zap.Logger satisfies it directly.
type Logger interface {
	Error(msg string, fields ...zap.Field)
}

// Compile-time assertion: *zap.Logger implements Logger.
var _ Logger = (*zap.Logger)(nil)

// assertionFailedMetric counts failed assertions, labeled by component,
// operation and subject.
const assertionFailedMetric = "assertion_failed_total"

// spanEventName is the event recorded on the active span for a failure.
const spanEventName = "assertion.failed"

const maxValueLength = 200 // Truncate logged values longer than this

// Reporter is a return strategy for soft assertions: failures are logged,
// counted and recorded on the active span, then handed back as an ordinary
// assertor.CheckResult so the caller keeps control flow.
//
// component and operation label all emitted telemetry.
type Reporter struct {
	ctx       context.Context
	logger    Logger
	counter   metric.Int64Counter
	component string
	operation string
	inner     assertor.ReturnStrategy[assertor.CheckResult]
}

// Compile-time assertion: *Reporter implements assertor.ReturnStrategy.
var _ assertor.ReturnStrategy[assertor.CheckResult] = (*Reporter)(nil)

// NewReporter creates a Reporter bound to ctx for telemetry correlation.
// logger and meter may be nil, disabling the corresponding channel.
func NewReporter(ctx context.Context, logger Logger, meter metric.Meter, component, operation string) (*Reporter, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	var counter metric.Int64Counter

	if meter != nil {
		var err error

		counter, err = meter.Int64Counter(assertionFailedMetric,
			metric.WithUnit("1"),
			metric.WithDescription("Total number of failed assertions"))
		if err != nil {
			return nil, fmt.Errorf("create assertion counter: %w", err)
		}
	}

	return &Reporter{
		ctx:       ctx,
		logger:    logger,
		counter:   counter,
		component: component,
		operation: operation,
		inner:     assertor.Checked(),
	}, nil
}

// That wraps actual in a subject bound to the reporter. A nil reporter
// degrades to the plain value-returning strategy.
func That[T any](reporter *Reporter, actual T) *assertor.Subject[T, assertor.CheckResult] {
	if reporter == nil {
		return assertor.CheckThat(actual)
	}

	return assertor.NewSubject(actual, "", reporter)
}

// DoOK implements assertor.ReturnStrategy. Passed assertions emit nothing.
func (reporter *Reporter) DoOK() assertor.CheckResult {
	return assertor.Checked().DoOK()
}

// DoFail implements assertor.ReturnStrategy. The failure is logged, counted
// and recorded on the active span before being returned as a value.
func (reporter *Reporter) DoFail(result *assertor.AssertionResult) assertor.CheckResult {
	message := result.GenerateMessage()

	reporter.logFailure(result.Description(), message)
	reporter.recordMetric(result.Description())
	reporter.recordSpan(result, message)

	return reporter.inner.DoFail(result)
}

func (reporter *Reporter) logFailure(subject, message string) {
	if reporter.logger == nil {
		return
	}

	fields := []zap.Field{
		zap.String("subject", subject),
		zap.String("message", truncateValue(message)),
	}

	if reporter.component != "" {
		fields = append(fields, zap.String("component", reporter.component))
	}

	if reporter.operation != "" {
		fields = append(fields, zap.String("operation", reporter.operation))
	}

	reporter.logger.Error("assertion failed", fields...)
}

func (reporter *Reporter) recordMetric(subject string) {
	if reporter.counter == nil {
		return
	}

	reporter.counter.Add(reporter.ctx, 1, metric.WithAttributes(
		attribute.String("component", reporter.component),
		attribute.String("operation", reporter.operation),
		attribute.String("subject", subject),
	))
}

func (reporter *Reporter) recordSpan(result *assertor.AssertionResult, message string) {
	span := trace.SpanFromContext(reporter.ctx)
	if !span.IsRecording() {
		return
	}

	attrs := []attribute.KeyValue{
		attribute.String("assertion.subject", result.Description()),
		attribute.String("assertion.message", truncateValue(message)),
	}

	if reporter.component != "" {
		attrs = append(attrs, attribute.String("assertion.component", reporter.component))
	}

	if reporter.operation != "" {
		attrs = append(attrs, attribute.String("assertion.operation", reporter.operation))
	}

	span.AddEvent(spanEventName, trace.WithAttributes(attrs...))
	span.RecordError(&assertor.FailureError{Result: result})
	span.SetStatus(codes.Error, statusMessage(reporter.component, reporter.operation))
}

// truncateValue truncates long values for logging safety. This prevents log
// bloat when large subjects are rendered into messages.
func truncateValue(v string) string {
	if len(v) <= maxValueLength {
		return v
	}

	return v[:maxValueLength] + "... (truncated " + strconv.Itoa(len(v)-maxValueLength) + " chars)"
}

func statusMessage(component, operation string) string {
	switch {
	case component != "" && operation != "":
		return fmt.Sprintf("assertion failed in %s/%s", component, operation)
	case component != "":
		return "assertion failed in " + component
	case operation != "":
		return "assertion failed in " + operation
	default:
		return "assertion failed"
	}
}
