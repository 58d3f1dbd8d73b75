package capcheck

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

var tracer = otel.Tracer("github.com/go-digitaltwin/go-named/capcheck")
var meter = otel.Meter("github.com/go-digitaltwin/go-named/capcheck")

const (
	// capcheckRule is the attribute key associating each violation record with
	// the rule it broke.
	capcheckRule = "capcheck.rule"
	// capcheckOutcome is the attribute key distinguishing successful checks from
	// checks that failed to load or type-check their packages.
	capcheckOutcome = "capcheck.outcome"
)

var (
	// checkDuration measures the duration of a single Check, including loading
	// and type-checking the packages.
	//
	// Each record is associated with the capcheckOutcome.
	checkDuration metric.Float64Histogram
	// violationCount measures the number of reported violations.
	//
	// Each record is associated with the capcheckRule.
	violationCount metric.Int64Counter
)

func init() {
	var err error
	checkDuration, err = meter.Float64Histogram(
		"capcheck.duration",
		metric.WithDescription("The duration of a single capability check, including loading and type-checking packages."),
		metric.WithUnit("ms"),
	)
	if err != nil {
		panic("capcheck: failed to init 'capcheck.duration' instrument")
	}

	violationCount, err = meter.Int64Counter(
		"capcheck.violations",
		metric.WithDescription("The number of strong-type capability violations reported."),
	)
	if err != nil {
		panic("capcheck: failed to init 'capcheck.violations' instrument")
	}
}

// measureCheck records the duration of a Check labelled with its outcome.
func measureCheck(ctx context.Context, succeeded bool, d time.Duration) {
	outcome := "failure"
	if succeeded {
		outcome = "success"
	}
	attrs := attribute.NewSet(attribute.String(capcheckOutcome, outcome))
	// Floating-point division keeps sub-millisecond precision.
	duration := float64(d) / float64(time.Millisecond)
	checkDuration.Record(ctx, duration, metric.WithAttributeSet(attrs))
}

// countViolation increments the violation counter of the given rule.
func countViolation(ctx context.Context, rule Rule) {
	attrs := attribute.NewSet(attribute.String(capcheckRule, string(rule)))
	violationCount.Add(ctx, 1, metric.WithAttributeSet(attrs))
}
