package datasource

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

var meter = otel.Meter("github.com/sensorspace-protocol/sensorspace-go/pkg/datasource")

const (
	// sourceNameKey labels every record with the data source it belongs
	// to, so instruments can be analyzed per source or across all sources.
	sourceNameKey = "datasource"
)

var (
	// readDuration measures the duration of a single Read, from the range
	// check to the materialized result.
	readDuration metric.Float64Histogram

	// readFailures measures reads that returned an error (not statused
	// no-value results, which are normal outcomes).
	readFailures metric.Int64Counter

	// writeTotal measures Write calls, labeled with the resulting status.
	writeTotal metric.Int64Counter
)

func init() {
	var err error
	readDuration, err = meter.Float64Histogram(
		"datasource.read.duration",
		metric.WithDescription("The duration of a single data-source read, from the range check to the materialized result."),
		metric.WithUnit("ms"),
	)
	if err != nil {
		panic("datasource: failed to init 'datasource.read.duration' instrument")
	}

	readFailures, err = meter.Int64Counter(
		"datasource.read.failures",
		metric.WithDescription("The number of data-source reads that returned an error."),
	)
	if err != nil {
		panic("datasource: failed to init 'datasource.read.failures' instrument")
	}

	writeTotal, err = meter.Int64Counter(
		"datasource.write.total",
		metric.WithDescription("The number of data-source writes, labeled with the resulting status."),
	)
	if err != nil {
		panic("datasource: failed to init 'datasource.write.total' instrument")
	}
}

// measureRead records a single read: its duration when it succeeded, the
// failure counter when it errored. Both are labeled with the source name.
func measureRead(ctx context.Context, source string, succeeded bool, d time.Duration) {
	attrs := attribute.NewSet(attribute.String(sourceNameKey, source))
	if succeeded {
		readDuration.Record(ctx, float64(d)/float64(time.Millisecond), metric.WithAttributeSet(attrs))
	} else {
		readFailures.Add(ctx, 1, metric.WithAttributeSet(attrs))
	}
}

// measureWrite counts a single write, labeled with source name and status.
func measureWrite(ctx context.Context, source string, status Status) {
	attrs := attribute.NewSet(
		attribute.String(sourceNameKey, source),
		attribute.String("status", status.String()),
	)
	writeTotal.Add(ctx, 1, metric.WithAttributeSet(attrs))
}
