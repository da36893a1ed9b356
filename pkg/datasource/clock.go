package datasource

import (
	"context"
	"time"

	"github.com/sensorspace-protocol/sensorspace-go/pkg/value"
)

// ClockSource exposes the current wall-clock instant as a read-only
// DateTime source. It touches no backing resource.
type ClockSource struct {
	now func() time.Time
}

// NewClockSource returns a clock source reading the system clock.
func NewClockSource() *ClockSource {
	return &ClockSource{now: time.Now}
}

// NewClockSourceWithClock returns a clock source reading now instead of
// the system clock.
func NewClockSourceWithClock(now func() time.Time) *ClockSource {
	return &ClockSource{now: now}
}

// Read materializes the current instant as a DateTime scalar.
func (s *ClockSource) Read(ctx context.Context, req ReadRequest) (ReadResult, error) {
	if req.Range != nil {
		return rangeRejected(), nil
	}

	now := s.now()
	v := value.MustScalar(value.KindDateTime, now)
	res := ReadResult{Value: &v}
	if req.WithSourceTimestamp {
		res.HasSourceTimestamp = true
		res.SourceTimestamp = now
	}
	return res, nil
}

// Release frees the result. No-op for value-less results.
func (s *ClockSource) Release(res *ReadResult) {
	releaseResult(res)
}

// Compile-time interface satisfaction check.
var _ Provider = (*ClockSource)(nil)
