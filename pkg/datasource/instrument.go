package datasource

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/sensorspace-protocol/sensorspace-go/pkg/log"
	"github.com/sensorspace-protocol/sensorspace-go/pkg/value"
)

// Instrument wraps a provider with lifecycle capture and metrics: every
// read, release, and write is recorded to capture (see the log package)
// and measured with OpenTelemetry, labeled with name. If p also
// implements Writer, so does the returned provider. A nil capture
// disables event recording but keeps the metrics.
func Instrument(p Provider, name string, capture log.Logger) Provider {
	if capture == nil {
		capture = log.NoopLogger{}
	}
	src := &instrumentedSource{
		inner:   p,
		name:    name,
		id:      uuid.NewString(),
		capture: capture,
	}
	if w, ok := p.(Writer); ok {
		return &instrumentedWritableSource{instrumentedSource: src, writer: w}
	}
	return src
}

type instrumentedSource struct {
	inner   Provider
	name    string
	id      string
	capture log.Logger
}

func (s *instrumentedSource) Read(ctx context.Context, req ReadRequest) (ReadResult, error) {
	start := time.Now()
	res, err := s.inner.Read(ctx, req)
	elapsed := time.Since(start)

	measureRead(ctx, s.name, err == nil, elapsed)

	event := s.newEvent(log.OpRead)
	event.Read = &log.ReadEvent{
		HasValue:            res.HasValue(),
		Ranged:              req.Range != nil,
		WithSourceTimestamp: req.WithSourceTimestamp,
		Duration:            elapsed,
	}
	if res.HasStatus {
		event.Read.Status = res.Status.String()
	}
	if err != nil {
		event.Error = &log.ErrorEventData{Message: err.Error(), Context: "read"}
	}
	s.capture.Log(event)

	return res, err
}

func (s *instrumentedSource) Release(res *ReadResult) {
	s.inner.Release(res)
	s.capture.Log(s.newEvent(log.OpRelease))
}

func (s *instrumentedSource) newEvent(op log.Op) log.Event {
	return log.Event{
		Timestamp:  time.Now(),
		SourceID:   s.id,
		SourceName: s.name,
		Op:         op,
	}
}

type instrumentedWritableSource struct {
	*instrumentedSource
	writer Writer
}

func (s *instrumentedWritableSource) Write(ctx context.Context, val value.Value, rng *Range) Status {
	start := time.Now()
	status := s.writer.Write(ctx, val, rng)
	elapsed := time.Since(start)

	measureWrite(ctx, s.name, status)

	event := s.newEvent(log.OpWrite)
	event.Write = &log.WriteEvent{
		Status:   status.String(),
		Ranged:   rng != nil,
		Duration: elapsed,
	}
	s.capture.Log(event)

	return status
}

// Compile-time interface satisfaction checks.
var (
	_ Provider = (*instrumentedSource)(nil)
	_ Provider = (*instrumentedWritableSource)(nil)
	_ Writer   = (*instrumentedWritableSource)(nil)
)
