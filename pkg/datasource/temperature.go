package datasource

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/sensorspace-protocol/sensorspace-go/pkg/value"
)

// Temperature errors.
var (
	// ErrCorruptReading indicates the sensor file content could not be
	// parsed. A corrupted sensor feed has no recovery path within a single
	// read; callers decide whether to keep serving or terminate.
	ErrCorruptReading = errors.New("cannot parse temperature reading")
)

// TemperatureSource exposes the CPU temperature as a read-only Double
// source. The backing file holds a single integer in millidegrees; each
// read rewinds the file, parses one token, and scales to degrees.
//
// Access to the backing file is not serialized: concurrent reads may
// interleave the rewind and the parse.
type TemperatureSource struct {
	src    io.ReadSeeker
	closer io.Closer
	log    *slog.Logger
}

// OpenTemperatureSource opens the sensor file at path. The file stays open
// for the source's lifetime; Close releases it.
func OpenTemperatureSource(path string, logger *slog.Logger) (*TemperatureSource, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	s := NewTemperatureSource(f, logger)
	s.closer = f
	return s, nil
}

// NewTemperatureSource wraps an already-open millidegree reader.
func NewTemperatureSource(src io.ReadSeeker, logger *slog.Logger) *TemperatureSource {
	if logger == nil {
		logger = slog.Default()
	}
	return &TemperatureSource{src: src, log: logger}
}

// Read rewinds the sensor file and parses the current temperature.
// Unparsable content is a distinct error, not a transient condition.
func (s *TemperatureSource) Read(ctx context.Context, req ReadRequest) (ReadResult, error) {
	if req.Range != nil {
		return rangeRejected(), nil
	}

	if _, err := s.src.Seek(0, io.SeekStart); err != nil {
		return ReadResult{}, fmt.Errorf("rewind temperature sensor: %w", err)
	}

	var millidegrees float64
	if _, err := fmt.Fscan(s.src, &millidegrees); err != nil {
		s.log.Error("corrupt temperature sensor data", "err", err)
		return ReadResult{}, fmt.Errorf("%w: %v", ErrCorruptReading, err)
	}

	v := value.MustScalar(value.KindDouble, millidegrees/1000.0)
	return ReadResult{Value: &v}, nil
}

// Release frees the result. No-op for value-less results.
func (s *TemperatureSource) Release(res *ReadResult) {
	releaseResult(res)
}

// Close releases the backing sensor file, if this source owns one.
func (s *TemperatureSource) Close() error {
	if s.closer == nil {
		return nil
	}
	c := s.closer
	s.closer = nil
	return c.Close()
}

// Compile-time interface satisfaction check.
var _ Provider = (*TemperatureSource)(nil)
