package datasource

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sync"
	"time"

	"github.com/sensorspace-protocol/sensorspace-go/pkg/value"
)

// Actuator file protocol: the trigger file selects the control mode, the
// brightness file carries the textual flag.
const (
	triggerManual  = "none" // written once at startup
	triggerDefault = "mmc0" // restored once at shutdown
	flagOn         = "1"
	flagOff        = "0"
)

// ToggleSource exposes a read-write on/off flag backed by a LED-style
// actuator. Reads hand out a live reference to the shared flag under a
// read lease; writes serialize against reads and each other and mirror
// the flag to the brightness file as textual "1"/"0".
type ToggleSource struct {
	guard      *Guard
	trigger    *os.File
	brightness *os.File
	log        *slog.Logger
	now        func() time.Time

	closeOnce sync.Once
	closeErr  error
}

// OpenToggleSource opens the trigger and brightness files and initializes
// the actuator to a known manual/off state. If either file is unavailable
// no source is constructed.
func OpenToggleSource(triggerPath, brightnessPath string, logger *slog.Logger) (*ToggleSource, error) {
	trigger, err := os.OpenFile(triggerPath, os.O_WRONLY, 0)
	if err != nil {
		return nil, err
	}
	brightness, err := os.OpenFile(brightnessPath, os.O_WRONLY, 0)
	if err != nil {
		trigger.Close()
		return nil, err
	}
	return NewToggleSource(trigger, brightness, logger)
}

// NewToggleSource wraps already-open actuator files, taking ownership of
// both, and initializes the actuator to manual mode with the flag off.
func NewToggleSource(trigger, brightness *os.File, logger *slog.Logger) (*ToggleSource, error) {
	if logger == nil {
		logger = slog.Default()
	}
	s := &ToggleSource{
		guard:      NewGuard(false),
		trigger:    trigger,
		brightness: brightness,
		log:        logger,
		now:        time.Now,
	}
	if err := writeTextual(trigger, triggerManual); err != nil {
		trigger.Close()
		brightness.Close()
		return nil, fmt.Errorf("set actuator to manual mode: %w", err)
	}
	if err := writeTextual(brightness, flagOff); err != nil {
		trigger.Close()
		brightness.Close()
		return nil, fmt.Errorf("turn actuator off: %w", err)
	}
	return s, nil
}

// Read acquires a read lease on the shared flag and returns it as a
// Boolean scalar. The lease is held until Release.
func (s *ToggleSource) Read(ctx context.Context, req ReadRequest) (ReadResult, error) {
	if req.Range != nil {
		return rangeRejected(), nil
	}

	lease := s.guard.AcquireRead()
	v := value.MustScalar(value.KindBoolean, lease.On())
	res := ReadResult{Value: &v, release: lease.Release}
	if req.WithSourceTimestamp {
		res.HasSourceTimestamp = true
		res.SourceTimestamp = s.now()
	}
	return res, nil
}

// Release drops the read lease taken in Read. No-op for value-less
// results; safe to call more than once.
func (s *ToggleSource) Release(res *ReadResult) {
	releaseResult(res)
}

// Write stores the flag under the exclusive lock and mirrors it to the
// brightness file. Ranged writes are rejected; so are non-boolean values.
func (s *ToggleSource) Write(ctx context.Context, val value.Value, rng *Range) Status {
	if rng != nil {
		return StatusRangeInvalid
	}
	if val.Kind() != value.KindBoolean || val.IsArray() {
		return StatusTypeMismatch
	}
	on := val.Scalar().(bool)

	s.guard.Write(func(state *ActuatorState) {
		state.SetOn(on)

		flag := flagOff
		if on {
			flag = flagOn
		}
		// Propagation to the actuator is best effort; the shared flag is
		// already updated and readers must keep working.
		if err := writeTextual(s.brightness, flag); err != nil {
			s.log.Warn("cannot mirror toggle to actuator file", "err", err)
		}
	})
	return StatusGood
}

// Close restores the actuator trigger to its default mode and closes both
// backing files. Safe to call more than once.
func (s *ToggleSource) Close() error {
	s.closeOnce.Do(func() {
		var errs []error
		if err := writeTextual(s.trigger, triggerDefault); err != nil {
			errs = append(errs, fmt.Errorf("restore actuator trigger: %w", err))
		}
		if err := s.trigger.Close(); err != nil {
			errs = append(errs, err)
		}
		if err := s.brightness.Close(); err != nil {
			errs = append(errs, err)
		}
		s.closeErr = errors.Join(errs...)
	})
	return s.closeErr
}

// writeTextual rewinds f, writes the literal text, and flushes it to the
// backing device.
func writeTextual(f *os.File, text string) error {
	if _, err := f.Seek(0, io.SeekStart); err != nil {
		return err
	}
	if _, err := f.WriteString(text); err != nil {
		return err
	}
	return f.Sync()
}

// Compile-time interface satisfaction checks.
var (
	_ Provider = (*ToggleSource)(nil)
	_ Writer   = (*ToggleSource)(nil)
)
