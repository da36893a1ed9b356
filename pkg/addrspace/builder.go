package addrspace

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/sensorspace-protocol/sensorspace-go/pkg/datasource"
	"github.com/sensorspace-protocol/sensorspace-go/pkg/log"
	"github.com/sensorspace-protocol/sensorspace-go/pkg/value"
)

// Node names of the live and static nodes the Builder registers.
const (
	clockNodeName       = "current time"
	temperatureNodeName = "cpu temperature"
	toggleNodeName      = "status LED"
	answerNodeName      = "the answer"
	answerNodeStringID  = "the.answer"
)

// Builder assembles live data sources and demo nodes into a Registry.
//
// Backing resources are opened once during Build and held for the
// process's lifetime; Close releases them exactly once. Only the clock
// registration and the demo catalog walk are mandatory; the temperature
// and toggle sources are probed and skipped when unavailable.
type Builder struct {
	cfg     Config
	log     *slog.Logger
	capture log.Logger

	temperature *datasource.TemperatureSource
	toggle      *datasource.ToggleSource
}

// NewBuilder creates a Builder. A nil logger falls back to slog.Default();
// a nil capture disables lifecycle capture.
func NewBuilder(cfg Config, logger *slog.Logger, capture log.Logger) *Builder {
	if logger == nil {
		logger = slog.Default()
	}
	if capture == nil {
		capture = log.NoopLogger{}
	}
	return &Builder{cfg: cfg, log: logger, capture: capture}
}

// Build probes the backing resources and registers all nodes. A failed
// registration aborts the build; an unavailable optional resource only
// skips its node.
func (b *Builder) Build(reg Registry) error {
	ns := b.cfg.Namespace

	// Clock is mandatory.
	clock := datasource.Instrument(datasource.NewClockSource(), clockNodeName, b.capture)
	if err := reg.AddProviderNode(b.name(clockNodeName), value.NodeID{}, ObjectsFolderID, clock); err != nil {
		return fmt.Errorf("register clock node: %w", err)
	}

	if err := b.buildTemperature(reg); err != nil {
		return err
	}
	if err := b.buildToggle(reg); err != nil {
		return err
	}

	answer := value.MustScalar(value.KindInt32, int32(42))
	answerID := value.NewStringID(ns, answerNodeStringID)
	if err := reg.AddStaticNode(b.name(answerNodeName), answerID, ObjectsFolderID, answer); err != nil {
		return fmt.Errorf("register static node: %w", err)
	}

	if b.cfg.DemoNodes {
		if err := RegisterDemoNodes(reg, ns); err != nil {
			return err
		}
	}
	return nil
}

// buildTemperature probes the sensor file; absence skips the node.
func (b *Builder) buildTemperature(reg Registry) error {
	if b.cfg.SensorPath == "" {
		return nil
	}
	src, err := datasource.OpenTemperatureSource(b.cfg.SensorPath, b.log)
	if err != nil {
		b.log.Debug("temperature sensor unavailable", "path", b.cfg.SensorPath, "err", err)
		return nil
	}
	b.temperature = src

	p := datasource.Instrument(src, temperatureNodeName, b.capture)
	if err := reg.AddProviderNode(b.name(temperatureNodeName), value.NodeID{}, ObjectsFolderID, p); err != nil {
		return fmt.Errorf("register temperature node: %w", err)
	}
	return nil
}

// buildToggle probes the actuator files; absence logs one warning and
// skips the node.
func (b *Builder) buildToggle(reg Registry) error {
	if b.cfg.TriggerPath == "" && b.cfg.BrightnessPath == "" {
		return nil
	}
	src, err := datasource.OpenToggleSource(b.cfg.TriggerPath, b.cfg.BrightnessPath, b.log)
	if err != nil {
		b.log.Warn("actuator files unavailable, toggle not registered",
			"trigger", b.cfg.TriggerPath, "brightness", b.cfg.BrightnessPath, "err", err)
		return nil
	}
	b.toggle = src

	p := datasource.Instrument(src, toggleNodeName, b.capture)
	if err := reg.AddProviderNode(b.name(toggleNodeName), value.NodeID{}, ObjectsFolderID, p); err != nil {
		return fmt.Errorf("register toggle node: %w", err)
	}
	return nil
}

// Close releases the backing resources opened during Build. The toggle's
// actuator is restored to its default mode. Safe to call after a failed
// or skipped Build.
func (b *Builder) Close() error {
	var errs []error
	if b.temperature != nil {
		if err := b.temperature.Close(); err != nil {
			errs = append(errs, err)
		}
		b.temperature = nil
	}
	if b.toggle != nil {
		if err := b.toggle.Close(); err != nil {
			errs = append(errs, err)
		}
		b.toggle = nil
	}
	return errors.Join(errs...)
}

func (b *Builder) name(s string) value.QualifiedName {
	return value.QualifiedName{Namespace: b.cfg.Namespace, Name: s}
}
