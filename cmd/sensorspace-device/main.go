// Command sensorspace-device populates an address space with the live
// and demo nodes of a small sensor host: the wall clock, the CPU
// temperature sensor, the status LED toggle actuator, and one
// default-constructed scalar and array node per built-in value kind.
//
// Backing resources that are absent on this host are skipped, so the
// command runs unchanged on machines without a thermal zone or LED.
// While running it polls the live nodes once per interval and drives
// the LED toggle through the registry, which exercises the full
// read-use-release provider lifecycle.
//
// Usage:
//
//	sensorspace-device [flags]
//
// Flags:
//
//	-config string     YAML configuration file path
//	-capture string    Write the CBOR lifecycle capture to this file
//	-log-level string  Log level: debug, info, warn, error (default "info")
//	-interval duration Poll interval for the live nodes (default 2s)
//	-no-demo           Skip the demo catalog nodes
//
// Examples:
//
//	# Run with the stock Linux sensor and LED paths
//	sensorspace-device
//
//	# Run with a config file and a lifecycle capture
//	sensorspace-device -config /etc/sensorspace/device.yaml -capture /var/log/sensorspace.cbor
//
//	# Verbose run without the demo nodes
//	sensorspace-device -no-demo -log-level debug
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sensorspace-protocol/sensorspace-go/pkg/addrspace"
	"github.com/sensorspace-protocol/sensorspace-go/pkg/datasource"
	"github.com/sensorspace-protocol/sensorspace-go/pkg/log"
	"github.com/sensorspace-protocol/sensorspace-go/pkg/value"
)

var (
	configPath  string
	capturePath string
	logLevel    string
	interval    time.Duration
	noDemo      bool
)

func init() {
	flag.StringVar(&configPath, "config", "", "YAML configuration file path")
	flag.StringVar(&capturePath, "capture", "", "Write the CBOR lifecycle capture to this file")
	flag.StringVar(&logLevel, "log-level", "info", "Log level: debug, info, warn, error")
	flag.DurationVar(&interval, "interval", 2*time.Second, "Poll interval for the live nodes")
	flag.BoolVar(&noDemo, "no-demo", false, "Skip the demo catalog nodes")
}

func main() {
	flag.Parse()

	logger := newLogger(logLevel)
	slog.SetDefault(logger)

	if err := run(logger); err != nil {
		logger.Error("fatal", "err", err)
		os.Exit(1)
	}
}

func run(logger *slog.Logger) error {
	cfg := addrspace.DefaultConfig()
	if configPath != "" {
		loaded, err := addrspace.LoadConfig(configPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}
	if noDemo {
		cfg.DemoNodes = false
	}

	capture, closeCapture, err := newCapture(logger)
	if err != nil {
		return err
	}
	defer closeCapture()

	builder := addrspace.NewBuilder(cfg, logger, capture)
	defer builder.Close()

	reg := addrspace.NewMemoryRegistry()
	if err := builder.Build(reg); err != nil {
		return fmt.Errorf("build address space: %w", err)
	}
	logger.Info("address space populated", "nodes", reg.Len(), "namespace", cfg.Namespace)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	poll(ctx, logger, reg)

	logger.Info("shutting down")
	return nil
}

// poll reads the live nodes once per interval until the context is
// cancelled, toggling the LED on alternating rounds.
func poll(ctx context.Context, logger *slog.Logger, reg *addrspace.MemoryRegistry) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	on := false
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			pollOnce(ctx, logger, reg, on)
			on = !on
		}
	}
}

func pollOnce(ctx context.Context, logger *slog.Logger, reg *addrspace.MemoryRegistry, on bool) {
	for _, name := range []string{"current time", "cpu temperature"} {
		node, ok := reg.Find(name)
		if !ok {
			continue
		}
		res, err := reg.ReadValue(ctx, node.ID, datasource.ReadRequest{WithSourceTimestamp: true})
		if err != nil {
			logger.Error("read failed", "node", name, "err", err)
			continue
		}
		if !res.HasValue() {
			logger.Warn("read returned no value", "node", name, "status", res.Status)
			continue
		}
		logger.Info("read", "node", name, "value", res.Value)
	}

	node, ok := reg.Find("status LED")
	if !ok {
		return
	}
	status, err := reg.WriteValue(ctx, node.ID, value.MustScalar(value.KindBoolean, on), nil)
	if err != nil {
		logger.Error("write failed", "node", node.Name.Name, "err", err)
		return
	}
	logger.Info("wrote", "node", node.Name.Name, "on", on, "status", status)
}

// newCapture builds the lifecycle capture chain: the CBOR file sink
// when requested, plus the slog mirror at debug level.
func newCapture(logger *slog.Logger) (log.Logger, func(), error) {
	mirror := log.NewSlogAdapter(logger)
	if capturePath == "" {
		return mirror, func() {}, nil
	}
	file, err := log.NewFileLogger(capturePath)
	if err != nil {
		return nil, nil, fmt.Errorf("open capture file: %w", err)
	}
	closer := func() {
		if err := file.Close(); err != nil {
			logger.Warn("close capture file", "err", err)
		}
	}
	return log.NewMultiLogger(file, mirror), closer, nil
}

func newLogger(level string) *slog.Logger {
	var l slog.Level
	switch level {
	case "debug":
		l = slog.LevelDebug
	case "warn":
		l = slog.LevelWarn
	case "error":
		l = slog.LevelError
	default:
		l = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: l}))
}
