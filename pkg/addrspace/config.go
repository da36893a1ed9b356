package addrspace

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config controls which backing resources the Builder probes and where
// the populated nodes live.
type Config struct {
	// Namespace is the namespace index all registered nodes belong to.
	Namespace uint16 `yaml:"namespace"`

	// SensorPath is the millidegree temperature sensor file.
	SensorPath string `yaml:"sensor_path"`

	// TriggerPath is the actuator trigger (control mode) file.
	TriggerPath string `yaml:"trigger_path"`

	// BrightnessPath is the actuator brightness (flag) file.
	BrightnessPath string `yaml:"brightness_path"`

	// DemoNodes enables the catalog-driven demo nodes.
	DemoNodes bool `yaml:"demo_nodes"`
}

// DefaultConfig returns the configuration for a stock Linux host with a
// Raspberry-Pi-style status LED.
func DefaultConfig() Config {
	return Config{
		Namespace:      1,
		SensorPath:     "/sys/class/thermal/thermal_zone0/temp",
		TriggerPath:    "/sys/class/leds/led0/trigger",
		BrightnessPath: "/sys/class/leds/led0/brightness",
		DemoNodes:      true,
	}
}

// LoadConfig reads a YAML config file, overlaying the defaults. Fields
// absent from the file keep their default values.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the configuration for consistency.
func (c Config) Validate() error {
	if c.Namespace == 0 {
		return fmt.Errorf("namespace 0 is reserved for the runtime")
	}
	if (c.TriggerPath == "") != (c.BrightnessPath == "") {
		return fmt.Errorf("trigger_path and brightness_path must be set together")
	}
	return nil
}
