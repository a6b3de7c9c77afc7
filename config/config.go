// Package config loads the driver configuration from a TOML file in the
// user's home directory, creating it from an embedded default on first
// run.
package config

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"time"

	"github.com/BurntSushi/toml"
)

//go:embed pendant.toml
var defaultConfigData []byte

// Global state variables populated by Initialize.
var (
	TransportName string
	VendorID      uint16
	ProductID     uint16
	PollInterval  time.Duration
	ReadTimeout   time.Duration
	LeadCode      byte
	SerialPort    string
)

// Config represents the entire TOML configuration structure.
type Config struct {
	Transport string `toml:"transport"`
	Device    Device `toml:"device"`
	Poll      Poll   `toml:"poll"`
	Dial      Dial   `toml:"dial"`
	Serial    Serial `toml:"serial"`
}

// Device identifies the pendant receiver on the USB bus.
type Device struct {
	VID int `toml:"vid"`
	PID int `toml:"pid"`
}

// Poll holds the polling loop timing parameters.
type Poll struct {
	IntervalMs    int `toml:"interval_ms"`
	ReadTimeoutMs int `toml:"read_timeout_ms"`
}

// Dial holds dial-code overrides for firmware revisions that disagree.
type Dial struct {
	LeadCode int `toml:"lead_code"`
}

// Serial configures the serial-bridge transport.
type Serial struct {
	Port string `toml:"port"`
}

// configPath determines the config file path based on the operating system.
func configPath() (string, error) {
	var configDir string
	var err error

	switch runtime.GOOS {
	case "windows":
		// Use AppData directory for Windows
		configDir, err = os.UserConfigDir()
		if err != nil {
			return "", fmt.Errorf("cannot determine user config directory: %w", err)
		}
		configDir = filepath.Join(configDir, "pendant")
	default:
		// Linux/macOS: use home directory
		configDir, err = os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("cannot determine user home directory: %w", err)
		}
	}

	return filepath.Join(configDir, ".pendant"), nil
}

// Initialize loads and validates the configuration file.
// If the config file doesn't exist, it creates it from the embedded default.
func Initialize() error {
	path, err := configPath()
	if err != nil {
		return err
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		dir := filepath.Dir(path)
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create config directory %s: %w", dir, err)
		}
		if err := os.WriteFile(path, defaultConfigData, 0644); err != nil {
			return fmt.Errorf("failed to create default config file at %s: %w", path, err)
		}
	}

	var conf Config
	if _, err := toml.DecodeFile(path, &conf); err != nil {
		return fmt.Errorf("failed to parse TOML config at %s: %w", path, err)
	}

	if err := Apply(conf); err != nil {
		return fmt.Errorf("invalid config at %s: %w", path, err)
	}
	return nil
}

// Apply validates conf and stores its values in the package globals.
func Apply(conf Config) error {
	if conf.Transport == "" {
		return errors.New("`transport` key is missing or empty")
	}
	if conf.Device.VID <= 0 || conf.Device.VID > 0xFFFF {
		return fmt.Errorf("device vid 0x%X out of range", conf.Device.VID)
	}
	if conf.Device.PID <= 0 || conf.Device.PID > 0xFFFF {
		return fmt.Errorf("device pid 0x%X out of range", conf.Device.PID)
	}
	if conf.Poll.IntervalMs <= 0 {
		return fmt.Errorf("poll interval_ms %d must be positive", conf.Poll.IntervalMs)
	}
	if conf.Poll.ReadTimeoutMs <= 0 {
		return fmt.Errorf("poll read_timeout_ms %d must be positive", conf.Poll.ReadTimeoutMs)
	}
	if conf.Dial.LeadCode < 0 || conf.Dial.LeadCode > 0xFF {
		return fmt.Errorf("dial lead_code 0x%X out of range", conf.Dial.LeadCode)
	}

	TransportName = conf.Transport
	VendorID = uint16(conf.Device.VID)
	ProductID = uint16(conf.Device.PID)
	PollInterval = time.Duration(conf.Poll.IntervalMs) * time.Millisecond
	ReadTimeout = time.Duration(conf.Poll.ReadTimeoutMs) * time.Millisecond
	LeadCode = byte(conf.Dial.LeadCode)
	SerialPort = conf.Serial.Port
	return nil
}
