package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/BurntSushi/toml"
)

// Config represents the host shell configuration. It is entirely
// optional: the machine runs with DefaultConfig's values when no
// mixvm.toml file is present.
type Config struct {
	// Execution settings
	Execution struct {
		MaxCycles   uint64 `toml:"max_cycles"`
		EnableTrace bool   `toml:"enable_trace"`
	} `toml:"execution"`

	// Trace settings, consulted only when Execution.EnableTrace is set.
	Trace struct {
		OutputFile string `toml:"output_file"`
		MaxEntries int    `toml:"max_entries"`
	} `toml:"trace"`

	// Memory settings record the hosted demo program's region bases. The
	// host shell does not read them: the demo image is always loaded at
	// the bases compiled into package demo.
	Memory struct {
		ProgramBase int `toml:"program_base"`
		DataBase    int `toml:"data_base"`
		InputBase   int `toml:"input_base"`
		ScratchBase int `toml:"scratch_base"`
	} `toml:"memory"`

	// Devices settings select which I/O device slots the line reader and
	// line printer are installed at.
	Devices struct {
		ReaderSlot  int `toml:"reader_slot"`
		PrinterSlot int `toml:"printer_slot"`
	} `toml:"devices"`
}

// DefaultConfig returns a configuration with default values.
func DefaultConfig() *Config {
	cfg := &Config{}

	cfg.Execution.MaxCycles = 1_000_000
	cfg.Execution.EnableTrace = false

	cfg.Trace.OutputFile = "trace.log"
	cfg.Trace.MaxEntries = 100000

	cfg.Memory.ProgramBase = 0
	cfg.Memory.DataBase = 3000
	cfg.Memory.ScratchBase = 3100
	cfg.Memory.InputBase = 3200

	cfg.Devices.ReaderSlot = 19
	cfg.Devices.PrinterSlot = 18

	return cfg
}

// GetConfigPath returns the platform-specific config file path.
func GetConfigPath() string {
	var configDir string

	switch runtime.GOOS {
	case "windows":
		configDir = os.Getenv("APPDATA")
		if configDir == "" {
			configDir = filepath.Join(os.Getenv("USERPROFILE"), "AppData", "Roaming")
		}
		configDir = filepath.Join(configDir, "mixvm")

	case "darwin", "linux":
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "mixvm.toml"
		}
		configDir = filepath.Join(homeDir, ".config", "mixvm")

	default:
		return "mixvm.toml"
	}

	if err := os.MkdirAll(configDir, 0750); err != nil {
		return "mixvm.toml"
	}

	return filepath.Join(configDir, "mixvm.toml")
}

// GetLogPath returns the platform-specific log directory path.
func GetLogPath() string {
	var logDir string

	switch runtime.GOOS {
	case "windows":
		logDir = os.Getenv("APPDATA")
		if logDir == "" {
			logDir = filepath.Join(os.Getenv("USERPROFILE"), "AppData", "Roaming")
		}
		logDir = filepath.Join(logDir, "mixvm", "logs")

	case "darwin", "linux":
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "logs"
		}
		logDir = filepath.Join(homeDir, ".local", "share", "mixvm", "logs")

	default:
		return "logs"
	}

	if err := os.MkdirAll(logDir, 0750); err != nil {
		return "logs"
	}

	return logDir
}

// Load loads configuration from the default config file.
func Load() (*Config, error) {
	return LoadFrom(GetConfigPath())
}

// LoadFrom loads configuration from the specified file. A missing file
// is not an error: the defaults are returned as-is.
func LoadFrom(path string) (*Config, error) {
	cfg := DefaultConfig()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return cfg, nil
}

// Save saves configuration to the default config file.
func (c *Config) Save() error {
	return c.SaveTo(GetConfigPath())
}

// SaveTo saves configuration to the specified file.
func (c *Config) SaveTo(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	f, err := os.Create(path) // #nosec G304 -- user config file path
	if err != nil {
		return fmt.Errorf("failed to create config file: %w", err)
	}
	defer f.Close()

	encoder := toml.NewEncoder(f)
	if err := encoder.Encode(c); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}

	return nil
}
