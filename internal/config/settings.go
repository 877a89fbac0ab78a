package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Settings holds CLI preferences read from config.toml.
type Settings struct {
	Output     OutputSettings     `toml:"output"`
	Simulation SimulationSettings `toml:"simulation"`
	Server     ServerSettings     `toml:"server"`
}

// OutputSettings controls exporters.
type OutputSettings struct {
	Format         string `toml:"format"`
	Directory      string `toml:"directory,omitempty"`
	CurrencySymbol string `toml:"currency_symbol"`
}

// SimulationSettings controls Monte Carlo runs.
type SimulationSettings struct {
	Seed    int64 `toml:"seed,omitempty"`
	Workers int   `toml:"workers,omitempty"`
}

// ServerSettings holds defaults for `wealthcalc serve`; environment
// variables override them.
type ServerSettings struct {
	Addr string `toml:"addr"`
}

// DefaultSettings returns the default settings.
func DefaultSettings() Settings {
	return Settings{
		Output: OutputSettings{
			Format:         "console",
			CurrencySymbol: "₹",
		},
		Server: ServerSettings{
			Addr: ":8080",
		},
	}
}

// SettingsDir returns the XDG-compliant config directory.
func SettingsDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "wealthcalc")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "wealthcalc")
}

// SettingsPath returns the full path to the settings file.
func SettingsPath() string {
	return filepath.Join(SettingsDir(), "config.toml")
}

// LoadSettings reads the settings file, returning defaults if it doesn't exist.
func LoadSettings() (Settings, error) {
	return LoadSettingsFrom(SettingsPath())
}

// LoadSettingsFrom reads settings from path over the defaults.
func LoadSettingsFrom(path string) (Settings, error) {
	s := DefaultSettings()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return s, nil
		}
		return s, fmt.Errorf("reading config: %w", err)
	}

	if err := toml.Unmarshal(data, &s); err != nil {
		return s, fmt.Errorf("parsing config: %w", err)
	}

	return s, nil
}

// SaveSettings writes settings to path, creating its directory. Encode and
// close failures are both reported.
func SaveSettings(s Settings, path string) (err error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("creating config file: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("closing config file: %w", cerr)
		}
	}()

	if err := toml.NewEncoder(f).Encode(s); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// SettingsExist returns true if a settings file exists on disk.
func SettingsExist() bool {
	_, err := os.Stat(SettingsPath())
	return err == nil
}
