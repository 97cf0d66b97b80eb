// Package config loads gotri settings from YAML.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"

	"github.com/philipparndt/gotri/pkg/triangle"
)

// Config is the root configuration structure
type Config struct {
	Solver  SolverConfig  `yaml:"solver"`
	Output  OutputConfig  `yaml:"output"`
	History HistoryConfig `yaml:"history"`
	Watch   WatchConfig   `yaml:"watch"`
}

// SolverConfig controls the inference engine
type SolverConfig struct {
	Tolerance float64 `yaml:"tolerance"` // Relative slack for the triangle inequality
	Lenient   bool    `yaml:"lenient"`   // Propagate NaN instead of failing
}

// OutputConfig controls how results are rendered
type OutputConfig struct {
	Format    string `yaml:"format"`    // text, json or yaml
	Precision int    `yaml:"precision"` // Fraction digits in text output
	Locale    string `yaml:"locale"`    // BCP 47 tag for number formatting
}

// HistoryConfig controls the solve history database
type HistoryConfig struct {
	Enabled bool   `yaml:"enabled"`
	Path    string `yaml:"path"` // Relative paths resolve against the config file
}

// WatchConfig controls the watch command
type WatchConfig struct {
	Debounce time.Duration `yaml:"debounce"`
}

// Formats lists the accepted output formats
var Formats = []string{"text", "json", "yaml"}

// Defaults returns a config with default values
func Defaults() *Config {
	return &Config{
		Solver: SolverConfig{
			Tolerance: triangle.DefaultTolerance,
		},
		Output: OutputConfig{
			Format:    "text",
			Precision: 4,
			Locale:    "en",
		},
		History: HistoryConfig{
			Path: defaultHistoryPath(),
		},
		Watch: WatchConfig{
			Debounce: 200 * time.Millisecond,
		},
	}
}

func defaultHistoryPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "gotri_history.db"
	}
	return filepath.Join(home, ".config", "gotri", "history.db")
}

// Load reads configuration with ENV interpolation. An empty configPath
// searches the default locations and falls back to Defaults() when none
// exists.
func Load(configPath string, getenv func(string) string) (*Config, error) {
	cfg, _, err := LoadWithPath(configPath, getenv)
	return cfg, err
}

// LoadWithPath is Load that also returns the file used ("" for defaults)
func LoadWithPath(configPath string, getenv func(string) string) (*Config, string, error) {
	path, err := resolveConfigPath(configPath, getenv)
	if err != nil {
		return nil, "", err
	}
	if path == "" {
		return Defaults(), "", nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, "", fmt.Errorf("failed to read config: %w", err)
	}

	data = interpolateEnv(data, getenv)

	cfg := Defaults()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, "", fmt.Errorf("failed to parse config: %w", err)
	}

	if cfg.History.Path != "" && !filepath.IsAbs(cfg.History.Path) {
		absPath, err := filepath.Abs(path)
		if err != nil {
			return nil, "", fmt.Errorf("failed to resolve config path: %w", err)
		}
		cfg.History.Path = filepath.Join(filepath.Dir(absPath), cfg.History.Path)
	}

	if err := Validate(cfg); err != nil {
		return nil, "", err
	}

	return cfg, path, nil
}

// Validate checks the configuration for errors. It is called again by the
// CLI after flags have been applied.
func Validate(cfg *Config) error {
	var errs []string

	if cfg.Solver.Tolerance <= 0 || cfg.Solver.Tolerance >= 1 {
		errs = append(errs, fmt.Sprintf("solver.tolerance must be in (0, 1), got %v", cfg.Solver.Tolerance))
	}

	valid := false
	for _, f := range Formats {
		if cfg.Output.Format == f {
			valid = true
		}
	}
	if !valid {
		errs = append(errs, fmt.Sprintf("output.format must be one of %s, got %q", strings.Join(Formats, ", "), cfg.Output.Format))
	}

	if cfg.Output.Precision < 0 || cfg.Output.Precision > 15 {
		errs = append(errs, fmt.Sprintf("output.precision must be between 0 and 15, got %d", cfg.Output.Precision))
	}

	if _, err := language.Parse(cfg.Output.Locale); err != nil {
		errs = append(errs, fmt.Sprintf("output.locale %q: %v", cfg.Output.Locale, err))
	}

	if cfg.History.Enabled && cfg.History.Path == "" {
		errs = append(errs, "history.path is required when history is enabled")
	}

	if cfg.Watch.Debounce < 0 {
		errs = append(errs, fmt.Sprintf("watch.debounce must not be negative, got %v", cfg.Watch.Debounce))
	}

	if len(errs) > 0 {
		return fmt.Errorf("config validation failed:\n  - %s", strings.Join(errs, "\n  - "))
	}
	return nil
}

// resolveConfigPath finds the config file to use.
// Search order: explicit path > GOTRI_CONFIG env > ./gotri.yaml > ~/.config/gotri/gotri.yaml
func resolveConfigPath(explicit string, getenv func(string) string) (string, error) {
	if explicit != "" {
		if _, err := os.Stat(explicit); err != nil {
			return "", fmt.Errorf("config file not found: %s", explicit)
		}
		return explicit, nil
	}

	if envPath := getenv("GOTRI_CONFIG"); envPath != "" {
		if _, err := os.Stat(envPath); err != nil {
			return "", fmt.Errorf("GOTRI_CONFIG file not found: %s", envPath)
		}
		return envPath, nil
	}

	if _, err := os.Stat("gotri.yaml"); err == nil {
		return "gotri.yaml", nil
	}

	home, err := os.UserHomeDir()
	if err == nil {
		xdgPath := filepath.Join(home, ".config", "gotri", "gotri.yaml")
		if _, err := os.Stat(xdgPath); err == nil {
			return xdgPath, nil
		}
	}

	return "", nil
}

// envPattern matches ${VAR} or ${VAR:-default}
var envPattern = regexp.MustCompile(`\$\{([^}:]+)(?::-([^}]*))?\}`)

// interpolateEnv replaces ${VAR} and ${VAR:-default} patterns with environment values.
func interpolateEnv(data []byte, getenv func(string) string) []byte {
	return envPattern.ReplaceAllFunc(data, func(match []byte) []byte {
		parts := envPattern.FindSubmatch(match)
		if len(parts) < 2 {
			return match
		}

		value := getenv(string(parts[1]))
		if value == "" && len(parts) >= 3 && len(parts[2]) > 0 {
			value = string(parts[2])
		}

		return []byte(value)
	})
}
