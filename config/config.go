package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/masmgr/commitheat/internal/density"
	"github.com/masmgr/commitheat/internal/git"
	"github.com/masmgr/commitheat/internal/output"
)

// DefaultFileNames are searched, in order, in the working directory and then the home directory.
var DefaultFileNames = []string{".commitheat.json", ".commitheat.toml"}

// Config is the root configuration structure.
type Config struct {
	Display DisplayConfig `json:"display" toml:"display"`
	Density DensityConfig `json:"density" toml:"density"`
	Source  SourceConfig  `json:"source" toml:"source"`
}

// DisplayConfig holds presentation options for the console renderer.
type DisplayConfig struct {
	Character  string `json:"character" toml:"character"`   // Default: "▧"
	Shade      string `json:"shade" toml:"shade"`           // Default: "0;255;0"
	ShowMonths bool   `json:"showMonths" toml:"showMonths"` // Default: false
}

// DensityConfig holds the ordered count thresholds.
type DensityConfig struct {
	Thresholds []ThresholdConfig `json:"thresholds" toml:"thresholds"`
}

// ThresholdConfig maps the inclusive count range [Min, Max] to Level.
// A nil Max means no upper limit.
type ThresholdConfig struct {
	Min   int  `json:"min" toml:"min"`
	Max   *int `json:"max,omitempty" toml:"max,omitempty"`
	Level int  `json:"level" toml:"level"`
}

// SourceConfig selects how repository history is read.
type SourceConfig struct {
	Backend string `json:"backend" toml:"backend"` // go-git or git-cli
}

func intPtr(n int) *int { return &n }

// DefaultConfig returns a configuration with default values.
func DefaultConfig() *Config {
	return &Config{
		Display: DisplayConfig{
			Character:  "▧",
			Shade:      "0;255;0",
			ShowMonths: false,
		},
		Density: DensityConfig{
			Thresholds: []ThresholdConfig{
				{Min: 0, Max: intPtr(0), Level: 0},
				{Min: 1, Max: intPtr(2), Level: 1},
				{Min: 3, Max: intPtr(5), Level: 2},
				{Min: 6, Max: intPtr(7), Level: 3},
				{Min: 8, Level: 4},
			},
		},
		Source: SourceConfig{
			Backend: string(git.BackendGoGit),
		},
	}
}

// Thresholds converts the configured thresholds into a validated set.
func (c *Config) Thresholds() (density.Thresholds, error) {
	list := make([]density.Threshold, 0, len(c.Density.Thresholds))
	for _, th := range c.Density.Thresholds {
		p := density.AtLeast(th.Min)
		if th.Max != nil {
			p = density.Between(th.Min, *th.Max)
		}
		list = append(list, density.Threshold{Match: p, Level: th.Level})
	}
	return density.New(list...)
}

// Validate rejects configurations the renderer or classifier cannot use.
func (c *Config) Validate() error {
	if c.Display.Character == "" {
		return fmt.Errorf("display.character must not be empty")
	}
	if _, err := output.ParseShade(c.Display.Shade); err != nil {
		return fmt.Errorf("display.shade: %w", err)
	}
	th, err := c.Thresholds()
	if err != nil {
		return fmt.Errorf("density.thresholds: %w", err)
	}
	if th.MaxLevel() > output.MaxLevel {
		return fmt.Errorf("density.thresholds: level %d exceeds the highest renderable level %d", th.MaxLevel(), output.MaxLevel)
	}
	if _, err := git.ParseBackend(c.Source.Backend); err != nil {
		return fmt.Errorf("source.backend: %w", err)
	}
	return nil
}

// LoadConfig loads configuration from a file, merging with defaults.
// With an empty path the default file names are tried in the working and home directories,
// and defaults are used when none exists. A non-empty path that cannot be read is an error.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path == "" {
		path = findDefaultConfig()
		if path == "" {
			return cfg, nil
		}
	}

	// An explicitly named file must exist.
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	// Thresholds replace the defaults wholesale rather than merging by index.
	cfg.Density.Thresholds = nil
	if isTOML(path) {
		if _, err := toml.Decode(string(data), cfg); err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
	} else if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if len(cfg.Density.Thresholds) == 0 {
		cfg.Density.Thresholds = DefaultConfig().Density.Thresholds
	}

	return cfg, nil
}

// SaveConfig saves configuration to a file. The format follows the file extension.
func SaveConfig(cfg *Config, path string) error {
	if isTOML(path) {
		f, err := os.Create(path)
		if err != nil {
			return err
		}
		defer f.Close()
		return toml.NewEncoder(f).Encode(cfg)
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func findDefaultConfig() string {
	dirs := []string{"."}
	if home, err := os.UserHomeDir(); err == nil && home != "" {
		dirs = append(dirs, home)
	} else if envHome := os.Getenv("HOME"); envHome != "" {
		dirs = append(dirs, envHome)
	}
	for _, dir := range dirs {
		for _, name := range DefaultFileNames {
			p := filepath.Join(dir, name)
			if _, err := os.Stat(p); err == nil {
				return p
			}
		}
	}
	return ""
}

func isTOML(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".toml")
}
