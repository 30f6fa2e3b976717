// Package config provides the Config struct and loader for .formeval.yaml
// project-level configuration files: replay defaults plus optional
// per-exercise tolerance overrides.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ConfigFileName is the file the loader walks up the directory tree for.
const ConfigFileName = ".formeval.yaml"

// Default values for replay configuration. New() references them and no
// other code should duplicate them.
const (
	DefaultExercise        = "squat"
	DefaultWorkers         = 4
	DefaultConfidenceLevel = 0.95
)

// ReplayConfig holds default replay parameters.
type ReplayConfig struct {
	Exercise        string  `yaml:"exercise,omitempty"`
	Workers         int     `yaml:"workers,omitempty"`
	ConfidenceLevel float64 `yaml:"confidence_level,omitempty"`
}

// Config is the top-level configuration loaded from .formeval.yaml.
// Exercises maps an exercise type to tolerance overrides handed verbatim to
// the evaluator factory; absent entries keep the built-in defaults, which is
// what behavioral parity testing relies on.
type Config struct {
	Replay    ReplayConfig              `yaml:"replay,omitempty"`
	Exercises map[string]map[string]any `yaml:"exercises,omitempty"`
}

// New returns a Config with all hard-coded defaults populated.
func New() *Config {
	return &Config{
		Replay: ReplayConfig{
			Exercise:        DefaultExercise,
			Workers:         DefaultWorkers,
			ConfidenceLevel: DefaultConfidenceLevel,
		},
	}
}

// Params returns the tolerance overrides for an exercise type, or nil when
// the config does not mention it.
func (c *Config) Params(exercise string) map[string]any {
	if c == nil || c.Exercises == nil {
		return nil
	}
	return c.Exercises[exercise]
}

// Load finds .formeval.yaml by walking up from startDir (max 10 levels),
// unmarshals it, and fills in missing fields with defaults. If no config
// file is found, returns defaults with a nil error. Real I/O errors (e.g.
// permission denied) are returned to the caller.
func Load(startDir string) (*Config, error) {
	cfg := New()

	data, err := findConfigFile(startDir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil // no file found → return defaults
		}
		return nil, fmt.Errorf("loading %s: %w", ConfigFileName, err)
	}

	var fileCfg Config
	if err := yaml.Unmarshal(data, &fileCfg); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", ConfigFileName, err)
	}

	mergeConfig(cfg, &fileCfg)
	return cfg, nil
}

// findConfigFile walks up from dir looking for .formeval.yaml (max 10
// levels). Returns os.ErrNotExist if no config file is found. Propagates
// real I/O errors instead of silently swallowing them.
func findConfigFile(dir string) ([]byte, error) {
	absDir, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("resolving path %q: %w", dir, err)
	}
	dir = absDir

	for i := 0; i < 10; i++ {
		p := filepath.Join(dir, ConfigFileName)
		data, err := os.ReadFile(p)
		if err == nil {
			return data, nil
		}
		if !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("reading %q: %w", p, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break // reached filesystem root
		}
		dir = parent
	}
	return nil, os.ErrNotExist
}

// mergeConfig overlays non-zero values from src onto dst.
func mergeConfig(dst, src *Config) {
	if src.Replay.Exercise != "" {
		dst.Replay.Exercise = src.Replay.Exercise
	}
	if src.Replay.Workers > 0 {
		dst.Replay.Workers = src.Replay.Workers
	}
	if src.Replay.ConfidenceLevel > 0 {
		dst.Replay.ConfidenceLevel = src.Replay.ConfidenceLevel
	}
	if len(src.Exercises) > 0 {
		dst.Exercises = src.Exercises
	}
}
