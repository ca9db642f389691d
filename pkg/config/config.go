// Package config loads the yaml description of a fractal pipeline: which
// detectors to run and where to checkpoint their state.
package config

import (
	"os"

	"github.com/codingconcepts/env"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/billythedummy/ta-go/pkg/indicator"
	"github.com/billythedummy/ta-go/pkg/service"
	"github.com/billythedummy/ta-go/pkg/types"
)

// DetectorConfig describes one fractal detector.
type DetectorConfig struct {
	Symbol   string         `yaml:"symbol" json:"symbol"`
	Interval types.Interval `yaml:"interval" json:"interval"`

	// Rule selects the pattern variant, "strict" or "relaxed".
	// Defaults to strict.
	Rule string `yaml:"rule,omitempty" json:"rule,omitempty"`
}

// Build constructs the detector. It starts cold, seeded with zero values, so
// classifications only become meaningful once live bars fill the ring.
func (c DetectorConfig) Build() (*indicator.WilliamsFractal, error) {
	name := c.Rule
	if name == "" {
		name = "strict"
	}

	rule, err := indicator.ParseFractalRule(name)
	if err != nil {
		return nil, err
	}

	inc := indicator.NewWilliamsFractalSeed(rule, 0, 0, 0, 0)
	inc.Interval = c.Interval
	return inc, nil
}

// CheckpointConfig selects the checkpoint backend and configures it.
type CheckpointConfig struct {
	service.CheckpointSelector `yaml:",inline"`

	Redis *service.RedisCheckpointConfig `yaml:"redis,omitempty" json:"redis,omitempty"`
	Json  *service.JsonCheckpointConfig  `yaml:"json,omitempty" json:"json,omitempty"`
}

type Config struct {
	Detectors []DetectorConfig `yaml:"detectors" json:"detectors"`

	Checkpoint *CheckpointConfig `yaml:"checkpoint,omitempty" json:"checkpoint,omitempty"`
}

// Load reads and parses the yaml config at the given path.
func Load(path string) (*Config, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	return Parse(content)
}

// Parse parses the yaml config and applies environment variable overrides to
// the redis checkpoint section.
func Parse(content []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(content, &cfg); err != nil {
		return nil, errors.Wrap(err, "can not parse config")
	}

	if cfg.Checkpoint != nil && cfg.Checkpoint.Redis != nil {
		if err := env.Set(cfg.Checkpoint.Redis); err != nil {
			return nil, errors.Wrap(err, "can not apply redis env overrides")
		}
	}

	return &cfg, nil
}

// Checkpointer builds the checkpoint facade from the configured backends and
// returns a checkpointer bound to the selector. Returns nil when no
// checkpoint section is configured.
func (c *Config) Checkpointer() *service.Checkpointer {
	if c.Checkpoint == nil {
		return nil
	}

	facade := &service.CheckpointServiceFacade{
		Memory: service.NewMemoryService(),
	}

	if c.Checkpoint.Redis != nil {
		facade.Redis = service.NewRedisCheckpointService(c.Checkpoint.Redis)
	}

	if c.Checkpoint.Json != nil {
		facade.Json = &service.JsonCheckpointService{Directory: c.Checkpoint.Json.Directory}
	}

	return &service.Checkpointer{
		Selector: &c.Checkpoint.CheckpointSelector,
		Facade:   facade,
	}
}
