// Package config provides difficulty profiles and play-field settings,
// optionally overridden from a YAML file.
package config

import (
	"os"
	"time"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/shadow-dodge/constants"
)

// Config is the resolved game configuration
type Config struct {
	FieldWidth  float64
	FieldHeight float64
	profiles    [tierCount]Profile
}

// Profile returns the active profile for a tier
func (c *Config) Profile(t Tier) (Profile, error) {
	if !t.Valid() {
		return Profile{}, errors.Wrapf(ErrUnknownTier, "tier %d", int(t))
	}
	return c.profiles[t], nil
}

// Default returns the built-in configuration
func Default() *Config {
	return &Config{
		FieldWidth:  constants.DefaultFieldWidth,
		FieldHeight: constants.DefaultFieldHeight,
		profiles:    defaultProfiles,
	}
}

// fileConfig mirrors the YAML layout, pointers distinguish unset fields
type fileConfig struct {
	Field struct {
		Width  *float64 `yaml:"width"`
		Height *float64 `yaml:"height"`
	} `yaml:"field"`
	Difficulty map[string]profileOverride `yaml:"difficulty"`
}

type profileOverride struct {
	BaseObstacles *int     `yaml:"base_obstacles"`
	RoundDuration *float64 `yaml:"round_duration"` // seconds
	BaseScoreCap  *float64 `yaml:"base_score_cap"`
}

// Load reads a YAML config file on top of the defaults
// An empty path or a missing file yields the defaults
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, errors.Wrapf(err, "read config %s", path)
	}

	if err := cfg.apply(data); err != nil {
		return nil, errors.Wrapf(err, "parse config %s", path)
	}
	return cfg, nil
}

// Parse applies YAML bytes on top of the defaults
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	if err := cfg.apply(data); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) apply(data []byte) error {
	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return errors.Wrap(err, "yaml")
	}

	if fc.Field.Width != nil {
		if *fc.Field.Width <= constants.PlayerSize {
			return errors.Errorf("field width %.0f too small", *fc.Field.Width)
		}
		c.FieldWidth = *fc.Field.Width
	}
	if fc.Field.Height != nil {
		if *fc.Field.Height <= constants.PlayerSize {
			return errors.Errorf("field height %.0f too small", *fc.Field.Height)
		}
		c.FieldHeight = *fc.Field.Height
	}

	for name, o := range fc.Difficulty {
		tier, err := ParseTier(name)
		if err != nil {
			return err
		}
		p := c.profiles[tier]
		if o.BaseObstacles != nil {
			if *o.BaseObstacles < 0 {
				return errors.Errorf("%s: base_obstacles must be >= 0", name)
			}
			p.BaseObstacles = *o.BaseObstacles
		}
		if o.RoundDuration != nil {
			if *o.RoundDuration <= 0 {
				return errors.Errorf("%s: round_duration must be > 0", name)
			}
			p.RoundDuration = time.Duration(*o.RoundDuration * float64(time.Second))
		}
		if o.BaseScoreCap != nil {
			p.BaseScoreCap = *o.BaseScoreCap
		}
		c.profiles[tier] = p
	}
	return nil
}
