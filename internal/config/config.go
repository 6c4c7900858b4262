// Package config loads the YAML configuration of the spacedrift host.
package config

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/zeusync/spacedrift/internal/core/cull"
	"github.com/zeusync/spacedrift/internal/core/observability/log"
	"github.com/zeusync/spacedrift/internal/core/schedule"
	"github.com/zeusync/spacedrift/internal/core/space"
	"github.com/zeusync/spacedrift/internal/core/world"
)

// DefaultFOV is the projection scale of the reference scene.
const DefaultFOV = 1_000_000

type Config struct {
	FOV      float64 `yaml:"fov"`
	Seed     string  `yaml:"seed"`
	Workers  int     `yaml:"workers"`
	TickRate float64 `yaml:"tick_rate"`
	LogLevel string  `yaml:"log_level"`

	Schedule ScheduleConfig           `yaml:"schedule"`
	Cull     CullConfig               `yaml:"cull"`
	Spawn    SpawnConfig              `yaml:"spawn"`
	Profiles map[string]ProfileConfig `yaml:"profiles"`
	Server   ServerConfig             `yaml:"server"`
}

// ScheduleConfig picks a preset. Interval and Window override it when Interval is set.
type ScheduleConfig struct {
	Preset   string  `yaml:"preset"`
	Interval float64 `yaml:"interval"`
	Window   float64 `yaml:"window"`
}

type CullConfig struct {
	Threshold float64 `yaml:"threshold"`
}

// SpawnConfig holds relative spawn weights keyed by kind name.
type SpawnConfig struct {
	Kinds map[string]float64 `yaml:"kinds"`
}

// ProfileConfig overrides parts of a kind's built-in profile. Absent fields keep the default.
type ProfileConfig struct {
	Size          *space.Range `yaml:"size"`
	Speed         *space.Range `yaml:"speed"`
	Azimuth       *space.Range `yaml:"azimuth"`
	RotationAxis  *space.Range `yaml:"rotation_axis"`
	RotationSpeed *space.Range `yaml:"rotation_speed"`
	MaxTravelled  *float64     `yaml:"max_travelled"`
}

type ServerConfig struct {
	ListenAddr string `yaml:"listen_addr"`
	SendBuffer int    `yaml:"send_buffer"`
}

func Default() *Config {
	return &Config{
		FOV:      DefaultFOV,
		Workers:  1,
		TickRate: 60,
		LogLevel: "info",
		Schedule: ScheduleConfig{Preset: "reference"},
		Cull:     CullConfig{Threshold: cull.DefaultThreshold},
		Server: ServerConfig{
			ListenAddr: ":8080",
			SendBuffer: 16,
		},
	}
}

// Load reads and validates the file at path on top of Default.
func Load(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open config: %w", err)
	}
	defer f.Close()

	c, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return c, nil
}

// Decode parses YAML from r on top of Default and validates the result.
// An empty document yields the defaults.
func Decode(r io.Reader) (*Config, error) {
	c := Default()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(c); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Config) Validate() error {
	if !(c.FOV > 0) || math.IsInf(c.FOV, 1) {
		return fmt.Errorf("%w: fov must be positive and finite, got %v", space.ErrDomain, c.FOV)
	}
	if c.Workers < 1 {
		return fmt.Errorf("%w: workers must be at least 1, got %d", space.ErrConfiguration, c.Workers)
	}
	if !(c.TickRate > 0) || math.IsInf(c.TickRate, 1) {
		return fmt.Errorf("%w: tick_rate must be positive, got %v", space.ErrConfiguration, c.TickRate)
	}
	if c.Server.SendBuffer < 1 {
		return fmt.Errorf("%w: server.send_buffer must be at least 1, got %d", space.ErrConfiguration, c.Server.SendBuffer)
	}
	if _, err := c.Level(); err != nil {
		return fmt.Errorf("%w: %v", space.ErrConfiguration, err)
	}
	if _, err := c.Scheduler(); err != nil {
		return err
	}
	if _, err := cull.New(c.Cull.Threshold); err != nil {
		return err
	}
	weights, err := c.KindWeights()
	if err != nil {
		return err
	}
	if err = weights.Validate(); err != nil {
		return fmt.Errorf("spawn.kinds: %w", err)
	}
	if _, err := c.SpaceProfiles(); err != nil {
		return err
	}
	return nil
}

func (c *Config) Level() (log.Level, error) {
	return log.ParseLevel(c.LogLevel)
}

// TickInterval is the wall-clock period between ticks.
func (c *Config) TickInterval() time.Duration {
	return time.Duration(float64(time.Second) / c.TickRate)
}

func (c *Config) Scheduler() (schedule.Scheduler, error) {
	if c.Schedule.Interval != 0 {
		return schedule.New(c.Schedule.Interval, c.Schedule.Window)
	}
	return schedule.Preset(c.Schedule.Preset)
}

// KindWeights converts spawn.kinds. Unset means asteroids only.
func (c *Config) KindWeights() (world.KindWeights, error) {
	if len(c.Spawn.Kinds) == 0 {
		return world.DefaultKindWeights(), nil
	}
	out := make(world.KindWeights, len(c.Spawn.Kinds))
	for name, w := range c.Spawn.Kinds {
		k, err := space.ParseKind(name)
		if err != nil {
			return nil, fmt.Errorf("spawn.kinds: %w", err)
		}
		out[k] = w
	}
	return out, nil
}

// SpaceProfiles applies the profile overrides to the built-in profiles and validates them.
func (c *Config) SpaceProfiles() (space.Profiles, error) {
	out := space.DefaultProfiles()
	for name, pc := range c.Profiles {
		k, err := space.ParseKind(name)
		if err != nil {
			return nil, fmt.Errorf("profiles: %w", err)
		}
		out[k] = pc.apply(out[k])
	}
	if err := out.Validate(); err != nil {
		return nil, fmt.Errorf("profiles: %w", err)
	}
	return out, nil
}

func (pc ProfileConfig) apply(p space.Profile) space.Profile {
	set := func(dst *space.Range, src *space.Range) {
		if src != nil {
			*dst = *src
		}
	}
	set(&p.Size, pc.Size)
	set(&p.Speed, pc.Speed)
	set(&p.Azimuth, pc.Azimuth)
	set(&p.RotationAxis, pc.RotationAxis)
	set(&p.RotationSpeed, pc.RotationSpeed)
	if pc.MaxTravelled != nil {
		p.MaxTravelled = *pc.MaxTravelled
	}
	return p
}
