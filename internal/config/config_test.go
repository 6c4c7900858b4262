package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zeusync/spacedrift/internal/core/observability/log"
	"github.com/zeusync/spacedrift/internal/core/schedule"
	"github.com/zeusync/spacedrift/internal/core/space"
	"github.com/zeusync/spacedrift/internal/core/world"
)

func TestDefaultValidates(t *testing.T) {
	c := Default()
	require.NoError(t, c.Validate())

	s, err := c.Scheduler()
	require.NoError(t, err)
	assert.Equal(t, schedule.Reference, s)

	weights, err := c.KindWeights()
	require.NoError(t, err)
	assert.Equal(t, world.DefaultKindWeights(), weights)

	profiles, err := c.SpaceProfiles()
	require.NoError(t, err)
	assert.Equal(t, space.DefaultProfiles(), profiles)

	level, err := c.Level()
	require.NoError(t, err)
	assert.Equal(t, log.LevelInfo, level)
	assert.Equal(t, time.Second/60, c.TickInterval())
}

func TestDecodeEmpty(t *testing.T) {
	c, err := Decode(strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, Default(), c)
}

func TestDecodeOverrides(t *testing.T) {
	doc := `
fov: 500000
seed: nebula
workers: 4
tick_rate: 30
log_level: debug
schedule:
  preset: relaxed
cull:
  threshold: 12
spawn:
  kinds:
    asteroid: 3
    astronaut: 1
profiles:
  asteroid:
    size: {min: 0.2, max: 0.3}
  astronaut:
    max_travelled: 2.5
server:
  listen_addr: "127.0.0.1:9000"
  send_buffer: 4
`
	c, err := Decode(strings.NewReader(doc))
	require.NoError(t, err)

	assert.Equal(t, 500000.0, c.FOV)
	assert.Equal(t, "nebula", c.Seed)
	assert.Equal(t, 4, c.Workers)
	assert.Equal(t, 12.0, c.Cull.Threshold)
	assert.Equal(t, "127.0.0.1:9000", c.Server.ListenAddr)
	assert.Equal(t, 4, c.Server.SendBuffer)

	s, err := c.Scheduler()
	require.NoError(t, err)
	assert.Equal(t, schedule.Relaxed, s)

	weights, err := c.KindWeights()
	require.NoError(t, err)
	assert.Equal(t, world.KindWeights{space.KindAsteroid: 3, space.KindAstronaut: 1}, weights)

	profiles, err := c.SpaceProfiles()
	require.NoError(t, err)
	defaults := space.DefaultProfiles()
	assert.Equal(t, space.Range{Min: 0.2, Max: 0.3}, profiles[space.KindAsteroid].Size)
	assert.Equal(t, defaults[space.KindAsteroid].Speed, profiles[space.KindAsteroid].Speed)
	assert.Equal(t, 2.5, profiles[space.KindAstronaut].MaxTravelled)
	assert.Equal(t, defaults[space.KindAstronaut].Size, profiles[space.KindAstronaut].Size)
}

func TestDecodeCustomSchedule(t *testing.T) {
	c, err := Decode(strings.NewReader("schedule:\n  interval: 1\n  window: 0.1\n"))
	require.NoError(t, err)
	s, err := c.Scheduler()
	require.NoError(t, err)
	assert.Equal(t, schedule.Scheduler{Interval: 1, Window: 0.1}, s)
}

func TestDecodeRejects(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want error
	}{
		{"zero fov", "fov: 0", space.ErrDomain},
		{"negative fov", "fov: -5", space.ErrDomain},
		{"inverted range", "profiles:\n  asteroid:\n    speed: {min: 0.3, max: 0.2}", space.ErrConfiguration},
		{"unknown profile kind", "profiles:\n  comet:\n    size: {min: 0.1, max: 0.2}", space.ErrUnknownKind},
		{"unknown spawn kind", "spawn:\n  kinds:\n    comet: 1", space.ErrUnknownKind},
		{"zero weights", "spawn:\n  kinds:\n    asteroid: 0", space.ErrConfiguration},
		{"bad window", "schedule:\n  interval: 1\n  window: 2", space.ErrConfiguration},
		{"bad preset", "schedule:\n  preset: eager", space.ErrConfiguration},
		{"workers", "workers: 0", space.ErrConfiguration},
		{"tick rate", "tick_rate: 0", space.ErrConfiguration},
		{"send buffer", "server:\n  send_buffer: 0", space.ErrConfiguration},
		{"log level", "log_level: loud", space.ErrConfiguration},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(strings.NewReader(tt.doc))
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestDecodeUnknownField(t *testing.T) {
	_, err := Decode(strings.NewReader("fovv: 10"))
	assert.Error(t, err)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "spacedrift.yaml")
	require.NoError(t, os.WriteFile(path, []byte("seed: file\nworkers: 2\n"), 0o600))

	c, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "file", c.Seed)
	assert.Equal(t, 2, c.Workers)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
