package world

import (
	"context"
	"fmt"
	"math"
	"sort"

	"github.com/google/uuid"

	"github.com/zeusync/spacedrift/internal/core/factory"
	"github.com/zeusync/spacedrift/internal/core/observability/log"
	"github.com/zeusync/spacedrift/internal/core/schedule"
	"github.com/zeusync/spacedrift/internal/core/space"
	"github.com/zeusync/spacedrift/internal/core/trajectory"
)

// KindWeights is the relative spawn frequency of each kind.
type KindWeights map[space.Kind]float64

// DefaultKindWeights spawns asteroids only.
func DefaultKindWeights() KindWeights {
	return KindWeights{space.KindAsteroid: 1}
}

// Validate reports whether the weights can drive a spawn system.
func (w KindWeights) Validate() error {
	_, err := newKindPicker(w)
	return err
}

type weightedKind struct {
	kind       space.Kind
	cumulative float64
}

// kindPicker draws a kind from weights. With a single candidate it draws nothing
// so the descriptor stream stays identical to a single-kind run.
type kindPicker struct {
	entries []weightedKind
	total   float64
}

func newKindPicker(weights KindWeights) (*kindPicker, error) {
	if len(weights) == 0 {
		weights = DefaultKindWeights()
	}
	kinds := make([]space.Kind, 0, len(weights))
	for k, w := range weights {
		if !k.Valid() {
			return nil, fmt.Errorf("%w: %s", space.ErrUnknownKind, k)
		}
		if w < 0 || math.IsNaN(w) || math.IsInf(w, 0) {
			return nil, fmt.Errorf("%w: weight of %s is %v", space.ErrConfiguration, k, w)
		}
		if w > 0 {
			kinds = append(kinds, k)
		}
	}
	if len(kinds) == 0 {
		return nil, fmt.Errorf("%w: every kind weight is zero", space.ErrConfiguration)
	}
	sort.Slice(kinds, func(i, j int) bool { return kinds[i] < kinds[j] })

	p := &kindPicker{}
	for _, k := range kinds {
		p.total += weights[k]
		p.entries = append(p.entries, weightedKind{kind: k, cumulative: p.total})
	}
	return p, nil
}

func (p *kindPicker) pick(rng factory.Source) space.Kind {
	if len(p.entries) == 1 {
		return p.entries[0].kind
	}
	u := rng.Float64() * p.total
	for _, e := range p.entries {
		if u < e.cumulative {
			return e.kind
		}
	}
	return p.entries[len(p.entries)-1].kind
}

// SpawnSystem creates at most one object on every tick the scheduler marks as due.
type SpawnSystem struct {
	scheduler schedule.Scheduler
	factory   *factory.Factory
	engine    *trajectory.Engine
	rng       factory.Source
	picker    *kindPicker
	fov       float64
	newID     func() uuid.UUID
	logger    log.Log
}

// SpawnOptions configures a SpawnSystem.
type SpawnOptions struct {
	Scheduler schedule.Scheduler
	FOV       float64
	Weights   KindWeights
	// NewID generates entity identifiers; uuid.New when nil.
	NewID func() uuid.UUID
}

func NewSpawnSystem(opts SpawnOptions, f *factory.Factory, engine *trajectory.Engine, rng factory.Source, logger log.Log) (*SpawnSystem, error) {
	if err := opts.Scheduler.Validate(); err != nil {
		return nil, err
	}
	if !(opts.FOV > 0) || math.IsInf(opts.FOV, 1) {
		return nil, fmt.Errorf("%w: fov must be positive and finite, got %v", space.ErrDomain, opts.FOV)
	}
	if f == nil || engine == nil || rng == nil {
		return nil, fmt.Errorf("%w: spawn system needs a factory, an engine and a randomness source", space.ErrConfiguration)
	}
	picker, err := newKindPicker(opts.Weights)
	if err != nil {
		return nil, err
	}
	if opts.NewID == nil {
		opts.NewID = uuid.New
	}
	if logger == nil {
		logger = log.NewNop()
	}
	return &SpawnSystem{
		scheduler: opts.Scheduler,
		factory:   f,
		engine:    engine,
		rng:       rng,
		picker:    picker,
		fov:       opts.FOV,
		newID:     opts.NewID,
		logger:    logger.With(log.String("system", "spawn")),
	}, nil
}

func (s *SpawnSystem) Name() string       { return "spawn" }
func (s *SpawnSystem) Priority() Priority { return PrioritySpawn }
func (s *SpawnSystem) Phase() Phase       { return PhaseSpawn }

func (s *SpawnSystem) Update(_ context.Context, tick *Tick) error {
	if !s.scheduler.IsDue(tick.Elapsed) {
		return nil
	}

	kind := s.picker.pick(s.rng)
	e, err := s.spawn(kind, tick.Elapsed)
	if err != nil {
		s.logger.Warn("Spawn failed", log.Stringer("kind", kind), log.Error(err))
		return nil
	}
	if err = tick.Registry.Insert(e); err != nil {
		return err
	}

	tick.Report.Spawned = append(tick.Report.Spawned, e.bundle())
	s.logger.Debug("Spawned object",
		log.String("id", e.ID.String()),
		log.Stringer("kind", kind),
		log.Float64("scale", e.Trajectory.Scale),
		log.Float64("speed", e.Trajectory.Speed))
	return nil
}

func (s *SpawnSystem) spawn(kind space.Kind, elapsed float64) (*Entity, error) {
	d, err := s.factory.CreateFrom(kind, s.rng)
	if err != nil {
		return nil, err
	}
	traj, tr, err := s.engine.Project(d, s.fov)
	if err != nil {
		return nil, err
	}
	return &Entity{
		ID:         s.newID(),
		Kind:       kind,
		Marker:     space.MarkerAnimated,
		Trajectory: traj,
		Transform:  tr,
		SpawnedAt:  elapsed,
	}, nil
}
