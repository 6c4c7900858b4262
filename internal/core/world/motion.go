package world

import (
	"context"

	"github.com/zeusync/spacedrift/internal/core/trajectory"
	"github.com/zeusync/spacedrift/pkg/concurrent"
	"github.com/zeusync/spacedrift/pkg/sequence"
)

const defaultBatchSize = 64

// MotionSystem advances orientation and location of every live entity.
// With more than one worker the snapshot is split into batches updated in parallel;
// an entity is only ever touched by one goroutine.
type MotionSystem struct {
	engine    *trajectory.Engine
	workers   int
	batchSize int
}

func NewMotionSystem(engine *trajectory.Engine, workers, batchSize int) *MotionSystem {
	if workers < 1 {
		workers = 1
	}
	if batchSize < 1 {
		batchSize = defaultBatchSize
	}
	return &MotionSystem{engine: engine, workers: workers, batchSize: batchSize}
}

func (s *MotionSystem) Name() string       { return "motion" }
func (s *MotionSystem) Priority() Priority { return PriorityMotion }
func (s *MotionSystem) Phase() Phase       { return PhaseUpdate }

func (s *MotionSystem) Update(ctx context.Context, tick *Tick) error {
	live := tick.Registry.Snapshot()
	if s.workers == 1 || len(live) <= s.batchSize {
		s.advance(live, tick.Delta)
		return nil
	}

	return concurrent.Batch(ctx, sequence.From(live), s.batchSize, s.workers, func(_ context.Context, chunk []*Entity) error {
		s.advance(chunk, tick.Delta)
		return nil
	})
}

func (s *MotionSystem) advance(entities []*Entity, dt float64) {
	for _, e := range entities {
		s.engine.Update(e.Trajectory, dt, &e.Transform)
	}
}
