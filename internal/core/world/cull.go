package world

import (
	"context"

	"github.com/google/uuid"

	"github.com/zeusync/spacedrift/internal/core/cull"
	"github.com/zeusync/spacedrift/internal/core/observability/log"
	"github.com/zeusync/spacedrift/pkg/sequence"
)

// CullSystem removes every entity whose despawn predicate holds. Removal is immediate.
type CullSystem struct {
	culler *cull.Culler
	logger log.Log
}

func NewCullSystem(culler *cull.Culler, logger log.Log) *CullSystem {
	if logger == nil {
		logger = log.NewNop()
	}
	return &CullSystem{culler: culler, logger: logger.With(log.String("system", "cull"))}
}

func (s *CullSystem) Name() string       { return "cull" }
func (s *CullSystem) Priority() Priority { return PriorityCull }
func (s *CullSystem) Phase() Phase       { return PhaseCull }

func (s *CullSystem) Update(_ context.Context, tick *Tick) error {
	expired, _ := sequence.From(tick.Registry.Snapshot()).Partition(func(e *Entity) bool {
		return s.culler.ShouldDespawn(e.Trajectory, e.Transform)
	})
	if len(expired) == 0 {
		return nil
	}

	ids := make([]uuid.UUID, len(expired))
	for i, e := range expired {
		ids[i] = e.ID
	}
	removed, err := tick.Registry.Remove(ids...)
	if err != nil {
		return err
	}

	for _, e := range removed {
		n := e.notice(tick.Elapsed)
		tick.Report.Despawned = append(tick.Report.Despawned, n)
		s.logger.Debug("Despawned object",
			log.String("id", e.ID.String()),
			log.Float64("lifetime", n.Lifetime),
			log.Float64("travelled", e.Trajectory.Travelled),
			log.Float64("z", e.Transform.Translation.Z()))
	}
	return nil
}
