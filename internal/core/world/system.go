package world

import (
	"context"

	"github.com/zeusync/spacedrift/internal/core/space"
)

// Priority orders systems within a tick; lower runs first.
type Priority uint16

const (
	PrioritySpawn  Priority = 100
	PriorityMotion Priority = 200
	PriorityCull   Priority = 300
)

// System is one phase of the tick.
type System interface {
	Name() string
	Priority() Priority
	Phase() Phase
	Update(ctx context.Context, tick *Tick) error
}

// Tick is the per-frame context handed to every system.
type Tick struct {
	Frame    uint64
	Elapsed  float64
	Delta    float64
	Registry *Registry
	Report   *TickReport
}

// TickReport summarizes what happened during one tick.
type TickReport struct {
	Frame     uint64
	Elapsed   float64
	Delta     float64
	Spawned   []SpawnBundle
	Despawned []DespawnNotice
	Live      int
	PerKind   map[space.Kind]int
}
