package world

import (
	"github.com/google/uuid"

	"github.com/zeusync/spacedrift/internal/core/space"
)

// Entity is one live animated object: its trajectory state plus the transform the renderer reads.
type Entity struct {
	ID         uuid.UUID
	Kind       space.Kind
	Marker     space.Marker
	Trajectory *space.Trajectory
	Transform  space.Transform

	// SpawnedAt is the elapsed time of the tick that created the entity.
	SpawnedAt float64
}

// SpawnBundle is handed to the host when an entity is created.
// The host attaches mesh and material handles keyed by ID.
type SpawnBundle struct {
	ID        uuid.UUID       `json:"id"`
	Kind      space.Kind      `json:"kind"`
	Marker    space.Marker    `json:"marker"`
	Transform space.Transform `json:"transform"`
	Scale     float64         `json:"scale"`
}

// DespawnNotice tells the host to free everything attached to ID.
type DespawnNotice struct {
	ID        uuid.UUID  `json:"id"`
	Kind      space.Kind `json:"kind"`
	Travelled float64    `json:"travelled"`
	Z         float64    `json:"z"`
	// Lifetime is the elapsed time between the spawning and the culling tick.
	Lifetime float64 `json:"lifetime"`
}

// View is a read-only copy of an entity for rendering.
type View struct {
	ID        uuid.UUID
	Kind      space.Kind
	Transform space.Transform
	Travelled float64
}

func (e *Entity) bundle() SpawnBundle {
	return SpawnBundle{
		ID:        e.ID,
		Kind:      e.Kind,
		Marker:    e.Marker,
		Transform: e.Transform,
		Scale:     e.Trajectory.Scale,
	}
}

func (e *Entity) notice(elapsed float64) DespawnNotice {
	return DespawnNotice{
		ID:        e.ID,
		Kind:      e.Kind,
		Travelled: e.Trajectory.Travelled,
		Z:         e.Transform.Translation.Z(),
		Lifetime:  elapsed - e.SpawnedAt,
	}
}

func (e *Entity) view() View {
	return View{
		ID:        e.ID,
		Kind:      e.Kind,
		Transform: e.Transform,
		Travelled: e.Trajectory.Travelled,
	}
}
