package world

import (
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/zeusync/spacedrift/internal/core/space"
	"github.com/zeusync/spacedrift/pkg/sequence"
)

// Phase is the part of a tick currently running. Each phase owns one kind of registry mutation.
type Phase uint8

const (
	PhaseIdle Phase = iota
	PhaseSpawn
	PhaseUpdate
	PhaseCull
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseSpawn:
		return "spawn"
	case PhaseUpdate:
		return "update"
	case PhaseCull:
		return "cull"
	default:
		return fmt.Sprintf("phase(%d)", uint8(p))
	}
}

// Registry stores live entities in insertion order.
// Inserts are accepted only in PhaseSpawn and removals only in PhaseCull.
type Registry struct {
	mu       sync.RWMutex
	phase    Phase
	entities []*Entity
	index    map[uuid.UUID]*Entity
	snapshot []*Entity
}

func NewRegistry() *Registry {
	return &Registry{
		index: make(map[uuid.UUID]*Entity),
	}
}

// Enter switches the registry into phase p.
func (r *Registry) Enter(p Phase) {
	r.mu.Lock()
	r.phase = p
	r.mu.Unlock()
}

func (r *Registry) Phase() Phase {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.phase
}

// Insert registers a new entity.
func (r *Registry) Insert(e *Entity) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.phase != PhaseSpawn {
		return fmt.Errorf("%w: insert during %s", ErrWrongPhase, r.phase)
	}
	if _, exists := r.index[e.ID]; exists {
		return fmt.Errorf("%w: %s", ErrDuplicateEntity, e.ID)
	}
	r.entities = append(r.entities, e)
	r.index[e.ID] = e
	return nil
}

// Remove drops the given entities and returns those actually removed.
func (r *Registry) Remove(ids ...uuid.UUID) ([]*Entity, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.phase != PhaseCull {
		return nil, fmt.Errorf("%w: remove during %s", ErrWrongPhase, r.phase)
	}

	drop := make(map[uuid.UUID]struct{}, len(ids))
	for _, id := range ids {
		if _, ok := r.index[id]; ok {
			drop[id] = struct{}{}
		}
	}
	if len(drop) == 0 {
		return nil, nil
	}

	removed := make([]*Entity, 0, len(drop))
	kept := r.entities[:0]
	for _, e := range r.entities {
		if _, ok := drop[e.ID]; ok {
			removed = append(removed, e)
			delete(r.index, e.ID)
			continue
		}
		kept = append(kept, e)
	}
	clear(r.entities[len(kept):])
	r.entities = kept
	return removed, nil
}

func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.entities)
}

// Snapshot copies the live list into a buffer reused across calls.
// The slice stays valid until the next Snapshot; inserts and removals do not show through it.
// The entities are shared with the running systems: read them between ticks only.
func (r *Registry) Snapshot() []*Entity {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.snapshot = append(r.snapshot[:0], r.entities...)
	return r.snapshot
}

// Iter iterates over a private copy of the live list. Like Snapshot, the entities
// themselves are shared with the running systems.
func (r *Registry) Iter() *sequence.Iterator[*Entity] {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*Entity, len(r.entities))
	copy(out, r.entities)
	return sequence.From(out)
}

// Views copies the render-facing state of every live entity.
// MotionSystem mutates transforms without the registry lock, so only call Views
// between ticks. Readers that run concurrently with Tick use Loop.Frame.
func (r *Registry) Views() []View {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]View, len(r.entities))
	for i, e := range r.entities {
		out[i] = e.view()
	}
	return out
}

// CountByKind reports how many live entities of each kind exist.
func (r *Registry) CountByKind() map[space.Kind]int {
	groups := sequence.GroupBy(r.Iter(), func(e *Entity) space.Kind { return e.Kind })
	out := make(map[space.Kind]int, len(groups))
	for k, es := range groups {
		out[k] = len(es)
	}
	return out
}
