package server

import (
	"github.com/google/uuid"

	"github.com/zeusync/spacedrift/internal/core/space"
	"github.com/zeusync/spacedrift/internal/core/world"
)

// FrameMessage is the JSON document sent to every client once per tick.
type FrameMessage struct {
	Frame     uint64          `json:"frame"`
	Elapsed   float64         `json:"elapsed"`
	Objects   []ObjectMessage `json:"objects"`
	Spawned   []uuid.UUID     `json:"spawned"`
	Despawned []uuid.UUID     `json:"despawned"`
}

// ObjectMessage carries one object's transform. Rotation is ordered x, y, z, w.
type ObjectMessage struct {
	ID          uuid.UUID  `json:"id"`
	Kind        space.Kind `json:"kind"`
	Translation [3]float64 `json:"translation"`
	Rotation    [4]float64 `json:"rotation"`
	Scale       float64    `json:"scale"`
}

// NewFrameMessage combines the tick report with the frame it produced.
func NewFrameMessage(report world.TickReport, frame world.Frame) FrameMessage {
	msg := FrameMessage{
		Frame:     frame.Number,
		Elapsed:   frame.Elapsed,
		Objects:   make([]ObjectMessage, len(frame.Objects)),
		Spawned:   make([]uuid.UUID, len(report.Spawned)),
		Despawned: make([]uuid.UUID, len(report.Despawned)),
	}
	for i, v := range frame.Objects {
		msg.Objects[i] = objectMessage(v)
	}
	for i, b := range report.Spawned {
		msg.Spawned[i] = b.ID
	}
	for i, n := range report.Despawned {
		msg.Despawned[i] = n.ID
	}
	return msg
}

func objectMessage(v world.View) ObjectMessage {
	q := v.Transform.Rotation
	return ObjectMessage{
		ID:          v.ID,
		Kind:        v.Kind,
		Translation: [3]float64(v.Transform.Translation),
		Rotation:    [4]float64{q.X(), q.Y(), q.Z(), q.W},
		Scale:       v.Transform.Scale.X(),
	}
}
