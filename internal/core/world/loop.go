package world

import (
	"context"
	"fmt"
	"sync"

	"github.com/zeusync/spacedrift/internal/core/clock"
	"github.com/zeusync/spacedrift/internal/core/events/bus"
	"github.com/zeusync/spacedrift/internal/core/observability/log"
	"github.com/zeusync/spacedrift/pkg/sequence"
)

// Bus event types published after every tick.
const (
	EventSpawned   = "object.spawned"
	EventDespawned = "object.despawned"
	EventTicked    = "world.ticked"

	eventSource = "world"
)

// Frame is the state of the world as of the last completed tick.
type Frame struct {
	Number  uint64
	Elapsed float64
	Objects []View
}

// Loop runs the registered systems in priority order once per Tick.
// Only one tick runs at a time; Frame may be read concurrently with a tick.
type Loop struct {
	tickMu   sync.Mutex
	registry *Registry
	systems  []System
	bus      bus.EventBus
	observer *deliveryLogger
	logger   log.Log
	frame    uint64

	frameMu sync.RWMutex
	last    Frame
}

// NewLoop creates a loop over registry. bus may be nil.
func NewLoop(registry *Registry, eventBus bus.EventBus, logger log.Log, systems ...System) (*Loop, error) {
	if registry == nil {
		registry = NewRegistry()
	}
	if logger == nil {
		logger = log.NewNop()
	}
	l := &Loop{
		registry: registry,
		bus:      eventBus,
		logger:   logger.With(log.String("component", "loop")),
	}
	if eventBus != nil {
		l.observer = &deliveryLogger{logger: l.logger}
		eventBus.AddObserver(l.observer)
	}
	for _, s := range systems {
		if err := l.Register(s); err != nil {
			return nil, err
		}
	}
	return l, nil
}

// Register adds a system. Systems are ordered by priority, ties keep registration order.
func (l *Loop) Register(s System) error {
	l.tickMu.Lock()
	defer l.tickMu.Unlock()

	for _, existing := range l.systems {
		if existing.Name() == s.Name() {
			return fmt.Errorf("%w: %s", ErrSystemRegistered, s.Name())
		}
	}
	l.systems = sequence.From(append(l.systems, s)).
		Sort(func(a, b System) bool { return a.Priority() < b.Priority() }).
		Collect()
	return nil
}

// Systems returns the registered system names in run order.
func (l *Loop) Systems() []string {
	l.tickMu.Lock()
	defer l.tickMu.Unlock()
	names := make([]string, len(l.systems))
	for i, s := range l.systems {
		names[i] = s.Name()
	}
	return names
}

func (l *Loop) Registry() *Registry { return l.registry }

// Tick runs one frame using the elapsed time and delta reported by src.
func (l *Loop) Tick(ctx context.Context, src clock.Source) (TickReport, error) {
	if src == nil {
		return TickReport{}, ErrNilTimeSource
	}
	if !l.tickMu.TryLock() {
		return TickReport{}, ErrTickInProgress
	}
	defer l.tickMu.Unlock()

	l.frame++
	report := TickReport{
		Frame:   l.frame,
		Elapsed: src.Elapsed(),
		Delta:   src.Delta(),
	}
	tick := &Tick{
		Frame:    report.Frame,
		Elapsed:  report.Elapsed,
		Delta:    report.Delta,
		Registry: l.registry,
		Report:   &report,
	}

	defer l.registry.Enter(PhaseIdle)
	for _, s := range l.systems {
		if err := ctx.Err(); err != nil {
			return report, err
		}
		l.registry.Enter(s.Phase())
		if err := s.Update(ctx, tick); err != nil {
			l.logger.Error("System failed",
				log.String("system", s.Name()),
				log.Uint64("frame", report.Frame),
				log.Error(err))
			return report, fmt.Errorf("system %s: %w", s.Name(), err)
		}
	}
	l.registry.Enter(PhaseIdle)

	report.Live = l.registry.Len()
	report.PerKind = l.registry.CountByKind()

	l.frameMu.Lock()
	l.last = Frame{Number: report.Frame, Elapsed: report.Elapsed, Objects: l.registry.Views()}
	l.frameMu.Unlock()

	l.publish(report)
	return report, nil
}

// Close detaches the loop from its bus.
func (l *Loop) Close() {
	l.tickMu.Lock()
	defer l.tickMu.Unlock()
	if l.bus != nil && l.observer != nil {
		l.bus.RemoveObserver(l.observer)
		l.observer = nil
	}
}

// Frame returns the world as of the last completed tick.
func (l *Loop) Frame() Frame {
	l.frameMu.RLock()
	defer l.frameMu.RUnlock()
	return l.last
}

func (l *Loop) publish(report TickReport) {
	if l.bus == nil {
		return
	}

	events := make([]bus.Event, 0, len(report.Spawned)+len(report.Despawned)+1)
	for _, b := range report.Spawned {
		events = append(events, bus.NewEvent(EventSpawned, eventSource, b))
	}
	for _, n := range report.Despawned {
		events = append(events, bus.NewEvent(EventDespawned, eventSource, n))
	}
	events = append(events, bus.NewEvent(EventTicked, eventSource, report))

	if err := l.bus.PublishBatch(events...); err != nil {
		l.logger.Warn("Event delivery failed", log.Uint64("frame", report.Frame), log.Error(err))
	}
}
