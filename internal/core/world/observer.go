package world

import (
	"github.com/zeusync/spacedrift/internal/core/events/bus"
	"github.com/zeusync/spacedrift/internal/core/observability/log"
)

// deliveryLogger reports every delivery of a bus event at debug level.
type deliveryLogger struct {
	logger log.Log
}

func (d *deliveryLogger) OnPublish(string, bus.Event) {}

func (d *deliveryLogger) OnDelivered(eventType string, handlers int, err error, durationMicros int64) {
	fields := []log.Field{
		log.String("event", eventType),
		log.Int("handlers", handlers),
		log.Int64("micros", durationMicros),
	}
	if err != nil {
		fields = append(fields, log.Error(err))
	}
	d.logger.Debug("Event delivered", fields...)
}
