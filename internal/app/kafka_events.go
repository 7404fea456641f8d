package app

import (
	"context"
	"errors"

	"github.com/fleetops/opsboard/internal/apperr"
	"github.com/fleetops/opsboard/internal/service/dispatch"
	"github.com/fleetops/opsboard/internal/transport/kafka"
)

// makeDispatchKafka adapts the dispatch Processor to the Kafka consumer.
// Validation failures can never succeed on redelivery, so they are marked
// permanent; everything else is left retryable.
func makeDispatchKafka(p *dispatch.Processor) kafka.HandleFunc {
	return func(ctx context.Context, event dispatch.Event) error {
		err := p.Handle(ctx, event)
		if errors.Is(err, apperr.Invalid) {
			return kafka.Permanent(err)
		}
		return err
	}
}
