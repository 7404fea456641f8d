package app

import (
	"context"
	"fmt"

	"go.uber.org/dig"

	"github.com/fleetops/opsboard/internal/config"
	"github.com/fleetops/opsboard/internal/logx"
	"github.com/fleetops/opsboard/internal/service/dispatch"
	"github.com/fleetops/opsboard/internal/service/drivers"
	"github.com/fleetops/opsboard/internal/service/loads"
	"github.com/fleetops/opsboard/internal/transport/kafka"
)

// MustBuildWorkerContainer builds the DI container of the dispatch-events
// worker.
func MustBuildWorkerContainer(ctx context.Context) *dig.Container {
	b := NewContainerBuilder()
	container, err := b.buildWorker(ctx)
	if err != nil {
		b.logFatalf("failed to build worker container: %v", err)
	}
	return container
}

func (b *ContainerBuilder) buildWorker(ctx context.Context) (*dig.Container, error) {
	container := dig.New()

	if err := registerCore(container, ctx); err != nil {
		return nil, fmt.Errorf("core: %w", err)
	}
	if err := registerDb(container, b.dbConnect); err != nil {
		return nil, fmt.Errorf("DB: %w", err)
	}
	if err := container.Provide(provideMetrics); err != nil {
		return nil, fmt.Errorf("metrics: %w", err)
	}
	if err := registerDomainServices(container); err != nil {
		return nil, fmt.Errorf("service: %w", err)
	}
	if err := registerWorker(container); err != nil {
		return nil, fmt.Errorf("worker: %w", err)
	}
	return container, nil
}

func registerWorker(container *dig.Container) error {
	return provideAll(container,
		func(svc *dispatch.Service) dispatch.Port { return svc },
		func(svc *loads.Service) dispatch.LoadWriter { return svc },
		func(svc *drivers.Service) dispatch.DriverWriter { return svc },
		dispatch.NewProcessor,
		makeDispatchKafka,
		func(logger logx.Logger, cfg *config.Config, h kafka.HandleFunc) (*kafka.Consumer, error) {
			return kafka.NewConsumer(logger, cfg.Kafka.Brokers, cfg.Kafka.GroupID, cfg.Kafka.Topic, h)
		},
	)
}
