package dispatch

import (
	"context"
	"errors"

	"github.com/fleetops/opsboard/internal/apperr"
	"github.com/fleetops/opsboard/internal/domain"
)

type actionFunc func(ctx context.Context, e Event) error

// Processor applies dispatch events to the store. Events are delivered at
// least once, so every handler tolerates replays: an already-open assignment
// or an already-closed one is not an error.
type Processor struct {
	actions map[string]actionFunc
}

// NewProcessor creates a dispatch event Processor.
func NewProcessor(port Port, loads LoadWriter, drvs DriverWriter) *Processor {
	p := &Processor{}
	p.actions = map[string]actionFunc{
		EventAssignmentOpened:  p.onOpened(port),
		EventAssignmentClosed:  p.onClosed(port),
		EventLoadStatusChanged: p.onLoadStatus(loads),
		EventDriverStatus:      p.onDriverStatus(drvs),
	}
	return p
}

// Handle processes a single dispatch event. Unknown event types are skipped.
func (p *Processor) Handle(ctx context.Context, e Event) error {
	fn, ok := p.actions[e.Type]
	if !ok {
		return nil
	}
	return fn(ctx, e)
}

func (p *Processor) onOpened(port Port) actionFunc {
	return func(ctx context.Context, e Event) error {
		_, err := port.Assign(ctx, e.OrgID, e.LoadID, e.DriverID)
		if errors.Is(err, apperr.Conflict) {
			return nil
		}
		return err
	}
}

func (p *Processor) onClosed(port Port) actionFunc {
	return func(ctx context.Context, e Event) error {
		_, err := port.Unassign(ctx, e.OrgID, e.LoadID)
		if errors.Is(err, apperr.NotFound) {
			return nil
		}
		return err
	}
}

func (p *Processor) onLoadStatus(loads LoadWriter) actionFunc {
	return func(ctx context.Context, e Event) error {
		status := domain.LoadStatus(e.Status)
		_, err := loads.UpdatePartial(ctx, e.OrgID, domain.PartialLoadUpdate{
			ID:     e.LoadID,
			Status: &status,
		})
		if errors.Is(err, apperr.NotFound) {
			return nil
		}
		return err
	}
}

func (p *Processor) onDriverStatus(drvs DriverWriter) actionFunc {
	return func(ctx context.Context, e Event) error {
		status := domain.DriverStatus(e.Status)
		_, err := drvs.UpdatePartial(ctx, e.OrgID, domain.PartialDriverUpdate{
			ID:     e.DriverID,
			Status: &status,
		})
		if errors.Is(err, apperr.NotFound) {
			return nil
		}
		return err
	}
}
