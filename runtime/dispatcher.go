package runtime

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/vcrobe/nojs-uidl/uidl"
)

var (
	// ErrUnknownComponent is returned for a change addressed to an id with no registered paintable.
	ErrUnknownComponent = errors.New("no paintable registered")
	// ErrPanic wraps a panic recovered from a paintable.
	ErrPanic = errors.New("paintable panicked")
)

// Report summarizes one update pass.
type Report struct {
	Applied int // changes drawn successfully
	Skipped int // changes marked cached by the server
	Failed  int // changes that failed under the Isolate policy
}

// Dispatcher routes update records to the paintables registered for
// their ids. It is driven from a single update loop and is not safe for
// concurrent use.
type Dispatcher struct {
	paintables map[string]Paintable
	policy     Policy
	logger     zerolog.Logger
}

// NewDispatcher creates a dispatcher applying policy to failed updates.
func NewDispatcher(policy Policy, logger zerolog.Logger) *Dispatcher {
	return &Dispatcher{
		paintables: make(map[string]Paintable),
		policy:     policy,
		logger:     logger,
	}
}

// Register attaches p to id, replacing any previous paintable.
func (d *Dispatcher) Register(id string, p Paintable) {
	d.paintables[id] = p
}

// Unregister detaches the paintable for id.
func (d *Dispatcher) Unregister(id string) {
	delete(d.paintables, id)
}

// Registered reports whether a paintable is attached to id.
func (d *Dispatcher) Registered(id string) bool {
	_, ok := d.paintables[id]
	return ok
}

// Update applies changes in order. Each change is routed by its id
// attribute. A change with cached="true" is skipped without touching its
// paintable.
//
// Under FailFast the first failure stops the pass and is returned along
// with the partial report. Under Isolate failures are logged and counted
// and Update returns a nil error.
func (d *Dispatcher) Update(changes ...*uidl.Node) (Report, error) {
	var report Report
	for _, change := range changes {
		id := change.ID()

		if change.BooleanAttribute("cached") {
			report.Skipped++
			d.logger.Trace().Str("id", id).Msg("Skipping cached component")
			continue
		}

		err := d.apply(id, change)
		if err == nil {
			report.Applied++
			continue
		}

		if d.policy == FailFast {
			return report, fmt.Errorf("update %s: %w", id, err)
		}
		report.Failed++
		d.logger.Error().Err(err).Str("id", id).Str("tag", change.Tag).Msg("Component update failed")
	}

	d.logger.Debug().
		Int("applied", report.Applied).
		Int("skipped", report.Skipped).
		Int("failed", report.Failed).
		Msg("Update pass finished")
	return report, nil
}

func (d *Dispatcher) apply(id string, change *uidl.Node) error {
	p, ok := d.paintables[id]
	if !ok {
		return fmt.Errorf("%w for id %q", ErrUnknownComponent, id)
	}
	return callUpdate(p, id, change)
}
