// Package engine holds the order lifecycle and billing computations. All
// functions are pure: they take a snapshot of orders and never touch the
// store, so callers can run them on whatever the live subscription last
// delivered.
package engine

import (
	"errors"
	"fmt"

	"smart-order/models"
)

var ErrInvalidTransition = errors.New("invalid status transition")

// nextStatus is the single legal forward step for each state. Closed has no
// entry: it is terminal.
var nextStatus = map[models.OrderStatus]models.OrderStatus{
	models.StatusPending:   models.StatusPreparing,
	models.StatusPreparing: models.StatusReady,
	models.StatusReady:     models.StatusServed,
	models.StatusServed:    models.StatusClosed,
}

// AdvanceStatus returns the next status in the lifecycle. Callers never pick
// a target status themselves; the kitchen only ever requests "the next one".
func AdvanceStatus(current models.OrderStatus) (models.OrderStatus, error) {
	next, ok := nextStatus[current]
	if !ok {
		return "", fmt.Errorf("%w: no transition from %q", ErrInvalidTransition, current)
	}
	return next, nil
}

// ValidateTransition rejects any requested change that is not the single
// adjacent step. Backward moves, skips and resubmitting the current status
// all fail.
func ValidateTransition(from, to models.OrderStatus) error {
	next, ok := nextStatus[from]
	if !ok || next != to {
		return fmt.Errorf("%w: %q -> %q", ErrInvalidTransition, from, to)
	}
	return nil
}
