package dispatch

import (
	"errors"

	"paydash/payoutapi"
)

// Operation is one backend call producing a normalized payload.
type Operation func() (interface{}, error)

// Dispatcher drives operations through the pending → fulfilled|rejected
// lifecycle. Failure is terminal for a dispatch: nothing is retried
// automatically, a failed operation must be re-triggered by the user.
type Dispatcher struct {
	store *Store
}

// NewDispatcher returns a dispatcher over store.
func NewDispatcher(store *Store) *Dispatcher {
	return &Dispatcher{store: store}
}

// Store exposes the backing store for rendering.
func (d *Dispatcher) Store() *Store {
	return d.store
}

// Do runs op under group's lifecycle and hands the outcome back to the
// caller as a tagged result: (payload, nil) or (nil, err).
func (d *Dispatcher) Do(group string, op Operation) (interface{}, error) {
	d.store.pending(group)

	data, err := op()
	if err != nil {
		d.store.reject(group, messageOf(err))
		return nil, err
	}

	d.store.fulfill(group, data)
	return data, nil
}

// Go dispatches op without waiting. In-flight operations complete and
// update the store even when the requester is gone. Two dispatches of
// the same group are not coalesced; whichever resolves last wins, with
// no ordering guarantee.
func (d *Dispatcher) Go(group string, op Operation) {
	d.store.pending(group)

	go func() {
		data, err := op()
		if err != nil {
			d.store.reject(group, messageOf(err))
			return
		}
		d.store.fulfill(group, data)
	}()
}

func messageOf(err error) string {
	var apiErr *payoutapi.APIError
	if errors.As(err, &apiErr) {
		return apiErr.Message
	}
	return err.Error()
}
