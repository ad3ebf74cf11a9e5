package controllers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/go-playground/validator"

	"smart-order/engine"
	"smart-order/store"
)

var validate = validator.New()

// dataStore is the backend selected at startup. Handlers only ever see the
// store.Store contract, never a concrete adapter.
var dataStore store.Store

func SetStore(s store.Store) {
	dataStore = s
}

func requestContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), 10*time.Second)
}

// statusFromErr maps domain and store errors onto HTTP codes. Anything
// unrecognized is an adapter failure and surfaces as 502; the engine never
// retries on the caller's behalf.
func statusFromErr(err error) int {
	switch {
	case errors.Is(err, engine.ErrInvalidTransition),
		errors.Is(err, engine.ErrEmptyCart),
		errors.Is(err, engine.ErrMissingCustomerName),
		errors.Is(err, engine.ErrInvalidPayment):
		return http.StatusBadRequest
	case errors.Is(err, store.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, store.ErrAuthFailed):
		return http.StatusUnauthorized
	default:
		return http.StatusBadGateway
	}
}
