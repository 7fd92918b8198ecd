package handler

import (
	"go.uber.org/multierr"

	"github.com/philipp01105/lcl2log/core"
)

// MultiHandler sends log lines to multiple handlers
type MultiHandler struct {
	handlers []Handler
}

// NewMultiHandler creates a new multi-handler. Handlers are called in the
// order given; a failing handler does not stop the ones after it.
func NewMultiHandler(handlers ...Handler) *MultiHandler {
	return &MultiHandler{handlers: handlers}
}

// Handle sends the line to every handler and combines their errors
func (h *MultiHandler) Handle(level core.Level, line string) error {
	var err error
	for _, handler := range h.handlers {
		err = multierr.Append(err, handler.Handle(level, line))
	}
	return err
}

// Handlers returns the child handlers
func (h *MultiHandler) Handlers() []Handler {
	return h.handlers
}

// Close closes all handlers
func (h *MultiHandler) Close() error {
	var err error
	for _, handler := range h.handlers {
		err = multierr.Append(err, handler.Close())
	}
	return err
}
