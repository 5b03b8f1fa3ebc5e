// Package events provides the named-event notification collaborator used for
// view lifecycle notifications. The emitter is strictly one-way: handlers are
// informed, never consulted for control decisions.
package events

import "sync"

// Handler receives the event payload arguments.
type Handler func(args ...any)

type registration struct {
	handler Handler
}

// Emitter dispatches named events to registered handlers.
type Emitter struct {
	mu       sync.Mutex
	handlers map[string][]*registration
}

// NewEmitter creates an empty emitter.
func NewEmitter() *Emitter {
	return &Emitter{handlers: make(map[string][]*registration)}
}

// On registers a handler for the named event and returns an unsubscribe
// function. Unsubscribing twice is a no-op.
func (e *Emitter) On(event string, h Handler) func() {
	if h == nil {
		return func() {}
	}
	reg := &registration{handler: h}

	e.mu.Lock()
	e.handlers[event] = append(e.handlers[event], reg)
	e.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() { e.off(event, reg) })
	}
}

func (e *Emitter) off(event string, reg *registration) {
	e.mu.Lock()
	defer e.mu.Unlock()

	regs := e.handlers[event]
	for i, r := range regs {
		if r == reg {
			e.handlers[event] = append(regs[:i:i], regs[i+1:]...)
			return
		}
	}
}

// Emit calls every handler registered for the named event, in registration
// order, with the given payload arguments.
func (e *Emitter) Emit(event string, args ...any) {
	e.mu.Lock()
	regs := make([]*registration, len(e.handlers[event]))
	copy(regs, e.handlers[event])
	e.mu.Unlock()

	for _, reg := range regs {
		reg.handler(args...)
	}
}

// HandlerCount returns the number of handlers registered for the event.
func (e *Emitter) HandlerCount(event string) int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return len(e.handlers[event])
}

// RemoveAll drops every registered handler.
func (e *Emitter) RemoveAll() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.handlers = make(map[string][]*registration)
}
