package event

// Handler receives routed events with a context T
// The upgrade and palette systems implement this next to their System
// methods; the scheduler auto-registers such systems at wiring time
type Handler[T any] interface {
	// HandleEvent runs synchronously during the dispatch phase, under
	// the world update lock and before any system's Update
	HandleEvent(ctx T, event GameEvent)

	// EventTypes declares which events to route to this handler
	EventTypes() []EventType
}

// Router drains the queue and fans events out to handlers
//
// Dispatch is single-threaded, so handlers may mutate the world freely.
// Several handlers may subscribe to one type; within a type they run in
// registration order, which is what lets a host place a data-refresh
// handler ahead of the systems that consume the refreshed data. T is the
// dispatch context, *engine.World in this module.
type Router[T any] struct {
	handlers map[EventType][]Handler[T]
	queue    *EventQueue
}

// NewRouter creates a router draining the given queue
func NewRouter[T any](queue *EventQueue) *Router[T] {
	return &Router[T]{
		handlers: make(map[EventType][]Handler[T]),
		queue:    queue,
	}
}

// Register subscribes a handler to its declared event types
func (r *Router[T]) Register(handler Handler[T]) {
	for _, t := range handler.EventTypes() {
		r.handlers[t] = append(r.handlers[t], handler)
	}
}

// DispatchAll consumes the pending events in FIFO order
// Every handler for an event runs before the next event is considered;
// events without handlers are dropped
func (r *Router[T]) DispatchAll(ctx T) {
	for _, ev := range r.queue.Consume() {
		for _, h := range r.handlers[ev.Type] {
			h.HandleEvent(ctx, ev)
		}
	}
}

// HasHandlers reports whether anything subscribes to the given type
func (r *Router[T]) HasHandlers(t EventType) bool {
	return len(r.handlers[t]) > 0
}

// HandlerCount returns the number of subscribers for the given type
func (r *Router[T]) HandlerCount(t EventType) int {
	return len(r.handlers[t])
}
