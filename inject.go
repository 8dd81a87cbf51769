package softwillow

// EventStore is the interface for optional ECS integration. When set on a
// Renderer, every handled input event is forwarded to it.
type EventStore interface {
	EmitEvent(event ModeEvent)
}

// ModeEvent reports an input event the renderer acted on.
type ModeEvent struct {
	Event   Event
	Options RenderOptions // flags after the event was applied
	Frame   uint64
}

// InjectEvent queues a synthetic input event. Injected events are consumed
// one per frame, ahead of the input source.
func (r *Renderer) InjectEvent(ev Event) {
	r.injectQueue = append(r.injectQueue, ev)
}

// InjectEvents queues several synthetic events in order.
func (r *Renderer) InjectEvents(events ...Event) {
	r.injectQueue = append(r.injectQueue, events...)
}

// PendingInjected returns the number of queued synthetic events.
func (r *Renderer) PendingInjected() int {
	return len(r.injectQueue)
}
