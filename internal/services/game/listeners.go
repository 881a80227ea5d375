package game

import "github.com/mcoot/villagegame/internal/model"

// Listener receives session events
type Listener interface {
	OnEvent(event model.Event)
}

// ListenerFunc adapts a plain function to Listener
type ListenerFunc func(event model.Event)

// OnEvent calls f(event)
func (f ListenerFunc) OnEvent(event model.Event) {
	f(event)
}

type subscription struct {
	id       int
	listener Listener
}

// registry delivers events synchronously, in subscription order
type registry struct {
	subs   []subscription
	nextID int
}

// Subscribe registers l and returns a function that removes it again
func (r *registry) Subscribe(l Listener) func() {
	id := r.nextID
	r.nextID++
	r.subs = append(r.subs, subscription{id: id, listener: l})

	return func() {
		for i, s := range r.subs {
			if s.id == id {
				r.subs = append(r.subs[:i:i], r.subs[i+1:]...)
				return
			}
		}
	}
}

func (r *registry) notify(event model.Event) {
	// A listener may unsubscribe while being notified
	subs := r.subs
	for _, s := range subs {
		s.listener.OnEvent(event)
	}
}
