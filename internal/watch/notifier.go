// Package watch provides a small in-process change feed. Services
// publish an event after every successful mutation; subscribers (the
// websocket transport) use events as a cue to refresh their snapshots.
package watch

import "sync"

// Collection identifies which data set changed.
type Collection string

const (
	CollectionPaints  Collection = "paints"
	CollectionCatalog Collection = "catalog"
)

// Event describes one committed mutation. WarehouseID is empty for
// catalog changes, which are visible to everyone.
type Event struct {
	Collection  Collection
	WarehouseID string
	Action      string
}

// Notifier fans events out to subscribers. Publish never blocks on a
// subscriber; callbacks run synchronously and must be fast.
type Notifier struct {
	mu     sync.RWMutex
	nextID int
	subs   map[int]func(Event)
}

// NewNotifier creates an empty notifier.
func NewNotifier() *Notifier {
	return &Notifier{subs: make(map[int]func(Event))}
}

// Subscribe registers fn for all future events and returns an
// unsubscribe handle. Calling the handle more than once is harmless.
func (n *Notifier) Subscribe(fn func(Event)) (unsubscribe func()) {
	n.mu.Lock()
	id := n.nextID
	n.nextID++
	n.subs[id] = fn
	n.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			n.mu.Lock()
			delete(n.subs, id)
			n.mu.Unlock()
		})
	}
}

// Publish delivers the event to every current subscriber.
func (n *Notifier) Publish(e Event) {
	n.mu.RLock()
	fns := make([]func(Event), 0, len(n.subs))
	for _, fn := range n.subs {
		fns = append(fns, fn)
	}
	n.mu.RUnlock()

	for _, fn := range fns {
		fn(e)
	}
}

// SubscriberCount returns the number of active subscriptions.
func (n *Notifier) SubscriberCount() int {
	n.mu.RLock()
	defer n.mu.RUnlock()
	return len(n.subs)
}
