package viewstate

import (
	"sort"
	"sync"
)

type Listener func()

// Notifier fans out state change notifications to subscribed listeners.
// The zero value is ready to use.
type Notifier struct {
	mu        sync.Mutex
	nextID    int
	listeners map[int]Listener
}

// Subscribe registers l and returns the func that removes it again.
func (n *Notifier) Subscribe(l Listener) (unsubscribe func()) {
	n.mu.Lock()
	defer n.mu.Unlock()

	if n.listeners == nil {
		n.listeners = make(map[int]Listener)
	}
	id := n.nextID
	n.nextID++
	n.listeners[id] = l

	return func() {
		n.mu.Lock()
		defer n.mu.Unlock()
		delete(n.listeners, id)
	}
}

// Notify calls listeners in subscription order, outside the lock.
func (n *Notifier) Notify() {
	n.mu.Lock()
	ids := make([]int, 0, len(n.listeners))
	for id := range n.listeners {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	listeners := make([]Listener, 0, len(ids))
	for _, id := range ids {
		listeners = append(listeners, n.listeners[id])
	}
	n.mu.Unlock()

	for _, l := range listeners {
		l()
	}
}

func (n *Notifier) ListenersCount() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return len(n.listeners)
}
