package siteroute

import "sync"

// Listener is called with the new current path after every navigation.
type Listener func(path string)

// Navigator is a browser-style history owned by whoever creates it.
type Navigator struct {
	mu        sync.Mutex
	entries   []string
	index     int
	listeners map[int]Listener
	nextID    int
	closed    bool
}

// NewNavigator starts a history at initial.
func NewNavigator(initial string) *Navigator {
	return &Navigator{
		entries:   []string{Clean(initial)},
		listeners: make(map[int]Listener),
	}
}

// Current returns the current path.
func (n *Navigator) Current() string {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.entries[n.index]
}

// Len returns the number of history entries.
func (n *Navigator) Len() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return len(n.entries)
}

// Push adds path after the current entry, dropping any forward entries.
func (n *Navigator) Push(path string) {
	n.navigate(func() bool {
		n.entries = append(n.entries[:n.index+1], Clean(path))
		n.index++
		return true
	})
}

// Replace swaps the current entry for path.
func (n *Navigator) Replace(path string) {
	n.navigate(func() bool {
		n.entries[n.index] = Clean(path)
		return true
	})
}

// Back moves one entry back. It reports false at the start of history.
func (n *Navigator) Back() bool {
	return n.navigate(func() bool {
		if n.index == 0 {
			return false
		}
		n.index--
		return true
	})
}

// Forward moves one entry forward. It reports false at the end of history.
func (n *Navigator) Forward() bool {
	return n.navigate(func() bool {
		if n.index == len(n.entries)-1 {
			return false
		}
		n.index++
		return true
	})
}

// PopState resyncs with a path the browser moved to on its own. Adjacent
// entries are reused; anything else replaces the current entry. History
// never grows.
func (n *Navigator) PopState(path string) {
	path = Clean(path)
	n.navigate(func() bool {
		switch {
		case n.entries[n.index] == path:
		case n.index > 0 && n.entries[n.index-1] == path:
			n.index--
		case n.index < len(n.entries)-1 && n.entries[n.index+1] == path:
			n.index++
		default:
			n.entries[n.index] = path
		}
		return true
	})
}

// Subscribe registers fn and returns a function that removes it.
func (n *Navigator) Subscribe(fn Listener) func() {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.closed {
		return func() {}
	}
	id := n.nextID
	n.nextID++
	n.listeners[id] = fn
	return func() {
		n.mu.Lock()
		defer n.mu.Unlock()
		delete(n.listeners, id)
	}
}

// Close drops every listener. Later navigation calls do nothing.
func (n *Navigator) Close() {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.closed = true
	n.listeners = make(map[int]Listener)
}

// navigate applies change under the lock and notifies listeners after
// releasing it, so a listener may navigate again.
func (n *Navigator) navigate(change func() bool) bool {
	n.mu.Lock()
	if n.closed || !change() {
		n.mu.Unlock()
		return false
	}
	path := n.entries[n.index]
	listeners := make([]Listener, 0, len(n.listeners))
	for _, l := range n.listeners {
		listeners = append(listeners, l)
	}
	n.mu.Unlock()

	for _, l := range listeners {
		l(path)
	}
	return true
}
