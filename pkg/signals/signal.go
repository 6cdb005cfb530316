package signals

import (
	"sync"

	"github.com/KirkDiggler/rpg-signals/internal/errors"
)

// Signal is implemented by every signal kind through its embedded arity base
type Signal interface {
	// Hash is the stable identity of the kind, set when a Hub binds it
	Hash() string

	// ListenerCount returns the number of registered listeners
	ListenerCount() int

	// RemoveAllListeners drops every listener
	RemoveAllListeners()

	base() *binding
}

// binding ties a signal instance to the hub that owns it
type binding struct {
	hash string
	hub  *Hub
}

// Hash returns the stable identity of the signal kind. It is empty for a
// signal that was never bound by a Hub.
func (b *binding) Hash() string {
	return b.hash
}

func (b *binding) base() *binding {
	return b
}

func (b *binding) attach(hash string, hub *Hub) {
	b.hash = hash
	b.hub = hub
}

func (b *binding) diagnostics() bool {
	if b.hub != nil {
		return b.hub.diagnostics
	}
	return buildDiagnostics
}

func (b *binding) report(err *errors.Error) {
	if b.hash != "" {
		err.WithMeta("hash", b.hash)
	}
	if b.hub != nil {
		b.hub.report(err)
		return
	}
	defaultReporter.Report(err)
}

// admit applies the listener preconditions. Only a nil handle is refused;
// anonymous callbacks are reported but still accepted.
func (b *binding) admit(valid bool, name string) bool {
	if !valid {
		if b.diagnostics() {
			b.report(errors.InvalidArgumentf("nil listener ignored"))
		}
		return false
	}
	if b.diagnostics() && isAnonymous(name) {
		b.report(errors.InvalidArgumentf("listener %s is a func literal; register named functions or method values", name).
			WithMeta("listener", name))
	}
	return true
}

// listenerList is a copy-on-write sequence, so a snapshot taken for
// dispatch never changes underneath the caller.
type listenerList[L comparable] struct {
	mu    sync.RWMutex
	items []L
}

func (l *listenerList[L]) add(item L) {
	l.mu.Lock()
	defer l.mu.Unlock()

	n := len(l.items)
	l.items = append(l.items[:n:n], item)
}

// remove drops the first occurrence of item, keeping order
func (l *listenerList[L]) remove(item L) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	for i, v := range l.items {
		if v != item {
			continue
		}
		next := make([]L, 0, len(l.items)-1)
		next = append(next, l.items[:i]...)
		l.items = append(next, l.items[i+1:]...)
		return true
	}
	return false
}

func (l *listenerList[L]) snapshot() []L {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return l.items
}

func (l *listenerList[L]) count() int {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return len(l.items)
}

func (l *listenerList[L]) clear() {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.items = nil
}
