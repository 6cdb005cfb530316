// Package signalbus is the process-wide signal hub. The hub is created on
// first use and lives until the process exits. Code that wants an isolated
// signal space (a level, a test) should create its own signals.Hub instead.
package signalbus

import (
	"sync"

	"github.com/KirkDiggler/rpg-signals/internal/errors"
	"github.com/KirkDiggler/rpg-signals/pkg/signals"
)

var (
	mu     sync.Mutex
	once   sync.Once
	cfg    *signals.HubConfig
	global *signals.Hub
)

// Configure sets the config used to build the global hub. It must run
// before the first call that touches the hub.
func Configure(config *signals.HubConfig) error {
	mu.Lock()
	defer mu.Unlock()

	if global != nil {
		return errors.AlreadyExistsf("global signal hub %s already created", global.ID())
	}
	cfg = config
	return nil
}

// Hub returns the global hub, creating it on first use
func Hub() *signals.Hub {
	once.Do(func() {
		mu.Lock()
		defer mu.Unlock()
		global = signals.NewHub(cfg)
	})
	return global
}

// Get returns the global instance of signal kind K
func Get[K any, PK interface {
	*K
	signals.Signal
}]() PK {
	return signals.Get[K, PK](Hub())
}

// AddListenerToHash adds l to the global parameterless signal identified by hash
func AddListenerToHash(hash string, l *signals.Listener0) {
	Hub().AddListenerToHash(hash, l)
}

// RemoveListenerFromHash removes l from the global parameterless signal identified by hash
func RemoveListenerFromHash(hash string, l *signals.Listener0) {
	Hub().RemoveListenerFromHash(hash, l)
}
