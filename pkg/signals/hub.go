package signals

import (
	"log"
	"reflect"
	"sync"

	"github.com/KirkDiggler/rpg-signals/internal/errors"
	"github.com/KirkDiggler/rpg-signals/internal/uuid"
)

var defaultReporter Reporter = NewLogReporter(nil)

// HubConfig holds the optional settings for a Hub
type HubConfig struct {
	// Reporter receives bind conflicts and diagnostics. Defaults to a LogReporter.
	Reporter Reporter

	// Diagnostics enables listener precondition checks
	Diagnostics DiagnosticsMode

	// IDGenerator names the hub in reports. Defaults to random UUIDs.
	IDGenerator uuid.Generator
}

// Hub keeps one instance per signal kind. The zero value is not usable;
// create hubs with NewHub.
type Hub struct {
	id          string
	reporter    Reporter
	diagnostics bool

	mu      sync.RWMutex
	signals map[reflect.Type]Signal
	order   []Signal // bind order, scanned by hash lookups
}

// NewHub creates an empty hub. A nil config uses the defaults.
func NewHub(cfg *HubConfig) *Hub {
	if cfg == nil {
		cfg = &HubConfig{}
	}

	reporter := cfg.Reporter
	if reporter == nil {
		reporter = defaultReporter
	}

	gen := cfg.IDGenerator
	if gen == nil {
		gen = uuid.NewGoogleUUIDGenerator()
	}

	return &Hub{
		id:          gen.New(),
		reporter:    reporter,
		diagnostics: cfg.Diagnostics.Enabled(),
		signals:     make(map[reflect.Type]Signal),
	}
}

// ID returns the identifier of this hub
func (h *Hub) ID() string {
	return h.id
}

// Get returns the instance of kind K held by h, creating it on first use.
// Every call for the same kind on the same hub returns the same pointer.
func Get[K any, PK interface {
	*K
	Signal
}](h *Hub) PK {
	sig := h.get(reflect.TypeOf((*K)(nil)).Elem(), func() Signal { return PK(new(K)) })
	return sig.(PK)
}

// Register installs a caller-built instance of kind K. If the kind already
// has an instance the conflict is reported and the existing one is returned.
// An instance bound to another hub is refused: the condition is reported and
// s is returned without being bound to h. A nil s registers a zero value.
func Register[K any, PK interface {
	*K
	Signal
}](h *Hub, s PK) PK {
	if (*K)(s) == nil {
		s = PK(new(K))
	}
	sig := h.bind(reflect.TypeOf((*K)(nil)).Elem(), func() Signal { return s })
	return sig.(PK)
}

// HashOf returns the hash a hub assigns to kind K
func HashOf[K any]() string {
	return kindHash(reflect.TypeOf((*K)(nil)).Elem())
}

func kindHash(t reflect.Type) string {
	if t.Name() == "" || t.PkgPath() == "" {
		return t.String()
	}
	return t.PkgPath() + "." + t.Name()
}

func (h *Hub) get(t reflect.Type, newSignal func() Signal) Signal {
	h.mu.RLock()
	sig, ok := h.signals[t]
	h.mu.RUnlock()
	if ok {
		return sig
	}

	sig, err := h.getOrBind(t, newSignal)
	if err != nil {
		h.report(err)
	}
	return sig
}

func (h *Hub) getOrBind(t reflect.Type, newSignal func() Signal) (Signal, *errors.Error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	// Another caller may have created it between the two locks
	if sig, ok := h.signals[t]; ok {
		return sig, nil
	}
	return h.bindLocked(t, newSignal)
}

// bind reports outside the lock so a Reporter may call back into the hub
func (h *Hub) bind(t reflect.Type, newSignal func() Signal) Signal {
	h.mu.Lock()
	sig, err := h.bindLocked(t, newSignal)
	h.mu.Unlock()

	if err != nil {
		h.report(err)
	}
	return sig
}

// bindLocked keeps the first instance of a kind. The returned error is
// reported by the caller once h.mu is released.
func (h *Hub) bindLocked(t reflect.Type, newSignal func() Signal) (Signal, *errors.Error) {
	hash := kindHash(t)
	if existing, ok := h.signals[t]; ok {
		return existing, errors.AlreadyExistsf("signal already registered for type %s", hash).
			WithMeta("hash", hash)
	}

	sig := newSignal()
	if !allocateBases(sig) {
		return sig, errors.InvalidArgumentf("signal type %s embeds its base through a pointer that cannot be allocated; embed the base by value", hash).
			WithMeta("hash", hash)
	}
	if owner := sig.base().hub; owner != nil && owner != h {
		return sig, errors.FailedPreconditionf("signal %s is already bound to hub %s", hash, owner.id).
			WithMeta("hash", hash).
			WithMeta("owner", owner.id)
	}

	sig.base().attach(hash, h)
	h.signals[t] = sig
	h.order = append(h.order, sig)

	if h.diagnostics {
		log.Printf("SignalHub: bound signal %s on hub %s", hash, h.id)
	}
	return sig, nil
}

var signalType = reflect.TypeOf((*Signal)(nil)).Elem()

// allocateBases fills arity bases embedded by pointer, such as
// struct{ *signals.Signal1[int] }, so base() never dereferences nil.
// It returns false when a nil base cannot be set.
func allocateBases(sig Signal) bool {
	v := reflect.ValueOf(sig)
	if v.Kind() != reflect.Pointer || v.IsNil() {
		return false
	}
	return allocateEmbedded(v.Elem())
}

func allocateEmbedded(v reflect.Value) bool {
	if v.Kind() != reflect.Struct {
		return true
	}
	t := v.Type()
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if !f.Anonymous {
			continue
		}
		fv := v.Field(i)
		switch {
		case f.Type.Kind() == reflect.Pointer && f.Type.Implements(signalType):
			if fv.IsNil() {
				if !fv.CanSet() {
					return false
				}
				fv.Set(reflect.New(f.Type.Elem()))
			}
			if !allocateEmbedded(fv.Elem()) {
				return false
			}
		case f.Type.Kind() == reflect.Struct && reflect.PointerTo(f.Type).Implements(signalType):
			if !allocateEmbedded(fv) {
				return false
			}
		}
	}
	return true
}

// Lookup finds the instance whose hash equals hash. It never creates one.
func (h *Hub) Lookup(hash string) (Signal, bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for _, sig := range h.order {
		if sig.Hash() == hash {
			return sig, true
		}
	}
	return nil, false
}

type zeroArity interface {
	AddListener(l *Listener0)
	RemoveListener(l *Listener0)
}

// AddListenerToHash adds l to the parameterless signal identified by hash.
// Unknown hashes are ignored; no instance is created.
func (h *Hub) AddListenerToHash(hash string, l *Listener0) {
	if sig, ok := h.zeroArityByHash(hash); ok {
		sig.AddListener(l)
	}
}

// RemoveListenerFromHash removes l from the parameterless signal identified
// by hash. Unknown hashes are ignored.
func (h *Hub) RemoveListenerFromHash(hash string, l *Listener0) {
	if sig, ok := h.zeroArityByHash(hash); ok {
		sig.RemoveListener(l)
	}
}

func (h *Hub) zeroArityByHash(hash string) (zeroArity, bool) {
	sig, ok := h.Lookup(hash)
	if !ok {
		return nil, false
	}
	zero, ok := sig.(zeroArity)
	if !ok && h.diagnostics {
		h.report(errors.FailedPreconditionf("signal %s takes parameters and cannot be reached by hash", hash).
			WithMeta("hash", hash))
	}
	return zero, ok
}

// Hashes returns the hashes of every bound signal in bind order
func (h *Hub) Hashes() []string {
	h.mu.RLock()
	defer h.mu.RUnlock()

	hashes := make([]string, len(h.order))
	for i, sig := range h.order {
		hashes[i] = sig.Hash()
	}
	return hashes
}

// Len returns the number of bound signal kinds
func (h *Hub) Len() int {
	h.mu.RLock()
	defer h.mu.RUnlock()

	return len(h.order)
}

// TotalListenerCount returns the number of listeners across all signals
func (h *Hub) TotalListenerCount() int {
	total := 0
	for _, sig := range h.snapshot() {
		total += sig.ListenerCount()
	}
	return total
}

// RemoveAllListeners drops every listener of every signal. The instances
// themselves stay bound.
func (h *Hub) RemoveAllListeners() {
	for _, sig := range h.snapshot() {
		sig.RemoveAllListeners()
	}
}

func (h *Hub) snapshot() []Signal {
	h.mu.RLock()
	defer h.mu.RUnlock()

	return append([]Signal(nil), h.order...)
}

func (h *Hub) report(err *errors.Error) {
	h.reporter.Report(err.WithMeta("hub", h.id))
}
