package signals

// Signal0 is the base for signal kinds without parameters
type Signal0 struct {
	binding
	listeners listenerList[*Listener0]
}

// AddListener appends l. Adding the same handle twice makes it fire twice.
func (s *Signal0) AddListener(l *Listener0) {
	if s.admit(l != nil && l.fn != nil, l.Name()) {
		s.listeners.add(l)
	}
}

// RemoveListener removes the first registration of l, if any
func (s *Signal0) RemoveListener(l *Listener0) {
	s.listeners.remove(l)
}

// Dispatch calls every listener in registration order
func (s *Signal0) Dispatch() {
	for _, l := range s.listeners.snapshot() {
		l.fn()
	}
}

// ListenerCount returns the number of registered listeners
func (s *Signal0) ListenerCount() int {
	return s.listeners.count()
}

// RemoveAllListeners drops every listener
func (s *Signal0) RemoveAllListeners() {
	s.listeners.clear()
}

// Signal1 is the base for signal kinds with one parameter
type Signal1[T any] struct {
	binding
	listeners listenerList[*Listener1[T]]
}

// AddListener appends l. Adding the same handle twice makes it fire twice.
func (s *Signal1[T]) AddListener(l *Listener1[T]) {
	if s.admit(l != nil && l.fn != nil, l.Name()) {
		s.listeners.add(l)
	}
}

// RemoveListener removes the first registration of l, if any
func (s *Signal1[T]) RemoveListener(l *Listener1[T]) {
	s.listeners.remove(l)
}

// Dispatch calls every listener in registration order
func (s *Signal1[T]) Dispatch(arg T) {
	for _, l := range s.listeners.snapshot() {
		l.fn(arg)
	}
}

// ListenerCount returns the number of registered listeners
func (s *Signal1[T]) ListenerCount() int {
	return s.listeners.count()
}

// RemoveAllListeners drops every listener
func (s *Signal1[T]) RemoveAllListeners() {
	s.listeners.clear()
}

// Signal2 is the base for signal kinds with two parameters
type Signal2[T1, T2 any] struct {
	binding
	listeners listenerList[*Listener2[T1, T2]]
}

// AddListener appends l. Adding the same handle twice makes it fire twice.
func (s *Signal2[T1, T2]) AddListener(l *Listener2[T1, T2]) {
	if s.admit(l != nil && l.fn != nil, l.Name()) {
		s.listeners.add(l)
	}
}

// RemoveListener removes the first registration of l, if any
func (s *Signal2[T1, T2]) RemoveListener(l *Listener2[T1, T2]) {
	s.listeners.remove(l)
}

// Dispatch calls every listener in registration order
func (s *Signal2[T1, T2]) Dispatch(arg1 T1, arg2 T2) {
	for _, l := range s.listeners.snapshot() {
		l.fn(arg1, arg2)
	}
}

// ListenerCount returns the number of registered listeners
func (s *Signal2[T1, T2]) ListenerCount() int {
	return s.listeners.count()
}

// RemoveAllListeners drops every listener
func (s *Signal2[T1, T2]) RemoveAllListeners() {
	s.listeners.clear()
}

// Signal3 is the base for signal kinds with three parameters. Past three,
// pass a struct through Signal1 instead.
type Signal3[T1, T2, T3 any] struct {
	binding
	listeners listenerList[*Listener3[T1, T2, T3]]
}

// AddListener appends l. Adding the same handle twice makes it fire twice.
func (s *Signal3[T1, T2, T3]) AddListener(l *Listener3[T1, T2, T3]) {
	if s.admit(l != nil && l.fn != nil, l.Name()) {
		s.listeners.add(l)
	}
}

// RemoveListener removes the first registration of l, if any
func (s *Signal3[T1, T2, T3]) RemoveListener(l *Listener3[T1, T2, T3]) {
	s.listeners.remove(l)
}

// Dispatch calls every listener in registration order
func (s *Signal3[T1, T2, T3]) Dispatch(arg1 T1, arg2 T2, arg3 T3) {
	for _, l := range s.listeners.snapshot() {
		l.fn(arg1, arg2, arg3)
	}
}

// ListenerCount returns the number of registered listeners
func (s *Signal3[T1, T2, T3]) ListenerCount() int {
	return s.listeners.count()
}

// RemoveAllListeners drops every listener
func (s *Signal3[T1, T2, T3]) RemoveAllListeners() {
	s.listeners.clear()
}
