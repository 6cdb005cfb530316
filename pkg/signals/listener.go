package signals

// Listener0 is a removable handle for a callback without parameters
type Listener0 struct {
	fn   func()
	name string
}

// NewListener0 wraps fn in a handle. Keep the handle to remove it later.
func NewListener0(fn func()) *Listener0 {
	return &Listener0{fn: fn, name: funcName(fn)}
}

// Name returns the runtime name of the wrapped function
func (l *Listener0) Name() string {
	if l == nil {
		return ""
	}
	return l.name
}

// Listener1 is a removable handle for a callback with one parameter
type Listener1[T any] struct {
	fn   func(T)
	name string
}

// NewListener1 wraps fn in a handle. Keep the handle to remove it later.
func NewListener1[T any](fn func(T)) *Listener1[T] {
	return &Listener1[T]{fn: fn, name: funcName(fn)}
}

// Name returns the runtime name of the wrapped function
func (l *Listener1[T]) Name() string {
	if l == nil {
		return ""
	}
	return l.name
}

// Listener2 is a removable handle for a callback with two parameters
type Listener2[T1, T2 any] struct {
	fn   func(T1, T2)
	name string
}

// NewListener2 wraps fn in a handle. Keep the handle to remove it later.
func NewListener2[T1, T2 any](fn func(T1, T2)) *Listener2[T1, T2] {
	return &Listener2[T1, T2]{fn: fn, name: funcName(fn)}
}

// Name returns the runtime name of the wrapped function
func (l *Listener2[T1, T2]) Name() string {
	if l == nil {
		return ""
	}
	return l.name
}

// Listener3 is a removable handle for a callback with three parameters
type Listener3[T1, T2, T3 any] struct {
	fn   func(T1, T2, T3)
	name string
}

// NewListener3 wraps fn in a handle. Keep the handle to remove it later.
func NewListener3[T1, T2, T3 any](fn func(T1, T2, T3)) *Listener3[T1, T2, T3] {
	return &Listener3[T1, T2, T3]{fn: fn, name: funcName(fn)}
}

// Name returns the runtime name of the wrapped function
func (l *Listener3[T1, T2, T3]) Name() string {
	if l == nil {
		return ""
	}
	return l.name
}
