// Package signals implements typed, synchronous signals and the Hub that
// keeps one instance of each signal kind.
//
// A signal kind is a named type embedding one of the arity bases:
//
//	type ScoreChanged struct{ signals.Signal1[int] }
//	type PlayerJoined struct{ signals.Signal2[string, int] }
//
// Subscribers wrap their callback in a listener handle once and keep it,
// since the handle is what RemoveListener matches against:
//
//	func (b *Board) Awake(hub *signals.Hub) {
//		b.onScore = signals.NewListener1(b.OnScore)
//		signals.Get[ScoreChanged](hub).AddListener(b.onScore)
//	}
//
//	func (b *Board) Destroy(hub *signals.Hub) {
//		signals.Get[ScoreChanged](hub).RemoveListener(b.onScore)
//	}
//
// Publishers fetch the same instance and dispatch it:
//
//	signals.Get[ScoreChanged](hub).Dispatch(42)
//
// Dispatch runs every listener on the calling goroutine, in registration
// order. A panicking listener is not recovered and stops the dispatch.
//
// Signals carry at most three parameters. When more values travel
// together, bundle them in a struct and use Signal1 with that struct.
//
// Listeners are never removed automatically. A subscriber that goes away
// must remove its own listeners first.
//
// Callbacks should be named functions or method values. With diagnostics
// enabled (HubConfig.Diagnostics, or building with -tags signalsdebug) the
// hub reports listeners built from func literals through its Reporter.
package signals
