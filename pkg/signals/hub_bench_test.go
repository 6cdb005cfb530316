package signals_test

import (
	"testing"

	"github.com/KirkDiggler/rpg-signals/pkg/signals"
)

type counter struct{ n int }

func (c *counter) OnScore(score int) { c.n += score }

func benchHub() *signals.Hub {
	return signals.NewHub(&signals.HubConfig{Diagnostics: signals.DiagnosticsOff})
}

func BenchmarkDispatch(b *testing.B) {
	sig := signals.Get[scoreChanged](benchHub())
	c := &counter{}
	for i := 0; i < 10; i++ {
		sig.AddListener(signals.NewListener1(c.OnScore))
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sig.Dispatch(1)
	}
}

func BenchmarkDispatchSingleListener(b *testing.B) {
	sig := signals.Get[scoreChanged](benchHub())
	sig.AddListener(signals.NewListener1((&counter{}).OnScore))

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sig.Dispatch(1)
	}
}

func BenchmarkDispatchNoListeners(b *testing.B) {
	sig := signals.Get[scoreChanged](benchHub())

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sig.Dispatch(1)
	}
}

func BenchmarkGet(b *testing.B) {
	hub := benchHub()
	signals.Get[scoreChanged](hub)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = signals.Get[scoreChanged](hub)
	}
}

func BenchmarkAddRemoveListener(b *testing.B) {
	sig := signals.Get[scoreChanged](benchHub())
	l := signals.NewListener1((&counter{}).OnScore)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sig.AddListener(l)
		sig.RemoveListener(l)
	}
}
