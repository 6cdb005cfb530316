package signals_test

import (
	"fmt"
	"sync"

	"github.com/KirkDiggler/rpg-signals/pkg/signals"
)

// Signal kinds shared by the suites
type roundEnded struct{ signals.Signal0 }
type scoreChanged struct{ signals.Signal1[int] }
type playerHit struct{ signals.Signal2[string, int] }
type itemPicked struct {
	signals.Signal3[string, string, int]
}
type aKind struct{ signals.Signal1[string] }
type bKind struct{ signals.Signal1[string] }

// recorder collects calls through method values, which count as named listeners
type recorder struct {
	name  string
	mu    sync.Mutex
	calls []string
}

func newRecorder(name string) *recorder {
	return &recorder{name: name}
}

func (r *recorder) record(format string, args ...any) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, r.name+":"+fmt.Sprintf(format, args...))
}

func (r *recorder) OnRound()                         { r.record("round") }
func (r *recorder) OnScore(score int)                { r.record("score=%d", score) }
func (r *recorder) OnHit(who string, damage int)     { r.record("hit=%s/%d", who, damage) }
func (r *recorder) OnItem(who, item string, qty int) { r.record("item=%s/%s/%d", who, item, qty) }
func (r *recorder) OnMessage(msg string)             { r.record("msg=%s", msg) }

func (r *recorder) Calls() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.calls...)
}

// journal records the order in which several recorders fire
type journal struct {
	mu      sync.Mutex
	entries []string
}

func (j *journal) add(entry string) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.entries = append(j.entries, entry)
}

func (j *journal) Entries() []string {
	j.mu.Lock()
	defer j.mu.Unlock()
	return append([]string(nil), j.entries...)
}

type orderedListener struct {
	name    string
	journal *journal
}

func (o *orderedListener) OnScore(score int) {
	o.journal.add(fmt.Sprintf("%s(%d)", o.name, score))
}

type boom struct{}

func (boom) OnScore(int) {
	panic("listener failed")
}

// recordingReporter keeps every reported error
type recordingReporter struct {
	mu   sync.Mutex
	errs []error
}

func (r *recordingReporter) Report(err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.errs = append(r.errs, err)
}

func (r *recordingReporter) Errors() []error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]error(nil), r.errs...)
}

func noop() {}
