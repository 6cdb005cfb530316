package signals

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/rpg-signals/internal/errors"
)

type namedHolder struct{}

func (namedHolder) Handle() {}

func TestIsAnonymous(t *testing.T) {
	tests := []struct {
		name string
		want bool
	}{
		{name: "main.onScore", want: false},
		{name: "game.(*Board).OnScore-fm", want: false},
		{name: "game.Board.Awake.func1", want: true},
		{name: "game.Board.Awake.func1.2", want: true},
		{name: "game.glob..func3", want: true},
		{name: "game.Register[...].func1", want: true},
		{name: "game.functional", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, isAnonymous(tt.name))
		})
	}
}

func TestFuncName(t *testing.T) {
	assert.Equal(t, "", funcName(nil))
	assert.Equal(t, "", funcName((func())(nil)))
	assert.Equal(t, "", funcName(42))

	assert.False(t, isAnonymous(funcName(namedHolder{}.Handle)))
	assert.True(t, isAnonymous(funcName(func() {})))
}

func TestKindHash(t *testing.T) {
	type local struct{ Signal0 }

	assert.Equal(t, "github.com/KirkDiggler/rpg-signals/pkg/signals.Signal0", HashOf[Signal0]())
	assert.Equal(t, "github.com/KirkDiggler/rpg-signals/pkg/signals.local", HashOf[local]())
	assert.Equal(t, "struct { signals.Signal0 }", HashOf[struct{ Signal0 }]())
}

func TestListenerListCopyOnWrite(t *testing.T) {
	var list listenerList[*Listener0]
	a, b := NewListener0(nil), NewListener0(nil)

	list.add(a)
	before := list.snapshot()
	list.add(b)
	list.remove(a)

	assert.Equal(t, []*Listener0{a}, before)
	assert.Equal(t, []*Listener0{b}, list.snapshot())
	assert.False(t, list.remove(a))
}

type hiddenBase = Signal1[int]

// The embedded field is named hiddenBase, so reflection cannot set it
type hiddenKind struct{ *hiddenBase }

type collectingReporter struct{ errs []error }

func (r *collectingReporter) Report(err error) { r.errs = append(r.errs, err) }

func TestGetUnallocatableBase(t *testing.T) {
	reporter := &collectingReporter{}
	hub := NewHub(&HubConfig{Reporter: reporter, Diagnostics: DiagnosticsOff})

	assert.NotPanics(t, func() { Get[hiddenKind](hub) })

	require.Len(t, reporter.errs, 1)
	assert.True(t, errors.IsInvalidArgument(reporter.errs[0]))
	assert.Contains(t, reporter.errs[0].Error(), "embed the base by value")
	assert.Equal(t, 0, hub.Len())
}

func TestAllocateBases(t *testing.T) {
	type byValue struct{ Signal0 }
	type byPointer struct{ *Signal2[string, int] }

	v := &byValue{}
	assert.True(t, allocateBases(v))

	p := &byPointer{}
	require.True(t, allocateBases(p))
	assert.NotNil(t, p.Signal2)

	var missing *byPointer
	assert.False(t, allocateBases(missing))
}
