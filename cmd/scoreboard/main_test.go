package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/rpg-signals/internal/config"
	"github.com/KirkDiggler/rpg-signals/pkg/signalbus"
	"github.com/KirkDiggler/rpg-signals/pkg/signals"
)

type leaderLog struct {
	standings []Standing
}

func (l *leaderLog) OnLeaderChanged(s Standing) {
	l.standings = append(l.standings, s)
}

func TestScoreboard(t *testing.T) {
	hub := signals.NewHub(&signals.HubConfig{Diagnostics: signals.DiagnosticsOn})
	board := NewScoreboard(hub)
	board.Attach()

	leaders := &leaderLog{}
	signals.Get[LeaderChanged](hub).AddListener(signals.NewListener1(leaders.OnLeaderChanged))

	signals.Get[RoundStarted](hub).Dispatch(1)
	signals.Get[PointsScored](hub).Dispatch("alice", 3)
	signals.Get[PointsScored](hub).Dispatch("bob", 2)
	signals.Get[ItemPicked](hub).Dispatch("bob", "gem", 2)
	signals.Get[ItemPicked](hub).Dispatch("alice", "rope", 5)

	assert.Equal(t, []Standing{
		{Player: "alice", Score: 3, Round: 1},
		{Player: "bob", Score: 4, Round: 1},
	}, board.Totals())
	assert.Equal(t, []Standing{
		{Player: "alice", Score: 3, Round: 1},
		{Player: "bob", Score: 4, Round: 1},
	}, leaders.standings)

	board.Detach()
	signals.Get[PointsScored](hub).Dispatch("alice", 10)
	assert.Equal(t, 3, board.Totals()[0].Score)
	assert.Equal(t, 1, hub.TotalListenerCount())
}

func TestRunMatch(t *testing.T) {
	t.Setenv("SIGNALS_DIAGNOSTICS", "off")
	t.Setenv("SCOREBOARD_ROUNDS", "2")
	t.Setenv("SCOREBOARD_PLAYERS", "ab,c")

	cfg, err := config.Load()
	require.NoError(t, err)

	totals, announcer := runMatch(cfg)

	// ab: round1 (2+0)%6+1=3, round2 (4+0)%6+1=5, gem in round2 (+2)
	// c:  round1 (1+1)%6+1=3, gem in round1 (+1), round2 (2+1)%6+1=4
	assert.Equal(t, []Standing{
		{Player: "ab", Score: 10, Round: 2},
		{Player: "c", Score: 8, Round: 2},
	}, totals)

	// The hash subscription on the global end signal fired exactly once
	assert.Equal(t, 1, announcer.Endings())

	// Deferred cleanup left no listener on the global end signal
	assert.Equal(t, 0, signalbus.Get[MatchEnded]().ListenerCount())
}
