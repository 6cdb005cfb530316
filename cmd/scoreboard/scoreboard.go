package main

import (
	"log"
	"sort"

	"github.com/KirkDiggler/rpg-signals/pkg/signals"
)

// Scoreboard keeps running totals and announces lead changes
type Scoreboard struct {
	hub    *signals.Hub
	scores map[string]int
	round  int
	leader string

	onRound  *signals.Listener1[int]
	onPoints *signals.Listener2[string, int]
	onItem   *signals.Listener3[string, string, int]
}

// NewScoreboard creates a scoreboard for the given match hub
func NewScoreboard(hub *signals.Hub) *Scoreboard {
	return &Scoreboard{
		hub:    hub,
		scores: make(map[string]int),
	}
}

// Attach subscribes the scoreboard to the match signals
func (b *Scoreboard) Attach() {
	b.onRound = signals.NewListener1(b.OnRoundStarted)
	b.onPoints = signals.NewListener2(b.OnPointsScored)
	b.onItem = signals.NewListener3(b.OnItemPicked)

	signals.Get[RoundStarted](b.hub).AddListener(b.onRound)
	signals.Get[PointsScored](b.hub).AddListener(b.onPoints)
	signals.Get[ItemPicked](b.hub).AddListener(b.onItem)
}

// Detach removes every listener added by Attach
func (b *Scoreboard) Detach() {
	signals.Get[RoundStarted](b.hub).RemoveListener(b.onRound)
	signals.Get[PointsScored](b.hub).RemoveListener(b.onPoints)
	signals.Get[ItemPicked](b.hub).RemoveListener(b.onItem)
}

func (b *Scoreboard) OnRoundStarted(round int) {
	b.round = round
}

func (b *Scoreboard) OnPointsScored(player string, points int) {
	b.scores[player] += points
	b.updateLeader()
}

func (b *Scoreboard) OnItemPicked(player, item string, qty int) {
	// Gems are worth a point each
	if item == "gem" {
		b.OnPointsScored(player, qty)
	}
}

func (b *Scoreboard) updateLeader() {
	leader, best := b.leader, b.scores[b.leader]
	for player, score := range b.scores {
		if score > best {
			leader, best = player, score
		}
	}
	if leader == b.leader {
		return
	}
	b.leader = leader
	signals.Get[LeaderChanged](b.hub).Dispatch(Standing{Player: leader, Score: best, Round: b.round})
}

// Totals returns the final scores sorted by player name
func (b *Scoreboard) Totals() []Standing {
	out := make([]Standing, 0, len(b.scores))
	for player, score := range b.scores {
		out = append(out, Standing{Player: player, Score: score, Round: b.round})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Player < out[j].Player })
	return out
}

// Announcer logs what happens in the match
type Announcer struct {
	onLeader *signals.Listener1[Standing]
	onEnd    *signals.Listener0
	endings  int
}

// Endings returns how many times the match end was announced
func (a *Announcer) Endings() int {
	return a.endings
}

func (a *Announcer) OnLeaderChanged(s Standing) {
	log.Printf("Announcer: %s takes the lead with %d in round %d", s.Player, s.Score, s.Round)
}

func (a *Announcer) OnMatchEnded() {
	a.endings++
	log.Printf("Announcer: match over")
}
