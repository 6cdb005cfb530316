package main

import "github.com/KirkDiggler/rpg-signals/pkg/signals"

// RoundStarted carries the round number
type RoundStarted struct{ signals.Signal1[int] }

// PointsScored carries the player and the points gained
type PointsScored struct{ signals.Signal2[string, int] }

// ItemPicked carries the player, the item and the quantity
type ItemPicked struct {
	signals.Signal3[string, string, int]
}

// Standing bundles the leader state so LeaderChanged stays at one parameter
type Standing struct {
	Player string
	Score  int
	Round  int
}

// LeaderChanged fires when a different player takes the lead
type LeaderChanged struct{ signals.Signal1[Standing] }

// MatchEnded is global and parameterless, so tools can reach it by hash
type MatchEnded struct{ signals.Signal0 }
