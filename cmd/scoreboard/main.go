package main

import (
	"log"

	"github.com/joho/godotenv"

	"github.com/KirkDiggler/rpg-signals/internal/config"
	"github.com/KirkDiggler/rpg-signals/pkg/signalbus"
	"github.com/KirkDiggler/rpg-signals/pkg/signals"
)

func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	} else {
		log.Println("Loaded .env file")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := signalbus.Configure(cfg.HubConfig()); err != nil {
		log.Fatalf("Failed to configure signal bus: %v", err)
	}

	log.Printf("Diagnostics: %s", cfg.Signals.Diagnostics)
	log.Printf("Players: %v, rounds: %d", cfg.Scoreboard.Players, cfg.Scoreboard.Rounds)

	totals, announcer := runMatch(cfg)
	if announcer.Endings() == 0 {
		log.Printf("Match end was never announced")
	}
	for _, s := range totals {
		log.Printf("Final: %s %d", s.Player, s.Score)
	}
}

// runMatch plays a scripted match on its own hub and reports the end on
// the global bus
func runMatch(cfg *config.Config) ([]Standing, *Announcer) {
	match := signals.NewHub(cfg.HubConfig())
	log.Printf("Match hub %s", match.ID())

	board := NewScoreboard(match)
	board.Attach()
	defer board.Detach()

	announcer := &Announcer{}
	announcer.onLeader = signals.NewListener1(announcer.OnLeaderChanged)
	signals.Get[LeaderChanged](match).AddListener(announcer.onLeader)
	defer signals.Get[LeaderChanged](match).RemoveListener(announcer.onLeader)

	// The announcer only knows the hash of the global end signal
	signalbus.Get[MatchEnded]()
	announcer.onEnd = signals.NewListener0(announcer.OnMatchEnded)
	endHash := signals.HashOf[MatchEnded]()
	signalbus.AddListenerToHash(endHash, announcer.onEnd)
	defer signalbus.RemoveListenerFromHash(endHash, announcer.onEnd)

	players := cfg.Scoreboard.Players
	for round := 1; round <= cfg.Scoreboard.Rounds; round++ {
		signals.Get[RoundStarted](match).Dispatch(round)
		for i, player := range players {
			signals.Get[PointsScored](match).Dispatch(player, (round*len(player)+i)%6+1)
			if (round+i)%2 == 0 {
				signals.Get[ItemPicked](match).Dispatch(player, "gem", round)
			}
		}
	}

	signalbus.Get[MatchEnded]().Dispatch()
	return board.Totals(), announcer
}
