// Command fortyfives plays random self-play games to completion and logs the
// action stream. It exists to exercise the engine end to end and to eyeball
// rule behavior; RL training harnesses drive the engine package directly.
package main

import (
	"flag"
	"math/rand/v2"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	engine "github.com/jitousig/fortyfives-ai/engine"
	"github.com/jitousig/fortyfives-ai/internal/match"
)

func envUint64(key string, fallback uint64) uint64 {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.ParseUint(v, 10, 64); err == nil {
			return n
		}
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func main() {
	// A missing .env is fine; environment variables still apply.
	_ = godotenv.Load()

	seed := flag.Uint64("seed", envUint64("FORTYFIVES_SEED", 1), "base RNG seed; game i uses seed+i")
	games := flag.Int("games", envInt("FORTYFIVES_GAMES", 1), "number of games to play")
	target := flag.Int("target", envInt("FORTYFIVES_TARGET", 0), "target score override (0 = 125)")
	strict := flag.Bool("strict", false, "strict follow-suit variant (no renege, A♥ not trump)")
	verbose := flag.Bool("verbose", false, "log every table event")
	flag.Parse()

	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	if *verbose {
		log.SetLevel(logrus.DebugLevel)
	}

	rules := engine.DefaultHouseRules()
	if *target > 0 {
		rules.TargetScore = int16(*target)
	}
	rules.StrictFollowSuit = *strict

	var wins [engine.NumPartnerships]int
	for i := 0; i < *games; i++ {
		gameSeed := *seed + uint64(i)
		rng := rand.New(rand.NewPCG(gameSeed, 0xF0F7))
		policy := func(_ *engine.GameState, legal []uint8) uint8 {
			return legal[rng.IntN(len(legal))]
		}

		m := match.New(gameSeed, rules)
		gameLog := log.WithFields(logrus.Fields{"match": m.ID, "seed": gameSeed})
		m.OnEvent = func(e match.Event) { logEvent(gameLog, e) }

		steps, err := m.Run([engine.NumSeats]match.Policy{policy, policy, policy, policy}, 1<<20)
		if err != nil {
			gameLog.WithError(err).Fatal("match aborted")
		}

		ns, ew := m.Game.PartnershipScores()
		winner := 0
		if ew > ns {
			winner = 1
		}
		wins[winner]++
		gameLog.WithFields(logrus.Fields{
			"steps": steps,
			"hands": m.Game.HandNumber + 1,
			"ns":    ns,
			"ew":    ew,
		}).Info("game over")
	}

	log.WithFields(logrus.Fields{
		"games":    *games,
		"ns_wins":  wins[0],
		"ew_wins":  wins[1],
	}).Info("done")
}

func logEvent(log *logrus.Entry, e match.Event) {
	switch e.Type {
	case match.EventHandSettled:
		log.WithFields(logrus.Fields{
			"hand":     e.HandNumber,
			"bidder":   e.Result.BidderSeat,
			"bid":      engine.BidValue(e.Result.BidCode),
			"made":     e.Result.BidMade,
			"raw_ns":   e.Result.Raw[0],
			"raw_ew":   e.Result.Raw[1],
			"delta_ns": e.Result.Delta[0],
			"delta_ew": e.Result.Delta[1],
			"ns":       e.Scores[0],
			"ew":       e.Scores[1],
		}).Info("hand settled")
	case match.EventGameEnd:
		// The per-game summary logs the final scores.
	default:
		fields := logrus.Fields{"seat": e.Seat, "player": e.Player}
		if e.Card != "" {
			fields["card"] = e.Card
		}
		if e.Suit != "" {
			fields["trump"] = e.Suit
		}
		if e.Bid != 0 {
			fields["bid"] = e.Bid
		}
		if e.Type == match.EventTrickWon {
			fields["winner"] = e.Winner
		}
		log.WithFields(fields).Debug(string(e.Type))
	}
}
