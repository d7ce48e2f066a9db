package engine

import (
	"math/rand/v2"
)

// StateHash returns a fast 64-bit FNV-1a hash of the game state, for seeding
// Monte Carlo PRNGs deterministically. The same state always hashes to the
// same value.
func (g *GameState) StateHash() uint64 {
	h := uint64(14695981039346656037) // FNV-1a offset basis
	const prime = uint64(1099511628211)

	for s := uint8(0); s < NumSeats; s++ {
		for i := uint8(0); i < g.Seats[s].HandLen; i++ {
			h ^= uint64(g.Seats[s].Hand[i])
			h *= prime
		}
		h ^= uint64(g.Seats[s].HandLen) << 8
		h *= prime
		h ^= uint64(g.Trick[s]) << 16
		h *= prime
	}
	for i := uint8(0); i < g.DeckLen; i++ {
		h ^= uint64(g.Deck[i])
		h *= prime
	}
	h ^= uint64(g.Phase) << 24
	h *= prime
	h ^= uint64(g.CurrentSeat) << 32
	h *= prime
	h ^= uint64(uint16(g.Points[0])) << 40
	h *= prime
	h ^= uint64(uint16(g.Points[1])) << 48
	h *= prime
	h ^= uint64(g.HandNumber) << 52
	h *= prime
	return h
}

// TrumpStrength sums the strength of the seat's cards that would be trump
// under the candidate suit. A cheap linear signal for bid and declaration
// heuristics: more and higher trumps score higher.
func (g *GameState) TrumpStrength(seat uint8, trump uint8) int {
	total := 0
	hand := &g.Seats[seat]
	for i := uint8(0); i < hand.HandLen; i++ {
		if c := hand.Hand[i]; IsTrump(c, trump) {
			total += int(Strength(c, trump))
		}
	}
	return total
}

// BestTrump returns the candidate trump suit maximizing TrumpStrength for the
// seat. Ties go to the lower suit index.
func (g *GameState) BestTrump(seat uint8) uint8 {
	best, bestScore := uint8(0), -1
	for suit := uint8(0); suit < 4; suit++ {
		if score := g.TrumpStrength(seat, suit); score > bestScore {
			best, bestScore = suit, score
		}
	}
	return best
}

// unseenBy collects every card the seat cannot see: the deck, the kitty (if
// still face down), and the other seats' hands.
func (g *GameState) unseenBy(seat uint8, out []Card) []Card {
	out = out[:0]
	for i := uint8(0); i < g.DeckLen; i++ {
		out = append(out, g.Deck[i])
	}
	for i := uint8(0); i < g.KittyLen; i++ {
		out = append(out, g.Kitty[i])
	}
	for s := uint8(0); s < NumSeats; s++ {
		if s == seat {
			continue
		}
		for i := uint8(0); i < g.Seats[s].HandLen; i++ {
			out = append(out, g.Seats[s].Hand[i])
		}
	}
	return out
}

// determinize redistributes the unseen cards uniformly: the other seats'
// hands keep their sizes but get fresh cards, then the kitty, then the deck.
// The seat's own hand and all public zones are untouched.
func (g *GameState) determinize(seat uint8, pool []Card, rng *rand.Rand) {
	rng.Shuffle(len(pool), func(i, j int) {
		pool[i], pool[j] = pool[j], pool[i]
	})

	idx := 0
	for s := uint8(0); s < NumSeats; s++ {
		if s == seat {
			continue
		}
		for i := uint8(0); i < g.Seats[s].HandLen; i++ {
			g.Seats[s].Hand[i] = pool[idx]
			idx++
		}
	}
	for i := uint8(0); i < g.KittyLen; i++ {
		g.Kitty[i] = pool[idx]
		idx++
	}
	for i := uint8(0); i < g.DeckLen; i++ {
		g.Deck[i] = pool[idx]
		idx++
	}
}

// EvalMC estimates the seat's partnership outcome of the current hand by
// determinized Monte Carlo playout: the unseen cards are redealt, the hand is
// played out with uniformly random legal actions, and the settled game-point
// swing is averaged over numSamples playouts. The result is normalized to
// roughly [-1, 1] (a thirty-for-sixty sweep maps to 1).
//
// The caller supplies the *rand.Rand for thread safety and determinism;
// seeding from StateHash keeps repeated evaluations of one state identical.
func (g *GameState) EvalMC(seat uint8, numSamples int, rng *rand.Rand) float32 {
	if numSamples <= 0 || g.IsTerminal() {
		return 0
	}

	own := Partnership(seat)
	baseDiff := g.Points[own] - g.Points[1-own]
	pool := make([]Card, 0, DeckSize)
	const maxSwing = 60 // made 30-bid banks 60

	var total float32
	for s := 0; s < numSamples; s++ {
		sim := *g
		sim.determinize(seat, sim.unseenBy(seat, pool), rng)

		hand := sim.HandNumber
		for !sim.IsTerminal() && sim.HandNumber == hand {
			legal := sim.LegalActions()
			// Pick a uniformly random set bit.
			n := 0
			var choice uint8
			for i := uint8(0); i < NumActions; i++ {
				if legal>>(i)&1 == 1 {
					n++
					if rng.IntN(n) == 0 {
						choice = i
					}
				}
			}
			if n == 0 {
				break
			}
			if err := sim.ApplyAction(choice); err != nil {
				break
			}
		}

		swing := (sim.Points[own] - sim.Points[1-own]) - baseDiff
		u := float32(swing) / maxSwing
		if u > 1 {
			u = 1
		} else if u < -1 {
			u = -1
		}
		total += u
	}
	return total / float32(numSamples)
}
