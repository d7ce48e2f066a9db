// Package agent adapts the rules engine to reinforcement-learning tooling:
// a fixed-size observation encoder, legal-action mask expansion, and terminal
// payoffs. The encoder is egocentric — every seat-indexed feature is rotated
// so index 0 is the observing seat — which lets one network play all four
// seats.
package agent

import engine "github.com/jitousig/fortyfives-ai/engine"

const (
	// NumActions mirrors the engine's flat action space.
	NumActions = int(engine.NumActions)

	cardDim = engine.DeckSize // one-hot card identity
	bidDim  = 4               // BidNone, Bid20, Bid25, Bid30

	// InputDim is the observation vector length. Layout:
	//
	//	[0-51]    own hand, multi-hot by card id
	//	[52-259]  current trick, 4 relative seats × 52 (self, left, partner, right)
	//	[260-265] phase one-hot
	//	[266-281] auction bids, 4 relative seats × 4 codes
	//	[282-286] trump suit one-hot, index 4 = undeclared
	//	[287-288] partnership scores / target (own, opposing)
	//	[289-290] tricks won this hand / 5 (own partnership, opposing)
	//	[291-294] dealer position one-hot, relative to the observer
	InputDim = cardDim +
		engine.NumSeats*cardDim +
		int(engine.NumPhases) +
		engine.NumSeats*bidDim +
		5 +
		engine.NumPartnerships +
		engine.NumPartnerships +
		engine.NumSeats
)

// relative returns seat's position in the observer's egocentric seat order:
// 0 = the observer, 1 = left, 2 = partner, 3 = right.
func relative(observer, seat uint8) int {
	return int((seat + engine.NumSeats - observer) % engine.NumSeats)
}

// bidIndex maps a seat's bid code to its one-hot index. BidNone and the bid
// codes are already dense (0..3).
func bidIndex(code uint8) int { return int(code) }

// Encode writes the observation vector for the given seat into out. The
// vector is zeroed first; out never allocates, matching the engine's
// no-heap contract.
func Encode(g *engine.GameState, seat uint8, out *[InputDim]float32) {
	*out = [InputDim]float32{}
	offset := 0

	// Own hand: 52-dim multi-hot.
	hand := &g.Seats[seat]
	for i := uint8(0); i < hand.HandLen; i++ {
		out[offset+int(hand.Hand[i].ID())] = 1.0
	}
	offset += cardDim

	// Current trick: one 52-dim one-hot per relative seat; an unplayed slot
	// stays all-zero.
	for s := uint8(0); s < engine.NumSeats; s++ {
		c := g.Trick[s]
		if c != engine.EmptyCard {
			out[offset+relative(seat, s)*cardDim+int(c.ID())] = 1.0
		}
	}
	offset += engine.NumSeats * cardDim

	// Phase.
	out[offset+int(g.Phase)] = 1.0
	offset += int(engine.NumPhases)

	// Bids per relative seat. A passed seat reads as BidNone unless it bid
	// before passing out, matching what the table can see.
	for s := uint8(0); s < engine.NumSeats; s++ {
		out[offset+relative(seat, s)*bidDim+bidIndex(g.Seats[s].Bid)] = 1.0
	}
	offset += engine.NumSeats * bidDim

	// Trump suit, or the trailing "undeclared" slot.
	if g.TrumpSuit == engine.NoSuit {
		out[offset+4] = 1.0
	} else {
		out[offset+int(g.TrumpSuit)] = 1.0
	}
	offset += 5

	// Partnership scores, own partnership first, scaled by the target.
	target := float32(g.Rules.TargetScore)
	if target == 0 {
		target = float32(engine.DefaultHouseRules().TargetScore)
	}
	own := engine.Partnership(seat)
	out[offset] = float32(g.Points[own]) / target
	out[offset+1] = float32(g.Points[1-own]) / target
	offset += engine.NumPartnerships

	// Tricks won this hand per partnership, own first.
	var tricks [engine.NumPartnerships]uint8
	for s := uint8(0); s < engine.NumSeats; s++ {
		tricks[engine.Partnership(s)] += g.TricksWon[s]
	}
	out[offset] = float32(tricks[own]) / float32(engine.TricksPerHand)
	out[offset+1] = float32(tricks[1-own]) / float32(engine.TricksPerHand)
	offset += engine.NumPartnerships

	// Dealer position relative to the observer.
	out[offset+relative(seat, g.DealerSeat)] = 1.0
}

// ActionMask expands the engine's legal-action bitmask into a per-action
// boolean mask for policy masking.
func ActionMask(legalActions uint32, out *[NumActions]bool) {
	*out = [NumActions]bool{}
	for i := 0; i < NumActions; i++ {
		if legalActions>>(uint(i))&1 == 1 {
			out[i] = true
		}
	}
}

// Payoffs returns the per-seat reward for the current state. On a terminal
// state the winning partnership's seats get +1 and the losers -1; before
// that, each seat gets its partnership's point lead scaled by the target,
// clamped to [-1, 1], as a shaped intermediate signal.
func Payoffs(g *engine.GameState) [engine.NumSeats]float32 {
	var out [engine.NumSeats]float32

	if g.IsTerminal() {
		winner := uint8(0)
		if g.Points[1] > g.Points[0] {
			winner = 1
		}
		for s := uint8(0); s < engine.NumSeats; s++ {
			if engine.Partnership(s) == winner {
				out[s] = 1.0
			} else {
				out[s] = -1.0
			}
		}
		return out
	}

	target := float32(g.Rules.TargetScore)
	if target == 0 {
		target = float32(engine.DefaultHouseRules().TargetScore)
	}
	for s := uint8(0); s < engine.NumSeats; s++ {
		own := engine.Partnership(s)
		lead := float32(g.Points[own]-g.Points[1-own]) / target
		if lead > 1 {
			lead = 1
		}
		if lead < -1 {
			lead = -1
		}
		out[s] = lead
	}
	return out
}
