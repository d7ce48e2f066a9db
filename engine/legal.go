package engine

// setBit sets bit idx in the action bitmask.
func setBit(mask *uint32, idx uint8) {
	*mask |= 1 << idx
}

// LegalActions returns a bitmask of legal action indices for the acting seat.
// Bit i is set if action i is legal. Zero heap allocation. The mask is never
// zero for a non-terminal state: phases that could otherwise dead-end
// substitute a safe default action instead.
func (g *GameState) LegalActions() uint32 {
	if g.IsTerminal() {
		return 0
	}

	var mask uint32
	switch g.Phase {
	case PhaseAuction:
		g.legalAuction(&mask)
	case PhaseDeclaration:
		g.legalDeclaration(&mask)
	case PhaseDiscard:
		g.legalDiscard(&mask)
	case PhaseGameplay:
		g.legalPlays(&mask)
	}
	return mask
}

// LegalActionsList returns legal actions as a slice (for tests and drivers;
// allocates).
func (g *GameState) LegalActionsList() []uint8 {
	mask := g.LegalActions()
	var actions []uint8
	for i := uint8(0); i < NumActions; i++ {
		if mask>>(i)&1 == 1 {
			actions = append(actions, i)
		}
	}
	return actions
}

// legalAuction populates legal actions for the Auction phase.
//
// A seat that has passed is out for the hand; the turn still rotates through
// it, so its only action is the safe default Pass (a no-op re-pass). Raises
// must be strictly greater than the standing bid. Hold is the dealer's
// privilege of adopting the standing bid, and needs a standing bid to adopt.
func (g *GameState) legalAuction(mask *uint32) {
	seat := &g.Seats[g.CurrentSeat]

	setBit(mask, ActionPass)
	if seat.Passed {
		return
	}

	for code := g.HighestBid + 1; code <= ActionBid30; code++ {
		setBit(mask, code)
	}
	if g.CurrentSeat == g.DealerSeat && g.HighestBid != BidNone {
		setBit(mask, ActionHold)
	}
}

// legalDeclaration populates legal actions for the Declaration phase:
// the auction winner may name any of the four suits.
func (g *GameState) legalDeclaration(mask *uint32) {
	for suit := uint8(0); suit < 4; suit++ {
		setBit(mask, EncodeDeclare(suit))
	}
}

// legalDiscard populates legal actions for the Discard phase.
//
// Any seat may discard any card by position, any number of times. The
// auction winner took the kitty and must get back down to 5 cards before
// Done is offered; everyone else may stop at any time, including
// immediately.
func (g *GameState) legalDiscard(mask *uint32) {
	seat := &g.Seats[g.CurrentSeat]

	for pos := uint8(0); pos < seat.HandLen; pos++ {
		setBit(mask, EncodeCard(pos))
	}

	isWinner := g.HighestBidder == int8(g.CurrentSeat)
	if !isWinner || seat.HandLen <= CardsPerSeat {
		setBit(mask, ActionDiscardDone)
	}
}

// legalPlays populates legal actions for the Gameplay phase. This is the
// follow-suit / must-play-trump / renege rule, the game's hardest:
//
//   - Leading, or holding no cards: anything goes.
//   - Trump led by a high trump (5, J, A♥): every trump in hand must come
//     out — no renege.
//   - Trump led by a low trump: the renege privilege applies and the whole
//     hand is legal, so a high trump need not be sacrificed.
//   - Off-trump suit led: follow suit or trump in, at the seat's option;
//     holding neither, anything goes.
//
// The Ace of Hearts counts as a trump for playability no matter which suit
// was declared. HouseRules.StrictFollowSuit replaces all of this with plain
// strict following (see legalPlaysStrict).
func (g *GameState) legalPlays(mask *uint32) {
	seat := &g.Seats[g.CurrentSeat]
	handLen := seat.HandLen

	// Defensive: an empty hand mid-trick cannot occur through legal play,
	// but the contract guarantees a non-empty action set. Card(0) acts as a
	// no-op skip in processPlay.
	if handLen == 0 {
		setBit(mask, EncodeCard(0))
		return
	}

	if g.CurrentSeat == g.TrickLeader || g.LeadSuit == NoSuit {
		for pos := uint8(0); pos < handLen; pos++ {
			setBit(mask, EncodeCard(pos))
		}
		return
	}

	if g.Rules.StrictFollowSuit {
		g.legalPlaysStrict(mask)
		return
	}

	trump := uint8(g.TrumpSuit)

	var leadCards, trumpCards uint32 // hand-position bitsets
	for pos := uint8(0); pos < handLen; pos++ {
		c := seat.Hand[pos]
		if int8(c.Suit()) == g.LeadSuit {
			leadCards |= 1 << pos
		}
		if IsTrump(c, trump) {
			trumpCards |= 1 << pos
		}
	}

	if g.LeadSuit == int8(trump) {
		if trumpCards == 0 {
			// No trump to follow with: anything goes.
			for pos := uint8(0); pos < handLen; pos++ {
				setBit(mask, EncodeCard(pos))
			}
			return
		}
		leadCard := g.Trick[g.TrickLeader]
		if isHighTrump(leadCard, trump) {
			// High trump led: every trump must be offered, no renege.
			for pos := uint8(0); pos < handLen; pos++ {
				if trumpCards>>(pos)&1 == 1 {
					setBit(mask, EncodeCard(pos))
				}
			}
			return
		}
		// Low trump led: renege — the whole hand is legal.
		for pos := uint8(0); pos < handLen; pos++ {
			setBit(mask, EncodeCard(pos))
		}
		return
	}

	// Off-trump lead: follow suit and/or trump in.
	union := leadCards | trumpCards
	if union == 0 {
		union = (1 << handLen) - 1
	}
	for pos := uint8(0); pos < handLen; pos++ {
		if union>>(pos)&1 == 1 {
			setBit(mask, EncodeCard(pos))
		}
	}
}

// legalPlaysStrict is the StrictFollowSuit variant: the Ace of Hearts is an
// ordinary heart for playability, trumping in is not elective, and a
// low-trump lead forces the low trumps out instead of granting renege.
func (g *GameState) legalPlaysStrict(mask *uint32) {
	seat := &g.Seats[g.CurrentSeat]
	handLen := seat.HandLen
	trump := uint8(g.TrumpSuit)

	var leadCards, trumpCards, highTrumps uint32
	for pos := uint8(0); pos < handLen; pos++ {
		c := seat.Hand[pos]
		if int8(c.Suit()) == g.LeadSuit {
			leadCards |= 1 << pos
		}
		if c.Suit() == trump {
			trumpCards |= 1 << pos
			if c.Rank() == RankFive || c.Rank() == RankJack {
				highTrumps |= 1 << pos
			}
		}
	}

	all := uint32(1)<<handLen - 1

	emit := func(set uint32) {
		for pos := uint8(0); pos < handLen; pos++ {
			if set>>(pos)&1 == 1 {
				setBit(mask, EncodeCard(pos))
			}
		}
	}

	if g.LeadSuit == int8(trump) {
		if trumpCards == 0 {
			emit(all)
			return
		}
		leadCard := g.Trick[g.TrickLeader]
		highLed := leadCard.Suit() == trump &&
			(leadCard.Rank() == RankFive || leadCard.Rank() == RankJack)
		if highLed {
			emit(trumpCards)
			return
		}
		if low := trumpCards &^ highTrumps; low != 0 {
			emit(low)
			return
		}
		// Only high trumps held: they may be withheld entirely.
		emit(all)
		return
	}

	if leadCards != 0 {
		emit(leadCards)
		return
	}
	emit(all)
}
