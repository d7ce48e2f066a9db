package engine

import "fmt"

// ApplyAction validates and applies an action by index. The action must be a
// member of the current legal set; otherwise ErrIllegalAction is returned and
// the state is left untouched. A successful apply runs to completion — trick
// resolution, hand scoring, and re-deals all happen inside this call.
func (g *GameState) ApplyAction(actionIdx uint8) error {
	if g.IsTerminal() {
		return fmt.Errorf("%w: game is already over", ErrIllegalAction)
	}
	if actionIdx >= NumActions || g.LegalActions()>>(actionIdx)&1 == 0 {
		return fmt.Errorf("%w: action %d for seat %d in phase %d", ErrIllegalAction, actionIdx, g.CurrentSeat, g.Phase)
	}

	switch g.Phase {
	case PhaseAuction:
		g.processAuction(actionIdx)
	case PhaseDeclaration:
		suit, _ := ActionIsDeclare(actionIdx)
		g.processDeclaration(suit)
	case PhaseDiscard:
		g.processDiscard(actionIdx)
	case PhaseGameplay:
		pos, _ := ActionIsCard(actionIdx)
		g.processPlay(pos)
	default:
		return fmt.Errorf("%w: phase %d accepts no actions", ErrIllegalAction, g.Phase)
	}
	return nil
}

// auctionOver reports whether the auction has terminated: every seat passed
// (the hand is thrown in), or all but one passed with a standing bid.
func (g *GameState) auctionOver() bool {
	passed := 0
	for s := uint8(0); s < NumSeats; s++ {
		if g.Seats[s].Passed {
			passed++
		}
	}
	if passed == NumSeats {
		return true
	}
	return passed == NumSeats-1 && g.HighestBidder != NoSeat
}

// processAuction applies a Pass, raising bid, or dealer Hold.
func (g *GameState) processAuction(actionIdx uint8) {
	cur := g.CurrentSeat
	seat := &g.Seats[cur]

	switch {
	case actionIdx == ActionPass:
		seat.Passed = true
	case ActionIsBid(actionIdx):
		seat.Bid = actionIdx
		g.HighestBid = actionIdx
		g.HighestBidder = int8(cur)
	case actionIdx == ActionHold:
		// The dealer adopts the standing bid without raising it.
		seat.Bid = g.HighestBid
		g.HighestBidder = int8(cur)
	}

	if g.auctionOver() {
		if g.HighestBidder == NoSeat {
			// Everyone passed: throw the hand in and re-deal.
			g.startNewHand()
			return
		}
		g.Phase = PhaseDeclaration
		g.CurrentSeat = uint8(g.HighestBidder)
		return
	}
	g.CurrentSeat = g.nextSeat(cur)
}

// processDeclaration fixes the trump suit, hands the kitty to the auction
// winner, and opens the discard rotation at the seat after the dealer.
func (g *GameState) processDeclaration(suit uint8) {
	g.TrumpSuit = int8(suit)
	g.transferKitty(uint8(g.HighestBidder))
	g.Phase = PhaseDiscard
	g.CurrentSeat = g.auctionOpener()
}

// processDiscard applies one discard (turn stays with the seat) or a Done
// signal (turn advances). When the rotation would wrap back to its starting
// seat, the discard phase is finished: hands are replenished and play opens
// at the seat after the auction winner.
func (g *GameState) processDiscard(actionIdx uint8) {
	cur := g.CurrentSeat

	if actionIdx == ActionDiscardDone {
		next := g.nextSeat(cur)
		if next == g.auctionOpener() {
			g.replenishHands()
			g.Phase = PhaseGameplay
			g.TrickLeader = g.nextSeat(uint8(g.HighestBidder))
			g.CurrentSeat = g.TrickLeader
			g.LeadSuit = NoSuit
			return
		}
		g.CurrentSeat = next
		return
	}

	pos, _ := ActionIsCard(actionIdx)
	card := g.Seats[cur].removeAt(pos)
	g.Discards[g.DiscardLen] = card
	g.DiscardLen++
}

// processPlay plays the card at the given hand position into the trick,
// resolving the trick — and, at five tricks, the hand — when complete.
func (g *GameState) processPlay(pos uint8) {
	cur := g.CurrentSeat

	// Defensive skip for the empty-hand fallback action.
	if g.Seats[cur].HandLen == 0 {
		g.CurrentSeat = g.nextSeat(cur)
		return
	}

	card := g.Seats[cur].removeAt(pos)
	g.Trick[cur] = card

	// The first card of the trick fixes the lead suit.
	if cur == g.TrickLeader {
		g.LeadSuit = int8(card.Suit())
	}

	// Track the hand's highest trump incrementally for the +5 bonus.
	if IsTrump(card, uint8(g.TrumpSuit)) &&
		(g.HighTrump == EmptyCard || winsOver(card, g.HighTrump, g.LeadSuit, uint8(g.TrumpSuit))) {
		g.HighTrump = card
		g.HighTrumpSeat = int8(cur)
	}

	if !g.TrickFull() {
		g.CurrentSeat = g.nextSeat(cur)
		return
	}

	g.endTrick()

	if g.TrickCount >= TricksPerHand || g.allHandsEmpty() {
		g.endHand()
		if g.IsTerminal() {
			return
		}
		g.startNewHand()
	}
}

// endTrick resolves the completed trick: the winner is recorded, leads the
// next trick, and acts next.
func (g *GameState) endTrick() {
	winner := g.trickWinner()

	g.TrickHistory[g.TrickCount] = g.Trick
	g.TrickWinners[g.TrickCount] = winner
	g.TricksWon[winner]++
	g.TrickCount++

	g.TrickLeader = winner
	g.CurrentSeat = winner
	g.LeadSuit = NoSuit
	for s := uint8(0); s < NumSeats; s++ {
		g.Trick[s] = EmptyCard
	}
}

// endHand scores the finished hand and settles partnership game points,
// flagging the game over when a partnership reaches the target score.
func (g *GameState) endHand() {
	g.Phase = PhaseScoring
	g.scoreHand()
	g.settleHand()
	if g.Points[0] >= g.Rules.targetScore() || g.Points[1] >= g.Rules.targetScore() {
		g.Flags |= FlagGameOver
	}
}

// startNewHand rotates the dealer one seat, deals a fresh 52-card hand, and
// reopens the auction at the seat left of the new dealer.
func (g *GameState) startNewHand() {
	g.DealerSeat = g.nextSeat(g.DealerSeat)
	g.HandNumber++
	g.resetHandState()
	g.dealHand()
	g.Phase = PhaseAuction
	g.CurrentSeat = g.auctionOpener()
}
