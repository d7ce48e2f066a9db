package engine

// Hand scoring: 5 points per trick, plus a 5-point bonus to the partnership
// whose seat played the single highest trump of the hand (25 + 5 = 30 points
// in play each hand). Settlement then applies the bid-fulfillment rules:
//
//   - The bidding partnership must take at least its bid in raw hand points.
//     Making the bid banks the raw points — except a made 30-bid, which banks
//     60 ("thirty for sixty"). Failing banks minus the bid value instead.
//   - The non-bidding partnership banks its raw points, unless it is sitting
//     at 100 or more: from there it may only score in hands where the
//     bidding side fails.

// scoreHand computes the raw hand points per partnership and whether the
// bidding side made its bid. It does not touch the game totals.
func (g *GameState) scoreHand() {
	var raw [NumPartnerships]int16
	for s := uint8(0); s < NumSeats; s++ {
		raw[Partnership(s)] += int16(g.TricksWon[s]) * 5
	}
	if g.HighTrumpSeat != NoSeat {
		raw[Partnership(uint8(g.HighTrumpSeat))] += 5
	}
	g.HandPoints = raw

	g.LastHand = HandResult{
		Played:     true,
		BidderSeat: g.HighestBidder,
		BidCode:    g.HighestBid,
		Raw:        raw,
	}
	if g.HighestBidder != NoSeat {
		bidTeam := Partnership(uint8(g.HighestBidder))
		g.LastHand.BidMade = raw[bidTeam] >= BidValue(g.HighestBid)
	}
}

// settleHand banks the scored hand into the partnership game totals,
// applying the thirty-for-sixty reward, the failed-bid penalty, and the
// 100-point pegging restriction.
func (g *GameState) settleHand() {
	if g.HighestBidder == NoSeat {
		// No declarer: nothing to settle. Unreachable in practice, since an
		// all-pass auction re-deals without play.
		return
	}

	bidTeam := Partnership(uint8(g.HighestBidder))
	defTeam := 1 - bidTeam
	bidValue := BidValue(g.HighestBid)
	raw := g.HandPoints

	var delta [NumPartnerships]int16

	if g.LastHand.BidMade {
		delta[bidTeam] = raw[bidTeam]
		if g.HighestBid == ActionBid30 {
			delta[bidTeam] = 2 * bidValue // thirty for sixty
		}
		// A defending side at or past the pegging threshold scores nothing
		// against a made bid.
		if g.Points[defTeam] < g.Rules.pegThreshold() {
			delta[defTeam] = raw[defTeam]
		}
	} else {
		delta[bidTeam] = -bidValue
		delta[defTeam] = raw[defTeam]
	}

	g.Points[0] += delta[0]
	g.Points[1] += delta[1]
	g.LastHand.Delta = delta
}
