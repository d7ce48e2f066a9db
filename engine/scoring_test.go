package engine

import "testing"

// makeSettled builds a played-out hand and runs scoring and settlement:
// bidder declared bidCode, each seat took tricksWon[seat] tricks, and
// highTrumpSeat played the hand's best trump. points are the partnership
// totals going in.
func makeSettled(bidder int8, bidCode uint8, tricksWon [NumSeats]uint8,
	highTrumpSeat int8, points [NumPartnerships]int16) GameState {

	g := NewGame(1, DefaultHouseRules())
	g.HighestBidder = bidder
	g.HighestBid = bidCode
	g.TricksWon = tricksWon
	g.HighTrumpSeat = highTrumpSeat
	g.Points = points
	g.scoreHand()
	g.settleHand()
	return g
}

// TestScoreMadeBid: seats 0&2 take three tricks plus the high trump on their
// own 20-bid — both sides bank their raw points.
func TestScoreMadeBid(t *testing.T) {
	g := makeSettled(0, ActionBid20, [NumSeats]uint8{2, 1, 1, 1}, 0,
		[NumPartnerships]int16{})

	if g.HandPoints != [NumPartnerships]int16{20, 10} {
		t.Errorf("raw points %v, want [20 10]", g.HandPoints)
	}
	if !g.LastHand.BidMade {
		t.Errorf("a 20-bid with 20 raw points is made")
	}
	if g.Points != [NumPartnerships]int16{20, 10} {
		t.Errorf("banked %v, want [20 10]", g.Points)
	}
}

// TestScoreMadeBidExactly: taking exactly the bid value still makes it.
func TestScoreMadeBidExactly(t *testing.T) {
	g := makeSettled(1, ActionBid20, [NumSeats]uint8{1, 2, 1, 1}, 3,
		[NumPartnerships]int16{})

	if g.HandPoints != [NumPartnerships]int16{10, 20} {
		t.Errorf("raw points %v, want [10 20]", g.HandPoints)
	}
	if !g.LastHand.BidMade {
		t.Errorf("meeting the bid exactly should make it")
	}
	if g.Points != [NumPartnerships]int16{10, 20} {
		t.Errorf("banked %v, want [10 20]", g.Points)
	}
}

// TestScoreFailedBid: a failed 30-bid costs the full 30; the defenders keep
// their raw points.
func TestScoreFailedBid(t *testing.T) {
	g := makeSettled(2, ActionBid30, [NumSeats]uint8{1, 3, 1, 0}, 1,
		[NumPartnerships]int16{})

	if g.HandPoints != [NumPartnerships]int16{10, 20} {
		t.Errorf("raw points %v, want [10 20]", g.HandPoints)
	}
	if g.LastHand.BidMade {
		t.Errorf("10 raw points do not make a 30-bid")
	}
	if g.Points != [NumPartnerships]int16{-30, 20} {
		t.Errorf("banked %v, want [-30 20]", g.Points)
	}
	if g.LastHand.Delta != [NumPartnerships]int16{-30, 20} {
		t.Errorf("recorded delta %v, want [-30 20]", g.LastHand.Delta)
	}
}

// TestThirtyForSixty: sweeping every point on a 30-bid banks 60, not 30.
func TestThirtyForSixty(t *testing.T) {
	g := makeSettled(0, ActionBid30, [NumSeats]uint8{3, 0, 2, 0}, 0,
		[NumPartnerships]int16{})

	if g.HandPoints != [NumPartnerships]int16{30, 0} {
		t.Errorf("raw points %v, want [30 0]", g.HandPoints)
	}
	if g.Points != [NumPartnerships]int16{60, 0} {
		t.Errorf("a made 30-bid banks 60, got %v", g.Points)
	}
}

// TestPeggingRestrictionBlocksDefenders: a defending partnership at 100 or
// more scores nothing against a made bid.
func TestPeggingRestrictionBlocksDefenders(t *testing.T) {
	g := makeSettled(1, ActionBid20, [NumSeats]uint8{1, 2, 1, 1}, 3,
		[NumPartnerships]int16{120, 70})

	if g.HandPoints != [NumPartnerships]int16{10, 20} {
		t.Errorf("raw points %v, want [10 20]", g.HandPoints)
	}
	if g.Points != [NumPartnerships]int16{120, 90} {
		t.Errorf("banked %v, want [120 90] (defenders frozen at 120)", g.Points)
	}
}

// TestPeggingRestrictionLiftsOnFailedBid: the same frozen partnership scores
// normally when the bid fails.
func TestPeggingRestrictionLiftsOnFailedBid(t *testing.T) {
	g := makeSettled(1, ActionBid25, [NumSeats]uint8{2, 1, 2, 0}, 0,
		[NumPartnerships]int16{120, 70})

	if g.HandPoints != [NumPartnerships]int16{25, 5} {
		t.Errorf("raw points %v, want [25 5]", g.HandPoints)
	}
	if g.Points != [NumPartnerships]int16{145, 45} {
		t.Errorf("banked %v, want [145 45]", g.Points)
	}
}

// TestPeggingRestrictionNeverBindsBidders: the bidding side scores its made
// bid even from 100 or more. Bidding is the only way forward from there.
func TestPeggingRestrictionNeverBindsBidders(t *testing.T) {
	g := makeSettled(0, ActionBid20, [NumSeats]uint8{2, 1, 2, 0}, 0,
		[NumPartnerships]int16{110, 40})

	if g.Points != [NumPartnerships]int16{135, 45} {
		t.Errorf("banked %v, want [135 45]", g.Points)
	}
}

// TestGameOverAtTarget: settlement that reaches the target score flags the
// game over and freezes the action set.
func TestGameOverAtTarget(t *testing.T) {
	g := NewGame(1, DefaultHouseRules())
	g.Points = [NumPartnerships]int16{105, 90}
	g.HighestBidder = 0
	g.HighestBid = ActionBid20
	g.TricksWon = [NumSeats]uint8{2, 1, 2, 0}
	g.HighTrumpSeat = 0
	g.endHand()

	if g.Points[0] != 130 {
		t.Fatalf("expected 130 points, got %d", g.Points[0])
	}
	if !g.IsTerminal() {
		t.Errorf("reaching the target should end the game")
	}
	if g.LegalActions() != 0 {
		t.Errorf("a finished game offers no actions")
	}
}

// TestHouseRulesDefaults: the zero value plays to 125 with the 100-point
// pegging threshold.
func TestHouseRulesDefaults(t *testing.T) {
	var r HouseRules
	if r.targetScore() != 125 || r.pegThreshold() != 100 {
		t.Errorf("zero rules should read as 125/100, got %d/%d",
			r.targetScore(), r.pegThreshold())
	}
	d := DefaultHouseRules()
	if d.TargetScore != 125 || d.PegThreshold != 100 {
		t.Errorf("defaults should be 125/100, got %d/%d", d.TargetScore, d.PegThreshold)
	}
}
