package engine

// Card strength in Forty-Fives depends on the declared trump suit, and the
// in-suit rank order is unlike any conventional game:
//
//	Trump:          5, J, A♥, A, K, Q, then the low ranks — red trump suits
//	                run 10 down to 2, black trump suits run 2 down to 10
//	                (the historical "high in red, low in black" rule).
//	Red off-suit:   K, Q, J, 10, 9, 8, 7, 6, 4, 3, 2, A
//	Black off-suit: K, Q, J, A, 2, 3, 4, 5, 6, 7, 8, 9, 10
//
// The Ace of Hearts is a permanent trump: whatever suit is declared, it ranks
// between the trump Jack and the trump Ace.
//
// Strengths are banded integers (trump ≥ 989, red off-suit 889–900, black
// off-suit 788–800) so any trump outranks any non-trump; only the relative
// order is contractual.

// IsTrump reports whether the card counts as trump under the declared suit.
// The Ace of Hearts is always trump.
func IsTrump(c Card, trump uint8) bool {
	return c.Suit() == trump || (c.Rank() == RankAce && c.Suit() == SuitHearts)
}

// isHighTrump reports whether the card is one of the three unconditionally
// strongest trumps: the trump 5, the trump Jack, or the Ace of Hearts.
func isHighTrump(c Card, trump uint8) bool {
	if c.Rank() == RankAce && c.Suit() == SuitHearts {
		return true
	}
	return c.Suit() == trump && (c.Rank() == RankFive || c.Rank() == RankJack)
}

// Strength returns the total-order strength of a card under the given trump
// suit. Higher is stronger. Cards of different non-trump suits are only
// comparable through the trick resolver's lead-suit logic.
func Strength(c Card, trump uint8) int16 {
	rank, suit := c.Rank(), c.Suit()

	// The Ace of Hearts sits between the trump Jack and the trump Ace.
	if rank == RankAce && suit == SuitHearts {
		return 1001
	}

	if suit == trump {
		switch rank {
		case RankFive:
			return 1003
		case RankJack:
			return 1002
		case RankAce:
			return 1000
		case RankKing:
			return 999
		case RankQueen:
			return 998
		}
		if IsRedSuit(suit) {
			// Red trump remainder, strongest first: 10, 9, 8, 7, 6, 4, 3, 2.
			switch rank {
			case RankTen:
				return 997
			case RankNine:
				return 996
			case RankEight:
				return 995
			case RankSeven:
				return 994
			case RankSix:
				return 993
			case RankFour:
				return 992
			case RankThree:
				return 991
			case RankTwo:
				return 990
			}
			return 989
		}
		// Black trump remainder, strongest first: 2, 3, 4, 6, 7, 8, 9, 10.
		switch rank {
		case RankTwo:
			return 997
		case RankThree:
			return 996
		case RankFour:
			return 995
		case RankSix:
			return 994
		case RankSeven:
			return 993
		case RankEight:
			return 992
		case RankNine:
			return 991
		case RankTen:
			return 990
		}
		return 989
	}

	if IsRedSuit(suit) {
		// Red off-suit: K, Q, J, 10, 9, 8, 7, 6, 4, 3, 2, A (ace weakest).
		switch rank {
		case RankKing:
			return 900
		case RankQueen:
			return 899
		case RankJack:
			return 898
		case RankTen:
			return 897
		case RankNine:
			return 896
		case RankEight:
			return 895
		case RankSeven:
			return 894
		case RankSix:
			return 893
		case RankFour:
			return 892
		case RankThree:
			return 891
		case RankTwo:
			return 890
		case RankAce:
			return 889
		}
		return 0
	}

	// Black off-suit: K, Q, J, A, 2, 3, 4, 5, 6, 7, 8, 9, 10 (ten weakest).
	// The 5 appears here only for a non-trump black suit.
	switch rank {
	case RankKing:
		return 800
	case RankQueen:
		return 799
	case RankJack:
		return 798
	case RankAce:
		return 797
	case RankTwo:
		return 796
	case RankThree:
		return 795
	case RankFour:
		return 794
	case RankFive:
		return 793
	case RankSix:
		return 792
	case RankSeven:
		return 791
	case RankEight:
		return 790
	case RankNine:
		return 789
	case RankTen:
		return 788
	}
	return 0
}

// winsOver reports whether candidate beats best given the trick's lead suit
// and the declared trump. Rules, in order: trump beats non-trump; two trumps
// compare by Strength; same suit compares by Strength; lead suit beats
// off-suit; otherwise the earlier card stands.
func winsOver(candidate, best Card, leadSuit int8, trump uint8) bool {
	if candidate == EmptyCard {
		return false
	}
	if best == EmptyCard {
		return true
	}

	candTrump := IsTrump(candidate, trump)
	bestTrump := IsTrump(best, trump)

	switch {
	case candTrump && !bestTrump:
		return true
	case !candTrump && bestTrump:
		return false
	case candTrump && bestTrump:
		return Strength(candidate, trump) > Strength(best, trump)
	case candidate.Suit() == best.Suit():
		return Strength(candidate, trump) > Strength(best, trump)
	case int8(candidate.Suit()) == leadSuit:
		return true
	default:
		return false
	}
}

// trickWinner resolves the current (full or partial) trick by pairwise
// reduction from the leader's card. Ties are impossible: no two cards share
// rank and suit.
func (g *GameState) trickWinner() uint8 {
	trump := uint8(g.TrumpSuit)

	// Start from the leader; fall back to the first occupied slot so a
	// partial trick still resolves deterministically.
	leader := g.TrickLeader
	if g.Trick[leader] == EmptyCard {
		found := false
		for s := uint8(0); s < NumSeats; s++ {
			if g.Trick[s] != EmptyCard {
				leader = s
				found = true
				break
			}
		}
		if !found {
			return g.TrickLeader
		}
	}

	leadSuit := int8(g.Trick[leader].Suit())
	winner := leader
	best := g.Trick[leader]

	for off := uint8(1); off < NumSeats; off++ {
		s := (leader + off) % NumSeats
		c := g.Trick[s]
		if c == EmptyCard {
			continue
		}
		if winsOver(c, best, leadSuit, trump) {
			winner = s
			best = c
		}
	}
	return winner
}
