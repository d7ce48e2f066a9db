// Package engine implements the rules of Forty-Fives, the Nova Scotia
// partnership variant of the Auction Forty-Fives card game family.
//
// The package is a self-contained, allocation-free rules engine: an external
// driver (random agent, search algorithm, RL environment) holds one GameState
// value, asks it for the legal-action set, and applies one action at a time.
// GameState is a flat value type so drivers can copy it with = for undo or
// tree search.
package engine

const (
	NumSeats        = 4 // fixed partnership structure: 0&2 vs 1&3
	NumPartnerships = 2
	MaxHandSize     = 8 // 5 dealt + 3 kitty before the winner discards
	DeckSize        = 52
	KittySize       = 3
	CardsPerSeat    = 5
	TricksPerHand   = 5
)

// NoSeat and NoSuit are sentinels for "not yet determined" seat/suit fields.
const (
	NoSeat int8 = -1
	NoSuit int8 = -1
)

// SeatState holds one seat's hand and auction standing.
type SeatState struct {
	Hand    [MaxHandSize]Card
	HandLen uint8
	Bid     uint8 // bid code (ActionBid20..ActionBid30); BidNone until the seat bids
	Passed  bool  // a passed seat is permanently out of this hand's auction
}

// removeAt removes and returns the card at hand position pos,
// shifting the remainder left so hand order is preserved.
func (s *SeatState) removeAt(pos uint8) Card {
	c := s.Hand[pos]
	for i := pos; i+1 < s.HandLen; i++ {
		s.Hand[i] = s.Hand[i+1]
	}
	s.HandLen--
	s.Hand[s.HandLen] = EmptyCard
	return c
}

// append adds a card to the end of the hand.
func (s *SeatState) append(c Card) {
	s.Hand[s.HandLen] = c
	s.HandLen++
}

// HandResult records the outcome of the most recently settled hand.
// Drivers use it for reporting; the engine itself only reads Points.
type HandResult struct {
	Played     bool
	BidderSeat int8
	BidCode    uint8
	BidMade    bool
	Raw        [NumPartnerships]int16 // raw hand points (tricks + high-trump bonus)
	Delta      [NumPartnerships]int16 // game points actually banked
}

// GameState holds the complete, self-contained state of a Forty-Fives game.
// It is a flat value type (no pointers, no slices, no maps): safe to copy
// with =, and every reachable card lives in exactly one of Deck, Kitty,
// Discards, a seat's Hand, the current Trick, or TrickHistory.
type GameState struct {
	Seats [NumSeats]SeatState

	Deck       [DeckSize]Card
	DeckLen    uint8
	Kitty      [KittySize]Card
	KittyLen   uint8
	Discards   [DeckSize]Card
	DiscardLen uint8

	Trick        [NumSeats]Card // EmptyCard = seat has not played this trick
	LeadSuit     int8           // NoSuit between tricks
	TrickLeader  uint8
	TrickCount   uint8
	TricksWon    [NumSeats]uint8
	TrickHistory [TricksPerHand][NumSeats]Card
	TrickWinners [TricksPerHand]uint8

	Phase         Phase
	DealerSeat    uint8
	CurrentSeat   uint8
	HighestBid    uint8 // bid code; BidNone while no bid stands
	HighestBidder int8  // NoSeat until someone bids
	TrumpSuit     int8  // NoSuit until declared
	KittyTaken    bool  // one-shot guard: the kitty transfers exactly once per hand

	HighTrump     Card // highest trump-equivalent card played so far this hand
	HighTrumpSeat int8

	HandPoints [NumPartnerships]int16 // raw points of the hand most recently scored
	Points     [NumPartnerships]int16 // cumulative partnership game points
	LastHand   HandResult

	HandNumber uint16
	Flags      uint16
	RNG        uint64
	Rules      HouseRules
}

// ---------------------------------------------------------------------------
// Flags bitfield
// ---------------------------------------------------------------------------

const (
	FlagGameOver uint16 = 1 << 0
)

// IsTerminal returns true when a partnership has reached the target score.
func (g *GameState) IsTerminal() bool { return g.Flags&FlagGameOver != 0 }

// ---------------------------------------------------------------------------
// xorshift64 RNG — inline, no interface
// ---------------------------------------------------------------------------

func (g *GameState) nextRand() uint64 {
	x := g.RNG
	x ^= x << 13
	x ^= x >> 7
	x ^= x << 17
	g.RNG = x
	return x
}

// randN returns a random number in [0, n).
func (g *GameState) randN(n uint64) uint64 {
	return g.nextRand() % n
}

// ---------------------------------------------------------------------------
// NewGame
// ---------------------------------------------------------------------------

// NewGame initializes a game with the given seed and rules, deals the first
// hand, and opens the auction at the seat left of the dealer (seat 0 deals
// first; the dealer rotates each subsequent hand).
func NewGame(seed uint64, rules HouseRules) GameState {
	var g GameState
	g.RNG = seed
	if g.RNG == 0 {
		g.RNG = 1 // xorshift can't start at 0
	}
	g.Rules = rules
	g.DealerSeat = 0
	g.resetHandState()
	g.dealHand()
	g.Phase = PhaseAuction
	g.CurrentSeat = g.auctionOpener()
	return g
}

// ---------------------------------------------------------------------------
// Query methods
// ---------------------------------------------------------------------------

// ActingSeat returns the seat that must act next.
func (g *GameState) ActingSeat() uint8 { return g.CurrentSeat }

// Partnership returns the partnership index (0 = seats 0&2, 1 = seats 1&3).
func Partnership(seat uint8) uint8 { return seat % 2 }

// PartnershipScores returns the cumulative game points for the 0&2 and 1&3
// partnerships. Both seats of a partnership always share one total.
func (g *GameState) PartnershipScores() (int16, int16) {
	return g.Points[0], g.Points[1]
}

// nextSeat returns the seat after current in seating order (wrapping).
func (g *GameState) nextSeat(current uint8) uint8 {
	return (current + 1) % NumSeats
}

// auctionOpener returns the seat left of the dealer, which opens the auction
// and also starts (and bounds) the discard rotation.
func (g *GameState) auctionOpener() uint8 {
	return g.nextSeat(g.DealerSeat)
}

// TrickFull reports whether all four seats have played into the current trick.
func (g *GameState) TrickFull() bool {
	for s := uint8(0); s < NumSeats; s++ {
		if g.Trick[s] == EmptyCard {
			return false
		}
	}
	return true
}

// allHandsEmpty reports whether every seat is out of cards. Used as a
// defensive hand-end condition alongside the five-trick counter.
func (g *GameState) allHandsEmpty() bool {
	for s := uint8(0); s < NumSeats; s++ {
		if g.Seats[s].HandLen > 0 {
			return false
		}
	}
	return true
}

// resetHandState clears every per-hand field ahead of a fresh deal.
// Cross-hand state (Points, DealerSeat, HandNumber, RNG, Rules) is untouched.
func (g *GameState) resetHandState() {
	for s := uint8(0); s < NumSeats; s++ {
		g.Seats[s] = SeatState{}
		g.Trick[s] = EmptyCard
		g.TricksWon[s] = 0
	}
	for t := uint8(0); t < TricksPerHand; t++ {
		for s := uint8(0); s < NumSeats; s++ {
			g.TrickHistory[t][s] = EmptyCard
		}
		g.TrickWinners[t] = 0
	}
	g.DeckLen = 0
	g.KittyLen = 0
	g.DiscardLen = 0
	g.LeadSuit = NoSuit
	g.TrickLeader = 0
	g.TrickCount = 0
	g.HighestBid = BidNone
	g.HighestBidder = NoSeat
	g.TrumpSuit = NoSuit
	g.KittyTaken = false
	g.HighTrump = EmptyCard
	g.HighTrumpSeat = NoSeat
	g.HandPoints = [NumPartnerships]int16{}
}

// ---------------------------------------------------------------------------
// Snapshot Undo (Save / Restore)
// ---------------------------------------------------------------------------

// Snapshot is a complete value-copy of GameState for undo support.
// No heap allocation, saving and restoring are plain struct copies.
type Snapshot GameState

// Save returns a snapshot of the current game state.
func (g *GameState) Save() Snapshot { return Snapshot(*g) }

// Restore replaces the game state with the given snapshot.
func (g *GameState) Restore(s Snapshot) { *g = GameState(s) }
