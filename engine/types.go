package engine

// Suit constants — packed into upper 4 bits of Card.
// The order matches the trump declaration action encoding (Declare(suit)).
const (
	SuitSpades   uint8 = 0
	SuitHearts   uint8 = 1
	SuitDiamonds uint8 = 2
	SuitClubs    uint8 = 3
)

// Rank constants — packed into lower 4 bits of Card, low to high.
const (
	RankTwo uint8 = iota
	RankThree
	RankFour
	RankFive
	RankSix
	RankSeven
	RankEight
	RankNine
	RankTen
	RankJack
	RankQueen
	RankKing
	RankAce
)

// Card is a packed uint8: upper 4 bits = suit, lower 4 bits = rank.
type Card uint8

// EmptyCard represents the absence of a card (an unplayed trick slot).
const EmptyCard Card = 0xFF

// NewCard constructs a Card from suit and rank.
func NewCard(suit, rank uint8) Card {
	return Card((suit << 4) | (rank & 0x0F))
}

// Suit returns the suit bits (upper 4).
func (c Card) Suit() uint8 { return uint8(c) >> 4 }

// Rank returns the rank bits (lower 4).
func (c Card) Rank() uint8 { return uint8(c) & 0x0F }

// ID returns a dense card index in [0, 52): rank + 13*suit.
// Used by the observation encoder for one-hot card features.
func (c Card) ID() uint8 { return c.Rank() + 13*c.Suit() }

// IsRedSuit reports whether the suit is Hearts or Diamonds.
func IsRedSuit(suit uint8) bool {
	return suit == SuitHearts || suit == SuitDiamonds
}

var rankStrings = [13]string{"2", "3", "4", "5", "6", "7", "8", "9", "T", "J", "Q", "K", "A"}
var suitStrings = [4]string{"S", "H", "D", "C"}

// String renders the card as rank+suit, e.g. "5H", "AS", "TD".
func (c Card) String() string {
	if c == EmptyCard {
		return "--"
	}
	return rankStrings[c.Rank()] + suitStrings[c.Suit()]
}

// SuitName returns the full suit name for a suit constant.
func SuitName(suit uint8) string {
	return [4]string{"Spades", "Hearts", "Diamonds", "Clubs"}[suit]
}

// Phase is the top-level state-machine discriminator. Exactly one phase is
// active at a time. PhaseDeal and PhaseScoring are transient: dealing and
// scoring run to completion inside a single ApplyAction call, so the only
// phases that wait for an action are Auction through Gameplay. PhaseScoring
// is observable only on a terminal state (the game ended at settlement).
type Phase uint8

const (
	PhaseDeal Phase = iota
	PhaseAuction
	PhaseDeclaration
	PhaseDiscard
	PhaseGameplay
	PhaseScoring

	NumPhases = 6
)

// ---------------------------------------------------------------------------
// Action index constants
// ---------------------------------------------------------------------------
//
// The engine exposes a flat 18-action space:
//
//	0      Pass
//	1–3    Bid 20 / 25 / 30 (bid codes — strictly ordered)
//	4      Hold (dealer adopts the standing bid)
//	5–8    Declare(suit), Spades..Clubs
//	9–16   Card(pos), position 0..7 in the acting seat's hand;
//	       a discard during the Discard phase, a play during Gameplay
//	17     DiscardDone
//	Total: 18

const (
	ActionPass  uint8 = 0
	ActionBid20 uint8 = 1
	ActionBid25 uint8 = 2
	ActionBid30 uint8 = 3
	ActionHold  uint8 = 4

	ActionBaseDeclare uint8 = 5 // Declare(suit), 4 entries
	ActionBaseCard    uint8 = 9 // Card(pos), 8 entries
	ActionDiscardDone uint8 = 17

	NumActions uint8 = 18
)

// BidNone marks a seat (or the auction) as not having bid yet.
const BidNone uint8 = 0

// BidValue returns the point value of a bid code, or 0 for BidNone.
func BidValue(code uint8) int16 {
	switch code {
	case ActionBid20:
		return 20
	case ActionBid25:
		return 25
	case ActionBid30:
		return 30
	}
	return 0
}

// EncodeDeclare returns the action index declaring the given suit as trump.
func EncodeDeclare(suit uint8) uint8 { return ActionBaseDeclare + suit }

// EncodeCard returns the action index for the card at hand position pos.
func EncodeCard(pos uint8) uint8 { return ActionBaseCard + pos }

// ActionIsBid reports whether idx encodes a raising bid (not Pass or Hold).
func ActionIsBid(idx uint8) bool {
	return idx >= ActionBid20 && idx <= ActionBid30
}

// ActionIsDeclare returns the declared suit if idx encodes a Declare action.
func ActionIsDeclare(idx uint8) (suit uint8, ok bool) {
	if idx >= ActionBaseDeclare && idx < ActionBaseCard {
		return idx - ActionBaseDeclare, true
	}
	return 0, false
}

// ActionIsCard returns the hand position if idx encodes a Card action.
func ActionIsCard(idx uint8) (pos uint8, ok bool) {
	if idx >= ActionBaseCard && idx < ActionDiscardDone {
		return idx - ActionBaseCard, true
	}
	return 0, false
}
