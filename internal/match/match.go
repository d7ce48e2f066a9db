// Package match hosts the rules engine for a single table: it owns the
// authoritative GameState, maps engine seats to named players, and turns
// state transitions into a typed event stream for logging or broadcast.
package match

import (
	"fmt"

	"github.com/google/uuid"

	engine "github.com/jitousig/fortyfives-ai/engine"
)

// EventType identifies a table event emitted by a Match.
type EventType string

const (
	EventAuctionPass   EventType = "auction_pass"
	EventAuctionBid    EventType = "auction_bid"
	EventAuctionHold   EventType = "auction_hold"
	EventTrumpDeclared EventType = "trump_declared"
	EventCardDiscarded EventType = "card_discarded"
	EventDiscardDone   EventType = "discard_done"
	EventCardPlayed    EventType = "card_played"
	EventTrickWon      EventType = "trick_won"
	EventHandSettled   EventType = "hand_settled"
	EventGameEnd       EventType = "game_end"
)

// Event carries one table occurrence. Card and Suit are render strings
// ("5H", "Diamonds"); numeric fields are filled per type.
type Event struct {
	Type   EventType
	Seat   uint8
	Player string
	Card   string
	Suit   string
	Bid    int16

	Winner     uint8  // EventTrickWon
	HandNumber uint16 // EventHandSettled

	Result *engine.HandResult            // EventHandSettled
	Scores [engine.NumPartnerships]int16 // EventHandSettled, EventGameEnd
}

// Player names one seat at the table.
type Player struct {
	ID   uuid.UUID
	Name string
}

// Policy picks one action from the legal set for the acting seat.
type Policy func(g *engine.GameState, legal []uint8) uint8

// Match wraps one authoritative game and its seat roster.
type Match struct {
	ID      uuid.UUID
	Game    engine.GameState
	Players [engine.NumSeats]Player

	// OnEvent receives every table event; nil disables emission.
	OnEvent func(Event)
}

// New creates a match with a fresh game and generated player identities.
func New(seed uint64, rules engine.HouseRules) *Match {
	m := &Match{
		ID:   uuid.New(),
		Game: engine.NewGame(seed, rules),
	}
	for s := uint8(0); s < engine.NumSeats; s++ {
		m.Players[s] = Player{
			ID:   uuid.New(),
			Name: fmt.Sprintf("seat-%d", s),
		}
	}
	return m
}

func (m *Match) emit(e Event) {
	if m.OnEvent != nil {
		m.OnEvent(e)
	}
}

// Step validates and applies one action, emitting the events it causes.
func (m *Match) Step(action uint8) error {
	g := &m.Game

	phase := g.Phase
	seat := g.CurrentSeat
	name := m.Players[seat].Name
	trickCount := g.TrickCount
	handNumber := g.HandNumber

	// Capture the card a positional action refers to before the hand shifts.
	var card engine.Card = engine.EmptyCard
	if pos, ok := engine.ActionIsCard(action); ok && pos < g.Seats[seat].HandLen {
		card = g.Seats[seat].Hand[pos]
	}

	if err := g.ApplyAction(action); err != nil {
		return err
	}

	switch phase {
	case engine.PhaseAuction:
		switch {
		case action == engine.ActionPass:
			m.emit(Event{Type: EventAuctionPass, Seat: seat, Player: name})
		case action == engine.ActionHold:
			m.emit(Event{Type: EventAuctionHold, Seat: seat, Player: name, Bid: engine.BidValue(g.HighestBid)})
		default:
			m.emit(Event{Type: EventAuctionBid, Seat: seat, Player: name, Bid: engine.BidValue(action)})
		}
	case engine.PhaseDeclaration:
		suit, _ := engine.ActionIsDeclare(action)
		m.emit(Event{Type: EventTrumpDeclared, Seat: seat, Player: name, Suit: engine.SuitName(suit)})
	case engine.PhaseDiscard:
		if action == engine.ActionDiscardDone {
			m.emit(Event{Type: EventDiscardDone, Seat: seat, Player: name})
		} else {
			m.emit(Event{Type: EventCardDiscarded, Seat: seat, Player: name, Card: card.String()})
		}
	case engine.PhaseGameplay:
		if card != engine.EmptyCard {
			m.emit(Event{Type: EventCardPlayed, Seat: seat, Player: name, Card: card.String()})
		}
		if g.TrickCount > trickCount {
			winner := g.TrickWinners[trickCount]
			m.emit(Event{Type: EventTrickWon, Seat: winner, Player: m.Players[winner].Name, Winner: winner})
		}
	}

	// Settlement only ever happens at the end of play. An all-pass auction
	// also re-deals (hand number advances) but settles nothing, and LastHand
	// still carries the previous hand's result — so the phase gate matters.
	if phase == engine.PhaseGameplay && (g.HandNumber != handNumber || g.IsTerminal()) {
		result := g.LastHand
		m.emit(Event{
			Type:       EventHandSettled,
			HandNumber: handNumber,
			Result:     &result,
			Scores:     g.Points,
		})
	}
	if g.IsTerminal() {
		m.emit(Event{Type: EventGameEnd, Scores: g.Points})
	}
	return nil
}

// Run drives the match to completion with one policy per seat, bounded by
// maxSteps. It returns the number of actions applied.
func (m *Match) Run(policies [engine.NumSeats]Policy, maxSteps int) (int, error) {
	for step := 0; step < maxSteps; step++ {
		if m.Game.IsTerminal() {
			return step, nil
		}
		seat := m.Game.ActingSeat()
		legal := m.Game.LegalActionsList()
		if len(legal) == 0 {
			return step, fmt.Errorf("no legal actions at seat %d: %w", seat, engine.ErrInconsistentState)
		}
		action := policies[seat](&m.Game, legal)
		if err := m.Step(action); err != nil {
			return step, fmt.Errorf("seat %d chose action %d: %w", seat, action, err)
		}
	}
	return maxSteps, fmt.Errorf("match exceeded %d steps: %w", maxSteps, engine.ErrInconsistentState)
}

// LastLegal is a simple deterministic baseline: the highest-indexed legal
// action. It bids whenever it may (Pass is index 0), so matches always
// progress instead of re-dealing on four passes.
func LastLegal(_ *engine.GameState, legal []uint8) uint8 { return legal[len(legal)-1] }
