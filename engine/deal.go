package engine

import "fmt"

// buildDeck fills the deck with the 52-card universe in canonical order.
func (g *GameState) buildDeck() {
	idx := 0
	for suit := uint8(0); suit < 4; suit++ {
		for rank := RankTwo; rank <= RankAce; rank++ {
			g.Deck[idx] = NewCard(suit, rank)
			idx++
		}
	}
	g.DeckLen = DeckSize
}

// shuffleDeck applies a Fisher-Yates shuffle to the remaining deck.
func (g *GameState) shuffleDeck() {
	for i := int(g.DeckLen) - 1; i > 0; i-- {
		j := int(g.randN(uint64(i + 1)))
		g.Deck[i], g.Deck[j] = g.Deck[j], g.Deck[i]
	}
}

// drawOne pops one card from the remaining deck. ok is false when the deck
// is exhausted; replenishment treats that as "stop early", not as fatal.
func (g *GameState) drawOne() (Card, bool) {
	if g.DeckLen == 0 {
		return EmptyCard, false
	}
	g.DeckLen--
	return g.Deck[g.DeckLen], true
}

// deal distributes cardsPerSeat cards clockwise one at a time (round-robin,
// not block-deal) and then sets aside the 3-card kitty. The capacity contract
// is checked even though the standard configuration (4×5+3 = 23 of 52) can
// never violate it.
func (g *GameState) deal(cardsPerSeat uint8) error {
	need := NumSeats*int(cardsPerSeat) + KittySize
	if need > int(g.DeckLen) {
		return fmt.Errorf("%w: deal needs %d cards, deck has %d", ErrEmptyDeck, need, g.DeckLen)
	}
	for c := uint8(0); c < cardsPerSeat; c++ {
		for s := uint8(0); s < NumSeats; s++ {
			card, _ := g.drawOne()
			g.Seats[s].append(card)
		}
	}
	for k := 0; k < KittySize; k++ {
		card, _ := g.drawOne()
		g.Kitty[k] = card
	}
	g.KittyLen = KittySize
	return nil
}

// dealHand rebuilds and shuffles a full deck, then deals a fresh hand.
func (g *GameState) dealHand() {
	g.buildDeck()
	g.shuffleDeck()
	if err := g.deal(CardsPerSeat); err != nil {
		// Unreachable with a 52-card deck; a failure here is a defect.
		panic(err)
	}
}

// transferKitty appends all kitty cards to the given seat's hand and empties
// the kitty. The KittyTaken flag makes the transfer one-shot per hand:
// a second call is a no-op rather than a card-duplicating bug.
func (g *GameState) transferKitty(seat uint8) {
	if g.KittyTaken {
		return
	}
	for k := uint8(0); k < g.KittyLen; k++ {
		g.Seats[seat].append(g.Kitty[k])
		g.Kitty[k] = EmptyCard
	}
	g.KittyLen = 0
	g.KittyTaken = true
}

// replenishHands tops every hand back up to 5 cards from the remaining deck
// after the discard phase. Hands are dealt short if the deck runs out.
func (g *GameState) replenishHands() {
	for s := uint8(0); s < NumSeats; s++ {
		for g.Seats[s].HandLen < CardsPerSeat {
			card, ok := g.drawOne()
			if !ok {
				return
			}
			g.Seats[s].append(card)
		}
	}
}
