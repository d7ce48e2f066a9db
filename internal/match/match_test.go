package match

import (
	"math/rand/v2"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	engine "github.com/jitousig/fortyfives-ai/engine"
)

func randomPolicy(rng *rand.Rand) Policy {
	return func(_ *engine.GameState, legal []uint8) uint8 {
		return legal[rng.IntN(len(legal))]
	}
}

func samePolicy(p Policy) [engine.NumSeats]Policy {
	return [engine.NumSeats]Policy{p, p, p, p}
}

func TestNewMatchRoster(t *testing.T) {
	m := New(42, engine.DefaultHouseRules())

	assert.NotEqual(t, uuid.Nil, m.ID, "match needs an identity")
	seen := map[string]bool{}
	for _, p := range m.Players {
		assert.False(t, seen[p.ID.String()], "player ids must be unique")
		seen[p.ID.String()] = true
		assert.NotEmpty(t, p.Name)
	}
	assert.Equal(t, engine.PhaseAuction, m.Game.Phase)
}

func TestStepRejectsIllegalAction(t *testing.T) {
	m := New(42, engine.DefaultHouseRules())

	var events []Event
	m.OnEvent = func(e Event) { events = append(events, e) }

	err := m.Step(engine.ActionHold)
	require.ErrorIs(t, err, engine.ErrIllegalAction)
	assert.Empty(t, events, "a rejected action must not emit")
}

func TestStepEmitsAuctionEvents(t *testing.T) {
	m := New(42, engine.DefaultHouseRules())

	var events []Event
	m.OnEvent = func(e Event) { events = append(events, e) }

	require.NoError(t, m.Step(engine.ActionBid25))
	require.NoError(t, m.Step(engine.ActionPass))

	require.Len(t, events, 2)
	assert.Equal(t, EventAuctionBid, events[0].Type)
	assert.Equal(t, int16(25), events[0].Bid)
	assert.Equal(t, uint8(1), events[0].Seat)
	assert.Equal(t, EventAuctionPass, events[1].Type)
}

func TestRunToCompletion(t *testing.T) {
	rules := engine.DefaultHouseRules()
	rules.TargetScore = 40 // keep the playout short

	m := New(7, rules)
	rng := rand.New(rand.NewPCG(7, 0))

	var handsSettled, gamesEnded int
	var finalScores [engine.NumPartnerships]int16
	m.OnEvent = func(e Event) {
		switch e.Type {
		case EventHandSettled:
			handsSettled++
			require.NotNil(t, e.Result)
			assert.True(t, e.Result.Played)
		case EventGameEnd:
			gamesEnded++
			finalScores = e.Scores
		}
	}

	steps, err := m.Run(samePolicy(randomPolicy(rng)), 1<<20)
	require.NoError(t, err)
	assert.Positive(t, steps)
	assert.True(t, m.Game.IsTerminal())
	assert.Equal(t, 1, gamesEnded)
	assert.Positive(t, handsSettled)
	assert.True(t, finalScores[0] >= 40 || finalScores[1] >= 40)
}

func TestRunLastLegalDeterministic(t *testing.T) {
	rules := engine.DefaultHouseRules()
	rules.TargetScore = 40

	a := New(11, rules)
	b := New(11, rules)
	_, errA := a.Run(samePolicy(LastLegal), 1<<20)
	_, errB := b.Run(samePolicy(LastLegal), 1<<20)
	require.NoError(t, errA)
	require.NoError(t, errB)
	assert.Equal(t, a.Game, b.Game, "same seed and policy should replay identically")
}

func TestAllPassRedealEmitsNoSettlement(t *testing.T) {
	m := New(11, engine.DefaultHouseRules())

	// Play the first hand through to a real settlement.
	for m.Game.HandNumber == 0 {
		require.NoError(t, m.Step(LastLegal(&m.Game, m.Game.LegalActionsList())))
	}
	require.Equal(t, engine.PhaseAuction, m.Game.Phase)
	require.True(t, m.Game.LastHand.Played, "the settled result stays recorded")

	var settled []Event
	m.OnEvent = func(e Event) {
		if e.Type == EventHandSettled {
			settled = append(settled, e)
		}
	}

	// Four passes throw the next hand in: a re-deal, not a settlement.
	hand := m.Game.HandNumber
	for i := 0; i < engine.NumSeats; i++ {
		require.NoError(t, m.Step(engine.ActionPass))
	}
	assert.Equal(t, hand+1, m.Game.HandNumber, "four passes should re-deal")
	assert.Empty(t, settled, "a thrown-in hand must not re-emit the previous result")
}

func TestCardPlayedEventsCarryCards(t *testing.T) {
	m := New(3, engine.DefaultHouseRules())

	var plays []Event
	m.OnEvent = func(e Event) {
		if e.Type == EventCardPlayed {
			plays = append(plays, e)
		}
	}

	// Drive one hand through with the deterministic policy.
	start := m.Game.HandNumber
	for m.Game.HandNumber == start && !m.Game.IsTerminal() {
		require.NoError(t, m.Step(LastLegal(&m.Game, m.Game.LegalActionsList())))
	}

	require.Len(t, plays, engine.NumSeats*engine.TricksPerHand)
	for _, e := range plays {
		assert.NotEqual(t, "--", e.Card, "a play event must name its card")
	}
}
