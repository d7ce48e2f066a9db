package engine

// HouseRules holds configurable game rule settings, fixed at construction.
type HouseRules struct {
	TargetScore  int16 // game ends when a partnership reaches this total; 0 = 125
	PegThreshold int16 // a non-bidding side at/above this only scores when the bid fails; 0 = 100

	// StrictFollowSuit selects the strict-following rule variant: the Ace of
	// Hearts loses its trump equivalence for playability, the renege
	// privilege is withdrawn (a low-trump lead forces the low trumps out),
	// and an off-trump lead must be followed in suit when possible.
	// The standard Nova Scotia rules leave this false.
	StrictFollowSuit bool
}

// DefaultHouseRules returns the standard Nova Scotia Forty-Fives rules.
func DefaultHouseRules() HouseRules {
	return HouseRules{
		TargetScore:  125,
		PegThreshold: 100,
	}
}

// targetScore returns the effective game-over threshold, treating 0 as 125.
func (r *HouseRules) targetScore() int16 {
	if r.TargetScore == 0 {
		return 125
	}
	return r.TargetScore
}

// pegThreshold returns the effective pegging restriction point, treating 0 as 100.
func (r *HouseRules) pegThreshold() int16 {
	if r.PegThreshold == 0 {
		return 100
	}
	return r.PegThreshold
}
