package engine

import "errors"

// Error taxonomy. ErrIllegalAction is always the caller's fault and is
// surfaced before any state mutation. ErrEmptyDeck marks a draw demand the
// deck cannot cover; replenishment recovers from it by dealing hands short,
// the deal contract does not. ErrInconsistentState marks invariant
// violations that should be unreachable given correct ApplyAction logic.
var (
	ErrIllegalAction     = errors.New("illegal action")
	ErrEmptyDeck         = errors.New("deck exhausted")
	ErrInconsistentState = errors.New("inconsistent game state")
)
