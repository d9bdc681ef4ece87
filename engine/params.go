package engine

// Params holds the tunable search and evaluation constants.
type Params struct {
	// Depth is the fixed search depth in plies.
	Depth int
	// CheckmateScore is the magnitude reported for a mated side.
	CheckmateScore float64
	// PositionalWeight scales the piece-square bonus before it is added to material.
	PositionalWeight float64
}

// DefaultParams returns depth 2, a checkmate score of 1000 and a positional weight of 0.1.
func DefaultParams() Params {
	return Params{
		Depth:            2,
		CheckmateScore:   1000,
		PositionalWeight: 0.1,
	}
}
