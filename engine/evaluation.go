package engine

import gs "chess-ai/gamestate"

var pieceValue = [...]float64{
	gs.Pawn:   1,
	gs.Knight: 3,
	gs.Bishop: 3,
	gs.Rook:   5,
	gs.Queen:  9,
	gs.King:   0,
}

// Positional bonus tables, indexed [row][col] with row 0 on black's back rank.
var knightScores = [8][8]float64{
	{1, 1, 1, 1, 1, 1, 1, 1},
	{1, 2, 2, 2, 2, 2, 2, 1},
	{1, 2, 3, 3, 3, 3, 2, 1},
	{1, 2, 3, 4, 4, 3, 2, 1},
	{1, 2, 3, 4, 4, 3, 2, 1},
	{1, 2, 3, 3, 3, 3, 2, 1},
	{1, 2, 2, 2, 2, 2, 2, 1},
	{1, 1, 1, 1, 1, 1, 1, 1},
}

var bishopScores = [8][8]float64{
	{4, 3, 2, 1, 1, 2, 3, 4},
	{3, 4, 3, 2, 2, 3, 4, 3},
	{2, 3, 4, 3, 3, 4, 3, 2},
	{1, 2, 3, 4, 4, 3, 2, 1},
	{1, 2, 3, 4, 4, 3, 2, 1},
	{2, 3, 4, 3, 3, 4, 3, 2},
	{3, 4, 3, 2, 2, 3, 4, 3},
	{4, 3, 2, 1, 1, 2, 3, 4},
}

var queenScores = [8][8]float64{
	{1, 1, 1, 3, 3, 1, 1, 1},
	{1, 2, 3, 3, 3, 3, 2, 1},
	{1, 3, 3, 3, 3, 3, 3, 1},
	{3, 3, 3, 3, 3, 3, 3, 3},
	{3, 3, 3, 3, 3, 3, 3, 3},
	{1, 4, 3, 3, 3, 3, 4, 1},
	{1, 2, 3, 3, 3, 3, 2, 1},
	{1, 1, 1, 1, 1, 1, 1, 1},
}

var rookScores = [8][8]float64{
	{4, 4, 4, 4, 4, 4, 4, 4},
	{4, 4, 4, 4, 4, 4, 4, 4},
	{1, 1, 2, 3, 3, 2, 1, 1},
	{1, 2, 3, 3, 3, 3, 2, 1},
	{1, 2, 3, 3, 3, 3, 2, 1},
	{1, 1, 2, 3, 3, 2, 1, 1},
	{4, 4, 4, 4, 4, 4, 4, 4},
	{4, 4, 4, 4, 4, 4, 4, 4},
}

var whitePawnScores = [8][8]float64{
	{8, 8, 8, 8, 8, 8, 8, 8},
	{4, 4, 4, 4, 4, 4, 4, 4},
	{3, 3, 3, 3, 3, 3, 3, 3},
	{3, 3, 3, 4, 4, 3, 3, 3},
	{1, 1, 3, 4, 4, 3, 1, 1},
	{1, 2, 2, 3, 3, 2, 2, 1},
	{0, 0, 0, 0, 0, 0, 0, 0},
	{0, 0, 0, 0, 0, 0, 0, 0},
}

var blackPawnScores = [8][8]float64{
	{0, 0, 0, 0, 0, 0, 0, 0},
	{0, 0, 0, 0, 0, 0, 0, 0},
	{1, 2, 2, 3, 3, 2, 2, 1},
	{1, 1, 3, 4, 4, 3, 1, 1},
	{3, 3, 3, 4, 4, 3, 3, 3},
	{3, 3, 3, 3, 3, 3, 3, 3},
	{4, 4, 4, 4, 4, 4, 4, 4},
	{8, 8, 8, 8, 8, 8, 8, 8},
}

// positionalBonus returns the unweighted table entry for p on (row, col).
// Kings have no table.
func positionalBonus(p gs.Piece, row, col int) float64 {
	switch p.Kind {
	case gs.Pawn:
		if p.Color == gs.White {
			return whitePawnScores[row][col]
		}
		return blackPawnScores[row][col]
	case gs.Knight:
		return knightScores[row][col]
	case gs.Bishop:
		return bishopScores[row][col]
	case gs.Rook:
		return rookScores[row][col]
	case gs.Queen:
		return queenScores[row][col]
	}
	return 0
}

// Evaluate scores the position from white's point of view using the default
// parameters. See Params.Evaluate.
func Evaluate(g *gs.GameState) float64 {
	return DefaultParams().Evaluate(g)
}

// Evaluate scores the position from white's point of view. Terminal positions
// are read from the flags set by the last GenerateLegalMoves call: a mated side
// to move scores -CheckmateScore for white and +CheckmateScore for black, and
// stalemate scores exactly 0.
func (p Params) Evaluate(g *gs.GameState) float64 {
	if g.Checkmate() {
		if g.WhiteToMove() {
			return -p.CheckmateScore
		}
		return p.CheckmateScore
	}
	if g.Stalemate() {
		return 0
	}
	return p.material(g)
}

func (p Params) material(g *gs.GameState) float64 {
	var score float64
	for row := 0; row < 8; row++ {
		for col := 0; col < 8; col++ {
			pc := g.PieceAt(gs.Sq(row, col))
			if pc.IsEmpty() {
				continue
			}
			v := pieceValue[pc.Kind] + positionalBonus(pc, row, col)*p.PositionalWeight
			if pc.Color == gs.White {
				score += v
			} else {
				score -= v
			}
		}
	}
	return score
}
