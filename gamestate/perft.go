package gamestate

var promotionKinds = [4]PieceKind{Queen, Rook, Bishop, Knight}

// expandPromotions replaces each promotion with one move per promotion kind.
// The legal-move list carries a single queen promotion; perft tables count all four.
func expandPromotions(moves []Move) []Move {
	out := make([]Move, 0, len(moves))
	for _, m := range moves {
		if !m.promotion {
			out = append(out, m)
			continue
		}
		for _, k := range promotionKinds {
			out = append(out, m.WithPromotion(k))
		}
	}
	return out
}

// Perft counts the leaf nodes of the legal move tree to the given depth.
func (gs *GameState) Perft(depth int) uint64 {
	if depth <= 0 {
		return 1
	}
	moves := expandPromotions(gs.GenerateLegalMoves())
	if depth == 1 {
		return uint64(len(moves))
	}
	var nodes uint64
	for _, m := range moves {
		gs.ApplyMove(m)
		nodes += gs.Perft(depth - 1)
		gs.UndoLastMove()
	}
	return nodes
}

// PerftDivide returns the perft count below each root move, keyed by coordinate notation.
func (gs *GameState) PerftDivide(depth int) map[string]uint64 {
	div := make(map[string]uint64)
	if depth <= 0 {
		return div
	}
	for _, m := range expandPromotions(gs.GenerateLegalMoves()) {
		gs.ApplyMove(m)
		div[m.UCI()] = gs.Perft(depth - 1)
		gs.UndoLastMove()
	}
	return div
}
