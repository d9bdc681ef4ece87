package gamestate_test

import (
	"testing"

	gs "chess-ai/gamestate"
)

func mustFEN(t *testing.T, fen string) *gs.GameState {
	t.Helper()
	g, err := gs.ParseFEN(fen)
	if err != nil {
		t.Fatalf("ParseFEN(%q): %v", fen, err)
	}
	return g
}

func sq(t *testing.T, s string) gs.Square {
	t.Helper()
	square, err := gs.ParseSquare(s)
	if err != nil {
		t.Fatalf("ParseSquare(%q): %v", s, err)
	}
	return square
}

// play applies coordinate moves, failing the test on any move not in the legal list.
func play(t *testing.T, g *gs.GameState, moves ...string) {
	t.Helper()
	for _, s := range moves {
		if _, err := g.PlayUCI(s); err != nil {
			t.Fatalf("PlayUCI(%q) in %s: %v", s, g.FEN(), err)
		}
	}
}

func hasMove(moves []gs.Move, uci string) bool {
	for _, m := range moves {
		if m.UCI() == uci {
			return true
		}
	}
	return false
}
