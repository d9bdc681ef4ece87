package engine_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chess-ai/engine"
	gs "chess-ai/gamestate"
)

func position(t *testing.T, fen string) *gs.GameState {
	t.Helper()
	g, err := gs.ParseFEN(fen)
	require.NoError(t, err, fen)
	g.GenerateLegalMoves()
	return g
}

func TestEvaluateStartingPosition(t *testing.T) {
	// Only the queen tables differ between the two sides at the start: d1 is
	// worth 1 and d8 is worth 3.
	assert.InDelta(t, -0.2, engine.Evaluate(gs.New()), 1e-9)
}

func TestEvaluateMaterialAndPosition(t *testing.T) {
	tests := []struct {
		name string
		fen  string
		want float64
	}{
		{"rook in corner", "4k3/8/8/8/8/8/8/R3K3 w - - 0 1", 5.4},
		{"centralized knight", "4k3/8/8/8/3N4/8/8/4K3 w - - 0 1", 3.4},
		{"black bishop", "4k3/8/8/8/8/8/8/b3K3 w - - 0 1", -3.4},
		{"advanced white pawn", "4k3/P7/8/8/8/8/8/4K3 b - - 0 1", 1.4},
		{"black pawn home", "4k3/p7/8/8/8/8/8/4K3 w - - 0 1", -1},
		{"kings only", "4k3/8/8/8/8/8/8/4K3 w - - 0 1", 0},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.InDelta(t, tc.want, engine.Evaluate(position(t, tc.fen)), 1e-9)
		})
	}
}

func TestEvaluatePositionalWeight(t *testing.T) {
	g := position(t, "4k3/8/8/8/3N4/8/8/4K3 w - - 0 1")
	p := engine.DefaultParams()
	p.PositionalWeight = 0
	assert.InDelta(t, 3, p.Evaluate(g), 1e-9)
	p.PositionalWeight = 1
	assert.InDelta(t, 7, p.Evaluate(g), 1e-9)
}

func TestEvaluateTerminalPositions(t *testing.T) {
	whiteMated := position(t, "rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR w KQkq - 1 3")
	require.True(t, whiteMated.Checkmate())
	assert.Equal(t, -1000.0, engine.Evaluate(whiteMated))

	blackMated := position(t, "r1bqkb1r/pppp1Qpp/2n2n2/4p3/2B1P3/8/PPPP1PPP/RNB1K1NR b KQkq - 0 4")
	require.True(t, blackMated.Checkmate())
	assert.Equal(t, 1000.0, engine.Evaluate(blackMated))

	stalemate := position(t, "7k/5Q2/6K1/8/8/8/8/8 b - - 0 1")
	require.True(t, stalemate.Stalemate())
	assert.Equal(t, 0.0, engine.Evaluate(stalemate), "stalemate ignores the material imbalance")

	p := engine.DefaultParams()
	p.CheckmateScore = 50
	assert.Equal(t, 50.0, p.Evaluate(blackMated))
}
