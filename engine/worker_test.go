package engine_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chess-ai/engine"
	gs "chess-ai/gamestate"
)

const kiwipete = "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1"

func containsMove(moves []gs.Move, m gs.Move) bool {
	for _, c := range moves {
		if c.Equal(m) {
			return true
		}
	}
	return false
}

func TestThinkReturnsSearchResult(t *testing.T) {
	g := position(t, backRankMate)
	before := g.FEN()
	s := engine.NewSearcher(engine.DefaultParams(), 1)

	r := s.Think(context.Background(), g, g.GenerateLegalMoves())
	require.True(t, r.OK)
	assert.Equal(t, engine.SourceSearch, r.Source)
	assert.Equal(t, "a1a8", r.Move.UCI())
	assert.NotZero(t, r.Stats.Nodes)
	assert.Equal(t, r.Stats, s.Stats)
	assert.Equal(t, before, g.FEN())
}

func TestThinkFallsBackWhenSearchFindsNothing(t *testing.T) {
	p := engine.DefaultParams()
	p.Depth = 0
	g := gs.New()
	legal := g.GenerateLegalMoves()

	r := engine.NewSearcher(p, 1).Think(context.Background(), g, legal)
	require.True(t, r.OK)
	assert.Equal(t, engine.SourceRandom, r.Source)
	assert.True(t, containsMove(legal, r.Move))
}

func TestThinkCancelledBeforeStart(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	g := gs.New()
	legal := g.GenerateLegalMoves()
	r := engine.NewSearcher(engine.DefaultParams(), 1).Think(ctx, g, legal)
	require.True(t, r.OK)
	assert.Equal(t, engine.SourceCancelled, r.Source)
	assert.True(t, containsMove(legal, r.Move))
	assert.Zero(t, r.Stats)
}

func TestThinkAbandonsSlowWorker(t *testing.T) {
	p := engine.DefaultParams()
	p.Depth = 4
	g := position(t, kiwipete)
	before := g.FEN()
	legal := g.GenerateLegalMoves()

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	start := time.Now()
	r := engine.NewSearcher(p, 1).Think(ctx, g, legal)
	assert.Less(t, time.Since(start), 2*time.Second, "Think waited for the worker")
	require.True(t, r.OK)
	assert.Equal(t, engine.SourceCancelled, r.Source)
	assert.True(t, containsMove(legal, r.Move))

	// The abandoned worker searches a clone; the live position is untouched.
	assert.Equal(t, before, g.FEN())
	assert.Empty(t, g.History())
}

func TestThinkWithoutLegalMoves(t *testing.T) {
	g := position(t, "7k/5Q2/6K1/8/8/8/8/8 b - - 0 1")
	r := engine.NewSearcher(engine.DefaultParams(), 1).Think(context.Background(), g, nil)
	assert.False(t, r.OK)
}

func TestSourceString(t *testing.T) {
	assert.Equal(t, "search", engine.SourceSearch.String())
	assert.Equal(t, "random", engine.SourceRandom.String())
	assert.Equal(t, "cancelled", engine.SourceCancelled.String())
}

func TestTimeBudget(t *testing.T) {
	tests := []struct {
		name      string
		remaining time.Duration
		increment time.Duration
		fullmove  int
		want      time.Duration
	}{
		{"no clock", 0, 0, 1, 0},
		{"sudden death", time.Minute, 0, 1, 1500 * time.Millisecond},
		{"with increment", 10 * time.Second, time.Second, 1, 10*time.Second/45 + time.Second},
		{"late game", 10 * time.Second, time.Second, 80, 10*time.Second/20 + time.Second},
		{"panic lives off increment", 500 * time.Millisecond, 100 * time.Millisecond, 30, 90 * time.Millisecond},
		{"capped by remaining", 2 * time.Second, 5 * time.Second, 1, 1400 * time.Millisecond},
		{"floor", 20 * time.Millisecond, 0, 1, 5 * time.Millisecond},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, engine.TimeBudget(tc.remaining, tc.increment, tc.fullmove))
		})
	}
}
