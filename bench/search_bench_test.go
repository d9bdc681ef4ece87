package bench

import (
	"testing"

	"chess-ai/engine"
	gs "chess-ai/gamestate"
)

func benchSearch(b *testing.B, fen string, depth int) {
	g, err := gs.ParseFEN(fen)
	if err != nil {
		b.Fatalf("ParseFEN: %v", err)
	}
	legal := g.GenerateLegalMoves()
	s := engine.NewSearcher(engine.DefaultParams(), 1)
	var nodes uint64
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, ok := s.ChooseBestMove(g, legal, depth); !ok {
			b.Fatalf("no move found in %s", fen)
		}
		nodes += s.Stats.Nodes
	}
	b.ReportMetric(float64(nodes)/float64(b.N), "nodes/op")
}

func BenchmarkSearch_Initial_D2(b *testing.B) {
	benchSearch(b, gs.StartFEN, 2)
}

func BenchmarkSearch_Initial_D3(b *testing.B) {
	benchSearch(b, gs.StartFEN, 3)
}

func BenchmarkSearch_Pos6_D2(b *testing.B) {
	benchSearch(b, pos6, 2)
}

func BenchmarkEvaluate_Kiwipete(b *testing.B) {
	g := gs.MustParseFEN(kiwipete)
	g.GenerateLegalMoves()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = engine.Evaluate(g)
	}
}
