package gamestate_test

import (
	"errors"
	"testing"

	gs "chess-ai/gamestate"
)

func TestMoveDisplayForm(t *testing.T) {
	cases := []struct {
		fen  string
		uci  string
		want string
	}{
		{gs.StartFEN, "e2e4", "e4"},
		{gs.StartFEN, "g1f3", "Nf3"},
		{"rnbqkbnr/ppp1pppp/8/3p4/4P3/8/PPPP1PPP/RNBQKBNR w KQkq d6 0 2", "e4d5", "exd5"},
		{"r1bqkbnr/pppp1ppp/2n5/1B2p3/4P3/5N2/PPPP1PPP/RNBQK2R w KQkq - 2 3", "b5c6", "Bxc6"},
		{"r1bqkbnr/pppp1ppp/2n5/1B2p3/4P3/5N2/PPPP1PPP/RNBQK2R w KQkq - 2 3", "e1g1", "O-O"},
		{"r3k2r/8/8/8/8/8/8/R3K2R b KQkq - 0 1", "e8c8", "O-O-O"},
		{"k7/8/8/3pP3/8/8/8/7K w - d6 0 2", "e5d6", "exd6"},
		{"1n5k/P7/8/8/8/8/8/7K w - - 0 1", "a7a8", "a8=Q"},
		{"1n5k/P7/8/8/8/8/8/7K w - - 0 1", "a7b8", "axb8=Q"},
	}
	for _, c := range cases {
		g := mustFEN(t, c.fen)
		start, end, _, err := gs.ParseUCIMove(c.uci)
		if err != nil {
			t.Fatal(err)
		}
		m, ok := g.FindLegalMove(start, end)
		if !ok {
			t.Fatalf("%s not legal in %s", c.uci, c.fen)
		}
		if got := m.String(); got != c.want {
			t.Errorf("%s: got %q want %q", c.uci, got, c.want)
		}
	}
}

func TestUnderPromotionNotation(t *testing.T) {
	g := mustFEN(t, "1n5k/P7/8/8/8/8/8/7K w - - 0 1")
	m, _ := g.FindLegalMove(sq(t, "a7"), sq(t, "a8"))
	m = m.WithPromotion(gs.Knight)
	if m.String() != "a8=N" || m.UCI() != "a7a8n" {
		t.Fatalf("got %q / %q", m.String(), m.UCI())
	}
	if !m.Equal(m.WithPromotion(gs.Queen)) {
		t.Fatalf("promotion choice must not change move identity")
	}
	if m.WithPromotion(gs.King).PromoteTo() != gs.Knight {
		t.Fatalf("king is not a promotion target")
	}
}

func TestMoveLogText(t *testing.T) {
	g := gs.New()
	if g.MoveLogText() != "" {
		t.Fatalf("empty log should render empty")
	}
	play(t, g, "e2e4", "e7e5", "g1f3")
	if got := g.MoveLogText(); got != "1. e4 e5 2. Nf3" {
		t.Fatalf("got %q", got)
	}
	if n := len(g.MoveLog()); n != 3 {
		t.Fatalf("move log length %d", n)
	}
}

func TestParseUCIMove(t *testing.T) {
	start, end, promo, err := gs.ParseUCIMove("e7e8q")
	if err != nil {
		t.Fatal(err)
	}
	if start != gs.Sq(1, 4) || end != gs.Sq(0, 4) || promo != gs.Queen {
		t.Fatalf("got %v %v %v", start, end, promo)
	}
	for _, bad := range []string{"", "e2", "e2e9", "i2e4", "e7e8k", "e7e8x", "0000"} {
		if _, _, _, err := gs.ParseUCIMove(bad); !errors.Is(err, gs.ErrInvalidMove) {
			t.Errorf("ParseUCIMove(%q): got %v want ErrInvalidMove", bad, err)
		}
	}
}

func TestPlayUCI(t *testing.T) {
	g := gs.New()
	m, err := g.PlayUCI("e2e4")
	if err != nil {
		t.Fatalf("PlayUCI(e2e4): %v", err)
	}
	if m.String() != "e4" {
		t.Fatalf("display: got %q want %q", m.String(), "e4")
	}

	before := g.FEN()
	for _, s := range []string{"e7e4", "e2e4", "e7e5q"} {
		if _, err := g.PlayUCI(s); !errors.Is(err, gs.ErrIllegalMove) {
			t.Fatalf("PlayUCI(%q): got %v want ErrIllegalMove", s, err)
		}
	}
	if _, err := g.PlayUCI("e7"); !errors.Is(err, gs.ErrInvalidMove) {
		t.Fatalf("PlayUCI(e7): got %v want ErrInvalidMove", err)
	}
	if g.FEN() != before {
		t.Fatalf("rejected moves changed the position: %s", g.FEN())
	}

	g = mustFEN(t, "1n5k/P7/8/8/8/8/8/7K w - - 0 1")
	m, err = g.PlayUCI("a7b8n")
	if err != nil {
		t.Fatalf("PlayUCI(a7b8n): %v", err)
	}
	if m.PromoteTo() != gs.Knight || g.PieceAt(sq(t, "b8")).Code() != "wN" {
		t.Fatalf("under-promotion not applied: %s", g.FEN())
	}
}
