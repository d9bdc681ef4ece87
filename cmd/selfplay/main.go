// Command selfplay plays the engine (or a random mover) against itself and
// prints each game as PGN. Every move is replayed through an independent rules
// implementation, which also supplies draw detection and standard notation.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/notnil/chess"

	"chess-ai/config"
	"chess-ai/engine"
	gs "chess-ai/gamestate"
)

type player string

const (
	playerEngine player = "engine"
	playerRandom player = "random"
)

func parsePlayer(s string) (player, error) {
	switch p := player(s); p {
	case playerEngine, playerRandom:
		return p, nil
	}
	return "", fmt.Errorf("unknown player %q (want engine or random)", s)
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	whiteFlag := flag.String("white", "engine", "white player: engine or random")
	blackFlag := flag.String("black", "random", "black player: engine or random")
	games := flag.Int("games", 1, "number of games to play")
	maxPlies := flag.Int("maxplies", 300, "stop a game after this many plies")
	depth := flag.Int("depth", cfg.Engine.Depth, "engine search depth")
	seed := flag.Int64("seed", cfg.Engine.Seed, "RNG seed (0 = time based)")
	movetime := flag.Duration("movetime", 0, "per-move thinking limit (0 = none)")
	flag.Parse()

	white, err := parsePlayer(*whiteFlag)
	if err != nil {
		log.Fatal(err)
	}
	black, err := parsePlayer(*blackFlag)
	if err != nil {
		log.Fatal(err)
	}
	if *depth <= 0 {
		log.Fatalf("depth must be positive, got %d", *depth)
	}

	closer, err := cfg.InitLog()
	if err != nil {
		log.Fatalf("init log: %v", err)
	}
	if err := run(cfg, white, black, *games, *maxPlies, *depth, *seed, *movetime); err != nil {
		log.Print(err)
		closer.Close()
		os.Exit(1)
	}
	closer.Close()
}

// run plays the games. Its errors are logged by main, which owns the log file.
func run(cfg *config.Config, white, black player, games, maxPlies, depth int, seed int64, movetime time.Duration) error {
	params := cfg.Params()
	params.Depth = depth
	searcher := engine.NewSearcher(params, seed)

	var score [3]int // white wins, black wins, draws
	for i := 1; i <= games; i++ {
		res, err := playGame(searcher, [2]player{white, black}, maxPlies, movetime)
		if err != nil {
			return fmt.Errorf("game %d: %w", i, err)
		}
		switch res.outcome {
		case chess.WhiteWon:
			score[0]++
		case chess.BlackWon:
			score[1]++
		default:
			score[2]++
		}
		printGame(i, res)
	}
	color.New(color.Bold).Printf("score: white %d  black %d  draws %d\n", score[0], score[1], score[2])
	return nil
}

type gameResult struct {
	outcome chess.Outcome
	method  string
	plies   int
	pgn     string
	ours    string
	sources map[engine.Source]int
}

func playGame(s *engine.Searcher, players [2]player, maxPlies int, movetime time.Duration) (gameResult, error) {
	g := gs.New()
	ref := chess.NewGame()
	res := gameResult{sources: make(map[engine.Source]int)}

	for ply := 0; ply < maxPlies && ref.Outcome() == chess.NoOutcome; ply++ {
		legal := g.GenerateLegalMoves()
		checkMoveCount(g, legal, ref)
		if len(legal) == 0 {
			break
		}

		var m gs.Move
		if players[g.SideToMove()] == playerEngine {
			ctx, cancel := context.Background(), context.CancelFunc(func() {})
			if movetime > 0 {
				ctx, cancel = context.WithTimeout(context.Background(), movetime)
			}
			r := s.Think(ctx, g, legal)
			cancel()
			res.sources[r.Source]++
			m = r.Move
		} else {
			m, _ = s.ChooseRandomMove(legal)
		}

		refMove, err := chess.UCINotation{}.Decode(ref.Position(), m.UCI())
		if err == nil {
			err = ref.Move(refMove)
		}
		if err != nil {
			return res, fmt.Errorf("ply %d: move %s rejected by reference rules in %s: %w", ply+1, m.UCI(), g.FEN(), err)
		}
		g.ApplyMove(m)
		res.plies++
	}

	g.GenerateLegalMoves()
	res.ours = g.ResultText()
	res.outcome = ref.Outcome()
	res.method = fmt.Sprint(ref.Method())
	if res.outcome == chess.NoOutcome {
		res.method = "move limit"
	}
	if res.ours != "" && !agrees(res.ours, res.outcome) {
		log.Printf("result disagreement: ours %q, reference %s (%s)", res.ours, res.outcome, res.method)
	}
	res.pgn = ref.String()
	return res, nil
}

// checkMoveCount compares the legal move count with the reference, counting
// each of our promotions as its four piece choices.
func checkMoveCount(g *gs.GameState, legal []gs.Move, ref *chess.Game) {
	n := len(legal)
	for _, m := range legal {
		if m.IsPromotion() {
			n += 3
		}
	}
	if want := len(ref.ValidMoves()); n != want {
		log.Printf("move count disagreement in %s: ours %d, reference %d", g.FEN(), n, want)
	}
}

func agrees(ours string, outcome chess.Outcome) bool {
	switch ours {
	case "White wins by checkmate":
		return outcome == chess.WhiteWon
	case "Black wins by checkmate":
		return outcome == chess.BlackWon
	case "Stalemate":
		return outcome == chess.Draw
	}
	return false
}

func printGame(n int, res gameResult) {
	c := color.New(color.FgYellow)
	switch res.outcome {
	case chess.WhiteWon:
		c = color.New(color.FgGreen)
	case chess.BlackWon:
		c = color.New(color.FgRed)
	}
	c.Printf("game %d: %s by %s after %d plies\n", n, res.outcome, res.method, res.plies)
	if len(res.sources) > 0 {
		fmt.Printf("engine moves: search %d, random %d, cancelled %d\n",
			res.sources[engine.SourceSearch], res.sources[engine.SourceRandom], res.sources[engine.SourceCancelled])
	}
	fmt.Fprintln(os.Stdout, res.pgn)
}
