package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"

	"chess-ai/config"
	"chess-ai/engine"
	gs "chess-ai/gamestate"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	closer, err := cfg.InitLog()
	if err != nil {
		log.Fatalf("init log: %v", err)
	}
	defer closer.Close()

	log.Printf("starting: depth %d, checkmate %g, positional weight %g",
		cfg.Engine.Depth, cfg.Engine.CheckmateScore, cfg.Engine.PositionalWeight)
	newSession(os.Stdout, cfg.NewSearcher()).loop(os.Stdin)
}

type session struct {
	mu  sync.Mutex // guards out
	out io.Writer

	searcher *engine.Searcher
	params   engine.Params
	game     *gs.GameState

	cancel context.CancelFunc
	done   chan struct{}
}

func newSession(out io.Writer, searcher *engine.Searcher) *session {
	return &session{
		out:      out,
		searcher: searcher,
		params:   searcher.Params,
		game:     gs.New(),
	}
}

func (s *session) println(a ...any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fmt.Fprintln(s.out, a...)
}

func (s *session) printf(format string, a ...any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fmt.Fprintf(s.out, format+"\n", a...)
}

// loop reads commands until quit or end of input.
func (s *session) loop(in io.Reader) {
	scanner := bufio.NewScanner(in)
	defer s.stopThinking()
	for scanner.Scan() {
		line := scanner.Text()
		tokens := strings.Fields(line)
		if len(tokens) == 0 { // ignore blank lines
			continue
		}
		cmd := strings.ToLower(tokens[0])

		// Anything that reads or changes the position waits for a running search.
		switch cmd {
		case "isready", "stop", "quit":
		case "undo", "ucinewgame":
			s.stopThinking()
		default:
			s.waitThinking()
		}

		switch cmd {
		case "uci":
			s.println("id name chess-ai")
			s.println("id author chess-ai developers")
			s.println("uciok")
		case "isready":
			s.println("readyok")
		case "ucinewgame":
			s.game = gs.New()
		case "quit":
			return
		case "stop":
			s.stopThinking()
		case "position":
			s.position(tokens[1:])
		case "go":
			s.goSearch(tokens[1:])
		case "eval":
			s.eval()
		case "d":
			s.display()
		case "undo":
			if m, ok := s.game.LastMove(); ok {
				s.game.UndoLastMove()
				s.println("info string undo", m.UCI())
			} else {
				s.println("info string nothing to undo")
			}
		default:
			s.println("info string Unknown command:", line)
		}
	}
	if err := scanner.Err(); err != nil {
		log.Printf("read input: %v", err)
	}
}

func (s *session) position(args []string) {
	if len(args) == 0 {
		s.println("info string Malformed position command")
		return
	}
	var rest []string
	switch strings.ToLower(args[0]) {
	case "startpos":
		s.game = gs.New()
		rest = args[1:]
	case "fen":
		i := 1
		for i < len(args) && strings.ToLower(args[i]) != "moves" {
			i++
		}
		g, err := gs.ParseFEN(strings.Join(args[1:i], " "))
		if err != nil {
			s.println("info string Invalid fen position:", err)
			return
		}
		s.game = g
		rest = args[i:]
	default:
		s.println("info string Invalid position subcommand")
		return
	}

	if len(rest) == 0 || strings.ToLower(rest[0]) != "moves" {
		return
	}
	for _, mv := range rest[1:] {
		if _, err := s.game.PlayUCI(mv); err != nil {
			s.println("info string Move", mv, "not played:", err)
		}
	}
}

// maxGoDepth caps "go depth". Stopped searches run on until they finish.
const maxGoDepth = 6

type goOptions struct {
	depth    int
	wtime    int
	btime    int
	winc     int
	binc     int
	movetime int
}

func (s *session) parseGo(args []string) goOptions {
	var opts goOptions
	fields := map[string]*int{
		"depth":    &opts.depth,
		"wtime":    &opts.wtime,
		"btime":    &opts.btime,
		"winc":     &opts.winc,
		"binc":     &opts.binc,
		"movetime": &opts.movetime,
	}
	for i := 0; i < len(args); i++ {
		name := strings.ToLower(args[i])
		if name == "infinite" {
			continue
		}
		dst, ok := fields[name]
		if !ok {
			s.println("info string Unknown go subcommand", name)
			continue
		}
		if i+1 >= len(args) {
			s.println("info string Malformed go command option", name)
			break
		}
		i++
		v, err := strconv.Atoi(args[i])
		if err != nil {
			s.println("info string Malformed go command option; could not convert", name)
			continue
		}
		*dst = v
	}
	if opts.depth > maxGoDepth {
		s.printf("info string depth %d capped at %d", opts.depth, maxGoDepth)
		opts.depth = maxGoDepth
	}
	return opts
}

// goSearch starts a search in the background. Its bestmove line is printed
// when the search ends or is stopped.
func (s *session) goSearch(args []string) {
	opts := s.parseGo(args)

	legal := s.game.GenerateLegalMoves()
	if len(legal) == 0 {
		if text := s.game.ResultText(); text != "" {
			s.println("info string", text)
		}
		s.println("bestmove 0000")
		return
	}

	params := s.params
	if opts.depth > 0 {
		params.Depth = opts.depth
	}
	s.searcher.Params = params

	remaining, inc := opts.wtime, opts.winc
	if !s.game.WhiteToMove() {
		remaining, inc = opts.btime, opts.binc
	}
	budget := engine.TimeBudget(time.Duration(remaining)*time.Millisecond, time.Duration(inc)*time.Millisecond, s.game.FullmoveNumber())
	if opts.movetime > 0 {
		budget = time.Duration(opts.movetime) * time.Millisecond
	}

	var ctx context.Context
	var cancel context.CancelFunc
	if budget > 0 {
		ctx, cancel = context.WithTimeout(context.Background(), budget)
	} else {
		ctx, cancel = context.WithCancel(context.Background())
	}
	s.cancel = cancel
	s.done = make(chan struct{})

	go func(g *gs.GameState, done chan struct{}) {
		defer close(done)
		defer cancel()
		r := s.searcher.Think(ctx, g, legal)
		if r.Source != engine.SourceCancelled {
			s.println(r.Stats.String())
		}
		s.printf("info string depth %d source %s time %d", params.Depth, r.Source, r.Elapsed.Milliseconds())
		s.println("bestmove", r.Move.UCI())
	}(s.game, s.done)
}

// stopThinking cancels a running search and waits for its bestmove line.
func (s *session) stopThinking() {
	if s.cancel != nil {
		s.cancel()
	}
	s.waitThinking()
}

func (s *session) waitThinking() {
	if s.done != nil {
		<-s.done
		s.done, s.cancel = nil, nil
	}
}

func (s *session) eval() {
	legal := s.game.GenerateLegalMoves()
	s.printf("info string eval %.2f", s.params.Evaluate(s.game))
	s.searcher.Params = s.params
	scores := s.searcher.ScoreMoves(s.game, legal, s.params.Depth)
	for i, m := range legal {
		s.printf("info string move %s %s score %.2f", m.UCI(), m, scores[i])
	}
}

func (s *session) display() {
	b := s.game.Board()
	s.mu.Lock()
	fmt.Fprint(s.out, b.String())
	s.mu.Unlock()
	s.println("Fen:", s.game.FEN())
	if moves := s.game.MoveLogText(); moves != "" {
		s.println("Moves:", moves)
	}
	s.game.GenerateLegalMoves()
	if text := s.game.ResultText(); text != "" {
		s.println("Result:", text)
	}
}
