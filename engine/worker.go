package engine

import (
	"context"
	"time"

	gs "chess-ai/gamestate"
)

// Source says which path produced a Think result.
type Source int

const (
	// SourceSearch means the search finished and found a move.
	SourceSearch Source = iota
	// SourceRandom means the search finished without a move and a random one was picked.
	SourceRandom
	// SourceCancelled means the context ended first and a random move was picked.
	SourceCancelled
)

func (s Source) String() string {
	switch s {
	case SourceSearch:
		return "search"
	case SourceRandom:
		return "random"
	case SourceCancelled:
		return "cancelled"
	}
	return "unknown"
}

// Result is the outcome of Think.
type Result struct {
	Move   gs.Move
	OK     bool // false only when there were no legal moves
	Source Source
	// Stats is zero when the search was abandoned.
	Stats   Stats
	Elapsed time.Duration
}

type workerResult struct {
	move  gs.Move
	found bool
	stats Stats
}

// Think searches a clone of g on its own goroutine and waits for either the
// result or the end of ctx. On cancellation the worker is abandoned; it keeps
// running on its private copy and its result is dropped. g is never touched by
// the worker. An abandoned worker still burns a core until its search ends,
// which at high depths can take minutes; callers that cancel often should
// bound Params.Depth.
func (s *Searcher) Think(ctx context.Context, g *gs.GameState, legal []gs.Move) Result {
	start := time.Now()
	if len(legal) == 0 {
		return Result{Source: SourceRandom, Elapsed: time.Since(start)}
	}
	if ctx.Err() != nil {
		m, ok := s.ChooseRandomMove(legal)
		return Result{Move: m, OK: ok, Source: SourceCancelled, Elapsed: time.Since(start)}
	}

	worker := &Searcher{
		Params:  s.Params,
		Shuffle: s.Shuffle,
		rng:     newRand(s.random().Int63()),
	}
	pos := g.Clone()
	moves := make([]gs.Move, len(legal))
	copy(moves, legal)

	done := make(chan workerResult, 1)
	go func() {
		m, ok := worker.ChooseBestMove(pos, moves, worker.Params.Depth)
		done <- workerResult{move: m, found: ok, stats: worker.Stats}
	}()

	select {
	case r := <-done:
		s.Stats = r.stats
		if r.found {
			return Result{Move: r.move, OK: true, Source: SourceSearch, Stats: r.stats, Elapsed: time.Since(start)}
		}
		m, ok := s.ChooseRandomMove(legal)
		return Result{Move: m, OK: ok, Source: SourceRandom, Stats: r.stats, Elapsed: time.Since(start)}
	case <-ctx.Done():
		s.Stats = Stats{}
		m, ok := s.ChooseRandomMove(legal)
		return Result{Move: m, OK: ok, Source: SourceCancelled, Elapsed: time.Since(start)}
	}
}
