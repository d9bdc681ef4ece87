package engine

import (
	"math/rand"
	"time"

	gs "chess-ai/gamestate"
)

// Searcher runs fixed-depth negamax with alpha-beta pruning. A Searcher is not
// safe for concurrent use; Think gives its worker a private one.
type Searcher struct {
	Params Params
	// Shuffle randomizes root move order before each search so that equal
	// scores do not always resolve to the first generated move.
	Shuffle bool
	// Stats describes the most recent search.
	Stats Stats

	rng      *rand.Rand
	nextMove gs.Move
	found    bool
}

// NewSearcher returns a shuffling searcher. A zero seed picks a time-based one.
func NewSearcher(p Params, seed int64) *Searcher {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Searcher{
		Params:  p,
		Shuffle: true,
		rng:     newRand(seed),
	}
}

// random returns the searcher's generator, seeding one from the clock for a
// zero-value Searcher.
func (s *Searcher) random() *rand.Rand {
	if s.rng == nil {
		s.rng = newRand(time.Now().UnixNano())
	}
	return s.rng
}

func newRand(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// ChooseRandomMove picks uniformly among moves. ok is false for an empty list.
func (s *Searcher) ChooseRandomMove(moves []gs.Move) (gs.Move, bool) {
	if len(moves) == 0 {
		return gs.Move{}, false
	}
	return moves[s.random().Intn(len(moves))], true
}

// ChooseBestMove searches depth plies below the root and returns the best root
// move for the side to move. ok is false when depth is not positive, moves is
// empty, or no root move scores above a forced loss. The caller's moves slice is
// not reordered; g is mutated during the search and restored before return.
func (s *Searcher) ChooseBestMove(g *gs.GameState, moves []gs.Move, depth int) (gs.Move, bool) {
	s.Stats.reset()
	s.nextMove, s.found = gs.Move{}, false
	if depth <= 0 || len(moves) == 0 {
		return gs.Move{}, false
	}

	root := make([]gs.Move, len(moves))
	copy(root, moves)
	if s.Shuffle {
		s.random().Shuffle(len(root), func(i, j int) { root[i], root[j] = root[j], root[i] })
	}

	cm := s.Params.CheckmateScore
	s.negamax(g, root, depth, 0, -cm, cm, sideSign(g))
	return s.nextMove, s.found
}

// ScoreMoves returns the negamax score of each move from the mover's point of
// view, each searched with a full window to depth-1 plies below it.
func (s *Searcher) ScoreMoves(g *gs.GameState, moves []gs.Move, depth int) []float64 {
	s.Stats.reset()
	scores := make([]float64, len(moves))
	cm := s.Params.CheckmateScore
	sign := sideSign(g)
	for i, m := range moves {
		g.ApplyMove(m)
		replies := g.GenerateLegalMoves()
		scores[i] = -s.negamax(g, replies, depth-1, 1, -cm, cm, -sign)
		g.UndoLastMove()
	}
	return scores
}

// negamax returns the score of g for the side given by sign (+1 white, -1
// black). moves must be the legal moves of g, generated after g's last move so
// the terminal flags are current. Only the root frame (ply 0) records a move.
func (s *Searcher) negamax(g *gs.GameState, moves []gs.Move, depth, ply int, alpha, beta, sign float64) float64 {
	s.Stats.Nodes++
	if depth <= 0 || len(moves) == 0 {
		s.Stats.LeafEvals++
		return sign * s.Params.Evaluate(g)
	}

	best := -s.Params.CheckmateScore
	for _, m := range moves {
		g.ApplyMove(m)
		replies := g.GenerateLegalMoves()
		score := -s.negamax(g, replies, depth-1, ply+1, -beta, -alpha, -sign)
		g.UndoLastMove()

		if score > best {
			best = score
			if ply == 0 {
				s.nextMove, s.found = m, true
			}
		}
		alpha = Max(alpha, best)
		if alpha >= beta {
			s.Stats.BetaCutoffs++
			break
		}
	}
	return best
}

func sideSign(g *gs.GameState) float64 {
	if g.WhiteToMove() {
		return 1
	}
	return -1
}
