// Package gamestate holds the authoritative chess position: the board, side to
// move, castling and en-passant bookkeeping, and a history that makes every move
// exactly reversible. It also enumerates fully legal moves.
package gamestate

import (
	"fmt"
	"strings"
)

// HistoryEntry captures what is needed to reverse a move. Castling rights and the
// en-passant target cannot be recovered from the board after the move, so they
// are stored here.
type HistoryEntry struct {
	Move          Move
	PrevCastling  CastlingRights
	PrevEnPassant Square
	prevHalfmove  int
	prevFullmove  int
	prevMate      bool
	prevStalemate bool
}

// GameState is a chess position plus its move history. It is not safe for
// concurrent use; hand a Clone to any other goroutine.
type GameState struct {
	board          Board
	whiteToMove    bool
	castling       CastlingRights
	enPassant      Square
	kings          [2]Square
	halfmoveClock  int
	fullmoveNumber int
	history        []HistoryEntry

	checkmate bool
	stalemate bool
}

// New returns the standard starting position.
func New() *GameState {
	return &GameState{
		board:          StartingBoard(),
		whiteToMove:    true,
		castling:       AllCastlingRights,
		enPassant:      NoSquare,
		kings:          [2]Square{Sq(7, 4), Sq(0, 4)},
		fullmoveNumber: 1,
	}
}

// Board returns a snapshot of the grid.
func (gs *GameState) Board() Board { return gs.board }

// PieceAt returns the content of sq.
func (gs *GameState) PieceAt(sq Square) Piece { return gs.board.At(sq) }

// WhiteToMove reports whose turn it is.
func (gs *GameState) WhiteToMove() bool { return gs.whiteToMove }

// SideToMove returns the color whose turn it is.
func (gs *GameState) SideToMove() Color {
	if gs.whiteToMove {
		return White
	}
	return Black
}

// CastlingRights returns the current castling flags.
func (gs *GameState) CastlingRights() CastlingRights { return gs.castling }

// EnPassantTarget returns the square skipped by the last double pawn push, or NoSquare.
func (gs *GameState) EnPassantTarget() Square { return gs.enPassant }

// KingSquare returns where c's king stands.
func (gs *GameState) KingSquare(c Color) Square { return gs.kings[c] }

// HalfmoveClock counts plies since the last capture or pawn move.
func (gs *GameState) HalfmoveClock() int { return gs.halfmoveClock }

// FullmoveNumber starts at 1 and increments after each black move.
func (gs *GameState) FullmoveNumber() int { return gs.fullmoveNumber }

// Checkmate is valid only right after GenerateLegalMoves for the current position.
func (gs *GameState) Checkmate() bool { return gs.checkmate }

// Stalemate is valid only right after GenerateLegalMoves for the current position.
func (gs *GameState) Stalemate() bool { return gs.stalemate }

// History returns the history entries, oldest first.
func (gs *GameState) History() []HistoryEntry { return gs.history }

// MoveLog returns the moves played, oldest first.
func (gs *GameState) MoveLog() []Move {
	moves := make([]Move, len(gs.history))
	for i, h := range gs.history {
		moves[i] = h.Move
	}
	return moves
}

// LastMove returns the most recent move, if any.
func (gs *GameState) LastMove() (Move, bool) {
	if len(gs.history) == 0 {
		return Move{}, false
	}
	return gs.history[len(gs.history)-1].Move, true
}

// MoveLogText renders the numbered move log ("1. e4 e5 2. Nf3").
func (gs *GameState) MoveLogText() string {
	var sb strings.Builder
	for i, h := range gs.history {
		if i%2 == 0 {
			if i > 0 {
				sb.WriteByte(' ')
			}
			fmt.Fprintf(&sb, "%d. ", i/2+1)
		} else {
			sb.WriteByte(' ')
		}
		sb.WriteString(h.Move.String())
	}
	return sb.String()
}

// ResultText describes a finished game, or returns "" while play continues.
// It reads the flags set by the last GenerateLegalMoves.
func (gs *GameState) ResultText() string {
	switch {
	case gs.stalemate:
		return "Stalemate"
	case gs.checkmate && gs.whiteToMove:
		return "Black wins by checkmate"
	case gs.checkmate:
		return "White wins by checkmate"
	}
	return ""
}

// Clone returns a deep copy that shares nothing with gs.
func (gs *GameState) Clone() *GameState {
	c := *gs
	c.history = make([]HistoryEntry, len(gs.history), cap(gs.history))
	copy(c.history, gs.history)
	return &c
}

// ApplyMove plays m without any legality check. Legality is the generator's job;
// callers holding a move from outside should use TryMove.
func (gs *GameState) ApplyMove(m Move) {
	gs.history = append(gs.history, HistoryEntry{
		Move:          m,
		PrevCastling:  gs.castling,
		PrevEnPassant: gs.enPassant,
		prevHalfmove:  gs.halfmoveClock,
		prevFullmove:  gs.fullmoveNumber,
		prevMate:      gs.checkmate,
		prevStalemate: gs.stalemate,
	})

	us := m.moved.Color
	gs.board.set(m.start, Empty)
	if m.enPassant {
		gs.board.set(m.capturedSquare(), Empty)
	}
	landing := m.moved
	if m.promotion {
		landing = NewPiece(us, m.promoteTo)
	}
	gs.board.set(m.end, landing)

	if m.castle {
		rookFrom, rookTo := m.rookSquares()
		gs.board.set(rookTo, gs.board.At(rookFrom))
		gs.board.set(rookFrom, Empty)
	}

	if m.moved.Kind == King {
		gs.kings[us] = m.end
		gs.castling.clear(us)
	}
	// A rook leaving its home square, or anything landing on one, ends that right for good.
	gs.castling.revokeRookSquare(m.start)
	gs.castling.revokeRookSquare(m.end)

	gs.enPassant = NoSquare
	if m.moved.Kind == Pawn && abs(m.end.Row-m.start.Row) == 2 {
		gs.enPassant = Sq((m.start.Row+m.end.Row)/2, m.start.Col)
	}

	if m.moved.Kind == Pawn || m.IsCapture() {
		gs.halfmoveClock = 0
	} else {
		gs.halfmoveClock++
	}
	if us == Black {
		gs.fullmoveNumber++
	}
	gs.whiteToMove = !gs.whiteToMove
}

// UndoLastMove reverses the most recent move. With no history it does nothing.
func (gs *GameState) UndoLastMove() {
	if len(gs.history) == 0 {
		return
	}
	h := gs.history[len(gs.history)-1]
	gs.history = gs.history[:len(gs.history)-1]
	m := h.Move

	gs.board.set(m.start, m.moved)
	gs.board.set(m.end, Empty)
	if m.IsCapture() {
		gs.board.set(m.capturedSquare(), m.captured)
	}
	if m.castle {
		rookFrom, rookTo := m.rookSquares()
		gs.board.set(rookFrom, gs.board.At(rookTo))
		gs.board.set(rookTo, Empty)
	}
	if m.moved.Kind == King {
		gs.kings[m.moved.Color] = m.start
	}

	gs.castling = h.PrevCastling
	gs.enPassant = h.PrevEnPassant
	gs.halfmoveClock = h.prevHalfmove
	gs.fullmoveNumber = h.prevFullmove
	gs.checkmate = h.prevMate
	gs.stalemate = h.prevStalemate
	gs.whiteToMove = !gs.whiteToMove
}

// FindLegalMove returns the legal move from start to end, if there is one.
// Promotions come back with the default queen.
func (gs *GameState) FindLegalMove(start, end Square) (Move, bool) {
	if !start.Valid() || !end.Valid() {
		return Move{}, false
	}
	for _, m := range gs.GenerateLegalMoves() {
		if m.start == start && m.end == end {
			return m, true
		}
	}
	return Move{}, false
}

// TryMove applies m only when it matches a legal move of the current position,
// keeping m's promotion choice. It reports whether the move was played.
func (gs *GameState) TryMove(m Move) bool {
	for _, legal := range gs.GenerateLegalMoves() {
		if legal.Equal(m) {
			if m.promotion {
				legal = legal.WithPromotion(m.promoteTo)
			}
			gs.ApplyMove(legal)
			return true
		}
	}
	return false
}

// PlayUCI decodes a coordinate move and plays it if it is legal. A promotion
// suffix on a move that does not promote is rejected.
func (gs *GameState) PlayUCI(s string) (Move, error) {
	start, end, promo, err := ParseUCIMove(s)
	if err != nil {
		return Move{}, err
	}
	m, ok := gs.FindLegalMove(start, end)
	if !ok || (promo != NoKind && !m.promotion) {
		return Move{}, fmt.Errorf("%w: %s", ErrIllegalMove, s)
	}
	m = m.WithPromotion(promo)
	gs.ApplyMove(m)
	return m, nil
}
