package gamestate

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidMove is returned when a coordinate move string cannot be decoded.
var ErrInvalidMove = errors.New("invalid move")

// ErrIllegalMove is returned for a well-formed move that the position does not allow.
var ErrIllegalMove = errors.New("illegal move")

// Move is an immutable record of a single ply.
type Move struct {
	start     Square
	end       Square
	moved     Piece
	captured  Piece
	enPassant bool
	castle    bool
	promotion bool
	promoteTo PieceKind
}

// Start returns the origin square.
func (m Move) Start() Square { return m.start }

// End returns the destination square.
func (m Move) End() Square { return m.end }

// Moved returns the piece that moves.
func (m Move) Moved() Piece { return m.moved }

// Captured returns the captured piece, Empty if none.
func (m Move) Captured() Piece { return m.captured }

// IsCapture reports whether the move removes an enemy piece.
func (m Move) IsCapture() bool { return !m.captured.IsEmpty() }

// IsEnPassant reports an en-passant capture.
func (m Move) IsEnPassant() bool { return m.enPassant }

// IsCastle reports a castling move (the king's move; the rook follows).
func (m Move) IsCastle() bool { return m.castle }

// IsPromotion reports a pawn reaching the farthest rank.
func (m Move) IsPromotion() bool { return m.promotion }

// PromoteTo returns the chosen promotion kind, NoKind for other moves.
func (m Move) PromoteTo() PieceKind { return m.promoteTo }

// WithPromotion returns a copy promoting to k. Non-promotions and kings or pawns
// as targets leave the move unchanged. The copy is Equal to m.
func (m Move) WithPromotion(k PieceKind) Move {
	if !m.promotion || k < Knight || k > Queen {
		return m
	}
	m.promoteTo = k
	return m
}

// Equal compares identity: squares and move-kind flags. Captured pieces,
// promotion choice and notation are derived values.
func (m Move) Equal(o Move) bool {
	return m.start == o.start && m.end == o.end &&
		m.enPassant == o.enPassant && m.castle == o.castle && m.promotion == o.promotion
}

// capturedSquare is where the captured piece stands: behind the landing square for en passant.
func (m Move) capturedSquare() Square {
	if m.enPassant {
		return Square{Row: m.start.Row, Col: m.end.Col}
	}
	return m.end
}

// rookSquares returns the rook's start and end squares for a castling move.
func (m Move) rookSquares() (from, to Square) {
	row := m.start.Row
	if m.end.Col == 6 {
		return Sq(row, 7), Sq(row, 5)
	}
	return Sq(row, 0), Sq(row, 3)
}

// newMove builds a move for the generator; flags are derived from the board.
func newMove(start, end Square, b *Board, enPassant, castle bool) Move {
	m := Move{
		start:     start,
		end:       end,
		moved:     b.At(start),
		captured:  b.At(end),
		enPassant: enPassant,
		castle:    castle,
	}
	if enPassant {
		m.captured = NewPiece(m.moved.Color.Opponent(), Pawn)
	}
	if m.moved.Kind == Pawn && end.Row == promotionRow(m.moved.Color) {
		m.promotion = true
		m.promoteTo = Queen
	}
	return m
}

// NewMove constructs the move a caller means by clicking start then end on b.
// It reports false when either square is off-board, start is empty, or the
// squares are not connected by the moving piece's movement pattern. A returned
// move is not necessarily legal: look it up in the legal-move list before applying.
func NewMove(start, end Square, b *Board) (Move, bool) {
	if !start.Valid() || !end.Valid() || start == end {
		return Move{}, false
	}
	p := b.At(start)
	if p.IsEmpty() {
		return Move{}, false
	}
	dr, dc := end.Row-start.Row, end.Col-start.Col
	adr, adc := abs(dr), abs(dc)
	enPassant, castle := false, false
	switch p.Kind {
	case Pawn:
		dir := pawnDir(p.Color)
		switch {
		case dc == 0 && dr == dir:
		case dc == 0 && dr == 2*dir && start.Row == homeRow(p.Color)+dir:
		case adc == 1 && dr == dir:
			enPassant = b.At(end).IsEmpty()
		default:
			return Move{}, false
		}
	case Knight:
		if !(adr == 1 && adc == 2 || adr == 2 && adc == 1) {
			return Move{}, false
		}
	case Bishop:
		if adr != adc {
			return Move{}, false
		}
	case Rook:
		if dr != 0 && dc != 0 {
			return Move{}, false
		}
	case Queen:
		if adr != adc && dr != 0 && dc != 0 {
			return Move{}, false
		}
	case King:
		switch {
		case adr <= 1 && adc <= 1:
		case dr == 0 && adc == 2 && start == Sq(homeRow(p.Color), 4):
			castle = true
		default:
			return Move{}, false
		}
	}
	return newMove(start, end, b, enPassant, castle), true
}

// String renders the move for a move log: "O-O", "e4", "exd5", "e8=Q", "Nf3", "Bxc6".
func (m Move) String() string {
	if m.castle {
		if m.end.Col == 6 {
			return "O-O"
		}
		return "O-O-O"
	}
	var sb strings.Builder
	if m.moved.Kind == Pawn {
		if m.IsCapture() {
			sb.WriteByte(m.start.File())
			sb.WriteByte('x')
		}
		sb.WriteString(m.end.String())
		if m.promotion {
			sb.WriteByte('=')
			sb.WriteByte(m.promoteTo.Letter())
		}
		return sb.String()
	}
	sb.WriteByte(m.moved.Kind.Letter())
	if m.IsCapture() {
		sb.WriteByte('x')
	}
	sb.WriteString(m.end.String())
	return sb.String()
}

// UCI renders coordinate notation ("e2e4", "e7e8q").
func (m Move) UCI() string {
	s := m.start.String() + m.end.String()
	if m.promotion {
		s += strings.ToLower(string(m.promoteTo.Letter()))
	}
	return s
}

// ParseUCIMove decodes coordinate notation into start, end and an optional
// promotion kind (NoKind when absent). "0000" is rejected.
func ParseUCIMove(s string) (start, end Square, promo PieceKind, err error) {
	s = strings.TrimSpace(strings.ToLower(s))
	if len(s) < 4 || len(s) > 5 {
		return NoSquare, NoSquare, NoKind, fmt.Errorf("%w: %q", ErrInvalidMove, s)
	}
	if start, err = ParseSquare(s[0:2]); err != nil {
		return NoSquare, NoSquare, NoKind, fmt.Errorf("%w: %q: %w", ErrInvalidMove, s, err)
	}
	if end, err = ParseSquare(s[2:4]); err != nil {
		return NoSquare, NoSquare, NoKind, fmt.Errorf("%w: %q: %w", ErrInvalidMove, s, err)
	}
	if len(s) == 5 {
		k, ok := KindFromLetter(s[4])
		if !ok || k == Pawn || k == King {
			return NoSquare, NoSquare, NoKind, fmt.Errorf("%w: bad promotion piece in %q", ErrInvalidMove, s)
		}
		promo = k
	}
	return start, end, promo, nil
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
