package gamestate

import "strings"

// Board is the 8x8 grid. Board[row][col], row 0 = rank 8.
type Board [8][8]Piece

var backRank = [8]PieceKind{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}

// StartingBoard returns the standard initial setup.
func StartingBoard() Board {
	var b Board
	for col, k := range backRank {
		b[0][col] = NewPiece(Black, k)
		b[1][col] = NewPiece(Black, Pawn)
		b[6][col] = NewPiece(White, Pawn)
		b[7][col] = NewPiece(White, k)
	}
	return b
}

// At returns the content of sq. Off-board squares read as Empty.
func (b *Board) At(sq Square) Piece {
	if !sq.Valid() {
		return Empty
	}
	return b[sq.Row][sq.Col]
}

func (b *Board) set(sq Square, p Piece) { b[sq.Row][sq.Col] = p }

// String draws the grid with two-character piece codes, rank 8 on top.
func (b *Board) String() string {
	var sb strings.Builder
	for row := 0; row < 8; row++ {
		sb.WriteByte('8' - byte(row))
		for col := 0; col < 8; col++ {
			sb.WriteByte(' ')
			sb.WriteString(b[row][col].Code())
		}
		sb.WriteByte('\n')
	}
	sb.WriteString("  a  b  c  d  e  f  g  h\n")
	return sb.String()
}

// CastlingRights holds the four castling flags.
type CastlingRights struct {
	WhiteKingSide  bool
	WhiteQueenSide bool
	BlackKingSide  bool
	BlackQueenSide bool
}

// AllCastlingRights is the set held at the start of a game.
var AllCastlingRights = CastlingRights{true, true, true, true}

// KingSide reports the king-side right for c.
func (cr CastlingRights) KingSide(c Color) bool {
	if c == White {
		return cr.WhiteKingSide
	}
	return cr.BlackKingSide
}

// QueenSide reports the queen-side right for c.
func (cr CastlingRights) QueenSide(c Color) bool {
	if c == White {
		return cr.WhiteQueenSide
	}
	return cr.BlackQueenSide
}

func (cr *CastlingRights) clear(c Color) {
	if c == White {
		cr.WhiteKingSide, cr.WhiteQueenSide = false, false
	} else {
		cr.BlackKingSide, cr.BlackQueenSide = false, false
	}
}

// revokeRookSquare drops the right tied to a rook home square, if sq is one.
func (cr *CastlingRights) revokeRookSquare(sq Square) {
	switch sq {
	case Sq(7, 7):
		cr.WhiteKingSide = false
	case Sq(7, 0):
		cr.WhiteQueenSide = false
	case Sq(0, 7):
		cr.BlackKingSide = false
	case Sq(0, 0):
		cr.BlackQueenSide = false
	}
}

// String renders the rights in FEN form ("KQkq", "-").
func (cr CastlingRights) String() string {
	var sb strings.Builder
	if cr.WhiteKingSide {
		sb.WriteByte('K')
	}
	if cr.WhiteQueenSide {
		sb.WriteByte('Q')
	}
	if cr.BlackKingSide {
		sb.WriteByte('k')
	}
	if cr.BlackQueenSide {
		sb.WriteByte('q')
	}
	if sb.Len() == 0 {
		return "-"
	}
	return sb.String()
}

// homeRow returns the back-rank row for c.
func homeRow(c Color) int {
	if c == White {
		return 7
	}
	return 0
}

// pawnDir returns the row delta of a pawn advance for c.
func pawnDir(c Color) int {
	if c == White {
		return -1
	}
	return 1
}

// promotionRow returns the farthest row from c's starting side.
func promotionRow(c Color) int {
	if c == White {
		return 0
	}
	return 7
}
