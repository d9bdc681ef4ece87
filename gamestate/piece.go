package gamestate

// Color identifies the side owning a piece.
type Color uint8

const (
	White Color = 0
	Black Color = 1
)

// Opponent returns the other side.
func (c Color) Opponent() Color { return 1 - c }

// Letter returns the color letter used in piece codes ("w" or "b").
func (c Color) Letter() byte {
	if c == White {
		return 'w'
	}
	return 'b'
}

func (c Color) String() string {
	if c == White {
		return "white"
	}
	return "black"
}

// PieceKind is a colorless piece type.
type PieceKind uint8

const (
	NoKind PieceKind = 0
	Pawn   PieceKind = 1
	Knight PieceKind = 2
	Bishop PieceKind = 3
	Rook   PieceKind = 4
	Queen  PieceKind = 5
	King   PieceKind = 6
)

var kindLetters = [7]byte{'-', 'P', 'N', 'B', 'R', 'Q', 'K'}

// Letter returns the upper-case piece letter (P, N, B, R, Q, K).
func (k PieceKind) Letter() byte {
	if k > King {
		return '-'
	}
	return kindLetters[k]
}

// KindFromLetter maps a piece letter (either case) to its kind.
func KindFromLetter(ch byte) (PieceKind, bool) {
	if ch >= 'a' && ch <= 'z' {
		ch -= 'a' - 'A'
	}
	for k := Pawn; k <= King; k++ {
		if kindLetters[k] == ch {
			return k, true
		}
	}
	return NoKind, false
}

// Piece is the content of a square: empty, or a (color, kind) pair.
// The zero value is the empty square.
type Piece struct {
	Kind  PieceKind
	Color Color
}

// Empty is the content of an unoccupied square.
var Empty = Piece{}

// NewPiece combines a color and a kind.
func NewPiece(c Color, k PieceKind) Piece { return Piece{Kind: k, Color: c} }

// IsEmpty reports whether the square holds no piece.
func (p Piece) IsEmpty() bool { return p.Kind == NoKind }

// Code returns the two-character piece code ("wN", "bQ") or "--" for an empty square.
func (p Piece) Code() string {
	if p.IsEmpty() {
		return "--"
	}
	return string([]byte{p.Color.Letter(), p.Kind.Letter()})
}

func (p Piece) String() string { return p.Code() }

// ParsePiece decodes a two-character piece code. "--" decodes to Empty.
func ParsePiece(code string) (Piece, bool) {
	if code == "--" {
		return Empty, true
	}
	if len(code) != 2 {
		return Empty, false
	}
	var c Color
	switch code[0] {
	case 'w':
		c = White
	case 'b':
		c = Black
	default:
		return Empty, false
	}
	if code[1] < 'A' || code[1] > 'Z' {
		return Empty, false
	}
	k, ok := KindFromLetter(code[1])
	if !ok {
		return Empty, false
	}
	return NewPiece(c, k), true
}

// fenChar converts a piece to its FEN letter: upper case for white, lower case for black.
func fenChar(p Piece) byte {
	ch := p.Kind.Letter()
	if p.Color == Black {
		ch += 'a' - 'A'
	}
	return ch
}

// pieceFromFEN converts a FEN letter to a piece.
func pieceFromFEN(ch byte) (Piece, bool) {
	k, ok := KindFromLetter(ch)
	if !ok {
		return Empty, false
	}
	if ch >= 'a' && ch <= 'z' {
		return NewPiece(Black, k), true
	}
	return NewPiece(White, k), true
}
