package gamestate

import (
	"errors"
	"fmt"
)

// ErrInvalidSquare is returned for coordinates outside the board.
var ErrInvalidSquare = errors.New("invalid square")

// Square addresses a board cell. Row 0 is black's back rank (rank 8), row 7 is
// white's back rank (rank 1); column 0 is the a-file.
type Square struct {
	Row int
	Col int
}

// NoSquare marks an absent square, e.g. no en-passant target.
var NoSquare = Square{Row: -1, Col: -1}

// Sq builds a square from row and column.
func Sq(row, col int) Square { return Square{Row: row, Col: col} }

// Valid reports whether the square lies on the board.
func (s Square) Valid() bool {
	return s.Row >= 0 && s.Row < 8 && s.Col >= 0 && s.Col < 8
}

// Offset returns the square dr rows and dc columns away. The result may be off-board.
func (s Square) Offset(dr, dc int) Square { return Square{Row: s.Row + dr, Col: s.Col + dc} }

// File returns the file letter ('a'..'h').
func (s Square) File() byte { return 'a' + byte(s.Col) }

// Rank returns the rank digit ('1'..'8').
func (s Square) Rank() byte { return '8' - byte(s.Row) }

// String renders algebraic coordinates ("e4"); NoSquare and off-board squares render as "-".
func (s Square) String() string {
	if !s.Valid() {
		return "-"
	}
	return string([]byte{s.File(), s.Rank()})
}

// ParseSquare decodes algebraic coordinates such as "e4".
func ParseSquare(str string) (Square, error) {
	if len(str) != 2 {
		return NoSquare, fmt.Errorf("%w: %q", ErrInvalidSquare, str)
	}
	file, rank := str[0], str[1]
	if file < 'a' || file > 'h' || rank < '1' || rank > '8' {
		return NoSquare, fmt.Errorf("%w: %q", ErrInvalidSquare, str)
	}
	return Square{Row: int('8' - rank), Col: int(file - 'a')}, nil
}
