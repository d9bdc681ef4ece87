package gamestate

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// StartFEN is the FEN string of the standard initial position.
const StartFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// ErrInvalidFEN is wrapped by every ParseFEN failure.
var ErrInvalidFEN = errors.New("invalid FEN")

// ParseFEN builds a game state from a FEN string. The halfmove and fullmove
// fields are optional. Positions without exactly one king per side are rejected.
func ParseFEN(fen string) (*GameState, error) {
	fields := strings.Fields(fen)
	if len(fields) < 4 {
		return nil, fmt.Errorf("%w: expected at least 4 fields, got %d", ErrInvalidFEN, len(fields))
	}
	gs := &GameState{enPassant: NoSquare, fullmoveNumber: 1}

	// 1. Piece placement, rank 8 first, which is row 0.
	ranks := strings.Split(fields[0], "/")
	if len(ranks) != 8 {
		return nil, fmt.Errorf("%w: expected 8 ranks, got %d", ErrInvalidFEN, len(ranks))
	}
	kingCount := [2]int{}
	for row, rank := range ranks {
		col := 0
		for i := 0; i < len(rank); i++ {
			ch := rank[i]
			if ch >= '1' && ch <= '8' {
				col += int(ch - '0')
				continue
			}
			p, ok := pieceFromFEN(ch)
			if !ok {
				return nil, fmt.Errorf("%w: unknown piece %q", ErrInvalidFEN, ch)
			}
			if col > 7 {
				return nil, fmt.Errorf("%w: rank %d overflows", ErrInvalidFEN, 8-row)
			}
			gs.board[row][col] = p
			if p.Kind == King {
				kingCount[p.Color]++
				gs.kings[p.Color] = Sq(row, col)
			}
			col++
		}
		if col != 8 {
			return nil, fmt.Errorf("%w: rank %d has %d files", ErrInvalidFEN, 8-row, col)
		}
	}
	if kingCount[White] != 1 || kingCount[Black] != 1 {
		return nil, fmt.Errorf("%w: need one king per side", ErrInvalidFEN)
	}

	// 2. Side to move
	switch fields[1] {
	case "w":
		gs.whiteToMove = true
	case "b":
		gs.whiteToMove = false
	default:
		return nil, fmt.Errorf("%w: side to move %q", ErrInvalidFEN, fields[1])
	}

	// 3. Castling rights
	if fields[2] != "-" {
		for i := 0; i < len(fields[2]); i++ {
			switch fields[2][i] {
			case 'K':
				gs.castling.WhiteKingSide = true
			case 'Q':
				gs.castling.WhiteQueenSide = true
			case 'k':
				gs.castling.BlackKingSide = true
			case 'q':
				gs.castling.BlackQueenSide = true
			default:
				return nil, fmt.Errorf("%w: castling field %q", ErrInvalidFEN, fields[2])
			}
		}
	}

	// 4. En passant target
	if fields[3] != "-" {
		sq, err := ParseSquare(fields[3])
		if err != nil {
			return nil, fmt.Errorf("%w: en passant: %w", ErrInvalidFEN, err)
		}
		if err := gs.checkEnPassant(sq); err != nil {
			return nil, err
		}
		gs.enPassant = sq
	}

	// 5-6. Clocks
	if len(fields) > 4 {
		n, err := strconv.Atoi(fields[4])
		if err != nil || n < 0 {
			return nil, fmt.Errorf("%w: halfmove clock %q", ErrInvalidFEN, fields[4])
		}
		gs.halfmoveClock = n
	}
	if len(fields) > 5 {
		n, err := strconv.Atoi(fields[5])
		if err != nil || n < 1 {
			return nil, fmt.Errorf("%w: fullmove number %q", ErrInvalidFEN, fields[5])
		}
		gs.fullmoveNumber = n
	}

	us := gs.SideToMove()
	if gs.IsSquareAttacked(gs.kings[us.Opponent()], us) {
		return nil, fmt.Errorf("%w: side not to move is in check", ErrInvalidFEN)
	}
	return gs, nil
}

// checkEnPassant accepts sq only if a pawn of the side not to move could have
// just double-pushed over it. Side to move must already be set.
func (gs *GameState) checkEnPassant(sq Square) error {
	row, pawnRow, them := 2, 3, Black
	if !gs.whiteToMove {
		row, pawnRow, them = 5, 4, White
	}
	if sq.Row != row {
		return fmt.Errorf("%w: en passant square %s on wrong rank", ErrInvalidFEN, sq)
	}
	if !gs.board.At(sq).IsEmpty() {
		return fmt.Errorf("%w: en passant square %s is occupied", ErrInvalidFEN, sq)
	}
	if gs.board.At(Sq(pawnRow, sq.Col)) != NewPiece(them, Pawn) {
		return fmt.Errorf("%w: no pawn passed over %s", ErrInvalidFEN, sq)
	}
	return nil
}

// MustParseFEN is ParseFEN for trusted constants; it panics on error.
func MustParseFEN(fen string) *GameState {
	gs, err := ParseFEN(fen)
	if err != nil {
		panic(err)
	}
	return gs
}

// FEN renders the position as a FEN string.
func (gs *GameState) FEN() string {
	var sb strings.Builder
	for row := 0; row < 8; row++ {
		empty := 0
		for col := 0; col < 8; col++ {
			p := gs.board[row][col]
			if p.IsEmpty() {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteByte('0' + byte(empty))
				empty = 0
			}
			sb.WriteByte(fenChar(p))
		}
		if empty > 0 {
			sb.WriteByte('0' + byte(empty))
		}
		if row < 7 {
			sb.WriteByte('/')
		}
	}
	if gs.whiteToMove {
		sb.WriteString(" w ")
	} else {
		sb.WriteString(" b ")
	}
	sb.WriteString(gs.castling.String())
	sb.WriteByte(' ')
	sb.WriteString(gs.enPassant.String())
	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(gs.halfmoveClock))
	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(gs.fullmoveNumber))
	return sb.String()
}
