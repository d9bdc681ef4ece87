package gamestate

type direction struct{ dr, dc int }

var (
	rookDirs   = []direction{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}
	bishopDirs = []direction{{-1, -1}, {-1, 1}, {1, -1}, {1, 1}}
	queenDirs  = append(append([]direction{}, rookDirs...), bishopDirs...)
	kingDirs   = queenDirs
	knightDirs = []direction{{-2, -1}, {-2, 1}, {-1, -2}, {-1, 2}, {1, -2}, {1, 2}, {2, -1}, {2, 1}}
)

// GenerateLegalMoves returns every move for the side to move that does not leave
// its own king in check, and refreshes the checkmate and stalemate flags.
func (gs *GameState) GenerateLegalMoves() []Move {
	us := gs.SideToMove()
	pseudo := gs.PseudoLegalMoves()
	legal := pseudo[:0]
	for _, m := range pseudo {
		gs.ApplyMove(m)
		safe := !gs.IsSquareAttacked(gs.kings[us], us.Opponent())
		gs.UndoLastMove()
		if safe {
			legal = append(legal, m)
		}
	}

	gs.checkmate, gs.stalemate = false, false
	if len(legal) == 0 {
		if gs.InCheck() {
			gs.checkmate = true
		} else {
			gs.stalemate = true
		}
	}
	return legal
}

// PseudoLegalMoves returns moves that follow each piece's movement pattern and
// board occupancy without regard to the mover's king. Castling moves are
// included only when their own conditions (rights, empty path, unattacked
// king path) hold.
func (gs *GameState) PseudoLegalMoves() []Move {
	us := gs.SideToMove()
	moves := make([]Move, 0, 48)
	for row := 0; row < 8; row++ {
		for col := 0; col < 8; col++ {
			p := gs.board[row][col]
			if p.IsEmpty() || p.Color != us {
				continue
			}
			sq := Sq(row, col)
			switch p.Kind {
			case Pawn:
				moves = gs.pawnMoves(sq, us, moves)
			case Knight:
				moves = gs.stepMoves(sq, us, knightDirs, moves)
			case Bishop:
				moves = gs.slideMoves(sq, us, bishopDirs, moves)
			case Rook:
				moves = gs.slideMoves(sq, us, rookDirs, moves)
			case Queen:
				moves = gs.slideMoves(sq, us, queenDirs, moves)
			case King:
				moves = gs.stepMoves(sq, us, kingDirs, moves)
				moves = gs.castleMoves(sq, us, moves)
			}
		}
	}
	return moves
}

func (gs *GameState) pawnMoves(sq Square, us Color, moves []Move) []Move {
	dir := pawnDir(us)
	one := sq.Offset(dir, 0)
	if one.Valid() && gs.board.At(one).IsEmpty() {
		moves = append(moves, newMove(sq, one, &gs.board, false, false))
		two := sq.Offset(2*dir, 0)
		if sq.Row == homeRow(us)+dir && gs.board.At(two).IsEmpty() {
			moves = append(moves, newMove(sq, two, &gs.board, false, false))
		}
	}
	for _, dc := range [2]int{-1, 1} {
		to := sq.Offset(dir, dc)
		if !to.Valid() {
			continue
		}
		target := gs.board.At(to)
		switch {
		case !target.IsEmpty() && target.Color != us:
			moves = append(moves, newMove(sq, to, &gs.board, false, false))
		case to == gs.enPassant && target.IsEmpty():
			moves = append(moves, newMove(sq, to, &gs.board, true, false))
		}
	}
	return moves
}

func (gs *GameState) stepMoves(sq Square, us Color, dirs []direction, moves []Move) []Move {
	for _, d := range dirs {
		to := sq.Offset(d.dr, d.dc)
		if !to.Valid() {
			continue
		}
		if target := gs.board.At(to); target.IsEmpty() || target.Color != us {
			moves = append(moves, newMove(sq, to, &gs.board, false, false))
		}
	}
	return moves
}

func (gs *GameState) slideMoves(sq Square, us Color, dirs []direction, moves []Move) []Move {
	for _, d := range dirs {
		for to := sq.Offset(d.dr, d.dc); to.Valid(); to = to.Offset(d.dr, d.dc) {
			target := gs.board.At(to)
			if target.IsEmpty() {
				moves = append(moves, newMove(sq, to, &gs.board, false, false))
				continue
			}
			if target.Color != us {
				moves = append(moves, newMove(sq, to, &gs.board, false, false))
			}
			break
		}
	}
	return moves
}

func (gs *GameState) castleMoves(sq Square, us Color, moves []Move) []Move {
	row := homeRow(us)
	if sq != Sq(row, 4) {
		return moves
	}
	them := us.Opponent()
	if gs.IsSquareAttacked(sq, them) {
		return moves
	}
	rook := NewPiece(us, Rook)
	if gs.castling.KingSide(us) && gs.board[row][7] == rook &&
		gs.board[row][5].IsEmpty() && gs.board[row][6].IsEmpty() &&
		!gs.IsSquareAttacked(Sq(row, 5), them) && !gs.IsSquareAttacked(Sq(row, 6), them) {
		moves = append(moves, newMove(sq, Sq(row, 6), &gs.board, false, true))
	}
	if gs.castling.QueenSide(us) && gs.board[row][0] == rook &&
		gs.board[row][1].IsEmpty() && gs.board[row][2].IsEmpty() && gs.board[row][3].IsEmpty() &&
		!gs.IsSquareAttacked(Sq(row, 3), them) && !gs.IsSquareAttacked(Sq(row, 2), them) {
		moves = append(moves, newMove(sq, Sq(row, 2), &gs.board, false, true))
	}
	return moves
}

// InCheck reports whether the side to move is attacked.
func (gs *GameState) InCheck() bool {
	us := gs.SideToMove()
	return gs.IsSquareAttacked(gs.kings[us], us.Opponent())
}

// IsSquareAttacked reports whether any piece of color by could capture on sq.
// Pawns attack diagonally only; castling never attacks.
func (gs *GameState) IsSquareAttacked(sq Square, by Color) bool {
	if !sq.Valid() {
		return false
	}
	// A pawn of color by attacks sq from one row behind it, relative to its advance.
	pawn := NewPiece(by, Pawn)
	back := -pawnDir(by)
	if gs.board.At(sq.Offset(back, -1)) == pawn || gs.board.At(sq.Offset(back, 1)) == pawn {
		return true
	}
	knight := NewPiece(by, Knight)
	for _, d := range knightDirs {
		if gs.board.At(sq.Offset(d.dr, d.dc)) == knight {
			return true
		}
	}
	king := NewPiece(by, King)
	for _, d := range kingDirs {
		if gs.board.At(sq.Offset(d.dr, d.dc)) == king {
			return true
		}
	}
	queen := NewPiece(by, Queen)
	if gs.slidingAttack(sq, rookDirs, NewPiece(by, Rook), queen) {
		return true
	}
	return gs.slidingAttack(sq, bishopDirs, NewPiece(by, Bishop), queen)
}

func (gs *GameState) slidingAttack(sq Square, dirs []direction, slider, queen Piece) bool {
	for _, d := range dirs {
		for to := sq.Offset(d.dr, d.dc); to.Valid(); to = to.Offset(d.dr, d.dc) {
			p := gs.board.At(to)
			if p.IsEmpty() {
				continue
			}
			if p == slider || p == queen {
				return true
			}
			break
		}
	}
	return false
}
