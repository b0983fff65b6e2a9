package board

import (
	"github.com/4g3nt81lly/smartchess/position"
)

var (
	lateralDirections  = [4][2]int8{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}
	diagonalDirections = [4][2]int8{{1, 1}, {1, -1}, {-1, 1}, {-1, -1}}

	knightOffsets = [8][2]int8{
		{1, 2}, {2, 1}, {2, -1}, {1, -2},
		{-1, -2}, {-2, -1}, {-2, 1}, {-1, 2},
	}
	kingOffsets = [8][2]int8{
		{1, 0}, {1, 1}, {0, 1}, {-1, 1},
		{-1, 0}, {-1, -1}, {0, -1}, {1, -1},
	}
)

// pawnDirection is the forward rank delta for the side's pawns.
func pawnDirection(s Side) int8 {
	if s == SideWhite {
		return 1
	}
	return -1
}

// promotionRank is the farthest rank for the side's pawns.
func promotionRank(s Side) int8 {
	if s == SideWhite {
		return 8
	}
	return 1
}

// PseudoLegalDestinations enumerates the squares reachable by the piece's
// raw movement pattern, respecting blockers and board edges but ignoring
// whether the mover's own king ends up attacked. enPassant is the game's
// outstanding en-passant target, position.None when there is none.
func (p *Piece) PseudoLegalDestinations(b *Board, enPassant position.Pos) []position.Pos {
	switch p.Type {
	case PiecePawn:
		return p.pawnDestinations(b, enPassant)
	case PieceBishop:
		return p.slideDestinations(b, diagonalDirections[:])
	case PieceRook:
		return p.slideDestinations(b, lateralDirections[:])
	case PieceQueen:
		return append(
			p.slideDestinations(b, lateralDirections[:]),
			p.slideDestinations(b, diagonalDirections[:])...,
		)
	case PieceKnight:
		return p.offsetDestinations(b, knightOffsets[:])
	case PieceKing:
		return p.offsetDestinations(b, kingOffsets[:])
	default:
		return nil
	}
}

// slideDestinations walks each direction until the first occupied square,
// including it only when it holds an enemy piece.
func (p *Piece) slideDestinations(b *Board, dirs [][2]int8) []position.Pos {
	var dsts []position.Pos
	for _, d := range dirs {
		for to, ok := p.Pos.Offset(d[0], d[1]); ok; to, ok = to.Offset(d[0], d[1]) {
			occupant := b.PieceAt(to)
			if occupant == nil {
				dsts = append(dsts, to)
				continue
			}
			if occupant.Side != p.Side {
				dsts = append(dsts, to)
			}
			break
		}
	}
	return dsts
}

// offsetDestinations applies a fixed offset table filtered by board bounds
// and friendly occupancy.
func (p *Piece) offsetDestinations(b *Board, offsets [][2]int8) []position.Pos {
	var dsts []position.Pos
	for _, d := range offsets {
		to, ok := p.Pos.Offset(d[0], d[1])
		if !ok {
			continue
		}
		if occupant := b.PieceAt(to); occupant != nil && occupant.Side == p.Side {
			continue
		}
		dsts = append(dsts, to)
	}
	return dsts
}

func (p *Piece) pawnDestinations(b *Board, enPassant position.Pos) []position.Pos {
	var dsts []position.Pos
	dir := pawnDirection(p.Side)

	// single step, then the initial double step through two empty squares
	if to, ok := p.Pos.Offset(0, dir); ok && b.PieceAt(to) == nil {
		dsts = append(dsts, to)
		if to2, ok2 := to.Offset(0, dir); ok2 && !p.HasMoved() && b.PieceAt(to2) == nil {
			dsts = append(dsts, to2)
		}
	}

	// diagonal captures, including the en-passant target square
	for _, df := range [2]int8{-1, 1} {
		to, ok := p.Pos.Offset(df, dir)
		if !ok {
			continue
		}
		if occupant := b.PieceAt(to); occupant != nil && occupant.Side != p.Side {
			dsts = append(dsts, to)
		} else if occupant == nil && to == enPassant {
			dsts = append(dsts, to)
		}
	}
	return dsts
}

// IsAttacking reports whether the piece attacks target with its raw pattern,
// without legality filtering. Pawns attack their capture diagonals only; a
// pawn's forward pushes never attack anything.
func (p *Piece) IsAttacking(b *Board, target position.Pos) bool {
	if p.Type == PiecePawn {
		dir := pawnDirection(p.Side)
		for _, df := range [2]int8{-1, 1} {
			if to, ok := p.Pos.Offset(df, dir); ok && to == target {
				return true
			}
		}
		return false
	}
	for _, to := range p.PseudoLegalDestinations(b, position.None) {
		if to == target {
			return true
		}
	}
	return false
}

// LegalMoves derives the piece's legal movements: one Movement of the
// correct kind per pseudo-legal destination (with promotion fan-out), plus
// castling for the king, minus every candidate whose simulated application
// leaves the mover's own king attacked.
func (p *Piece) LegalMoves(b *Board, enPassant position.Pos) []Movement {
	var mvs []Movement
	for _, candidate := range p.candidateMovements(b, enPassant) {
		bb := b.Clone()
		if err := bb.Apply(candidate); err != nil {
			continue
		}
		if bb.IsKingChecked(p.Side) {
			continue
		}
		mvs = append(mvs, candidate)
	}
	return mvs
}

func (p *Piece) candidateMovements(b *Board, enPassant position.Pos) []Movement {
	var mvs []Movement
	for _, to := range p.PseudoLegalDestinations(b, enPassant) {
		mv := Movement{
			Kind:  MovementMove,
			Side:  p.Side,
			Piece: p.Type,
			From:  p.Pos,
			To:    to,
		}
		if victim := b.PieceAt(to); victim != nil {
			mv.Kind = MovementCapture
			mv.Captured = victim.Type
			mv.CapturedFrom = to
		} else if p.Type == PiecePawn && to == enPassant {
			mv.Kind = MovementEnPassant
			mv.Captured = PiecePawn
			mv.CapturedFrom = position.Pos{File: to.File, Rank: p.Pos.Rank}
		}

		if p.Type == PiecePawn && to.Rank == promotionRank(p.Side) {
			for _, prom := range PawnPromoteCandidates {
				pmv := mv
				pmv.Promote = prom
				mvs = append(mvs, pmv)
			}
			continue
		}
		mvs = append(mvs, mv)
	}
	if p.Type == PieceKing {
		mvs = append(mvs, b.castlingMovements(p)...)
	}
	return mvs
}

// castlingMovements builds the castle movements the king is eligible for:
// king and the wing's rook unmoved, the squares between them empty, the
// king not in check, and no square on the king's path attacked.
func (b *Board) castlingMovements(king *Piece) []Movement {
	if king.HasMoved() {
		return nil
	}
	rank := king.Pos.Rank
	enemy := king.Side.Opposite()
	if b.IsSquareAttacked(king.Pos, enemy) {
		return nil
	}

	var mvs []Movement
	wings := []struct {
		rookFile, kingTo, rookTo int8
	}{
		{rookFile: 8, kingTo: 7, rookTo: 6}, // kingside
		{rookFile: 1, kingTo: 3, rookTo: 4}, // queenside
	}
	for _, w := range wings {
		rook := b.PieceAt(position.Pos{File: w.rookFile, Rank: rank})
		if rook == nil || rook.Type != PieceRook || rook.Side != king.Side || rook.HasMoved() {
			continue
		}
		if !b.pathEmpty(rank, king.Pos.File, w.rookFile) {
			continue
		}
		if !b.pathSafe(rank, king.Pos.File, w.kingTo, enemy) {
			continue
		}
		mvs = append(mvs, Movement{
			Kind:     MovementCastle,
			Side:     king.Side,
			Piece:    PieceKing,
			From:     king.Pos,
			To:       position.Pos{File: w.kingTo, Rank: rank},
			RookFrom: rook.Pos,
			RookTo:   position.Pos{File: w.rookTo, Rank: rank},
		})
	}
	return mvs
}

// pathEmpty reports whether the squares strictly between two files on a
// rank are all empty.
func (b *Board) pathEmpty(rank, fromFile, toFile int8) bool {
	lo, hi := fromFile, toFile
	if lo > hi {
		lo, hi = hi, lo
	}
	for f := lo + 1; f < hi; f++ {
		if b.PieceAt(position.Pos{File: f, Rank: rank}) != nil {
			return false
		}
	}
	return true
}

// pathSafe reports whether every square the king transits, inclusive of the
// destination, is free of enemy attack.
func (b *Board) pathSafe(rank, fromFile, toFile int8, enemy Side) bool {
	step := int8(1)
	if toFile < fromFile {
		step = -1
	}
	for f := fromFile + step; ; f += step {
		if b.IsSquareAttacked(position.Pos{File: f, Rank: rank}, enemy) {
			return false
		}
		if f == toFile {
			return true
		}
	}
}

// LegalMoves enumerates every legal movement for the side in board scan
// order. The list is recomputed from scratch on every call.
func (b *Board) LegalMoves(s Side, enPassant position.Pos) []Movement {
	var mvs []Movement
	for _, p := range b.Pieces(s) {
		mvs = append(mvs, p.LegalMoves(b, enPassant)...)
	}
	return mvs
}

// LegalMovesFrom enumerates the legal movements of the piece at pos, if any.
func (b *Board) LegalMovesFrom(pos position.Pos, enPassant position.Pos) []Movement {
	p := b.PieceAt(pos)
	if p == nil {
		return nil
	}
	return p.LegalMoves(b, enPassant)
}
