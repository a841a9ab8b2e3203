package eval

import "github.com/kvasari/gambit/pkg/board"

// pieceTerms holds the middlegame/endgame contribution of rook, bishop-pair and knight
// heuristics for one color.
type pieceTerms struct {
	mg, eg Score
}

func evaluatePieces(pos *board.Position, c board.Color) pieceTerms {
	var t pieceTerms

	own := pos.Piece(c, board.Pawn)
	opp := pos.Piece(c.Opponent(), board.Pawn)

	seventhRank := board.Rank2
	if c == board.White {
		seventhRank = board.Rank7
	}

	for _, sq := range pos.Piece(c, board.Rook).ToSquares() {
		f := sq.File()
		if own&board.BitFile(f) == 0 {
			if opp&board.BitFile(f) == 0 {
				t.mg += rookOpenFileBonus
				t.eg += rookOpenFileBonus
			} else {
				t.mg += rookSemiOpenFileBonus
				t.eg += rookSemiOpenFileBonus
			}
		}
		if sq.Rank() == seventhRank {
			t.mg += rookSeventhRankBonus
			t.eg += rookSeventhRankBonus
		}
	}

	if pos.Piece(c, board.Bishop).PopCount() == 2 {
		t.mg += bishopPairBonus
		t.eg += bishopPairBonus
	}

	for _, sq := range pos.Piece(c, board.Knight).ToSquares() {
		if isKnightOutpost(pos, c, sq) {
			t.mg += knightOutpostBonus
			t.eg += knightOutpostBonus
		}
	}

	return t
}

// isKnightOutpost reports whether a knight at sq is on an advanced rank, supported by an own
// pawn from behind, and cannot be challenged by an enemy pawn advancing on an adjacent file.
func isKnightOutpost(pos *board.Position, c board.Color, sq board.Square) bool {
	if c == board.White && sq.Rank() < board.Rank4 {
		return false
	}
	if c == board.Black && sq.Rank() > board.Rank5 {
		return false
	}

	own := pos.Piece(c, board.Pawn)
	if board.PawnCaptureboard(c.Opponent(), board.BitMask(sq))&own == 0 {
		return false // not supported by an own pawn
	}

	opp := pos.Piece(c.Opponent(), board.Pawn)
	adjFiles := adjacentFileMask(sq.File())

	var ahead board.Bitboard
	if c == board.White {
		for r := sq.Rank() + 1; r < board.NumRanks; r++ {
			ahead |= board.BitRank(r)
		}
	} else {
		for r := board.ZeroRank; r < sq.Rank(); r++ {
			ahead |= board.BitRank(r)
		}
	}
	return opp&adjFiles&ahead == 0
}
