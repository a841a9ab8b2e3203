package eval

import "github.com/kvasari/gambit/pkg/board"

// pawnTerms holds the middlegame/endgame pawn-structure contribution for one color.
type pawnTerms struct {
	mg, eg Score
}

// evaluatePawns scores doubled, isolated, connected, passed and backward pawns for one color.
func evaluatePawns(pos *board.Position, c board.Color) pawnTerms {
	own := pos.Piece(c, board.Pawn)
	opp := pos.Piece(c.Opponent(), board.Pawn)

	var t pawnTerms

	for f := board.ZeroFile; f < board.NumFiles; f++ {
		n := (own & board.BitFile(f)).PopCount()
		if n >= 2 {
			t.mg -= doubledPawnPenalty * Score(n-1)
			t.eg -= doubledPawnPenalty * Score(n-1)
		}
	}

	squares := own.ToSquares()
	for _, sq := range squares {
		f := sq.File()

		adjFiles := adjacentFileMask(f)
		hasOwnAdjacent := own&adjFiles != 0

		if !hasOwnAdjacent {
			if opp&board.BitFile(f) != 0 && own&board.BitFile(f) == board.BitMask(sq) {
				t.mg -= isolatedSemiOpenPenalty
				t.eg -= isolatedSemiOpenPenalty
			} else {
				t.mg -= isolatedPawnPenalty
				t.eg -= isolatedPawnPenalty
			}
		} else {
			t.mg += connectedPawnBonus
			t.eg += connectedPawnBonus
		}

		if isPassed(pos, c, sq) {
			rel := relativeRank(c, sq.Rank())
			if isDefended(pos, c, sq) {
				t.mg += passedPawnDefendedBonusMG[rel]
				t.eg += passedPawnDefendedBonusEG[rel]
			} else {
				t.mg += passedPawnBonusMG[rel]
				t.eg += passedPawnBonusEG[rel]
			}
		}

		if !hasOwnAdjacent {
			continue // cannot also be backward in a meaningful sense; isolated dominates
		}
		if isBackward(pos, c, sq) {
			t.mg -= backwardPawnPenalty
			t.eg -= backwardPawnPenalty
		}
	}

	return t
}

func adjacentFileMask(f board.File) board.Bitboard {
	var mask board.Bitboard
	if f > board.ZeroFile {
		mask |= board.BitFile(f - 1)
	}
	if f < board.NumFiles-1 {
		mask |= board.BitFile(f + 1)
	}
	return mask
}

// relativeRank returns the pawn's rank counted from its own back rank, 1 (own 2nd rank) to 6
// (one step from promotion). 0, the own back rank, never holds a pawn.
func relativeRank(c board.Color, r board.Rank) int {
	if c == board.White {
		return int(r)
	}
	return int(board.Rank8) - int(r)
}

// isPassed reports whether the pawn at sq has no enemy pawn on its own or adjacent files,
// anywhere ahead of it.
func isPassed(pos *board.Position, c board.Color, sq board.Square) bool {
	opp := pos.Piece(c.Opponent(), board.Pawn)
	files := board.BitFile(sq.File()) | adjacentFileMask(sq.File())

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
	return opp&files&ahead == 0
}

// isDefended reports whether sq is defended by an own pawn.
func isDefended(pos *board.Position, c board.Color, sq board.Square) bool {
	own := pos.Piece(c, board.Pawn)
	return board.PawnCaptureboard(c.Opponent(), board.BitMask(sq))&own != 0
}

// isBackward reports whether the pawn at sq has no own-pawn supporter on an adjacent file
// behind or level with it, and its forward square is attacked by an enemy pawn.
func isBackward(pos *board.Position, c board.Color, sq board.Square) bool {
	own := pos.Piece(c, board.Pawn)
	adjFiles := adjacentFileMask(sq.File())

	var behind board.Bitboard
	if c == board.White {
		for r := board.ZeroRank; r <= sq.Rank(); r++ {
			behind |= board.BitRank(r)
		}
	} else {
		for r := sq.Rank(); r < board.NumRanks; r++ {
			behind |= board.BitRank(r)
		}
	}
	if own&adjFiles&behind != 0 {
		return false
	}

	var forward board.Bitboard
	if c == board.White && sq.Rank() < board.Rank8 {
		forward = board.BitMask(board.NewSquare(sq.File(), sq.Rank()+1))
	} else if c == board.Black && sq.Rank() > board.Rank1 {
		forward = board.BitMask(board.NewSquare(sq.File(), sq.Rank()-1))
	}
	if forward == 0 {
		return false
	}
	oppPawns := pos.Piece(c.Opponent(), board.Pawn)
	return board.PawnCaptureboard(c.Opponent(), oppPawns)&forward != 0
}
