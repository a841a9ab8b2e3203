package eval

import "github.com/kvasari/gambit/pkg/board"

// kingTerms holds the middlegame/endgame king-safety and activity contribution for one color.
type kingTerms struct {
	mg, eg Score
}

func evaluateKing(pos *board.Position, c board.Color, fullmoves int, hasCastled bool) kingTerms {
	var t kingTerms

	sq := pos.KingSquare(c)
	f := sq.File()

	// Pawn shield: only relevant once the king has committed to a wing. File is standard
	// (a=0..h=7) here regardless of the board package's internal h1=0 bit numbering.
	standardFile := 7 - int(f)
	if standardFile <= 2 || standardFile >= 5 {
		t.mg -= pawnShieldPenalty * Score(missingShieldPawns(pos, c, sq))
	}

	// King attack zone.
	zone := board.KingAttackboard(sq) | board.BitMask(sq)
	attackers := 0
	var weighted int
	opp := c.Opponent()
	for piece, weight := range kingZoneAttackWeight {
		for _, from := range pos.Piece(opp, piece).ToSquares() {
			hits := (board.Attackboard(pos.Rotated(), from, piece) & zone).PopCount()
			if hits > 0 {
				attackers++
				weighted += hits * weight
			}
		}
	}
	if attackers >= len(attackerCountMultiplier) {
		attackers = len(attackerCountMultiplier) - 1
	}
	t.mg -= Score(weighted*attackerCountMultiplier[attackers]) / 100

	// King activity in the endgame: reward centralization once the game has progressed.
	if fullmoves > kingActivityFullmoveGate {
		t.eg += kingActivityScale * Score(7-manhattanToCenter(sq))
	}

	// Direct attacks on the opposing king's square by minors/majors.
	oppKing := pos.KingSquare(opp)
	for _, piece := range []board.Piece{board.Knight, board.Bishop, board.Rook, board.Queen} {
		for _, from := range pos.Piece(c, piece).ToSquares() {
			if board.Attackboard(pos.Rotated(), from, piece).IsSet(oppKing) {
				t.mg += directKingAttackBonus
			}
		}
	}

	// Miscellaneous placement terms.
	switch sq {
	case board.D4, board.D5, board.E4, board.E5:
		t.mg -= kingCenterSquarePenalty
	case board.G1, board.C1, board.G8, board.C8:
		t.mg += kingCastledSquareBonus
	}

	home := board.E1
	if c == board.Black {
		home = board.E8
	}
	if sq != home && !hasCastled && pos.Castling()&homeCastlingRights(c) != 0 {
		t.mg -= kingLostRightsPenalty
	}

	trapped := [4]board.Square{board.F1, board.F2, board.D1, board.D2}
	if c == board.Black {
		trapped = [4]board.Square{board.F8, board.F7, board.D8, board.D7}
	}
	for _, ts := range trapped {
		if sq == ts {
			t.mg -= kingTrappedPenalty
			break
		}
	}

	return t
}

func homeCastlingRights(c board.Color) board.Castling {
	return board.KingSideCastleRight(c) | board.QueenSideCastleRight(c)
}

// missingShieldPawns counts how many of the three second-rank squares on the king's wing lack
// an own pawn still on its home rank.
func missingShieldPawns(pos *board.Position, c board.Color, kingSq board.Square) int {
	homeRank := board.Rank2
	if c == board.Black {
		homeRank = board.Rank7
	}

	own := pos.Piece(c, board.Pawn)
	missing := 0
	for df := -1; df <= 1; df++ {
		f := int(kingSq.File()) + df
		if f < 0 || f > 7 {
			continue
		}
		sq := board.NewSquare(board.File(f), homeRank)
		if !own.IsSet(sq) {
			missing++
		}
	}
	return missing
}

// manhattanToCenter returns the taxicab distance from sq to the nearest of the four central
// squares (d4, d5, e4, e5), in the range [0, 6].
func manhattanToCenter(sq board.Square) int {
	f, r := int(sq.File()), int(sq.Rank())
	return minAbs(f-3, f-4) + minAbs(r-3, r-4)
}

func minAbs(a, b int) int {
	if a < 0 {
		a = -a
	}
	if b < 0 {
		b = -b
	}
	if a < b {
		return a
	}
	return b
}
