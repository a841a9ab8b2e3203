package eval

import "github.com/kvasari/gambit/pkg/board"

// threatTerms holds the middlegame/endgame threats-and-control contribution for one color:
// attacks this color's pieces make on the opponent.
type threatTerms struct {
	mg, eg Score
}

var centerSquares = []board.Square{board.D4, board.D5, board.E4, board.E5}

func evaluateThreats(pos *board.Position, c board.Color) threatTerms {
	var t threatTerms
	opp := c.Opponent()

	// Attacks on enemy pieces, deduplicated per target square.
	for _, piece := range []board.Piece{board.Pawn, board.Knight, board.Bishop, board.Rook, board.Queen, board.King} {
		for _, sq := range pos.Piece(opp, piece).ToSquares() {
			if len(FindCapture(pos, c, sq)) > 0 {
				t.mg += attackOnPieceBonus[piece]
				t.eg += attackOnPieceBonus[piece]
			}
		}
	}

	// Attacks on the enemy king's square by minors/majors.
	kingSq := pos.KingSquare(opp)
	for _, placement := range FindCapture(pos, c, kingSq) {
		if placement.Piece == board.Knight || placement.Piece == board.Bishop ||
			placement.Piece == board.Rook || placement.Piece == board.Queen {
			t.mg += attackOnKingBonus[placement.Piece]
			t.eg += attackOnKingBonus[placement.Piece]
		}
	}

	// Center control.
	for _, sq := range centerSquares {
		if color, _, ok := pos.Square(sq); ok && color == c {
			t.mg += centerControlBonus
			t.eg += centerControlBonus
		}
	}

	// Absolute pins against the enemy king: a piece pinned by one of c's rooks, bishops or
	// queens cannot move without exposing its king, so it is worth less than its free value.
	for _, pin := range FindPins(pos, opp, board.King) {
		if _, piece, ok := pos.Square(pin.Pinned); ok {
			t.mg += pinnedPieceBonus[piece]
			t.eg += pinnedPieceBonus[piece]
		}
	}

	return t
}
