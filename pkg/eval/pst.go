package eval

import "github.com/kvasari/gambit/pkg/board"

// pst holds the combined value+placement tables for one piece kind, indexed by board.Square
// in White's frame of reference. Black looks up pst[sq^56].
type pst struct {
	mg, eg [64]Score
}

var pieceTables [7]pst

func init() {
	build := func(kind board.Piece, valueMG, valueEG Score, mg, eg grid) {
		var t pst
		for sq := board.ZeroSquare; sq < board.NumSquares; sq++ {
			row := 7 - int(sq.Rank())
			col := 7 - int(sq.File()) // File: FileH=0..FileA=7, so column 'a' (leftmost) is File=7
			t.mg[sq] = valueMG + Score(mg[row][col])
			t.eg[sq] = valueEG + Score(eg[row][col])
		}
		pieceTables[kind] = t
	}

	build(board.Pawn, pieceValueMG[board.Pawn], pieceValueEG[board.Pawn], pawnPST_MG, pawnPST_EG)
	build(board.Knight, pieceValueMG[board.Knight], pieceValueEG[board.Knight], knightPST_MG, knightPST_EG)
	build(board.Bishop, pieceValueMG[board.Bishop], pieceValueEG[board.Bishop], bishopPST_MG, bishopPST_EG)
	build(board.Rook, pieceValueMG[board.Rook], pieceValueEG[board.Rook], rookPST_MG, rookPST_EG)
	build(board.Queen, pieceValueMG[board.Queen], pieceValueEG[board.Queen], queenPST_MG, queenPST_EG)
	build(board.King, 0, 0, kingPST_MG, kingPST_EG)
}

// pieceSquareValue returns the (middlegame, endgame) value of a piece of the given color on
// the given square, combining nominal material and placement.
func pieceSquareValue(c board.Color, p board.Piece, sq board.Square) (Score, Score) {
	if c == board.Black {
		sq ^= 56
	}
	t := pieceTables[p]
	return t.mg[sq], t.eg[sq]
}

// Phase returns the game phase in [0, 24]: 24 at the start of the game, 0 with only kings
// and pawns left. Used to interpolate between middlegame and endgame evaluation terms.
func Phase(pos *board.Position) int {
	phase := 0
	for _, c := range []board.Color{board.White, board.Black} {
		for _, p := range []board.Piece{board.Knight, board.Bishop, board.Rook, board.Queen} {
			phase += pos.Piece(c, p).PopCount() * phaseWeight[p]
		}
	}
	if phase > maxPhase {
		phase = maxPhase
	}
	return phase
}
