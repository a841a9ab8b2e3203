package eval

import (
	"context"

	"github.com/kvasari/gambit/pkg/board"
)

// Standard is the full tapered static evaluator: material, piece-square tables, pawn
// structure, rook/bishop/knight heuristics, king safety, threats and center control,
// interpolated between middlegame and endgame terms by Phase. Pure function of the position;
// does not mutate the board.
type Standard struct{}

func (Standard) Evaluate(ctx context.Context, b *board.Board) Score {
	pos := b.Position()
	turn := b.Turn()

	if term, ok := terminalScore(b); ok {
		return term
	}

	phase := Phase(pos)

	var mgTotal, egTotal Score
	for _, c := range []board.Color{board.White, board.Black} {
		sign := Score(1)
		if c == board.Black {
			sign = -1
		}

		mg, eg := materialAndPST(pos, c)

		pawns := evaluatePawns(pos, c)
		pieces := evaluatePieces(pos, c)
		king := evaluateKing(pos, c, b.FullMoves(), b.HasCastled(c))
		threats := evaluateThreats(pos, c)

		mg += pawns.mg + pieces.mg + king.mg + threats.mg
		eg += pawns.eg + pieces.eg + king.eg + threats.eg

		mgTotal += sign * mg
		egTotal += sign * eg
	}

	score := (mgTotal*Score(phase) + egTotal*Score(maxPhase-phase)) / Score(maxPhase)
	if turn == board.Black {
		score = -score
	}
	return score
}

// materialAndPST sums per-piece nominal value plus placement for one color.
func materialAndPST(pos *board.Position, c board.Color) (Score, Score) {
	var mg, eg Score
	for p := board.Pawn; p <= board.King; p++ {
		for _, sq := range pos.Piece(c, p).ToSquares() {
			m, e := pieceSquareValue(c, p, sq)
			mg += m
			eg += e
		}
	}
	return mg, eg
}

// terminalScore reports the evaluation for a position that is already game-over, from the
// side-to-move's perspective: checkmate is -Mate; stalemate, insufficient material and the
// fifty/seventy-five-move claims are 0. A result the board has already adjudicated is used as
// is; otherwise insufficient material and the absence of legal moves are checked directly, so
// Evaluate is safe even when called on a position the board has not yet adjudicated.
func terminalScore(b *board.Board) (Score, bool) {
	pos := b.Position()
	turn := b.Turn()

	switch b.Result().Reason {
	case board.Checkmate:
		return -Mate, true
	case board.Stalemate, board.Repetition3, board.Repetition5, board.NoProgress,
		board.SeventyFiveMoveRule, board.InsufficientMaterial:
		return ZeroScore, true
	}

	if pos.HasInsufficientMaterial() {
		return ZeroScore, true
	}
	if len(pos.LegalMoves(turn)) == 0 {
		if pos.IsChecked(turn) {
			return -Mate, true
		}
		return ZeroScore, true
	}
	return 0, false
}
