package search

import (
	"github.com/kvasari/gambit/pkg/board"
	"github.com/kvasari/gambit/pkg/eval"
)

// Move ordering places moves most likely to cause an early beta cutoff first, which is what
// makes alpha-beta pruning effective in practice. Buckets, highest priority first:
//
//  1. the transposition-table move for this position, if any
//  2. promotions, ranked by the piece promoted to
//  3. captures (and en passant), ranked by MVV-LVA
//  4. the two killer moves recorded for this ply
//  5. everything else, ranked by the history heuristic
const (
	ttMovePriority     board.MovePriority = 10_000_000
	promotionPriority  board.MovePriority = 9_500_000
	capturePriority    board.MovePriority = 9_000_000
	firstKillerPriority board.MovePriority = 8_000_000
	secondKillerPriority board.MovePriority = 7_900_000
)

// orderMoves returns a priority function ranking moves as described above. ttMove may be the
// zero Move if none is known.
func orderMoves(ttMove board.Move, ply int, killers *KillerTable, history *HistoryTable, turn board.Color) board.MovePriorityFn {
	var k1, k2 board.Move
	if killers != nil {
		k1, k2 = killers.Moves(ply)
	}

	fn := func(m board.Move) board.MovePriority {
		switch {
		case m.IsPromotion():
			return promotionPriority + board.MovePriority(eval.NominalValue(m.Promotion))
		case m.IsCapture():
			return capturePriority + board.MovePriority(eval.MVVLVA(m.Piece, m.Capture))
		case k1.Equals(m):
			return firstKillerPriority
		case k2.Equals(m):
			return secondKillerPriority
		case history != nil:
			return board.MovePriority(history.Score(turn, m))
		default:
			return 0
		}
	}
	if ttMove == (board.Move{}) {
		return fn
	}
	return board.First(ttMove, fn)
}

// noisyMoves reports whether m is a move quiescence search explores: captures (including en
// passant) and non-capture promotions. Quiet moves cannot swing a static evaluation enough to
// matter once the position has stopped changing material, so quiescence ignores them.
func noisyMoves(m board.Move) bool {
	return m.IsCapture() || (m.IsPromotion() && !m.IsCapture())
}
