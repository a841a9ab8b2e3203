package search

import (
	"context"

	"github.com/kvasari/gambit/pkg/board"
	"github.com/kvasari/gambit/pkg/eval"
	"github.com/seekerror/stdlib/pkg/util/contextx"
)

// maxQuiescencePly bounds how many plies of captures and promotions quiescence will chase past
// the frontier, avoiding pathological lines (e.g. repeated unfavorable recaptures) from running
// away before the position settles.
const maxQuiescencePly = 32

// quiescence extends the search along noisy lines (captures and promotions) past the depth
// frontier until the position is quiet enough for the static evaluator to be trusted. It uses
// a fail-hard stand-pat: the static evaluation is itself a candidate score, since a side is
// never forced to make a losing capture. It does not consult the transposition table, killers
// or history -- those heuristics are tuned for full-width search and quiescence nodes are
// already restricted to a narrow, self-terminating set of moves.
func (m *runAlphaBeta) quiescence(ctx context.Context, alpha, beta eval.Score, qply int) (uint64, eval.Score) {
	run := &runQuiescence{eval: m.eval, noise: m.noise, b: m.b}
	score := run.search(ctx, alpha, beta, qply)
	return run.nodes, score
}

type runQuiescence struct {
	eval  eval.Evaluator
	noise eval.Random
	b     *board.Board
	nodes uint64
}

func (r *runQuiescence) search(ctx context.Context, alpha, beta eval.Score, qply int) eval.Score {
	r.nodes++
	if r.nodes%timeCheckInterval == 0 && contextx.IsCancelled(ctx) {
		return eval.InvalidScore
	}
	if r.b.Result().Outcome == board.Draw {
		return eval.ZeroScore
	}

	turn := r.b.Turn()
	inCheck := r.b.Position().IsChecked(turn)

	standPat := r.eval.Evaluate(ctx, r.b) + r.noise.Evaluate(ctx, r.b)
	if !inCheck {
		if !standPat.Less(beta) {
			return beta // fail-hard: the quiet score already refutes the position
		}
		alpha = eval.Max(alpha, standPat)
	}

	if qply >= maxQuiescencePly {
		return standPat
	}

	var candidates []board.Move
	if inCheck {
		// In check, every legal reply must be considered: there may be no noisy way out.
		candidates = r.b.Position().PseudoLegalMoves(turn)
	} else {
		for _, mv := range r.b.Position().PseudoLegalMoves(turn) {
			if noisyMoves(mv) {
				candidates = append(candidates, mv)
			}
		}
	}

	priority := func(mv board.Move) board.MovePriority {
		if mv.IsPromotion() {
			return promotionPriority
		}
		if mv.IsCapture() {
			return capturePriority + board.MovePriority(eval.MVVLVA(mv.Piece, mv.Capture))
		}
		return 0
	}

	moves := board.NewMoveList(candidates, priority)
	hasLegalMove := false

	for {
		mv, ok := moves.Next()
		if !ok {
			break
		}
		if !r.b.PushMove(mv) {
			continue
		}
		hasLegalMove = true

		score := r.search(ctx, beta.Negate(), alpha.Negate(), qply+1)
		r.b.PopMove()

		if score == eval.InvalidScore {
			return eval.InvalidScore
		}
		score = eval.AdjustMateDistance(score, -1).Negate()

		if !alpha.Less(score) {
			continue
		}
		alpha = score
		if !alpha.Less(beta) {
			return beta // fail-hard cutoff
		}
	}

	if inCheck && !hasLegalMove {
		if result := r.b.AdjudicateNoLegalMoves(); result.Reason == board.Checkmate {
			return -eval.Mate
		}
		return eval.ZeroScore
	}

	return alpha
}
