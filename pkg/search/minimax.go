package search

import (
	"context"

	"github.com/kvasari/gambit/pkg/board"
	"github.com/kvasari/gambit/pkg/eval"
	"github.com/seekerror/stdlib/pkg/util/contextx"
)

// Minimax implements naive minimax search, with none of AlphaBeta's pruning or heuristics.
// Its leaves use the static evaluation directly, without quiescence, so its score can differ
// from AlphaBeta's at the same depth. Pseudo-code:
//
//	function minimax(node, depth, maximizingPlayer) is
//	    if depth = 0 or node is a terminal node then
//	        return the heuristic value of node
//	    if maximizingPlayer then
//	        value := −∞
//	        for each child of node do
//	            value := max(value, minimax(child, depth − 1, FALSE))
//	        return value
//	    else
//	        value := +∞
//	        for each child of node do
//	            value := min(value, minimax(child, depth − 1, TRUE))
//	        return value
//
// See: https://en.wikipedia.org/wiki/Minimax.
type Minimax struct {
	Eval eval.Evaluator
}

func (p Minimax) Search(ctx context.Context, sctx *Context, b *board.Board, depth int) (uint64, eval.Score, []board.Move, error) {
	run := &runMinimax{eval: p.Eval, b: b}
	score, moves := run.search(ctx, depth)
	if contextx.IsCancelled(ctx) {
		return run.nodes, eval.InvalidScore, nil, ErrHalted
	}
	return run.nodes, score, moves, nil
}

type runMinimax struct {
	eval  eval.Evaluator
	b     *board.Board
	nodes uint64
}

// search returns the score for the side to move, and the principal variation below it.
func (m *runMinimax) search(ctx context.Context, depth int) (eval.Score, []board.Move) {
	m.nodes++

	if contextx.IsCancelled(ctx) {
		return eval.InvalidScore, nil
	}
	if m.b.Ply() > 0 && m.b.Result().Outcome == board.Draw {
		return eval.ZeroScore, nil
	}
	if depth == 0 {
		return m.eval.Evaluate(ctx, m.b), nil
	}

	hasLegalMove := false
	best := eval.NegInfScore
	var pv []board.Move

	for _, move := range m.b.Position().PseudoLegalMoves(m.b.Turn()) {
		if !m.b.PushMove(move) {
			continue
		}
		score, rem := m.search(ctx, depth-1)
		m.b.PopMove()

		hasLegalMove = true
		score = eval.AdjustMateDistance(score, -1).Negate()
		if best.Less(score) {
			best = score
			pv = append([]board.Move{move}, rem...)
		}
	}

	if !hasLegalMove {
		if result := m.b.AdjudicateNoLegalMoves(); result.Reason == board.Checkmate {
			return -eval.Mate, nil
		}
		return eval.ZeroScore, nil
	}

	return best, pv
}
