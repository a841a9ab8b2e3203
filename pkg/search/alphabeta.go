package search

import (
	"context"

	"github.com/kvasari/gambit/pkg/board"
	"github.com/kvasari/gambit/pkg/eval"
	"github.com/seekerror/stdlib/pkg/util/contextx"
)

// timeCheckInterval is how many nodes pass between context-cancellation checks. Checking on
// every node would waste time polling the clock; checking too rarely blows through the time
// budget before a search notices it was told to stop.
const timeCheckInterval = 2048

// nullMoveReduction is the depth reduction R applied to the verification search after a null
// move, per the classic "R=2" formulation.
const nullMoveReduction = 2

// AlphaBeta implements negamax search with alpha-beta pruning, null-move pruning, a
// transposition table and quiescence search at the frontier. Pseudo-code for the core
// recursion:
//
//	function negamax(node, depth, α, β) is
//	    if depth ≤ 0 or node is a terminal node then
//	        return quiescence(node, α, β)
//	    value := −∞
//	    for each child of node do
//	        value := max(value, −negamax(child, depth − 1, −β, −α))
//	        α := max(α, value)
//	        if α ≥ β then
//	            break (* β cutoff *)
//	    return value
//
// See: https://en.wikipedia.org/wiki/Negamax.
type AlphaBeta struct {
	Eval eval.Evaluator
}

func (p AlphaBeta) Search(ctx context.Context, sctx *Context, b *board.Board, depth int) (uint64, eval.Score, []board.Move, error) {
	run := &runAlphaBeta{eval: p.Eval, tt: sctx.TT, noise: sctx.Noise, killers: sctx.Killers, history: sctx.History, b: b}

	low, high := eval.NegInfScore, eval.InfScore
	if !sctx.Alpha.IsInvalid() {
		low = sctx.Alpha
	}
	if !sctx.Beta.IsInvalid() {
		high = sctx.Beta
	}

	run.ponder = sctx.Ponder

	score, moves := run.search(ctx, depth, low, high, true)
	if contextx.IsCancelled(ctx) {
		return run.nodes, eval.InvalidScore, nil, ErrHalted
	}
	return run.nodes, score, moves, nil
}

type runAlphaBeta struct {
	eval    eval.Evaluator
	tt      TranspositionTable
	noise   eval.Random
	killers *KillerTable
	history *HistoryTable
	b       *board.Board
	nodes   uint64

	ponder []board.Move
}

// search returns the score from the perspective of the side to move at the current node,
// along with the principal variation below it. allowNull gates null-move pruning: it is
// disabled for one recursion after a null move, since two null moves in a row are equivalent
// to not moving at all and would loop without progress.
func (m *runAlphaBeta) search(ctx context.Context, depth int, alpha, beta eval.Score, allowNull bool) (eval.Score, []board.Move) {
	m.nodes++
	if m.nodes%timeCheckInterval == 0 && contextx.IsCancelled(ctx) {
		return eval.InvalidScore, nil
	}

	ply := m.b.Ply()
	if ply > 0 {
		if outcome := m.b.Result(); outcome.Outcome == board.Draw {
			return eval.ZeroScore, nil
		}
	}

	if ply >= MaxPly {
		return m.evaluate(ctx), nil
	}

	turn := m.b.Turn()
	inCheck := m.b.Position().IsChecked(turn)

	var ttMove board.Move
	if bound, d, score, mv, ok := m.tt.Read(m.b.Hash()); ok {
		ttMove = mv
		if d >= depth {
			switch {
			case bound == ExactBound:
				return score, nil
			case bound == LowerBound && !score.Less(beta):
				return score, nil
			case bound == UpperBound && !alpha.Less(score):
				return score, nil
			}
		}
	}

	if depth <= 0 {
		nodes, score := m.quiescence(ctx, alpha, beta, 0)
		m.nodes += nodes
		return score, nil
	}

	// Null-move pruning: if passing the turn entirely still produces a position so good for
	// the opponent that it fails high, the real move is assumed to do at least as well, and
	// the subtree is pruned without a full-width search. Skipped in check (a null move would
	// be illegal) and near the end of the game, where zugzwang makes the assumption unsound.
	if allowNull && depth >= 3 && !inCheck && !beta.IsMate() && hasNonPawnMaterial(m.b.Position(), turn) {
		m.b.PushNull()
		score, _ := m.search(ctx, depth-1-nullMoveReduction, beta.Negate(), beta.Negate()+1, false)
		m.b.PopNull()

		if score == eval.InvalidScore {
			return eval.InvalidScore, nil
		}

		nullScore := eval.AdjustMateDistance(score, -1).Negate()
		if !nullScore.Less(beta) {
			return beta, nil // prune: even doing nothing holds beta
		}
	}

	if len(m.ponder) > 0 {
		// Ponder mode forces the first explored move at the root to follow a predicted line,
		// while still letting move ordering rank the rest normally for the remaining plies.
		ttMove = m.ponder[0]
		m.ponder = m.ponder[1:]
	}

	priority := orderMoves(ttMove, ply, m.killers, m.history, turn)
	moves := board.NewMoveList(m.b.Position().PseudoLegalMoves(turn), priority)

	hasLegalMove := false
	bound := UpperBound
	best := alpha
	var bestMove board.Move
	var pv []board.Move

	for {
		move, ok := moves.Next()
		if !ok {
			break
		}
		if !m.b.PushMove(move) {
			continue // not legal
		}
		hasLegalMove = true

		score, rem := m.search(ctx, depth-1, beta.Negate(), best.Negate(), true)
		m.b.PopMove()

		if score == eval.InvalidScore {
			return eval.InvalidScore, nil
		}
		score = eval.AdjustMateDistance(score, -1).Negate()

		if best.Less(score) {
			best = score
			bestMove = move
			pv = append([]board.Move{move}, rem...)
		}

		if !best.Less(beta) {
			bound = LowerBound
			if move.IsQuiet() {
				m.killers.Add(ply, move)
				m.history.Add(turn, move, depth)
			}
			break // beta cutoff
		}
	}

	if !hasLegalMove {
		if result := m.b.AdjudicateNoLegalMoves(); result.Reason == board.Checkmate {
			return -eval.Mate, nil // mate in 0 plies from here, from the mated side's perspective
		}
		return eval.ZeroScore, nil
	}

	if bound != LowerBound && alpha.Less(best) {
		bound = ExactBound
	}
	m.tt.Write(m.b.Hash(), bound, ply, depth, best, bestMove)

	return best, pv
}

// evaluate adds evaluation noise on top of the static evaluator, used when the search gives up
// early (MaxPly) rather than continuing to quiescence.
func (m *runAlphaBeta) evaluate(ctx context.Context) eval.Score {
	return m.eval.Evaluate(ctx, m.b) + m.noise.Evaluate(ctx, m.b)
}

// hasNonPawnMaterial reports whether the side has any piece besides king and pawns, used to
// gate null-move pruning away from endgames where zugzwang is common.
func hasNonPawnMaterial(pos *board.Position, c board.Color) bool {
	for _, p := range []board.Piece{board.Knight, board.Bishop, board.Rook, board.Queen} {
		if pos.Piece(c, p) != 0 {
			return true
		}
	}
	return false
}
