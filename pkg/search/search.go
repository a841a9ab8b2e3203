// Package search contains the game-tree search: alpha-beta with quiescence, transposition
// and move-ordering heuristics.
package search

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/kvasari/gambit/pkg/board"
	"github.com/kvasari/gambit/pkg/eval"
)

// ErrHalted is returned by a Search that was cancelled via its context before completing.
var ErrHalted = errors.New("search halted")

// PV represents the principal variation found by a search at some depth.
type PV struct {
	Depth int           // depth of search, in plies
	Moves []board.Move  // principal variation, best move first
	Score eval.Score    // evaluation at depth, from the root side to move's perspective
	Nodes uint64        // interior/leaf nodes searched
	Time  time.Duration // time taken by the search
	Hash  float64       // transposition table utilization [0;1]
}

func (p PV) String() string {
	return fmt.Sprintf("depth=%v score=%v nodes=%v time=%v hash=%v%% pv=%v",
		p.Depth, p.Score, p.Nodes, p.Time, int(100*p.Hash), board.PrintMoves(p.Moves))
}

// Options hold dynamic search options for a single Search call.
type Options struct {
	DepthLimit int // 0 == no limit
}

// Context carries the heuristic state of a single iterative-deepening run: it is created once
// per search and shared, without synchronization, across all depths and the principal
// recursion. Alpha/Beta seed the search window at the root.
type Context struct {
	Alpha, Beta eval.Score
	TT          TranspositionTable
	Noise       eval.Random

	Killers *KillerTable
	History *HistoryTable

	// Ponder, if non-empty, forces the first move(s) explored at the root to come from this
	// line regardless of move ordering -- used to keep searching a line the opponent is
	// expected to play while waiting for their actual move.
	Ponder []board.Move
}

// NewContext returns a Context with fresh killer and history tables.
func NewContext(tt TranspositionTable, noise eval.Random) *Context {
	return &Context{
		Alpha:   eval.NegInfScore,
		Beta:    eval.InfScore,
		TT:      tt,
		Noise:   noise,
		Killers: &KillerTable{},
		History: &HistoryTable{},
	}
}

// Search implements search of the game tree to a given depth, given a shared Context. Safe to
// invoke repeatedly on increasing depths for iterative deepening; the board position must be
// the search root and is restored to its original state on return. Thread-safety depends on
// the Context not being shared across concurrent calls.
type Search interface {
	Search(ctx context.Context, sctx *Context, b *board.Board, depth int) (uint64, eval.Score, []board.Move, error)
}
