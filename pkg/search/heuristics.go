package search

import "github.com/kvasari/gambit/pkg/board"

// MaxPly is a hard safety cap on recursion depth from the search root. Reaching it without
// having already terminated by depth exhaustion indicates pathological check-extension or
// null-move recursion; the search falls back to a plain static evaluation rather than
// recursing further.
const MaxPly = 64

// KillerTable records, per ply, the two most recent quiet moves that caused a beta cutoff.
// Killers are searched early since a move that refuted a sibling position is likely to refute
// this one too. Not thread-safe; one table per search.
type KillerTable struct {
	slots [MaxPly][2]board.Move
}

// Moves returns the two killer moves recorded for ply, zero-valued if none.
func (k *KillerTable) Moves(ply int) (board.Move, board.Move) {
	if ply < 0 || ply >= MaxPly {
		return board.Move{}, board.Move{}
	}
	return k.slots[ply][0], k.slots[ply][1]
}

// Add records m as the newest killer at ply, demoting the previous first killer to second.
// A move already recorded is not duplicated. Only quiet (non-capture, non-promotion) moves
// should be added; captures are already ordered ahead of killers by MVV-LVA.
func (k *KillerTable) Add(ply int, m board.Move) {
	if ply < 0 || ply >= MaxPly || k.slots[ply][0].Equals(m) {
		return
	}
	k.slots[ply][1] = k.slots[ply][0]
	k.slots[ply][0] = m
}

// HistoryTable scores quiet moves by how often they have caused a beta cutoff, indexed by
// side to move and the move's from/to squares. Used to order quiet moves that are neither the
// transposition move nor a killer.
type HistoryTable struct {
	scores [board.NumColors][board.NumSquares][board.NumSquares]int
}

// Score returns the accumulated history score for a quiet move by the given side.
func (h *HistoryTable) Score(c board.Color, m board.Move) int {
	return h.scores[c][m.From][m.To]
}

// Add rewards a quiet move that caused a beta cutoff at the given depth: deeper cutoffs are
// worth more, so the table favors moves that keep working as the search gets harder.
func (h *HistoryTable) Add(c board.Color, m board.Move, depth int) {
	h.scores[c][m.From][m.To] += depth * depth
}

// historyAgeThreshold is the maximum entry value above which Age halves the table. Keeping
// it gated avoids decaying a table that hasn't accumulated enough weight to need it yet.
const historyAgeThreshold = 10000

// Age halves every entry once the table's maximum entry exceeds historyAgeThreshold, keeping
// the table responsive to the position changing across iterative-deepening depths instead of
// accumulating stale weight forever.
func (h *HistoryTable) Age() {
	max := 0
	for c := board.ZeroColor; c < board.NumColors; c++ {
		for from := board.ZeroSquare; from < board.NumSquares; from++ {
			for to := board.ZeroSquare; to < board.NumSquares; to++ {
				if v := h.scores[c][from][to]; v > max {
					max = v
				}
			}
		}
	}
	if max <= historyAgeThreshold {
		return
	}

	for c := board.ZeroColor; c < board.NumColors; c++ {
		for from := board.ZeroSquare; from < board.NumSquares; from++ {
			for to := board.ZeroSquare; to < board.NumSquares; to++ {
				h.scores[c][from][to] /= 2
			}
		}
	}
}
