// Package eval contains static position evaluation: material, piece-square tables, pawn
// structure, piece-specific heuristics, king safety, threats and center control, tapered
// between middlegame and endgame by material phase.
package eval

import (
	"context"

	"github.com/kvasari/gambit/pkg/board"
)

// Evaluator is a static position evaluator. Evaluate must be a pure function of the board:
// same position, same score, no mutation.
type Evaluator interface {
	// Evaluate returns the position score in centipawns from the perspective of the side to move.
	Evaluate(ctx context.Context, b *board.Board) Score
}

// Material returns the nominal material balance for the side to move. It is a cheap
// approximation used by tests and as a baseline; Standard (standard.go) is the full
// evaluator used by search.
type Material struct{}

func (Material) Evaluate(ctx context.Context, b *board.Board) Score {
	pos := b.Position()
	turn := b.Turn()

	var score Score
	for p := board.Pawn; p <= board.King; p++ {
		diff := pos.Piece(turn, p).PopCount() - pos.Piece(turn.Opponent(), p).PopCount()
		score += Score(diff) * NominalValue(p)
	}
	return score
}

// NominalValue is the absolute nominal centipawn value of a piece kind. The King has an
// arbitrary large value so it never nets out against other material in a sum.
func NominalValue(p board.Piece) Score {
	switch p {
	case board.Pawn:
		return 100
	case board.Bishop, board.Knight:
		return 300
	case board.Rook:
		return 500
	case board.Queen:
		return 900
	case board.King:
		return 10000
	default:
		return 0
	}
}

// NominalValueGain is the nominal material gain of a move, used as a cheap move-ordering signal.
func NominalValueGain(m board.Move) Score {
	switch m.Type {
	case board.CapturePromotion:
		return NominalValue(m.Capture) + NominalValue(m.Promotion) - NominalValue(board.Pawn)
	case board.Promotion:
		return NominalValue(m.Promotion) - NominalValue(board.Pawn)
	case board.Capture:
		return NominalValue(m.Capture)
	case board.EnPassant:
		return NominalValue(board.Pawn)
	default:
		return 0
	}
}
