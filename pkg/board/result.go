package board

import "fmt"

// Outcome represents the outcome of a game, if decided. 2 bits.
type Outcome uint8

const (
	Undecided Outcome = iota
	WhiteWins
	BlackWins
	Draw
)

func (o Outcome) String() string {
	switch o {
	case Undecided:
		return "undecided"
	case WhiteWins:
		return "1-0"
	case BlackWins:
		return "0-1"
	case Draw:
		return "1/2-1/2"
	default:
		return "?"
	}
}

// Reason explains why a game outcome was adjudicated.
type Reason uint8

const (
	NoReason Reason = iota
	Checkmate
	Stalemate
	Repetition3
	Repetition5
	NoProgress
	SeventyFiveMoveRule
	InsufficientMaterial
)

func (r Reason) String() string {
	switch r {
	case NoReason:
		return "-"
	case Checkmate:
		return "checkmate"
	case Stalemate:
		return "stalemate"
	case Repetition3:
		return "3-fold repetition"
	case Repetition5:
		return "5-fold repetition"
	case NoProgress:
		return "50-move rule"
	case SeventyFiveMoveRule:
		return "75-move rule"
	case InsufficientMaterial:
		return "insufficient material"
	default:
		return "?"
	}
}

// Result is the adjudicated result of a game, if any.
type Result struct {
	Outcome Outcome
	Reason  Reason
}

func (r Result) String() string {
	if r.Outcome == Undecided {
		return "undecided"
	}
	return fmt.Sprintf("%v (%v)", r.Outcome, r.Reason)
}

// Loss returns the outcome corresponding to the given color losing.
func Loss(c Color) Outcome {
	if c == White {
		return BlackWins
	}
	return WhiteWins
}
