package eval

import "fmt"

// Score is a signed evaluation or search score in centipawns, from the perspective of the
// side to move. A forced mate is encoded by magnitude: "mate in N plies from the node where
// it was found" is Mate-N for the side delivering it, or -(Mate-N) for the side being mated,
// so that shallower mates score strictly better than deeper ones.
type Score int32

const (
	Mate Score = 100000

	// MateThreshold is the boundary beyond which a score is a mate distance rather than an
	// ordinary material/positional value: |score| > Mate-1000 denotes mate in N plies.
	MateThreshold Score = Mate - 1000
)

const (
	// InfScore/NegInfScore bound the alpha-beta search window; strictly beyond any legal
	// evaluated or mate score so they never collide with a real result.
	InfScore    Score = Mate + 1000
	NegInfScore Score = -InfScore

	ZeroScore Score = 0

	// InvalidScore marks the absence of a usable score, e.g. an empty transposition probe.
	InvalidScore Score = InfScore + 1
)

func (s Score) String() string {
	if s.IsMate() {
		return fmt.Sprintf("mate(%+d)", s.MateInPlies())
	}
	return fmt.Sprintf("%+d", int32(s))
}

// Negate flips perspective, as required by the negamax formulation: my score is the negation
// of my opponent's score for the same position.
func (s Score) Negate() Score {
	return -s
}

// Less reports whether s is strictly worse than o, from a shared perspective.
func (s Score) Less(o Score) bool {
	return s < o
}

// IsInvalid reports whether s is the sentinel InvalidScore.
func (s Score) IsInvalid() bool {
	return s == InvalidScore
}

// IsMate reports whether s encodes a forced mate rather than a material/positional value.
func (s Score) IsMate() bool {
	return s > MateThreshold || s < -MateThreshold
}

// IsHeuristic reports whether s is an ordinary evaluated score, neither invalid nor a mate
// distance.
func (s Score) IsHeuristic() bool {
	return !s.IsInvalid() && !s.IsMate()
}

// MateInPlies returns the number of plies to the forced mate s encodes: positive if the side
// to move delivers it, negative if the side to move is the one mated. Meaningless if !IsMate.
func (s Score) MateInPlies() int {
	if s > 0 {
		return int(Mate - s)
	}
	return -int(Mate + s)
}

// MateInXScore returns the score for a forced mate delivered in n plies by the side to move.
func MateInXScore(n int) Score {
	return Mate - Score(n)
}

// HeuristicScore returns an ordinary (non-mate) score of n centipawns.
func HeuristicScore(n int) Score {
	return Score(n)
}

// AdjustMateDistance rebases a mate score by delta plies: a winning (positive) mate score
// becomes s+delta and a losing (negative) one s-delta, so a negative delta moves both further
// from ±Mate. The search applies it with delta -1 to turn a child's node-relative score into
// its parent's. Non-mate scores are returned unchanged.
func AdjustMateDistance(s Score, delta int) Score {
	switch {
	case s > MateThreshold:
		return s + Score(delta)
	case s < -MateThreshold:
		return s - Score(delta)
	default:
		return s
	}
}

// Crop clamps s into the representable alpha-beta window.
func Crop(s Score) Score {
	switch {
	case s > InfScore:
		return InfScore
	case s < NegInfScore:
		return NegInfScore
	default:
		return s
	}
}

// Max returns the larger of two scores.
func Max(a, b Score) Score {
	if a < b {
		return b
	}
	return a
}

// Min returns the smaller of two scores.
func Min(a, b Score) Score {
	if a < b {
		return a
	}
	return b
}
