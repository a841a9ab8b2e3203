package eval

import (
	"context"
	"math/rand"

	"github.com/kvasari/gambit/pkg/board"
)

// Random adds a small amount of randomized noise to an evaluation, so self-play games don't
// repeat deterministically. limit specifies the centipawn range [-limit/2; limit/2]. The
// zero value always returns zero.
type Random struct {
	rand  *rand.Rand
	limit int
}

func NewRandom(limit int, seed int64) Random {
	return Random{
		limit: limit,
		rand:  rand.New(rand.NewSource(seed)),
	}
}

func (n Random) Evaluate(ctx context.Context, b *board.Board) Score {
	if n.limit <= 0 {
		return 0
	}
	return Score(n.rand.Intn(n.limit) - n.limit/2)
}
