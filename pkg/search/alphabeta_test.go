package search_test

import (
	"context"
	"testing"

	"github.com/kvasari/gambit/pkg/board/fen"
	"github.com/kvasari/gambit/pkg/eval"
	"github.com/kvasari/gambit/pkg/search"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAlphaBeta(t *testing.T) {
	ctx := context.Background()
	ab := search.AlphaBeta{Eval: eval.Material{}}

	t.Run("forced mates", func(t *testing.T) {
		tests := []struct {
			fen      string
			depth    int
			expected int // mate in N plies, positive favors side to move
		}{
			{"k7/7R/6R1/8/8/8/8/7K w - - 0 1", 2, 1},
			{"k7/7R/6R1/8/8/8/8/7K w - - 0 1", 4, 1},
			{"k7/7R/7R/8/8/8/8/7K w - - 0 1", 4, 3},
		}
		for _, tt := range tests {
			b, err := fen.NewBoard(tt.fen)
			require.NoError(t, err)

			sctx := search.NewContext(search.NoTranspositionTable{}, eval.Random{})
			_, score, moves, err := ab.Search(ctx, sctx, b, tt.depth)
			require.NoError(t, err)

			require.Truef(t, score.IsMate(), "expected mate score, got %v for %v", score, tt.fen)
			assert.Equalf(t, tt.expected, score.MateInPlies(), "failed: %v", tt.fen)
			assert.NotEmpty(t, moves)
		}
	})

	t.Run("draws", func(t *testing.T) {
		tests := []string{
			"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
		}
		for _, f := range tests {
			b, err := fen.NewBoard(f)
			require.NoError(t, err)

			sctx := search.NewContext(search.NoTranspositionTable{}, eval.Random{})
			_, score, _, err := ab.Search(ctx, sctx, b, 3)
			require.NoError(t, err)
			assert.False(t, score.IsMate(), "unexpected mate score for %v: %v", f, score)
		}
	})

	t.Run("transposition table reuse does not change the verdict", func(t *testing.T) {
		b, err := fen.NewBoard(fen.Initial)
		require.NoError(t, err)

		tt := search.NewTranspositionTable(ctx, 1<<20)
		sctx := search.NewContext(tt, eval.Random{})

		_, withoutTT, _, err := search.AlphaBeta{Eval: eval.Material{}}.Search(ctx, search.NewContext(search.NoTranspositionTable{}, eval.Random{}), b, 3)
		require.NoError(t, err)

		_, withTT, _, err := ab.Search(ctx, sctx, b, 3)
		require.NoError(t, err)

		assert.Equal(t, withoutTT, withTT)
	})
}
