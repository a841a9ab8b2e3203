package engine

import (
	"bytes"
	"context"
	"encoding/binary"
	"os"
	"testing"

	"github.com/kvasari/gambit/pkg/board"
	"github.com/kvasari/gambit/pkg/board/fen"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPolyglotBookEmptyPath(t *testing.T) {
	b, err := NewPolyglotBook("")
	require.NoError(t, err)
	assert.Equal(t, NoBook, b)
}

func TestPolyglotBookMissingFile(t *testing.T) {
	b, err := NewPolyglotBook("/does/not/exist.bin")
	require.NoError(t, err)
	assert.Equal(t, NoBook, b)
}

func TestPolyglotBookRoundTrip(t *testing.T) {
	ctx := context.Background()

	pos, turn, _, _, err := fen.Decode(fen.Initial)
	require.NoError(t, err)

	key := polyglotKey(pos, turn)

	// e2e4: from=e2, to=e4, no promotion, encoded in Polyglot's a=0..h=7 file numbering.
	move := encodePolyglotSquarePair(t, board.E2, board.E4)

	f, err := os.CreateTemp(t.TempDir(), "book-*.bin")
	require.NoError(t, err)
	defer f.Close()

	var rec bytes.Buffer
	_ = binary.Write(&rec, binary.BigEndian, key)
	_ = binary.Write(&rec, binary.BigEndian, move)
	_ = binary.Write(&rec, binary.BigEndian, uint16(10)) // weight
	_ = binary.Write(&rec, binary.BigEndian, uint32(0))  // learn
	_, err = f.Write(rec.Bytes())
	require.NoError(t, err)
	require.NoError(t, f.Close())

	b, err := NewPolyglotBook(f.Name())
	require.NoError(t, err)

	moves, err := b.Find(ctx, fen.Initial)
	require.NoError(t, err)
	require.Len(t, moves, 1)
	assert.Equal(t, board.E2, moves[0].From)
	assert.Equal(t, board.E4, moves[0].To)
}

func encodePolyglotSquarePair(t *testing.T, from, to board.Square) uint16 {
	t.Helper()

	toFile := 7 - uint16(to.File())
	toRank := uint16(to.Rank())
	fromFile := 7 - uint16(from.File())
	fromRank := uint16(from.Rank())

	return toFile | toRank<<3 | fromFile<<6 | fromRank<<9
}
