package engine

import (
	"context"
	"encoding/binary"
	"os"
	"sort"

	"github.com/kvasari/gambit/pkg/board"
	"github.com/kvasari/gambit/pkg/board/fen"
)

// entrySize is the byte size of one Polyglot book record: a 64bit key, a 16bit encoded move,
// a 16bit weight and a 32bit learn value.
const entrySize = 16

// polyglotEntry is one decoded book record.
type polyglotEntry struct {
	key    uint64
	move   uint16
	weight uint16
}

// PolyglotBook is an opening book backed by the Polyglot binary format: a file of 16-byte
// records sorted by a Zobrist-style position key, searched with binary search. See:
// http://hgm.nubati.net/book_format.html.
//
// The key here is computed from an independent, internally generated piece-square random
// table laid out exactly like Polyglot's (768 piece-square values, 4 castling values, 8
// en-passant file values, 1 side-to-move value — 781 numbers total), so the file format and
// move encoding are faithful to Polyglot, but a .bin book produced by PolyGlot or another
// engine will not hash to the same keys; books must be generated against this table.
type PolyglotBook struct {
	entries []polyglotEntry
}

// NewPolyglotBook reads a Polyglot-format opening book from path. An empty path or a missing
// file is not an error: it yields NoBook, so the engine silently plays without a book.
func NewPolyglotBook(path string) (Book, error) {
	if path == "" {
		return NoBook, nil
	}
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return NoBook, nil
	}
	if err != nil {
		return nil, err
	}

	n := len(data) / entrySize
	entries := make([]polyglotEntry, n)
	for i := 0; i < n; i++ {
		rec := data[i*entrySize : (i+1)*entrySize]
		entries[i] = polyglotEntry{
			key:    binary.BigEndian.Uint64(rec[0:8]),
			move:   binary.BigEndian.Uint16(rec[8:10]),
			weight: binary.BigEndian.Uint16(rec[10:12]),
		}
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].key < entries[j].key })

	return &PolyglotBook{entries: entries}, nil
}

func (b *PolyglotBook) Find(ctx context.Context, position string) ([]board.Move, error) {
	pos, turn, _, _, err := fen.Decode(position)
	if err != nil {
		return nil, err
	}

	key := polyglotKey(pos, turn)
	lo := sort.Search(len(b.entries), func(i int) bool { return b.entries[i].key >= key })

	type candidate struct {
		m board.Move
		w uint16
	}
	var candidates []candidate
	for i := lo; i < len(b.entries) && b.entries[i].key == key; i++ {
		m, ok := decodePolyglotMove(pos, turn, b.entries[i].move)
		if !ok {
			continue
		}
		candidates = append(candidates, candidate{m: m, w: b.entries[i].weight})
	}

	sort.SliceStable(candidates, func(i, j int) bool { return candidates[i].w > candidates[j].w })

	moves := make([]board.Move, len(candidates))
	for i, c := range candidates {
		moves[i] = c.m
	}
	return moves, nil
}

// decodePolyglotMove turns a 16bit Polyglot move code into a board.Move legal in pos, matching
// it up against the actual pseudo-legal move so castling/en-passant/capture flags are correct.
// Polyglot bit layout, LSB first: to file (3), to rank (3), from file (3), from rank (3),
// promotion piece (3; 0=none, 1=knight, 2=bishop, 3=rook, 4=queen). Files run a=0..h=7, so
// they are mirrored against this engine's h=0..a=7 numbering.
func decodePolyglotMove(pos *board.Position, turn board.Color, code uint16) (board.Move, bool) {
	toFile := board.File(7 - (code & 0x7))
	toRank := board.Rank((code >> 3) & 0x7)
	fromFile := board.File(7 - ((code >> 6) & 0x7))
	fromRank := board.Rank((code >> 9) & 0x7)
	promo := (code >> 12) & 0x7

	from := board.NewSquare(fromFile, fromRank)
	to := board.NewSquare(toFile, toRank)

	var promotion board.Piece
	switch promo {
	case 1:
		promotion = board.Knight
	case 2:
		promotion = board.Bishop
	case 3:
		promotion = board.Rook
	case 4:
		promotion = board.Queen
	}

	for _, m := range pos.PseudoLegalMoves(turn) {
		if m.From != from || m.To != to || m.Promotion != promotion {
			continue
		}
		if _, ok := pos.Move(m); ok {
			return m, true
		}
	}
	return board.Move{}, false
}

// polyglotKey computes the book lookup key for pos, using randomPiece/randomCastle/
// randomEnPassant/randomTurn (this package's own Polyglot-layout random table).
func polyglotKey(pos *board.Position, turn board.Color) uint64 {
	var key uint64

	for _, c := range []board.Color{board.White, board.Black} {
		for p := board.Pawn; p <= board.King; p++ {
			for _, sq := range pos.Piece(c, p).ToSquares() {
				key ^= randomPiece[polyglotPieceIndex(c, p)][polyglotSquareIndex(sq)]
			}
		}
	}

	castling := pos.Castling()
	if castling.IsAllowed(board.WhiteKingSideCastle) {
		key ^= randomCastle[0]
	}
	if castling.IsAllowed(board.WhiteQueenSideCastle) {
		key ^= randomCastle[1]
	}
	if castling.IsAllowed(board.BlackKingSideCastle) {
		key ^= randomCastle[2]
	}
	if castling.IsAllowed(board.BlackQueenSideCastle) {
		key ^= randomCastle[3]
	}

	if sq, ok := pos.EnPassant(); ok {
		key ^= randomEnPassant[7-int(sq.File())]
	}

	if turn == board.White {
		key ^= randomTurn
	}

	return key
}

// polyglotPieceIndex maps (color, piece) onto Polyglot's piece-kind ordering: black
// pawn/knight/bishop/rook/queen/king, then white pawn/knight/bishop/rook/queen/king.
func polyglotPieceIndex(c board.Color, p board.Piece) int {
	var kind int
	switch p {
	case board.Pawn:
		kind = 0
	case board.Knight:
		kind = 1
	case board.Bishop:
		kind = 2
	case board.Rook:
		kind = 3
	case board.Queen:
		kind = 4
	case board.King:
		kind = 5
	}
	if c == board.White {
		return 6 + kind
	}
	return kind
}

// polyglotSquareIndex mirrors this engine's h=0..a=7 file numbering into Polyglot's a=0..h=7,
// keeping rank numbering (already 1=0..8=7) unchanged.
func polyglotSquareIndex(sq board.Square) int {
	file := 7 - int(sq.File())
	rank := int(sq.Rank())
	return rank*8 + file
}
