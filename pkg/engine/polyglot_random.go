package engine

// randomPiece, randomCastle, randomEnPassant and randomTurn are this package's Polyglot-layout
// random table (see PolyglotBook): 768 piece-square values, 4 castling values, 8 en-passant
// file values and 1 side-to-move value, generated deterministically at init time with a
// splitmix64 stream so every build of this engine produces the same keys.
var (
	randomPiece     [12][64]uint64
	randomCastle    [4]uint64
	randomEnPassant [8]uint64
	randomTurn      uint64
)

func init() {
	gen := splitmix64{state: 0x506c79476c6f74}

	for i := range randomPiece {
		for j := range randomPiece[i] {
			randomPiece[i][j] = gen.next()
		}
	}
	for i := range randomCastle {
		randomCastle[i] = gen.next()
	}
	for i := range randomEnPassant {
		randomEnPassant[i] = gen.next()
	}
	randomTurn = gen.next()
}

// splitmix64 is a small, fast, fixed-seed PRNG stream, sufficient for generating a
// reproducible table of pseudo-random 64bit keys at program startup.
type splitmix64 struct {
	state uint64
}

func (s *splitmix64) next() uint64 {
	s.state += 0x9E3779B97F4A7C15
	z := s.state
	z = (z ^ (z >> 30)) * 0xBF58476D1CE4E5B9
	z = (z ^ (z >> 27)) * 0x94D049BB133111EB
	return z ^ (z >> 31)
}
