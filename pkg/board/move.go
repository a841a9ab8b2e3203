package board

import "fmt"

// MoveType indicates the type of move. The no-progress counter is reset by pawn moves and
// captures, but not by castling.
type MoveType uint8

const (
	Normal    MoveType = iota
	Push               // Pawn move
	Jump               // Pawn 2-square move
	EnPassant          // Implicitly a pawn capture
	QueenSideCastle
	KingSideCastle
	Capture
	Promotion
	CapturePromotion
)

// Move represents a not-necessarily legal move along with contextual metadata.
type Move struct {
	Type      MoveType
	From, To  Square
	Piece     Piece // the moving piece.
	Promotion Piece // desired piece for promotion, if any.
	Capture   Piece // captured piece, if any.
}

// ParseMove parses a move in pure algebraic coordinate notation, such as "a2a4" or "a7a8q".
// The parsed move does not contain contextual information like castling or en passant; it is
// matched against a PseudoLegalMoves() result to fill those in.
func ParseMove(str string) (Move, error) {
	runes := []rune(str)

	if len(runes) < 4 || len(runes) > 5 {
		return Move{}, fmt.Errorf("invalid move: '%v'", str)
	}

	from, err := ParseSquare(runes[0], runes[1])
	if err != nil {
		return Move{}, fmt.Errorf("invalid from: '%v': %v", str, err)
	}
	to, err := ParseSquare(runes[2], runes[3])
	if err != nil {
		return Move{}, fmt.Errorf("invalid to: '%v': %v", str, err)
	}

	if len(runes) == 5 {
		promo, ok := ParsePiece(runes[4])
		if !ok || promo == Pawn || promo == King {
			return Move{}, fmt.Errorf("invalid promotion: '%v'", str)
		}
		return Move{From: from, To: to, Promotion: promo}, nil
	}

	return Move{From: from, To: to}, nil
}

func (m Move) Equals(o Move) bool {
	return m.From == o.From && m.To == o.To && m.Promotion == o.Promotion
}

// IsCapture returns true iff the move captures a piece, including en passant.
func (m Move) IsCapture() bool {
	return m.Type == Capture || m.Type == CapturePromotion || m.Type == EnPassant
}

// IsPromotion returns true iff the move promotes a pawn.
func (m Move) IsPromotion() bool {
	return m.Type == Promotion || m.Type == CapturePromotion
}

// IsCastle returns true iff the move is a castling move.
func (m Move) IsCastle() bool {
	return m.Type == KingSideCastle || m.Type == QueenSideCastle
}

// IsQuiet returns true iff the move is neither a capture nor a promotion -- the complement
// of the noisy moves considered by quiescence search.
func (m Move) IsQuiet() bool {
	return !m.IsCapture() && !m.IsPromotion()
}

// CastlingRightsLost returns the castling rights this move permanently revokes, either because
// the king or rook moved away from its home square, or because a rook was captured on its home
// square. It is independent of the side to move.
func (m Move) CastlingRightsLost() Castling {
	var lost Castling
	switch m.From {
	case E1:
		lost |= WhiteKingSideCastle | WhiteQueenSideCastle
	case E8:
		lost |= BlackKingSideCastle | BlackQueenSideCastle
	case A1:
		lost |= WhiteQueenSideCastle
	case H1:
		lost |= WhiteKingSideCastle
	case A8:
		lost |= BlackQueenSideCastle
	case H8:
		lost |= BlackKingSideCastle
	}
	switch m.To {
	case A1:
		lost |= WhiteQueenSideCastle
	case H1:
		lost |= WhiteKingSideCastle
	case A8:
		lost |= BlackQueenSideCastle
	case H8:
		lost |= BlackKingSideCastle
	}
	return lost
}

// EnPassantTarget returns the en passant target square created by this move, if it is a
// double pawn push. The returned square is meaningful as a hash lookup even if ok is false,
// since it defaults to a square with no associated zobrist value.
func (m Move) EnPassantTarget() (Square, bool) {
	if m.Type != Jump {
		return ZeroSquare, false
	}
	return Square((int(m.From) + int(m.To)) / 2), true
}

// EnPassantCapture returns the square of the pawn captured by this en passant move.
func (m Move) EnPassantCapture() (Square, bool) {
	if m.Type != EnPassant {
		return ZeroSquare, false
	}
	return NewSquare(m.To.File(), m.From.Rank()), true
}

// CastlingRookMove returns the rook's from/to squares for this castling move.
func (m Move) CastlingRookMove() (Square, Square, bool) {
	switch m.Type {
	case KingSideCastle:
		if m.From == E1 {
			return H1, F1, true
		}
		return H8, F8, true
	case QueenSideCastle:
		if m.From == E1 {
			return A1, D1, true
		}
		return A8, D8, true
	default:
		return ZeroSquare, ZeroSquare, false
	}
}

func (m Move) String() string {
	if m.Promotion.IsValid() {
		return fmt.Sprintf("%v%v%v", m.From, m.To, m.Promotion)
	}
	return fmt.Sprintf("%v%v", m.From, m.To)
}

// FormatMoves formats a list of moves space-separated using the given per-move formatter.
func FormatMoves(moves []Move, fn func(Move) string) string {
	s := ""
	for i, m := range moves {
		if i > 0 {
			s += " "
		}
		s += fn(m)
	}
	return s
}

// PrintMoves formats a list of moves space-separated using Move.String.
func PrintMoves(moves []Move) string {
	return FormatMoves(moves, func(m Move) string { return m.String() })
}
