// Package chess implements the board representation, move generator,
// make/unmake machinery, evaluation, and search kernel for walrus-bot.
package chess

// Color identifies which side owns a piece or is to move.
type Color uint8

const (
	White Color = iota
	Black
)

// Opponent returns the other color.
func (c Color) Opponent() Color {
	return 1 - c
}

// Kind is a piece's type, independent of color.
type Kind uint8

const (
	NoKind Kind = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
)

// Piece packs a kind (3 bits) and a side (1 bit) into a 4-bit
// encoding. Empty squares are the zero value.
type Piece uint8

const (
	Empty Piece = 0

	BPawn   = Piece(Pawn)
	BKnight = Piece(Knight)
	BBishop = Piece(Bishop)
	BRook   = Piece(Rook)
	BQueen  = Piece(Queen)
	BKing   = Piece(King)

	sideBit = Piece(1 << 3)

	WPawn   = BPawn | sideBit
	WKnight = BKnight | sideBit
	WBishop = BBishop | sideBit
	WRook   = BRook | sideBit
	WQueen  = BQueen | sideBit
	WKing   = BKing | sideBit
)

// NewPiece builds a piece from a kind and a color.
func NewPiece(k Kind, c Color) Piece {
	if k == NoKind {
		return Empty
	}
	p := Piece(k)
	if c == White {
		p |= sideBit
	}
	return p
}

// Kind returns the piece's type, ignoring color.
func (p Piece) Kind() Kind {
	return Kind(p &^ sideBit)
}

// Color returns the piece's side. Undefined for Empty.
func (p Piece) Color() Color {
	if p&sideBit != 0 {
		return White
	}
	return Black
}

// IsWhite reports whether p is a non-empty white piece.
func (p Piece) IsWhite() bool {
	return p != Empty && p&sideBit != 0
}

// IsBlack reports whether p is a non-empty black piece.
func (p Piece) IsBlack() bool {
	return p != Empty && p&sideBit == 0
}

var pieceChars = map[Piece]byte{
	WKing: 'K', WQueen: 'Q', WRook: 'R', WBishop: 'B', WKnight: 'N', WPawn: 'P',
	BKing: 'k', BQueen: 'q', BRook: 'r', BBishop: 'b', BKnight: 'n', BPawn: 'p',
}

var charPieces = map[byte]Piece{
	'K': WKing, 'Q': WQueen, 'R': WRook, 'B': WBishop, 'N': WKnight, 'P': WPawn,
	'k': BKing, 'q': BQueen, 'r': BRook, 'b': BBishop, 'n': BKnight, 'p': BPawn,
}

// FENChar returns the FEN character for a piece, or 0 for Empty.
func (p Piece) FENChar() byte {
	return pieceChars[p]
}

// PieceFromFENChar parses a single FEN piece character.
func PieceFromFENChar(c byte) (Piece, bool) {
	p, ok := charPieces[c]
	return p, ok
}

var promotionChars = map[byte]Kind{
	'q': Queen, 'r': Rook, 'b': Bishop, 'n': Knight,
}

// KindFromPromotionChar parses the trailing promotion letter of a
// long-algebraic move ("e7e8q" -> Queen).
func KindFromPromotionChar(c byte) (Kind, bool) {
	k, ok := promotionChars[c]
	return k, ok
}

// PromotionChar returns the UCI promotion letter for a kind, or 0 if
// the kind cannot be a promotion target.
func (k Kind) PromotionChar() byte {
	switch k {
	case Queen:
		return 'q'
	case Rook:
		return 'r'
	case Bishop:
		return 'b'
	case Knight:
		return 'n'
	default:
		return 0
	}
}
