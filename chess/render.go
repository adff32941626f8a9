package chess

import (
	"fmt"
	"strings"
)

var unicodePieces = map[Piece]rune{
	WKing: '♔', WQueen: '♕', WRook: '♖', WBishop: '♗', WKnight: '♘', WPawn: '♙',
	BKing: '♚', BQueen: '♛', BRook: '♜', BBishop: '♝', BKnight: '♞', BPawn: '♟',
	Empty: '·',
}

var asciiPieces = map[Piece]rune{
	WKing: 'K', WQueen: 'Q', WRook: 'R', WBishop: 'B', WKnight: 'N', WPawn: 'P',
	BKing: 'k', BQueen: 'q', BRook: 'r', BBishop: 'b', BKnight: 'n', BPawn: 'p',
	Empty: '.',
}

// PrettyPrint renders the board as an 8x8 grid with file/rank labels.
// Falls back to ASCII glyphs when unicode is false, for
// terminals that can't render the chess Unicode block.
func (b *Board) PrettyPrint(unicode bool) string {
	pieces := asciiPieces
	if unicode {
		pieces = unicodePieces
	}

	var sb strings.Builder
	for row := 0; row < 8; row++ {
		sb.WriteString(fmt.Sprintf("%d  ", 8-row))
		for col := 0; col < 8; col++ {
			p := b.Squares[squareAt(row, col)]
			sb.WriteRune(pieces[p])
			sb.WriteByte(' ')
		}
		sb.WriteByte('\n')
	}
	sb.WriteString("   a b c d e f g h\n")
	return sb.String()
}
