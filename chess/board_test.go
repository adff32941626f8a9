package chess

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBoardStartPosition(t *testing.T) {
	b := NewBoard()
	assert.True(t, b.WhiteToMove)
	assert.Equal(t, uint8(CastleWK|CastleWQ|CastleBK|CastleBQ), b.CastleRights)
	assert.Equal(t, Square(0), b.EnPassant)
	assert.Equal(t, WKing, b.PieceAt(whiteKingHome))
	assert.Equal(t, BKing, b.PieceAt(blackKingHome))
	assert.Equal(t, whiteKingHome, b.KingSquare[White])
	assert.Equal(t, blackKingHome, b.KingSquare[Black])
}

func TestBoardFENRoundTrip(t *testing.T) {
	fens := []string{
		StartFEN,
		kiwipeteFEN,
		"8/8/8/4k3/8/8/4K3/8 w - - 5 40",
		"rnbqkbnr/pp1ppppp/8/2p5/4P3/8/PPPP1PPP/RNBQKBNR w KQkq c6 0 2",
	}
	for _, fen := range fens {
		b, err := NewBoardFromFEN(fen)
		require.NoError(t, err, fen)
		assert.Equal(t, fen, b.FEN())
	}
}

func TestNewBoardFromFENRejectsMalformed(t *testing.T) {
	bad := []string{
		"",
		"not a fen at all",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR x KQkq - 0 1",
		"rnbq1bnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQK2R w KQkq - 0 1", // missing black king
	}
	for _, fen := range bad {
		_, err := NewBoardFromFEN(fen)
		assert.Error(t, err, fen)
		var chessErr *Error
		require.ErrorAs(t, err, &chessErr)
		assert.Contains(t, []ErrorKind{BadFEN, MissingKing}, chessErr.Kind)
	}
}

func TestSquareStringAndParse(t *testing.T) {
	cases := map[Square]string{
		0:  "a8",
		7:  "h8",
		56: "a1",
		63: "h1",
		60: "e1",
		4:  "e8",
	}

	for sq, want := range cases {
		assert.Equal(t, want, sq.String())
		parsed, ok := parseSquare(want)
		require.True(t, ok)
		assert.Equal(t, sq, parsed)
	}
}

func TestSetSquareUpdatesHashIncrementally(t *testing.T) {
	b := NewBoard()
	want := computeHash(b)
	assert.Equal(t, want, b.Hash)

	b.setSquare(27, WQueen) // drop a queen on an empty central square
	assert.Equal(t, computeHash(b), b.Hash)

	b.clearSquare(27)
	assert.Equal(t, computeHash(b), b.Hash)
}
