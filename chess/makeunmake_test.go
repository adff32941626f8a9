package chess

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplySimplePawnPush(t *testing.T) {
	b := NewBoard()
	m := Move{From: mustSquare(t, "e2"), To: mustSquare(t, "e4"), Piece: WPawn, IsDoublePush: true}

	legal, err := b.Apply(&m)
	require.NoError(t, err)
	assert.True(t, legal)
	assert.Equal(t, Empty, b.PieceAt(mustSquare(t, "e2")))
	assert.Equal(t, WPawn, b.PieceAt(mustSquare(t, "e4")))
	assert.Equal(t, mustSquare(t, "e3"), b.EnPassant)
	assert.False(t, b.WhiteToMove)

	b.Unmake(&m)
	assert.Equal(t, WPawn, b.PieceAt(mustSquare(t, "e2")))
	assert.Equal(t, Empty, b.PieceAt(mustSquare(t, "e4")))
	assert.Equal(t, Square(0), b.EnPassant)
	assert.True(t, b.WhiteToMove)
	assert.Equal(t, computeHash(b), b.Hash)
}

func TestApplyEnPassantCapture(t *testing.T) {
	// White just played e2e4; black pawn sits on d4 and can take en passant.
	b, err := NewBoardFromFEN("rnbqkbnr/ppp1pppp/8/8/3pP3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 2")
	require.NoError(t, err)

	m, err := parseUCIMove(b, "d4e3")
	require.NoError(t, err)
	require.True(t, m.IsEnPassant)

	legal, err := b.Apply(&m)
	require.NoError(t, err)
	assert.True(t, legal)
	assert.Equal(t, Empty, b.PieceAt(mustSquare(t, "e4"))) // captured pawn removed
	assert.Equal(t, BPawn, b.PieceAt(mustSquare(t, "e3")))

	b.Unmake(&m)
	assert.Equal(t, WPawn, b.PieceAt(mustSquare(t, "e4")))
	assert.Equal(t, BPawn, b.PieceAt(mustSquare(t, "d4")))
	assert.Equal(t, Empty, b.PieceAt(mustSquare(t, "e3")))
}

func TestApplyCastlingRestrictedByAttackedSquare(t *testing.T) {
	// White king on e1, rook on h1, king-side right intact. With a clear
	// path castling is generated; a black rook on f3 then attacks f1,
	// which must block king-side castling.
	b, err := NewBoardFromFEN("4k3/8/8/8/8/8/8/4K2R w K - 0 1")
	require.NoError(t, err)
	moves := GenerateMoves(b)
	assert.True(t, containsCastle(moves), "castling should be available with a clear path")

	attacked, err := NewBoardFromFEN("4k3/8/8/8/8/5r2/8/4K2R w K - 0 1")
	require.NoError(t, err)
	moves = GenerateMoves(attacked)
	assert.False(t, containsCastle(moves), "castling through an attacked square must be excluded")
}

func containsCastle(moves []Move) bool {
	for _, m := range moves {
		if m.IsCastleK || m.IsCastleQ {
			return true
		}
	}
	return false
}

func TestApplyPromotionCapture(t *testing.T) {
	b, err := NewBoardFromFEN("n3k3/1P6/8/8/8/8/8/4K3 w - - 0 1")
	require.NoError(t, err)

	m, err := parseUCIMove(b, "b7a8q")
	require.NoError(t, err)

	legal, err := b.Apply(&m)
	require.NoError(t, err)
	assert.True(t, legal)
	assert.Equal(t, WQueen, b.PieceAt(mustSquare(t, "a8")))

	b.Unmake(&m)
	assert.Equal(t, BKnight, b.PieceAt(mustSquare(t, "a8")))
	assert.Equal(t, WPawn, b.PieceAt(mustSquare(t, "b7")))
}

func TestRepetitionHistoryTracksApplyAndUnmake(t *testing.T) {
	b := NewBoard()
	g1, err := parseUCIMove(b, "g1f3")
	require.NoError(t, err)
	_, err = b.Apply(&g1)
	require.NoError(t, err)
	assert.Equal(t, 1, b.History[b.Hash])

	b.Unmake(&g1)
	assert.Equal(t, 0, b.History[b.Hash])
}

func mustSquare(t *testing.T, s string) Square {
	t.Helper()
	sq, ok := parseSquare(s)
	require.True(t, ok, s)
	return sq
}
