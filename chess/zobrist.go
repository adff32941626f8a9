package chess

import "math/rand"

// Zobrist key tables. Seeded deterministically so a given position
// always hashes the same way across runs and processes (important for
// repeatable perft/test runs).
var (
	zobristPieceSquare [15][64]uint64 // indexed by Piece value (0..14), 64 squares
	zobristCastling    [16]uint64     // one per possible 4-bit castle-rights value
	zobristEnPassant   [8]uint64      // one per file
	zobristSideToMove  uint64
)

func init() {
	rng := rand.New(rand.NewSource(0x5741_4c52_5553_4254)) // "WALRUSBT" in hex-ish, fixed seed

	for p := 0; p < 15; p++ {
		for s := 0; s < 64; s++ {
			zobristPieceSquare[p][s] = rng.Uint64()
		}
	}
	for i := range zobristCastling {
		zobristCastling[i] = rng.Uint64()
	}
	for f := range zobristEnPassant {
		zobristEnPassant[f] = rng.Uint64()
	}
	zobristSideToMove = rng.Uint64()
}

// zobristKey returns the piece-square key for p on s. p must not be Empty.
func zobristKey(p Piece, s Square) uint64 {
	return zobristPieceSquare[p][s]
}

// computeHash reduces every field of b to its Zobrist hash from
// scratch. Used only once, when a board is built from a FEN string;
// every subsequent mutation updates b.Hash incrementally through the
// setSquare/setCastling/setEnPassant/flipSideToMove setters.
func computeHash(b *Board) uint64 {
	var h uint64
	for s := Square(0); s < 64; s++ {
		if p := b.Squares[s]; p != Empty {
			h ^= zobristKey(p, s)
		}
	}
	h ^= zobristCastling[b.CastleRights]
	if b.EnPassant != 0 {
		h ^= zobristEnPassant[b.EnPassant.Col()]
	}
	if b.WhiteToMove {
		h ^= zobristSideToMove
	}
	return h
}
