package chess

import "testing"

func TestPerftStartPos(t *testing.T) {
	cases := []struct {
		depth int
		want  uint64
	}{
		{1, 20},
		{2, 400},
		{3, 8902},
		{4, 197281},
		{5, 4865609},
	}

	b := NewBoard()
	for _, c := range cases {
		if testing.Short() && c.depth > 4 {
			continue
		}
		got := Perft(b, c.depth)
		if got != c.want {
			t.Errorf("Perft(startpos, %d) = %d, want %d", c.depth, got, c.want)
		}
	}
}

func TestPerftStartPosDepth6(t *testing.T) {
	if testing.Short() {
		t.Skip("depth 6 perft is slow; run with -short=false")
	}
	b := NewBoard()
	want := uint64(119060324)
	if got := Perft(b, 6); got != want {
		t.Errorf("Perft(startpos, 6) = %d, want %d", got, want)
	}
}

// Kiwipete, a standard perft torture position exercising castling,
// en-passant, and promotions together.
const kiwipeteFEN = "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1"

func TestPerftKiwipete(t *testing.T) {
	b, err := NewBoardFromFEN(kiwipeteFEN)
	if err != nil {
		t.Fatalf("NewBoardFromFEN: %v", err)
	}
	want := uint64(97862)
	if got := Perft(b, 3); got != want {
		t.Errorf("Perft(kiwipete, 3) = %d, want %d", got, want)
	}
}

// TestPerftUnmakeRestoresBoard checks that apply followed by unmake
// restores the hash, squares, castle rights and en-passant square
// bit-identically.
func TestPerftUnmakeRestoresBoard(t *testing.T) {
	b := NewBoard()
	before := *b
	moves := GenerateMoves(b)
	for i := range moves {
		m := moves[i]
		if _, err := b.Apply(&m); err != nil {
			t.Fatalf("Apply: %v", err)
		}
		b.Unmake(&m)
		if b.Hash != before.Hash {
			t.Fatalf("hash not restored after apply/unmake of %s: got %x want %x", m.UCI(), b.Hash, before.Hash)
		}
		if b.Squares != before.Squares {
			t.Fatalf("squares not restored after apply/unmake of %s", m.UCI())
		}
		if b.CastleRights != before.CastleRights || b.EnPassant != before.EnPassant {
			t.Fatalf("castle/ep not restored after apply/unmake of %s", m.UCI())
		}
	}
}
