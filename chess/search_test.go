package chess

import (
	"strings"
	"testing"
	"time"
)

func TestSearchStartPositionReturnsAMove(t *testing.T) {
	b := NewBoard()

	start := time.Now()
	result := Search(b, 3)
	elapsed := time.Since(start)

	t.Logf("Depth 3: PV=%q Score=%d Nodes=%d Time=%v", result.PV, result.Score, result.Nodes, elapsed)

	if result.PV == "" {
		t.Fatal("search returned no principal variation from the start position")
	}
	if elapsed > 30*time.Second {
		t.Errorf("search took too long: %v", elapsed)
	}
}

func TestSearchFindsMateInOne(t *testing.T) {
	b, err := NewBoardFromFEN("r1bqkb1r/pppp1Qpp/2n2n2/4p3/2B1P3/8/PPPP1PPP/RNB1K1NR b KQkq - 0 1")
	if err != nil {
		t.Fatalf("NewBoardFromFEN: %v", err)
	}

	result := Search(b, 2)
	pv := strings.Fields(result.PV)

	if len(pv) == 0 {
		// No legal moves is also an acceptable way to recognize mate-in-1
		// here: the side to move is already mated.
		if !InCheck(b, b.SideToMove()) {
			t.Fatalf("expected black to be in check with no escape, got score %d", result.Score)
		}
		return
	}

	if pv[0] != "e8f7" {
		t.Errorf("expected the king to recapture the queen (e8f7), got %q", pv[0])
	}
}

func TestSearchStalemateScoresZero(t *testing.T) {
	// Classic stalemate: black king on a8 has no moves and is not in check.
	b, err := NewBoardFromFEN("k7/8/1Q6/8/8/8/8/7K b - - 0 1")
	if err != nil {
		t.Fatalf("NewBoardFromFEN: %v", err)
	}

	result := Search(b, 2)
	if result.Score != 0 {
		t.Errorf("stalemate should score 0, got %d", result.Score)
	}
}

func TestSearchThreefoldRepetitionScoresZero(t *testing.T) {
	b := NewBoard()
	s := &Searcher{Board: b}

	// Shuffle knights back and forth to build up repetition count before
	// asking the searcher to look further: g1-f3-g1 and b8-c6-b8, three
	// full cycles so the starting position's hash is recorded 3 times.
	shuffle := []string{
		"g1f3", "b8c6", "f3g1", "c6b8",
		"g1f3", "b8c6", "f3g1", "c6b8",
		"g1f3", "b8c6", "f3g1", "c6b8",
	}
	var applied []*Move
	for _, u := range shuffle {
		m, err := parseUCIMove(b, u)
		if err != nil {
			t.Fatalf("parseUCIMove(%q): %v", u, err)
		}
		if _, err := b.Apply(&m); err != nil {
			t.Fatalf("Apply(%q): %v", u, err)
		}
		applied = append(applied, &m)
	}

	if b.RepetitionCount() < 3 {
		t.Fatalf("expected the shuffled position to have repeated at least 3 times, got %d", b.RepetitionCount())
	}

	score, _ := s.negamax(1, 0, -Checkmate-1, Checkmate+1)
	if score != 0 {
		t.Errorf("threefold-repeated position should score 0, got %d", score)
	}

	for i := len(applied) - 1; i >= 0; i-- {
		b.Unmake(applied[i])
	}
}
