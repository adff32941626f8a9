package chess

// Perft counts the leaf nodes of the full game tree rooted at b to
// the given depth, by walking every pseudo-legal move and filtering
// out illegal ones via Apply's legality result. Used to validate the
// move generator and make/unmake against known reference node counts.
func Perft(b *Board, depth int) uint64 {
	if depth == 0 {
		return 1
	}

	var nodes uint64
	moves := GenerateMoves(b)
	for i := range moves {
		m := moves[i]
		legal, err := b.Apply(&m)
		if err != nil {
			panic(err)
		}
		if legal {
			nodes += Perft(b, depth-1)
		}
		b.Unmake(&m)
	}
	return nodes
}

// DivideResult is one child move's contribution to a Perft count, for
// the "perft divide" diagnostic that compares node counts move by
// move against a reference engine.
type DivideResult struct {
	Move  string
	Nodes uint64
}

// Divide runs Perft one ply deep per legal root move, for diagnosing
// exactly which branch of the move generator disagrees with a known
// reference count.
func Divide(b *Board, depth int) []DivideResult {
	if depth <= 0 {
		return nil
	}

	var results []DivideResult
	moves := GenerateMoves(b)
	for i := range moves {
		m := moves[i]
		legal, err := b.Apply(&m)
		if err != nil {
			panic(err)
		}
		if legal {
			results = append(results, DivideResult{Move: m.UCI(), Nodes: Perft(b, depth-1)})
		}
		b.Unmake(&m)
	}
	return results
}
