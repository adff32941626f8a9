package chess

import "strings"

// Checkmate is the mate sentinel: large enough that mate-distance
// adjustments (Checkmate - d) never collide with a real positional
// evaluation.
const Checkmate = 100_000_000

// MaxQuiesceDepth caps the captures-only quiescence extension below
// the frontier of the main search tree.
const MaxQuiesceDepth = 4

// SearchResult is what Search reports to its caller (the UCI layer):
// the principal variation as a space-joined long-algebraic string,
// the score in centipawns (or mate units) from the side-to-move's
// perspective at the root, and the total node count.
type SearchResult struct {
	PV    string
	Score int32
	Nodes uint64
	Depth int
}

// Searcher carries the per-call state of one Search invocation. Stop
// is polled between sibling expansions; a nil Stop (the zero value
// when Search, rather than SearchWithStop, is used) never stops the
// search early.
type Searcher struct {
	Board *Board
	Stop  *bool
	nodes uint64
}

// Search runs a fixed-depth negamax alpha-beta search with
// quiescence at the frontier.
func Search(b *Board, maxDepth int) SearchResult {
	s := &Searcher{Board: b}
	score, pv := s.negamax(maxDepth, 0, -Checkmate-1, Checkmate+1)
	return SearchResult{PV: strings.Join(pv, " "), Score: score, Nodes: s.nodes, Depth: maxDepth}
}

// SearchWithStop is Search with a cooperative cancellation flag: the
// caller may set *stop to true from the UCI read loop (between
// commands) to make the next sibling expansion unwind early. It does
// not change the returned score's correctness for the depth actually
// completed; it only lets the controller abandon a configured depth
// it no longer has time to finish.
func SearchWithStop(b *Board, maxDepth int, stop *bool) SearchResult {
	s := &Searcher{Board: b, Stop: stop}
	score, pv := s.negamax(maxDepth, 0, -Checkmate-1, Checkmate+1)
	return SearchResult{PV: strings.Join(pv, " "), Score: score, Nodes: s.nodes, Depth: maxDepth}
}

func (s *Searcher) stopped() bool {
	return s.Stop != nil && *s.Stop
}

// negamax returns the score of the current position at ply d below
// the root (from the side-to-move's perspective) and its principal
// variation, as move strings from this node downward.
func (s *Searcher) negamax(maxDepth, d int, alpha, beta int32) (int32, []string) {
	b := s.Board
	s.nodes++

	if d == maxDepth {
		return s.quiescence(alpha, beta, 0), nil
	}

	if b.RepetitionCount() >= 3 {
		return 0, nil
	}

	moves := GenerateMoves(b)
	OrderMoves(moves)

	var bestPV []string
	legalSeen := false

	for i := range moves {
		m := moves[i]
		legal, err := b.Apply(&m)
		if err != nil {
			panic(err) // apply errors here are fatal, not recoverable search state
		}
		if !legal {
			b.Unmake(&m)
			continue
		}
		legalSeen = true

		if s.stopped() {
			b.Unmake(&m)
			break
		}

		childScore, childPV := s.negamax(maxDepth, d+1, -beta, -alpha)
		score := -childScore
		b.Unmake(&m)

		if score >= beta {
			return beta, append([]string{m.UCI()}, childPV...)
		}
		if score > alpha {
			alpha = score
			bestPV = append([]string{m.UCI()}, childPV...)
		}
	}

	if !legalSeen {
		if InCheck(b, b.SideToMove()) {
			return -Checkmate + int32(d), nil
		}
		return 0, nil
	}

	return alpha, bestPV
}

// quiescence extends the search along captures only, bottoming out at
// MaxQuiesceDepth.
func (s *Searcher) quiescence(alpha, beta int32, q int) int32 {
	b := s.Board
	s.nodes++

	pat := Evaluate(b)
	if pat >= beta {
		return beta
	}
	if pat > alpha {
		alpha = pat
	}
	if q == MaxQuiesceDepth {
		return alpha
	}

	moves := GenerateMoves(b)
	OrderMoves(moves)

	for i := range moves {
		m := moves[i]
		if !m.IsCapture() {
			continue
		}
		legal, err := b.Apply(&m)
		if err != nil {
			panic(err)
		}
		if !legal {
			b.Unmake(&m)
			continue
		}

		score := -s.quiescence(-beta, -alpha, q+1)
		b.Unmake(&m)

		if score >= beta {
			return beta
		}
		if score > alpha {
			alpha = score
		}
	}

	return alpha
}
