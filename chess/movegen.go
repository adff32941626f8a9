package chess

// knightDeltas and kingDeltas are the fixed offset tables for
// leaper pieces.
var knightDeltas = [8][2]int{
	{-2, -1}, {-2, 1}, {-1, -2}, {-1, 2},
	{1, -2}, {1, 2}, {2, -1}, {2, 1},
}

var kingDeltas = [8][2]int{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

var bishopRays = [4][2]int{{-1, -1}, {-1, 1}, {1, -1}, {1, 1}}
var rookRays = [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}

// GenerateMoves returns every pseudo-legal move for the side to move:
// legal in every respect except possibly leaving the mover's own king
// in check (a condition Apply reports back to the caller).
// Castling is the one exception generated fully legally
// here, since its three preconditions (king not in, through, or
// arriving in check) are cheap to test during generation and keep the
// attacked-square table colocated with the rest of the move-shape
// logic.
func GenerateMoves(b *Board) []Move {
	moves := make([]Move, 0, 48)
	side := b.SideToMove()

	for s := Square(0); s < 64; s++ {
		p := b.Squares[s]
		if p == Empty || p.Color() != side {
			continue
		}
		switch p.Kind() {
		case Pawn:
			genPawnMoves(b, s, side, &moves)
		case Knight:
			genLeaperMoves(b, s, side, knightDeltas[:], &moves)
		case Bishop:
			genSliderMoves(b, s, side, bishopRays[:], &moves)
		case Rook:
			genSliderMoves(b, s, side, rookRays[:], &moves)
		case Queen:
			genSliderMoves(b, s, side, bishopRays[:], &moves)
			genSliderMoves(b, s, side, rookRays[:], &moves)
		case King:
			genLeaperMoves(b, s, side, kingDeltas[:], &moves)
			genCastleMoves(b, side, &moves)
		}
	}

	for i := range moves {
		moves[i].Score = orderScore(moves[i])
	}
	return moves
}

// orderScore computes the 8-bit MVV-LVA ordering key: 10*victim_kind
// - attacker_kind for captures, 0 for non-captures. Promotions and
// captures are additionally flagged in the high bits so OrderMoves's
// single reverse-sort tries them, ranked by MVV-LVA, ahead of every
// quiet move.
func orderScore(m Move) int32 {
	var mvvLva int32
	if m.IsCapture() {
		mvvLva = 10*int32(m.Captured.Kind()) - int32(m.Piece.Kind())
	}
	var category int32
	switch {
	case m.IsCapture():
		category = 2
	case m.IsPromotion():
		category = 1
	}
	return category<<8 | mvvLva
}

func genPawnMoves(b *Board, from Square, side Color, moves *[]Move) {
	forward := -1 // toward row 0 (rank 8) for White
	startRow := 6
	promoRow := 0
	if side == Black {
		forward = 1
		startRow = 1
		promoRow = 7
	}

	one, ok := addDir(from, forward, 0)
	if ok && b.Squares[one] == Empty {
		addPawnAdvance(b, from, one, side, promoRow, moves)
		if from.Row() == startRow {
			two, ok := addDir(from, forward*2, 0)
			if ok && b.Squares[two] == Empty {
				*moves = append(*moves, Move{From: from, To: two, Piece: b.Squares[from], IsDoublePush: true})
			}
		}
	}

	for _, dc := range [2]int{-1, 1} {
		to, ok := addDir(from, forward, dc)
		if !ok {
			continue
		}
		target := b.Squares[to]
		if target != Empty && target.Color() != side {
			addPawnCapture(b, from, to, side, promoRow, target, moves)
		} else if to == b.EnPassant && b.EnPassant != 0 {
			capturedSq, ok := addDir(to, -forward, 0)
			if !ok {
				continue
			}
			*moves = append(*moves, Move{
				From: from, To: to, Piece: b.Squares[from],
				Captured: b.Squares[capturedSq], IsEnPassant: true,
			})
		}
	}
}

func addPawnAdvance(b *Board, from, to Square, side Color, promoRow int, moves *[]Move) {
	if to.Row() == promoRow {
		for _, k := range [4]Kind{Queen, Rook, Bishop, Knight} {
			*moves = append(*moves, Move{From: from, To: to, Piece: b.Squares[from], Promo: k})
		}
		return
	}
	*moves = append(*moves, Move{From: from, To: to, Piece: b.Squares[from]})
}

func addPawnCapture(b *Board, from, to Square, side Color, promoRow int, target Piece, moves *[]Move) {
	if to.Row() == promoRow {
		for _, k := range [4]Kind{Queen, Rook, Bishop, Knight} {
			*moves = append(*moves, Move{From: from, To: to, Piece: b.Squares[from], Captured: target, Promo: k})
		}
		return
	}
	*moves = append(*moves, Move{From: from, To: to, Piece: b.Squares[from], Captured: target})
}

func genLeaperMoves(b *Board, from Square, side Color, deltas [][2]int, moves *[]Move) {
	for _, d := range deltas {
		to, ok := addDir(from, d[0], d[1])
		if !ok {
			continue
		}
		target := b.Squares[to]
		if target != Empty && target.Color() == side {
			continue
		}
		*moves = append(*moves, Move{From: from, To: to, Piece: b.Squares[from], Captured: target})
	}
}

func genSliderMoves(b *Board, from Square, side Color, rays [][2]int, moves *[]Move) {
	for _, d := range rays {
		cur := from
		for {
			to, ok := addDir(cur, d[0], d[1])
			if !ok {
				break
			}
			target := b.Squares[to]
			if target == Empty {
				*moves = append(*moves, Move{From: from, To: to, Piece: b.Squares[from]})
				cur = to
				continue
			}
			if target.Color() != side {
				*moves = append(*moves, Move{From: from, To: to, Piece: b.Squares[from], Captured: target})
			}
			break
		}
	}
}

func genCastleMoves(b *Board, side Color, moves *[]Move) {
	opp := side.Opponent()
	if side == White {
		if b.CastleRights&CastleWK != 0 &&
			b.Squares[whiteRookKTransit] == Empty && b.Squares[whiteKingSideDest] == Empty &&
			!isSquareAttacked(b, whiteKingHome, opp) &&
			!isSquareAttacked(b, whiteRookKTransit, opp) &&
			!isSquareAttacked(b, whiteKingSideDest, opp) {
			*moves = append(*moves, Move{From: whiteKingHome, To: whiteKingSideDest, Piece: WKing, IsCastleK: true})
		}
		if b.CastleRights&CastleWQ != 0 &&
			b.Squares[whiteRookQTransit] == Empty && b.Squares[whiteQueenSideDest] == Empty && b.Squares[whiteRookQ+1] == Empty &&
			!isSquareAttacked(b, whiteKingHome, opp) &&
			!isSquareAttacked(b, whiteRookQTransit, opp) &&
			!isSquareAttacked(b, whiteQueenSideDest, opp) {
			*moves = append(*moves, Move{From: whiteKingHome, To: whiteQueenSideDest, Piece: WKing, IsCastleQ: true})
		}
		return
	}
	if b.CastleRights&CastleBK != 0 &&
		b.Squares[blackRookKTransit] == Empty && b.Squares[blackKingSideDest] == Empty &&
		!isSquareAttacked(b, blackKingHome, opp) &&
		!isSquareAttacked(b, blackRookKTransit, opp) &&
		!isSquareAttacked(b, blackKingSideDest, opp) {
		*moves = append(*moves, Move{From: blackKingHome, To: blackKingSideDest, Piece: BKing, IsCastleK: true})
	}
	if b.CastleRights&CastleBQ != 0 &&
		b.Squares[blackRookQTransit] == Empty && b.Squares[blackQueenSideDest] == Empty && b.Squares[blackRookQ+1] == Empty &&
		!isSquareAttacked(b, blackKingHome, opp) &&
		!isSquareAttacked(b, blackRookQTransit, opp) &&
		!isSquareAttacked(b, blackQueenSideDest, opp) {
		*moves = append(*moves, Move{From: blackKingHome, To: blackQueenSideDest, Piece: BKing, IsCastleQ: true})
	}
}

// isSquareAttacked reports whether any piece of color by attacks s.
// Used for castling legality and, in makeunmake.go, for the post-move
// own-king-in-check test.
func isSquareAttacked(b *Board, s Square, by Color) bool {
	pawnDir := 1 // a white pawn attacking s sits one row below it (higher row index)
	if by == Black {
		pawnDir = -1
	}
	for _, dc := range [2]int{-1, 1} {
		from, ok := addDir(s, pawnDir, dc)
		if ok && b.Squares[from] == NewPiece(Pawn, by) {
			return true
		}
	}

	for _, d := range knightDeltas {
		from, ok := addDir(s, d[0], d[1])
		if ok && b.Squares[from] == NewPiece(Knight, by) {
			return true
		}
	}

	for _, d := range kingDeltas {
		from, ok := addDir(s, d[0], d[1])
		if ok && b.Squares[from] == NewPiece(King, by) {
			return true
		}
	}

	for _, d := range bishopRays {
		cur := s
		for {
			from, ok := addDir(cur, d[0], d[1])
			if !ok {
				break
			}
			p := b.Squares[from]
			if p == Empty {
				cur = from
				continue
			}
			if p.Color() == by && (p.Kind() == Bishop || p.Kind() == Queen) {
				return true
			}
			break
		}
	}

	for _, d := range rookRays {
		cur := s
		for {
			from, ok := addDir(cur, d[0], d[1])
			if !ok {
				break
			}
			p := b.Squares[from]
			if p == Empty {
				cur = from
				continue
			}
			if p.Color() == by && (p.Kind() == Rook || p.Kind() == Queen) {
				return true
			}
			break
		}
	}

	return false
}

// InCheck reports whether side's king currently sits on an attacked square.
func InCheck(b *Board, side Color) bool {
	return isSquareAttacked(b, b.KingSquare[side], side.Opponent())
}
