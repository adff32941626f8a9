package chess

// Apply mutates b to reflect m and reports whether the resulting
// position is legal, i.e. whether the mover's own king is left out of
// check. Every call to Apply — legal or not — must
// be paired with exactly one later call to Unmake(m); the repetition
// history is maintained here (incremented) and in Unmake (decremented)
// so the two stay balanced regardless of the legality outcome.
func (b *Board) Apply(m *Move) (bool, error) {
	mover := b.Squares[m.From]
	if mover == Empty || mover.Color() != b.SideToMove() {
		return false, newError(IllegalApply, "no mover's piece on %s", m.From)
	}

	m.prevCastleRights = b.CastleRights
	m.prevEnPassant = b.EnPassant
	m.prevHalfmoveClock = b.HalfmoveClock

	side := mover.Color()

	if mover.Kind() == Pawn || m.IsCapture() {
		b.HalfmoveClock = 0
	} else {
		b.HalfmoveClock++
	}

	switch {
	case m.IsEnPassant:
		capturedSq, _ := addDir(m.To, -pawnForward(side), 0)
		b.clearSquare(capturedSq)
		b.clearSquare(m.From)
		b.setSquare(m.To, mover)
	case m.IsCastleK:
		b.clearSquare(m.From)
		b.setSquare(m.To, mover)
		if side == White {
			b.clearSquare(whiteRookK)
			b.setSquare(whiteRookKTransit, WRook)
		} else {
			b.clearSquare(blackRookK)
			b.setSquare(blackRookKTransit, BRook)
		}
	case m.IsCastleQ:
		b.clearSquare(m.From)
		b.setSquare(m.To, mover)
		if side == White {
			b.clearSquare(whiteRookQ)
			b.setSquare(whiteRookQTransit, WRook)
		} else {
			b.clearSquare(blackRookQ)
			b.setSquare(blackRookQTransit, BRook)
		}
	case m.IsPromotion():
		b.clearSquare(m.From)
		b.setSquare(m.To, NewPiece(m.Promo, side))
	default:
		b.clearSquare(m.From)
		b.setSquare(m.To, mover)
	}

	b.setCastling(b.CastleRights &^ castleLossMask(m.From) &^ castleLossMask(m.To))

	if m.IsDoublePush {
		epSq, _ := addDir(m.To, -pawnForward(side), 0)
		b.setEnPassant(epSq)
	} else {
		b.setEnPassant(0)
	}

	b.flipSideToMove()
	if side == Black {
		b.MoveNumber++
	}

	legal := !InCheck(b, side)

	b.History[b.Hash]++

	return legal, nil
}

// Unmake reverses the effect of the most recent Apply(m) call, which
// must be the last one still outstanding (Apply/Unmake nest strictly
// like a stack). Every restoration, like every mutation in Apply,
// passes through the Hash-maintaining setSquare/setCastling/
// setEnPassant/flipSideToMove, so Hash ends up bit-identical to its
// pre-Apply value without ever being assigned directly.
func (b *Board) Unmake(m *Move) {
	b.History[b.Hash]--

	side := b.SideToMove().Opponent() // side that moved, before we flip back
	b.flipSideToMove()
	if side == Black {
		b.MoveNumber--
	}

	b.setEnPassant(m.prevEnPassant)
	b.setCastling(m.prevCastleRights)
	b.HalfmoveClock = m.prevHalfmoveClock

	switch {
	case m.IsEnPassant:
		b.setSquare(m.To, Empty)
		b.setSquare(m.From, m.Piece)
		capturedSq, _ := addDir(m.To, -pawnForward(side), 0)
		b.setSquare(capturedSq, m.Captured)
	case m.IsCastleK:
		b.setSquare(m.To, Empty)
		b.setSquare(m.From, m.Piece)
		if side == White {
			b.setSquare(whiteRookKTransit, Empty)
			b.setSquare(whiteRookK, WRook)
		} else {
			b.setSquare(blackRookKTransit, Empty)
			b.setSquare(blackRookK, BRook)
		}
	case m.IsCastleQ:
		b.setSquare(m.To, Empty)
		b.setSquare(m.From, m.Piece)
		if side == White {
			b.setSquare(whiteRookQTransit, Empty)
			b.setSquare(whiteRookQ, WRook)
		} else {
			b.setSquare(blackRookQTransit, Empty)
			b.setSquare(blackRookQ, BRook)
		}
	default:
		// Promotions restore here too: m.Piece always holds the
		// pre-promotion pawn, so the generic capture/source
		// restoration is identical for a promoting and a
		// non-promoting move.
		b.setSquare(m.To, m.Captured)
		b.setSquare(m.From, m.Piece)
	}
}

// pawnForward returns the row delta a pawn of side advances by.
func pawnForward(side Color) int {
	if side == White {
		return -1
	}
	return 1
}

// castleLossMask returns the castle-rights bits forfeited when a piece
// departs or arrives on s (a king or rook home square).
func castleLossMask(s Square) uint8 {
	switch s {
	case whiteKingHome:
		return CastleWK | CastleWQ
	case blackKingHome:
		return CastleBK | CastleBQ
	case whiteRookK:
		return CastleWK
	case whiteRookQ:
		return CastleWQ
	case blackRookK:
		return CastleBK
	case blackRookQ:
		return CastleBQ
	default:
		return 0
	}
}
