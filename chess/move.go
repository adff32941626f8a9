package chess

// Move records a single ply, including the pre-image state Unmake
// needs to restore the board exactly (castle rights, en-passant
// square, and halfmove clock as they stood before Apply ran).
type Move struct {
	From, To Square
	Piece    Piece // the moving piece, as it stood on From before Apply
	Captured Piece // Empty if none
	Promo    Kind  // NoKind unless this is a promotion

	IsEnPassant  bool
	IsCastleK    bool
	IsCastleQ    bool
	IsDoublePush bool

	Score int32 // capture/promotion category + MVV-LVA ordering score, set by movegen

	// Pre-image, filled in by Apply and consumed by Unmake.
	prevCastleRights  uint8
	prevEnPassant     Square
	prevHalfmoveClock int
}

// IsCapture reports whether this move removes an enemy piece
// (including en-passant captures, where Captured is the pawn taken).
func (m Move) IsCapture() bool {
	return m.Captured != Empty
}

// IsPromotion reports whether this move promotes a pawn.
func (m Move) IsPromotion() bool {
	return m.Promo != NoKind
}

// UCI renders the move in long algebraic notation, e.g. "e2e4" or
// "b7b8q" for a promotion.
func (m Move) UCI() string {
	s := m.From.String() + m.To.String()
	if m.IsPromotion() {
		s += string(m.Promo.PromotionChar())
	}
	return s
}

// parseUCIMove resolves a long-algebraic move string ("e2e4",
// "b7b8q") against the pseudo-legal moves generated from b. Returns
// BadMove if the string doesn't parse or doesn't match any of them;
// whether the move leaves the king in check is not checked here.
func parseUCIMove(b *Board, s string) (Move, error) {
	if len(s) < 4 || len(s) > 5 {
		return Move{}, newError(BadMove, "wrong length: %q", s)
	}
	from, ok := parseSquare(s[0:2])
	if !ok {
		return Move{}, newError(BadMove, "bad source square: %q", s)
	}
	to, ok := parseSquare(s[2:4])
	if !ok {
		return Move{}, newError(BadMove, "bad destination square: %q", s)
	}
	var promo Kind
	if len(s) == 5 {
		promo, ok = KindFromPromotionChar(s[4])
		if !ok {
			return Move{}, newError(BadMove, "bad promotion char: %q", s)
		}
	}

	for _, cand := range GenerateMoves(b) {
		if cand.From == from && cand.To == to && cand.Promo == promo {
			return cand, nil
		}
	}
	return Move{}, newError(BadMove, "not a legal move in this position: %q", s)
}

// ParseAndApply parses a long-algebraic move string against b's
// current position, applies it, and returns its canonical UCI string.
// It is the entry point the UCI layer (D1) uses for both the
// "position ... moves" list and for replaying the engine's own
// chosen best move into Board, so callers never touch Apply/Unmake or
// GenerateMoves directly.
func ParseAndApply(b *Board, s string) (string, error) {
	m, err := parseUCIMove(b, s)
	if err != nil {
		return "", err
	}
	legal, err := b.Apply(&m)
	if err != nil {
		return "", err
	}
	if !legal {
		b.Unmake(&m)
		return "", newError(BadMove, "move leaves king in check: %q", s)
	}
	return m.UCI(), nil
}
