package chess

import (
	"strconv"
	"strings"
)

// Square is a board index: 0 is a8, 7 is h8, 56 is a1, 63 is h1 (row =
// index/8, col = index%8).
type Square int8

// Row returns the 0-based row (0 = rank 8).
func (s Square) Row() int { return int(s) / 8 }

// Col returns the 0-based column (0 = file a).
func (s Square) Col() int { return int(s) % 8 }

func squareAt(row, col int) Square { return Square(row*8 + col) }

// onBoard reports whether row/col are both in 0..7.
func onBoard(row, col int) bool {
	return row >= 0 && row < 8 && col >= 0 && col < 8
}

// addDir steps from s by (dRow, dCol), reporting false if the result
// would leave the board in either dimension (catches both raw
// out-of-range indices and file wraparound).
func addDir(s Square, dRow, dCol int) (Square, bool) {
	row, col := s.Row()+dRow, s.Col()+dCol
	if !onBoard(row, col) {
		return 0, false
	}
	return squareAt(row, col), true
}

// String renders algebraic notation, e.g. "e2".
func (s Square) String() string {
	return string([]byte{byte('a' + s.Col()), byte('0' + (8 - s.Row()))})
}

func parseSquare(str string) (Square, bool) {
	if len(str) != 2 {
		return 0, false
	}
	file, rank := str[0], str[1]
	if file < 'a' || file > 'h' || rank < '1' || rank > '8' {
		return 0, false
	}
	col := int(file - 'a')
	row := 7 - int(rank-'1')
	return squareAt(row, col), true
}

// Castle rights bits.
const (
	CastleBK uint8 = 1 << iota // black king-side
	CastleBQ                   // black queen-side
	CastleWK                   // white king-side
	CastleWQ                   // white queen-side
	castleAll = CastleBK | CastleBQ | CastleWK | CastleWQ
)

// Fixed king source/destination squares for the four castle outcomes.
const (
	whiteKingHome Square = 60 // e1
	blackKingHome Square = 4  // e8
	whiteRookK    Square = 63 // h1
	whiteRookQ    Square = 56 // a1
	blackRookK    Square = 7  // h8
	blackRookQ    Square = 0  // a8

	whiteKingSideDest  Square = 62 // g1
	whiteQueenSideDest Square = 58 // c1
	blackKingSideDest  Square = 6  // g8
	blackQueenSideDest Square = 2  // c8

	whiteRookKTransit Square = 61 // f1
	whiteRookQTransit Square = 59 // d1
	blackRookKTransit Square = 5  // f8
	blackRookQTransit Square = 3  // d8
)

// Board is the mutable chess position. It is mutated only through
// Apply/Unmake (chess/makeunmake.go); every mutation incrementally
// maintains Hash.
type Board struct {
	Squares       [64]Piece
	WhiteToMove   bool
	CastleRights  uint8
	EnPassant     Square // 0 = none (a8 is never a legal ep target)
	Hash          uint64
	MoveNumber    int // full-move number, per FEN convention
	HalfmoveClock int // FEN halfmove clock; carried for round-tripping, not used by search
	KingSquare    [2]Square
	History       map[uint64]int
}

// StartFEN is the standard chess starting position.
const StartFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// NewBoard returns a board set to the standard starting position.
func NewBoard() *Board {
	b, err := NewBoardFromFEN(StartFEN)
	if err != nil {
		panic(err) // StartFEN is a compile-time constant; this can never fail
	}
	return b
}

// NewBoardFromFEN parses a six-field FEN string into a fresh board.
func NewBoardFromFEN(fen string) (*Board, error) {
	fields := strings.Fields(fen)
	if len(fields) < 4 {
		return nil, newError(BadFEN, "expected at least 4 fields, got %d: %q", len(fields), fen)
	}

	b := &Board{History: make(map[uint64]int)}
	var sawWhiteKing, sawBlackKing bool

	rows := strings.Split(fields[0], "/")
	if len(rows) != 8 {
		return nil, newError(BadFEN, "expected 8 ranks, got %d: %q", len(rows), fen)
	}
	for row, rankStr := range rows {
		col := 0
		for i := 0; i < len(rankStr); i++ {
			c := rankStr[i]
			if c >= '1' && c <= '8' {
				col += int(c - '0')
				continue
			}
			p, ok := PieceFromFENChar(c)
			if !ok {
				return nil, newError(BadFEN, "invalid piece char %q: %q", string(c), fen)
			}
			if col >= 8 {
				return nil, newError(BadFEN, "rank %d overflows 8 files: %q", row, fen)
			}
			sq := squareAt(row, col)
			b.Squares[sq] = p
			if p == WKing {
				b.KingSquare[White] = sq
				sawWhiteKing = true
			} else if p == BKing {
				b.KingSquare[Black] = sq
				sawBlackKing = true
			}
			col++
		}
		if col != 8 {
			return nil, newError(BadFEN, "rank %d has %d files, want 8: %q", row, col, fen)
		}
	}
	if !sawWhiteKing {
		return nil, newError(MissingKing, "no white king on board: %q", fen)
	}
	if !sawBlackKing {
		return nil, newError(MissingKing, "no black king on board: %q", fen)
	}

	switch fields[1] {
	case "w":
		b.WhiteToMove = true
	case "b":
		b.WhiteToMove = false
	default:
		return nil, newError(BadFEN, "invalid active color %q: %q", fields[1], fen)
	}

	if fields[2] != "-" {
		for _, c := range fields[2] {
			switch c {
			case 'K':
				b.CastleRights |= CastleWK
			case 'Q':
				b.CastleRights |= CastleWQ
			case 'k':
				b.CastleRights |= CastleBK
			case 'q':
				b.CastleRights |= CastleBQ
			default:
				return nil, newError(BadFEN, "invalid castling char %q: %q", string(c), fen)
			}
		}
	}

	if fields[3] != "-" {
		sq, ok := parseSquare(fields[3])
		if !ok {
			return nil, newError(BadFEN, "invalid en-passant square %q: %q", fields[3], fen)
		}
		b.EnPassant = sq
	}

	b.HalfmoveClock = 0
	b.MoveNumber = 1
	if len(fields) >= 5 {
		if n, err := strconv.Atoi(fields[4]); err == nil {
			b.HalfmoveClock = n
		}
	}
	if len(fields) >= 6 {
		if n, err := strconv.Atoi(fields[5]); err == nil {
			b.MoveNumber = n
		}
	}

	b.Hash = computeHash(b)

	return b, nil
}

// FEN serializes the board back to a six-field FEN string.
func (b *Board) FEN() string {
	var sb strings.Builder
	for row := 0; row < 8; row++ {
		empty := 0
		for col := 0; col < 8; col++ {
			p := b.Squares[squareAt(row, col)]
			if p == Empty {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteByte(byte('0' + empty))
				empty = 0
			}
			sb.WriteByte(p.FENChar())
		}
		if empty > 0 {
			sb.WriteByte(byte('0' + empty))
		}
		if row < 7 {
			sb.WriteByte('/')
		}
	}

	if b.WhiteToMove {
		sb.WriteString(" w ")
	} else {
		sb.WriteString(" b ")
	}

	rights := ""
	if b.CastleRights&CastleWK != 0 {
		rights += "K"
	}
	if b.CastleRights&CastleWQ != 0 {
		rights += "Q"
	}
	if b.CastleRights&CastleBK != 0 {
		rights += "k"
	}
	if b.CastleRights&CastleBQ != 0 {
		rights += "q"
	}
	if rights == "" {
		rights = "-"
	}
	sb.WriteString(rights)

	sb.WriteByte(' ')
	if b.EnPassant == 0 {
		sb.WriteByte('-')
	} else {
		sb.WriteString(b.EnPassant.String())
	}

	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(b.HalfmoveClock))
	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(b.MoveNumber))

	return sb.String()
}

// PieceAt returns the piece on s (Empty if none).
func (b *Board) PieceAt(s Square) Piece {
	return b.Squares[s]
}

// SideToMove returns White or Black depending on whose turn it is.
func (b *Board) SideToMove() Color {
	if b.WhiteToMove {
		return White
	}
	return Black
}

// setSquare places p on s, removing whatever was there, and
// incrementally updates Hash for both the vacated and newly occupied
// piece-square keys.
func (b *Board) setSquare(s Square, p Piece) {
	if old := b.Squares[s]; old != Empty {
		b.Hash ^= zobristKey(old, s)
	}
	b.Squares[s] = p
	if p != Empty {
		b.Hash ^= zobristKey(p, s)
		if p == WKing {
			b.KingSquare[White] = s
		} else if p == BKing {
			b.KingSquare[Black] = s
		}
	}
}

// clearSquare empties s.
func (b *Board) clearSquare(s Square) {
	b.setSquare(s, Empty)
}

// setCastling incrementally updates Hash for a castle-rights change.
func (b *Board) setCastling(rights uint8) {
	if rights == b.CastleRights {
		return
	}
	b.Hash ^= zobristCastling[b.CastleRights]
	b.CastleRights = rights
	b.Hash ^= zobristCastling[b.CastleRights]
}

// setEnPassant incrementally updates Hash for an en-passant change.
func (b *Board) setEnPassant(s Square) {
	if s == b.EnPassant {
		return
	}
	if b.EnPassant != 0 {
		b.Hash ^= zobristEnPassant[b.EnPassant.Col()]
	}
	b.EnPassant = s
	if b.EnPassant != 0 {
		b.Hash ^= zobristEnPassant[b.EnPassant.Col()]
	}
}

// flipSideToMove incrementally updates Hash for the side-to-move toggle.
func (b *Board) flipSideToMove() {
	b.WhiteToMove = !b.WhiteToMove
	b.Hash ^= zobristSideToMove
}

// RepetitionCount returns how many times the current hash has been
// recorded in History, including the in-progress occurrence search
// bookkeeping adds while walking the tree.
func (b *Board) RepetitionCount() int {
	return b.History[b.Hash]
}
