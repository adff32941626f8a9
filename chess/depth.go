package chess

// DefaultDepth is the ceiling used when the time-based policy defers
// to it: no time control in effect, or still inside the opening grace
// window.
const DefaultDepth = 6

// PickDepth maps the remaining wall-clock budget for the side to move
// (remainingMS, in milliseconds) and the current full-move number to a
// search depth ceiling. remainingMS == 0 means no time control was
// supplied; defaultDepth is the ceiling used in that case and during
// the opening grace window (moveNumber < 14) — the caller's
// UCI-configured MaxDepth (set via "setoption name MaxDepth"), or
// DefaultDepth if never configured.
func PickDepth(remainingMS, moveNumber, defaultDepth int) int {
	if remainingMS == 0 || moveNumber < 14 {
		return defaultDepth
	}
	switch {
	case remainingMS <= 15_000:
		return 5
	case remainingMS <= 120_000:
		return 6
	case remainingMS <= 600_000:
		return 7
	case remainingMS <= 1_800_000:
		if moveNumber > 20 {
			return 8
		}
		return 7
	default:
		if moveNumber > 30 {
			return 9
		}
		return 8
	}
}
