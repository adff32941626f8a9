// Package gamelog records one CSV row per move the engine's search
// chooses (opening-book moves are not recorded), for offline review of
// search behavior across games. No third-party CSV
// library appears anywhere in the retrieved example pack, so this
// uses the standard library's encoding/csv (see DESIGN.md).
package gamelog

import (
	"encoding/csv"
	"fmt"
	"os"
)

var header = []string{"timestamp", "fen_before", "move", "depth", "score_cp", "nodes", "elapsed_ms"}

// Writer appends rows to a CSV game log file, writing the header once
// if the file is new.
type Writer struct {
	f *os.File
	w *csv.Writer
}

// Open appends to (or creates) the CSV file at path. An empty path
// yields a no-op Writer: every Record call silently does nothing, so
// callers don't need to special-case "no game log configured".
func Open(path string) (*Writer, error) {
	if path == "" {
		return &Writer{}, nil
	}

	_, statErr := os.Stat(path)
	needsHeader := os.IsNotExist(statErr)

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, fmt.Errorf("gamelog: opening %s: %w", path, err)
	}

	w := csv.NewWriter(f)
	if needsHeader {
		if err := w.Write(header); err != nil {
			f.Close()
			return nil, fmt.Errorf("gamelog: writing header: %w", err)
		}
		w.Flush()
	}

	return &Writer{f: f, w: w}, nil
}

// Row is one move's worth of search telemetry.
type Row struct {
	Timestamp string
	FENBefore string
	Move      string
	Depth     int
	ScoreCP   int32
	Nodes     uint64
	ElapsedMS int64
}

// Record appends row to the log and flushes immediately, so the file
// stays readable even if the process is killed mid-game.
func (w *Writer) Record(row Row) error {
	if w.w == nil {
		return nil
	}
	record := []string{
		row.Timestamp,
		row.FENBefore,
		row.Move,
		fmt.Sprintf("%d", row.Depth),
		fmt.Sprintf("%d", row.ScoreCP),
		fmt.Sprintf("%d", row.Nodes),
		fmt.Sprintf("%d", row.ElapsedMS),
	}
	if err := w.w.Write(record); err != nil {
		return err
	}
	w.w.Flush()
	return w.w.Error()
}

// Close closes the underlying file, if any was opened.
func (w *Writer) Close() error {
	if w.f == nil {
		return nil
	}
	return w.f.Close()
}
