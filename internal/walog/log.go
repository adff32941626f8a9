// Package walog wraps github.com/op/go-logging for walrus-bot. The
// UCI protocol owns stdout exclusively, so every logger here writes
// to stderr or to a configured file — never to stdout.
package walog

import (
	"fmt"
	"os"

	logging "github.com/op/go-logging"
)

var format = logging.MustStringFormatter(
	`%{time:15:04:05.000} %{shortfile} %{level:7s}: %{message}`,
)

var levelByName = map[string]logging.Level{
	"debug":   logging.DEBUG,
	"info":    logging.INFO,
	"warning": logging.WARNING,
	"error":   logging.ERROR,
	"critical": logging.CRITICAL,
}

// Get returns a named logger backed by stderr (or, when path is
// non-empty, by the file at path) at the given level. An unknown
// level name falls back to INFO rather than failing startup.
func Get(name, levelName, path string) (*logging.Logger, error) {
	log := logging.MustGetLogger(name)

	out := os.Stderr
	if path != "" {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return nil, fmt.Errorf("walog: opening %s: %w", path, err)
		}
		out = f
	}

	backend := logging.NewLogBackend(out, "", 0)
	backendFormatter := logging.NewBackendFormatter(backend, format)
	leveled := logging.AddModuleLevel(backendFormatter)

	level, ok := levelByName[levelName]
	if !ok {
		level = logging.INFO
	}
	leveled.SetLevel(level, "")

	logging.SetBackend(leveled)
	return log, nil
}
