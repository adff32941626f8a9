package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/pkg/profile"

	"walrus-bot/chess"
	"walrus-bot/internal/book"
	"walrus-bot/internal/config"
	"walrus-bot/internal/gamelog"
	"walrus-bot/internal/uci"
	"walrus-bot/internal/walog"
)

const versionString = "walrus-bot 1.0"

func main() {
	configFile := flag.String("config", "./config.toml", "path to configuration settings file")
	logLvl := flag.String("loglvl", "", "log level (debug|info|warning|error|critical), overrides config file")
	logPath := flag.String("logpath", "", "path to write log files to; empty means stderr, overrides config file")
	bookFile := flag.String("bookfile", "", "path to opening book file, overrides config file")
	gameLog := flag.String("gamelog", "", "path to CSV game log file, overrides config file")
	perftDepth := flag.Int("perft", 0, "run perft to the given depth on -fen (or the start position) and exit")
	divide := flag.Bool("divide", false, "with -perft, also print each root move's leaf count (perft divide)")
	fen := flag.String("fen", chess.StartFEN, "FEN to use for -perft")
	cpuProfile := flag.Bool("cpuprofile", false, "capture a CPU profile to ./cpu.pprof for the process lifetime")
	versionFlag := flag.Bool("version", false, "print version and exit")
	flag.Parse()

	if *versionFlag {
		fmt.Println(versionString)
		return
	}

	if *cpuProfile {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
	}

	cfg, cfgErr := config.Load(*configFile)

	if *logLvl != "" {
		cfg.Log.Level = *logLvl
	}
	if *logPath != "" {
		cfg.Log.Path = *logPath
	}
	if *bookFile != "" {
		cfg.Engine.BookFile = *bookFile
	}
	if *gameLog != "" {
		cfg.Engine.GameLogFile = *gameLog
	}

	log, err := walog.Get("walrus-bot", cfg.Log.Level, cfg.Log.Path)
	if err != nil {
		fmt.Fprintln(os.Stderr, "walrus-bot: failed to open log:", err)
		os.Exit(1)
	}
	if cfgErr != nil {
		log.Warning(cfgErr.Error())
	}

	if *perftDepth > 0 {
		runPerft(*fen, *perftDepth, *divide)
		return
	}

	b, err := book.Load(cfg.Engine.BookFile)
	if err != nil {
		log.Errorf("loading opening book: %s", err)
		os.Exit(1)
	}

	gl, err := gamelog.Open(cfg.Engine.GameLogFile)
	if err != nil {
		log.Errorf("opening game log: %s", err)
		os.Exit(1)
	}
	defer gl.Close()

	defaultDepth := cfg.Engine.DefaultDepth
	if defaultDepth <= 0 {
		defaultDepth = chess.DefaultDepth
	}

	handler := uci.NewHandler(os.Stdin, os.Stdout, log, b, gl, defaultDepth)
	handler.Loop()
}

func runPerft(fen string, depth int, divide bool) {
	b, err := chess.NewBoardFromFEN(fen)
	if err != nil {
		fmt.Fprintln(os.Stderr, "walrus-bot: bad -fen:", err)
		os.Exit(1)
	}
	for d := 1; d <= depth; d++ {
		fmt.Printf("perft(%d) = %d\n", d, chess.Perft(b, d))
	}
	if divide && depth > 0 {
		var total uint64
		for _, r := range chess.Divide(b, depth) {
			fmt.Printf("%s: %d\n", r.Move, r.Nodes)
			total += r.Nodes
		}
		fmt.Printf("total: %d\n", total)
	}
}
