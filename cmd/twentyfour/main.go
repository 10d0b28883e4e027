package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"svw.info/twentyfour/internal/domain"
	"svw.info/twentyfour/internal/generator"
	"svw.info/twentyfour/internal/hint"
	"svw.info/twentyfour/internal/infrastructure/storage"
	"svw.info/twentyfour/internal/parser"
	"svw.info/twentyfour/internal/solver"
	"svw.info/twentyfour/internal/tui"
	"svw.info/twentyfour/internal/usecase"
)

func main() {
	persist := flag.String("data", "./data", "save directory")
	diffStr := flag.String("difficulty", "normal", "easy|normal|hard|expert")
	seed := flag.Int64("seed", 0, "puzzle seed (0 = time-based)")
	levelStr := flag.String("log-level", "warn", "debug|info|warn|error")
	flag.Parse()

	lvl := slog.LevelWarn
	switch strings.ToLower(*levelStr) {
	case "debug":
		lvl = slog.LevelDebug
	case "info":
		lvl = slog.LevelInfo
	case "error":
		lvl = slog.LevelError
	}
	// Logs go to stderr so they never garble the alt-screen UI.
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl}))

	if !term.IsTerminal(int(os.Stdout.Fd())) || os.Getenv("TERM") == "dumb" {
		fmt.Fprintln(os.Stderr, "twentyfour: the game needs a terminal; use twentyfour-web for the JSON API")
		os.Exit(1)
	}
	_ = os.MkdirAll(*persist, 0o755)

	// Wire providers → use cases → TUI
	s := solver.NewExhaustiveSolver()
	g := generator.NewSolvableGenerator(s)
	c := parser.New()
	h := hint.NewTiered(s)
	st := storage.NewFS(*persist)
	uc := usecase.NewService(s, g, c, h, st)

	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}
	d := domain.ParseDifficulty(strings.ToLower(strings.TrimSpace(*diffStr)))

	logger.Info("starting", "difficulty", d.String(), "seed", *seed, "persist", *persist)
	p := tea.NewProgram(tui.NewModel(uc, d, *seed), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		logger.Error("tui error", "err", err)
		os.Exit(1)
	}
}
