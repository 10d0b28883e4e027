// Package tui is the interactive terminal front end: one puzzle on
// screen, a timer, and a single input line that takes either an
// expression or a command (hint, solution, new, stats, difficulty, quit).
package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/stopwatch"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"svw.info/twentyfour/internal/domain"
	"svw.info/twentyfour/internal/expr"
	"svw.info/twentyfour/internal/usecase"
)

const maxEvents = 50

// The engine answers in microseconds; calls still get a bound so a bug
// can never wedge the UI.
const callTimeout = 2 * time.Second

type eventKind int

const (
	eventInfo eventKind = iota
	eventGood
	eventBad
)

type event struct {
	kind eventKind
	text string
}

type msgDeal struct{}

type Model struct {
	svc        *usecase.Service
	difficulty domain.Difficulty
	seed       int64

	puzzle *domain.Puzzle
	input  textinput.Model
	watch  stopwatch.Model
	events []event

	width    int
	quitting bool
}

func NewModel(svc *usecase.Service, difficulty domain.Difficulty, seed int64) Model {
	ti := textinput.New()
	ti.Placeholder = "expression, or: hint · solution · new · stats · difficulty <level> · quit"
	ti.CharLimit = 80
	ti.Focus()
	return Model{
		svc:        svc,
		difficulty: difficulty,
		seed:       seed,
		input:      ti,
		watch:      stopwatch.NewWithInterval(time.Second),
		events:     make([]event, 0, maxEvents),
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, func() tea.Msg { return msgDeal{} })
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.quitting = true
			return m, tea.Quit
		case tea.KeyEnter:
			line := strings.TrimSpace(m.input.Value())
			m.input.SetValue("")
			return m.handle(line)
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.input.Width = msg.Width - 6
		return m, nil

	case msgDeal:
		return m.deal()
	}

	var cmds []tea.Cmd
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	cmds = append(cmds, cmd)
	m.watch, cmd = m.watch.Update(msg)
	cmds = append(cmds, cmd)
	return m, tea.Batch(cmds...)
}

func (m Model) deal() (tea.Model, tea.Cmd) {
	ctx, cancel := context.WithTimeout(context.Background(), callTimeout)
	defer cancel()

	m.seed++
	p, _, err := m.svc.NewPuzzle(ctx, m.seed, m.difficulty)
	if err != nil {
		m = m.push(eventBad, "could not generate a puzzle: "+err.Error())
		return m, nil
	}
	m.puzzle = p
	_, _ = m.svc.RecordPlayed(ctx)
	m = m.push(eventInfo, fmt.Sprintf("New %s puzzle dealt. Timer started!", m.difficulty))
	return m, tea.Batch(m.watch.Reset(), m.watch.Start())
}

func (m Model) handle(line string) (tea.Model, tea.Cmd) {
	if line == "" || m.puzzle == nil {
		return m, nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), callTimeout)
	defer cancel()
	spec := m.puzzle.Spec()

	switch {
	case line == "quit" || line == "q":
		m.quitting = true
		return m, tea.Quit

	case line == "new":
		return m.deal()

	case line == "hint":
		h, found, err := m.svc.Hint(ctx, spec, m.difficulty)
		if err != nil {
			m = m.push(eventBad, err.Error())
		} else if found {
			m = m.push(eventInfo, "Hint: "+h.Message)
		}
		return m, nil

	case line == "solution":
		sol, ok, _, err := m.svc.FirstSolution(ctx, spec)
		if err != nil {
			m = m.push(eventBad, err.Error())
			return m, nil
		}
		if !ok {
			m = m.push(eventInfo, "No solution exists!")
		} else {
			m = m.push(eventInfo, fmt.Sprintf("One solution: %s = %d", expr.Pretty(sol), m.puzzle.Target))
		}
		return m.deal()

	case line == "stats":
		s, err := m.svc.Stats(ctx)
		if err != nil {
			m = m.push(eventBad, err.Error())
			return m, nil
		}
		m = m.push(eventInfo, formatStats(s, m.difficulty))
		return m, nil

	case strings.HasPrefix(line, "difficulty"):
		return m.setDifficulty(strings.TrimSpace(strings.TrimPrefix(line, "difficulty"))), nil

	default:
		return m.submit(ctx, line, spec)
	}
}

func (m Model) setDifficulty(arg string) Model {
	switch arg {
	case "easy":
		m.difficulty = domain.Easy
	case "normal":
		m.difficulty = domain.Normal
	case "hard":
		m.difficulty = domain.Hard
	case "expert":
		m.difficulty = domain.Expert
	case "":
		return m.push(eventInfo, fmt.Sprintf("Current difficulty: %s. Usage: difficulty easy|normal|hard|expert", m.difficulty))
	default:
		return m.push(eventBad, "Unknown difficulty: "+arg)
	}
	return m.push(eventInfo, fmt.Sprintf("Difficulty set to %s (operators: %s). Takes effect next puzzle.",
		m.difficulty, operatorGlyphs(m.difficulty.Operators())))
}

func (m Model) submit(ctx context.Context, line string, spec domain.PuzzleSpec) (tea.Model, tea.Cmd) {
	_, err := m.svc.Check(ctx, line, spec)
	if err != nil {
		var perr *domain.ParseError
		if errors.As(err, &perr) {
			m = m.push(eventBad, perr.Msg)
		} else {
			m = m.push(eventBad, err.Error())
		}
		return m, nil
	}

	elapsed := m.watch.Elapsed()
	_, _ = m.svc.RecordSolve(ctx, elapsed.Milliseconds())
	m = m.push(eventGood, fmt.Sprintf("Correct! %s = %d in %.1fs",
		expr.Pretty(line), spec.Target, elapsed.Seconds()))
	if all, _, err := m.svc.Solutions(ctx, spec); err == nil && len(all) > 1 {
		m = m.push(eventInfo, fmt.Sprintf("This puzzle had %d distinct solutions.", len(all)))
	}
	return m.deal()
}

func (m Model) push(kind eventKind, text string) Model {
	m.events = append(m.events, event{kind: kind, text: text})
	if len(m.events) > maxEvents {
		m.events = m.events[len(m.events)-maxEvents:]
	}
	return m
}

func formatStats(s *domain.SessionStats, d domain.Difficulty) string {
	best := "n/a"
	if s.BestMillis > 0 {
		best = fmt.Sprintf("%.1fs", float64(s.BestMillis)/1000)
	}
	return fmt.Sprintf("Played %d · solved %d · success %.1f%% · avg %.1fs · best %s · difficulty %s",
		s.GamesPlayed, s.GamesSolved, s.SuccessRate(),
		float64(s.AverageMillis())/1000, best, d)
}

func operatorGlyphs(ops []domain.Operator) string {
	parts := make([]string, len(ops))
	for i, op := range ops {
		parts[i] = op.Display()
	}
	return strings.Join(parts, " ")
}
