package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/piececube"
	"github.com/SeamusWaldron/piececube/internal/render"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Turn a cube interactively in the terminal",
	Long: `Open an interactive cube in the terminal.

Keys:
  w/s     - Up / Down
  a/d     - Left / Right
  e/q     - Front / Back
  W S A D E Q (shift) - counter-clockwise turn
  x / X   - R U R' U' / its inverse
  z       - Undo last turn
  Esc     - Scramble
  Enter   - Reset to solved
  Ctrl+C  - Quit`,
	RunE: runPlay,
}

var playSeed uint64

func init() {
	rootCmd.AddCommand(playCmd)
	playCmd.Flags().Uint64Var(&playSeed, "seed", 0, "Scramble seed (0 = random)")
}

func runPlay(cmd *cobra.Command, args []string) error {
	var opts []piececube.Option
	if playSeed != 0 {
		opts = append(opts, piececube.WithSeed(playSeed))
	}

	p := tea.NewProgram(newPlayModel(opts...), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("play error: %w", err)
	}
	return nil
}

// playKeys maps keys to turns. Shifted keys turn counter-clockwise.
var playKeys = map[string]piececube.Turn{
	"w": piececube.U, "W": piececube.Ud,
	"s": piececube.D, "S": piececube.Dd,
	"a": piececube.L, "A": piececube.Ld,
	"d": piececube.R, "D": piececube.Rd,
	"e": piececube.F, "E": piececube.Fd,
	"q": piececube.B, "Q": piececube.Bd,
}

// Play model
type playModel struct {
	tracker  *piececube.Tracker
	scramble []piececube.Turn
	message  string
	solves   int
	quitting bool
}

func newPlayModel(opts ...piececube.Option) *playModel {
	m := &playModel{tracker: piececube.NewTracker(opts...)}
	m.tracker.OnSolved(func(turns int) {
		m.solves++
		m.message = fmt.Sprintf("Solved in %d turns!", turns)
		log.Info().Int("turns", turns).Msg("cube solved")
	})
	return m
}

func (m *playModel) Init() tea.Cmd {
	return nil
}

func (m *playModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.String() {
	case "ctrl+c":
		m.quitting = true
		return m, tea.Quit

	case "esc":
		m.scramble = m.tracker.Scramble()
		m.message = "Scrambled"

	case "enter":
		m.tracker.Reset()
		m.scramble = nil
		m.message = "Reset"

	case "z", "backspace":
		if !m.tracker.Undo() {
			m.message = "Nothing to undo"
		}

	case "x", "X":
		seq := piececube.SexyMove
		if key.String() == "X" {
			seq = piececube.InverseSexyMove
		}
		m.message = piececube.FormatTurns(seq)
		for _, turn := range seq {
			m.tracker.Apply(turn)
		}

	default:
		if turn, ok := playKeys[key.String()]; ok {
			m.message = ""
			m.tracker.Apply(turn)
		}
	}

	return m, nil
}

func (m *playModel) View() string {
	if m.quitting {
		return "Bye.\n"
	}

	var b strings.Builder

	b.WriteString(titleStyle.Render("piececube"))
	b.WriteString("\n\n")
	b.WriteString(render.Net(m.tracker.Cube()))
	b.WriteString("\n")

	if m.tracker.IsSolved() {
		b.WriteString(fmt.Sprintf("Cube State: %s\n", solvedStyle.Render("SOLVED")))
	} else {
		b.WriteString(fmt.Sprintf("Cube State: %s\n", statusStyle.Render("scrambled")))
	}
	b.WriteString(fmt.Sprintf("Progress: %d/%d (best %d)\n",
		m.tracker.Progress(), piececube.StateLen, m.tracker.BestProgress()))

	if len(m.scramble) > 0 {
		b.WriteString(statusStyle.Render("Scramble: " + piececube.FormatTurns(m.scramble)))
		b.WriteString("\n")
	}

	history := m.tracker.History()
	b.WriteString(fmt.Sprintf("Turns: %d  Solves: %d\n", len(history), m.solves))
	if len(history) > 0 {
		start := 0
		prefix := ""
		if len(history) > 20 {
			start = len(history) - 20
			prefix = "... "
		}
		b.WriteString(prefix + moveStyle.Render(piececube.FormatTurns(history[start:])))
		b.WriteString("\n")
	}

	if m.message != "" {
		b.WriteString("\n")
		b.WriteString(m.message)
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render("w/s/a/d/e/q=U/D/L/R/F/B  shift=reverse  z=undo  esc=scramble  enter=reset  ctrl+c=quit"))
	b.WriteString("\n")

	return b.String()
}
