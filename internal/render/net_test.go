package render

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"

	"github.com/SeamusWaldron/piececube"
)

func TestPlainSolved(t *testing.T) {
	want := strings.Join([]string{
		"       W W W",
		"       W W W",
		"       W W W",
		"O O O  G G G  R R R  B B B",
		"O O O  G G G  R R R  B B B",
		"O O O  G G G  R R R  B B B",
		"       Y Y Y",
		"       Y Y Y",
		"       Y Y Y",
	}, "\n") + "\n"

	if got := Plain(piececube.NewCube()); got != want {
		t.Errorf("Plain() =\n%s\nwant\n%s", got, want)
	}
}

func TestPlainAfterR(t *testing.T) {
	c := piececube.NewCube()
	c.R()
	lines := strings.Split(Plain(c), "\n")
	if lines[0] != "       W W G" {
		t.Errorf("top row = %q", lines[0])
	}
	if lines[3] != "O O O  G G Y  R R R  W B B" {
		t.Errorf("middle row = %q", lines[3])
	}
}

func TestNetWidth(t *testing.T) {
	out := Net(piececube.NewCube())
	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	if len(lines) != 9 {
		t.Fatalf("Net() has %d lines, want 9", len(lines))
	}
	// Four faces of three 2-column cells, joined by single spaces.
	if w := lipgloss.Width(lines[4]); w != 4*6+3 {
		t.Errorf("middle row width = %d, want %d", w, 4*6+3)
	}
	if w := lipgloss.Width(lines[0]); w != 7+6 {
		t.Errorf("top row width = %d, want %d", w, 13)
	}
}
