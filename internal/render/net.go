// Package render draws a cube as an unfolded net:
//
//	    T
//	L   F   R   B
//	    D
package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/SeamusWaldron/piececube"
)

// Facelet background colors.
var faceletColors = map[piececube.Color]lipgloss.Color{
	piececube.White:  lipgloss.Color("255"),
	piececube.Yellow: lipgloss.Color("226"),
	piececube.Red:    lipgloss.Color("196"),
	piececube.Orange: lipgloss.Color("208"),
	piececube.Green:  lipgloss.Color("40"),
	piececube.Blue:   lipgloss.Color("21"),
	piececube.None:   lipgloss.Color("238"),
}

var faceletStyles = buildStyles()

func buildStyles() map[piececube.Color]lipgloss.Style {
	styles := make(map[piececube.Color]lipgloss.Style, len(faceletColors))
	for c, bg := range faceletColors {
		styles[c] = lipgloss.NewStyle().Background(bg)
	}
	return styles
}

// layout controls how facelets and faces are joined.
type layout struct {
	cell func(piececube.Color) string
	sep  string // between facelets of a row
	gap  string // between faces
}

var (
	styled = layout{
		cell: func(c piececube.Color) string { return faceletStyles[c].Render("  ") },
		sep:  "",
		gap:  " ",
	}
	plain = layout{
		cell: piececube.Color.String,
		sep:  " ",
		gap:  "  ",
	}
)

// Net renders the cube with colored facelets.
func Net(c *piececube.Cube) string {
	return draw(c, styled)
}

// Plain renders the cube with one letter per facelet.
func Plain(c *piececube.Cube) string {
	return draw(c, plain)
}

func draw(c *piececube.Cube, l layout) string {
	faces := make(map[piececube.Direction][9]piececube.Color, 6)
	for _, d := range piececube.Directions {
		faces[d] = c.Facelets(d)
	}

	row := func(d piececube.Direction, r int) string {
		face := faces[d]
		cells := make([]string, 3)
		for col := range cells {
			cells[col] = l.cell(face[r*3+col])
		}
		return strings.Join(cells, l.sep)
	}

	indent := strings.Repeat(" ", lipgloss.Width(row(piececube.Front, 0))+lipgloss.Width(l.gap))

	var b strings.Builder
	for r := 0; r < 3; r++ {
		b.WriteString(indent + row(piececube.Top, r) + "\n")
	}
	for r := 0; r < 3; r++ {
		parts := []string{
			row(piececube.Left, r),
			row(piececube.Front, r),
			row(piececube.Right, r),
			row(piececube.Back, r),
		}
		b.WriteString(strings.Join(parts, l.gap) + "\n")
	}
	for r := 0; r < 3; r++ {
		b.WriteString(indent + row(piececube.Down, r) + "\n")
	}
	return b.String()
}
