package piececube

// Color represents a facelet color. The numeric value is the encoding used
// in the state vector returned by Cube.State.
type Color byte

const (
	White  Color = 0 // Top face when solved
	Yellow Color = 1 // Down face when solved
	Red    Color = 2 // Right face when solved
	Orange Color = 3 // Left face when solved
	Green  Color = 4 // Front face when solved
	Blue   Color = 5 // Back face when solved

	// None marks a direction on which a piece has no facelet.
	None Color = 0xFF
)

// NumColors is the size of the palette.
const NumColors = 6

// Palette tiers. Every corner carries one color from each tier, every edge
// two colors from different tiers. The tiers also fix the assembly order
// of pieces (see Piece.Less).
var (
	FrontColors = [2]Color{Green, Blue}
	TopColors   = [2]Color{White, Yellow}
	SideColors  = [2]Color{Orange, Red}
)

// noneRank sorts absent facelets after every real color.
const noneRank = NumColors

var colorRank = buildRankTable()

func buildRankTable() [NumColors]int {
	var ranks [NumColors]int
	tiers := [...][2]Color{FrontColors, TopColors, SideColors}
	for tier, palette := range tiers {
		for i, c := range palette {
			ranks[c] = tier*len(palette) + i
		}
	}
	return ranks
}

// rank returns the assembly priority of a color; lower sorts first.
func rank(c Color) int {
	if !c.Valid() {
		return noneRank
	}
	return colorRank[c]
}

// Valid reports whether c is one of the six palette colors.
func (c Color) Valid() bool {
	return c < NumColors
}

func (c Color) String() string {
	switch c {
	case White:
		return "W"
	case Yellow:
		return "Y"
	case Red:
		return "R"
	case Orange:
		return "O"
	case Green:
		return "G"
	case Blue:
		return "B"
	case None:
		return "X"
	default:
		return "?"
	}
}

// Name returns the full color name.
func (c Color) Name() string {
	switch c {
	case White:
		return "white"
	case Yellow:
		return "yellow"
	case Red:
		return "red"
	case Orange:
		return "orange"
	case Green:
		return "green"
	case Blue:
		return "blue"
	default:
		return "none"
	}
}

// Direction is one of the six directions a facelet can face.
type Direction int

const (
	Front Direction = iota
	Back
	Right
	Left
	Top
	Down
)

// Directions lists all directions in canonical facelet order.
var Directions = [6]Direction{Front, Back, Right, Left, Top, Down}

func (d Direction) String() string {
	switch d {
	case Front:
		return "F"
	case Back:
		return "B"
	case Right:
		return "R"
	case Left:
		return "L"
	case Top:
		return "T"
	case Down:
		return "D"
	default:
		return "?"
	}
}
