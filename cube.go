package piececube

import (
	"math/rand/v2"
	"sort"
	"strings"
)

// Layout dimensions.
const (
	NumLayers     = 3
	SlotsPerLayer = 9
	StateLen      = 8*3 + 12*2 + 6*1
)

// Cube is a 3x3x3 puzzle built from 27 pieces in three layers.
//
// Layer 0 is the front slab and layer 2 the back slab. Within a layer the
// slots are indexed row-major as seen from the front:
//
//	0 1 2
//	3 4 5
//	6 7 8
//
// Slot [1][4] holds the hidden core piece.
type Cube struct {
	pieces [NumLayers][SlotsPerLayer]*Piece
	cfg    *config
}

// NewCube creates a solved cube: green front, white top, red right.
func NewCube(opts ...Option) *Cube {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	c := &Cube{cfg: cfg}
	c.Reset()
	return c
}

// Reset reassembles the cube into the solved state.
func (c *Cube) Reset() {
	corners, edges, centers := solvedPieces()
	groups := [...][]*Piece{
		groupCorner: corners,
		groupEdge:   edges,
		groupCenter: centers,
	}

	for layer := range assembly {
		for i, recipe := range assembly[layer] {
			var p *Piece
			if recipe.group == groupCore {
				p = newCorePiece()
			} else {
				p = groups[recipe.group][recipe.index]
			}
			for _, op := range recipe.ops {
				op(p)
			}
			c.pieces[layer][i] = p
		}
	}
}

// solvedPieces builds the 8 corners, 12 edges and 6 centers, each group
// sorted by Piece.Less.
func solvedPieces() (corners, edges, centers []*Piece) {
	for _, f := range FrontColors {
		for _, t := range TopColors {
			for _, s := range SideColors {
				corners = append(corners, mustPiece(f, t, s))
				edges = appendEdge(edges, f, t)
				edges = appendEdge(edges, t, s)
				edges = appendEdge(edges, f, s)
			}
		}
	}

	for _, palette := range [...][2]Color{FrontColors, SideColors, TopColors} {
		for _, color := range palette {
			centers = append(centers, mustPiece(color))
		}
	}

	for _, group := range [...][]*Piece{corners, edges, centers} {
		sort.Slice(group, func(i, j int) bool {
			return group[i].Less(group[j])
		})
	}
	return corners, edges, centers
}

// appendEdge adds the edge a/b unless it is already present in either orientation.
func appendEdge(edges []*Piece, a, b Color) []*Piece {
	p, swapped := mustPiece(a, b), mustPiece(b, a)
	for _, e := range edges {
		if e.Equal(p) || e.Equal(swapped) {
			return edges
		}
	}
	return append(edges, p)
}

type pieceGroup int

const (
	groupCorner pieceGroup = iota
	groupEdge
	groupCenter
	groupCore
)

// slotRecipe picks the index-th piece of a sorted group and orients it.
type slotRecipe struct {
	group pieceGroup
	index int
	ops   []func(*Piece)
}

var (
	rotX  = (*Piece).RotateX
	rotXr = (*Piece).RotateXReverse
	rotY  = (*Piece).RotateY
	rotYr = (*Piece).RotateYReverse
	rotZ  = (*Piece).RotateZ
	rotZr = (*Piece).RotateZReverse
	flipX = (*Piece).FlipX
	flipY = (*Piece).FlipY
	flipZ = (*Piece).FlipZ
)

// assembly is the solved layout. The operator order per slot matters and
// determines the exact state vector of the solved cube.
var assembly = [NumLayers][SlotsPerLayer]slotRecipe{
	{
		{groupCorner, 0, []func(*Piece){rotYr}},
		{groupEdge, 0, []func(*Piece){rotYr}},
		{groupCorner, 1, []func(*Piece){rotYr, flipX}},
		{groupEdge, 2, []func(*Piece){flipX}},
		{groupCenter, 0, nil},
		{groupEdge, 3, nil},
		{groupCorner, 2, []func(*Piece){flipZ, rotY}},
		{groupEdge, 1, []func(*Piece){rotY}},
		{groupCorner, 3, []func(*Piece){rotY}},
	},
	{
		{groupEdge, 8, []func(*Piece){rotZ, flipX}},
		{groupCenter, 2, []func(*Piece){rotZ}},
		{groupEdge, 9, []func(*Piece){rotZ}},
		{groupCenter, 4, []func(*Piece){rotXr}},
		{groupCore, 0, nil},
		{groupCenter, 5, []func(*Piece){rotX}},
		{groupEdge, 10, []func(*Piece){flipX, rotZr}},
		{groupCenter, 3, []func(*Piece){rotZr}},
		{groupEdge, 11, []func(*Piece){rotZr}},
	},
	{
		{groupCorner, 4, []func(*Piece){rotYr, flipY}},
		{groupEdge, 4, []func(*Piece){rotYr, flipY}},
		{groupCorner, 5, []func(*Piece){flipY, rotYr, flipX}},
		{groupEdge, 6, []func(*Piece){rotX, rotX}},
		{groupCenter, 1, []func(*Piece){flipY}},
		{groupEdge, 7, []func(*Piece){flipY}},
		{groupCorner, 6, []func(*Piece){flipY, flipX, rotYr}},
		{groupEdge, 5, []func(*Piece){rotY, flipY}},
		{groupCorner, 7, []func(*Piece){rotY, flipY}},
	},
}

// slot addresses one position in the layout.
type slot struct {
	layer int
	index int
}

// Index maps for a 90 degree rotation of a 3x3 face read row-major.
var (
	rotateCW  = [9]int{6, 3, 0, 7, 4, 1, 8, 5, 2}
	rotateCCW = [9]int{2, 5, 8, 1, 4, 7, 0, 3, 6}
)

// faceTurn describes one of the twelve turns: the face slots, how the
// pieces move between them, and how each piece is reoriented.
type faceTurn struct {
	slots  [9]slot
	perm   *[9]int
	orient func(*Piece)
}

// crossSlots selects one slot per layer row for faces cutting across layers.
func crossSlots(index func(j int) int) [9]slot {
	var s [9]slot
	for layer := 0; layer < NumLayers; layer++ {
		for j := 0; j < 3; j++ {
			s[layer*3+j] = slot{layer, index(j)}
		}
	}
	return s
}

// layerSlots selects a whole layer.
func layerSlots(layer int) [9]slot {
	var s [9]slot
	for i := range s {
		s[i] = slot{layer, i}
	}
	return s
}

var (
	upSlots    = crossSlots(func(j int) int { return j })
	downSlots  = crossSlots(func(j int) int { return 8 - j })
	rightSlots = crossSlots(func(j int) int { return 8 - 3*j })
	leftSlots  = crossSlots(func(j int) int { return 3 * j })
	frontSlots = layerSlots(0)
	backSlots  = layerSlots(2)
)

var turnTable = [numTurns]faceTurn{
	U:  {upSlots, &rotateCW, rotX},
	Ud: {upSlots, &rotateCCW, rotXr},
	D:  {downSlots, &rotateCCW, rotX},
	Dd: {downSlots, &rotateCW, rotXr},
	R:  {rightSlots, &rotateCW, rotZ},
	Rd: {rightSlots, &rotateCCW, rotZr},
	L:  {leftSlots, &rotateCW, rotZr},
	Ld: {leftSlots, &rotateCCW, rotZ},
	F:  {frontSlots, &rotateCW, rotY},
	Fd: {frontSlots, &rotateCCW, rotYr},
	B:  {backSlots, &rotateCCW, rotYr},
	Bd: {backSlots, &rotateCW, rotY},
}

// apply permutes and reorients the nine pieces of one face.
func (c *Cube) apply(ft *faceTurn) {
	var face [9]*Piece
	for k, s := range ft.slots {
		face[k] = c.pieces[s.layer][s.index]
	}
	for k, s := range ft.slots {
		p := face[ft.perm[k]]
		ft.orient(p)
		c.pieces[s.layer][s.index] = p
	}
}

// Apply performs a single turn.
func (c *Cube) Apply(t Turn) error {
	if !t.Valid() {
		return ErrInvalidTurn
	}
	c.apply(&turnTable[t])
	return nil
}

// ApplyTurns performs turns in order. It stops at the first invalid turn.
func (c *Cube) ApplyTurns(turns ...Turn) error {
	for _, t := range turns {
		if err := c.Apply(t); err != nil {
			return err
		}
	}
	return nil
}

// Named turns. Each is equivalent to Apply with the matching Turn; the
// d suffix is the counter-clockwise (prime) turn.
func (c *Cube) U()  { c.apply(&turnTable[U]) }
func (c *Cube) Ud() { c.apply(&turnTable[Ud]) }
func (c *Cube) D()  { c.apply(&turnTable[D]) }
func (c *Cube) Dd() { c.apply(&turnTable[Dd]) }
func (c *Cube) R()  { c.apply(&turnTable[R]) }
func (c *Cube) Rd() { c.apply(&turnTable[Rd]) }
func (c *Cube) L()  { c.apply(&turnTable[L]) }
func (c *Cube) Ld() { c.apply(&turnTable[Ld]) }
func (c *Cube) F()  { c.apply(&turnTable[F]) }
func (c *Cube) Fd() { c.apply(&turnTable[Fd]) }
func (c *Cube) B()  { c.apply(&turnTable[B]) }
func (c *Cube) Bd() { c.apply(&turnTable[Bd]) }

// Scramble applies random turns, chosen uniformly with replacement, and
// returns them. Consecutive turns may cancel out.
func (c *Cube) Scramble() []Turn {
	turns := make([]Turn, c.cfg.scrambleLength)
	for i := range turns {
		turns[i] = c.randomTurn()
		c.apply(&turnTable[turns[i]])
	}
	return turns
}

func (c *Cube) randomTurn() Turn {
	if c.cfg.rng != nil {
		return Turns[c.cfg.rng.IntN(len(Turns))]
	}
	return Turns[rand.IntN(len(Turns))]
}

// faceletSlots lists, per direction, the nine slots of that face as seen
// looking at the face from outside, row-major from the top-left.
// Top is viewed with the front edge at the bottom, Down with the front
// edge at the top.
var faceletSlots = buildFaceletSlots()

func buildFaceletSlots() [6][9]slot {
	var f [6][9]slot
	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			k := row*3 + col
			f[Front][k] = slot{0, row*3 + col}
			f[Back][k] = slot{2, row*3 + 2 - col}
			f[Right][k] = slot{col, row*3 + 2}
			f[Left][k] = slot{2 - col, row * 3}
			f[Top][k] = slot{2 - row, col}
			f[Down][k] = slot{row, 6 + col}
		}
	}
	return f
}

// Facelets returns the nine colors of the face pointing in direction d,
// in the order described by faceletSlots.
func (c *Cube) Facelets(d Direction) [9]Color {
	var colors [9]Color
	for k, s := range faceletSlots[d] {
		colors[k] = c.pieces[s.layer][s.index].Color(d)
	}
	return colors
}

// IsSolved returns true if every face shows a single color.
func (c *Cube) IsSolved() bool {
	for _, d := range Directions {
		face := c.Facelets(d)
		if face[0] == None {
			return false
		}
		for _, color := range face[1:] {
			if color != face[0] {
				return false
			}
		}
	}
	return true
}

// State returns the visible colors of every piece, slot by slot, as
// integers in [0, 5]. The result always has StateLen entries.
func (c *Cube) State() []int {
	state := make([]int, 0, StateLen)
	for layer := range c.pieces {
		for _, p := range c.pieces[layer] {
			for _, color := range p.Colors() {
				state = append(state, int(color))
			}
		}
	}
	return state
}

// Piece returns a copy of the piece in the given slot.
func (c *Cube) Piece(layer, index int) Piece {
	return *c.pieces[layer][index]
}

// Equal reports whether both cubes hold equal pieces in every slot.
func (c *Cube) Equal(other *Cube) bool {
	for layer := range c.pieces {
		for i, p := range c.pieces[layer] {
			if !p.Equal(other.pieces[layer][i]) {
				return false
			}
		}
	}
	return true
}

// Clone creates a deep copy of the cube. The clone shares the random source.
func (c *Cube) Clone() *Cube {
	clone := &Cube{cfg: c.cfg}
	for layer := range c.pieces {
		for i, p := range c.pieces[layer] {
			cp := *p
			clone.pieces[layer][i] = &cp
		}
	}
	return clone
}

// String returns the layout as nine rows of three pieces, front layer first.
func (c *Cube) String() string {
	var b strings.Builder
	for layer := range c.pieces {
		for row := 0; row < 3; row++ {
			for col := 0; col < 3; col++ {
				if col > 0 {
					b.WriteString(" ")
				}
				b.WriteString(c.pieces[layer][row*3+col].String())
			}
			b.WriteString("\n")
		}
	}
	return b.String()
}
