package piececube

import (
	"fmt"
	"strings"
)

// Kind classifies a piece by its number of visible facelets.
type Kind int

const (
	Core   Kind = 0 // Hidden placeholder, no facelets
	Center Kind = 1
	Edge   Kind = 2
	Corner Kind = 3
)

func (k Kind) String() string {
	switch k {
	case Core:
		return "Core"
	case Center:
		return "Center"
	case Edge:
		return "Edge"
	case Corner:
		return "Corner"
	default:
		return "?"
	}
}

// Piece is one sub-cube of the puzzle. It maps each of the six directions
// to the color of the facelet facing that way, or None.
//
// Rotations and flips permute the directions in place. They never change
// the set of colors a piece carries, so its Kind is fixed at construction.
type Piece struct {
	facelets [6]Color
}

// NewPiece builds a piece from 1, 2 or 3 colors. The first color faces
// Front, the second Right and the third Top.
func NewPiece(colors ...Color) (*Piece, error) {
	if len(colors) < 1 || len(colors) > 3 {
		return nil, fmt.Errorf("%w: %d colors", ErrInvalidPiece, len(colors))
	}
	for _, c := range colors {
		if !c.Valid() {
			return nil, fmt.Errorf("%w: color %v", ErrInvalidPiece, c)
		}
	}

	p := newCorePiece()
	for i, c := range colors {
		p.facelets[placement[i]] = c
	}
	return p, nil
}

// placement is the direction each constructor color faces, in argument order.
var placement = [3]Direction{Front, Right, Top}

// mustPiece is NewPiece for the fixed palette combinations used in assembly.
func mustPiece(colors ...Color) *Piece {
	p, err := NewPiece(colors...)
	if err != nil {
		panic(err)
	}
	return p
}

// newCorePiece returns the placeholder piece at the center of the cube.
func newCorePiece() *Piece {
	p := &Piece{}
	for i := range p.facelets {
		p.facelets[i] = None
	}
	return p
}

// Color returns the facelet color facing d, or None.
func (p *Piece) Color(d Direction) Color {
	return p.facelets[d]
}

// Colors returns the visible colors in canonical direction order
// (Front, Back, Right, Left, Top, Down).
func (p *Piece) Colors() []Color {
	colors := make([]Color, 0, 3)
	for _, c := range p.facelets {
		if c != None {
			colors = append(colors, c)
		}
	}
	return colors
}

// Kind returns the piece kind derived from its facelet count.
func (p *Piece) Kind() Kind {
	n := 0
	for _, c := range p.facelets {
		if c != None {
			n++
		}
	}
	return Kind(n)
}

// Equal reports whether both pieces have identical facelets in every direction.
func (p *Piece) Equal(other *Piece) bool {
	return p.facelets == other.facelets
}

// Less orders pieces for assembly: by Front color rank, then Right, then Top.
func (p *Piece) Less(other *Piece) bool {
	for _, d := range placement {
		a, b := rank(p.facelets[d]), rank(other.facelets[d])
		if a != b {
			return a < b
		}
	}
	return false
}

// RotateX turns the piece about the vertical axis:
// Front<-Left, Back<-Right, Right<-Front, Left<-Back.
func (p *Piece) RotateX() {
	f := &p.facelets
	f[Front], f[Back], f[Right], f[Left] = f[Left], f[Right], f[Front], f[Back]
}

// RotateXReverse is the inverse of RotateX.
func (p *Piece) RotateXReverse() {
	f := &p.facelets
	f[Front], f[Back], f[Right], f[Left] = f[Right], f[Left], f[Back], f[Front]
}

// RotateY turns the piece about the front-back axis:
// Right<-Top, Left<-Down, Top<-Left, Down<-Right.
func (p *Piece) RotateY() {
	f := &p.facelets
	f[Right], f[Left], f[Top], f[Down] = f[Top], f[Down], f[Left], f[Right]
}

// RotateYReverse is the inverse of RotateY.
func (p *Piece) RotateYReverse() {
	f := &p.facelets
	f[Right], f[Left], f[Top], f[Down] = f[Down], f[Top], f[Right], f[Left]
}

// RotateZ turns the piece about the left-right axis:
// Front<-Down, Back<-Top, Top<-Front, Down<-Back.
func (p *Piece) RotateZ() {
	f := &p.facelets
	f[Front], f[Back], f[Top], f[Down] = f[Down], f[Top], f[Front], f[Back]
}

// RotateZReverse is the inverse of RotateZ.
func (p *Piece) RotateZReverse() {
	f := &p.facelets
	f[Front], f[Back], f[Top], f[Down] = f[Top], f[Down], f[Back], f[Front]
}

// FlipX swaps Right and Left.
func (p *Piece) FlipX() {
	p.facelets[Right], p.facelets[Left] = p.facelets[Left], p.facelets[Right]
}

// FlipY swaps Front and Back.
func (p *Piece) FlipY() {
	p.facelets[Front], p.facelets[Back] = p.facelets[Back], p.facelets[Front]
}

// FlipZ swaps Top and Down.
func (p *Piece) FlipZ() {
	p.facelets[Top], p.facelets[Down] = p.facelets[Down], p.facelets[Top]
}

// String returns a compact form such as "Corner[F:G R:W T:O]".
func (p *Piece) String() string {
	parts := make([]string, 0, 3)
	for _, d := range Directions {
		if c := p.facelets[d]; c != None {
			parts = append(parts, d.String()+":"+c.String())
		}
	}
	return p.Kind().String() + "[" + strings.Join(parts, " ") + "]"
}
