package piececube

import (
	"errors"
	"testing"
)

func TestNewPieceKinds(t *testing.T) {
	tests := []struct {
		colors []Color
		kind   Kind
	}{
		{[]Color{Green}, Center},
		{[]Color{Green, White}, Edge},
		{[]Color{Green, White, Orange}, Corner},
	}

	for _, tt := range tests {
		p, err := NewPiece(tt.colors...)
		if err != nil {
			t.Fatalf("NewPiece(%v): %v", tt.colors, err)
		}
		if p.Kind() != tt.kind {
			t.Errorf("NewPiece(%v).Kind() = %v, want %v", tt.colors, p.Kind(), tt.kind)
		}
	}
}

func TestNewPiecePlacement(t *testing.T) {
	p, err := NewPiece(Green, White, Orange)
	if err != nil {
		t.Fatal(err)
	}
	want := map[Direction]Color{
		Front: Green, Back: None,
		Right: White, Left: None,
		Top: Orange, Down: None,
	}
	for d, c := range want {
		if got := p.Color(d); got != c {
			t.Errorf("Color(%v) = %v, want %v", d, got, c)
		}
	}
}

func TestNewPieceInvalid(t *testing.T) {
	tests := [][]Color{
		nil,
		{Green, White, Orange, Red},
		{None},
		{Green, Color(9)},
	}
	for _, colors := range tests {
		if _, err := NewPiece(colors...); !errors.Is(err, ErrInvalidPiece) {
			t.Errorf("NewPiece(%v) error = %v, want ErrInvalidPiece", colors, err)
		}
	}
}

func TestRotationCycles(t *testing.T) {
	p := mustPiece(Green, White, Orange)

	p.RotateX()
	// Front<-Left, Back<-Right, Right<-Front, Left<-Back
	if p.Color(Front) != None || p.Color(Back) != White || p.Color(Right) != Green || p.Color(Top) != Orange {
		t.Errorf("RotateX: got %v", p)
	}

	p = mustPiece(Green, White, Orange)
	p.RotateY()
	// Right<-Top, Top<-Left
	if p.Color(Right) != Orange || p.Color(Top) != None || p.Color(Down) != White || p.Color(Front) != Green {
		t.Errorf("RotateY: got %v", p)
	}

	p = mustPiece(Green, White, Orange)
	p.RotateZ()
	// Front<-Down, Back<-Top, Top<-Front
	if p.Color(Front) != None || p.Color(Back) != Orange || p.Color(Top) != Green || p.Color(Right) != White {
		t.Errorf("RotateZ: got %v", p)
	}
}

func TestRotationInverses(t *testing.T) {
	pairs := []struct {
		name     string
		fwd, rev func(*Piece)
	}{
		{"x", (*Piece).RotateX, (*Piece).RotateXReverse},
		{"y", (*Piece).RotateY, (*Piece).RotateYReverse},
		{"z", (*Piece).RotateZ, (*Piece).RotateZReverse},
		{"flip x", (*Piece).FlipX, (*Piece).FlipX},
		{"flip y", (*Piece).FlipY, (*Piece).FlipY},
		{"flip z", (*Piece).FlipZ, (*Piece).FlipZ},
	}

	for _, pair := range pairs {
		orig := mustPiece(Blue, Yellow, Red)
		p := mustPiece(Blue, Yellow, Red)
		pair.fwd(p)
		if p.Equal(orig) {
			t.Errorf("%s: operator left piece unchanged", pair.name)
		}
		pair.rev(p)
		if !p.Equal(orig) {
			t.Errorf("%s: inverse gave %v, want %v", pair.name, p, orig)
		}
	}
}

func TestRotationOrderFour(t *testing.T) {
	for _, rot := range []func(*Piece){(*Piece).RotateX, (*Piece).RotateY, (*Piece).RotateZ} {
		orig := mustPiece(Blue, Yellow, Red)
		p := mustPiece(Blue, Yellow, Red)
		for i := 0; i < 4; i++ {
			rot(p)
			if p.Kind() != Corner {
				t.Fatalf("rotation changed kind to %v", p.Kind())
			}
		}
		if !p.Equal(orig) {
			t.Errorf("four rotations gave %v, want %v", p, orig)
		}
	}
}

func TestColorsCanonicalOrder(t *testing.T) {
	p := mustPiece(Green, White, Orange)
	p.FlipY() // Green moves to Back

	got := p.Colors()
	want := []Color{Green, White, Orange} // Back, Right, Top
	if len(got) != len(want) {
		t.Fatalf("Colors() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Colors()[%d] = %v, want %v", i, got[i], want[i])
		}
	}

	p.RotateX() // Right<-Front(None), Back<-Right(White), Left<-Back(Green)
	got = p.Colors()
	want = []Color{White, Green, Orange} // Back, Left, Top
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("after RotateX Colors()[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestPieceEqualIncludesAbsentDirections(t *testing.T) {
	a := mustPiece(Green, White)
	b := mustPiece(Green, White)
	if !a.Equal(b) {
		t.Error("identical pieces should be equal")
	}

	b.FlipX() // White moves from Right to Left
	if a.Equal(b) {
		t.Error("pieces with the same colors in different directions should differ")
	}
}

func TestPieceLess(t *testing.T) {
	tests := []struct {
		a, b []Color
		want bool
	}{
		// Front tier ranks first.
		{[]Color{Green}, []Color{Blue}, true},
		{[]Color{Blue}, []Color{White}, true},
		{[]Color{White}, []Color{Orange}, true},
		{[]Color{Orange}, []Color{Red}, true},
		{[]Color{Red}, []Color{Green}, false},
		// Tie on Front, decided by Right.
		{[]Color{Green, White}, []Color{Green, Orange}, true},
		{[]Color{Green, Red}, []Color{Green, Yellow}, false},
		// Tie on Front and Right, decided by Top.
		{[]Color{Green, White, Orange}, []Color{Green, White, Red}, true},
		// Absent facelets sort last.
		{[]Color{Green, White}, []Color{Green, White, Red}, false},
		{[]Color{Green, White, Red}, []Color{Green, White}, true},
		// Equal pieces are not less.
		{[]Color{Blue, Yellow}, []Color{Blue, Yellow}, false},
	}

	for _, tt := range tests {
		a, b := mustPiece(tt.a...), mustPiece(tt.b...)
		if got := a.Less(b); got != tt.want {
			t.Errorf("%v.Less(%v) = %v, want %v", a, b, got, tt.want)
		}
	}
}

func TestPieceString(t *testing.T) {
	p := mustPiece(Green, White, Orange)
	if got, want := p.String(), "Corner[F:G R:W T:O]"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
	if got, want := newCorePiece().String(), "Core[]"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}
