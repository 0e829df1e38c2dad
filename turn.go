package piececube

// Turn is one of the twelve quarter turns of an outer face.
// The "d" suffix marks the counter-clockwise turn.
type Turn int

const (
	U  Turn = iota // Up clockwise
	Ud             // Up counter-clockwise
	D              // Down clockwise
	Dd             // Down counter-clockwise
	R              // Right clockwise
	Rd             // Right counter-clockwise
	L              // Left clockwise
	Ld             // Left counter-clockwise
	F              // Front clockwise
	Fd             // Front counter-clockwise
	B              // Back clockwise
	Bd             // Back counter-clockwise

	numTurns
)

// Turns lists every turn in declaration order.
var Turns = []Turn{U, Ud, D, Dd, R, Rd, L, Ld, F, Fd, B, Bd}

var turnNames = [numTurns]string{
	U: "U", Ud: "Ud",
	D: "D", Dd: "Dd",
	R: "R", Rd: "Rd",
	L: "L", Ld: "Ld",
	F: "F", Fd: "Fd",
	B: "B", Bd: "Bd",
}

// Valid reports whether t is one of the twelve turns.
func (t Turn) Valid() bool {
	return t >= 0 && t < numTurns
}

func (t Turn) String() string {
	if !t.Valid() {
		return "?"
	}
	return turnNames[t]
}

// Inverse returns the turn that undoes t.
// Clockwise and counter-clockwise turns of a face are adjacent values.
func (t Turn) Inverse() Turn {
	return t ^ 1
}

// Clockwise reports whether t turns its face clockwise.
func (t Turn) Clockwise() bool {
	return t%2 == 0
}

// FormatTurns joins turn names with spaces.
func FormatTurns(turns []Turn) string {
	if len(turns) == 0 {
		return ""
	}

	b := make([]byte, 0, len(turns)*3)
	for i, t := range turns {
		if i > 0 {
			b = append(b, ' ')
		}
		b = append(b, t.String()...)
	}
	return string(b)
}

// Predefined sequences.
var (
	// SexyMove is R U R' U'. Repeating it six times is the identity.
	SexyMove = []Turn{R, U, Rd, Ud}

	// InverseSexyMove is U R U' R'.
	InverseSexyMove = []Turn{U, R, Ud, Rd}
)
