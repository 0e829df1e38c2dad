package piececube

// Tracker wraps a Cube, records the turns applied to it, and measures
// progress against a solved snapshot taken when the tracker is created.
type Tracker struct {
	cube         *Cube
	solved       []int
	history      []Turn
	bestProgress int // Monotonic until Reset or Scramble
	wasSolved    bool
	onSolved     func(turns int)
}

// NewTracker creates a tracker around a new solved cube.
func NewTracker(opts ...Option) *Tracker {
	c := NewCube(opts...)
	return &Tracker{
		cube:         c,
		solved:       c.State(),
		bestProgress: StateLen,
		wasSolved:    true,
	}
}

// OnSolved sets a callback that fires when a turn brings the cube back to
// the solved state. It receives the number of turns recorded so far.
func (t *Tracker) OnSolved(cb func(turns int)) {
	t.onSolved = cb
}

// Reset restores the solved cube and clears the history.
func (t *Tracker) Reset() {
	t.cube.Reset()
	t.history = t.history[:0]
	t.bestProgress = StateLen
	t.wasSolved = true
}

// Scramble scrambles the cube and starts a fresh history.
// It returns the scramble turns, which are not part of the history.
func (t *Tracker) Scramble() []Turn {
	turns := t.cube.Scramble()
	t.history = t.history[:0]
	t.bestProgress = t.Progress()
	t.wasSolved = t.cube.IsSolved()
	return turns
}

// Apply performs a turn and records it.
func (t *Tracker) Apply(turn Turn) error {
	if err := t.cube.Apply(turn); err != nil {
		return err
	}
	t.history = append(t.history, turn)
	t.checkSolved()
	return nil
}

// Undo reverts the last recorded turn by applying its inverse.
// It returns false when there is nothing to undo.
func (t *Tracker) Undo() bool {
	if len(t.history) == 0 {
		return false
	}
	last := t.history[len(t.history)-1]
	t.history = t.history[:len(t.history)-1]
	t.cube.Apply(last.Inverse())
	t.checkSolved()
	return true
}

func (t *Tracker) checkSolved() {
	if p := t.Progress(); p > t.bestProgress {
		t.bestProgress = p
	}

	solved := t.cube.IsSolved()
	if solved && !t.wasSolved && t.onSolved != nil {
		t.onSolved(len(t.history))
	}
	t.wasSolved = solved
}

// Progress returns how many entries of the state vector match the solved
// snapshot, from 0 to StateLen.
func (t *Tracker) Progress() int {
	n := 0
	for i, v := range t.cube.State() {
		if v == t.solved[i] {
			n++
		}
	}
	return n
}

// BestProgress returns the highest Progress seen since the last Reset or
// Scramble.
func (t *Tracker) BestProgress() int {
	return t.bestProgress
}

// History returns a copy of the recorded turns.
func (t *Tracker) History() []Turn {
	return append([]Turn(nil), t.history...)
}

// IsSolved returns true if the cube is solved.
func (t *Tracker) IsSolved() bool {
	return t.cube.IsSolved()
}

// Cube returns the underlying cube for inspection.
func (t *Tracker) Cube() *Cube {
	return t.cube
}

// CubeString returns a string representation of the cube.
func (t *Tracker) CubeString() string {
	return t.cube.String()
}
