package piececube

import "testing"

func TestTrackerStartsSolved(t *testing.T) {
	tr := NewTracker()
	if !tr.IsSolved() {
		t.Error("new tracker should be solved")
	}
	if tr.Progress() != StateLen || tr.BestProgress() != StateLen {
		t.Errorf("Progress() = %d, BestProgress() = %d, want %d", tr.Progress(), tr.BestProgress(), StateLen)
	}
}

func TestTrackerHistoryAndUndo(t *testing.T) {
	tr := NewTracker()
	for _, turn := range []Turn{R, U, Fd} {
		if err := tr.Apply(turn); err != nil {
			t.Fatal(err)
		}
	}
	if got := FormatTurns(tr.History()); got != "R U Fd" {
		t.Errorf("History() = %q, want %q", got, "R U Fd")
	}

	for i := 0; i < 3; i++ {
		if !tr.Undo() {
			t.Fatalf("Undo %d returned false", i)
		}
	}
	if tr.Undo() {
		t.Error("Undo on empty history should return false")
	}
	if !tr.IsSolved() {
		t.Error("undoing every turn should restore solved")
		t.Log(tr.CubeString())
	}
}

func TestTrackerOnSolved(t *testing.T) {
	tr := NewTracker()
	var calls []int
	tr.OnSolved(func(turns int) { calls = append(calls, turns) })

	tr.Apply(R)
	tr.Apply(Rd)
	if len(calls) != 1 || calls[0] != 2 {
		t.Errorf("OnSolved calls = %v, want [2]", calls)
	}

	tr.Apply(U)
	tr.Undo()
	if len(calls) != 2 || calls[1] != 2 {
		t.Errorf("OnSolved calls = %v, want [2 2]", calls)
	}
}

func TestTrackerApplyInvalidTurnNotRecorded(t *testing.T) {
	tr := NewTracker()
	if err := tr.Apply(Turn(99)); err != ErrInvalidTurn {
		t.Errorf("Apply(99) error = %v, want ErrInvalidTurn", err)
	}
	if len(tr.History()) != 0 {
		t.Error("invalid turn should not be recorded")
	}
}

func TestTrackerScrambleResetsProgress(t *testing.T) {
	tr := NewTracker(WithSeed(11))
	scramble := tr.Scramble()
	if len(scramble) != DefaultScrambleLength {
		t.Fatalf("Scramble() = %d turns", len(scramble))
	}
	if len(tr.History()) != 0 {
		t.Error("scramble turns should not be part of the history")
	}
	if tr.BestProgress() != tr.Progress() {
		t.Errorf("BestProgress() = %d, want %d", tr.BestProgress(), tr.Progress())
	}
	if tr.Progress() >= StateLen {
		t.Error("scrambled cube should not match the solved snapshot")
	}

	before := tr.BestProgress()
	tr.Apply(R)
	if tr.BestProgress() < before {
		t.Error("BestProgress should never decrease")
	}

	tr.Reset()
	if !tr.IsSolved() || tr.BestProgress() != StateLen || len(tr.History()) != 0 {
		t.Error("Reset should restore solved state and clear history")
	}
}
