package cli

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"
)

func runCLI(t *testing.T, args ...string) string {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetArgs(nil)
		dbPath = ""
		rolloutNoRecord = false
		scramblePlain = false
	})
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("%v: %v\n%s", args, err, out.String())
	}
	return out.String()
}

func TestScrambleCommand(t *testing.T) {
	out := runCLI(t, "scramble", "--seed", "4", "--length", "3", "--plain")
	if !strings.HasPrefix(out, "Scramble: ") {
		t.Errorf("unexpected output:\n%s", out)
	}
	turns := strings.Fields(strings.SplitN(strings.TrimPrefix(out, "Scramble: "), "\n", 2)[0])
	if len(turns) != 3 {
		t.Errorf("scramble has %d turns, want 3", len(turns))
	}
	if !strings.Contains(out, "Legend: W=white Y=yellow R=red O=orange G=green B=blue") {
		t.Errorf("missing color legend:\n%s", out)
	}
	if !strings.Contains(out, "State: [") {
		t.Errorf("missing state vector:\n%s", out)
	}
}

func TestRolloutAndEpisodes(t *testing.T) {
	db := filepath.Join(t.TempDir(), "episodes.db")

	out := runCLI(t, "--db", db, "rollout", "--episodes", "2", "--seed", "5")
	if !strings.Contains(out, "Episodes: 2") {
		t.Errorf("unexpected rollout output:\n%s", out)
	}

	out = runCLI(t, "--db", db, "episodes")
	if !strings.Contains(out, "of 2 recorded episodes") {
		t.Errorf("unexpected episodes output:\n%s", out)
	}

	id := strings.Fields(strings.Split(out, "\n")[1])[0]
	out = runCLI(t, "--db", db, "episodes", "show", id)
	if !strings.Contains(out, "Episode: "+id) || !strings.Contains(out, "Policy: random") {
		t.Errorf("unexpected show output:\n%s", out)
	}
}
