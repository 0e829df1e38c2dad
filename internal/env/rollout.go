package env

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"

	"github.com/SeamusWaldron/piececube"
)

// Policy picks the next action from the latest time step.
type Policy interface {
	Action(ts TimeStep) int
}

// RandomPolicy picks actions uniformly at random.
type RandomPolicy struct {
	rng *rand.Rand
}

// NewRandomPolicy creates a uniform policy. A nil rng uses the global source.
func NewRandomPolicy(rng *rand.Rand) *RandomPolicy {
	return &RandomPolicy{rng: rng}
}

func (p *RandomPolicy) Action(TimeStep) int {
	if p.rng == nil {
		return rand.IntN(NumActions)
	}
	return p.rng.IntN(NumActions)
}

// StepRecord describes one step of an episode.
type StepRecord struct {
	Index  int
	Action int
	Turn   piececube.Turn
	Reward float64
}

// EpisodeResult summarizes a finished episode.
type EpisodeResult struct {
	Steps       int
	TotalReward float64
	Solved      bool
}

// Recorder receives episodes as they run.
type Recorder interface {
	BeginEpisode(scramble []piececube.Turn) (string, error)
	RecordStep(episodeID string, step StepRecord) error
	EndEpisode(episodeID string, result EpisodeResult) error
}

// RunEpisode resets the environment and steps it with policy until the
// episode ends or ctx is cancelled. rec may be nil. Once an episode has
// begun, rec.EndEpisode is called on every return, with the partial result
// when the episode stops early.
func RunEpisode(ctx context.Context, e *Env, policy Policy, rec Recorder) (EpisodeResult, error) {
	ts := e.Reset()

	var episodeID string
	if rec != nil {
		id, err := rec.BeginEpisode(e.Scramble())
		if err != nil {
			return EpisodeResult{}, fmt.Errorf("failed to begin episode: %w", err)
		}
		episodeID = id
	}

	var result EpisodeResult
	end := func(err error) (EpisodeResult, error) {
		if rec == nil {
			return result, err
		}
		if endErr := rec.EndEpisode(episodeID, result); endErr != nil {
			err = errors.Join(err, fmt.Errorf("failed to end episode: %w", endErr))
		}
		return result, err
	}

	for !ts.IsLast() {
		if err := ctx.Err(); err != nil {
			return end(err)
		}

		action := policy.Action(ts)
		next, err := e.Step(action)
		if err != nil {
			return end(err)
		}

		if rec != nil {
			turn, _ := ActionTurn(action)
			step := StepRecord{Index: result.Steps, Action: action, Turn: turn, Reward: next.Reward}
			if err := rec.RecordStep(episodeID, step); err != nil {
				return end(fmt.Errorf("failed to record step: %w", err))
			}
		}

		result.Steps++
		result.TotalReward += next.Reward
		result.Solved = next.Solved
		ts = next
	}

	return end(nil)
}
