package storage

import (
	"github.com/SeamusWaldron/piececube"
	"github.com/SeamusWaldron/piececube/internal/env"
)

// EpisodeRecorder stores rollout episodes. Steps are buffered in memory
// and written in one transaction when the episode ends, including an
// episode cut short by cancellation.
type EpisodeRecorder struct {
	episodes *EpisodeRepository
	steps    *StepRepository
	policy   string
	pending  []StepRecord
}

var _ env.Recorder = (*EpisodeRecorder)(nil)

// NewEpisodeRecorder creates a recorder tagging episodes with a policy name.
func NewEpisodeRecorder(db *DB, policy string) *EpisodeRecorder {
	return &EpisodeRecorder{
		episodes: NewEpisodeRepository(db),
		steps:    NewStepRepository(db),
		policy:   policy,
	}
}

func (r *EpisodeRecorder) BeginEpisode(scramble []piececube.Turn) (string, error) {
	r.pending = r.pending[:0]
	return r.episodes.Create(piececube.FormatTurns(scramble), r.policy)
}

func (r *EpisodeRecorder) RecordStep(episodeID string, step env.StepRecord) error {
	r.pending = append(r.pending, StepRecord{
		EpisodeID: episodeID,
		StepIndex: step.Index,
		Action:    step.Action,
		Turn:      step.Turn.String(),
		Reward:    step.Reward,
	})
	return nil
}

func (r *EpisodeRecorder) EndEpisode(episodeID string, result env.EpisodeResult) error {
	if err := r.steps.CreateBatch(r.pending); err != nil {
		return err
	}
	r.pending = r.pending[:0]
	return r.episodes.End(episodeID, result.Steps, result.TotalReward, result.Solved)
}
