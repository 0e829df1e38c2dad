package storage

import (
	"database/sql"
	"fmt"
)

// StepRecord represents one environment step in the database.
type StepRecord struct {
	StepID    int64
	EpisodeID string
	StepIndex int
	Action    int
	Turn      string
	Reward    float64
}

// StepRepository provides CRUD operations for steps.
type StepRepository struct {
	db *DB
}

// NewStepRepository creates a new step repository.
func NewStepRepository(db *DB) *StepRepository {
	return &StepRepository{db: db}
}

// Create inserts a single step and returns its ID.
func (r *StepRepository) Create(s StepRecord) (int64, error) {
	result, err := r.db.Exec(insertStepSQL, s.EpisodeID, s.StepIndex, s.Action, s.Turn, s.Reward)
	if err != nil {
		return 0, fmt.Errorf("failed to create step: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get step ID: %w", err)
	}

	return id, nil
}

// CreateBatch inserts steps in a single transaction.
func (r *StepRepository) CreateBatch(steps []StepRecord) error {
	return r.db.Transaction(func(tx *sql.Tx) error {
		stmt, err := tx.Prepare(insertStepSQL)
		if err != nil {
			return fmt.Errorf("failed to prepare step insert: %w", err)
		}
		defer stmt.Close()

		for _, s := range steps {
			if _, err := stmt.Exec(s.EpisodeID, s.StepIndex, s.Action, s.Turn, s.Reward); err != nil {
				return fmt.Errorf("failed to create step %d: %w", s.StepIndex, err)
			}
		}
		return nil
	})
}

const insertStepSQL = `
	INSERT INTO steps (episode_id, step_index, action, turn, reward)
	VALUES (?, ?, ?, ?, ?)
`

// GetByEpisode retrieves all steps of an episode in order.
func (r *StepRepository) GetByEpisode(episodeID string) ([]StepRecord, error) {
	rows, err := r.db.Query(`
		SELECT step_id, episode_id, step_index, action, turn, reward
		FROM steps
		WHERE episode_id = ?
		ORDER BY step_index
	`, episodeID)
	if err != nil {
		return nil, fmt.Errorf("failed to get steps: %w", err)
	}
	defer rows.Close()

	var steps []StepRecord
	for rows.Next() {
		var s StepRecord
		if err := rows.Scan(&s.StepID, &s.EpisodeID, &s.StepIndex, &s.Action, &s.Turn, &s.Reward); err != nil {
			return nil, fmt.Errorf("failed to scan step: %w", err)
		}
		steps = append(steps, s)
	}

	return steps, rows.Err()
}

// Count returns the number of steps recorded for an episode.
func (r *StepRepository) Count(episodeID string) (int, error) {
	var count int
	err := r.db.QueryRow("SELECT COUNT(*) FROM steps WHERE episode_id = ?", episodeID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count steps: %w", err)
	}
	return count, nil
}
