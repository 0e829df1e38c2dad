package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// ErrEpisodeNotFound is returned when an episode ID does not exist.
var ErrEpisodeNotFound = errors.New("storage: episode not found")

// timeLayout is fixed width so stored timestamps sort chronologically.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

// Episode represents a recorded rollout episode.
type Episode struct {
	EpisodeID    string
	StartedAt    time.Time
	EndedAt      *time.Time
	ScrambleText string
	StepCount    int
	TotalReward  float64
	Solved       bool
	Policy       string
}

// EpisodeRepository provides CRUD operations for episodes.
type EpisodeRepository struct {
	db *DB
}

// NewEpisodeRepository creates a new episode repository.
func NewEpisodeRepository(db *DB) *EpisodeRepository {
	return &EpisodeRepository{db: db}
}

// Create creates a new episode and returns its ID.
func (r *EpisodeRepository) Create(scramble, policy string) (string, error) {
	id := uuid.New().String()
	startedAt := time.Now().UTC()

	_, err := r.db.Exec(`
		INSERT INTO episodes (episode_id, started_at, scramble_text, policy)
		VALUES (?, ?, ?, ?)
	`, id, startedAt.Format(timeLayout), scramble, policy)

	if err != nil {
		return "", fmt.Errorf("failed to create episode: %w", err)
	}

	return id, nil
}

// End stores the outcome of an episode.
func (r *EpisodeRepository) End(episodeID string, steps int, totalReward float64, solved bool) error {
	endedAt := time.Now().UTC()

	result, err := r.db.Exec(`
		UPDATE episodes
		SET ended_at = ?, step_count = ?, total_reward = ?, solved = ?
		WHERE episode_id = ?
	`, endedAt.Format(timeLayout), steps, totalReward, solved, episodeID)
	if err != nil {
		return fmt.Errorf("failed to end episode: %w", err)
	}

	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to end episode: %w", err)
	}
	if n == 0 {
		return ErrEpisodeNotFound
	}
	return nil
}

// Get retrieves an episode by ID.
func (r *EpisodeRepository) Get(episodeID string) (*Episode, error) {
	row := r.db.QueryRow(`
		SELECT episode_id, started_at, ended_at, scramble_text, step_count, total_reward, solved, policy
		FROM episodes
		WHERE episode_id = ?
	`, episodeID)

	e, err := scanEpisode(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrEpisodeNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get episode: %w", err)
	}
	return e, nil
}

// List retrieves the most recent episodes, newest first.
func (r *EpisodeRepository) List(limit int) ([]Episode, error) {
	rows, err := r.db.Query(`
		SELECT episode_id, started_at, ended_at, scramble_text, step_count, total_reward, solved, policy
		FROM episodes
		ORDER BY started_at DESC, rowid DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list episodes: %w", err)
	}
	defer rows.Close()

	var episodes []Episode
	for rows.Next() {
		e, err := scanEpisode(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan episode: %w", err)
		}
		episodes = append(episodes, *e)
	}

	return episodes, rows.Err()
}

// SolvedCount returns how many recorded episodes ended solved, and the total.
func (r *EpisodeRepository) SolvedCount() (solved, total int, err error) {
	err = r.db.QueryRow(`
		SELECT COALESCE(SUM(solved), 0), COUNT(*) FROM episodes
	`).Scan(&solved, &total)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to count episodes: %w", err)
	}
	return solved, total, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanEpisode(row rowScanner) (*Episode, error) {
	var e Episode
	var startedAt string
	var endedAt *string

	err := row.Scan(&e.EpisodeID, &startedAt, &endedAt, &e.ScrambleText, &e.StepCount, &e.TotalReward, &e.Solved, &e.Policy)
	if err != nil {
		return nil, err
	}

	e.StartedAt, err = time.Parse(timeLayout, startedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to parse started_at: %w", err)
	}
	if endedAt != nil {
		t, err := time.Parse(timeLayout, *endedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to parse ended_at: %w", err)
		}
		e.EndedAt = &t
	}

	return &e, nil
}
