// Package env exposes a cube as a reinforcement-learning environment:
// twelve discrete actions, the cube state vector as observation, and
// shaped rewards measured against a solved snapshot.
package env

import (
	"errors"
	"fmt"
	"slices"

	"github.com/rs/zerolog"

	"github.com/SeamusWaldron/piececube"
	"github.com/SeamusWaldron/piececube/internal/config"
)

// Observation and action space sizes.
const (
	ObservationLen = piececube.StateLen
	NumActions     = 12
)

// ErrInvalidAction is returned by Step for actions outside [0, NumActions).
var ErrInvalidAction = errors.New("env: invalid action")

// actions maps action indices to turns. Each turn is followed by its inverse.
var actions = [NumActions]piececube.Turn{
	piececube.U, piececube.Ud,
	piececube.R, piececube.Rd,
	piececube.F, piececube.Fd,
	piececube.D, piececube.Dd,
	piececube.L, piececube.Ld,
	piececube.B, piececube.Bd,
}

// ActionTurn returns the turn performed by an action.
func ActionTurn(action int) (piececube.Turn, error) {
	if action < 0 || action >= NumActions {
		return 0, fmt.Errorf("%w: %d", ErrInvalidAction, action)
	}
	return actions[action], nil
}

// UndoOf returns the action that reverses action.
func UndoOf(action int) int {
	return action ^ 1
}

// StepType marks the position of a TimeStep within an episode.
type StepType int

const (
	StepFirst StepType = iota
	StepMid
	StepLast
)

func (s StepType) String() string {
	switch s {
	case StepFirst:
		return "first"
	case StepMid:
		return "mid"
	case StepLast:
		return "last"
	default:
		return "?"
	}
}

// TimeStep is the result of Reset or Step.
type TimeStep struct {
	Type        StepType
	Observation []int
	Reward      float64
	Discount    float64
	Solved      bool
}

// IsLast reports whether the episode ended with this step.
func (ts TimeStep) IsLast() bool {
	return ts.Type == StepLast
}

// Env owns one cube and the bookkeeping for the current episode.
// It is not safe for concurrent use.
type Env struct {
	cfg      config.EnvConfig
	log      zerolog.Logger
	cube     *piececube.Cube
	solved   []int
	rewarded []bool

	scramble   []piececube.Turn
	lastAction int
	steps      int
	ended      bool
}

// New creates an environment. Call Reset to start the first episode.
func New(cfg config.EnvConfig, log zerolog.Logger) *Env {
	opts := []piececube.Option{piececube.WithScrambleLength(cfg.ScrambleLength)}
	if cfg.Seed != 0 {
		opts = append(opts, piececube.WithSeed(cfg.Seed))
	}
	cube := piececube.NewCube(opts...)

	return &Env{
		cfg:        cfg,
		log:        log.With().Str("component", "env").Logger(),
		cube:       cube,
		solved:     cube.State(),
		rewarded:   make([]bool, ObservationLen),
		lastAction: -1,
		ended:      true,
	}
}

// Reset solves and rescrambles the cube and starts a new episode.
func (e *Env) Reset() TimeStep {
	e.cube.Reset()
	e.scramble = e.cube.Scramble()
	e.lastAction = -1
	e.steps = 0
	e.ended = false
	clear(e.rewarded)

	e.log.Debug().Str("scramble", piececube.FormatTurns(e.scramble)).Msg("episode reset")

	return TimeStep{
		Type:        StepFirst,
		Observation: e.cube.State(),
		Discount:    1,
	}
}

// Step applies an action and returns the shaped reward. Stepping an
// ended episode starts a new one instead.
func (e *Env) Step(action int) (TimeStep, error) {
	if e.ended {
		return e.Reset(), nil
	}

	turn, err := ActionTurn(action)
	if err != nil {
		return TimeStep{}, err
	}
	e.cube.Apply(turn)
	e.steps++

	reward := e.cfg.StepPenalty
	if e.lastAction >= 0 && UndoOf(action) == e.lastAction {
		reward += e.cfg.UndoPenalty
	}
	e.lastAction = action

	state := e.cube.State()
	for i, v := range state {
		if v == e.solved[i] && !e.rewarded[i] {
			reward += e.cfg.FaceletReward
			e.rewarded[i] = true
		}
	}

	ts := TimeStep{
		Type:        StepMid,
		Observation: state,
		Discount:    e.cfg.Discount,
	}

	switch {
	case slices.Equal(state, e.solved):
		reward += e.cfg.SolveReward
		ts.Solved = true
		e.ended = true
		e.log.Info().Int("steps", e.steps).Msg("cube solved")
	case e.steps >= e.cfg.MaxSteps:
		e.ended = true
		e.log.Debug().Int("steps", e.steps).Msg("step limit reached")
	}

	if e.ended {
		ts.Type = StepLast
		ts.Discount = 0
	}
	ts.Reward = reward
	return ts, nil
}

// SolvedState returns a copy of the solved snapshot.
func (e *Env) SolvedState() []int {
	return slices.Clone(e.solved)
}

// Scramble returns the turns that scrambled the current episode.
func (e *Env) Scramble() []piececube.Turn {
	return slices.Clone(e.scramble)
}

// Steps returns the number of steps taken in the current episode.
func (e *Env) Steps() int {
	return e.steps
}

// Ended reports whether the current episode has finished.
func (e *Env) Ended() bool {
	return e.ended
}

// Cube returns the environment's cube for read-only inspection.
func (e *Env) Cube() *piececube.Cube {
	return e.cube
}
