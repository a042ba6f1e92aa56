package engine

import (
	"fmt"

	"github.com/tatianab/homerun/internal/models"
)

// Phase is where a plate appearance stands.
type Phase string

const (
	PhaseAwaitingStrategy Phase = "awaiting_strategy"
	PhaseAwaitingAnswer   Phase = "awaiting_answer"
	PhaseResolving        Phase = "resolving" // only reported by Session during the play pause
	PhaseGameOver         Phase = "game_over"
)

// State is a complete snapshot of a game between plate appearances.
type State struct {
	Clock Clock      `yaml:"clock"`
	Half  HalfInning `yaml:"half_inning"`
	Score Scoreboard `yaml:"score"`
	Plays int        `yaml:"plays"` // committed plate appearances; doubles as the score token
}

// NewState returns the state at the first pitch of a game.
func NewState(totalInnings int) (State, error) {
	clock, err := NewClock(totalInnings)
	if err != nil {
		return State{}, err
	}
	return State{Clock: clock}, nil
}

// Phase derives the plate-appearance phase from the state.
func (s State) Phase() Phase {
	switch {
	case s.Clock.Finished:
		return PhaseGameOver
	case s.Half.Strategy == models.StrategyUnset:
		return PhaseAwaitingStrategy
	default:
		return PhaseAwaitingAnswer
	}
}

// Input is something the player does: SelectStrategy or SubmitAnswer.
type Input interface {
	input()
}

// SelectStrategy picks the strategy for the next plate appearance.
type SelectStrategy struct {
	Strategy models.Strategy
}

// SubmitAnswer reports how the question went. Hit is the question's hit
// type; it is only consulted for a correct answer.
type SubmitAnswer struct {
	Outcome models.Outcome
	Hit     models.HitType
}

func (SelectStrategy) input() {}
func (SubmitAnswer) input()   {}

// Step applies one input. On error the returned state is s, unchanged, and no
// events are emitted. s itself is never mutated.
func Step(s State, in Input) (State, []Event, error) {
	if s.Clock.Inning == 0 {
		return s, nil, ErrGameNotStarted
	}
	if s.Clock.Finished {
		return s, nil, ErrGameFinished
	}

	next := s
	next.Score = s.Score.clone()

	var (
		events []Event
		err    error
	)
	switch in := in.(type) {
	case SelectStrategy:
		events, err = next.selectStrategy(in.Strategy)
	case SubmitAnswer:
		events, err = next.submitAnswer(in.Outcome, in.Hit)
	default:
		err = newError(CodeUnknown, fmt.Sprintf("unknown input %T", in))
	}
	if err != nil {
		return s, nil, err
	}
	return next, events, nil
}

func (s *State) selectStrategy(strategy models.Strategy) ([]Event, error) {
	if !strategy.Valid() {
		return nil, newError(CodeInvalidStrategy, fmt.Sprintf("unknown batting strategy %q", strategy))
	}
	if s.Half.Strategy != models.StrategyUnset {
		return nil, ErrStrategyAlreadySelected
	}
	s.Half.Strategy = strategy
	return []Event{StrategySelected{Team: s.Clock.Batting(), Strategy: strategy}}, nil
}

func (s *State) submitAnswer(outcome models.Outcome, hit models.HitType) ([]Event, error) {
	if !outcome.Valid() {
		return nil, newError(CodeInvalidOutcome, fmt.Sprintf("unknown answer outcome %q", outcome))
	}
	if s.Half.Strategy == models.StrategyUnset {
		return nil, ErrNoStrategy
	}

	batting := s.Clock.Batting()
	strategy := s.Half.Strategy

	switch outcome {
	case models.Foul:
		return []Event{FoulBall{Team: batting}}, nil

	case models.Incorrect:
		s.Plays++
		added := strategy.OutsOnMiss()
		out := OutRecorded{
			Team:     batting,
			Strategy: strategy,
			Added:    added,
			Outs:     min(s.Half.Outs+added, OutsPerSide),
		}
		if !s.Half.AddOuts(added) {
			s.Half.Strategy = models.StrategyUnset
			return []Event{out}, nil
		}
		return append([]Event{out}, s.changeSide()), nil
	}

	if !hit.Valid() {
		return nil, newError(CodeInvalidHitType, fmt.Sprintf("unknown hit type %q", hit))
	}
	s.Plays++
	effective := Resolve(hit, strategy)
	runs, after := Advance(effective, s.Half.Bases)

	events := []Event{HitRecorded{
		Team:        batting,
		Raw:         hit,
		Effective:   effective,
		Strategy:    strategy,
		BasesBefore: s.Half.Bases,
		BasesAfter:  after,
		Runs:        runs,
	}}
	s.Score.Hit(batting, s.Clock.Inning, runs)
	s.Half.Bases = after
	s.Half.Strategy = models.StrategyUnset
	if runs > 0 {
		events = append(events, RunsScored{Team: batting, Runs: runs, Token: s.Plays})
	}
	return events, nil
}

func (s *State) changeSide() Event {
	s.Half.Reset()
	if s.Clock.ChangeSide() {
		return GameOver{Result: s.Score.Result()}
	}
	return SideChanged{
		Inning:  s.Clock.Inning,
		TopHalf: s.Clock.TopHalf,
		Batting: s.Clock.Batting(),
	}
}
