package engine

import (
	"log"

	"github.com/google/uuid"
	"github.com/tatianab/homerun/internal/models"
)

// Game owns the state of one game and applies inputs to it one at a time.
type Game struct {
	ID    string
	state State
}

// NewGame starts a game of totalInnings innings.
func NewGame(totalInnings int) (*Game, error) {
	g := &Game{}
	if err := g.Start(totalInnings); err != nil {
		return nil, err
	}
	return g, nil
}

// Start throws away the current game, if any, and begins a new one.
func (g *Game) Start(totalInnings int) error {
	state, err := NewState(totalInnings)
	if err != nil {
		return err
	}
	g.ID = uuid.NewString()
	g.state = state
	log.Printf("game %s: started, %d innings", g.ID, totalInnings)
	return nil
}

// State returns a copy of the current state.
func (g *Game) State() State {
	s := g.state
	s.Score = s.Score.clone()
	return s
}

func (g *Game) Phase() Phase {
	return g.state.Phase()
}

// SelectStrategy picks the strategy for the next plate appearance. It fails
// while a strategy is already pending or after the game ended.
func (g *Game) SelectStrategy(strategy models.Strategy) ([]Event, error) {
	return g.apply(SelectStrategy{Strategy: strategy})
}

// SubmitAnswer resolves the pending plate appearance.
func (g *Game) SubmitAnswer(outcome models.Outcome, hit models.HitType) ([]Event, error) {
	return g.apply(SubmitAnswer{Outcome: outcome, Hit: hit})
}

func (g *Game) apply(in Input) ([]Event, error) {
	before := g.state
	next, events, err := Step(g.state, in)
	if err != nil {
		return nil, err
	}
	g.state = next
	if answer, ok := in.(SubmitAnswer); ok && answer.Outcome != models.Foul {
		log.Printf("game %s: %s, %s %s (%s) -> runs %d-%d, outs %d, bases %s",
			g.ID, before.Clock, before.Clock.Batting(), answer.Outcome, before.Half.Strategy,
			next.Score.RunsAway, next.Score.RunsHome, next.Half.Outs, next.Half.Bases)
	}
	for _, e := range events {
		if over, ok := e.(GameOver); ok {
			log.Printf("game %s: final, %s", g.ID, over.Result)
		}
	}
	return events, nil
}

// Consumes reports whether an outcome uses up the question it answered.
func Consumes(outcome models.Outcome) bool {
	return outcome == models.Correct || outcome == models.Incorrect
}
