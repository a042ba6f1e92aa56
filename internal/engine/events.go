package engine

import "github.com/tatianab/homerun/internal/models"

// Event is a notification emitted by a transition. Events are the only way
// the engine talks to presentation, audio and commentary; it never waits on
// their handling.
type Event interface {
	event()
}

// StrategySelected is emitted when the batter picks a strategy.
type StrategySelected struct {
	Team     models.Team
	Strategy models.Strategy
}

// HitRecorded is emitted for every correct answer.
type HitRecorded struct {
	Team        models.Team
	Raw         models.HitType
	Effective   models.HitType
	Strategy    models.Strategy
	BasesBefore models.Bases
	BasesAfter  models.Bases
	Runs        int
}

// RunsScored is emitted only when a hit drove in at least one run. Token
// changes on every emission so the UI can tell two identical scores apart.
type RunsScored struct {
	Team  models.Team
	Runs  int
	Token int
}

// OutRecorded is emitted for every wrong answer. Outs is the count after
// the play, capped at OutsPerSide when the side was retired.
type OutRecorded struct {
	Team     models.Team
	Strategy models.Strategy
	Added    int
	Outs     int
}

// FoulBall is emitted for a foul. Nothing else changes.
type FoulBall struct {
	Team models.Team
}

// SideChanged is emitted when a new half-inning begins.
type SideChanged struct {
	Inning  int
	TopHalf bool
	Batting models.Team
}

// GameOver is emitted once, when the last half-inning ends.
type GameOver struct {
	Result Result
}

func (StrategySelected) event() {}
func (HitRecorded) event()      {}
func (RunsScored) event()       {}
func (OutRecorded) event()      {}
func (FoulBall) event()         {}
func (SideChanged) event()      {}
func (GameOver) event()         {}
