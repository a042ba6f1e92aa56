package engine

import (
	"fmt"

	"github.com/tatianab/homerun/internal/models"
)

// OutsPerSide is the number of outs that retires the batting side.
const OutsPerSide = 3

// HalfInning is the state of the side currently at bat.
type HalfInning struct {
	Outs     int             `yaml:"outs"`
	Bases    models.Bases    `yaml:"bases"`
	Strategy models.Strategy `yaml:"strategy"`
}

// AddOuts records outs and reports whether the side is retired. A retired
// side keeps its previous count; the caller changes sides, which resets it.
// A power swing with two outs overshoots to four and still retires the side
// exactly once.
func (h *HalfInning) AddOuts(n int) bool {
	if h.Outs+n >= OutsPerSide {
		return true
	}
	h.Outs += n
	return false
}

// Reset starts a fresh half-inning: no outs, bases empty, no strategy.
func (h *HalfInning) Reset() {
	*h = HalfInning{}
}

// Clock tracks the inning, which half is being played and whether the game
// has ended.
type Clock struct {
	Inning       int  `yaml:"inning"`
	TopHalf      bool `yaml:"top_half"`
	TotalInnings int  `yaml:"total_innings"`
	Finished     bool `yaml:"finished"`
}

// NewClock returns the clock at the top of the first inning.
func NewClock(totalInnings int) (Clock, error) {
	if totalInnings < 1 {
		return Clock{}, newError(CodeInvalidInnings, fmt.Sprintf("a game needs at least one inning, got %d", totalInnings))
	}
	return Clock{Inning: 1, TopHalf: true, TotalInnings: totalInnings}, nil
}

// Batting returns the side at bat: away in the top half, home in the bottom.
func (c Clock) Batting() models.Team {
	if c.TopHalf {
		return models.Away
	}
	return models.Home
}

// Fielding returns the side in the field.
func (c Clock) Fielding() models.Team {
	if c.TopHalf {
		return models.Home
	}
	return models.Away
}

// ChangeSide ends the current half-inning and reports whether that ended the
// game. There are no extra innings.
func (c *Clock) ChangeSide() bool {
	if c.TopHalf {
		c.TopHalf = false
		return false
	}
	if c.Inning >= c.TotalInnings {
		c.Finished = true
		return true
	}
	c.TopHalf = true
	c.Inning++
	return false
}

// Half returns "top" or "bottom".
func (c Clock) Half() string {
	if c.TopHalf {
		return "top"
	}
	return "bottom"
}

func (c Clock) String() string {
	return fmt.Sprintf("%s %d", c.Half(), c.Inning)
}

// InningLine is one column of the line score.
type InningLine struct {
	Away int `yaml:"away"`
	Home int `yaml:"home"`
}

// Scoreboard accumulates runs and hits per side. It only ever grows.
type Scoreboard struct {
	RunsAway int          `yaml:"runs_away"`
	RunsHome int          `yaml:"runs_home"`
	HitsAway int          `yaml:"hits_away"`
	HitsHome int          `yaml:"hits_home"`
	Innings  []InningLine `yaml:"innings"`
}

// Hit records a hit for team in the given inning and the runs it drove in.
func (s *Scoreboard) Hit(team models.Team, inning, runs int) {
	for len(s.Innings) < inning {
		s.Innings = append(s.Innings, InningLine{})
	}
	line := &s.Innings[inning-1]
	if team == models.Home {
		s.HitsHome++
		s.RunsHome += runs
		line.Home += runs
		return
	}
	s.HitsAway++
	s.RunsAway += runs
	line.Away += runs
}

// Runs returns the runs scored by team.
func (s Scoreboard) Runs(team models.Team) int {
	if team == models.Home {
		return s.RunsHome
	}
	return s.RunsAway
}

// Hits returns the hits recorded by team.
func (s Scoreboard) Hits(team models.Team) int {
	if team == models.Home {
		return s.HitsHome
	}
	return s.HitsAway
}

// Result decides the game on the current totals.
func (s Scoreboard) Result() Result {
	r := Result{Away: s.RunsAway, Home: s.RunsHome}
	switch {
	case s.RunsHome > s.RunsAway:
		r.Winner = models.Home
	case s.RunsAway > s.RunsHome:
		r.Winner = models.Away
	default:
		r.Tie = true
	}
	return r
}

func (s Scoreboard) clone() Scoreboard {
	s.Innings = append([]InningLine(nil), s.Innings...)
	return s
}

// Result is the final decision of a game.
type Result struct {
	Winner models.Team `yaml:"winner,omitempty"`
	Tie    bool        `yaml:"tie"`
	Away   int         `yaml:"away"`
	Home   int         `yaml:"home"`
}

// String renders the result as "away wins 5–3", "home wins 2–1" or "tie".
func (r Result) String() string {
	if r.Tie {
		return "tie"
	}
	hi, lo := r.WinnerScore()
	return fmt.Sprintf("%s wins %d–%d", r.Winner, hi, lo)
}

// WinnerScore returns the winner's runs then the loser's.
func (r Result) WinnerScore() (int, int) {
	if r.Winner == models.Home {
		return r.Home, r.Away
	}
	return r.Away, r.Home
}
