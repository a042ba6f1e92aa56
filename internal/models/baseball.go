package models

import "fmt"

// HitType is the hit a question is worth when answered correctly.
type HitType string

const (
	Single  HitType = "1B"
	Double  HitType = "2B"
	Triple  HitType = "3B"
	HomeRun HitType = "HR"
)

// HitTypes lists hit types from the shortest to the longest.
var HitTypes = []HitType{Single, Double, Triple, HomeRun}

func (h HitType) Valid() bool {
	switch h {
	case Single, Double, Triple, HomeRun:
		return true
	}
	return false
}

// Bases is the number of bases the batter takes on this hit.
func (h HitType) Bases() int {
	switch h {
	case Single:
		return 1
	case Double:
		return 2
	case Triple:
		return 3
	case HomeRun:
		return 4
	}
	return 0
}

// Strategy is the batting strategy picked before each plate appearance.
// The zero value means no strategy has been picked yet.
type Strategy string

const (
	StrategyUnset  Strategy = ""
	StrategyNormal Strategy = "normal"
	StrategyPower  Strategy = "power"
)

func (s Strategy) Valid() bool {
	return s == StrategyNormal || s == StrategyPower
}

// OutsOnMiss is how many outs a wrong answer costs with this strategy.
func (s Strategy) OutsOnMiss() int {
	if s == StrategyPower {
		return 2
	}
	return 1
}

// Outcome is how the player judged the answer.
type Outcome string

const (
	Correct   Outcome = "correct"
	Incorrect Outcome = "incorrect"
	Foul      Outcome = "foul"
)

func (o Outcome) Valid() bool {
	switch o {
	case Correct, Incorrect, Foul:
		return true
	}
	return false
}

// Team identifies a side. Away always bats in the top half.
type Team string

const (
	Away Team = "away"
	Home Team = "home"
)

// Bases records which bases are occupied. Runners have no identity.
type Bases struct {
	First  bool `yaml:"first"`
	Second bool `yaml:"second"`
	Third  bool `yaml:"third"`
}

// BasesFromMask builds a Bases value from a bitmask: bit 0 is first base,
// bit 1 second, bit 2 third.
func BasesFromMask(mask uint8) Bases {
	return Bases{
		First:  mask&1 != 0,
		Second: mask&2 != 0,
		Third:  mask&4 != 0,
	}
}

// Mask is the inverse of BasesFromMask.
func (b Bases) Mask() uint8 {
	var m uint8
	if b.First {
		m |= 1
	}
	if b.Second {
		m |= 2
	}
	if b.Third {
		m |= 4
	}
	return m
}

// Count returns the number of runners on base.
func (b Bases) Count() int {
	n := 0
	for _, occupied := range []bool{b.First, b.Second, b.Third} {
		if occupied {
			n++
		}
	}
	return n
}

func (b Bases) Empty() bool {
	return b == Bases{}
}

func (b Bases) Loaded() bool {
	return b.First && b.Second && b.Third
}

// String renders the bases as "1-3" style, a dash for an empty base.
func (b Bases) String() string {
	mark := func(occupied bool, c byte) byte {
		if occupied {
			return c
		}
		return '-'
	}
	return fmt.Sprintf("%c%c%c", mark(b.First, '1'), mark(b.Second, '2'), mark(b.Third, '3'))
}
