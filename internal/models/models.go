package models

import (
	"strings"
	"unicode/utf8"
)

// Question is one trivia card on the board.
type Question struct {
	ID        int     `yaml:"id,omitempty"`
	Type      HitType `yaml:"type"`
	Question  string  `yaml:"question"`
	Answer    string  `yaml:"answer"`
	Reference string  `yaml:"reference,omitempty"` // e.g., "Genesis 1:1"
}

// Bank is a question bank as stored on disk.
type Bank struct {
	Title     string     `yaml:"title"`
	ShortName string     `yaml:"short_name"` // e.g., "bible-basics"
	Questions []Question `yaml:"questions"`
}

// CountByType returns how many questions of each hit type the bank holds.
func (b Bank) CountByType() map[HitType]int {
	counts := make(map[HitType]int, len(HitTypes))
	for _, q := range b.Questions {
		counts[q.Type]++
	}
	return counts
}

// RunnerIcon is the marker a team's runners are drawn with.
type RunnerIcon string

const (
	IconDefault RunnerIcon = "default"
	IconBlue    RunnerIcon = "blue"
	IconRed     RunnerIcon = "red"
	IconYellow  RunnerIcon = "yellow"
)

// RunnerIcons lists the icons in picker order.
var RunnerIcons = []RunnerIcon{IconDefault, IconBlue, IconRed, IconYellow}

const (
	MaxTeamNameLength = 12
	DefaultAwayName   = "Away"
	DefaultHomeName   = "Home"
)

// Teams holds the setup form's result.
type Teams struct {
	AwayName string     `yaml:"away_name"`
	HomeName string     `yaml:"home_name"`
	AwayIcon RunnerIcon `yaml:"away_icon"`
	HomeIcon RunnerIcon `yaml:"home_icon"`
}

// DefaultTeams returns the names and icons the setup form starts with.
func DefaultTeams() Teams {
	return Teams{
		AwayName: DefaultAwayName,
		HomeName: DefaultHomeName,
		AwayIcon: IconBlue,
		HomeIcon: IconRed,
	}
}

// Normalize trims names, truncates them to MaxTeamNameLength runes and falls
// back to defaults for blanks. Icons that collide or are unknown are replaced
// with the first free icon.
func (t Teams) Normalize(defaults Teams) Teams {
	t.AwayName = normalizeName(t.AwayName, defaults.AwayName)
	t.HomeName = normalizeName(t.HomeName, defaults.HomeName)

	if !t.AwayIcon.Valid() {
		t.AwayIcon = defaults.AwayIcon
	}
	if !t.HomeIcon.Valid() || t.HomeIcon == t.AwayIcon {
		t.HomeIcon = defaults.HomeIcon
		if t.HomeIcon == t.AwayIcon {
			for _, icon := range RunnerIcons {
				if icon != t.AwayIcon {
					t.HomeIcon = icon
					break
				}
			}
		}
	}
	return t
}

// Name returns the display name of a side.
func (t Teams) Name(team Team) string {
	if team == Home {
		return t.HomeName
	}
	return t.AwayName
}

// Icon returns the runner icon of a side.
func (t Teams) Icon(team Team) RunnerIcon {
	if team == Home {
		return t.HomeIcon
	}
	return t.AwayIcon
}

func (i RunnerIcon) Valid() bool {
	for _, icon := range RunnerIcons {
		if icon == i {
			return true
		}
	}
	return false
}

func normalizeName(name, fallback string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return fallback
	}
	if utf8.RuneCountInString(name) > MaxTeamNameLength {
		name = string([]rune(name)[:MaxTeamNameLength])
	}
	return name
}
