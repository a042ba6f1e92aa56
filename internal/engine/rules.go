package engine

import "github.com/tatianab/homerun/internal/models"

// Resolve applies the batting strategy to the hit a question is worth.
// A power swing turns a single into a double and anything longer into a
// home run; a normal swing leaves the hit alone.
func Resolve(raw models.HitType, strategy models.Strategy) models.HitType {
	if strategy != models.StrategyPower {
		return raw
	}
	if raw == models.Single {
		return models.Double
	}
	return models.HomeRun
}

// Advance moves the runners for a hit and returns the runs that scored with
// the resulting bases. Every runner moves exactly as many bases as the hit is
// worth, except that on a double the runner from first stops at third.
func Advance(hit models.HitType, before models.Bases) (int, models.Bases) {
	switch hit {
	case models.HomeRun:
		return 1 + before.Count(), models.Bases{}

	case models.Triple:
		return before.Count(), models.Bases{Third: true}

	case models.Double:
		runs := 0
		if before.Third {
			runs++
		}
		if before.Second {
			runs++
		}
		return runs, models.Bases{Second: true, Third: before.First}

	case models.Single:
		runs := 0
		if before.Third {
			runs++
		}
		return runs, models.Bases{First: true, Second: before.First, Third: before.Second}
	}
	return 0, before
}
