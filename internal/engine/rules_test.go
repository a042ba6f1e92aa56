package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tatianab/homerun/internal/models"
)

func TestResolve(t *testing.T) {
	tests := []struct {
		raw      models.HitType
		strategy models.Strategy
		want     models.HitType
	}{
		{models.Single, models.StrategyNormal, models.Single},
		{models.Double, models.StrategyNormal, models.Double},
		{models.Triple, models.StrategyNormal, models.Triple},
		{models.HomeRun, models.StrategyNormal, models.HomeRun},
		{models.Single, models.StrategyPower, models.Double},
		{models.Double, models.StrategyPower, models.HomeRun},
		{models.Triple, models.StrategyPower, models.HomeRun},
		{models.HomeRun, models.StrategyPower, models.HomeRun},
	}
	for _, tt := range tests {
		t.Run(string(tt.raw)+"/"+string(tt.strategy), func(t *testing.T) {
			assert.Equal(t, tt.want, Resolve(tt.raw, tt.strategy))
		})
	}
}

func TestResolveNeverShortensAHit(t *testing.T) {
	for _, h := range models.HitTypes {
		assert.GreaterOrEqual(t, Resolve(h, models.StrategyPower).Bases(), h.Bases())
	}
}

func bases(first, second, third bool) models.Bases {
	return models.Bases{First: first, Second: second, Third: third}
}

func TestAdvance(t *testing.T) {
	tests := []struct {
		name     string
		hit      models.HitType
		before   models.Bases
		wantRuns int
		want     models.Bases
	}{
		{"single runner on third scores", models.Single, bases(false, false, true), 1, bases(true, false, false)},
		{"single bases loaded", models.Single, bases(true, true, true), 1, bases(true, true, true)},
		{"single runner on first moves up one", models.Single, bases(true, false, false), 0, bases(true, true, false)},
		{"single runner on second holds at third", models.Single, bases(false, true, false), 0, bases(true, false, true)},
		{"double runner on first stops at third", models.Double, bases(true, false, false), 0, bases(false, true, true)},
		{"double clears second and third", models.Double, bases(false, true, true), 2, bases(false, true, false)},
		{"double bases loaded", models.Double, bases(true, true, true), 2, bases(false, true, true)},
		{"triple bases empty", models.Triple, bases(false, false, false), 0, bases(false, false, true)},
		{"triple bases loaded", models.Triple, bases(true, true, true), 3, bases(false, false, true)},
		{"homer bases empty", models.HomeRun, bases(false, false, false), 1, bases(false, false, false)},
		{"grand slam", models.HomeRun, bases(true, true, true), 4, bases(false, false, false)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			runs, after := Advance(tt.hit, tt.before)
			assert.Equal(t, tt.wantRuns, runs)
			assert.Equal(t, tt.want, after)
		})
	}
}

// Everyone who was on base or at bat either scored or is on base afterwards.
func TestAdvanceConservesRunners(t *testing.T) {
	for mask := uint8(0); mask < 8; mask++ {
		before := models.BasesFromMask(mask)
		for _, h := range models.HitTypes {
			runs, after := Advance(h, before)
			assert.Equal(t, before.Count()+1, runs+after.Count(), "%s from %s", h, before)
			assert.LessOrEqual(t, after.Count(), 3)

			again, afterAgain := Advance(h, before)
			assert.Equal(t, runs, again)
			assert.Equal(t, after, afterAgain)
		}
	}
}

func TestAdvanceBatterLandsOnHitBase(t *testing.T) {
	for mask := uint8(0); mask < 8; mask++ {
		before := models.BasesFromMask(mask)
		_, after := Advance(models.Single, before)
		assert.True(t, after.First)
		_, after = Advance(models.Double, before)
		assert.True(t, after.Second)
		assert.False(t, after.First)
		_, after = Advance(models.Triple, before)
		assert.Equal(t, bases(false, false, true), after)
	}
}
