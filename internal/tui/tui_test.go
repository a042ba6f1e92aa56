package tui

import (
	"strconv"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tatianab/homerun/internal/commentary"
	"github.com/tatianab/homerun/internal/config"
	"github.com/tatianab/homerun/internal/engine"
	"github.com/tatianab/homerun/internal/models"
	"github.com/tatianab/homerun/internal/questions"
)

func newTestModel(t *testing.T) model {
	t.Helper()
	bank, err := questions.DefaultBank()
	require.NoError(t, err)
	catalog, err := commentary.NewCatalog("en-US")
	require.NoError(t, err)
	cfg := &config.Config{
		Innings:   1,
		Questions: 8,
		Seed:      7,
		Locale:    "en-US",
		AwayName:  "Away",
		HomeName:  "Home",
	}
	return NewModel(Options{Config: cfg, Bank: bank, Catalog: catalog, Announcer: catalog})
}

func press(t *testing.T, m model, keys ...tea.KeyMsg) model {
	t.Helper()
	for _, k := range keys {
		next, _ := m.Update(k)
		m = next.(model)
	}
	return m
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

var (
	enter = tea.KeyMsg{Type: tea.KeyEnter}
	space = tea.KeyMsg{Type: tea.KeySpace}
	tab   = tea.KeyMsg{Type: tea.KeyTab}
	right = tea.KeyMsg{Type: tea.KeyRight}
)

func TestSetupStartsGame(t *testing.T) {
	m := newTestModel(t)
	assert.Equal(t, stateSetup, m.state)

	m = press(t, m, enter)
	require.Equal(t, statePlaying, m.state)
	assert.Equal(t, "Away", m.teams.AwayName)
	assert.Equal(t, models.IconBlue, m.teams.AwayIcon)
	assert.Equal(t, engine.PhaseAwaitingStrategy, m.session.Phase())
	assert.Contains(t, m.gameLog, "Play ball! Away bats first.")
}

func TestSetupIconsNeverCollide(t *testing.T) {
	m := newTestModel(t)
	// Away moves from blue; red belongs to home and is skipped.
	m = press(t, m, tab, right)
	assert.Equal(t, models.IconYellow, m.icons[0])
	m = press(t, m, right)
	assert.Equal(t, models.IconDefault, m.icons[0])
	m = press(t, m, right)
	assert.Equal(t, models.IconBlue, m.icons[0])
	assert.NotEqual(t, m.icons[0], m.icons[1])
}

func TestPlayThroughAQuestion(t *testing.T) {
	m := press(t, newTestModel(t), enter)

	m = press(t, m, runes("n"))
	require.Equal(t, engine.PhaseAwaitingAnswer, m.session.Phase())

	// Letters are not question numbers.
	m = press(t, m, runes("z"), runes("1"), enter)
	q, open := m.session.Current()
	require.True(t, open)
	assert.Equal(t, 1, q.ID)

	// Outcomes are ignored until the answer is revealed.
	m = press(t, m, runes("x"))
	_, open = m.session.Current()
	assert.True(t, open)

	m = press(t, m, space, runes("x"))
	assert.Equal(t, engine.PhaseResolving, m.session.Phase())
	assert.Zero(t, m.display.Half.Outs, "display waits for the pause")

	next, _ := m.Update(playFinishedMsg{plays: m.session.State().Plays})
	m = next.(model)
	assert.Equal(t, engine.PhaseAwaitingStrategy, m.session.Phase())
	assert.Equal(t, 1, m.display.Half.Outs)
	assert.True(t, m.session.Board().IsAnswered(1))
}

func TestStalePlayFinishedIgnored(t *testing.T) {
	m := press(t, newTestModel(t), enter, runes("p"), runes("2"), enter, space, runes("x"))
	require.Equal(t, engine.PhaseResolving, m.session.Phase())

	next, _ := m.Update(playFinishedMsg{plays: 99})
	m = next.(model)
	assert.Equal(t, engine.PhaseResolving, m.session.Phase())
}

func TestFoulKeepsStrategy(t *testing.T) {
	m := press(t, newTestModel(t), enter, runes("p"), runes("3"), enter, space, runes("f"))
	assert.Equal(t, engine.PhaseAwaitingAnswer, m.session.Phase())
	assert.Equal(t, models.StrategyPower, m.display.Half.Strategy)
	assert.False(t, m.session.Board().IsAnswered(3))
}

func TestGameOverAndReset(t *testing.T) {
	m := press(t, newTestModel(t), enter)
	// Two power misses per half retire both sides of a one inning game.
	for id := 1; id <= 4; id++ {
		m = press(t, m, runes("p"), runes(strconv.Itoa(id)), enter, space, runes("x"))
		next, _ := m.Update(playFinishedMsg{plays: m.session.State().Plays})
		m = next.(model)
	}
	require.Equal(t, stateGameOver, m.state)
	assert.True(t, m.display.Score.Result().Tie)
	assert.Contains(t, m.View(), "it's a tie")

	m = press(t, m, runes("r"))
	assert.Equal(t, stateSetup, m.state)
	assert.Nil(t, m.session)
}

func TestInningCell(t *testing.T) {
	st, err := engine.NewState(3)
	require.NoError(t, err)
	st.Score.Innings = []engine.InningLine{{Away: 2}}

	assert.Equal(t, "  2", inningCell(st, models.Away, 1))
	assert.Equal(t, "  -", inningCell(st, models.Home, 1))
	assert.Equal(t, "  -", inningCell(st, models.Away, 2))

	st.Clock.TopHalf = false
	assert.Equal(t, "  0", inningCell(st, models.Home, 1))
}
