package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/tatianab/homerun/internal/engine"
	"github.com/tatianab/homerun/internal/models"
)

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFA500")).
			Bold(true).
			Underline(true)

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888888")).
			Italic(true)

	commentaryStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF"))

	focusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#EEEEEE")).
			Background(lipgloss.Color("#5F5F87")).
			Bold(true).
			PaddingLeft(1).
			PaddingRight(1)

	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#3C3C3C")).
			Padding(0, 1)

	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(lipgloss.Color("#FFA500")).
			Padding(1, 2).
			Width(56)

	answeredStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#444444"))

	flashStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#000000")).
			Background(lipgloss.Color("#FFD700")).
			Bold(true)

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF5F5F")).
			Bold(true)

	// Muted tile colors for the question grid.
	tileColors = []lipgloss.Color{"#A3B1C6", "#C6A3A3", "#A3C6AE", "#C6BFA3", "#B5A3C6", "#A3C2C6"}
)

var iconColors = map[models.RunnerIcon]lipgloss.Color{
	models.IconDefault: "#FFFFFF",
	models.IconBlue:    "#3B82F6",
	models.IconRed:     "#EF4444",
	models.IconYellow:  "#EAB308",
}

func runner(icon models.RunnerIcon) string {
	return lipgloss.NewStyle().Foreground(iconColors[icon]).Bold(true).Render("●")
}

func (m model) View() string {
	switch m.state {
	case stateSetup:
		return m.viewSetup()
	case stateQuestionList:
		header := titleStyle.Render("QUESTIONS")
		help := helpStyle.Render("esc: back  ↑/↓: scroll")
		return lipgloss.JoinVertical(lipgloss.Left, header, m.viewport.View(), help)
	case stateError:
		return errorStyle.Render(fmt.Sprintf("Error: %v", m.err)) + "\n\n" + helpStyle.Render("Press Esc to quit.")
	}

	top := lipgloss.JoinHorizontal(lipgloss.Top,
		panelStyle.Render(m.renderScoreboard()),
		panelStyle.Render(m.renderDiamond()),
	)
	var center string
	switch {
	case m.state == stateGameOver:
		center = m.viewGameOver()
	default:
		center = m.viewField()
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		top,
		center,
		titleStyle.Render("PLAY-BY-PLAY"),
		m.viewport.View(),
		helpStyle.Render(m.help()),
	)
}

func (m model) viewSetup() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("TRIVIA HOME RUN") + "\n")
	b.WriteString(m.opts.Bank.Title + "\n\n")

	labels := []string{"Away team", "Home team"}
	for i := range 2 {
		b.WriteString(labels[i] + ": " + m.names[i].View() + "\n")
		icon := fmt.Sprintf("%s %s", runner(m.icons[i]), m.icons[i])
		if m.focus == i*2+1 {
			icon = focusStyle.Render("◀ " + string(m.icons[i]) + " ▶")
		}
		b.WriteString("Runner:    " + icon + "\n\n")
	}
	b.WriteString(fmt.Sprintf("%d innings, %d questions per board\n\n", m.opts.Config.Innings, m.opts.Config.Questions))
	b.WriteString(helpStyle.Render("tab: next field  ←/→: change runner  enter: play ball  esc: quit"))
	return b.String()
}

func (m model) renderScoreboard() string {
	st := m.display
	var b strings.Builder
	arrow := "▲"
	if !st.Clock.TopHalf {
		arrow = "▼"
	}
	b.WriteString(titleStyle.Render("SCOREBOARD"))
	b.WriteString(fmt.Sprintf("  %s %d of %d\n", arrow, st.Clock.Inning, st.Clock.TotalInnings))

	header := fmt.Sprintf("%-13s", "")
	for i := 1; i <= st.Clock.TotalInnings; i++ {
		header += fmt.Sprintf("%3d", i)
	}
	b.WriteString(header + "    R   H\n")

	for _, team := range []models.Team{models.Away, models.Home} {
		marker := " "
		if !st.Clock.Finished && st.Clock.Batting() == team {
			marker = "⚾"
		}
		row := fmt.Sprintf("%s %-11s", marker, m.teams.Name(team))
		for i := 1; i <= st.Clock.TotalInnings; i++ {
			row += inningCell(st, team, i)
		}
		runs := fmt.Sprintf("%4d", st.Score.Runs(team))
		if m.flash != nil && m.flash.Team == team && m.playing == nil {
			runs = flashStyle.Render(runs)
		}
		row += runs + fmt.Sprintf("%4d", st.Score.Hits(team))
		b.WriteString(row + "\n")
	}

	outs := strings.Repeat("●", min(st.Half.Outs, engine.OutsPerSide)) + strings.Repeat("○", engine.OutsPerSide-min(st.Half.Outs, engine.OutsPerSide))
	b.WriteString("\nOuts " + outs)
	if st.Half.Strategy != models.StrategyUnset {
		b.WriteString("   Strategy " + string(st.Half.Strategy))
	}
	return b.String()
}

// inningCell renders team's runs in inning, or a dash when the team has not
// batted in it yet.
func inningCell(st engine.State, team models.Team, inning int) string {
	batted := inning < st.Clock.Inning || st.Clock.Finished ||
		(inning == st.Clock.Inning && (team == models.Away || !st.Clock.TopHalf))
	if !batted {
		return "  -"
	}
	runs := 0
	if inning <= len(st.Score.Innings) {
		line := st.Score.Innings[inning-1]
		runs = line.Away
		if team == models.Home {
			runs = line.Home
		}
	}
	return fmt.Sprintf("%3d", runs)
}

func (m model) renderDiamond() string {
	st := m.display
	icon := m.teams.Icon(st.Clock.Batting())
	base := func(occupied bool) string {
		if occupied {
			return runner(icon)
		}
		return "◇"
	}
	d := fmt.Sprintf("      %s\n    /   \\\n  %s       %s\n    \\   /\n      ⌂",
		base(st.Half.Bases.Second), base(st.Half.Bases.Third), base(st.Half.Bases.First))

	switch e := m.playing.(type) {
	case engine.HitRecorded:
		d += "\n\n" + flashStyle.Render(" "+m.opts.Catalog.Line("hit."+string(e.Effective))+" ")
	case engine.OutRecorded:
		d += "\n\n" + errorStyle.Render(fmt.Sprintf("OUT x%d", e.Added))
	}
	return d
}

func (m model) viewField() string {
	s := m.session
	if s.Phase() == engine.PhaseResolving {
		return panelStyle.Render(helpStyle.Render("The play is on..."))
	}
	if q, open := s.Current(); open {
		return m.renderCard(q)
	}
	if s.Phase() == engine.PhaseAwaitingStrategy {
		name := m.teams.Name(m.display.Clock.Batting())
		return panelStyle.Render(fmt.Sprintf("%s at bat. %s\n\n%s normal swing, one out on a miss\n%s power swing, one base more on a hit, two outs on a miss",
			name,
			m.opts.Catalog.Line("prompt.strategy"),
			focusStyle.Render("n"),
			focusStyle.Render("p"),
		))
	}
	return panelStyle.Render(m.renderGrid() + "\n\n" + m.opts.Catalog.Line("prompt.question") + " " + m.pick.View())
}

func (m model) renderGrid() string {
	const columns = 8
	page := m.session.Board().Page()
	var rows []string
	var row []string
	for i, q := range page {
		label := fmt.Sprintf(" %3d ", q.ID)
		if m.session.Board().IsAnswered(q.ID) {
			row = append(row, answeredStyle.Render(label))
		} else {
			color := tileColors[q.ID%len(tileColors)]
			row = append(row, lipgloss.NewStyle().Background(color).Foreground(lipgloss.Color("#1E1E1E")).Render(label))
		}
		if len(row) == columns || i == len(page)-1 {
			rows = append(rows, strings.Join(row, " "))
			row = nil
		}
	}
	board := m.session.Board()
	footer := helpStyle.Render(fmt.Sprintf("%d left on this board, %d used", board.Remaining(), board.Answered()))
	return strings.Join(rows, "\n") + "\n" + footer
}

func (m model) renderCard(q models.Question) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(fmt.Sprintf("#%d  %s", q.ID, m.opts.Catalog.Line("hit."+string(q.Type)))) + "\n\n")
	b.WriteString(q.Question + "\n\n")
	if m.revealed {
		b.WriteString(focusStyle.Render("Answer") + " " + q.Answer + "\n")
		if q.Reference != "" {
			b.WriteString(helpStyle.Render(q.Reference) + "\n")
		}
	} else {
		b.WriteString(helpStyle.Render("space: reveal answer") + "\n")
	}
	return cardStyle.Render(b.String())
}

func (m model) viewGameOver() string {
	result := m.display.Score.Result()
	var headline string
	if result.Tie {
		headline = m.opts.Catalog.Line("final.tie", m.display.Clock.TotalInnings)
	} else {
		hi, lo := result.WinnerScore()
		headline = m.opts.Catalog.Line("final.win", m.teams.Name(result.Winner), hi, lo)
	}
	body := titleStyle.Render("FINAL") + "\n\n" + headline
	if m.final != "" && m.final != headline {
		body += "\n\n" + m.final
	}
	return panelStyle.Render(body)
}

func (m model) renderQuestionList() string {
	var b strings.Builder
	for _, q := range m.session.Board().Questions() {
		status := "  "
		if m.session.Board().IsAnswered(q.ID) {
			status = "✓ "
		}
		b.WriteString(fmt.Sprintf("%s#%-3d [%s] %s\n", status, q.ID, q.Type, q.Question))
	}
	return b.String()
}

func (m model) help() string {
	switch m.state {
	case stateGameOver:
		return "r: new game  ctrl+r: reset  q: quit"
	}
	if _, open := m.session.Current(); open {
		if m.revealed {
			return "c: correct  x: incorrect  f: foul  esc: back to board"
		}
		return "space: reveal  esc: back to board"
	}
	switch m.session.Phase() {
	case engine.PhaseAwaitingStrategy:
		return "n: normal  p: power  l: question list  ctrl+r: reset  ctrl+c: quit"
	case engine.PhaseAwaitingAnswer:
		return "type a number, enter: open  l: question list  ctrl+r: reset  ctrl+c: quit"
	}
	return "ctrl+c: quit"
}
