package tui

import (
	"context"
	"fmt"
	"log"
	"strconv"
	"time"
	"unicode"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/tatianab/homerun/internal/commentary"
	"github.com/tatianab/homerun/internal/config"
	"github.com/tatianab/homerun/internal/engine"
	"github.com/tatianab/homerun/internal/models"
	"github.com/tatianab/homerun/internal/questions"
	"github.com/tatianab/homerun/internal/random"
)

type sessionState int

const (
	stateSetup sessionState = iota
	statePlaying
	stateQuestionList
	stateGameOver
	stateError
)

// Setup form focus order.
const (
	focusAwayName = iota
	focusAwayIcon
	focusHomeName
	focusHomeIcon
	focusCount
)

// Options wires the UI to its collaborators.
type Options struct {
	Config    *config.Config
	Bank      *models.Bank
	Catalog   *commentary.Catalog
	Announcer commentary.Announcer
}

type model struct {
	state    sessionState
	opts     Options
	session  *engine.Session
	teams    models.Teams
	names    [2]textinput.Model // away, home
	icons    [2]models.RunnerIcon
	focus    int
	pick     textinput.Model
	revealed bool
	display  engine.State // lags behind the session while a play is shown
	playing  engine.Event // the hit or out being shown during the pause
	flash    *engine.RunsScored
	viewport viewport.Model
	err      error
	gameLog  string
	final    string
	width    int
	height   int
}

func NewModel(opts Options) model {
	m := model{
		state: stateSetup,
		opts:  opts,
		icons: [2]models.RunnerIcon{models.IconBlue, models.IconRed},
	}
	for i, name := range []string{opts.Config.AwayName, opts.Config.HomeName} {
		ti := textinput.New()
		ti.Placeholder = name
		ti.SetValue(name)
		ti.CharLimit = models.MaxTeamNameLength
		ti.Width = 20
		m.names[i] = ti
	}
	m.names[0].Focus()

	pick := textinput.New()
	pick.Placeholder = "question #"
	pick.CharLimit = 4
	pick.Width = 10
	m.pick = pick

	m.viewport = viewport.New(60, 8)
	return m
}

func (m model) Init() tea.Cmd {
	return textinput.Blink
}

type playFinishedMsg struct {
	plays int
}

type commentaryMsg struct {
	text string
}

type errMsg struct {
	err error
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC:
			return m, tea.Quit
		case tea.KeyCtrlR:
			if m.state != stateSetup {
				log.Printf("tui: game reset by player")
				return m.backToSetup(), nil
			}
		}
		switch m.state {
		case stateSetup:
			return m.updateSetup(msg)
		case statePlaying:
			return m.updatePlaying(msg)
		case stateQuestionList:
			switch msg.String() {
			case "esc", "l", "q":
				m.state = statePlaying
				m.viewport.SetContent(m.gameLog)
				m.viewport.GotoBottom()
				return m, nil
			}
			var cmd tea.Cmd
			m.viewport, cmd = m.viewport.Update(msg)
			return m, cmd
		case stateGameOver:
			switch msg.String() {
			case "enter", "r":
				return m.backToSetup(), nil
			case "q", "esc":
				return m, tea.Quit
			}
		case stateError:
			if msg.Type == tea.KeyEsc {
				return m, tea.Quit
			}
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.viewport.Width = max(msg.Width-4, 20)
		m.viewport.Height = max(msg.Height-30, 5)
		if m.state == stateQuestionList {
			m.viewport.Height = max(msg.Height-6, 5)
		}

	case playFinishedMsg:
		if m.session == nil || msg.plays != m.session.State().Plays {
			return m, nil
		}
		m.session.FinishPlay()
		m.display = m.session.State()
		m.playing = nil
		if m.session.Phase() == engine.PhaseGameOver {
			m.state = stateGameOver
		}
		return m, nil

	case commentaryMsg:
		if msg.text == "" {
			return m, nil
		}
		if m.state == stateGameOver && m.final == "" {
			m.final = msg.text
		}
		m.appendLog(msg.text)
		return m, nil

	case errMsg:
		m.err = msg.err
		m.state = stateError
		return m, nil
	}

	if m.state == stateSetup {
		var cmd tea.Cmd
		i := m.focusedName()
		if i >= 0 {
			m.names[i], cmd = m.names[i].Update(msg)
		}
		return m, cmd
	}
	return m, nil
}

func (m model) focusedName() int {
	switch m.focus {
	case focusAwayName:
		return 0
	case focusHomeName:
		return 1
	}
	return -1
}

func (m model) updateSetup(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		return m, tea.Quit
	case tea.KeyTab, tea.KeyDown:
		return m.setFocus((m.focus + 1) % focusCount), nil
	case tea.KeyShiftTab, tea.KeyUp:
		return m.setFocus((m.focus + focusCount - 1) % focusCount), nil
	case tea.KeyLeft, tea.KeyRight:
		if m.focus == focusAwayIcon || m.focus == focusHomeIcon {
			step := 1
			if msg.Type == tea.KeyLeft {
				step = -1
			}
			m.cycleIcon(m.focus/2, step)
			return m, nil
		}
	case tea.KeyEnter:
		return m.startGame()
	}

	var cmd tea.Cmd
	if i := m.focusedName(); i >= 0 {
		m.names[i], cmd = m.names[i].Update(msg)
	}
	return m, cmd
}

func (m model) setFocus(focus int) model {
	m.focus = focus
	for i := range m.names {
		m.names[i].Blur()
	}
	if i := m.focusedName(); i >= 0 {
		m.names[i].Focus()
	}
	return m
}

// cycleIcon moves team's icon by step, skipping the icon the other team uses.
func (m *model) cycleIcon(team, step int) {
	other := m.icons[1-team]
	n := len(models.RunnerIcons)
	idx := 0
	for i, icon := range models.RunnerIcons {
		if icon == m.icons[team] {
			idx = i
		}
	}
	for range n {
		idx = (idx + step + n) % n
		if models.RunnerIcons[idx] != other {
			m.icons[team] = models.RunnerIcons[idx]
			return
		}
	}
}

func (m model) startGame() (tea.Model, tea.Cmd) {
	cfg := m.opts.Config
	rng, seed, err := random.New(cfg.Seed)
	if err != nil {
		return m, func() tea.Msg { return errMsg{err} }
	}
	board, err := questions.Deal(m.opts.Bank, cfg.Questions, rng)
	if err != nil {
		return m, func() tea.Msg { return errMsg{err} }
	}
	session, err := engine.NewSession(board, cfg.Innings)
	if err != nil {
		return m, func() tea.Msg { return errMsg{err} }
	}

	m.teams = models.Teams{
		AwayName: m.names[0].Value(),
		HomeName: m.names[1].Value(),
		AwayIcon: m.icons[0],
		HomeIcon: m.icons[1],
	}.Normalize(models.Teams{
		AwayName: cfg.AwayName,
		HomeName: cfg.HomeName,
		AwayIcon: models.IconBlue,
		HomeIcon: models.IconRed,
	})
	log.Printf("tui: game %s, %s vs %s, seed %d, %d questions dealt", session.ID(), m.teams.AwayName, m.teams.HomeName, seed, len(board.Questions()))

	m.session = session
	m.display = session.State()
	m.state = statePlaying
	m.revealed = false
	m.playing = nil
	m.flash = nil
	m.final = ""
	m.gameLog = ""
	m.pick.Reset()
	m.pick.Focus()
	m.appendLog(m.opts.Catalog.Opening(m.teams))
	return m, nil
}

func (m model) backToSetup() model {
	m.state = stateSetup
	m.session = nil
	m.gameLog = ""
	m.final = ""
	m.icons = [2]models.RunnerIcon{models.IconBlue, models.IconRed}
	m.viewport.SetContent("")
	return m.setFocus(focusAwayName)
}

func (m model) updatePlaying(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	s := m.session
	if s.Phase() == engine.PhaseResolving {
		return m, nil
	}

	if q, open := s.Current(); open {
		return m.updateQuestion(msg, q)
	}

	switch s.Phase() {
	case engine.PhaseAwaitingStrategy:
		switch msg.String() {
		case "n":
			return m.selectStrategy(models.StrategyNormal)
		case "p":
			return m.selectStrategy(models.StrategyPower)
		case "l":
			return m.showQuestionList(), nil
		}

	case engine.PhaseAwaitingAnswer:
		switch {
		case msg.Type == tea.KeyEnter:
			return m.selectQuestion()
		case msg.String() == "l":
			return m.showQuestionList(), nil
		case msg.Type == tea.KeyRunes && !isDigits(msg.Runes):
			return m, nil
		}
		var cmd tea.Cmd
		m.pick, cmd = m.pick.Update(msg)
		return m, cmd
	}
	return m, nil
}

func isDigits(rs []rune) bool {
	for _, r := range rs {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

func (m model) selectStrategy(strategy models.Strategy) (tea.Model, tea.Cmd) {
	events, err := m.session.SelectStrategy(strategy)
	if err != nil {
		m.appendLog(err.Error())
		return m, nil
	}
	m.flash = nil
	m.display = m.session.State()
	m.pick.Reset()
	return m, m.announce(events)
}

func (m model) selectQuestion() (tea.Model, tea.Cmd) {
	id, err := strconv.Atoi(m.pick.Value())
	m.pick.Reset()
	if err != nil {
		m.appendLog(m.opts.Catalog.Line("prompt.question"))
		return m, nil
	}
	if _, err := m.session.SelectQuestion(id); err != nil {
		m.appendLog(err.Error())
		return m, nil
	}
	m.revealed = false
	return m, nil
}

func (m model) updateQuestion(msg tea.KeyMsg, q models.Question) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyEsc {
		if err := m.session.CloseQuestion(); err != nil {
			m.appendLog(err.Error())
		}
		return m, nil
	}
	if !m.revealed {
		if msg.Type == tea.KeySpace || msg.Type == tea.KeyEnter {
			m.revealed = true
		}
		return m, nil
	}

	var outcome models.Outcome
	switch msg.String() {
	case "c":
		outcome = models.Correct
	case "f":
		outcome = models.Foul
	case "x":
		outcome = models.Incorrect
	default:
		return m, nil
	}
	return m.answer(outcome, q)
}

func (m model) answer(outcome models.Outcome, q models.Question) (tea.Model, tea.Cmd) {
	events, err := m.session.Answer(outcome)
	if err != nil {
		m.appendLog(err.Error())
		return m, nil
	}
	m.revealed = false

	cmds := []tea.Cmd{m.announce(events)}
	if m.session.Phase() != engine.PhaseResolving {
		m.display = m.session.State()
		return m, tea.Batch(cmds...)
	}

	delay := m.opts.Config.OutDelay
	for _, e := range events {
		switch e := e.(type) {
		case engine.HitRecorded:
			m.playing = e
			delay = m.opts.Config.HitDelay
		case engine.OutRecorded:
			m.playing = e
		case engine.RunsScored:
			m.flash = &e
		}
	}
	log.Printf("tui: question %d (%s) answered %s", q.ID, q.Type, outcome)

	plays := m.session.State().Plays
	cmds = append(cmds, tea.Tick(delay, func(time.Time) tea.Msg {
		return playFinishedMsg{plays: plays}
	}))
	return m, tea.Batch(cmds...)
}

func (m model) showQuestionList() model {
	m.state = stateQuestionList
	m.viewport.SetContent(m.renderQuestionList())
	m.viewport.GotoTop()
	return m
}

func (m model) announce(events []engine.Event) tea.Cmd {
	if len(events) == 0 {
		return nil
	}
	play := commentary.Play{
		Events: events,
		State:  m.session.State(),
		Teams:  m.teams,
	}
	announcer := m.opts.Announcer
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		text, err := announcer.Announce(ctx, play)
		if err != nil {
			log.Printf("tui: commentary failed: %v", err)
			return nil
		}
		return commentaryMsg{text}
	}
}

func (m *model) appendLog(text string) {
	if m.gameLog != "" {
		m.gameLog += "\n"
	}
	m.gameLog += text
	if m.state != stateQuestionList {
		m.viewport.SetContent(commentaryStyle.Width(m.viewport.Width).Render(m.gameLog))
		m.viewport.GotoBottom()
	}
}

// Run starts the terminal UI and blocks until the player quits.
func Run(opts Options) error {
	if opts.Announcer == nil {
		opts.Announcer = opts.Catalog
	}
	p := tea.NewProgram(NewModel(opts), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// Start runs the game with configuration from the environment and the
// catalog announcer.
func Start() error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}
	bank, err := questions.Load(cfg.BankPath)
	if err != nil {
		return fmt.Errorf("load question bank: %w", err)
	}
	catalog, err := commentary.NewCatalog(cfg.Locale)
	if err != nil {
		return err
	}
	return Run(Options{Config: cfg, Bank: bank, Catalog: catalog})
}
