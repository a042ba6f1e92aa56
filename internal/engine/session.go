package engine

import (
	"fmt"

	"github.com/tatianab/homerun/internal/models"
	"github.com/tatianab/homerun/internal/questions"
)

// Session couples a Game with the question board and the open question.
//
// After a correct or incorrect answer the session is resolving until
// FinishPlay is called: the state has already moved on, but the UI is still
// showing the play, so no strategy or question can be picked in the meantime.
type Session struct {
	game      *Game
	board     *questions.Board
	current   *models.Question
	resolving bool
}

// NewSession starts a game of totalInnings innings played off board.
func NewSession(board *questions.Board, totalInnings int) (*Session, error) {
	s := &Session{}
	if err := s.Restart(board, totalInnings); err != nil {
		return nil, err
	}
	return s, nil
}

// Restart discards everything and starts a new game.
func (s *Session) Restart(board *questions.Board, totalInnings int) error {
	if board == nil {
		return newError(CodeGameNotStarted, "a game needs a question board")
	}
	game, err := NewGame(totalInnings)
	if err != nil {
		return err
	}
	*s = Session{game: game, board: board}
	return nil
}

func (s *Session) ID() string {
	return s.game.ID
}

// State returns a copy of the game state.
func (s *Session) State() State {
	return s.game.State()
}

func (s *Session) Board() *questions.Board {
	return s.board
}

// Current returns the open question, if any.
func (s *Session) Current() (models.Question, bool) {
	if s.current == nil {
		return models.Question{}, false
	}
	return *s.current, true
}

// Phase is the game's phase, or PhaseResolving during the play pause.
func (s *Session) Phase() Phase {
	if s.resolving {
		return PhaseResolving
	}
	return s.game.Phase()
}

// SelectStrategy picks the strategy for the next plate appearance.
func (s *Session) SelectStrategy(strategy models.Strategy) ([]Event, error) {
	if s.resolving {
		return nil, ErrPlayInProgress
	}
	return s.game.SelectStrategy(strategy)
}

// SelectQuestion opens a question. A strategy must be pending and the
// question must not have been answered.
func (s *Session) SelectQuestion(id int) (models.Question, error) {
	switch {
	case s.resolving:
		return models.Question{}, ErrPlayInProgress
	case s.game.Phase() == PhaseGameOver:
		return models.Question{}, ErrGameFinished
	case s.game.Phase() == PhaseAwaitingStrategy:
		return models.Question{}, ErrNoStrategy
	case s.current != nil:
		return models.Question{}, ErrQuestionAlreadyOpen
	case s.board.Exhausted():
		return models.Question{}, wrapError(CodeQuestionUnavailable, "cannot open a question", questions.ErrBoardExhausted)
	}

	q, err := s.board.Question(id)
	if err != nil {
		return models.Question{}, wrapError(CodeQuestionUnavailable, "cannot open a question", err)
	}
	s.current = &q
	return q, nil
}

// CloseQuestion puts the open question back without answering it.
func (s *Session) CloseQuestion() error {
	if s.current == nil {
		return ErrNoQuestionOpen
	}
	s.current = nil
	return nil
}

// Answer resolves the open question. A correct or incorrect answer uses the
// question up and starts the play pause; a foul closes the question and
// keeps the strategy.
func (s *Session) Answer(outcome models.Outcome) ([]Event, error) {
	if s.resolving {
		return nil, ErrPlayInProgress
	}
	if s.current == nil {
		return nil, ErrNoQuestionOpen
	}

	q := *s.current
	events, err := s.game.SubmitAnswer(outcome, q.Type)
	if err != nil {
		return nil, fmt.Errorf("question %d: %w", q.ID, err)
	}
	if Consumes(outcome) {
		s.board.MarkAnswered(q.ID)
		s.resolving = true
	}
	s.current = nil
	return events, nil
}

// FinishPlay ends the play pause.
func (s *Session) FinishPlay() {
	s.resolving = false
}
