package engine

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tatianab/homerun/internal/models"
	"github.com/tatianab/homerun/internal/questions"
)

func newTestSession(t *testing.T, n int) *Session {
	t.Helper()
	bank := &models.Bank{Title: "test"}
	for i := 0; i < n; i++ {
		bank.Questions = append(bank.Questions, models.Question{Type: models.Single, Question: "q", Answer: "a"})
	}
	board, err := questions.Deal(bank, n, rand.New(rand.NewPCG(1, 1)))
	require.NoError(t, err)
	s, err := NewSession(board, 3)
	require.NoError(t, err)
	return s
}

func TestSessionQuestionNeedsStrategy(t *testing.T) {
	s := newTestSession(t, 4)

	_, err := s.SelectQuestion(1)
	assert.ErrorIs(t, err, ErrNoStrategy)
	_, open := s.Current()
	assert.False(t, open)

	_, err = s.SelectStrategy(models.StrategyNormal)
	require.NoError(t, err)
	q, err := s.SelectQuestion(1)
	require.NoError(t, err)
	assert.Equal(t, 1, q.ID)

	_, err = s.SelectQuestion(2)
	assert.ErrorIs(t, err, ErrQuestionAlreadyOpen)
}

func TestSessionCorrectAnswerUsesQuestionAndPauses(t *testing.T) {
	s := newTestSession(t, 4)
	_, err := s.SelectStrategy(models.StrategyNormal)
	require.NoError(t, err)
	_, err = s.SelectQuestion(3)
	require.NoError(t, err)

	events, err := s.Answer(models.Correct)
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.True(t, s.Board().IsAnswered(3))
	assert.Equal(t, PhaseResolving, s.Phase())

	_, err = s.SelectStrategy(models.StrategyPower)
	assert.ErrorIs(t, err, ErrPlayInProgress)
	_, err = s.SelectQuestion(1)
	assert.ErrorIs(t, err, ErrPlayInProgress)

	s.FinishPlay()
	assert.Equal(t, PhaseAwaitingStrategy, s.Phase())
	_, err = s.SelectStrategy(models.StrategyPower)
	require.NoError(t, err)

	_, err = s.SelectQuestion(3)
	assert.Equal(t, CodeQuestionUnavailable, CodeOf(err))
	assert.ErrorIs(t, err, questions.ErrAlreadyAnswered)
}

func TestSessionIncorrectAnswerUsesQuestion(t *testing.T) {
	s := newTestSession(t, 4)
	_, err := s.SelectStrategy(models.StrategyPower)
	require.NoError(t, err)
	_, err = s.SelectQuestion(2)
	require.NoError(t, err)

	_, err = s.Answer(models.Incorrect)
	require.NoError(t, err)
	assert.True(t, s.Board().IsAnswered(2))
	assert.Equal(t, 2, s.State().Half.Outs)
}

func TestSessionFoulKeepsQuestionAndStrategy(t *testing.T) {
	s := newTestSession(t, 4)
	_, err := s.SelectStrategy(models.StrategyPower)
	require.NoError(t, err)
	_, err = s.SelectQuestion(2)
	require.NoError(t, err)

	events, err := s.Answer(models.Foul)
	require.NoError(t, err)
	assert.Equal(t, []Event{FoulBall{Team: models.Away}}, events)
	assert.False(t, s.Board().IsAnswered(2))
	assert.Equal(t, PhaseAwaitingAnswer, s.Phase())
	assert.Equal(t, models.StrategyPower, s.State().Half.Strategy)
	_, open := s.Current()
	assert.False(t, open)

	_, err = s.SelectQuestion(2)
	assert.NoError(t, err, "a fouled-off question can be picked again")
}

func TestSessionCloseQuestion(t *testing.T) {
	s := newTestSession(t, 2)
	assert.ErrorIs(t, s.CloseQuestion(), ErrNoQuestionOpen)
	_, err := s.Answer(models.Correct)
	assert.ErrorIs(t, err, ErrNoQuestionOpen)

	_, err = s.SelectStrategy(models.StrategyNormal)
	require.NoError(t, err)
	_, err = s.SelectQuestion(1)
	require.NoError(t, err)
	require.NoError(t, s.CloseQuestion())

	assert.False(t, s.Board().IsAnswered(1))
	assert.Equal(t, PhaseAwaitingAnswer, s.Phase())
	assert.Equal(t, 0, s.State().Plays)
}

func TestSessionBoardExhausted(t *testing.T) {
	s := newTestSession(t, 1)
	_, err := s.SelectStrategy(models.StrategyNormal)
	require.NoError(t, err)
	_, err = s.SelectQuestion(1)
	require.NoError(t, err)
	_, err = s.Answer(models.Incorrect)
	require.NoError(t, err)
	s.FinishPlay()

	_, err = s.SelectStrategy(models.StrategyNormal)
	require.NoError(t, err)
	_, err = s.SelectQuestion(1)
	assert.ErrorIs(t, err, questions.ErrBoardExhausted)
}

func TestSessionRejectsAfterGameOver(t *testing.T) {
	s := newTestSession(t, 20)
	id := 1
	for s.Phase() != PhaseGameOver {
		_, err := s.SelectStrategy(models.StrategyPower)
		require.NoError(t, err)
		_, err = s.SelectQuestion(id)
		require.NoError(t, err)
		_, err = s.Answer(models.Incorrect)
		require.NoError(t, err)
		s.FinishPlay()
		id++
	}

	_, err := s.SelectStrategy(models.StrategyNormal)
	assert.ErrorIs(t, err, ErrGameFinished)
	_, err = s.SelectQuestion(id)
	assert.ErrorIs(t, err, ErrGameFinished)
	assert.Equal(t, 12, s.Board().Answered(), "two power misses per half, six halves")
}

func TestNewSessionNeedsBoard(t *testing.T) {
	_, err := NewSession(nil, 3)
	assert.Error(t, err)
}
