package questions

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"slices"

	"github.com/tatianab/homerun/internal/models"
)

var (
	ErrUnknownQuestion = errors.New("no such question on the board")
	ErrAlreadyAnswered = errors.New("question already answered")
	ErrBoardExhausted  = errors.New("every question in the bank has been used")
)

// Board is the grid of questions dealt for one game together with the set of
// questions already answered. Ids are assigned in deal order starting at 1
// and are never reused; once answered, a question stays answered.
type Board struct {
	pageSize  int
	questions []models.Question
	answered  map[int]bool
	deck      []models.Question
}

// Deal shuffles the bank with rng and deals the first page of pageSize
// questions. The rest stay in the deck for later pages.
func Deal(bank *models.Bank, pageSize int, rng *rand.Rand) (*Board, error) {
	if pageSize < 1 {
		return nil, fmt.Errorf("page size must be positive, got %d", pageSize)
	}
	if bank == nil || len(bank.Questions) == 0 {
		return nil, fmt.Errorf("cannot deal from an empty bank")
	}

	deck := slices.Clone(bank.Questions)
	rng.Shuffle(len(deck), func(i, j int) {
		deck[i], deck[j] = deck[j], deck[i]
	})

	b := &Board{
		pageSize: pageSize,
		answered: make(map[int]bool),
		deck:     deck,
	}
	b.dealPage()
	return b, nil
}

func (b *Board) dealPage() bool {
	n := min(b.pageSize, len(b.deck))
	if n == 0 {
		return false
	}
	for _, q := range b.deck[:n] {
		q.ID = len(b.questions) + 1
		b.questions = append(b.questions, q)
	}
	b.deck = b.deck[n:]
	return true
}

// Questions returns every dealt question, answered or not, in id order.
func (b *Board) Questions() []models.Question {
	return slices.Clone(b.questions)
}

// Page returns the questions of the page currently in play.
func (b *Board) Page() []models.Question {
	start := (len(b.questions) - 1) / b.pageSize * b.pageSize
	return slices.Clone(b.questions[start:])
}

// Question looks up a dealt question that is still available.
func (b *Board) Question(id int) (models.Question, error) {
	if id < 1 || id > len(b.questions) {
		return models.Question{}, fmt.Errorf("question %d: %w", id, ErrUnknownQuestion)
	}
	if b.answered[id] {
		return models.Question{}, fmt.Errorf("question %d: %w", id, ErrAlreadyAnswered)
	}
	return b.questions[id-1], nil
}

// IsAnswered reports whether id has been used.
func (b *Board) IsAnswered(id int) bool {
	return b.answered[id]
}

// MarkAnswered takes id off the board for the rest of the game. When that
// empties the board a new page is dealt from the deck.
func (b *Board) MarkAnswered(id int) {
	if id < 1 || id > len(b.questions) {
		return
	}
	b.answered[id] = true
	if b.Remaining() == 0 {
		b.dealPage()
	}
}

// Remaining returns how many dealt questions are still available.
func (b *Board) Remaining() int {
	return len(b.questions) - len(b.answered)
}

// Exhausted reports whether nothing is left to ask.
func (b *Board) Exhausted() bool {
	return b.Remaining() == 0 && len(b.deck) == 0
}

// Answered returns the number of questions used so far.
func (b *Board) Answered() int {
	return len(b.answered)
}
