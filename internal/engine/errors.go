package engine

import "errors"

// Code is a machine-readable error code.
type Code string

const (
	CodeUnknown Code = "UNKNOWN"

	// Plate appearance errors
	CodeNoStrategy              Code = "NO_STRATEGY_SELECTED"
	CodeStrategyAlreadySelected Code = "STRATEGY_ALREADY_SELECTED"
	CodeInvalidStrategy         Code = "INVALID_STRATEGY"
	CodeInvalidOutcome          Code = "INVALID_OUTCOME"
	CodeInvalidHitType          Code = "INVALID_HIT_TYPE"

	// Game lifecycle errors
	CodeInvalidInnings Code = "INVALID_INNINGS"
	CodeGameNotStarted Code = "GAME_NOT_STARTED"
	CodeGameFinished   Code = "GAME_FINISHED"

	// Session errors
	CodePlayInProgress      Code = "PLAY_IN_PROGRESS"
	CodeNoQuestionOpen      Code = "NO_QUESTION_OPEN"
	CodeQuestionAlreadyOpen Code = "QUESTION_ALREADY_OPEN"
	CodeQuestionUnavailable Code = "QUESTION_UNAVAILABLE"
)

// Error is a rejected operation. The state it was applied to is unchanged.
type Error struct {
	Code    Code
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return e.Message + ": " + e.Cause.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error by code.
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Code == t.Code
	}
	return false
}

func newError(code Code, message string) *Error {
	return &Error{Code: code, Message: message}
}

func wrapError(code Code, message string, cause error) *Error {
	return &Error{Code: code, Message: message, Cause: cause}
}

// Sentinels for errors.Is.
var (
	ErrNoStrategy              = newError(CodeNoStrategy, "choose a batting strategy first")
	ErrStrategyAlreadySelected = newError(CodeStrategyAlreadySelected, "a batting strategy is already selected")
	ErrGameFinished            = newError(CodeGameFinished, "the game is over")
	ErrGameNotStarted          = newError(CodeGameNotStarted, "the game has not started")
	ErrPlayInProgress          = newError(CodePlayInProgress, "the previous play is still in progress")
	ErrNoQuestionOpen          = newError(CodeNoQuestionOpen, "no question is open")
	ErrQuestionAlreadyOpen     = newError(CodeQuestionAlreadyOpen, "a question is already open")
)

// CodeOf extracts the code of an engine error, or CodeUnknown.
func CodeOf(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return CodeUnknown
}
