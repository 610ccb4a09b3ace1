package validation

import (
	"log/slog"
	"strings"

	"github.com/mcoot/boggle-go/internal/model"
	"github.com/mcoot/boggle-go/internal/services/board"
	"github.com/mcoot/boggle-go/internal/services/dictionary"
)

// Outcome is the result of checking a guess, with the path when one was found
type Outcome struct {
	Word   string // Normalized guess: trimmed and uppercased
	Result model.ValidationResult
	Path   []model.Position // nil unless Result is ResultOK
}

// Service checks guesses against a board and the dictionary
type Service struct {
	dictionary dictionary.ServiceInterface
	logger     *slog.Logger
}

// New creates a new ValidationService
func New(dictionary dictionary.ServiceInterface, logger *slog.Logger) *Service {
	return &Service{
		dictionary: dictionary,
		logger:     logger,
	}
}

// Check classifies guess as ok, not-on-board or not-word
func (s *Service) Check(b *model.Board, guess string) model.ValidationResult {
	return s.Evaluate(b, guess).Result
}

// Evaluate classifies guess and reports the path it traces on the board.
// Dictionary membership is checked first, so a string that is both absent
// from the dictionary and the board is not-word.
func (s *Service) Evaluate(b *model.Board, guess string) Outcome {
	word := Normalize(guess)
	outcome := Outcome{Word: word}

	if !s.dictionary.IsValidWord(word) {
		outcome.Result = model.ResultNotWord
		return outcome
	}

	path := board.FindPath(b, word)
	if path == nil {
		outcome.Result = model.ResultNotOnBoard
		return outcome
	}

	outcome.Result = model.ResultOK
	outcome.Path = path
	s.logger.Debug("word found on board", slog.String("word", word), slog.Int("length", len(path)))
	return outcome
}

// Normalize trims surrounding whitespace and uppercases a guess
func Normalize(guess string) string {
	return strings.ToUpper(strings.TrimSpace(guess))
}

// Interface for dependency injection
type ServiceInterface interface {
	Check(b *model.Board, guess string) model.ValidationResult
	Evaluate(b *model.Board, guess string) Outcome
}

var _ ServiceInterface = (*Service)(nil)
