package board

import (
	"log/slog"

	"github.com/mcoot/boggle-go/internal/dependencies/random"
	"github.com/mcoot/boggle-go/internal/model"
)

// DefaultSize is the board dimension used when none is configured
const DefaultSize = 5

// Service generates boards and searches them for words
type Service struct {
	random random.Random
	logger *slog.Logger
}

// New creates a new BoardService
func New(random random.Random, logger *slog.Logger) *Service {
	return &Service{
		random: random,
		logger: logger,
	}
}

// Generate builds a size x size board, each cell drawn uniformly from A-Z.
// Cells are drawn left to right, top to bottom. A size of 0 yields an empty board.
func (s *Service) Generate(size int) (*model.Board, error) {
	if size < 0 {
		return nil, model.ErrInvalidBoardSize
	}

	rows := make([][]rune, size)
	for r := range rows {
		rows[r] = make([]rune, size)
		for c := range rows[r] {
			rows[r][c] = random.Letter(s.random)
		}
	}

	s.logger.Debug("board generated", slog.Int("size", size))
	return model.NewBoard(rows), nil
}

// FindPath returns the cells spelling word on the board, or nil if there is no path.
// Letters are matched case-insensitively. Adjacent includes diagonals, and
// a cell may appear at most once in a path.
func (s *Service) FindPath(board *model.Board, word string) []model.Position {
	return FindPath(board, word)
}

// Interface for dependency injection
type ServiceInterface interface {
	Generate(size int) (*model.Board, error)
	FindPath(board *model.Board, word string) []model.Position
}

var _ ServiceInterface = (*Service)(nil)
