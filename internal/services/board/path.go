package board

import (
	"unicode"

	"github.com/mcoot/boggle-go/internal/model"
)

// FindPath searches board for a path spelling word.
// The first path found is returned; the search starts from every cell
// holding the first letter, in row-major order.
func FindPath(board *model.Board, word string) []model.Position {
	letters := []rune(word)
	if board == nil || len(letters) == 0 {
		return nil
	}
	for i, l := range letters {
		letters[i] = unicode.ToUpper(l)
	}

	visited := make(map[model.Position]bool, len(letters))
	path := make([]model.Position, 0, len(letters))

	for r := 0; r < board.Size; r++ {
		for c := range board.Cells[r] {
			start := model.Position{Row: r, Col: c}
			if found := search(board, letters, start, visited, path); found != nil {
				return found
			}
		}
	}
	return nil
}

// search extends path by pos if it matches the next letter, recursing on its neighbours
func search(board *model.Board, letters []rune, pos model.Position, visited map[model.Position]bool, path []model.Position) []model.Position {
	if visited[pos] || unicode.ToUpper(board.Get(pos)) != letters[len(path)] {
		return nil
	}

	path = append(path, pos)
	if len(path) == len(letters) {
		result := make([]model.Position, len(path))
		copy(result, path)
		return result
	}

	visited[pos] = true
	defer delete(visited, pos)

	for _, next := range board.Neighbors(pos) {
		if found := search(board, letters, next, visited, path); found != nil {
			return found
		}
	}
	return nil
}

// Contains reports whether word can be traced on board
func Contains(board *model.Board, word string) bool {
	return FindPath(board, word) != nil
}
