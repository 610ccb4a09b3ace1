package model

// Position identifies a cell on the board
type Position struct {
	Row int `json:"row"` // 0-indexed from top
	Col int `json:"col"` // 0-indexed from left
}

// Board is the square letter grid for one game
type Board struct {
	Size  int      // Grid dimension (e.g., 5 for 5x5)
	Cells [][]rune // Row-major: Cells[row][col], always an uppercase A-Z letter
}

// NewBoard creates a board from rows of letters.
// The board is square: Size is the number of rows.
func NewBoard(rows [][]rune) *Board {
	cells := make([][]rune, len(rows))
	for i, row := range rows {
		cells[i] = make([]rune, len(row))
		copy(cells[i], row)
	}
	return &Board{
		Size:  len(rows),
		Cells: cells,
	}
}

// BoardFromStrings builds a board from one string per row, e.g. "JRDMW"
func BoardFromStrings(rows ...string) *Board {
	runes := make([][]rune, len(rows))
	for i, row := range rows {
		runes[i] = []rune(row)
	}
	return NewBoard(runes)
}

// Get returns the letter at the given position, or 0 if out of bounds
func (b *Board) Get(pos Position) rune {
	if !b.IsValidPosition(pos) {
		return 0
	}
	return b.Cells[pos.Row][pos.Col]
}

// IsValidPosition returns true if the position is within bounds
func (b *Board) IsValidPosition(pos Position) bool {
	return pos.Row >= 0 && pos.Row < b.Size && pos.Col >= 0 && pos.Col < len(b.Cells[pos.Row])
}

// Neighbors returns the in-bounds cells adjacent to pos, diagonals included
func (b *Board) Neighbors(pos Position) []Position {
	result := make([]Position, 0, 8)
	for dr := -1; dr <= 1; dr++ {
		for dc := -1; dc <= 1; dc++ {
			if dr == 0 && dc == 0 {
				continue
			}
			next := Position{Row: pos.Row + dr, Col: pos.Col + dc}
			if b.IsValidPosition(next) {
				result = append(result, next)
			}
		}
	}
	return result
}

// Rows returns the board as rows of single-letter strings, the shape
// the page template and JSON responses use
func (b *Board) Rows() [][]string {
	rows := make([][]string, b.Size)
	for r := range b.Cells {
		rows[r] = make([]string, len(b.Cells[r]))
		for c, letter := range b.Cells[r] {
			rows[r][c] = string(letter)
		}
	}
	return rows
}

// BoardFromRows is the inverse of Rows
func BoardFromRows(rows [][]string) *Board {
	runes := make([][]rune, len(rows))
	for r, row := range rows {
		runes[r] = make([]rune, len(row))
		for c, cell := range row {
			letter := []rune(cell)
			if len(letter) > 0 {
				runes[r][c] = letter[0]
			}
		}
	}
	return NewBoard(runes)
}
