package mocks

import (
	"strings"
	"sync"

	"github.com/mcoot/boggle-go/internal/dependencies/random"
)

// MockRandom replays queued values so tests can lay out a known board
type MockRandom struct {
	mu sync.Mutex

	// IntnResults is a queue of results to return from Intn
	IntnResults []int
	intnIndex   int
}

var _ random.Random = (*MockRandom)(nil)

// NewMockRandom creates a new MockRandom
func NewMockRandom() *MockRandom {
	return &MockRandom{}
}

// Intn returns the next queued result, or 0 if none remaining.
// Queued values are reduced modulo n so they always stay in range.
func (r *MockRandom) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.intnIndex >= len(r.IntnResults) || n <= 0 {
		return 0
	}
	result := r.IntnResults[r.intnIndex] % n
	r.intnIndex++
	return result
}

// QueueIntn adds values to the Intn result queue
func (r *MockRandom) QueueIntn(values ...int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.IntnResults = append(r.IntnResults, values...)
}

// QueueBoard queues the draws that make the generator produce the given rows.
// Rows are read left to right, top to bottom, matching generation order.
func (r *MockRandom) QueueBoard(rows ...string) {
	for _, row := range rows {
		for _, letter := range strings.ToUpper(row) {
			r.QueueIntn(strings.IndexRune(random.Alphabet, letter))
		}
	}
}

// Reset clears all queued results
func (r *MockRandom) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.IntnResults = nil
	r.intnIndex = 0
}
