package factory

import (
	"time"

	"github.com/mcoot/boggle-go/internal/dependencies/mocks"
	"github.com/mcoot/boggle-go/internal/services/auth"
	"github.com/mcoot/boggle-go/internal/storage/memory"
	"github.com/mcoot/boggle-go/internal/testutil"
)

// SampleBoard is a fixed board for tests: FIT traces on it, HAT does not
var SampleBoard = []string{
	"JRDMW",
	"QKTIT",
	"FMYUF",
	"HDZJP",
	"JESHI",
}

// TestApp extends App with test-specific helpers
type TestApp struct {
	*App

	// Mocks for test control
	MockClock  *mocks.MockClock
	MockRandom *mocks.MockRandom
}

// NewTestApp creates an App configured for testing with mocked dependencies
func NewTestApp() *TestApp {
	store := memory.New()
	mockClock := mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	mockRandom := mocks.NewMockRandom()

	app := newWithDependencies(store, mockClock, mockRandom, auth.New(), testutil.NopLogger(), 5)

	return &TestApp{
		App:        app,
		MockClock:  mockClock,
		MockRandom: mockRandom,
	}
}

// QueueSampleBoard makes the next generated board SampleBoard
func (t *TestApp) QueueSampleBoard() {
	t.MockRandom.QueueBoard(SampleBoard...)
}

// LoadTestDictionary loads a small dictionary for testing
func (t *TestApp) LoadTestDictionary() error {
	return t.DictionaryService.LoadWords([]string{
		// Found on SampleBoard
		"fit", "tit", "ship", "hip", "dim",
		// Not on SampleBoard
		"hat", "cat", "dog", "apple", "zebra",
		// Too short to count
		"my", "it",
	})
}
