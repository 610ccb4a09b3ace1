package dictionary

import (
	"bufio"
	"context"
	_ "embed"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"

	"github.com/mcoot/boggle-go/internal/model"
	"github.com/mcoot/boggle-go/internal/storage"
)

// MinWordLength is the shortest guess that can count as a word
const MinWordLength = 3

//go:embed words.txt
var defaultWords string

// Service provides dictionary membership checks
type Service struct {
	storage storage.Storage
	logger  *slog.Logger

	mu     sync.RWMutex
	words  map[string]struct{}
	loaded bool
}

// New creates a new DictionaryService
func New(storage storage.Storage, logger *slog.Logger) *Service {
	return &Service{
		storage: storage,
		logger:  logger,
		words:   make(map[string]struct{}),
	}
}

// LoadFromStorage loads dictionary words from storage
func (s *Service) LoadFromStorage(ctx context.Context) error {
	words, err := s.storage.GetDictionaryWords(ctx)
	if err != nil {
		return err
	}
	s.loadWords(words)
	s.logger.Info("dictionary loaded from storage", slog.Int("words", len(words)))
	return nil
}

// LoadFromFile loads dictionary words from a file (one word per line)
// and saves them to storage
func (s *Service) LoadFromFile(ctx context.Context, path string) error {
	file, err := os.Open(path)
	if err != nil {
		return err
	}
	defer func() { _ = file.Close() }()

	words, err := readWords(file)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}

	if err := s.storage.SaveDictionaryWords(ctx, words); err != nil {
		return err
	}

	s.loadWords(words)
	s.logger.Info("dictionary loaded from file", slog.String("path", path), slog.Int("words", len(words)))
	return nil
}

// LoadFromReader loads dictionary words from r (one word per line)
func (s *Service) LoadFromReader(r io.Reader) error {
	words, err := readWords(r)
	if err != nil {
		return err
	}
	s.loadWords(words)
	return nil
}

// LoadDefault loads the word list compiled into the binary.
// It covers common words only; deployments should point DICTIONARY_PATH at a full list.
func (s *Service) LoadDefault() error {
	if err := s.LoadFromReader(strings.NewReader(defaultWords)); err != nil {
		return err
	}
	s.logger.Warn("dictionary loaded from embedded list; set DICTIONARY_PATH to a full word list",
		slog.Int("words", s.WordCount()))
	return nil
}

// LoadWords directly loads a slice of words (useful for testing)
func (s *Service) LoadWords(words []string) error {
	s.loadWords(words)
	return nil
}

func (s *Service) loadWords(words []string) {
	set := make(map[string]struct{}, len(words))
	for _, word := range words {
		// Store uppercase to match board letters
		set[strings.ToUpper(word)] = struct{}{}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.words = set
	s.loaded = true
}

func readWords(r io.Reader) ([]string, error) {
	var words []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		word := strings.TrimSpace(scanner.Text())
		if word != "" && !strings.HasPrefix(word, "#") {
			words = append(words, word)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return words, nil
}

// IsValidWord checks if a word exists in the dictionary.
// Words must be at least MinWordLength letters; an unloaded
// dictionary accepts nothing.
func (s *Service) IsValidWord(word string) bool {
	word = strings.ToUpper(strings.TrimSpace(word))
	if len([]rune(word)) < MinWordLength {
		return false
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.loaded {
		return false
	}

	_, ok := s.words[word]
	return ok
}

// IsLoaded returns whether the dictionary has been loaded
func (s *Service) IsLoaded() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loaded
}

// WordCount returns the number of words in the dictionary
func (s *Service) WordCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.words)
}

// ServiceInterface is what the validator needs from a dictionary
type ServiceInterface interface {
	IsValidWord(word string) bool
	IsLoaded() bool
	WordCount() int
}

var _ ServiceInterface = (*Service)(nil)

// ErrDictionaryNotLoaded is returned by LoadFromStorage when nothing was saved
var ErrDictionaryNotLoaded = model.ErrDictionaryNotLoaded
