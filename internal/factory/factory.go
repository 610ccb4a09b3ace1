package factory

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/mcoot/boggle-go/internal/config"
	"github.com/mcoot/boggle-go/internal/dependencies/clock"
	"github.com/mcoot/boggle-go/internal/dependencies/random"
	"github.com/mcoot/boggle-go/internal/services/auth"
	"github.com/mcoot/boggle-go/internal/services/board"
	"github.com/mcoot/boggle-go/internal/services/dictionary"
	"github.com/mcoot/boggle-go/internal/services/session"
	"github.com/mcoot/boggle-go/internal/services/validation"
	"github.com/mcoot/boggle-go/internal/storage"
	"github.com/mcoot/boggle-go/internal/storage/memory"
	redisstorage "github.com/mcoot/boggle-go/internal/storage/redis"
	sqlitestorage "github.com/mcoot/boggle-go/internal/storage/sqlite"
)

// Storage type constants
const (
	StorageTypeMemory = config.StorageMemory
	StorageTypeRedis  = config.StorageRedis
	StorageTypeSQLite = config.StorageSQLite
)

// App contains all wired application components
type App struct {
	// Storage
	Storage storage.Storage

	// External dependencies
	Clock  clock.Clock
	Random random.Random

	// Services
	AuthService       *auth.Service
	DictionaryService *dictionary.Service
	BoardService      *board.Service
	ValidationService *validation.Service
	SessionController *session.Controller

	dictionaryPath string
	logger         *slog.Logger
}

// Config holds configuration for the application factory
type Config struct {
	// DictionaryPath is the path to a word list file (optional)
	// If empty, LoadDictionary falls back to storage, then the embedded list
	DictionaryPath string
	// BoardSize is the dimension of generated boards (optional)
	// If zero, defaults to board.DefaultSize
	BoardSize int
	// Logger is the application logger (optional)
	// If nil, a no-op logger is used
	Logger *slog.Logger
	// StorageType selects the storage backend ("memory", "redis" or "sqlite")
	// If empty, defaults to "memory"
	StorageType string
	// RedisConfig holds Redis connection settings (required if StorageType is "redis")
	RedisConfig *redisstorage.Config
	// SQLitePath is the database file (required if StorageType is "sqlite")
	SQLitePath string
}

// ConfigFrom builds a factory Config from the server configuration
func ConfigFrom(cfg *config.Config, logger *slog.Logger) Config {
	fc := Config{
		DictionaryPath: cfg.Game.DictionaryPath,
		BoardSize:      cfg.Game.BoardSize,
		Logger:         logger,
		StorageType:    cfg.Storage.Type,
		SQLitePath:     cfg.Storage.SQLitePath,
	}
	if cfg.Storage.Type == config.StorageRedis {
		redisCfg := redisstorage.DefaultConfig()
		redisCfg.URL = cfg.Storage.RedisURL
		redisCfg.SessionTTL = cfg.Storage.SessionTTL
		fc.RedisConfig = &redisCfg
	}
	return fc
}

// New creates a new application with all dependencies wired
func New(cfg Config) (*App, error) {
	// Use no-op logger if not provided
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	// Create storage based on type
	var store storage.Storage
	storageType := cfg.StorageType
	if storageType == "" {
		storageType = StorageTypeMemory
	}

	switch storageType {
	case StorageTypeMemory:
		store = memory.New()
	case StorageTypeRedis:
		if cfg.RedisConfig == nil {
			return nil, errors.New("RedisConfig required when StorageType is redis")
		}
		redisStore, err := redisstorage.New(*cfg.RedisConfig)
		if err != nil {
			return nil, err
		}
		store = redisStore
	case StorageTypeSQLite:
		if cfg.SQLitePath == "" {
			return nil, errors.New("SQLitePath required when StorageType is sqlite")
		}
		sqliteStore, err := sqlitestorage.New(cfg.SQLitePath)
		if err != nil {
			return nil, err
		}
		store = sqliteStore
	default:
		return nil, fmt.Errorf("invalid StorageType %q: must be 'memory', 'redis' or 'sqlite'", storageType)
	}

	logger.Info("storage ready", slog.String("type", storageType))

	app := newWithDependencies(store, clock.New(), random.New(), auth.New(), logger, cfg.BoardSize)
	app.dictionaryPath = cfg.DictionaryPath
	return app, nil
}

// newWithDependencies creates an App with the given dependencies (useful for testing)
func newWithDependencies(
	store storage.Storage,
	clk clock.Clock,
	rnd random.Random,
	authService *auth.Service,
	logger *slog.Logger,
	boardSize int,
) *App {
	// Create services
	dictService := dictionary.New(store, logger)
	boardService := board.New(rnd, logger)
	validationService := validation.New(dictService, logger)
	sessionController := session.NewController(store, boardService, validationService, clk, logger, boardSize)

	return &App{
		Storage:           store,
		Clock:             clk,
		Random:            rnd,
		AuthService:       authService,
		DictionaryService: dictService,
		BoardService:      boardService,
		ValidationService: validationService,
		SessionController: sessionController,
		logger:            logger,
	}
}

// LoadDictionary loads words from the configured file if there is one.
// Otherwise it uses the words already in storage, then the embedded list.
func (a *App) LoadDictionary(ctx context.Context) error {
	if a.dictionaryPath != "" {
		return a.DictionaryService.LoadFromFile(ctx, a.dictionaryPath)
	}

	err := a.DictionaryService.LoadFromStorage(ctx)
	if err == nil {
		return nil
	}
	if !errors.Is(err, dictionary.ErrDictionaryNotLoaded) {
		a.logger.Warn("could not read dictionary from storage", slog.String("error", err.Error()))
	}
	return a.DictionaryService.LoadDefault()
}

// Close releases the storage backend
func (a *App) Close() error {
	return a.Storage.Close()
}
