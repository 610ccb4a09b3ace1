package main

import (
	"context"
	"net"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func freePort(t *testing.T) int {
	t.Helper()
	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer l.Close()
	return l.Addr().(*net.TCPAddr).Port
}

func TestRunStopsCleanlyOnCancel(t *testing.T) {
	t.Setenv("HOST", "127.0.0.1")
	t.Setenv("PORT", strconv.Itoa(freePort(t)))
	t.Setenv("STORAGE_TYPE", "sqlite")
	dbPath := filepath.Join(t.TempDir(), "boggle.db")
	t.Setenv("SQLITE_PATH", dbPath)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	require.Equal(t, 0, run(ctx))
	assert.FileExists(t, dbPath)
	// The write-ahead log is removed once the last connection closes
	assert.NoFileExists(t, dbPath+"-wal")
}

func TestRunRejectsInvalidConfig(t *testing.T) {
	t.Setenv("PORT", "0")

	assert.Equal(t, 1, run(context.Background()))
}

func TestRunClosesStorageWhenServerFails(t *testing.T) {
	busy, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer busy.Close()

	t.Setenv("HOST", "127.0.0.1")
	t.Setenv("PORT", strconv.Itoa(busy.Addr().(*net.TCPAddr).Port))
	t.Setenv("STORAGE_TYPE", "sqlite")
	dbPath := filepath.Join(t.TempDir(), "boggle.db")
	t.Setenv("SQLITE_PATH", dbPath)

	require.Equal(t, 1, run(context.Background()))
	assert.NoFileExists(t, dbPath+"-wal")
}
