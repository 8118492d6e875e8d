package repository

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eslsoft/vocquiz/internal/entity"
	"github.com/eslsoft/vocquiz/internal/infrastructure/config"
	"github.com/eslsoft/vocquiz/internal/infrastructure/database"
	"github.com/eslsoft/vocquiz/internal/repository"
)

func requireSQLite(t *testing.T) {
	t.Helper()
	db, err := sql.Open("sqlite3", "file::memory:?cache=shared")
	if err != nil {
		t.Skipf("sqlite driver not available: %v", err)
		return
	}
	defer db.Close()
	if err := db.Ping(); err != nil {
		t.Skipf("skipping sqlite-dependent tests: %v", err)
	}
}

func newTestCache(t *testing.T) repository.DictionaryCache {
	t.Helper()
	requireSQLite(t)
	db, cleanup, err := database.Open(filepath.Join(t.TempDir(), "cache", "dictionary.db"))
	require.NoError(t, err)
	t.Cleanup(cleanup)
	return NewSQLiteCache(db)
}

func quietLogger() logrus.FieldLogger {
	l := logrus.New()
	l.SetLevel(logrus.PanicLevel)
	return l
}

func TestSQLiteCache_SaveFetch(t *testing.T) {
	cache := newTestCache(t)
	ctx := context.Background()

	_, ok, err := cache.Fetch(ctx, "src")
	require.NoError(t, err)
	assert.False(t, ok)

	records, err := DecodeRecords(strings.NewReader(sampleCSV))
	require.NoError(t, err)
	require.NoError(t, cache.Save(ctx, "src", records))
	require.NoError(t, cache.Save(ctx, "src", records[:2]))

	got, ok, err := cache.Fetch(ctx, "src")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, records[:2], got)

	_, ok, err = cache.Fetch(ctx, "other")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestNewSQLiteCache_NilDB(t *testing.T) {
	assert.Nil(t, NewSQLiteCache(nil))
}

func TestCachedRepository_FallsBackToCache(t *testing.T) {
	cache := newTestCache(t)
	ctx := context.Background()

	var offline atomic.Bool
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		if offline.Load() {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		_, _ = w.Write([]byte(sampleCSV))
	}))
	defer srv.Close()

	cfg := &config.Config{Source: config.SourceConfig{URL: srv.URL}}
	repo := NewCachedRepository(NewSpreadsheetRepository(cfg), cache, cfg, quietLogger())

	first, err := repo.Load(ctx)
	require.NoError(t, err)

	offline.Store(true)
	second, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, first, second)

	_, err = repo.Refresh(ctx)
	assert.Error(t, err, "refresh must not fall back to the cache")
}

func TestCachedRepository_MalformedNotMasked(t *testing.T) {
	cache := newTestCache(t)
	ctx := context.Background()

	var body atomic.Value
	body.Store(sampleCSV)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(body.Load().(string)))
	}))
	defer srv.Close()

	cfg := &config.Config{Source: config.SourceConfig{URL: srv.URL}}
	repo := NewCachedRepository(NewSpreadsheetRepository(cfg), cache, cfg, quietLogger())
	n, err := repo.Refresh(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	body.Store("broken,row\n")
	_, err = repo.Load(ctx)
	assert.ErrorIs(t, err, entity.ErrMalformedRow)
}

func TestCachedRepository_Offline(t *testing.T) {
	cache := newTestCache(t)
	ctx := context.Background()

	cfg := &config.Config{
		Source: config.SourceConfig{URL: "http://127.0.0.1:0/unreachable.csv"},
		Cache:  config.CacheConfig{Offline: true},
	}
	repo := NewCachedRepository(NewSpreadsheetRepository(cfg), cache, cfg, quietLogger())

	_, err := repo.Load(ctx)
	assert.True(t, errors.Is(err, ErrNotCached), "got %v", err)

	records, err := DecodeRecords(strings.NewReader(sampleCSV))
	require.NoError(t, err)
	require.NoError(t, cache.Save(ctx, cfg.Source.URL, records))

	got, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, records, got)
}

func TestCachedRepository_NoCache(t *testing.T) {
	cfg := &config.Config{Source: config.SourceConfig{URL: "http://127.0.0.1:0/unreachable.csv"}}
	repo := NewCachedRepository(NewSpreadsheetRepository(cfg), nil, cfg, quietLogger())
	_, err := repo.Load(context.Background())
	assert.Error(t, err)
}
