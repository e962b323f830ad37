package repository_test

import (
	"bytes"
	"context"
	"desk/config"
	"desk/infras/otel/mocks"
	"desk/internal/domains/record/model"
	"desk/internal/domains/record/repository"
	"desk/shared/failure"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBooking_CSVDriver(t *testing.T) {
	cfg := &config.Config{}
	cfg.Store.Driver = config.StoreDriverCSV
	cfg.Store.DataDir = t.TempDir()

	store := repository.NewBooking(cfg, nil, mocks.NewOtel())

	assert.Equal(t, filepath.Join(cfg.Store.DataDir, "bookings.csv"), store.Location())
}

func TestNewBooking_PostgresWithoutConnection(t *testing.T) {
	ctx := context.Background()

	cfg := &config.Config{}
	cfg.Store.Driver = config.StoreDriverPostgres
	cfg.Store.DataDir = t.TempDir()

	store := repository.NewBooking(cfg, nil, mocks.NewOtel())

	assert.Equal(t, "postgres:bookings (unavailable)", store.Location())

	_, err := store.Load(ctx)
	assert.True(t, errors.Is(err, failure.ErrStorageRead))

	_, err = store.Append(ctx, acme())
	assert.True(t, errors.Is(err, failure.ErrStorageWrite))
	assert.True(t, errors.Is(err, repository.ErrNoConnection))

	_, err = store.UpdateStatus(ctx, "b-1", model.StatusDone)
	assert.True(t, errors.Is(err, failure.ErrStorageWrite))

	assert.True(t, errors.Is(store.EnsureInitialized(ctx), failure.ErrStorageWrite))
	assert.True(t, errors.Is(store.ReplaceAll(ctx, nil), failure.ErrStorageWrite))

	_, err = store.Import(ctx, strings.NewReader("id\n"))
	assert.True(t, errors.Is(err, failure.ErrStorageWrite))

	assert.True(t, errors.Is(store.Export(ctx, &bytes.Buffer{}), failure.ErrStorageRead))

	entries, err := os.ReadDir(cfg.Store.DataDir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}
