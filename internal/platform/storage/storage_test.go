package storage

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/SscSPs/ledger_book_app/internal/adapters/database/redisstore"
	"github.com/SscSPs/ledger_book_app/internal/adapters/filestore"
	"github.com/SscSPs/ledger_book_app/internal/platform/config"
	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var discard = slog.New(slog.NewTextHandler(io.Discard, nil))

func TestOpen_File(t *testing.T) {
	cfg := &config.Config{StorageBackend: config.BackendFile, DataDir: t.TempDir()}
	store, closeFn, err := Open(context.Background(), cfg, discard)
	require.NoError(t, err)
	defer closeFn()
	assert.IsType(t, &filestore.Store{}, store)
	assert.NoError(t, store.Ping(context.Background()))
}

func TestOpen_Redis(t *testing.T) {
	mr := miniredis.RunT(t)
	cfg := &config.Config{StorageBackend: config.BackendRedis, RedisAddrs: []string{mr.Addr()}, RedisPrefix: "t", EnableDBCheck: true}
	store, closeFn, err := Open(context.Background(), cfg, discard)
	require.NoError(t, err)
	defer closeFn()
	assert.IsType(t, &redisstore.Store{}, store)
}

func TestOpen_RedisUnreachable(t *testing.T) {
	mr := miniredis.RunT(t)
	addr := mr.Addr()
	mr.Close()
	cfg := &config.Config{StorageBackend: config.BackendRedis, RedisAddrs: []string{addr}, EnableDBCheck: true}
	_, _, err := Open(context.Background(), cfg, discard)
	assert.Error(t, err)
}

func TestOpen_Unknown(t *testing.T) {
	_, _, err := Open(context.Background(), &config.Config{StorageBackend: "tape"}, discard)
	assert.Error(t, err)
}
