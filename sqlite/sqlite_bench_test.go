package sqlite_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/fwojciec/rankcheck/sqlite"
	"github.com/stretchr/testify/require"
)

// BenchmarkAddSearch compares history appends between WAL and rollback journal modes.
func BenchmarkAddSearch(b *testing.B) {
	b.Run("rollback_journal", func(b *testing.B) {
		benchmarkAddSearch(b, "DELETE")
	})

	b.Run("wal_mode", func(b *testing.B) {
		benchmarkAddSearch(b, "WAL")
	})
}

func benchmarkAddSearch(b *testing.B, journalMode string) {
	b.Helper()

	dbPath := filepath.Join(b.TempDir(), "bench.db")

	db := sqlite.NewDB(dbPath)
	require.NoError(b, db.Open())
	defer func() {
		db.Close()
		os.Remove(dbPath + "-wal")
		os.Remove(dbPath + "-shm")
	}()

	ctx := context.Background()
	_, err := db.ExecContext(ctx, "PRAGMA journal_mode = "+journalMode)
	require.NoError(b, err)

	svc := sqlite.NewHistoryService(db)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := svc.AddSearch(ctx, newRecord("benchmark keywords")); err != nil {
			b.Fatal(err)
		}
	}
}
