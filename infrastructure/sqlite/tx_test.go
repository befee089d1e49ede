package sqlite

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/uptrace/bun"
)

func openTestDB(t *testing.T) *DB {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "tx-test.db")
	db, err := OpenDB(dbPath)
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	if err := ApplyEmbeddedMigrations(context.Background(), db); err != nil {
		t.Fatalf("apply migrations: %v", err)
	}
	return db
}

func TestWithWriteTx_CommitsChanges(t *testing.T) {
	db := openTestDB(t)

	err := db.WithWriteTx(context.Background(), func(ctx context.Context, tx bun.Tx) error {
		_, err := tx.ExecContext(ctx, `INSERT INTO users (username, password_hash, role) VALUES ('operator', 'hash', 'operator')`)
		return err
	})
	if err != nil {
		t.Fatalf("write tx: %v", err)
	}

	var count int
	err = db.WithReadTx(context.Background(), func(ctx context.Context, tx bun.Tx) error {
		return tx.NewRaw(`SELECT COUNT(1) FROM users`).Scan(ctx, &count)
	})
	if err != nil {
		t.Fatalf("read tx: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected 1 user, got %d", count)
	}
}

func TestWithReadTx_RejectsWrites(t *testing.T) {
	db := openTestDB(t)

	err := db.WithReadTx(context.Background(), func(ctx context.Context, tx bun.Tx) error {
		_, err := tx.ExecContext(ctx, `INSERT INTO users (username, password_hash, role) VALUES ('x', 'y', 'z')`)
		return err
	})
	if err == nil {
		t.Fatalf("expected write through read handle to fail")
	}
}

func TestWithWriteTx_NilDB(t *testing.T) {
	var db *DB
	if err := db.WithWriteTx(context.Background(), func(ctx context.Context, tx bun.Tx) error { return nil }); err == nil {
		t.Fatalf("expected error for nil db")
	}
}
