package db_test

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	dbpkg "github.com/carbonwakeup/server/internal/db"
)

func tempDSN(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "test.db")
}

func TestNew_Close_GetConn(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	d, err := dbpkg.New(ctx, tempDSN(t))
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	conn := d.GetConn()
	if conn == nil {
		t.Fatalf("expected non-nil sql.DB from GetConn")
	}

	// Close should not error
	if err := d.Close(); err != nil {
		t.Fatalf("Close returned error: %v", err)
	}
}

func TestExec_QueryRow(t *testing.T) {
	ctx := context.Background()
	d, err := dbpkg.New(ctx, tempDSN(t))
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	defer d.Close()

	// create table
	_, err = d.Exec(ctx, `CREATE TABLE IF NOT EXISTS items (id INTEGER PRIMARY KEY AUTOINCREMENT, name TEXT);`)
	if err != nil {
		t.Fatalf("Exec create table returned error: %v", err)
	}

	// insert
	res, err := d.Exec(ctx, `INSERT INTO items (name) VALUES (?)`, "foo")
	if err != nil {
		t.Fatalf("Exec insert returned error: %v", err)
	}
	lastID, err := res.LastInsertId()
	if err != nil {
		t.Fatalf("LastInsertId returned error: %v", err)
	}
	if lastID == 0 {
		t.Fatalf("expected last insert id > 0")
	}

	// query
	row := d.QueryRow(ctx, `SELECT name FROM items WHERE id = ?`, lastID)
	var name string
	if err := row.Scan(&name); err != nil {
		t.Fatalf("QueryRow scan returned error: %v", err)
	}
	if name != "foo" {
		t.Fatalf("expected name 'foo' got %q", name)
	}
}

func TestExecTx_CommitAndRollback(t *testing.T) {
	ctx := context.Background()
	d, err := dbpkg.New(ctx, tempDSN(t))
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	defer d.Close()

	if _, err := d.Exec(ctx, `CREATE TABLE pairs (a TEXT PRIMARY KEY, b TEXT NOT NULL)`); err != nil {
		t.Fatalf("create table: %v", err)
	}

	// commit path: both rows land
	err = d.ExecTx(ctx, func(tx *dbpkg.Tx) error {
		if _, err := tx.Exec(ctx, `INSERT INTO pairs (a, b) VALUES ('x', '1')`); err != nil {
			return err
		}
		_, err := tx.Exec(ctx, `INSERT INTO pairs (a, b) VALUES ('y', '2')`)
		return err
	})
	if err != nil {
		t.Fatalf("ExecTx commit path returned error: %v", err)
	}

	var count int
	if err := d.QueryRow(ctx, `SELECT COUNT(1) FROM pairs`).Scan(&count); err != nil {
		t.Fatalf("count scan: %v", err)
	}
	if count != 2 {
		t.Fatalf("expected 2 rows after commit, got %d", count)
	}

	// rollback path: first insert succeeds inside the tx, second violates the
	// primary key; neither must be visible afterwards
	err = d.ExecTx(ctx, func(tx *dbpkg.Tx) error {
		if _, err := tx.Exec(ctx, `INSERT INTO pairs (a, b) VALUES ('z', '3')`); err != nil {
			return err
		}
		_, err := tx.Exec(ctx, `INSERT INTO pairs (a, b) VALUES ('x', 'dup')`)
		return err
	})
	if !dbpkg.IsDuplicateKey(err) {
		t.Fatalf("expected duplicate key error, got %v", err)
	}

	if err := d.QueryRow(ctx, `SELECT COUNT(1) FROM pairs`).Scan(&count); err != nil {
		t.Fatalf("count scan: %v", err)
	}
	if count != 2 {
		t.Fatalf("expected rollback to discard both writes, got %d rows", count)
	}
}

func TestErrorMapping_UniqueViolation(t *testing.T) {
	ctx := context.Background()
	d, err := dbpkg.New(ctx, tempDSN(t))
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	defer d.Close()

	if _, err := d.Exec(ctx, `CREATE TABLE users (email TEXT NOT NULL UNIQUE)`); err != nil {
		t.Fatalf("create table: %v", err)
	}
	if _, err := d.Exec(ctx, `INSERT INTO users (email) VALUES ('a@b.c')`); err != nil {
		t.Fatalf("insert: %v", err)
	}

	_, err = d.Exec(ctx, `INSERT INTO users (email) VALUES ('a@b.c')`)
	if !dbpkg.IsDuplicateKey(err) {
		t.Fatalf("expected ErrDuplicateKey, got %v", err)
	}
	if got := dbpkg.ConstraintColumn(err); got != "users.email" {
		t.Fatalf("expected constraint column users.email, got %q", got)
	}
}

func TestConstraintColumn_NonConstraintError(t *testing.T) {
	if got := dbpkg.ConstraintColumn(errors.New("something else")); got != "" {
		t.Fatalf("expected empty column for unrelated error, got %q", got)
	}
	if got := dbpkg.ConstraintColumn(nil); got != "" {
		t.Fatalf("expected empty column for nil error, got %q", got)
	}
}

func TestDuplicateKeyStub(t *testing.T) {
	err := dbpkg.DuplicateKeyStub("user_accounts.email")
	if !dbpkg.IsDuplicateKey(err) {
		t.Fatalf("stub should satisfy IsDuplicateKey")
	}
	if got := dbpkg.ConstraintColumn(err); got != "user_accounts.email" {
		t.Fatalf("unexpected constraint column %q", got)
	}
}
