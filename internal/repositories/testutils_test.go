package repositories_test

import (
	"context"
	"github.com/lkarjala/vaelor/internal/sqlite"
	"github.com/lkarjala/vaelor/internal/testhelpers"
	"io"
	"testing"
)

// newTestDB creates a new in-memory database with the authored casefile loaded.
func newTestDB(t *testing.T) *sqlite.Database {
	t.Helper()
	db, err := sqlite.NewDatabase(context.Background(), ":memory:", testhelpers.NewLogger(io.Discard))
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		if err = db.Close(); err != nil {
			t.Fatal(err)
		}
	})
	return db
}
