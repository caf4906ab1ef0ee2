package repos_test

import (
	"fmt"
	"sync"
	"testing"

	_ "modernc.org/sqlite" // pure-Go SQLite driver

	"dealflip/internal/repos"
)

// Concurrent reads must all land on the same in-memory database. Without the
// single-connection guard each new pool connection gets a private empty
// schema and these selects fail with "no such table".
func TestMemoryDSNSharesOneDatabase(t *testing.T) {
	db, err := repos.OpenDB(":memory:")
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	var wg sync.WaitGroup
	errs := make(chan error, 8)
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			var n int
			if err := db.Get(&n, `SELECT COUNT(*) FROM deals`); err != nil {
				errs <- err
				return
			}
			if n != 3 {
				errs <- fmt.Errorf("want 3 seeded deals, got %d", n)
			}
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		t.Errorf("concurrent read: %v", err)
	}
}
