package store

import (
	"context"
	"database/sql"
	"fmt"
	"sync"
)

// sequenceCounter hands out monotonically increasing sequence numbers
// shared across all event tables, so events interleave in a total order.
type sequenceCounter struct {
	db *sql.DB
	mu sync.Mutex
}

func (c *sequenceCounter) next(ctx context.Context) (int64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	tx, err := c.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin sequence tx: %w", err)
	}
	defer tx.Rollback()

	var val int64
	if err := tx.QueryRowContext(ctx,
		`SELECT next_val FROM global_sequence WHERE id = 1`).Scan(&val); err != nil {
		return 0, fmt.Errorf("read sequence: %w", err)
	}
	if _, err := tx.ExecContext(ctx,
		`UPDATE global_sequence SET next_val = next_val + 1 WHERE id = 1`); err != nil {
		return 0, fmt.Errorf("advance sequence: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit sequence: %w", err)
	}
	return val, nil
}
