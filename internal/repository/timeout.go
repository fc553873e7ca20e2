package repository

import (
	"context"
	"math"
	"time"
)

// maxRowID is the largest id a signed 64-bit primary key column can hold.
// Lookups above it are answered as not found without a query.
const maxRowID = math.MaxInt64

// withTimeout keeps a caller's deadline and otherwise applies the query timeout.
func withTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if _, ok := ctx.Deadline(); ok || timeout <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, timeout)
}
