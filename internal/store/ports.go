package store

import (
	"context"
)

//go:generate mockgen -destination=mocks/mock_executor.go -package=mocks whatabook/internal/store Executor

// Executor runs reads and writes against one backing store.
type Executor interface {
	// Read returns the matching records in store order; no match is an empty slice.
	Read(ctx context.Context, q Query) ([]Record, error)
	// Write performs one insert, update or delete.
	Write(ctx context.Context, q Query) (Result, error)
}
