package storage

import "context"

// TxManager runs fn as one atomic unit of work against the store. Repository
// calls made with the context passed to fn join the same transaction; either
// the whole sequence commits or none of it does.
type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
