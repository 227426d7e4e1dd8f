package book

import (
	"context"
)

//go:generate mockgen -source=ports.go -destination=mock_repository.go -package=book

// Repository defines the contract for book catalog storage.
// Implementations must serialize mutations so ids stay unique.
type Repository interface {
	// Insert appends b, or returns ErrDuplicateID if its id is taken.
	Insert(ctx context.Context, b Book) (Book, error)
	// List returns every book in insertion order.
	List(ctx context.Context) ([]Book, error)
	Get(ctx context.Context, id int) (Book, error)
	// Update applies mutate to the stored book under the write lock.
	Update(ctx context.Context, id int, mutate func(*Book)) (Book, error)
	Delete(ctx context.Context, id int) error
	Count(ctx context.Context) (int, error)
}
