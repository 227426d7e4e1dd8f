package book

import (
	"context"
	"sync"
)

// MemoryRepo is a process-local catalog. Books are kept in insertion order;
// a single RWMutex serializes every mutation.
type MemoryRepo struct {
	mu    sync.RWMutex
	books []Book
}

func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{}
}

func (r *MemoryRepo) indexOf(id int) int {
	for i := range r.books {
		if r.books[i].ID == id {
			return i
		}
	}
	return -1
}

func (r *MemoryRepo) Insert(ctx context.Context, b Book) (Book, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.indexOf(b.ID) >= 0 {
		return Book{}, ErrDuplicateID
	}
	stored := b.clone()
	r.books = append(r.books, stored)
	return stored.clone(), nil
}

func (r *MemoryRepo) List(ctx context.Context) ([]Book, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Book, 0, len(r.books))
	for _, b := range r.books {
		out = append(out, b.clone())
	}
	return out, nil
}

func (r *MemoryRepo) Get(ctx context.Context, id int) (Book, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i := r.indexOf(id)
	if i < 0 {
		return Book{}, ErrNotFound
	}
	return r.books[i].clone(), nil
}

func (r *MemoryRepo) Update(ctx context.Context, id int, mutate func(*Book)) (Book, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(id)
	if i < 0 {
		return Book{}, ErrNotFound
	}
	updated := r.books[i].clone()
	mutate(&updated)
	updated.ID = id
	r.books[i] = updated
	return updated.clone(), nil
}

func (r *MemoryRepo) Delete(ctx context.Context, id int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(id)
	if i < 0 {
		return ErrNotFound
	}
	r.books = append(r.books[:i], r.books[i+1:]...)
	return nil
}

func (r *MemoryRepo) Count(ctx context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.books), nil
}
