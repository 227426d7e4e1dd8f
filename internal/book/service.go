package book

import (
	"context"
	"errors"
	"fmt"
	"strconv"
)

// Service provides book catalog business logic.
type Service struct {
	repo         Repository
	strictSearch bool
}

// Option configures a Service.
type Option func(*Service)

// WithStrictSearch makes Search treat an absent filter as matching nothing
// instead of matching everything.
func WithStrictSearch(strict bool) Option {
	return func(s *Service) { s.strictSearch = strict }
}

// NewService creates a new book service.
func NewService(repo Repository, opts ...Option) *Service {
	s := &Service{repo: repo}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Create validates b and appends it to the catalog.
func (s *Service) Create(ctx context.Context, b Book) (Book, error) {
	if err := Validate(b); err != nil {
		return Book{}, err
	}
	return s.repo.Insert(ctx, b)
}

// List returns books by the given author (all books when unset), truncated
// to the first q.Limit entries.
func (s *Service) List(ctx context.Context, q ListQuery) ([]Book, error) {
	books, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list books: %w", err)
	}

	out := make([]Book, 0, len(books))
	for _, b := range books {
		if q.Author != nil && b.Author.Name != *q.Author {
			continue
		}
		out = append(out, b)
	}

	if q.Limit != nil {
		limit := max(*q.Limit, 0)
		if limit < len(out) {
			out = out[:limit]
		}
	}
	return out, nil
}

// GetByID looks up a book by its raw path id, which must be decimal digits.
func (s *Service) GetByID(ctx context.Context, rawID string) (Book, error) {
	id, err := ParseID(rawID)
	if err != nil {
		return Book{}, err
	}
	return s.repo.Get(ctx, id)
}

// Search returns the books matching every criterion in q.
func (s *Service) Search(ctx context.Context, q SearchQuery) ([]Book, error) {
	books, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("search books: %w", err)
	}

	out := make([]Book, 0)
	for _, b := range books {
		if s.matches(b, q) {
			out = append(out, b)
		}
	}
	return out, nil
}

func (s *Service) matches(b Book, q SearchQuery) bool {
	if s.strictSearch && (q.Title == nil || q.Author == nil || q.MaxPrice == nil) {
		return false
	}
	if q.Title != nil && b.Title != *q.Title {
		return false
	}
	if q.Author != nil && b.Author.Name != *q.Author {
		return false
	}
	if q.MaxPrice != nil && (b.Price == nil || !(*b.Price <= *q.MaxPrice)) {
		return false
	}
	return true
}

// Update replaces the title of the book with the given id and, if req.Author
// is set, its author. The id itself never changes.
func (s *Service) Update(ctx context.Context, id int, req UpdateRequest) (Book, error) {
	if err := Validate(req); err != nil {
		return Book{}, err
	}
	return s.repo.Update(ctx, id, func(b *Book) {
		b.Title = req.NewTitle
		if req.Author != nil {
			b.Author = *req.Author
		}
	})
}

// Delete removes the book with the given id.
func (s *Service) Delete(ctx context.Context, id int) error {
	return s.repo.Delete(ctx, id)
}

// Count returns the number of books in the catalog.
func (s *Service) Count(ctx context.Context) (int, error) {
	return s.repo.Count(ctx)
}

// Seed creates books in order and reports how many were inserted before
// the first failure.
func (s *Service) Seed(ctx context.Context, books []Book) (int, error) {
	for i, b := range books {
		if _, err := s.Create(ctx, b); err != nil {
			return i, fmt.Errorf("seed book %d (id=%d): %w", i, b.ID, err)
		}
	}
	return len(books), nil
}

// ParseID parses a path id made only of ASCII decimal digits. Digits too
// large for an int report ErrNotFound.
func ParseID(raw string) (int, error) {
	if raw == "" {
		return 0, ErrInvalidID
	}
	for _, r := range raw {
		if r < '0' || r > '9' {
			return 0, ErrInvalidID
		}
	}
	id, err := strconv.Atoi(raw)
	if errors.Is(err, strconv.ErrRange) {
		// too large to be a stored id
		return 0, ErrNotFound
	}
	if err != nil {
		return 0, ErrInvalidID
	}
	return id, nil
}
