package book

import (
	"errors"
	"strings"
)

var (
	// ErrNotFound is returned when a book is not found.
	ErrNotFound = errors.New("book not found")
	// ErrDuplicateID is returned when a book with the same id already exists.
	ErrDuplicateID = errors.New("book with this ID already exists")
	// ErrInvalidID is returned when an id path segment is not a decimal number.
	ErrInvalidID = errors.New("ID must be a number")
)

// Author is embedded in Book and has no identity of its own.
type Author struct {
	Name  string `json:"name" validate:"required,min=3"`
	Email string `json:"email" validate:"required"`
}

// Book represents a book entity.
type Book struct {
	ID          int      `json:"id" validate:"gt=0"`
	Title       string   `json:"title" validate:"required,min=3"`
	Author      Author   `json:"author"`
	PublishYear *int     `json:"publish_year,omitempty"`
	Price       *float64 `json:"price,omitempty"`
	InStock     *bool    `json:"in_stock,omitempty"`
}

// clone returns a copy that shares no pointers with b.
func (b Book) clone() Book {
	out := b
	if b.PublishYear != nil {
		v := *b.PublishYear
		out.PublishYear = &v
	}
	if b.Price != nil {
		v := *b.Price
		out.Price = &v
	}
	if b.InStock != nil {
		v := *b.InStock
		out.InStock = &v
	}
	return out
}

// ListQuery filters the catalog listing. Nil fields are not applied.
type ListQuery struct {
	Author *string
	Limit  *int
}

// SearchQuery holds the search criteria, combined with AND.
type SearchQuery struct {
	Title    *string
	Author   *string
	MaxPrice *float64
}

// UpdateRequest replaces the title and, when set, the author of a book.
// Book is the optional full payload accepted by the PUT /books/{id} route;
// it is validated but its fields (including id) are not applied.
type UpdateRequest struct {
	NewTitle string  `json:"new_title" validate:"required,min=3"`
	Author   *Author `json:"author,omitempty"`
	Book     *Book   `json:"book,omitempty"`
}

// FieldError describes one violated schema constraint.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError is returned when input fails schema validation.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, f.Message)
	}
	return "validation failed: " + strings.Join(parts, "; ")
}
