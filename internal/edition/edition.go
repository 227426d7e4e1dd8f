// Package edition models printed editions of a book: the inventory record
// that is created, copied into new editions, exposed as a response and
// combined with its author.
//
// Every constructor and copy strips surrounding whitespace from string
// fields and validates the result, so a value obtained from this package
// is always valid.
package edition

import (
	"strings"

	"bookcatalog/internal/book"
)

// BookCreate is the inventory record for one edition.
type BookCreate struct {
	ID          *int   `json:"id,omitempty"`
	ISBN        string `json:"isbn"`
	PublishYear int    `json:"publish_year"`
	Price       int    `json:"price" validate:"gte=0"`
	Stock       int    `json:"stock" validate:"gte=0"`
}

// BookResponse is what clients see for an edition.
type BookResponse struct {
	ID          int    `json:"id" validate:"gt=0"`
	ISBN        string `json:"isbn"`
	PublishYear int    `json:"publish_year"`
	Available   bool   `json:"available"`
}

// AuthorInfo is the author attached to an edition.
type AuthorInfo struct {
	Name  string `json:"name" validate:"required"`
	Email string `json:"email" validate:"required"`
}

// BookWithNestedAuthor is an edition together with its author.
type BookWithNestedAuthor struct {
	BookCreate
	Author AuthorInfo `json:"author"`
}

// Update lists the fields replaced by Copy. Nil fields are kept.
type Update struct {
	ISBN        *string
	PublishYear *int
	Price       *int
	Stock       *int
}

// New normalizes and validates b.
func New(b BookCreate) (BookCreate, error) {
	b.ISBN = strings.TrimSpace(b.ISBN)
	if b.ID != nil {
		id := *b.ID
		b.ID = &id
	}
	if err := book.Validate(b); err != nil {
		return BookCreate{}, err
	}
	return b, nil
}

// SetISBN assigns a stripped ISBN, keeping b unchanged when the result is
// invalid.
func (b *BookCreate) SetISBN(isbn string) error {
	next := *b
	next.ISBN = isbn
	v, err := New(next)
	if err != nil {
		return err
	}
	*b = v
	return nil
}

// Copy returns a new edition with the fields in u replaced. b is not modified.
func (b BookCreate) Copy(u Update) (BookCreate, error) {
	next := b
	if u.ISBN != nil {
		next.ISBN = *u.ISBN
	}
	if u.PublishYear != nil {
		next.PublishYear = *u.PublishYear
	}
	if u.Price != nil {
		next.Price = *u.Price
	}
	if u.Stock != nil {
		next.Stock = *u.Stock
	}
	return New(next)
}

// ToResponse builds the client view of b under the given id.
func (b BookCreate) ToResponse(id int, available bool) (BookResponse, error) {
	r := BookResponse{
		ID:          id,
		ISBN:        strings.TrimSpace(b.ISBN),
		PublishYear: b.PublishYear,
		Available:   available,
	}
	if err := book.Validate(r); err != nil {
		return BookResponse{}, err
	}
	return r, nil
}

// WithAuthor attaches author to b.
func (b BookCreate) WithAuthor(author AuthorInfo) (BookWithNestedAuthor, error) {
	nb, err := New(b)
	if err != nil {
		return BookWithNestedAuthor{}, err
	}
	out := BookWithNestedAuthor{
		BookCreate: nb,
		Author: AuthorInfo{
			Name:  strings.TrimSpace(author.Name),
			Email: strings.TrimSpace(author.Email),
		},
	}
	if err := book.Validate(out); err != nil {
		return BookWithNestedAuthor{}, err
	}
	return out, nil
}
