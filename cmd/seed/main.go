package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"math/rand/v2"
	"os"
	"strings"

	"bookcatalog/internal/book"
	"bookcatalog/internal/logging"
)

var words = []string{
	"Adventure", "Mystery", "Journey", "Discovery", "Secrets", "Dreams", "Hope",
	"Love", "War", "Peace", "Science", "Nature", "Technology", "History", "Future",
	"Past", "Present", "Reality", "Imagination", "Wisdom", "Life", "Death",
	"Light", "Darkness", "World", "Universe", "Time", "Space", "Mind", "Soul",
}

var authors = []string{
	"Frank Herbert", "Jane Austen", "Ursula Le Guin", "Isaac Asimov",
	"Toni Morrison", "Haruki Murakami", "Chinua Achebe", "Octavia Butler",
}

func main() {
	count := flag.Int("count", 100, "number of books to generate")
	out := flag.String("out", "", "output file (stdout when empty)")
	seed := flag.Uint64("seed", 1, "random seed")
	flag.Parse()

	logger := logging.New(logging.Config{Level: logging.LevelInfo})

	if err := run(*count, *out, *seed); err != nil {
		logger.Error("seed generation failed", "error", err)
		os.Exit(1)
	}
	logger.Info("generated seed catalog", "books", *count, "out", *out)
}

func run(count int, out string, seed uint64) (err error) {
	books, err := generate(count, rand.New(rand.NewPCG(seed, seed)))
	if err != nil {
		return fmt.Errorf("generate books: %w", err)
	}

	if out == "" {
		return writeBooks(os.Stdout, books)
	}

	f, err := os.Create(out)
	if err != nil {
		return fmt.Errorf("create output file: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close output file: %w", cerr)
		}
	}()
	if err := writeBooks(f, books); err != nil {
		return fmt.Errorf("write books: %w", err)
	}
	return nil
}

// generate returns count valid books with ids 1..count.
func generate(count int, rng *rand.Rand) ([]book.Book, error) {
	if count < 0 {
		return nil, fmt.Errorf("count must not be negative, got %d", count)
	}
	books := make([]book.Book, 0, count)
	for i := 0; i < count; i++ {
		name := authors[rng.IntN(len(authors))]
		b := book.Book{
			ID:    i + 1,
			Title: fmt.Sprintf("Book Title %d - %s", i+1, randomWord(rng)),
			Author: book.Author{
				Name:  name,
				Email: strings.ToLower(strings.ReplaceAll(name, " ", ".")) + "@example.com",
			},
		}
		if rng.IntN(2) == 0 {
			year := 1950 + rng.IntN(75)
			b.PublishYear = &year
		}
		if rng.IntN(4) != 0 {
			price := float64(100+rng.IntN(4900)) / 100
			b.Price = &price
		}
		inStock := rng.IntN(3) != 0
		b.InStock = &inStock

		if err := book.Validate(b); err != nil {
			return nil, fmt.Errorf("book %d: %w", b.ID, err)
		}
		books = append(books, b)
	}
	return books, nil
}

func writeBooks(w io.Writer, books []book.Book) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(books)
}

func randomWord(rng *rand.Rand) string {
	return words[rng.IntN(len(words))]
}
