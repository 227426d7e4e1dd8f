package book

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// DecodeSeed reads a JSON array of books.
func DecodeSeed(r io.Reader) ([]Book, error) {
	var books []Book
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&books); err != nil {
		return nil, fmt.Errorf("decode seed: %w", err)
	}
	return books, nil
}

// LoadSeedFile reads a JSON array of books from path.
func LoadSeedFile(path string) ([]Book, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open seed file: %w", err)
	}
	defer f.Close()
	return DecodeSeed(f)
}
