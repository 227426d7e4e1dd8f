package main

import (
	"log/slog"
	"os"

	"bookcatalog/internal/edition"
	"bookcatalog/internal/logging"
)

func main() {
	logger := logging.New(logging.Config{Level: logging.LevelInfo})
	if err := run(logger); err != nil {
		logger.Error("edition demo failed", "error", err)
		os.Exit(1)
	}
}

func run(logger *slog.Logger) error {
	original, err := edition.New(edition.BookCreate{
		ISBN:        "123-456",
		PublishYear: 2024,
		Price:       49,
		Stock:       20,
	})
	if err != nil {
		return err
	}
	logger.Info("original book", "book", original)

	year, stock := 2025, 50
	next, err := original.Copy(edition.Update{PublishYear: &year, Stock: &stock})
	if err != nil {
		return err
	}
	logger.Info("new edition", "book", next)

	resp, err := next.ToResponse(1, true)
	if err != nil {
		return err
	}
	logger.Info("book response", "book", resp)

	withAuthor, err := next.WithAuthor(edition.AuthorInfo{
		Name:  "John Doe",
		Email: "john.doe@example.com",
	})
	if err != nil {
		return err
	}
	logger.Info("book with author", "book", withAuthor)
	return nil
}
