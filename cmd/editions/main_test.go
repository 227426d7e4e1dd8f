package main

import (
	"bytes"
	"strings"
	"testing"

	"bookcatalog/internal/logging"
)

func TestRun(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.New(logging.Config{Level: logging.LevelInfo, Format: logging.FormatJSON, Output: &buf})

	if err := run(logger); err != nil {
		t.Fatalf("run: %v", err)
	}

	out := buf.String()
	for _, want := range []string{`"msg":"original book"`, `"msg":"new edition"`, `"publish_year":2025`, `"available":true`, `"john.doe@example.com"`} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %s:\n%s", want, out)
		}
	}
}
