package testutil

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"

	"bookcatalog/internal/book"
)

// DuneBook is the fixture used by the end-to-end scenarios.
var DuneBook = book.Book{
	ID:     1,
	Title:  "Dune",
	Author: book.Author{Name: "Herbert", Email: "h@x.com"},
}

// JaneBook is a second fixture with a different author.
var JaneBook = book.Book{
	ID:     2,
	Title:  "Emma",
	Author: book.Author{Name: "Jane", Email: "jane@example.com"},
}

// NewRequest creates a new HTTP request for testing. A string body is sent
// as is; any other non-nil body is encoded as JSON.
func NewRequest(method, path string, body interface{}) *http.Request {
	var reader io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		reader = strings.NewReader(b)
	default:
		bodyBytes, _ := json.Marshal(b)
		reader = bytes.NewReader(bodyBytes)
	}

	r := httptest.NewRequest(method, path, reader)
	if reader != nil {
		r.Header.Set("Content-Type", "application/json")
	}
	return r
}

// Do serves a request built by NewRequest against h.
func Do(h http.Handler, method, path string, body interface{}) RecordResponse {
	w := httptest.NewRecorder()
	h.ServeHTTP(w, NewRequest(method, path, body))
	return RecordHTTPResponse(w)
}

// RecordResponse records the HTTP response for testing
type RecordResponse struct {
	Code   int
	Header http.Header
	Raw    []byte
	// Body holds the decoded JSON object, nil for arrays and plain text.
	Body map[string]interface{}
}

// RecordHTTPResponse records the HTTP response
func RecordHTTPResponse(w *httptest.ResponseRecorder) RecordResponse {
	result := w.Result()
	defer result.Body.Close()

	bodyBytes, _ := io.ReadAll(result.Body)

	var bodyMap map[string]interface{}
	if len(bodyBytes) > 0 {
		_ = json.Unmarshal(bodyBytes, &bodyMap)
	}

	return RecordResponse{
		Code:   result.StatusCode,
		Header: result.Header,
		Raw:    bodyBytes,
		Body:   bodyMap,
	}
}

// Books decodes the raw body as a list of books.
func (r RecordResponse) Books() ([]book.Book, error) {
	var books []book.Book
	err := json.Unmarshal(r.Raw, &books)
	return books, err
}

// AssertResponseCode checks if the response code matches expected
func AssertResponseCode(t interface {
	Errorf(format string, args ...any)
}, got, want int) {
	if got != want {
		t.Errorf("got status code %d, want %d", got, want)
	}
}

// AssertResponseBody checks if the response body contains expected field
func AssertResponseBody(t interface {
	Errorf(format string, args ...any)
}, body map[string]interface{}, key string, expectedValue interface{}) {
	value, ok := body[key]
	if !ok {
		t.Errorf("response body missing key %q", key)
		return
	}
	if value != expectedValue {
		t.Errorf("got %v for key %q, want %v", value, key, expectedValue)
	}
}
