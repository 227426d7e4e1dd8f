package book

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"

	"bookcatalog/internal/httpx"
)

type HTTPHandler struct {
	service *Service
	logger  *slog.Logger
}

func NewHTTPHandler(service *Service, logger *slog.Logger) *HTTPHandler {
	return &HTTPHandler{service: service, logger: logger}
}

// RegisterRoutes mounts the book endpoints on mux.
func (h *HTTPHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("POST /books", h.Create)
	mux.HandleFunc("GET /books", h.List)
	mux.HandleFunc("GET /books/{$}", h.List)
	mux.HandleFunc("GET /books/search/{$}", h.Search)
	mux.HandleFunc("GET /books/{id}", h.GetByID)
	mux.HandleFunc("DELETE /books/{id}", h.Delete)
	mux.HandleFunc("PUT /books/{id}/{$}", h.Update)
	mux.HandleFunc("PUT /books/{id}", h.Replace)
}

// Create handles POST /books
func (h *HTTPHandler) Create(w http.ResponseWriter, r *http.Request) {
	var b Book
	if present, err := decodeBody(r, &b); err != nil || !present {
		h.writeBodyError(w, err)
		return
	}

	created, err := h.service.Create(r.Context(), b)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	httpx.JSONSuccessCreated(w, created)
}

// List handles GET /books/
func (h *HTTPHandler) List(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	var q ListQuery
	if query.Has("author") {
		author := query.Get("author")
		q.Author = &author
	}
	if query.Has("limit") {
		limit, err := strconv.Atoi(query.Get("limit"))
		if err != nil {
			writeParamError(w, "limit", "limit must be a valid integer")
			return
		}
		q.Limit = &limit
	}

	books, err := h.service.List(r.Context(), q)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	httpx.JSONSuccess(w, books)
}

// GetByID handles GET /books/{id}
func (h *HTTPHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	b, err := h.service.GetByID(r.Context(), r.PathValue("id"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	httpx.JSONSuccess(w, b)
}

// Search handles GET /books/search/
func (h *HTTPHandler) Search(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	var q SearchQuery
	if query.Has("title") {
		title := query.Get("title")
		q.Title = &title
	}
	if query.Has("author") {
		author := query.Get("author")
		q.Author = &author
	}
	if query.Has("max_price") {
		maxPrice, err := strconv.ParseFloat(query.Get("max_price"), 64)
		if err != nil {
			writeParamError(w, "max_price", "max_price must be a valid number")
			return
		}
		q.MaxPrice = &maxPrice
	}

	books, err := h.service.Search(r.Context(), q)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	httpx.JSONSuccess(w, books)
}

// Delete handles DELETE /books/{id}
func (h *HTTPHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	if err := h.service.Delete(r.Context(), id); err != nil {
		h.writeError(w, r, err)
		return
	}
	httpx.JSONSuccess(w, httpx.MessageResponse{Message: "Book deleted"})
}

// Update handles PUT /books/{id}/ with new_title in the query string and an
// optional author object as the body.
func (h *HTTPHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	req := UpdateRequest{NewTitle: r.URL.Query().Get("new_title")}
	var author Author
	present, err := decodeBody(r, &author)
	if err != nil {
		h.writeBodyError(w, err)
		return
	}
	if present {
		req.Author = &author
	}

	h.update(w, r, id, req)
}

// Replace handles PUT /books/{id}. The body may carry new_title, author and
// a full book; the id in the path always wins.
func (h *HTTPHandler) Replace(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var req UpdateRequest
	if _, err := decodeBody(r, &req); err != nil {
		h.writeBodyError(w, err)
		return
	}
	if title := r.URL.Query().Get("new_title"); title != "" {
		req.NewTitle = title
	}

	h.update(w, r, id, req)
}

func (h *HTTPHandler) update(w http.ResponseWriter, r *http.Request, id int, req UpdateRequest) {
	b, err := h.service.Update(r.Context(), id, req)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	httpx.JSONSuccess(w, b)
}

func (h *HTTPHandler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	var verr *ValidationError
	switch {
	case errors.As(err, &verr):
		details := make([]httpx.ErrorDetail, 0, len(verr.Fields))
		for _, f := range verr.Fields {
			details = append(details, httpx.ErrorDetail{Field: f.Field, Message: f.Message})
		}
		httpx.JSONValidationError(w, details)
	case errors.Is(err, ErrDuplicateID):
		httpx.JSONError(w, http.StatusBadRequest, "Book with this ID already exists")
	case errors.Is(err, ErrInvalidID):
		httpx.JSONError(w, http.StatusBadRequest, "ID must be a number")
	case errors.Is(err, ErrNotFound):
		httpx.JSONError(w, http.StatusNotFound, "Book not found")
	default:
		h.logger.ErrorContext(r.Context(), "book request failed",
			"method", r.Method,
			"path", r.URL.Path,
			"request_id", httpx.RequestIDFrom(r),
			"error", err,
		)
		httpx.JSONError(w, http.StatusInternalServerError, "Internal server error")
	}
}

func (h *HTTPHandler) writeBodyError(w http.ResponseWriter, err error) {
	var tooLarge *http.MaxBytesError
	switch {
	case errors.As(err, &tooLarge):
		httpx.JSONError(w, http.StatusRequestEntityTooLarge, "Request body too large")
	case err == nil:
		writeParamError(w, "body", "body is required")
	default:
		writeParamError(w, "body", err.Error())
	}
}

func writeParamError(w http.ResponseWriter, field, message string) {
	httpx.JSONValidationError(w, []httpx.ErrorDetail{{Field: field, Message: message}})
}

// pathID parses the {id} segment as an integer, writing a 422 on failure.
func pathID(w http.ResponseWriter, r *http.Request) (int, bool) {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		writeParamError(w, "id", "id must be a valid integer")
		return 0, false
	}
	return id, true
}

// decodeBody decodes a JSON body into v. It reports whether a non-empty
// body was present.
func decodeBody(r *http.Request, v any) (bool, error) {
	if r.Body == nil {
		return false, nil
	}
	data, err := io.ReadAll(r.Body)
	if err != nil {
		return false, err
	}
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return false, nil
	}
	if err := json.Unmarshal(data, v); err != nil {
		return false, fmt.Errorf("invalid JSON body: %w", err)
	}
	return true, nil
}
