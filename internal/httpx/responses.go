package httpx

import (
	"encoding/json"
	"net/http"
)

// ValidationMessage is the error text sent with every 422 response.
const ValidationMessage = "Invalid input. Please check your request data."

// ErrorResponse is the envelope written for every non-2xx response.
type ErrorResponse struct {
	Error   string        `json:"error"`
	Details []ErrorDetail `json:"details,omitempty"`
}

type ErrorDetail struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// MessageResponse is a plain confirmation body.
type MessageResponse struct {
	Message string `json:"message"`
}

func WriteJSON(w http.ResponseWriter, statusCode int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(v)
}

func JSONSuccess(w http.ResponseWriter, data interface{}) {
	WriteJSON(w, http.StatusOK, data)
}

func JSONSuccessCreated(w http.ResponseWriter, data interface{}) {
	WriteJSON(w, http.StatusCreated, data)
}

func JSONError(w http.ResponseWriter, statusCode int, message string) {
	WriteJSON(w, statusCode, ErrorResponse{Error: message})
}

// JSONValidationError writes a 422 envelope carrying field-level details.
func JSONValidationError(w http.ResponseWriter, details []ErrorDetail) {
	WriteJSON(w, http.StatusUnprocessableEntity, ErrorResponse{
		Error:   ValidationMessage,
		Details: details,
	})
}
