package handler

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"sync"

	"github.com/osse101/Stockroom_Go/internal/domain"
)

// Standard response types for consistent API responses

// SuccessResponse carries a success notice, optionally with the affected item
type SuccessResponse struct {
	Message string       `json:"message"`
	Item    *domain.Item `json:"item,omitempty"`
}

// ErrorResponse represents a generic error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// ValidationFailureResponse reports every failed field together with the
// original input so the caller can re-render the form as submitted
type ValidationFailureResponse struct {
	Errors domain.FieldErrors `json:"errors"`
	Input  interface{}        `json:"input"`
}

// bufferPool reduces allocations during JSON encoding
var bufferPool = sync.Pool{
	New: func() interface{} {
		return bytes.NewBuffer(make([]byte, 0, 512))
	},
}

// respondJSON sends a JSON response with the given status code and payload
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	buf := bufferPool.Get().(*bytes.Buffer)
	defer func() {
		buf.Reset()
		bufferPool.Put(buf)
	}()

	if err := json.NewEncoder(buf).Encode(payload); err != nil {
		slog.Error("Failed to encode JSON response", "error", err)
		return
	}

	if _, err := buf.WriteTo(w); err != nil {
		slog.Error("Failed to write response buffer", "error", err)
	}
}

// respondError sends a JSON error response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, ErrorResponse{Error: message})
}

// respondFieldErrors reports a validation failure with the original input
// preserved for correction
func respondFieldErrors(w http.ResponseWriter, fieldErrors domain.FieldErrors, input interface{}) {
	respondJSON(w, http.StatusUnprocessableEntity, ValidationFailureResponse{
		Errors: fieldErrors,
		Input:  input,
	})
}
