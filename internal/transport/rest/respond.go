package rest

import (
	"errors"
	"io"
	"net/http"

	"github.com/goccy/go-json"
)

// Error codes of the catalog surface.
const (
	CodeBadRequest   = "BAD_REQUEST"
	CodeUnauthorized = "UNAUTHORIZED"
	CodeForbidden    = "FORBIDDEN"
	CodeNotFound     = "NOT_FOUND"
	CodeMethod       = "METHOD_NOT_ALLOWED"
	CodeRateLimited  = "RATE_LIMITED"
	CodeInternal     = "INTERNAL_ERROR"
)

const maxBodyBytes = 1 << 20

// envelope wraps catalog surface (/api/v1) success responses.
type envelope struct {
	Success bool `json:"success"`
	Data    any  `json:"data"`
	Meta    any  `json:"meta,omitempty"`
}

type errorEnvelope struct {
	Success bool     `json:"success"`
	Error   apiError `json:"error"`
}

type apiError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}

// writeError writes the accounts surface error body {"error": message}.
func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}

func writeSuccess(w http.ResponseWriter, data, meta any) {
	writeJSON(w, http.StatusOK, envelope{Success: true, Data: data, Meta: meta})
}

func writeEnvelopeError(w http.ResponseWriter, status int, code, message string, details any) {
	writeJSON(w, status, errorEnvelope{
		Error: apiError{Code: code, Message: message, Details: details},
	})
}

// PlainError is a middleware.ErrorResponder for the accounts surface.
func PlainError(w http.ResponseWriter, _ *http.Request, status int, _ string, message string) {
	writeError(w, status, message)
}

// EnvelopeError is a middleware.ErrorResponder for the catalog surface.
func EnvelopeError(w http.ResponseWriter, _ *http.Request, status int, code, message string) {
	writeEnvelopeError(w, status, code, message, nil)
}

var errEmptyBody = errors.New("request body is empty")

// decodeJSON reads a single JSON object from the request body.
func decodeJSON(w http.ResponseWriter, r *http.Request, v any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		if errors.Is(err, io.EOF) {
			return errEmptyBody
		}
		return err
	}
	return nil
}
