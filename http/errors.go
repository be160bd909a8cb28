package httpapi

import (
	"fmt"
	"net/http"

	"github.com/go-chi/render"
)

// APIError is the JSON error envelope every handler returns.
type APIError struct {
	StatusCode int    `json:"status_code"`
	ErrorCode  string `json:"error_code"`
	Message    string `json:"message"`
	Details    any    `json:"details,omitempty"`
}

func (e *APIError) Error() string { return e.Message }

// Render implements render.Renderer.
func (e *APIError) Render(w http.ResponseWriter, r *http.Request) error {
	render.Status(r, e.StatusCode)
	return nil
}

func invalidRequest(err error) *APIError {
	return &APIError{StatusCode: http.StatusBadRequest, ErrorCode: "INVALID_REQUEST", Message: "Invalid request format", Details: err.Error()}
}

func invalidParameter(name, value string) *APIError {
	return &APIError{
		StatusCode: http.StatusBadRequest,
		ErrorCode:  "INVALID_PARAMETER",
		Message:    fmt.Sprintf("Invalid value for %s", name),
		Details:    map[string]string{"parameter": name, "value": value},
	}
}

func internalError(err error) *APIError {
	return &APIError{StatusCode: http.StatusInternalServerError, ErrorCode: "INTERNAL_SERVER_ERROR", Message: "Internal server error", Details: err.Error()}
}

func writeError(w http.ResponseWriter, r *http.Request, e *APIError) {
	_ = render.Render(w, r, e)
}
