package response

import (
	"errors"
	"net/http"
	"strconv"
)

// ErrorObject is a JSON:API error object
type ErrorObject struct {
	Status string                 `json:"status"`
	Code   string                 `json:"code"`
	Title  string                 `json:"title"`
	Detail string                 `json:"detail,omitempty"`
	Source *ErrorSource           `json:"source,omitempty"`
	Meta   map[string]interface{} `json:"meta,omitempty"`
}

// ErrorSource points at the request member that caused the error
type ErrorSource struct {
	Pointer   string `json:"pointer,omitempty"`
	Parameter string `json:"parameter,omitempty"`
}

// ErrorDocument is the top-level JSON:API document of an error response
type ErrorDocument struct {
	Errors []ErrorObject `json:"errors"`
}

// HTTPError is an error that knows its response status
type HTTPError struct {
	StatusCode int
	Code       string
	Message    string
	Parameter  string
	Err        error
}

// NewHTTPError creates an HTTP error with the default code of the status
func NewHTTPError(statusCode int, message string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Code:       errorCodeFromStatus(statusCode),
		Message:    message,
	}
}

// Error implements the error interface
func (e *HTTPError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap exposes the cause to errors.Is and errors.As
func (e *HTTPError) Unwrap() error {
	return e.Err
}

// WithCode sets a custom error code
func (e *HTTPError) WithCode(code string) *HTTPError {
	e.Code = code
	return e
}

// WithParameter names the query parameter at fault
func (e *HTTPError) WithParameter(name string) *HTTPError {
	e.Parameter = name
	return e
}

// Wrap attaches the underlying cause
func (e *HTTPError) Wrap(err error) *HTTPError {
	e.Err = err
	return e
}

// Object converts the error to its JSON:API representation
func (e *HTTPError) Object() ErrorObject {
	obj := ErrorObject{
		Status: strconv.Itoa(e.StatusCode),
		Code:   e.Code,
		Title:  http.StatusText(e.StatusCode),
		Detail: e.Error(),
	}
	if e.Parameter != "" {
		obj.Source = &ErrorSource{Parameter: e.Parameter}
	}
	return obj
}

// Render writes the error as a JSON:API error document
func (e *HTTPError) Render(w http.ResponseWriter) {
	renderJSON(w, e.StatusCode, JSONAPIMediaType, ErrorDocument{Errors: []ErrorObject{e.Object()}})
}

// RenderError renders err with the given status. An *HTTPError found in the
// chain keeps its own status and code.
func RenderError(w http.ResponseWriter, statusCode int, err error) {
	var httpErr *HTTPError
	if errors.As(err, &httpErr) {
		httpErr.Render(w)
		return
	}
	NewHTTPError(statusCode, err.Error()).Render(w)
}

// RenderBadRequest renders a 400 Bad Request error
func RenderBadRequest(w http.ResponseWriter, message string) {
	NewHTTPError(http.StatusBadRequest, message).Render(w)
}

// RenderNotFound renders a 404 Not Found error
func RenderNotFound(w http.ResponseWriter, message string) {
	if message == "" {
		message = "Resource not found"
	}
	NewHTTPError(http.StatusNotFound, message).Render(w)
}

// RenderUnprocessableEntity renders a 422 Unprocessable Entity error
func RenderUnprocessableEntity(w http.ResponseWriter, message string) {
	NewHTTPError(http.StatusUnprocessableEntity, message).Render(w)
}

// errorCodeFromStatus maps HTTP status codes to error codes
func errorCodeFromStatus(status int) string {
	switch status {
	case http.StatusBadRequest:
		return "bad_request"
	case http.StatusNotFound:
		return "not_found"
	case http.StatusMethodNotAllowed:
		return "method_not_allowed"
	case http.StatusRequestEntityTooLarge:
		return "request_too_large"
	case http.StatusUnsupportedMediaType:
		return "unsupported_media_type"
	case http.StatusUnprocessableEntity:
		return "unprocessable_entity"
	case http.StatusInternalServerError:
		return "internal_error"
	default:
		return "error"
	}
}
