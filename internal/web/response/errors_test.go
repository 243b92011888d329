package response

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeErrors(t *testing.T, rec *httptest.ResponseRecorder) []ErrorObject {
	t.Helper()
	assert.Equal(t, JSONAPIMediaType, rec.Header().Get("Content-Type"))

	var doc ErrorDocument
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &doc))
	return doc.Errors
}

func TestRenderHelpers(t *testing.T) {
	tests := []struct {
		name   string
		render func(http.ResponseWriter)
		status int
		code   string
		detail string
	}{
		{
			name:   "bad request",
			render: func(w http.ResponseWriter) { RenderBadRequest(w, "invalid body") },
			status: http.StatusBadRequest,
			code:   "bad_request",
			detail: "invalid body",
		},
		{
			name:   "not found default message",
			render: func(w http.ResponseWriter) { RenderNotFound(w, "") },
			status: http.StatusNotFound,
			code:   "not_found",
			detail: "Resource not found",
		},
		{
			name:   "unprocessable",
			render: func(w http.ResponseWriter) { RenderUnprocessableEntity(w, "no site") },
			status: http.StatusUnprocessableEntity,
			code:   "unprocessable_entity",
			detail: "no site",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			tt.render(rec)

			assert.Equal(t, tt.status, rec.Code)
			errs := decodeErrors(t, rec)
			require.Len(t, errs, 1)
			assert.Equal(t, fmt.Sprint(tt.status), errs[0].Status)
			assert.Equal(t, tt.code, errs[0].Code)
			assert.Equal(t, http.StatusText(tt.status), errs[0].Title)
			assert.Equal(t, tt.detail, errs[0].Detail)
		})
	}
}

func TestRenderErrorKeepsHTTPError(t *testing.T) {
	cause := errors.New("boom")
	httpErr := NewHTTPError(http.StatusNotFound, "item not found").
		WithCode("item_not_found").
		WithParameter("item").
		Wrap(cause)

	rec := httptest.NewRecorder()
	RenderError(rec, http.StatusInternalServerError, fmt.Errorf("handler: %w", httpErr))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	errs := decodeErrors(t, rec)
	require.Len(t, errs, 1)
	assert.Equal(t, "item_not_found", errs[0].Code)
	assert.Equal(t, "item not found: boom", errs[0].Detail)
	require.NotNil(t, errs[0].Source)
	assert.Equal(t, "item", errs[0].Source.Parameter)
	assert.ErrorIs(t, httpErr, cause)
}

func TestRenderErrorPlain(t *testing.T) {
	rec := httptest.NewRecorder()
	RenderError(rec, http.StatusInternalServerError, errors.New("unexpected"))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	errs := decodeErrors(t, rec)
	require.Len(t, errs, 1)
	assert.Equal(t, "internal_error", errs[0].Code)
	assert.Nil(t, errs[0].Source)
}

func TestRenderJSON(t *testing.T) {
	rec := httptest.NewRecorder()
	RenderJSON(rec, http.StatusOK, map[string]string{"status": "ok"})

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, JSONMediaType, rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestRenderJSONMarshalFailure(t *testing.T) {
	rec := httptest.NewRecorder()
	RenderJSON(rec, http.StatusOK, map[string]interface{}{"bad": make(chan int)})

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "Internal Server Error", rec.Body.String())
}
