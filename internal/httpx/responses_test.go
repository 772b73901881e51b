package httpx

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"bookcatalog/internal/apperr"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJSONSuccess(t *testing.T) {
	w := httptest.NewRecorder()

	JSONSuccess(w, map[string]any{"id": 1, "name": "Machado de Assis"})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"id":1,"name":"Machado de Assis"}`, w.Body.String())
}

func TestJSONError(t *testing.T) {
	w := httptest.NewRecorder()

	JSONError(w, http.StatusBadRequest, CodeValidation, "name is required", []ErrorDetail{{Field: "name", Message: "name is required"}})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	var resp ErrorResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.Equal(t, CodeValidation, resp.Code)
	assert.Equal(t, "name is required", resp.Message)
	assert.Len(t, resp.Details, 1)
}

func TestWriteError(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantStatus  int
		wantCode    string
		wantMessage string
	}{
		{
			name:        "duplicate",
			err:         fmt.Errorf("insert: %w", apperr.New(apperr.KindDuplicate, "title taken")),
			wantStatus:  http.StatusConflict,
			wantCode:    CodeDuplicate,
			wantMessage: "title taken",
		},
		{
			name:        "validation",
			err:         apperr.New(apperr.KindValidation, "publisher not found"),
			wantStatus:  http.StatusBadRequest,
			wantCode:    CodeValidation,
			wantMessage: "publisher not found",
		},
		{
			name:        "not found",
			err:         apperr.New(apperr.KindNotFound, "book not found"),
			wantStatus:  http.StatusNotFound,
			wantCode:    CodeNotFound,
			wantMessage: "book not found",
		},
		{
			name:        "unexpected hides cause",
			err:         errors.New("pq: connection refused"),
			wantStatus:  http.StatusInternalServerError,
			wantCode:    CodeInternal,
			wantMessage: "something went wrong",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()

			WriteError(w, tt.err, "something went wrong")

			assert.Equal(t, tt.wantStatus, w.Code)
			var resp ErrorResponse
			require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
			assert.Equal(t, tt.wantCode, resp.Code)
			assert.Equal(t, tt.wantMessage, resp.Message)
		})
	}
}
