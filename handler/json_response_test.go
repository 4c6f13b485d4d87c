package handler_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/storytime/storygen/handler"
)

func TestJSON(t *testing.T) {
	t.Parallel()

	t.Run("raw body", func(t *testing.T) {
		t.Parallel()
		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/", nil)

		err := handler.JSON(map[string]string{"id": "123", "name": "test"}).Render(w, r)
		require.NoError(t, err)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "application/json; charset=utf-8", w.Header().Get("Content-Type"))
		assert.JSONEq(t, `{"id":"123","name":"test"}`, w.Body.String())
	})

	t.Run("custom status", func(t *testing.T) {
		t.Parallel()
		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/", nil)

		err := handler.JSON(map[string]int{"n": 1}, handler.WithJSONStatus(http.StatusCreated)).Render(w, r)
		require.NoError(t, err)
		assert.Equal(t, http.StatusCreated, w.Code)
	})

	t.Run("nil body", func(t *testing.T) {
		t.Parallel()
		w := httptest.NewRecorder()
		require.NoError(t, handler.JSON(nil).Render(w, httptest.NewRequest(http.MethodGet, "/", nil)))
		assert.Equal(t, "null\n", w.Body.String())
	})
}

func TestJSONError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		err        error
		opts       []handler.JSONOption
		wantStatus int
		wantBody   string
	}{
		{
			name:       "http error",
			err:        handler.ErrNotFound,
			wantStatus: http.StatusNotFound,
			wantBody:   `{"error":{"code":"not_found","message":"Not Found"}}`,
		},
		{
			name:       "wrapped http error",
			err:        errors.Join(errors.New("route lookup"), handler.ErrMethodNotAllowed),
			wantStatus: http.StatusMethodNotAllowed,
			wantBody:   `{"error":{"code":"method_not_allowed","message":"Method Not Allowed"}}`,
		},
		{
			name:       "plain error hides details",
			err:        errors.New("pq: password authentication failed"),
			wantStatus: http.StatusInternalServerError,
			wantBody:   `{"error":{"code":"internal_server_error","message":"Internal Server Error"}}`,
		},
		{
			name:       "status override",
			err:        handler.ErrBadRequest,
			opts:       []handler.JSONOption{handler.WithJSONStatus(http.StatusUnprocessableEntity)},
			wantStatus: http.StatusUnprocessableEntity,
			wantBody:   `{"error":{"code":"bad_request","message":"Bad Request"}}`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			w := httptest.NewRecorder()
			err := handler.JSONError(tt.err, tt.opts...).Render(w, httptest.NewRequest(http.MethodGet, "/", nil))
			require.NoError(t, err)
			assert.Equal(t, tt.wantStatus, w.Code)
			assert.JSONEq(t, tt.wantBody, w.Body.String())
		})
	}
}
