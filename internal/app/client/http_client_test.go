package client

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"

	"shipyard/internal/domain/vessel"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func barcoA() vessel.Vessel {
	return vessel.Vessel{ID: 1, Name: "Barco A", Capacity: 10, Description: "x", ScheduledDate: vessel.NewDate(2024, 1, 1)}
}

func TestHTTPClient_List(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/embarcaciones", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `[{"id":1,"nombre":"Barco A","capacidad":10,"descripcion":"x","fechaProgramada":"2024-01-01"}]`)
	}))
	defer srv.Close()

	c := NewHTTPClient(srv.URL, time.Second, discardLogger())
	got, err := c.List(context.Background())

	require.NoError(t, err)
	assert.Equal(t, []vessel.Vessel{barcoA()}, got)
}

func TestHTTPClient_ListNullBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `null`)
	}))
	defer srv.Close()

	got, err := NewHTTPClient(srv.URL, time.Second, discardLogger()).List(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestHTTPClient_Create(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/embarcaciones", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var body map[string]interface{}
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, map[string]interface{}{
			"nombre":          "Barco A",
			"capacidad":       10.0,
			"descripcion":     "x",
			"fechaProgramada": "2024-01-01",
		}, body)

		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(barcoA())
	}))
	defer srv.Close()

	c := NewHTTPClient(srv.URL, time.Second, discardLogger())
	got, err := c.Create(context.Background(), barcoA().Input())

	require.NoError(t, err)
	assert.Equal(t, barcoA(), *got)
}

func TestHTTPClient_UpdateAndDelete(t *testing.T) {
	var calls []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls = append(calls, r.Method+" "+r.URL.Path)
		switch r.Method {
		case http.MethodPut:
			updated := barcoA()
			updated.Name = "Barco B"
			_ = json.NewEncoder(w).Encode(updated)
		case http.MethodDelete:
			w.WriteHeader(http.StatusNoContent)
		}
	}))
	defer srv.Close()

	c := NewHTTPClient(srv.URL, time.Second, discardLogger())
	ctx := context.Background()

	in := barcoA().Input()
	in.Name = "Barco B"
	got, err := c.Update(ctx, 1, in)
	require.NoError(t, err)
	assert.Equal(t, "Barco B", got.Name)

	require.NoError(t, c.Delete(ctx, 1))
	assert.Equal(t, []string{"PUT /api/embarcaciones/1", "DELETE /api/embarcaciones/1"}, calls)
}

func TestHTTPClient_StatusErrors(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		message string
	}{
		{name: "problem json", status: http.StatusNotFound, body: `{"title":"Not Found","status":404,"detail":"embarcación no encontrada"}`, message: "embarcación no encontrada"},
		{name: "legacy error", status: http.StatusBadRequest, body: `{"error":"bad"}`, message: "bad"},
		{name: "plain 500", status: http.StatusInternalServerError, body: `oops`, message: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = io.WriteString(w, tt.body)
			}))
			defer srv.Close()

			err := NewHTTPClient(srv.URL, time.Second, discardLogger()).Delete(context.Background(), 9)

			require.Error(t, err)
			assert.ErrorIs(t, err, ErrServer)
			var se *StatusError
			require.ErrorAs(t, err, &se)
			assert.Equal(t, tt.status, se.Code)
			assert.Equal(t, tt.message, se.Message)
		})
	}
}

func TestHTTPClient_TransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	_, err := NewHTTPClient(url, time.Second, discardLogger()).List(context.Background())
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrServer)
}

func TestHTTPClient_MalformedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `{"id":`)
	}))
	defer srv.Close()

	_, err := NewHTTPClient(srv.URL, time.Second, discardLogger()).List(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ошибка парсинга ответа")
}
