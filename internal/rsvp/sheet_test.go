package rsvp

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSheetStoreAppend(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		assert.Equal(t, "abc", q.Get("deployment"))
		assert.Equal(t, "Ana López", q.Get("nombre"))
		assert.Equal(t, "si", q.Get("asistencia"))
		assert.Equal(t, "0", q.Get("invitados"))
		assert.Empty(t, q.Get("action"))
		_, _ = w.Write([]byte(`{"status":"success","message":"Respuesta guardada correctamente","row":7}`))
	}))
	defer srv.Close()

	store := NewSheetStore(srv.Client(), srv.URL+"/exec?deployment=abc")
	row, err := store.Append(context.Background(), Submission{Nombre: "Ana López", Asistencia: "si", Invitados: "0"})

	require.NoError(t, err)
	assert.Equal(t, int64(7), row)
}

func TestSheetStoreRejected(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"status":"error","message":"Faltan datos requeridos"}`))
	}))
	defer srv.Close()

	_, err := NewSheetStore(srv.Client(), srv.URL).Append(context.Background(), Submission{Nombre: "Ana"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "Faltan datos requeridos")
}

func TestSheetStoreHTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	_, err := NewSheetStore(srv.Client(), srv.URL).Append(context.Background(), Submission{})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "500")
}

func TestSheetStoreUnconfigured(t *testing.T) {
	store := NewSheetStore(http.DefaultClient, "")

	_, err := store.Append(context.Background(), Submission{})
	assert.Error(t, err)

	_, err = store.List(context.Background())
	assert.ErrorIs(t, err, ErrListUnsupported)
}
