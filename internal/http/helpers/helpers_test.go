package helpers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadJSON(t *testing.T) {
	var v struct{ Name string }

	r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":"a","extra":1}`))
	r.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	require.True(t, ReadJSON(w, r, &v))
	assert.Equal(t, "a", v.Name)

	r = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{`))
	w = httptest.NewRecorder()
	assert.False(t, ReadJSON(w, r, &v))
	assert.Equal(t, http.StatusBadRequest, w.Code)

	big := `{"name":"` + strings.Repeat("x", MaxBodyBytes) + `"}`
	r = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(big))
	w = httptest.NewRecorder()
	assert.False(t, ReadJSON(w, r, &v))
	assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
}

func TestOK_Envelope(t *testing.T) {
	w := httptest.NewRecorder()
	OK(w, "tok")
	var env map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	assert.EqualValues(t, 200, env["code"])
	assert.Equal(t, "success", env["msg"])
	assert.Equal(t, "tok", env["data"])

	w = httptest.NewRecorder()
	OK(w, nil)
	assert.NotContains(t, w.Body.String(), "data")
}

func TestPathID(t *testing.T) {
	rt := chi.NewRouter()
	var got int64
	rt.Get("/x/{id}", func(w http.ResponseWriter, r *http.Request) {
		if id, ok := PathID(w, r, "id"); ok {
			got = id
			OK(w, nil)
		}
	})

	w := httptest.NewRecorder()
	rt.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/x/42", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.EqualValues(t, 42, got)

	w = httptest.NewRecorder()
	rt.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/x/abc", nil))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
