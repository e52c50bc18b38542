package oauth2client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/oauth2/token", r.URL.Path)

		user, pass, ok := r.BasicAuth()
		assert.True(t, ok)
		assert.Equal(t, "client-msg", user)
		assert.Equal(t, "123456", pass)

		assert.NoError(t, r.ParseForm())
		assert.Equal(t, "admin", r.PostForm.Get("username"))
		assert.Equal(t, "123456", r.PostForm.Get("password"))
		assert.Equal(t, GrantType, r.PostForm.Get("grant_type"))

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"access_token":  "at",
			"refresh_token": "rt",
			"scope":         "openid",
			"id_token":      "idt",
			"token_type":    "Bearer",
			"expires_in":    300,
		})
	}))
	defer srv.Close()

	c := New(srv.URL+"/oauth2/token", "client-msg", "123456", WithHTTPClient(srv.Client()))
	tr, err := c.RequestToken(context.Background(), "admin", "123456")
	require.NoError(t, err)
	assert.Equal(t, "at", tr.AccessToken)
	assert.Equal(t, "rt", tr.RefreshToken)
	assert.Equal(t, "idt", tr.IDToken)
	assert.EqualValues(t, 300, tr.ExpiresIn)
}

func TestRequestTokenErrors(t *testing.T) {
	_, err := New("", "a", "b").RequestToken(context.Background(), "u", "p")
	assert.ErrorIs(t, err, ErrMissingEndpoint)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, `{"error":"invalid_grant"}`, http.StatusBadRequest)
	}))
	defer srv.Close()

	_, err = New(srv.URL, "a", "b").RequestToken(context.Background(), "u", "p")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 400")

	empty := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"token_type":"Bearer"}`))
	}))
	defer empty.Close()
	_, err = New(empty.URL, "a", "b").RequestToken(context.Background(), "u", "p")
	assert.ErrorContains(t, err, "no access_token")
}
