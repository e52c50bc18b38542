package errors

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dropDatabas3/rbac-admin/internal/domain/repository"
	"github.com/dropDatabas3/rbac-admin/internal/jwt"
	"github.com/dropDatabas3/rbac-admin/internal/security/password"
)

func TestFromError_StatusMapping(t *testing.T) {
	cases := []struct {
		err    error
		status int
	}{
		{fmt.Errorf("x: %w", repository.ErrInvalidInput), http.StatusBadRequest},
		{fmt.Errorf("x: %w", repository.ErrNotFound), http.StatusNotFound},
		{fmt.Errorf("x: %w", repository.ErrConflict), http.StatusConflict},
		{fmt.Errorf("x: %w", jwt.ErrInvalidToken), http.StatusUnauthorized},
		{fmt.Errorf("x: %w", jwt.ErrSigning), http.StatusInternalServerError},
		{fmt.Errorf("x: %w", password.ErrHashing), http.StatusInternalServerError},
		{fmt.Errorf("x: %w", repository.ErrDatabase), http.StatusInternalServerError},
		{ErrTokenMissing, http.StatusBadRequest},
	}
	for _, c := range cases {
		assert.Equal(t, c.status, FromError(c.err).HTTPStatus, c.err.Error())
	}
}

func TestWriteError_Envelope(t *testing.T) {
	rec := httptest.NewRecorder()
	WriteError(rec, ErrNotFound.WithDetail("user 9"))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.EqualValues(t, 400, body["code"])
	assert.Equal(t, "resource not found: user 9", body["msg"])
	_, hasData := body["data"]
	assert.False(t, hasData)
}

func TestWithDetailDoesNotMutateBase(t *testing.T) {
	_ = ErrBadRequest.WithDetail("x")
	assert.Empty(t, ErrBadRequest.Detail)
}
