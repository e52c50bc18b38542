package helpers

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	httperrors "github.com/dropDatabas3/rbac-admin/internal/http/errors"
)

// PathID lee un parámetro entero positivo de la ruta chi.
// Devuelve false si ya escribió el error HTTP.
func PathID(w http.ResponseWriter, r *http.Request, name string) (int64, bool) {
	raw := chi.URLParam(r, name)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		httperrors.WriteError(w, httperrors.ErrInvalidParameter.WithDetail(name))
		return 0, false
	}
	return id, true
}
