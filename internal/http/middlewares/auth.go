package middlewares

import (
	"net/http"
	"strings"

	httperrors "github.com/dropDatabas3/rbac-admin/internal/http/errors"
	authsvc "github.com/dropDatabas3/rbac-admin/internal/http/services/auth"
	"github.com/dropDatabas3/rbac-admin/internal/jwt"
)

// RequireAuth valida Authorization: Bearer <JWT> y guarda las claims en el
// contexto. Sin header responde 400; token malformado o inválido, 401.
// Los paths de public pasan sin validar.
func RequireAuth(issuer *jwt.Issuer, public ...string) Middleware {
	skip := make(map[string]struct{}, len(public))
	for _, p := range public {
		skip[p] = struct{}{}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if _, ok := skip[r.URL.Path]; ok || r.Method == http.MethodOptions {
				next.ServeHTTP(w, r)
				return
			}

			ah := strings.TrimSpace(r.Header.Get("Authorization"))
			if ah == "" {
				httperrors.WriteError(w, httperrors.ErrTokenMissing)
				return
			}
			raw, err := authsvc.BearerToken(ah)
			if err != nil {
				w.Header().Set("WWW-Authenticate", `Bearer error="invalid_token"`)
				httperrors.WriteError(w, httperrors.ErrMalformedToken)
				return
			}

			claims, err := issuer.Verify(raw)
			if err != nil {
				w.Header().Set("WWW-Authenticate", `Bearer error="invalid_token"`)
				httperrors.WriteError(w, httperrors.ErrTokenInvalid)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithClaims(r.Context(), claims)))
		})
	}
}
