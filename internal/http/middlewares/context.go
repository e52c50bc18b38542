package middlewares

import (
	"context"

	"github.com/dropDatabas3/rbac-admin/internal/jwt"
)

type ctxKey int

const (
	ctxRequestID ctxKey = iota
	ctxClaims
)

func setRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, ctxRequestID, id)
}

// GetRequestID devuelve el request id o "".
func GetRequestID(ctx context.Context) string {
	s, _ := ctx.Value(ctxRequestID).(string)
	return s
}

func WithClaims(ctx context.Context, c *jwt.Claims) context.Context {
	return context.WithValue(ctx, ctxClaims, c)
}

// GetClaims devuelve las claims validadas por RequireAuth, o nil.
func GetClaims(ctx context.Context) *jwt.Claims {
	c, _ := ctx.Value(ctxClaims).(*jwt.Claims)
	return c
}
