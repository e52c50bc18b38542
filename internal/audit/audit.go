// Package audit escribe eventos de auditoría en el logger "audit".
package audit

import (
	"context"

	"go.uber.org/zap"

	"github.com/dropDatabas3/rbac-admin/internal/observability/logger"
)

// Eventos conocidos.
const (
	EventSignIn         = "auth.signin"
	EventSignOut        = "auth.signout"
	EventPasswordChange = "user.password_change"
	EventUserDelete     = "user.delete"
	EventRoleDelete     = "role.delete"
	EventPermAssign     = "permission.assign"
)

// Log writes a structured audit event, tagged with the request id of ctx.
func Log(ctx context.Context, event string, fields ...zap.Field) {
	fields = append(fields, logger.String("event", event))
	logger.From(ctx).Named("audit").Info("audit", fields...)
}
