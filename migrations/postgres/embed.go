// Package postgres embebe las migraciones SQL de PostgreSQL.
package postgres

import "embed"

// FS contiene los archivos NNNN_nombre_up.sql.
//
//go:embed *_up.sql
var FS embed.FS
