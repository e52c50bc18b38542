// Package mysql embebe las migraciones SQL de MySQL.
package mysql

import "embed"

// FS contiene los archivos NNNN_nombre_up.sql.
//
//go:embed *_up.sql
var FS embed.FS
