// Package dal importa todos los adapters para auto-registro.
//
//	import _ "github.com/dropDatabas3/rbac-admin/internal/store/adapters/dal"
package dal

import (
	_ "github.com/dropDatabas3/rbac-admin/internal/store/adapters/mysql"
	_ "github.com/dropDatabas3/rbac-admin/internal/store/adapters/postgres"
	_ "github.com/dropDatabas3/rbac-admin/internal/store/adapters/sqlite"
)
