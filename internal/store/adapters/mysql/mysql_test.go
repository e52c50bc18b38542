package mysql_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dropDatabas3/rbac-admin/internal/store"
	"github.com/dropDatabas3/rbac-admin/internal/store/adapters/mysql"
)

func TestMySQLAdapterRegistered(t *testing.T) {
	adapter, ok := store.GetAdapter("mysql")
	require.True(t, ok, "MySQL adapter not registered")
	assert.Equal(t, "mysql", adapter.Name())
}

func TestNormalizeDSNForcesParseTime(t *testing.T) {
	out, err := mysql.NormalizeDSN("root:pw@tcp(127.0.0.1:3306)/admin")
	require.NoError(t, err)
	assert.True(t, strings.Contains(out, "parseTime=true"), out)
}

func TestNormalizeDSNRejectsGarbage(t *testing.T) {
	_, err := mysql.NormalizeDSN("root:pw@tcp(127.0.0.1:3306")
	assert.Error(t, err)
}
