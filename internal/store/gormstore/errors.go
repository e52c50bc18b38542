package gormstore

import (
	"errors"
	"fmt"

	"github.com/go-sql-driver/mysql"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"
	"gorm.io/gorm"

	"github.com/dropDatabas3/rbac-admin/internal/domain/repository"
)

const (
	mysqlDuplicateEntry uint16 = 1062
	pgUniqueViolation          = "23505"
)

// translate maps driver errors onto the repository sentinels.
// op prefixes the message, e.g. "user.create".
func translate(op string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("%s: %w", op, repository.ErrNotFound)
	}
	if isDuplicate(err) {
		return fmt.Errorf("%s: %w: %v", op, repository.ErrConflict, err)
	}
	return fmt.Errorf("%s: %w: %v", op, repository.ErrDatabase, err)
}

func isDuplicate(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var me *mysql.MySQLError
	if errors.As(err, &me) && me.Number == mysqlDuplicateEntry {
		return true
	}
	var pe *pgconn.PgError
	if errors.As(err, &pe) && pe.Code == pgUniqueViolation {
		return true
	}
	var se sqlite3.Error
	if errors.As(err, &se) && (se.ExtendedCode == sqlite3.ErrConstraintUnique || se.ExtendedCode == sqlite3.ErrConstraintPrimaryKey) {
		return true
	}
	return false
}
