package database

import (
	"errors"

	"github.com/go-sql-driver/mysql"
	"gorm.io/gorm"
)

// mysqlDuplicateEntry is the MySQL error number behind SQLSTATE 23000.
const mysqlDuplicateEntry = 1062

// IsDuplicateKeyErr reports whether err is a unique-constraint
// violation. TranslateError covers most drivers; the raw MySQL error
// number is checked as a fallback for paths GORM does not translate.
func IsDuplicateKeyErr(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var mysqlErr *mysql.MySQLError
	return errors.As(err, &mysqlErr) && mysqlErr.Number == mysqlDuplicateEntry
}
