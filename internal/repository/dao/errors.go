package dao

import (
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"
	"gorm.io/gorm"
)

var (
	ErrUsernameExists   = errors.New("username already exists")
	ErrAccountNotFound  = errors.New("account not found")
	ErrChildNotFound    = errors.New("child not found")
	ErrVaccineNotFound  = errors.New("vaccine not found")
	ErrHospitalNotFound = errors.New("hospital not found")
	ErrRecordNotFound   = errors.New("vaccine record not found")
	ErrPaymentNotFound  = errors.New("payment not found")
	ErrPaymentExists    = errors.New("payment already made")
)

// isUniqueViolation reports whether err comes from a unique constraint on
// either of the supported stores.
func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
		return true
	}

	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) &&
		(sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique || sqliteErr.ExtendedCode == sqlite3.ErrConstraintPrimaryKey) {
		return true
	}

	return false
}

func notFound(err error, sentinel error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return sentinel
	}

	return err
}
