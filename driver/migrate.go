package driver

import (
	"database/sql"
	"embed"

	"github.com/golang-migrate/migrate/v4"
	migratemysql "github.com/golang-migrate/migrate/v4/database/mysql"
	"github.com/golang-migrate/migrate/v4/database/sqlite3"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/pkg/errors"
)

//go:embed migrations/*.sql
var migrations embed.FS

// Dialects accepted by Migrate.
const (
	MySQL  = "mysql"
	SQLite = "sqlite3"
)

// Migrate brings the registration schema up to date on db.
func Migrate(db *sql.DB, dialect string) error {
	src, err := iofs.New(migrations, "migrations")
	if err != nil {
		return errors.Wrap(err, "read migrations")
	}

	var m *migrate.Migrate
	switch dialect {
	case MySQL:
		drv, err := migratemysql.WithInstance(db, &migratemysql.Config{})
		if err != nil {
			return errors.Wrap(err, "mysql migration driver")
		}
		m, err = migrate.NewWithInstance("iofs", src, MySQL, drv)
		if err != nil {
			return errors.Wrap(err, "init migrations")
		}
	case SQLite:
		drv, err := sqlite3.WithInstance(db, &sqlite3.Config{})
		if err != nil {
			return errors.Wrap(err, "sqlite migration driver")
		}
		m, err = migrate.NewWithInstance("iofs", src, SQLite, drv)
		if err != nil {
			return errors.Wrap(err, "init migrations")
		}
	default:
		return errors.Errorf("unsupported dialect %q", dialect)
	}

	// m.Close would close db as well; the caller owns it.
	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return errors.Wrap(err, "apply migrations")
	}
	return nil
}
