package driver

import (
	"context"
	"database/sql"
	"net"
	"strconv"
	"time"

	"github.com/go-sql-driver/mysql"
	"github.com/pkg/errors"

	"techlympics-stats/config"
)

// DSN renders the MySQL data source name for cfg. An explicit DB_DSN is
// parsed and kept, but always gets parseTime and multiStatements since the
// migrations need the latter.
func DSN(cfg config.DB) (string, error) {
	mc := mysql.NewConfig()
	if cfg.DSN != "" {
		parsed, err := mysql.ParseDSN(cfg.DSN)
		if err != nil {
			return "", errors.Wrap(err, "parse DB_DSN")
		}
		mc = parsed
	} else {
		mc.User = cfg.User
		mc.Passwd = cfg.Password
		mc.Net = "tcp"
		mc.Addr = net.JoinHostPort(cfg.Host, strconv.Itoa(cfg.Port))
		mc.DBName = cfg.Name
	}
	mc.ParseTime = true
	mc.MultiStatements = true
	return mc.FormatDSN(), nil
}

// ConnectDB opens the MySQL pool and checks it is reachable.
func ConnectDB(ctx context.Context, cfg config.DB) (*sql.DB, error) {
	dsn, err := DSN(cfg)
	if err != nil {
		return nil, err
	}
	db, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, errors.Wrap(err, "open database")
	}
	db.SetConnMaxLifetime(3 * time.Minute)
	db.SetMaxOpenConns(16)
	db.SetMaxIdleConns(16)

	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, errors.Wrap(err, "ping database")
	}
	return db, nil
}
