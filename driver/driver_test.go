package driver

import (
	"database/sql"
	"testing"

	"github.com/go-sql-driver/mysql"
	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"techlympics-stats/config"
)

func TestDSN(t *testing.T) {
	got, err := DSN(config.DB{Host: "db", Port: 3307, User: "stats", Password: "secret", Name: "techlympics"})
	require.NoError(t, err)
	mc, err := mysql.ParseDSN(got)
	require.NoError(t, err)
	assert.Equal(t, "stats", mc.User)
	assert.Equal(t, "secret", mc.Passwd)
	assert.Equal(t, "db:3307", mc.Addr)
	assert.Equal(t, "techlympics", mc.DBName)
	assert.True(t, mc.ParseTime)
	assert.True(t, mc.MultiStatements)
}

func TestDSN_ExplicitKeepsFieldsAndForcesOptions(t *testing.T) {
	got, err := DSN(config.DB{DSN: "root:pw@tcp(mysql:3306)/events?sql_mode=ANSI", Host: "ignored"})
	require.NoError(t, err)
	mc, err := mysql.ParseDSN(got)
	require.NoError(t, err)
	assert.Equal(t, "root", mc.User)
	assert.Equal(t, "mysql:3306", mc.Addr)
	assert.Equal(t, "events", mc.DBName)
	assert.Equal(t, "ANSI", mc.Params["sql_mode"])
	assert.True(t, mc.ParseTime)
	assert.True(t, mc.MultiStatements)
}

func TestDSN_InvalidExplicit(t *testing.T) {
	_, err := DSN(config.DB{DSN: "not a dsn"})
	assert.ErrorContains(t, err, "parse DB_DSN")
}

func TestMigrate_SQLite(t *testing.T) {
	db, err := sql.Open("sqlite3", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { db.Close() })

	require.NoError(t, Migrate(db, SQLite))
	// Running twice is a no-op.
	require.NoError(t, Migrate(db, SQLite))

	for _, table := range []string{"zone", "state", "contingent", "contest", "team", "team_member", "contestant"} {
		var name string
		err := db.QueryRow(`SELECT name FROM sqlite_master WHERE type = 'table' AND name = ?`, table).Scan(&name)
		assert.NoError(t, err, table)
	}
}

func TestMigrate_UnknownDialect(t *testing.T) {
	err := Migrate(nil, "postgres")
	assert.ErrorContains(t, err, "unsupported dialect")
}
