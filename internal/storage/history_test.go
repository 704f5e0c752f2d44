package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type statement struct {
	sql  string
	vars []interface{}
}

// dryRunManager builds SQL without a database and captures every statement
func dryRunManager(t *testing.T) (*Manager, *[]statement) {
	t.Helper()
	conf := gormConfig()
	conf.DryRun = true
	conf.DisableAutomaticPing = true
	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN: "host=127.0.0.1 port=1 user=station dbname=station sslmode=disable",
	}), conf)
	require.NoError(t, err)

	var captured []statement
	capture := func(tx *gorm.DB) {
		captured = append(captured, statement{sql: tx.Statement.SQL.String(), vars: tx.Statement.Vars})
	}
	require.NoError(t, db.Callback().Query().After("gorm:query").Register("station:capture_query", capture))
	require.NoError(t, db.Callback().Create().After("gorm:create").Register("station:capture_create", capture))

	return &Manager{db: db}, &captured
}

func TestManager_LatestReports(t *testing.T) {
	manager, captured := dryRunManager(t)

	reports, err := manager.LatestReports(5)

	require.NoError(t, err)
	assert.Empty(t, reports)
	require.Len(t, *captured, 1)
	query := (*captured)[0]
	assert.Equal(t,
		`SELECT * FROM "ws_reports" WHERE "ws_reports"."deleted_at" IS NULL ORDER BY created_at DESC,id DESC LIMIT $1`,
		query.sql)
	assert.Equal(t, []interface{}{5}, query.vars)
}

func TestManager_SaveReport(t *testing.T) {
	manager, captured := dryRunManager(t)

	require.NoError(t, manager.SaveReport("Pluie"))

	require.Len(t, *captured, 1)
	insert := (*captured)[0]
	assert.Contains(t, insert.sql, `INSERT INTO "ws_reports"`)
	assert.Contains(t, insert.sql, `"weather"`)
	assert.Contains(t, insert.vars, "Pluie")
}
