package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type insert struct {
	sql  string
	vars []any
}

// dryRunInsert builds the INSERT gorm would send for row.
func dryRunInsert(t *testing.T, row any) insert {
	t.Helper()

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN: "host=localhost user=test dbname=test sslmode=disable",
	}), &gorm.Config{
		DryRun:               true,
		DisableAutomaticPing: true,
	})
	require.NoError(t, err)

	var got insert
	require.NoError(t, db.Callback().Create().After("gorm:create").Register("test:capture", func(tx *gorm.DB) {
		got.sql = tx.Statement.SQL.String()
		got.vars = tx.Statement.Vars
	}))

	require.NoError(t, db.Create(row).Error)
	return got
}

func TestCreate_InactiveRowsKeepActiveFalse(t *testing.T) {
	tests := []struct {
		name string
		row  any
	}{
		{"carrier", &Carrier{Name: "Transportes Sul", Active: false}},
		{"establishment", &Establishment{Name: "Mercado Centro", Active: false}},
		{"collection point", &CollectionPoint{Name: "Ponto Centro", Timezone: "UTC", Active: false}},
		{"user", &User{Name: "Ana", Email: "ana@example.com", PasswordHash: "x", Role: RoleOperator, Active: false}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := dryRunInsert(t, tt.row)

			assert.Contains(t, got.sql, `"active"`)
			assert.Contains(t, got.vars, false)
		})
	}
}
