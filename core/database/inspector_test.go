package database

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
)

func TestGetTableColumns(t *testing.T) {
	db, err := Connect(Config{Driver: DriverSQLite, Name: ":memory:"})
	require.NoError(t, err)

	err = db.Exec("CREATE TABLE test_assets (path TEXT PRIMARY KEY, id TEXT NOT NULL, type INTEGER)").Error
	require.NoError(t, err)

	columns, err := GetTableColumns(db, "test_assets")
	require.NoError(t, err)
	require.Len(t, columns, 3)

	colMap := make(map[string]ColumnInfo)
	for _, col := range columns {
		colMap[col.Field] = col
	}

	assert.Equal(t, "text", colMap["path"].Type)
	assert.Equal(t, "PRI", colMap["path"].Key)
	assert.Equal(t, "NO", colMap["id"].Null)
	assert.Equal(t, "integer", colMap["type"].Type)

	// PRAGMA table_info returns no rows for an unknown table
	cols, err := GetTableColumns(db, "non_existent")
	assert.NoError(t, err)
	assert.Empty(t, cols)
}

func TestGetTableColumns_MySQL(t *testing.T) {
	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer conn.Close()

	db, err := Open(mysql.New(mysql.Config{Conn: conn, SkipInitializeWithVersion: true}))
	require.NoError(t, err)

	mock.ExpectQuery("SHOW COLUMNS FROM `asset_registry`").
		WillReturnRows(sqlmock.NewRows([]string{"Field", "Type", "Null", "Key", "Default", "Extra"}).
			AddRow("Path", "VARCHAR(512)", "NO", "PRI", nil, "").
			AddRow("ID", "CHAR(36)", "NO", "", nil, ""))

	columns, err := GetTableColumns(db, "asset_registry")
	require.NoError(t, err)
	require.Len(t, columns, 2)
	assert.Equal(t, "path", columns[0].Field)
	assert.Equal(t, "varchar(512)", columns[0].Type)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMissingColumns(t *testing.T) {
	columns := []ColumnInfo{{Field: "path"}, {Field: "id"}}
	assert.Equal(t, []string{"type", "updated_at"}, MissingColumns(columns, "path", "updated_at", "id", "type"))
	assert.Empty(t, MissingColumns(columns, "ID"))
}
