package checks

import (
	"testing"

	"asset-registry/core/database"
	"asset-registry/core/store"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("Failed to open mock sql db: %v", err)
	}

	gormDB, err := database.Open(mysql.New(mysql.Config{
		Conn:                      db,
		SkipInitializeWithVersion: true,
	}))
	if err != nil {
		t.Fatalf("Failed to open gorm db: %v", err)
	}

	return gormDB, mock
}

func TestCheckSchema_NilDB(t *testing.T) {
	report, err := CheckSchema(nil, store.Entry{})
	assert.Error(t, err)
	assert.Nil(t, report)
}

func TestCheckSchema_NotATable(t *testing.T) {
	db, _ := setupMockDB(t)
	_, err := CheckSchema(db, struct{ Name string }{})
	assert.ErrorContains(t, err, "does not implement TableName")
}

func TestCheckSchema_SQLite(t *testing.T) {
	db, err := database.Connect(database.Config{Driver: database.DriverSQLite, Name: ":memory:"})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&store.Entry{}))

	report, err := CheckSchema(db, store.Entry{})
	require.NoError(t, err)
	assert.True(t, report.Matched, "%+v", report)
	assert.Equal(t, "ok", report.Tables[store.TableName].Status)
}

func TestCheckSchema_MissingColumn(t *testing.T) {
	db, mock := setupMockDB(t)

	rows := sqlmock.NewRows([]string{"Field", "Type", "Null", "Key", "Default", "Extra"}).
		AddRow("path", "varchar(512)", "NO", "PRI", nil, "").
		AddRow("id", "char(36)", "NO", "MUL", nil, "").
		AddRow("updated_at", "datetime(3)", "YES", "", nil, "")
	mock.ExpectQuery("SHOW COLUMNS FROM `asset_registry`").WillReturnRows(rows)

	report, err := CheckSchema(db, &store.Entry{})
	require.NoError(t, err)
	assert.False(t, report.Matched)

	tbl := report.Tables[store.TableName]
	assert.Equal(t, "error", tbl.Status)
	assert.Equal(t, []string{"type"}, tbl.MissingColumns)
	assert.Empty(t, tbl.TypeMismatches)
}

func TestCheckSchema_TypeMismatch(t *testing.T) {
	db, mock := setupMockDB(t)

	rows := sqlmock.NewRows([]string{"Field", "Type", "Null", "Key", "Default", "Extra"}).
		AddRow("path", "varchar(512)", "NO", "PRI", nil, "").
		AddRow("id", "int(11)", "NO", "", nil, "").
		AddRow("type", "varchar(32)", "NO", "", nil, "").
		AddRow("updated_at", "datetime(3)", "YES", "", nil, "")
	mock.ExpectQuery("SHOW COLUMNS FROM `asset_registry`").WillReturnRows(rows)

	report, err := CheckSchema(db, store.Entry{})
	require.NoError(t, err)
	assert.Equal(t, []string{"id: expected char(36), got int(11)"}, report.Tables[store.TableName].TypeMismatches)
}

func TestCheckSchema_InspectError(t *testing.T) {
	db, mock := setupMockDB(t)
	mock.ExpectQuery("SHOW COLUMNS").WillReturnError(assert.AnError)

	report, err := CheckSchema(db, store.Entry{})
	require.NoError(t, err)
	assert.False(t, report.Matched)
	assert.Len(t, report.Errors, 1)
}

func TestParseGormTags(t *testing.T) {
	assert.Equal(t, "id", parseGormColumn("column:id;primaryKey"))
	assert.Equal(t, "path", parseGormColumn("primaryKey;column:path;type:varchar(512)"))
	assert.Equal(t, "char(36)", parseGormType("column:id;type:char(36)"))
	assert.Equal(t, "", parseGormType("column:id"))
}
