package database

import (
	"context"
	"errors"
	"testing"
	"testing/fstest"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/at-ishikawa/langtutor/schemas"
)

func TestMigrate(t *testing.T) {
	migrations := fstest.MapFS{
		"migrations/002_second.sql": {Data: []byte("CREATE TABLE IF NOT EXISTS second (id INT)")},
		"migrations/001_first.sql":  {Data: []byte("CREATE TABLE IF NOT EXISTS first (id INT)")},
		"migrations/README.md":      {Data: []byte("not a migration")},
	}

	tests := []struct {
		name      string
		setupMock func(mock sqlmock.Sqlmock)
		want      []string
		wantErr   string
	}{
		{
			name: "applies files in name order",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec("CREATE TABLE IF NOT EXISTS first").WillReturnResult(sqlmock.NewResult(0, 0))
				mock.ExpectExec("CREATE TABLE IF NOT EXISTS second").WillReturnResult(sqlmock.NewResult(0, 0))
			},
			want: []string{"001_first.sql", "002_second.sql"},
		},
		{
			name: "stops at the first failure",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec("CREATE TABLE IF NOT EXISTS first").WillReturnResult(sqlmock.NewResult(0, 0))
				mock.ExpectExec("CREATE TABLE IF NOT EXISTS second").WillReturnError(errors.New("syntax error"))
			},
			want:    []string{"001_first.sql"},
			wantErr: "db.ExecContext(migrations/002_second.sql)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()
			tt.setupMock(mock)

			got, err := Migrate(context.Background(), sqlx.NewDb(db, "mysql"), migrations)
			if tt.wantErr != "" {
				assert.ErrorContains(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
			}
			assert.Equal(t, tt.want, got)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestMigrate_EmbeddedSchemas(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec("CREATE TABLE IF NOT EXISTS learning_resources").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("CREATE TABLE IF NOT EXISTS chatbots").WillReturnResult(sqlmock.NewResult(0, 0))

	got, err := Migrate(context.Background(), sqlx.NewDb(db, "mysql"), schemas.Migrations)
	require.NoError(t, err)
	assert.Equal(t, []string{"001_create_learning_resources.sql", "002_create_chatbots.sql"}, got)
	assert.NoError(t, mock.ExpectationsWereMet())
}
