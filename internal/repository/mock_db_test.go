package repository

import (
	"sync"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"

	"rental/internal/db"
)

// statementRecorder matches expectations by regexp and keeps every statement
// it was shown, so tests can inspect the exact SQL gorm produced.
type statementRecorder struct {
	mu         sync.Mutex
	statements []string
}

func (r *statementRecorder) Match(expectedSQL, actualSQL string) error {
	r.mu.Lock()
	r.statements = append(r.statements, actualSQL)
	r.mu.Unlock()
	return sqlmock.QueryMatcherRegexp.Match(expectedSQL, actualSQL)
}

func (r *statementRecorder) last() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.statements) == 0 {
		return ""
	}
	return r.statements[len(r.statements)-1]
}

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock, *statementRecorder) {
	t.Helper()
	recorder := &statementRecorder{}

	sqlDB, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(recorder))
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	gormDB, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      sqlDB,
		SkipInitializeWithVersion: true,
	}), db.GormConfig(zerolog.Nop()))
	require.NoError(t, err)

	return gormDB, mock, recorder
}
