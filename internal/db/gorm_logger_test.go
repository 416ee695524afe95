package db

import (
	"bytes"
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	mysqldriver "github.com/go-sql-driver/mysql"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"

	"rental/internal/model"
	"rental/internal/repository"
)

func TestGormLoggerOmitsBoundValues(t *testing.T) {
	var out bytes.Buffer

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer sqlDB.Close()

	gormDB, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      sqlDB,
		SkipInitializeWithVersion: true,
	}), GormConfig(zerolog.New(&out)))
	require.NoError(t, err)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `Users`").
		WillReturnError(&mysqldriver.MySQLError{Number: 1062, Message: "Duplicate entry for key 'idx_users_email'"})
	mock.ExpectRollback()

	const hash = "$2a$10$SECRETHASHSECRETHASHSECRETHASHSECRETHASHSECRETHASHSE"
	_, err = repository.NewUserRepository(gormDB).Create(context.Background(), model.UserFields{
		Name:  "Alice",
		Email: "a@x.com",
		Phone: "555-1",
		Role:  model.RoleUser,
	}, hash)

	assert.ErrorIs(t, err, gorm.ErrDuplicatedKey)
	require.NoError(t, mock.ExpectationsWereMet())

	logged := out.String()
	assert.Contains(t, logged, "INSERT INTO `Users`")
	assert.Contains(t, logged, `"component":"gorm"`)
	assert.NotContains(t, logged, "SECRETHASH")
}

func TestGormLoggerSkipsRecordNotFound(t *testing.T) {
	var out bytes.Buffer

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer sqlDB.Close()

	gormDB, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      sqlDB,
		SkipInitializeWithVersion: true,
	}), GormConfig(zerolog.New(&out)))
	require.NoError(t, err)

	mock.ExpectQuery("SELECT \\* FROM `Users` WHERE email = \\?").
		WillReturnRows(sqlmock.NewRows([]string{"user_id", "name", "email", "phone", "role", "password"}))

	_, err = repository.NewUserRepository(gormDB).FindByEmail(context.Background(), "nobody@x.com")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	assert.Empty(t, out.String())
}
