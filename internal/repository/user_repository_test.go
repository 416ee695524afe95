package repository

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"rental/internal/model"
)

var publicColumns = []string{"id", "name", "email", "phone", "role"}

func TestUserRepository_Create(t *testing.T) {
	gormDB, mock, _ := newMockDB(t)
	repo := NewUserRepository(gormDB)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `Users` \\(`name`,`email`,`phone`,`role`,`password`,`created_at`,`updated_at`\\)").
		WithArgs("Alice", "a@x.com", "555-1", "user", "$2a$10$hash", sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(5, 1))
	mock.ExpectCommit()

	id, err := repo.Create(context.Background(), model.UserFields{
		Name:  "Alice",
		Email: "a@x.com",
		Phone: "555-1",
		Role:  model.RoleUser,
	}, "$2a$10$hash")

	require.NoError(t, err)
	assert.Equal(t, uint(5), id)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_FindByID(t *testing.T) {
	gormDB, mock, recorder := newMockDB(t)
	repo := NewUserRepository(gormDB)

	mock.ExpectQuery("SELECT user_id AS id, name, email, phone, role FROM `Users` WHERE user_id = \\?").
		WillReturnRows(sqlmock.NewRows(publicColumns).AddRow(1, "Alice", "a@x.com", "555-1", "user"))

	user, err := repo.FindByID(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, &model.PublicUser{ID: 1, Name: "Alice", Email: "a@x.com", Phone: "555-1", Role: model.RoleUser}, user)
	assert.NotContains(t, recorder.last(), "password")

	mock.ExpectQuery("SELECT user_id AS id, name, email, phone, role FROM `Users` WHERE user_id = \\?").
		WillReturnRows(sqlmock.NewRows(publicColumns))

	_, err = repo.FindByID(context.Background(), 2)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_FindByEmail(t *testing.T) {
	gormDB, mock, _ := newMockDB(t)
	repo := NewUserRepository(gormDB)

	mock.ExpectQuery("SELECT \\* FROM `Users` WHERE email = \\?").
		WillReturnRows(sqlmock.NewRows([]string{"user_id", "name", "email", "phone", "role", "password"}).
			AddRow(1, "Alice", "a@x.com", "555-1", "admin", "$2a$10$hash"))

	user, err := repo.FindByEmail(context.Background(), "a@x.com")
	require.NoError(t, err)
	assert.Equal(t, uint(1), user.ID)
	assert.Equal(t, model.RoleAdmin, user.Role)
	assert.Equal(t, "$2a$10$hash", user.PasswordHash)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_List(t *testing.T) {
	gormDB, mock, _ := newMockDB(t)
	repo := NewUserRepository(gormDB)

	mock.ExpectQuery("SELECT user_id AS id, name, email, phone, role FROM `Users` ORDER BY user_id").
		WillReturnRows(sqlmock.NewRows(publicColumns).
			AddRow(1, "Alice", "a@x.com", "555-1", "user").
			AddRow(2, "Bob", "b@x.com", "555-2", "admin"))

	users, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, uint(2), users[1].ID)
	assert.Equal(t, model.RoleAdmin, users[1].Role)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_Update(t *testing.T) {
	fields := model.UserFields{Name: "Alice", Email: "a@x.com", Phone: "555-9", Role: model.RoleUser}

	tests := []struct {
		name         string
		update       model.UserUpdate
		rows         int64
		wantPassword bool
	}{
		{
			name:         "profile only leaves the password column alone",
			update:       model.UserUpdate{Fields: fields},
			rows:         1,
			wantPassword: false,
		},
		{
			name:         "new credential writes the password column",
			update:       model.UserUpdate{Fields: fields, Credential: model.NewCredential("$2a$10$new")},
			rows:         1,
			wantPassword: true,
		},
		{
			name:   "unknown id matches nothing",
			update: model.UserUpdate{Fields: fields},
			rows:   0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gormDB, mock, recorder := newMockDB(t)
			repo := NewUserRepository(gormDB)

			mock.ExpectBegin()
			mock.ExpectExec("UPDATE `Users` SET .* WHERE user_id = \\?").
				WillReturnResult(sqlmock.NewResult(0, tt.rows))
			mock.ExpectCommit()

			affected, err := repo.Update(context.Background(), 1, tt.update)
			require.NoError(t, err)
			assert.Equal(t, tt.rows, affected)

			stmt := recorder.last()
			assert.Contains(t, stmt, "`name`=?")
			assert.Contains(t, stmt, "`email`=?")
			assert.Contains(t, stmt, "`role`=?")
			if tt.wantPassword {
				assert.Contains(t, stmt, "`password`=?")
			} else {
				assert.NotContains(t, stmt, "`password`")
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestUserRepository_Delete(t *testing.T) {
	gormDB, mock, _ := newMockDB(t)
	repo := NewUserRepository(gormDB)

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM `Users` WHERE user_id = \\?").
		WithArgs(1).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()
	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM `Users` WHERE user_id = \\?").
		WithArgs(9).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	affected, err := repo.Delete(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, int64(1), affected)

	affected, err = repo.Delete(context.Background(), 9)
	require.NoError(t, err)
	assert.Equal(t, int64(0), affected)
	assert.NoError(t, mock.ExpectationsWereMet())
}
