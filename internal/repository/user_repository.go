package repository

import (
	"context"

	"gorm.io/gorm"

	"rental/internal/model"
)

// UserRepository is the user directory. Single-record operations only.
// Lookups return gorm.ErrRecordNotFound when nothing matches.
type UserRepository interface {
	// Create inserts a new user and returns the id assigned by the store.
	// Email uniqueness is checked by the caller; the unique index only
	// catches concurrent registrations.
	Create(ctx context.Context, fields model.UserFields, passwordHash string) (uint, error)
	// FindByID returns the public projection of the user.
	FindByID(ctx context.Context, id uint) (*model.PublicUser, error)
	// FindByEmail returns the full record, credential hash included.
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	List(ctx context.Context) ([]model.PublicUser, error)
	// Update rewrites the non-credential columns, and the hash only when
	// update carries one. It returns the number of matched rows.
	Update(ctx context.Context, id uint, update model.UserUpdate) (int64, error)
	Delete(ctx context.Context, id uint) (int64, error)
}

type userRepository struct {
	db *gorm.DB
}

// NewUserRepository builds a GORM-backed repository.
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(ctx context.Context, fields model.UserFields, passwordHash string) (uint, error) {
	user := &model.User{
		Name:         fields.Name,
		Email:        fields.Email,
		Phone:        fields.Phone,
		Role:         fields.Role,
		PasswordHash: passwordHash,
	}
	if err := r.db.WithContext(ctx).Create(user).Error; err != nil {
		return 0, err
	}
	return user.ID, nil
}

func (r *userRepository) FindByID(ctx context.Context, id uint) (*model.PublicUser, error) {
	var user model.PublicUser
	err := r.db.WithContext(ctx).
		Model(&model.User{}).
		Select("user_id AS id, name, email, phone, role").
		Where("user_id = ?", id).
		Take(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	var user model.User
	if err := r.db.WithContext(ctx).Where("email = ?", email).Take(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) List(ctx context.Context) ([]model.PublicUser, error) {
	var users []model.PublicUser
	err := r.db.WithContext(ctx).
		Model(&model.User{}).
		Select("user_id AS id, name, email, phone, role").
		Order("user_id").
		Find(&users).Error
	if err != nil {
		return nil, err
	}
	return users, nil
}

func (r *userRepository) Update(ctx context.Context, id uint, update model.UserUpdate) (int64, error) {
	columns := map[string]interface{}{
		"name":  update.Fields.Name,
		"email": update.Fields.Email,
		"phone": update.Fields.Phone,
		"role":  update.Fields.Role,
	}
	if hash, ok := update.Credential.Hash(); ok {
		columns["password"] = hash
	}

	res := r.db.WithContext(ctx).Model(&model.User{}).Where("user_id = ?", id).Updates(columns)
	if res.Error != nil {
		return 0, res.Error
	}
	return res.RowsAffected, nil
}

func (r *userRepository) Delete(ctx context.Context, id uint) (int64, error) {
	res := r.db.WithContext(ctx).Where("user_id = ?", id).Delete(&model.User{})
	if res.Error != nil {
		return 0, res.Error
	}
	return res.RowsAffected, nil
}
