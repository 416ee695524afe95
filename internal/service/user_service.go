package service

import (
	"context"
	"errors"
	"strings"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"rental/internal/auth"
	apperrors "rental/internal/errors"
	"rental/internal/model"
	"rental/internal/repository"
)

// UpdateUserInput carries a profile update. An empty Role keeps the current
// role; an empty Password keeps the stored hash.
type UpdateUserInput struct {
	Name     string
	Email    string
	Phone    string
	Role     string
	Password string
}

// UserService exposes user directory operations.
type UserService interface {
	GetUser(ctx context.Context, id uint) (*model.PublicUser, error)
	ListUsers(ctx context.Context) ([]model.PublicUser, error)
	UpdateUser(ctx context.Context, id uint, in UpdateUserInput) (*model.PublicUser, error)
	DeleteUser(ctx context.Context, id uint) error
}

type userService struct {
	repo   repository.UserRepository
	hasher auth.PasswordHasher
}

// NewUserService builds a UserService.
func NewUserService(repo repository.UserRepository, hasher auth.PasswordHasher) UserService {
	return &userService{repo: repo, hasher: hasher}
}

func (s *userService) GetUser(ctx context.Context, id uint) (*model.PublicUser, error) {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, notFoundOr(err, apperrors.ErrUserNotFound, "find user")
	}
	return user, nil
}

func (s *userService) ListUsers(ctx context.Context) ([]model.PublicUser, error) {
	users, err := s.repo.List(ctx)
	if err != nil {
		return nil, apperrors.Internal(err, "list users")
	}
	return users, nil
}

func (s *userService) UpdateUser(ctx context.Context, id uint, in UpdateUserInput) (*model.PublicUser, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.Email = strings.TrimSpace(in.Email)
	in.Phone = strings.TrimSpace(in.Phone)
	if in.Name == "" || in.Email == "" || in.Phone == "" {
		return nil, apperrors.Validation("name, email, and phone are required")
	}

	current, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, notFoundOr(err, apperrors.ErrUserNotFound, "find user")
	}

	role := current.Role
	if in.Role != "" {
		parsed, ok := model.ParseRole(in.Role)
		if !ok {
			return nil, apperrors.Validation("role must be one of: admin, user")
		}
		role = parsed
	}

	if in.Email != current.Email {
		owner, err := s.repo.FindByEmail(ctx, in.Email)
		if err == nil && owner.ID != id {
			return nil, apperrors.ErrEmailTaken
		}
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.Internal(err, "check email")
		}
	}

	update := model.UserUpdate{
		Fields: model.UserFields{Name: in.Name, Email: in.Email, Phone: in.Phone, Role: role},
	}
	if in.Password != "" {
		if err := checkPasswordLength(in.Password); err != nil {
			return nil, err
		}
		hash, err := s.hasher.Hash(in.Password)
		if err != nil {
			return nil, apperrors.Internal(err, "hash password")
		}
		update.Credential = model.NewCredential(hash)
	}

	affected, err := s.repo.Update(ctx, id, update)
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return nil, apperrors.ErrEmailTaken
	}
	if err != nil {
		return nil, apperrors.Internal(err, "update user")
	}
	if affected == 0 {
		return nil, apperrors.ErrUserNotFound
	}

	return &model.PublicUser{ID: id, Name: in.Name, Email: in.Email, Phone: in.Phone, Role: role}, nil
}

func (s *userService) DeleteUser(ctx context.Context, id uint) error {
	affected, err := s.repo.Delete(ctx, id)
	if err != nil {
		return apperrors.Internal(err, "delete user")
	}
	if affected == 0 {
		return apperrors.ErrUserNotFound
	}
	log.Info().Uint("user_id", id).Msg("user deleted")
	return nil
}
