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

// dummyPassword is hashed once so that logins for unknown emails spend the
// same bcrypt time as logins with a wrong password.
const dummyPassword = "rental-login-timing-guard"

// RegisterInput carries the fields of a registration request.
type RegisterInput struct {
	Name     string
	Email    string
	Phone    string
	Password string
	Role     string
}

// AuthService handles authentication operations.
type AuthService interface {
	Register(ctx context.Context, in RegisterInput) (*model.PublicUser, error)
	Login(ctx context.Context, email, password string) (accessToken, refreshToken string, user *model.PublicUser, err error)
	ChangePassword(ctx context.Context, userID uint, currentPassword, newPassword string) error
	RefreshToken(ctx context.Context, refreshToken string) (accessToken string, err error)
	Logout(ctx context.Context, refreshToken string) error
}

type authService struct {
	users      repository.UserRepository
	hasher     auth.PasswordHasher
	jwtService *auth.JWTService
	tokenStore auth.TokenStoreInterface
	dummyHash  string
}

// NewAuthService creates a new authentication service.
func NewAuthService(
	users repository.UserRepository,
	hasher auth.PasswordHasher,
	jwtService *auth.JWTService,
	tokenStore auth.TokenStoreInterface,
) AuthService {
	dummyHash, err := hasher.Hash(dummyPassword)
	if err != nil {
		log.Warn().Err(err).Msg("could not prepare login timing guard")
	}
	return &authService{
		users:      users,
		hasher:     hasher,
		jwtService: jwtService,
		tokenStore: tokenStore,
		dummyHash:  dummyHash,
	}
}

// Register creates a new user with a hashed password.
func (s *authService) Register(ctx context.Context, in RegisterInput) (*model.PublicUser, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.Email = strings.TrimSpace(in.Email)
	in.Phone = strings.TrimSpace(in.Phone)
	if in.Name == "" || in.Email == "" || in.Phone == "" || in.Password == "" {
		return nil, apperrors.Validation("name, email, phone, and password are required")
	}
	if err := checkPasswordLength(in.Password); err != nil {
		return nil, err
	}
	role, ok := model.ParseRole(in.Role)
	if !ok {
		return nil, apperrors.Validation("role must be one of: admin, user")
	}

	existing, err := s.users.FindByEmail(ctx, in.Email)
	if err == nil && existing != nil {
		return nil, apperrors.ErrEmailTaken
	}
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.Internal(err, "check email")
	}

	hash, err := s.hasher.Hash(in.Password)
	if err != nil {
		return nil, apperrors.Internal(err, "hash password")
	}

	id, err := s.users.Create(ctx, model.UserFields{
		Name:  in.Name,
		Email: in.Email,
		Phone: in.Phone,
		Role:  role,
	}, hash)
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		// Lost a race with a concurrent registration for the same email.
		return nil, apperrors.ErrEmailTaken
	}
	if err != nil {
		return nil, apperrors.Internal(err, "create user")
	}

	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		return nil, apperrors.Internal(err, "load created user")
	}

	log.Info().Uint("user_id", user.ID).Str("role", string(user.Role)).Msg("user registered")
	return user, nil
}

// Login authenticates a user and returns access and refresh tokens. Unknown
// emails and wrong passwords fail with the same error.
func (s *authService) Login(ctx context.Context, email, password string) (string, string, *model.PublicUser, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return "", "", nil, apperrors.Validation("email and password are required")
	}

	stored, err := s.users.FindByEmail(ctx, email)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		s.hasher.Verify(password, s.dummyHash)
		return "", "", nil, apperrors.ErrInvalidCredentials
	}
	if err != nil {
		return "", "", nil, apperrors.Internal(err, "find user")
	}

	if !s.hasher.Verify(password, stored.PasswordHash) {
		return "", "", nil, apperrors.ErrInvalidCredentials
	}

	user := stored.Public()

	accessToken, err := s.jwtService.GenerateAccessToken(user)
	if err != nil {
		return "", "", nil, apperrors.Internal(err, "generate access token")
	}

	tokenID, refreshToken, err := s.jwtService.GenerateRefreshToken(user)
	if err != nil {
		return "", "", nil, apperrors.Internal(err, "generate refresh token")
	}

	if err := s.tokenStore.StoreRefreshToken(ctx, tokenID, user.ID, user.Email, auth.RefreshTokenExpiry); err != nil {
		return "", "", nil, apperrors.Internal(err, "store refresh token")
	}

	return accessToken, refreshToken, &user, nil
}

// ChangePassword re-verifies the current password and rotates the stored hash.
func (s *authService) ChangePassword(ctx context.Context, userID uint, currentPassword, newPassword string) error {
	if currentPassword == "" || newPassword == "" {
		return apperrors.Validation("current password and new password are required")
	}
	if err := checkPasswordLength(newPassword); err != nil {
		return err
	}

	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return notFoundOr(err, apperrors.ErrUserNotFound, "find user")
	}

	// The public lookup carries no hash; resolve the full record for it.
	stored, err := s.users.FindByEmail(ctx, user.Email)
	if err != nil {
		return notFoundOr(err, apperrors.ErrUserNotFound, "find credentials")
	}

	if !s.hasher.Verify(currentPassword, stored.PasswordHash) {
		return apperrors.ErrCurrentPasswordIncorrect
	}

	newHash, err := s.hasher.Hash(newPassword)
	if err != nil {
		return apperrors.Internal(err, "hash password")
	}

	affected, err := s.users.Update(ctx, userID, model.UserUpdate{
		Fields:     user.Fields(),
		Credential: model.NewCredential(newHash),
	})
	if err != nil {
		return apperrors.Internal(err, "update password")
	}
	if affected == 0 {
		return apperrors.ErrUserNotFound
	}

	log.Info().Uint("user_id", userID).Msg("password changed")
	return nil
}

// RefreshToken validates a refresh token and returns a new access token.
func (s *authService) RefreshToken(ctx context.Context, refreshToken string) (string, error) {
	tokenID, claims, err := s.jwtService.ExtractTokenID(refreshToken)
	if err != nil {
		return "", apperrors.ErrInvalidRefreshToken
	}

	storedUserID, storedEmail, err := s.tokenStore.GetRefreshToken(ctx, tokenID)
	if errors.Is(err, auth.ErrRefreshTokenNotFound) {
		return "", apperrors.ErrInvalidRefreshToken
	}
	if err != nil {
		return "", apperrors.Internal(err, "get refresh token")
	}
	if storedUserID != claims.UserID || storedEmail != claims.Email {
		return "", apperrors.ErrInvalidRefreshToken
	}

	// Pick up role changes made since the refresh token was issued.
	user, err := s.users.FindByID(ctx, claims.UserID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", apperrors.ErrInvalidRefreshToken
	}
	if err != nil {
		return "", apperrors.Internal(err, "find user")
	}

	accessToken, err := s.jwtService.GenerateAccessToken(*user)
	if err != nil {
		return "", apperrors.Internal(err, "generate access token")
	}
	return accessToken, nil
}

// Logout invalidates a refresh token.
func (s *authService) Logout(ctx context.Context, refreshToken string) error {
	tokenID, _, err := s.jwtService.ExtractTokenID(refreshToken)
	if err != nil {
		return apperrors.ErrInvalidRefreshToken
	}

	if err := s.tokenStore.DeleteRefreshToken(ctx, tokenID); err != nil {
		return apperrors.Internal(err, "delete refresh token")
	}
	return nil
}

func checkPasswordLength(password string) error {
	if len(password) > auth.MaxPasswordBytes {
		return apperrors.Validation("password must be at most 72 bytes")
	}
	return nil
}

// notFoundOr maps a missing record to notFound and anything else to an internal error.
func notFoundOr(err, notFound error, op string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return notFound
	}
	return apperrors.Internal(err, op)
}
