package core

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"pitlane-backend-go/internal/db"
	"pitlane-backend-go/internal/models"
)

const bcryptCost = 12

// userService implements UserService on top of the user repository.
type userService struct {
	users db.UserRepository
}

// NewUserService creates a UserService.
func NewUserService(users db.UserRepository) UserService {
	return &userService{users: users}
}

// Register creates a new account with the "user" role. ErrEmailTaken when
// the email is already registered.
func (s *userService) Register(ctx context.Context, req models.RegisterRequest) (*models.User, error) {
	_, err := s.users.GetByEmail(ctx, req.Email)
	if err == nil {
		return nil, ErrEmailTaken
	}
	if !errors.Is(err, db.ErrNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Email:     req.Email,
		Password:  string(hash),
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Role:      models.RoleUser,
	}
	if _, err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Authenticate verifies an email/password pair. Unknown email and wrong
// password both return ErrInvalidCredentials so callers cannot probe which
// emails exist.
func (s *userService) Authenticate(ctx context.Context, email, password string) (*models.User, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	return user, nil
}

func (s *userService) GetByID(ctx context.Context, userID string) (*models.User, error) {
	return s.users.GetByID(ctx, userID)
}

// UpdateProfile merges the non-empty request fields into the profile and
// returns the refreshed user.
func (s *userService) UpdateProfile(ctx context.Context, userID string, req models.UpdateProfileRequest) (*models.User, error) {
	fields := map[string]any{}
	if req.FirstName != "" {
		fields["firstName"] = req.FirstName
	}
	if req.LastName != "" {
		fields["lastName"] = req.LastName
	}
	if req.Phone != "" {
		fields["phone"] = req.Phone
	}
	if req.Address != "" {
		fields["address"] = req.Address
	}
	if err := s.users.Update(ctx, userID, fields); err != nil {
		return nil, err
	}
	return s.users.GetByID(ctx, userID)
}

// ChangePassword verifies the current password before storing a new hash.
// ErrWrongPassword when the current password does not match.
func (s *userService) ChangePassword(ctx context.Context, userID, currentPassword, newPassword string) error {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(currentPassword)); err != nil {
		return ErrWrongPassword
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcryptCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	return s.users.Update(ctx, userID, map[string]any{"password": string(hash)})
}
