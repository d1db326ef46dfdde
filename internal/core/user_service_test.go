package core

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"pitlane-backend-go/internal/db"
	"pitlane-backend-go/internal/models"
	"pitlane-backend-go/internal/store/memory"
)

func newUserService(t *testing.T) (UserService, db.UserRepository) {
	t.Helper()
	s := memory.New()
	repo := db.NewUserRepository(s)
	return NewUserService(repo), repo
}

func registerReq() models.RegisterRequest {
	return models.RegisterRequest{
		Email:     "lewis@pitlane.com",
		Password:  "Secret123",
		FirstName: "Lewis",
		LastName:  "Hamilton",
	}
}

func TestRegister(t *testing.T) {
	svc, _ := newUserService(t)
	ctx := context.Background()

	user, err := svc.Register(ctx, registerReq())
	require.NoError(t, err)
	assert.NotEmpty(t, user.ID)
	assert.Equal(t, models.RoleUser, user.Role)
	assert.NotEqual(t, "Secret123", user.Password, "password must be stored hashed")
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("Secret123")))
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc, _ := newUserService(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, registerReq())
	require.NoError(t, err)

	_, err = svc.Register(ctx, registerReq())
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestAuthenticate(t *testing.T) {
	svc, _ := newUserService(t)
	ctx := context.Background()
	registered, err := svc.Register(ctx, registerReq())
	require.NoError(t, err)

	user, err := svc.Authenticate(ctx, "lewis@pitlane.com", "Secret123")
	require.NoError(t, err)
	assert.Equal(t, registered.ID, user.ID)

	// Unknown email and wrong password yield the same error.
	_, err = svc.Authenticate(ctx, "lewis@pitlane.com", "WrongPass1")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	_, err = svc.Authenticate(ctx, "nobody@pitlane.com", "Secret123")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestUpdateProfile(t *testing.T) {
	svc, _ := newUserService(t)
	ctx := context.Background()
	user, err := svc.Register(ctx, registerReq())
	require.NoError(t, err)

	updated, err := svc.UpdateProfile(ctx, user.ID, models.UpdateProfileRequest{
		Phone: "+33 6 12 34 56 78",
	})
	require.NoError(t, err)
	assert.Equal(t, "+33 6 12 34 56 78", updated.Phone)
	assert.Equal(t, "Lewis", updated.FirstName, "omitted fields stay untouched")
}

func TestChangePassword(t *testing.T) {
	svc, _ := newUserService(t)
	ctx := context.Background()
	user, err := svc.Register(ctx, registerReq())
	require.NoError(t, err)

	err = svc.ChangePassword(ctx, user.ID, "WrongPass1", "NewSecret123")
	assert.ErrorIs(t, err, ErrWrongPassword)

	require.NoError(t, svc.ChangePassword(ctx, user.ID, "Secret123", "NewSecret123"))

	_, err = svc.Authenticate(ctx, "lewis@pitlane.com", "NewSecret123")
	assert.NoError(t, err)
	_, err = svc.Authenticate(ctx, "lewis@pitlane.com", "Secret123")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}
