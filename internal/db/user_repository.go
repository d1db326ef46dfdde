package db

import (
	"context"
	"errors"
	"fmt"
	"time"

	"pitlane-backend-go/internal/models"
	"pitlane-backend-go/internal/store"
)

const usersCollection = "users"

// ErrNotFound is returned when a requested entity does not exist in the
// store. It wraps the adapter-level sentinel so errors.Is works across
// layers.
var ErrNotFound = store.ErrNotFound

// storeUserRepository implements UserRepository over the document store.
type storeUserRepository struct {
	store store.Store
}

// NewUserRepository creates a user repository backed by the given store.
func NewUserRepository(s store.Store) UserRepository {
	return &storeUserRepository{store: s}
}

// Create adds a new user document with a generated ID and sets the
// timestamps. The generated ID is written back to user.ID.
func (r *storeUserRepository) Create(ctx context.Context, user *models.User) (string, error) {
	now := time.Now().UTC()
	user.CreatedAt = now
	user.UpdatedAt = now

	id, err := r.store.Collection(usersCollection).Add(ctx, userData(user))
	if err != nil {
		return "", fmt.Errorf("failed to create user: %w", err)
	}
	user.ID = id
	return id, nil
}

// GetByID retrieves a user document by its ID.
func (r *storeUserRepository) GetByID(ctx context.Context, userID string) (*models.User, error) {
	if userID == "" {
		return nil, errors.New("userID cannot be empty for GetByID operation")
	}
	doc, err := r.store.Collection(usersCollection).Doc(userID).Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get user '%s': %w", userID, err)
	}
	return decodeUser(doc)
}

// GetByEmail retrieves the user with the given email, or ErrNotFound.
// Email uniqueness is enforced at registration, so the first match wins.
func (r *storeUserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	docs, err := r.store.Collection(usersCollection).Where("email", store.OpEqual, email).Documents(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query user by email: %w", err)
	}
	if len(docs) == 0 {
		return nil, fmt.Errorf("user with email '%s': %w", email, ErrNotFound)
	}
	return decodeUser(docs[0])
}

// Update merges the given fields into an existing user document and
// refreshes the updatedAt timestamp.
func (r *storeUserRepository) Update(ctx context.Context, userID string, fields map[string]any) error {
	if userID == "" {
		return errors.New("userID cannot be empty for Update operation")
	}
	fields["updatedAt"] = time.Now().UTC()
	if err := r.store.Collection(usersCollection).Doc(userID).Update(ctx, fields); err != nil {
		return fmt.Errorf("failed to update user '%s': %w", userID, err)
	}
	return nil
}

func decodeUser(doc store.Document) (*models.User, error) {
	var user models.User
	if err := doc.DataTo(&user); err != nil {
		return nil, fmt.Errorf("failed to decode user data for ID '%s': %w", doc.ID(), err)
	}
	user.ID = doc.ID()
	return &user, nil
}

func userData(u *models.User) map[string]any {
	data := map[string]any{
		"email":     u.Email,
		"password":  u.Password,
		"firstName": u.FirstName,
		"lastName":  u.LastName,
		"role":      u.Role,
		"createdAt": u.CreatedAt,
		"updatedAt": u.UpdatedAt,
	}
	if u.Phone != "" {
		data["phone"] = u.Phone
	}
	if u.Address != "" {
		data["address"] = u.Address
	}
	return data
}
