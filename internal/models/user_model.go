package models

import "time"

// User roles.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// User represents a registered customer or administrator.
type User struct {
	ID        string    `json:"id" firestore:"-"` // Document ID
	Email     string    `json:"email" firestore:"email"`
	Password  string    `json:"-" firestore:"password"` // bcrypt hash, never serialized
	FirstName string    `json:"firstName" firestore:"firstName"`
	LastName  string    `json:"lastName" firestore:"lastName"`
	Phone     string    `json:"phone,omitempty" firestore:"phone,omitempty"`
	Address   string    `json:"address,omitempty" firestore:"address,omitempty"`
	Role      string    `json:"role" firestore:"role"`
	CreatedAt time.Time `json:"createdAt" firestore:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt" firestore:"updatedAt"`
}

// IsAdmin reports whether the user carries the admin role.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
