package domain

import (
	"time"

	"golang.org/x/crypto/bcrypt"
)

// Role of an authenticated identity. Roles never change after creation:
// there is no role-change flow in this system.
type Role string

const (
	RoleAdmin Role = "admin"
	RoleAgent Role = "agent"
	RoleUser  Role = "user"
)

// ParseRole maps a raw string onto a known role.
func ParseRole(s string) (Role, bool) {
	switch Role(s) {
	case RoleAdmin, RoleAgent, RoleUser:
		return Role(s), true
	}
	return "", false
}

// LandingPage is the fixed per-role default redirect target.
// A role mismatch on a guarded page is a silent redirect here, never an error.
func (r Role) LandingPage() string {
	switch r {
	case RoleAdmin:
		return "/dashboard/admin"
	case RoleAgent:
		return "/dashboard/agent"
	default:
		return "/dashboard/user"
	}
}

// User is the core identity entity.
type User struct {
	ID           string
	Username     string
	Name         string
	PasswordHash string
	Role         Role
	Email        string
	Phone        string
	Bio          string

	// Agent-only counters.
	Listings       int
	SoldProperties int

	CreatedAt time.Time
}

// Claims are the data baked into a session token.
type Claims struct {
	UserID   string
	Username string
	Role     Role
}

// NewUser creates a user with a bcrypt-hashed password.
func NewUser(id, username, name, password string, role Role) (*User, error) {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	return &User{
		ID:           id,
		Username:     username,
		Name:         name,
		PasswordHash: string(hashedPassword),
		Role:         role,
		CreatedAt:    time.Now().UTC(),
	}, nil
}

// CheckPassword compares the supplied password against the stored hash.
func (u *User) CheckPassword(password string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password))
	return err == nil
}
