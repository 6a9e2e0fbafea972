// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is an operator of the dashboard. Login is by username; email is unique too.
type User struct {
	ID             uuid.UUID // The Global Unique Identifier (GUID) for the user.
	Username       string    // Login identifier.
	Email          string    // The user's contact email.
	HashedPassword string    // bcrypt hash of the password.
	IsActive       bool      // Inactive users cannot log in.
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
