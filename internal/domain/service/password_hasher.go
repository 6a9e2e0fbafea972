// Package service declares the ports the usecases need from infrastructure:
// hashing, session tokens, Google OAuth, the Business Profile APIs, image storage
// and QR rendering.
package service

// PasswordHasher stores dashboard passwords. Hash rejects passwords longer than
// 72 bytes instead of silently truncating them.
type PasswordHasher interface {
	Hash(password string) (string, error)

	// Check reports whether password matches hash; a malformed hash never matches.
	Check(password, hash string) bool
}
