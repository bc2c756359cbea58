// Package auth guards the admin dashboard: a bcrypt check against the
// configured password hash for login, and HS256 session tokens for the
// request listing and websocket feed.
package auth

import "golang.org/x/crypto/bcrypt"

// VerifyPassword reports whether password matches the stored bcrypt hash.
// The hash comes from ADMIN_PASSWORD_HASH; the plain password is never
// stored anywhere.
func VerifyPassword(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
