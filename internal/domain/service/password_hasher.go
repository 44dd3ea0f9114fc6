// Package service declares the capabilities the usecases need from infrastructure:
// hashing, token derivation, time and event fan-out.
package service

// PasswordHasher turns account passwords into stored hashes and checks login attempts against them.
// Implementations mix in the server-wide password salt, so hashes are not portable between deployments.
type PasswordHasher interface {
	Hash(password string) (string, error)

	// Check reports whether password matches hash. Malformed hashes never match.
	Check(password, hash string) bool
}
