// Package service defines interfaces for infrastructure-backed domain capabilities
// (credentials, tokens, realtime feed, messaging, push notifications).
package service

// PasswordHasher hashes and verifies staff passwords.
type PasswordHasher interface {
	// Hash generates a salted hash from a plaintext password.
	Hash(password string) (string, error)

	// Check compares a plaintext password with a hash to see if they match.
	Check(password, hash string) bool

	// NeedsRehash reports whether hash was produced with weaker parameters than the current ones.
	NeedsRehash(hash string) bool
}
