// Package service provides technical services for admin access tokens.
//
// A single implementation backs both the operator tooling that mints tokens and
// the gate that verifies them, so the two paths can never drift apart.
package service

// TokenService defines operations for admin token generation and hashing.
// Implementations must use a cryptographically secure random source and a
// fast digest suitable for high-entropy bearer tokens (SHA-256).
type TokenService interface {
	// GenerateToken creates a new cryptographically secure random token.
	// Returns both the plain text token (handed to the operator exactly once)
	// and its hash (the only form that may be persisted).
	//
	// Generation aborts with an error if the secure random source fails;
	// there is no fallback to a weaker generator.
	GenerateToken() (plainToken string, tokenHash string, error error)

	// HashToken hashes a plain text token using SHA-256.
	// Used for token verification by comparing digests.
	HashToken(plainToken string) string
}
