package ports

// Subject is the identity resolved from a verified session token.
type Subject struct {
	ID    string
	Email string
}

// TokenService issues and verifies signed session tokens. Tokens are
// stateless: the server never stores them, it only checks the signature
// and decodes the claims.
type TokenService interface {
	Issue(subjectID, email string) (string, error)
	// Verify returns the token's subject. It fails with
	// domain.ErrMissingToken for an empty token and domain.ErrInvalidToken
	// for anything tampered, malformed, expired or signed with a
	// different secret.
	Verify(token string) (Subject, error)
}
