package auth

// PasswordHasher hashes and compares secrets with an adaptive salted algorithm
type PasswordHasher interface {
	Hash(plain string) (string, error)
	Compare(plain, digest string) (bool, error)
}

// SessionIssuer mints and verifies stateless bearer tokens
type SessionIssuer interface {
	IssueSession(mobile string) (string, int64, error)
	VerifySession(token string) (string, error)
}
