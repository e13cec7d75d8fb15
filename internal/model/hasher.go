package model

// PasswordHasher is an opaque one-way hash/verify capability for
// passwords. Hashes are stored verbatim and never decoded.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(password, hash string) bool
}
