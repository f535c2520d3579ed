package account

// PasswordHasher produces a deterministic one-way digest of a credential.
// The same plaintext always yields the same digest, which allows looking
// accounts up by email and digest.
type PasswordHasher interface {
	HashPassword(password RawPassword) (PasswordDigest, error)
	ValidatePassword(password RawPassword, digest PasswordDigest) bool
}

// PasswordGenerator produces random temporary passwords for new accounts
// and password resets.
type PasswordGenerator interface {
	GeneratePassword() RawPassword
}
