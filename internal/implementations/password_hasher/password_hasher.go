package passwordhasher

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"

	"cuentas/internal/core/domain/account"
)

// Sha256 digests are deterministic so that accounts can be looked up by
// email and digest in a single repository query.
type Sha256 struct{}

func NewSha256() *Sha256 {
	return &Sha256{}
}

func (h *Sha256) HashPassword(password account.RawPassword) (account.PasswordDigest, error) {
	sum := sha256.Sum256([]byte(password))
	return account.PasswordDigest(hex.EncodeToString(sum[:])), nil
}

func (h *Sha256) ValidatePassword(password account.RawPassword, digest account.PasswordDigest) bool {
	actual, err := h.HashPassword(password)
	if err != nil {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(actual), []byte(digest)) == 1
}
