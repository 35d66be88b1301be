package auth

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	"github.com/google/uuid"
)

// PasswordHasher derives per-user salts and salted password digests. All
// methods are pure and safe for concurrent use.
type PasswordHasher struct{}

// CreateSalt builds a per-user salt from the platform-wide secret, the
// user's email and a random component. Plain string concatenation is weaker
// than a fixed-entropy random salt; kept for compatibility with existing
// stored credentials.
func (PasswordHasher) CreateSalt(platformSecret, email string) string {
	return fmt.Sprintf("%s_%s_%s", email, platformSecret, uuid.NewString())
}

// HashPassword returns the SHA-256 digest of password||salt, hex encoded.
// Hex keeps the stored value byte-safe; a raw byte-to-string decode would
// corrupt non-UTF-8 sequences.
func (PasswordHasher) HashPassword(password, salt string) string {
	sum := sha256.Sum256(append([]byte(password), []byte(salt)...))
	return hex.EncodeToString(sum[:])
}

// CompareHashes decodes both digests and compares byte by byte. The
// comparison is not constant-time.
func (PasswordHasher) CompareHashes(a, b string) bool {
	ab, err := hex.DecodeString(a)
	if err != nil {
		return false
	}
	bb, err := hex.DecodeString(b)
	if err != nil {
		return false
	}
	if len(ab) != len(bb) {
		return false
	}
	for i := range ab {
		if ab[i] != bb[i] {
			return false
		}
	}
	return true
}
