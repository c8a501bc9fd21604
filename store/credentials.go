package store

import (
	"crypto/rand"
	"encoding/base64"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/utkarshk014/catalyst/model"
)

// bcrypt output always starts with this marker, which lets HashCredential
// distinguish raw passwords from already-hashed values.
const hashMarker = "$2"

// HashCredential generates a bcrypt hash of the password. Passing an
// already-hashed value back in returns it unchanged, so a credential is
// hashed at most once no matter how often a record is re-saved.
func HashCredential(password string) (string, error) {
	if strings.HasPrefix(password, hashMarker) {
		return password, nil
	}
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return string(bytes), err
}

// VerifyCredential compares a raw password against the organization's stored
// hash. bcrypt's comparison is constant-time; plaintext is never compared.
func VerifyCredential(org *model.Organization, password string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(org.PasswordHash), []byte(password))
	return err == nil
}

// GenerateAPIKey generates a cryptographically secure opaque bearer key.
// Issued once per organization at creation and immutable thereafter.
func GenerateAPIKey() (string, error) {
	bytes := make([]byte, 32)
	if _, err := rand.Read(bytes); err != nil {
		return "", err
	}
	return base64.URLEncoding.EncodeToString(bytes), nil
}
