package auth

import (
	"crypto/sha512"
	"encoding/hex"
	"math/rand"
	"strings"

	"github.com/google/uuid"
)

// PasscodeLength is the number of decimal digits in a signup passcode.
const PasscodeLength = 6

// HashPassword returns the sha512 hex digest of the UTF-8 password bytes.
// No per-user salt: stored digests must stay comparable with existing rows.
func HashPassword(password string) string {
	sum := sha512.Sum512([]byte(password))
	return hex.EncodeToString(sum[:])
}

// NewAccessToken returns a random 128-bit token as 32 lowercase hex chars.
func NewAccessToken() string {
	return strings.ReplaceAll(uuid.New().String(), "-", "")
}

// NewPasscode returns PasscodeLength random decimal digits. Each digit is
// uniform over 0-9, so leading zeros are possible.
func NewPasscode() string {
	var b strings.Builder
	for i := 0; i < PasscodeLength; i++ {
		b.WriteByte(byte('0' + rand.Intn(10)))
	}
	return b.String()
}
