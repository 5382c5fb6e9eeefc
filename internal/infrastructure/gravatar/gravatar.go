package gravatar

import (
	"crypto/md5"
	"encoding/hex"
	"strings"
)

const baseURL = "https://www.gravatar.com/avatar/"

// URL derives the gravatar image URL for an email address. The address is
// trimmed and lowercased before hashing, per the gravatar spec.
func URL(email string) string {
	normalized := strings.ToLower(strings.TrimSpace(email))
	sum := md5.Sum([]byte(normalized))

	return baseURL + hex.EncodeToString(sum[:]) + "?d=identicon"
}
