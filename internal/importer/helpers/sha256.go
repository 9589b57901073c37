package helpers

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

// RowHash returns the hex encoded SHA256 hash of the fields of a row joined by commas.
//
// It is stored with imported resources to detect rows that have been imported before.
func RowHash(fields ...string) string {
	sum := sha256.Sum256([]byte(strings.Join(fields, ",")))
	return hex.EncodeToString(sum[:])
}
