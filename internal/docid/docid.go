// Package docid derives deterministic document IDs from file paths.
package docid

import (
	"crypto/sha256"
	"encoding/hex"
	"path/filepath"
)

const prefix = "file:"

// ForPath returns a stable document ID for the given absolute path. The
// same path always yields the same ID, so re-ingesting a file updates
// the existing document.
func ForPath(absolutePath string) string {
	normalized := filepath.Clean(absolutePath)
	hash := sha256.Sum256([]byte(normalized))
	return prefix + hex.EncodeToString(hash[:])
}
