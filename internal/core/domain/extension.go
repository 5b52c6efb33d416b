package domain

import (
	"path/filepath"
	"slices"
	"strings"
)

// DefaultBucketName is the bucket every upload lands in unless overridden
const DefaultBucketName = "opaltech-raw-data"

// MaxClientFileSize is the per-file ceiling checked before any network call (5 MiB)
const MaxClientFileSize int64 = 5 * 1024 * 1024

// AllowedExtensions is the extension allowlist, lowercase with the leading dot
var AllowedExtensions = []string{".xml", ".csv", ".json", ".edi"}

// AllowedExtensionsList renders the allowlist for error messages
func AllowedExtensionsList() string {
	return strings.Join(AllowedExtensions, ", ")
}

// HasAllowedSuffix reports whether the lowercased name ends with an allowed extension.
func HasAllowedSuffix(name string) bool {
	lower := strings.ToLower(name)
	for _, ext := range AllowedExtensions {
		if strings.HasSuffix(lower, ext) {
			return true
		}
	}
	return false
}

// HasAllowedExtension reports whether the lowercased extension of name is allowed.
func HasAllowedExtension(name string) bool {
	return slices.Contains(AllowedExtensions, strings.ToLower(filepath.Ext(name)))
}
