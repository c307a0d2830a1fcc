package errors

import (
	"strings"
	"unicode"
)

// MaxDimension bounds every square size iconforge will render or resample.
const MaxDimension = 8192

// ValidateSize checks that a square pixel dimension is usable.
func ValidateSize(size int) error {
	if size < 1 {
		return New(ErrCodeInvalidSize, "size must be positive, got %d", size)
	}
	if size > MaxDimension {
		return New(ErrCodeInvalidSize, "size %d exceeds maximum of %d", size, MaxDimension)
	}
	return nil
}

// ValidateOutputName validates a file name written into the output directory.
// It must be a simple basename: no separators, no traversal, no hidden files.
func ValidateOutputName(name string) error {
	if name == "" {
		return New(ErrCodeInvalidManifest, "output name cannot be empty")
	}

	if len(name) > 255 {
		return New(ErrCodeInvalidManifest, "output name too long (max 255 characters)")
	}

	for _, r := range name {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidManifest, "output name contains invalid control characters")
		}
	}

	if strings.ContainsAny(name, "/\\") {
		return New(ErrCodeInvalidManifest, "output name cannot contain path separators: %q", name)
	}

	if name == "." || name == ".." || strings.HasPrefix(name, ".") {
		return New(ErrCodeInvalidManifest, "output name cannot be a hidden file: %q", name)
	}

	return nil
}
