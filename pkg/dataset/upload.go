// Package dataset filters uploaded dataset files and produces the mock
// column layout of an upload.
package dataset

import (
	"errors"
	"fmt"
	"path/filepath"
	"slices"
	"strings"
)

var ErrUnsupportedFormat = errors.New("unsupported file format")

// AcceptedExtensions are compared case-insensitively.
var AcceptedExtensions = []string{".csv", ".xlsx", ".xls"}

// ValidateFileName accepts CSV and Excel files by extension.
func ValidateFileName(name string) error {
	ext := strings.ToLower(filepath.Ext(name))
	if ext == "" || !slices.Contains(AcceptedExtensions, ext) {
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, name)
	}
	return nil
}
