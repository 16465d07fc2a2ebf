// SPDX-License-Identifier: MPL-2.0

package cueutil

import (
	"fmt"
	"strings"

	"cuelang.org/go/cue/errors"
)

// DefaultMaxFileSize is the largest document Schema will read (1MB).
const DefaultMaxFileSize int64 = 1 << 20

// FormatError prefixes every CUE error in err with the file name and the
// dotted field path it refers to, for example
//
//	kash.toml: line_editor.history_limit: invalid value -5 (out of bound >=-1)
//
// Several errors are listed one per line under "validation failed".
func FormatError(err error, filePath string) error {
	if err == nil {
		return nil
	}
	list := errors.Errors(err)
	if len(list) == 0 {
		return fmt.Errorf("%s: %w", filePath, err)
	}

	lines := make([]string, 0, len(list))
	for _, e := range list {
		lines = append(lines, describe(e))
	}
	if len(lines) == 1 {
		return fmt.Errorf("%s: %s", filePath, lines[0])
	}
	return fmt.Errorf("%s: validation failed:\n  %s", filePath, strings.Join(lines, "\n  "))
}

// describe renders one error as "<path>: <message>", dropping the path CUE
// already put at the front of some messages.
func describe(e errors.Error) string {
	msg := e.Error()
	path := formatPath(errors.Path(e))
	if path == "" {
		return msg
	}
	if rest, ok := strings.CutPrefix(msg, path); ok {
		msg = strings.TrimSpace(strings.TrimPrefix(rest, ":"))
	}
	return path + ": " + msg
}

// formatPath joins CUE path selectors with dots. The configuration schema
// has no lists, so every selector is a field name.
func formatPath(path []string) string {
	return strings.Join(path, ".")
}

// CheckFileSize returns an error when data exceeds maxSize bytes.
func CheckFileSize(data []byte, maxSize int64, filename string) error {
	if n := int64(len(data)); n > maxSize {
		return fmt.Errorf("%s: file size %d bytes exceeds maximum %d bytes", filename, n, maxSize)
	}
	return nil
}
