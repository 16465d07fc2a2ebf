// SPDX-License-Identifier: MPL-2.0

package token

import "strings"

// Delimiters lists every character that separates tokens.
const Delimiters = " \t\r\n\a"

// IsDelimiter reports whether r separates tokens.
func IsDelimiter(r rune) bool {
	return strings.ContainsRune(Delimiters, r)
}

// Tokenize splits line on maximal runs of delimiter characters.
// A line that is empty or made only of delimiters yields an empty, non-nil slice.
func Tokenize(line string) []string {
	tokens := strings.FieldsFunc(line, IsDelimiter)
	if tokens == nil {
		return []string{}
	}
	return tokens
}
