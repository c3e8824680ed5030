// Package transform turns catalogue rows into detection rule records.
package transform

import (
	"strings"

	"github.com/dlclark/regexp2"
)

// regexp2 gives \w and \s their Unicode meaning, so Vietnamese letters in
// case names survive sanitization.
var (
	unsafeChars = regexp2.MustCompile(`[^\w\s-]`, regexp2.None)
	whitespace  = regexp2.MustCompile(`\s+`, regexp2.None)
)

// Sanitize turns text into a filename-safe token: characters other than word
// characters, whitespace and hyphens are removed, whitespace runs become a
// single underscore, and the result is lower-cased.
func Sanitize(text string) string {
	// Replace only fails on a match timeout and these patterns have none.
	text, _ = unsafeChars.Replace(text, "", -1, -1)
	text, _ = whitespace.Replace(text, "_", -1, -1)
	return strings.ToLower(text)
}
