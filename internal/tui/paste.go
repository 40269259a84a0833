package tui

import (
	"regexp"
	"strings"
)

var ansiEscapePattern = regexp.MustCompile(`\x1b\[[0-9;?]*[a-zA-Z]`)

var newlinePattern = regexp.MustCompile(`\n+`)

// SanitizePaste cleans pasted text: ANSI escape sequences and
// non-printable control characters are stripped (newline, tab and
// carriage return survive), CRLF becomes LF and trailing whitespace is
// trimmed.
func SanitizePaste(content string) string {
	content = ansiEscapePattern.ReplaceAllString(content, "")

	var b strings.Builder
	b.Grow(len(content))
	for _, r := range content {
		if r == '\n' || r == '\t' || r == '\r' || (r >= 32 && r != 127) {
			b.WriteRune(r)
		}
	}
	content = strings.ReplaceAll(b.String(), "\r\n", "\n")
	return strings.TrimRight(content, " \t\n\r")
}

// collapseNewlines folds newline runs into single spaces for
// single-line inputs.
func collapseNewlines(content string) string {
	return newlinePattern.ReplaceAllString(content, " ")
}
