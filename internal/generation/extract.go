package generation

import (
	"regexp"
	"strings"
)

// headerPattern matches a top-level section header such as "Experience:" at
// the start of a line.
var headerPattern = regexp.MustCompile(`(?m)^[A-Z][A-Za-z ]{0,40}:`)

// ExtractSection pulls the body of a labeled section out of free-form
// generated text. The header match is case-insensitive; the body runs until
// the next header-like line or the end of the text. Returns false when the
// section is missing or empty - callers treat that as a non-fatal miss.
func ExtractSection(text, name string) (string, bool) {
	headerRe, err := regexp.Compile(`(?im)^[ \t]*` + regexp.QuoteMeta(name) + `:[ \t]*`)
	if err != nil {
		return "", false
	}
	loc := headerRe.FindStringIndex(text)
	if loc == nil {
		return "", false
	}

	body := text[loc[1]:]
	if next := headerPattern.FindStringIndex(body); next != nil {
		body = body[:next[0]]
	}
	body = strings.TrimSpace(body)
	if body == "" {
		return "", false
	}
	return body, true
}
