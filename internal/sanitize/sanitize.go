package sanitize

import (
	"regexp"
	"strings"
)

var (
	// Matches any markup tag, e.g. <b> or </p>
	tagRegex = regexp.MustCompile(`<[^>]*>`)

	// Matches the named entities this package decodes
	entityRegex = regexp.MustCompile(`&(?:nbsp|amp|lt|gt|quot|#39);`)

	// Matches UUID-shaped mention tokens, e.g. @64475d57-...
	mentionRegex = regexp.MustCompile(`(?i)@[\da-f]{8}-[\da-f]{4}-[\da-f]{4}-[\da-f]{4}-[\da-f]{12}`)

	// Matches runs of two or more whitespace characters, newlines included
	spaceRegex = regexp.MustCompile(`\s\s+`)
)

// entities is the fixed set of decoded entities. Anything else is left as-is.
var entities = map[string]string{
	"&nbsp;": " ",
	"&amp;":  "&",
	"&lt;":   "<",
	"&gt;":   ">",
	"&quot;": `"`,
	"&#39;":  "'",
}

// CleanMessage strips markup tags, decodes a small fixed set of named
// entities, removes UUID-shaped mentions and collapses whitespace. It is
// pure and total; empty input yields empty output.
func CleanMessage(text string) string {
	if text == "" {
		return ""
	}
	cleaned := tagRegex.ReplaceAllString(text, " ")
	cleaned = entityRegex.ReplaceAllStringFunc(cleaned, func(m string) string {
		return entities[m]
	})
	cleaned = mentionRegex.ReplaceAllString(cleaned, "")
	cleaned = spaceRegex.ReplaceAllString(cleaned, " ")
	return strings.TrimSpace(cleaned)
}
