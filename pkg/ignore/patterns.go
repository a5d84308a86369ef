// File: pkg/ignore/patterns.go
package ignore

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

const (
	// unanchoredPrefix lets a pattern without a slash match at any depth.
	// The lazy optional group keeps the tail group as long as possible so a
	// directory-only rule can tell "matched an ancestor" from "matched itself".
	unanchoredPrefix = `^(?:.*?/)??`
	anchoredPrefix   = `^`

	// descendantSuffix matches the path itself or anything below it.
	descendantSuffix = `(/.*)?$`
)

// globToRegex converts a gitignore glob body into a regular expression
// fragment. '*' and '?' stay within one path segment, '**' crosses them.
func globToRegex(pattern string) string {
	var b strings.Builder
	for i := 0; i < len(pattern); {
		rest := pattern[i:]
		switch {
		case strings.HasPrefix(rest, "**/"):
			b.WriteString(`(?:.*/)?`)
			i += 3
		case rest == "/**":
			b.WriteString(`/.*`)
			i += 3
		case strings.HasPrefix(rest, "**"):
			b.WriteString(`.*`)
			i += 2
		case rest[0] == '*':
			b.WriteString(`[^/]*`)
			i++
		case rest[0] == '?':
			b.WriteString(`[^/]`)
			i++
		default:
			r, size := utf8.DecodeRuneInString(rest)
			b.WriteString(regexp.QuoteMeta(string(r)))
			i += size
		}
	}
	return b.String()
}

// anchorPattern wraps a converted body so it matches whole paths.
func anchorPattern(body string, anchored bool) string {
	if anchored {
		return anchoredPrefix + body + descendantSuffix
	}
	return unanchoredPrefix + body + descendantSuffix
}
