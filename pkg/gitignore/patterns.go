package gitignore

import (
	"regexp"
	"strings"
)

// Precompiled regular expressions used in pattern translation.
var (
	doubleStarMiddlePattern   = regexp.MustCompile(`/\*\*/`)
	doubleStarTrailingPattern = regexp.MustCompile(`/\*\*$`)
	doubleStarLeadingPattern  = regexp.MustCompile(`^\*\*/`)
	singleStarPattern         = regexp.MustCompile(`\*`)
)

// parsePatternLine translates one ignore-file line into a compiled regular
// expression plus its negation flag. The third return value is false for
// blank lines, comments, and patterns that fail to compile.
func parsePatternLine(line string) (*regexp.Regexp, bool, bool) {
	trimmed := strings.TrimSpace(line)

	if trimmed == "" || strings.HasPrefix(trimmed, "#") {
		return nil, false, false
	}

	negate := false
	if strings.HasPrefix(trimmed, "!") {
		negate = true
		trimmed = strings.TrimPrefix(trimmed, "!")
	}

	// `\#` and `\!` escape the comment and negation markers.
	if strings.HasPrefix(trimmed, `\#`) || strings.HasPrefix(trimmed, `\!`) {
		trimmed = trimmed[1:]
	}

	// A trailing slash restricts the rule to directories and their
	// descendants; a leading slash anchors it to the root.
	dirOnly := strings.HasSuffix(trimmed, "/")
	trimmed = strings.TrimSuffix(trimmed, "/")
	anchored := strings.HasPrefix(trimmed, "/")
	trimmed = strings.TrimPrefix(trimmed, "/")

	if trimmed == "" {
		return nil, false, false
	}

	expr := escapeSpecialChars(trimmed)
	expr = markDoubleStars(expr)
	expr = wildcardToRegex(expr)
	expr = resolveDoubleStars(expr)
	expr = anchorPattern(expr, anchored, dirOnly)

	re, err := regexp.Compile(expr)
	if err != nil {
		return nil, false, false
	}
	return re, negate, true
}

// escapeSpecialChars escapes regex metacharacters except '*', '?', and '/'.
func escapeSpecialChars(pattern string) string {
	const specialChars = `.+()|^$[]{}`
	for _, char := range specialChars {
		pattern = strings.ReplaceAll(pattern, string(char), `\`+string(char))
	}
	return pattern
}

// Placeholder tokens for '**' segments. They keep the regex text the double
// stars expand into out of reach of the single-star conversion; pattern
// lines never contain NUL bytes, so the tokens cannot collide.
const (
	doubleStarMiddleToken   = "\x00m\x00"
	doubleStarTrailingToken = "\x00t\x00"
	doubleStarLeadingToken  = "\x00l\x00"
)

// markDoubleStars substitutes '**' segments with placeholder tokens.
func markDoubleStars(pattern string) string {
	pattern = doubleStarMiddlePattern.ReplaceAllString(pattern, doubleStarMiddleToken)
	pattern = doubleStarTrailingPattern.ReplaceAllString(pattern, doubleStarTrailingToken)
	pattern = doubleStarLeadingPattern.ReplaceAllString(pattern, doubleStarLeadingToken)
	return pattern
}

// resolveDoubleStars rewrites the placeholder tokens into their regex
// equivalents: any depth in the middle, anything below at the tail, any
// prefix of directories at the head.
func resolveDoubleStars(pattern string) string {
	pattern = strings.ReplaceAll(pattern, doubleStarMiddleToken, `(/|/.+/)`)
	pattern = strings.ReplaceAll(pattern, doubleStarTrailingToken, `(/.*)?`)
	pattern = strings.ReplaceAll(pattern, doubleStarLeadingToken, `(.*/)?`)
	return pattern
}

// wildcardToRegex converts the remaining '*' and '?' wildcards. A single
// star never crosses a path separator.
func wildcardToRegex(pattern string) string {
	pattern = singleStarPattern.ReplaceAllString(pattern, `[^/]*`)
	return strings.ReplaceAll(pattern, "?", ".")
}

// anchorPattern pins the expression to whole candidate paths. Directory-only
// rules require the trailing slash that directory candidates carry, so a
// plain file sharing the name of a directory rule does not match.
func anchorPattern(pattern string, anchored, dirOnly bool) string {
	if dirOnly {
		pattern += `/(.*)?$`
	} else {
		pattern += `(/.*)?$`
	}

	if anchored {
		return "^" + pattern
	}
	return `^(|.*/)` + pattern
}
