package telegram

import "strings"

// reserved lists the MarkdownV2 characters that must be escaped outside entities.
// '*' is left out so bold markers in the message survive.
const reserved = "_[]()~`>#+-=|{}.!"

// EscapeMarkdownV2 escapes reserved MarkdownV2 characters.
// Characters already preceded by a backslash are copied unchanged.
func EscapeMarkdownV2(text string) string {
	var b strings.Builder
	b.Grow(len(text) + len(text)/8)

	escaped := false
	for _, r := range text {
		switch {
		case escaped:
			escaped = false
		case r == '\\':
			escaped = true
		case strings.ContainsRune(reserved, r):
			b.WriteByte('\\')
		}
		b.WriteRune(r)
	}
	if escaped {
		// a trailing lone backslash would be rejected by the API
		b.WriteByte('\\')
	}
	return b.String()
}
