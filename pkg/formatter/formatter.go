package formatter

import (
	"strconv"
	"strings"
	"time"
)

const (
	displayDateLayout = "2006.01.02 15:04"
	titleDateLayout   = "2006.01.02"
)

// DisplayDate renders t the way it is shown to readers, e.g. 2025.03.14 10:22.
func DisplayDate(t time.Time) string {
	return t.Format(displayDateLayout)
}

// TitleDate renders the date part used in post titles, e.g. 2025.03.14.
func TitleDate(t time.Time) string {
	return t.Format(titleDateLayout)
}

// FormatNumber converts an integer to a string with commas as thousands separators.
// Example: 1234567 -> "1,234,567"
func FormatNumber(n int) string {
	s := strconv.Itoa(n)
	sign := ""
	if n < 0 {
		sign, s = "-", s[1:]
	}

	var sb strings.Builder
	lead := len(s) % 3
	if lead == 0 && len(s) > 0 {
		lead = 3
	}
	sb.WriteString(s[:lead])
	for i := lead; i < len(s); i += 3 {
		sb.WriteByte(',')
		sb.WriteString(s[i : i+3])
	}
	return sign + sb.String()
}

// MaskToken keeps the first and last n characters of a secret.
func MaskToken(token string, n int) string {
	if len(token) <= 2*n {
		return strings.Repeat("*", len(token))
	}
	return token[:n] + "..." + token[len(token)-n:]
}

// EscapeMarkdownV2 escapes special characters in Markdown V2 format
func EscapeMarkdownV2(s string) string {
	var sb strings.Builder
	for _, r := range s {
		switch r {
		case '_', '*', '[', ']', '(', ')', '~', '`', '>', '#', '+', '-', '=', '|', '{', '}', '.', '!':
			sb.WriteRune('\\')
			sb.WriteRune(r)
		default:
			sb.WriteRune(r)
		}
	}
	return sb.String()
}
