// Package sanitize neutralizes control and escape sequences in strings
// lifted verbatim from untrusted log files before they reach a terminal.
//
// Usernames and raw lines in a security report are attacker-controlled; a
// crafted log entry could otherwise inject ANSI sequences into the rendered
// report.
package sanitize

import (
	"strings"
	"unicode"
)

const DefaultMaxDisplayLength = 256

// String sanitizes s for terminal display and truncates it to maxLen.
func String(s string, maxLen int) string {
	sanitized := ForTerminal(s)

	if maxLen > 0 && len(sanitized) > maxLen {
		if maxLen > 3 {
			return sanitized[:maxLen-3] + "..."
		}
		return sanitized[:maxLen]
	}
	return sanitized
}

// ForTerminal replaces escape and control bytes with visible placeholders.
func ForTerminal(s string) string {
	if s == "" {
		return s
	}

	needsSanitization := false
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c < 0x20 || c == 0x7F || c == 0x1B {
			needsSanitization = true
			break
		}
	}

	if !needsSanitization {
		return s
	}

	var result strings.Builder
	result.Grow(len(s))

	i := 0
	for i < len(s) {
		c := s[i]

		if c == 0x1B && i+1 < len(s) {
			i++
			if i < len(s) && s[i] == '[' {
				i++
				for i < len(s) && !isCSITerminator(s[i]) {
					i++
				}
				if i < len(s) {
					i++
				}
			}
			result.WriteString("[ESC]")
			continue
		}

		switch {
		case c == '\t':
			result.WriteByte(' ')
		case c == '\n':
			result.WriteByte(' ')
		case c == '\r':
			result.WriteString("[CR]")
		case c < 0x20:
			result.WriteString("[CTRL]")
		case c == 0x7F:
			result.WriteString("[DEL]")
		default:
			result.WriteByte(c)
		}
		i++
	}

	return result.String()
}

func isCSITerminator(c byte) bool {
	return (c >= 'A' && c <= 'Z') || (c >= 'a' && c <= 'z') || c == '@' || c == '`'
}

// IP strips anything that cannot appear in an IPv4 or IPv6 literal.
func IP(ip string) string {
	var result strings.Builder
	result.Grow(len(ip))

	for _, r := range ip {
		if unicode.IsDigit(r) || r == '.' || r == ':' ||
			(r >= 'a' && r <= 'f') || (r >= 'A' && r <= 'F') {
			result.WriteRune(r)
		}
	}

	sanitized := result.String()
	if sanitized == "" {
		return "[INVALID]"
	}
	return sanitized
}

// Username sanitizes an attempted username for display.
func Username(name string, maxLen int) string {
	return String(name, maxLen)
}
