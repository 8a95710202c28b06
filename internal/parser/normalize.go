package parser

import (
	"regexp"
	"strconv"
	"strings"
)

var multiSpaceRE = regexp.MustCompile(`\s+`)

func normaliseInput(raw string) string {
	raw = strings.TrimSpace(strings.ToLower(raw))
	if raw == "" {
		return ""
	}
	var b strings.Builder
	lastSpace := false
	for _, r := range raw {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
			lastSpace = false
			continue
		}
		if r == ' ' || r == '\t' || r == '\n' || r == '\r' || r == '-' || r == '_' || r == '/' || r == '\'' {
			if !lastSpace {
				b.WriteByte(' ')
			}
			lastSpace = true
		}
	}
	return strings.TrimSpace(multiSpaceRE.ReplaceAllString(b.String(), " "))
}

func tokenise(normalised string) []string {
	if strings.TrimSpace(normalised) == "" {
		return nil
	}
	return strings.Fields(normalised)
}

// parseChoiceToken maps "1", "2", "a", "b", "first", "option 2" style tokens
// to a 1-based option index. Returns 0 when the token is not a selection.
func parseChoiceToken(token string) int {
	token = strings.TrimSpace(strings.ToLower(token))
	if token == "" {
		return 0
	}
	if n, err := strconv.Atoi(token); err == nil && n >= 1 {
		return n
	}
	if len(token) == 1 && token[0] >= 'a' && token[0] <= 'f' {
		return int(token[0]-'a') + 1
	}
	switch token {
	case "first":
		return 1
	case "second":
		return 2
	case "third":
		return 3
	case "fourth":
		return 4
	case "fifth":
		return 5
	default:
		return 0
	}
}
