package analyzer

import (
	"regexp"
	"strings"
)

// headerPattern matches a Python docstring or C block comment whose opening
// is immediately followed by a rule of at least five '-' or '=' characters.
var headerPattern = regexp.MustCompile(`(?s)("""|/\*)[-=]{5,}(.*?)("""|\*/)`)

// ExtractHeader returns the first documentation header in content, trimmed
// and with "\n" line endings.
func ExtractHeader(content string) (string, bool) {
	text := headerPattern.FindString(content)
	if text == "" {
		return "", false
	}
	return strings.TrimSpace(strings.ReplaceAll(text, "\r\n", "\n")), true
}
