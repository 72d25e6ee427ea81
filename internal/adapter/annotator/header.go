package annotator

import (
	"strings"
	"time"

	"github.com/ncruces/go-strftime"

	"jaldh/internal/domain"
)

// commentSyntax is the block comment pair a language uses for headers.
type commentSyntax struct {
	open  string
	close string
	line  string
}

var syntaxes = map[domain.Language]commentSyntax{
	domain.LangPython: {open: `"""`, close: `"""`, line: "#"},
	domain.LangC:      {open: "/*", close: "*/", line: "//"},
	domain.LangCpp:    {open: "/*", close: "*/", line: "//"},
}

func hasModuleHeader(lines []string, syn commentSyntax) bool {
	return len(lines) > 0 && strings.HasPrefix(strings.TrimSpace(lines[0]), syn.open)
}

// moduleHeader renders the file-level header block, including the blank line
// that separates it from the first input line.
func moduleHeader(syn commentSyntax, cfg domain.HeaderConfig, filename string, now time.Time) []string {
	lines := []string{
		syn.open + cfg.FileSeparator,
		"Module: " + filename,
		"Description: <Short module description>",
		"Notes: <Special remarks or dependencies>",
		"Author: " + cfg.Author,
	}
	if cfg.IncludeDate {
		lines = append(lines, "Created: "+FormatDate(cfg.DateFormat, now))
	}
	return append(lines, cfg.FileSeparator+syn.close, "")
}

// withModuleHeader prepends a header unless the first line already opens one.
func withModuleHeader(lines []string, syn commentSyntax, cfg domain.HeaderConfig, filename string, now time.Time, cr string) ([]string, []domain.Construct) {
	if hasModuleHeader(lines, syn) {
		return lines, nil
	}
	header := terminated(moduleHeader(syn, cfg, filename, now), cr)
	out := make([]string, 0, len(header)+len(lines))
	out = append(out, header...)
	out = append(out, lines...)
	return out, []domain.Construct{{Kind: domain.KindModule, Name: filename}}
}

// FormatDate formats t with a strftime pattern. An empty pattern falls back
// to %Y-%m-%d.
func FormatDate(pattern string, t time.Time) string {
	if pattern == "" {
		pattern = domain.DefaultHeaderConfig().DateFormat
	}
	return strftime.Format(pattern, t)
}

// splitParams splits a parameter list on commas, applies clean to every
// non-blank token and keeps the non-empty results.
func splitParams(list string, clean func(string) string) []string {
	var params []string
	for _, p := range strings.Split(list, ",") {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		if p = clean(p); p != "" {
			params = append(params, p)
		}
	}
	return params
}
