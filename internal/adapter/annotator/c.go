package annotator

import (
	"regexp"
	"strings"

	"jaldh/internal/domain"
)

// cFunc matches a one-line function definition: return type (identifier plus
// optional modifiers, pointers, arrays), name, a parameter list without ';'
// and the opening brace.
var cFunc = regexp.MustCompile(`^\s*(\w[\w\s\*\[\]]+)\s+(\w+)\s*\(([^;]*)\)\s*\{`)

// Keywords that the cFunc pattern can mistake for a name: "else if (x) {"
// would otherwise be reported as a function named "if".
var cControlWords = map[string]bool{
	"if":     true,
	"for":    true,
	"while":  true,
	"switch": true,
	"return": true,
	"sizeof": true,
}

func (a *Annotator) annotateC(lines []string, cfg domain.HeaderConfig, filename, cr string) ([]string, []domain.Construct) {
	syn := syntaxes[domain.LangC]
	lines, found := withModuleHeader(lines, syn, cfg, filename, a.now(), cr)

	out := make([]string, 0, len(lines))
	for i, line := range lines {
		if fn, ok := matchCFunction(line); ok && !isComment(lineAt(lines, i-1), syn, cfg) {
			fn.Line = i
			out = append(out, terminated(cFunctionComment(fn, syn, cfg), cr)...)
			found = append(found, fn)
		}
		out = append(out, line)
	}
	return out, found
}

func matchCFunction(line string) (domain.Construct, bool) {
	m := cFunc.FindStringSubmatch(line)
	if m == nil {
		return domain.Construct{}, false
	}
	name := strings.TrimSpace(m[2])
	if cControlWords[name] {
		return domain.Construct{}, false
	}
	return domain.Construct{
		Kind:       domain.KindFunction,
		Name:       name,
		ReturnType: strings.TrimSpace(m[1]),
		Params:     cParams(m[3]),
	}, true
}

// cParams keeps the declared variable name of each parameter, i.e. its last
// whitespace-separated token. "void" and empty entries are dropped.
func cParams(list string) []string {
	return splitParams(list, func(p string) string {
		if p == "void" {
			return ""
		}
		fields := strings.Fields(p)
		return fields[len(fields)-1]
	})
}

// isComment reports whether a trimmed line opens a comment, or is the closing
// line of a block this package generated ("<separator>*/").
func isComment(trimmed string, syn commentSyntax, cfg domain.HeaderConfig) bool {
	return strings.HasPrefix(trimmed, syn.open) ||
		strings.HasPrefix(trimmed, syn.line) ||
		trimmed == cfg.FunctionSeparator+syn.close
}

func cFunctionComment(fn domain.Construct, syn commentSyntax, cfg domain.HeaderConfig) []string {
	lines := []string{
		syn.open + cfg.FunctionSeparator,
		fn.Name + " - <Describe what this function does>",
		"",
	}
	if len(fn.Params) > 0 {
		lines = append(lines, "Parameters:")
		for _, p := range fn.Params {
			lines = append(lines, "    "+p+" - <description>")
		}
	}
	return append(lines,
		"",
		"Returns:",
		"    "+fn.ReturnType+" - <description>",
		cfg.FunctionSeparator+syn.close,
	)
}
