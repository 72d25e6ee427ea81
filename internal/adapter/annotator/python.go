package annotator

import (
	"regexp"
	"strings"

	"jaldh/internal/domain"
)

// pythonDef matches module-level function definitions only: indented (nested
// or method) definitions are left alone. Names may use any Unicode letter or
// digit, as Python 3 identifiers do.
var pythonDef = regexp.MustCompile(`^def\s+([\p{L}\p{M}\p{N}_]+)\s*\((.*?)\):`)

func (a *Annotator) annotatePython(lines []string, cfg domain.HeaderConfig, filename, cr string) ([]string, []domain.Construct) {
	syn := syntaxes[domain.LangPython]
	lines, found := withModuleHeader(lines, syn, cfg, filename, a.now(), cr)

	out := make([]string, 0, len(lines))
	for i, line := range lines {
		out = append(out, line)

		m := pythonDef.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		if strings.HasPrefix(lineAt(lines, i+1), syn.open) {
			continue
		}

		fn := domain.Construct{
			Kind:   domain.KindFunction,
			Name:   m[1],
			Params: pythonParams(m[2]),
			Line:   i,
		}
		out = append(out, terminated(pythonDocstring(fn, syn, cfg), cr)...)
		found = append(found, fn)
	}
	return out, found
}

// pythonParams returns the parameter names with default values removed.
func pythonParams(list string) []string {
	return splitParams(list, func(p string) string {
		name, _, _ := strings.Cut(p, "=")
		return strings.TrimSpace(name)
	})
}

func pythonDocstring(fn domain.Construct, syn commentSyntax, cfg domain.HeaderConfig) []string {
	const indent = "    "
	lines := []string{
		indent + syn.open + cfg.FunctionSeparator,
		indent + "Description: <Describe what " + fn.Name + " does>",
		"",
	}
	if len(fn.Params) > 0 {
		lines = append(lines, indent+"Parameters:")
		for _, p := range fn.Params {
			lines = append(lines, indent+indent+p+": <description>")
		}
	}
	return append(lines,
		"",
		indent+"Returns:",
		indent+indent+"<description>",
		indent+cfg.FunctionSeparator+syn.close,
	)
}
