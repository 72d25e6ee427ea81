package annotator

import (
	"regexp"

	"jaldh/internal/domain"
)

var cppClass = regexp.MustCompile(`^\b(class|struct)\s+(\w+)\s*[:{]`)

// annotateClasses puts an overview block before every class or struct
// declaration. Unlike the function phases it does not look for an existing
// comment, so running it twice yields two blocks per declaration.
func annotateClasses(lines []string, cfg domain.HeaderConfig, cr string) ([]string, []domain.Construct) {
	syn := syntaxes[domain.LangCpp]

	var found []domain.Construct
	out := make([]string, 0, len(lines))
	for i, line := range lines {
		if m := cppClass.FindStringSubmatch(line); m != nil {
			cls := domain.Construct{
				Kind:    domain.KindClass,
				Keyword: m[1],
				Name:    m[2],
				Line:    i,
			}
			out = append(out, terminated([]string{
				syn.open + cfg.FunctionSeparator,
				cls.Name + " - " + cls.Keyword + " overview",
				"Constructor example: " + cls.Name + " obj;",
				cfg.FunctionSeparator + syn.close,
			}, cr)...)
			found = append(found, cls)
		}
		out = append(out, line)
	}
	return out, found
}
