package annotator

import (
	"path/filepath"
	"strings"
	"time"

	"jaldh/internal/domain"
	"jaldh/internal/port"
)

var _ port.Annotator = (*Annotator)(nil)

// Annotator inserts missing module headers and function/class documentation
// blocks into source text. Detection is line oriented: each construct must fit
// on a single line to be recognized.
type Annotator struct {
	now func() time.Time
}

// New creates an annotator that stamps headers with the current time.
func New() *Annotator {
	return &Annotator{now: time.Now}
}

// NewWithClock creates an annotator with a fixed time source.
func NewWithClock(now func() time.Time) *Annotator {
	if now == nil {
		now = time.Now
	}
	return &Annotator{now: now}
}

// Annotate returns content with documentation blocks added according to lang.
// LangCpp runs the C phases and, for header files (.h, .hpp), the class phase.
// Unknown languages return content unchanged; rejecting them is the caller's job.
func (a *Annotator) Annotate(content string, cfg domain.HeaderConfig, filename string, lang domain.Language) string {
	out, _ := a.AnnotateDetailed(content, cfg, filename, lang)
	return out
}

// AnnotateDetailed is like Annotate but also reports every construct that
// received a block, in output order.
func (a *Annotator) AnnotateDetailed(content string, cfg domain.HeaderConfig, filename string, lang domain.Language) (string, []domain.Construct) {
	src := splitSource(content)

	var found []domain.Construct
	switch lang {
	case domain.LangPython:
		src.lines, found = a.annotatePython(src.lines, cfg, filename, src.cr)
	case domain.LangC:
		src.lines, found = a.annotateC(src.lines, cfg, filename, src.cr)
	case domain.LangCpp:
		src.lines, found = a.annotateC(src.lines, cfg, filename, src.cr)
		if IsHeaderFile(filename) {
			var classes []domain.Construct
			src.lines, classes = annotateClasses(src.lines, cfg, src.cr)
			found = append(found, classes...)
		}
	default:
		return content, nil
	}

	return src.join(), found
}

// IsHeaderFile reports whether filename has a C/C++ header extension.
func IsHeaderFile(filename string) bool {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".h", ".hpp":
		return true
	}
	return false
}

// source is the working line buffer. Input lines keep their own "\r" so
// files with mixed line endings come back byte for byte; generated lines get
// cr, the terminator style of the first input line.
type source struct {
	lines           []string
	cr              string
	trailingNewline bool
}

func splitSource(content string) source {
	var s source
	if content == "" {
		return s
	}
	if i := strings.IndexByte(content, '\n'); i > 0 && content[i-1] == '\r' {
		s.cr = "\r"
	}
	if strings.HasSuffix(content, "\n") {
		s.trailingNewline = true
		content = strings.TrimSuffix(content, "\n")
	}
	s.lines = strings.Split(content, "\n")
	return s
}

func (s source) join() string {
	out := strings.Join(s.lines, "\n")
	if s.trailingNewline {
		out += "\n"
	}
	return out
}

// terminated appends cr to every generated line.
func terminated(block []string, cr string) []string {
	if cr == "" {
		return block
	}
	for i := range block {
		block[i] += cr
	}
	return block
}

func lineAt(lines []string, i int) string {
	if i < 0 || i >= len(lines) {
		return ""
	}
	return strings.TrimSpace(lines[i])
}
