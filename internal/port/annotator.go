package port

import "jaldh/internal/domain"

// Annotator inserts missing documentation blocks into source text.
type Annotator interface {
	// Annotate returns content with documentation blocks added. It never
	// fails for string input.
	Annotate(content string, cfg domain.HeaderConfig, filename string, lang domain.Language) string

	// AnnotateDetailed is Annotate plus the constructs that received a block.
	AnnotateDetailed(content string, cfg domain.HeaderConfig, filename string, lang domain.Language) (string, []domain.Construct)
}
