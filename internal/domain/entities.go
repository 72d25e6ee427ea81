package domain

import "time"

// Language identifies which annotation rules apply to a source file.
type Language string

const (
	LangAuto   Language = "auto"
	LangPython Language = "python"
	LangC      Language = "c"
	LangCpp    Language = "cpp"
)

// Languages lists the tags accepted on the command line.
var Languages = []Language{LangPython, LangC, LangCpp, LangAuto}

// ParseLanguage validates a language tag.
func ParseLanguage(s string) (Language, error) {
	for _, l := range Languages {
		if string(l) == s {
			return l, nil
		}
	}
	return "", ErrUnsupportedLanguage
}

// HeaderConfig holds the settings used when synthesizing documentation blocks.
// It is read-only to the annotator.
type HeaderConfig struct {
	FileSeparator     string
	FunctionSeparator string
	Author            string
	IncludeDate       bool
	DateFormat        string // strftime pattern, e.g. %Y-%m-%d
}

const DefaultSeparator = "------------------------------"

// DefaultHeaderConfig returns the header settings used when nothing is configured.
func DefaultHeaderConfig() HeaderConfig {
	return HeaderConfig{
		FileSeparator:     DefaultSeparator,
		FunctionSeparator: DefaultSeparator,
		Author:            "Anonymous",
		IncludeDate:       true,
		DateFormat:        "%Y-%m-%d",
	}
}

type ConstructKind string

const (
	KindModule   ConstructKind = "module"
	KindFunction ConstructKind = "function"
	KindClass    ConstructKind = "class"
)

// Construct is a source element that received a documentation block.
// Line is the index of the signature line in the buffer the phase scanned;
// for module headers it is always 0.
type Construct struct {
	Kind       ConstructKind
	Name       string
	Params     []string
	ReturnType string
	Keyword    string // "class" or "struct"
	Line       int
}

// FileStatus is the outcome of processing one file.
type FileStatus string

const (
	StatusAnnotated   FileStatus = "annotated"
	StatusUnchanged   FileStatus = "unchanged"
	StatusUnsupported FileStatus = "unsupported"
	StatusFailed      FileStatus = "failed"
)

// FileRecord describes what happened to one file during a run.
type FileRecord struct {
	RunID      string     `json:"run_id"`
	Path       string     `json:"path"`
	OutputPath string     `json:"output_path,omitempty"`
	Lang       Language   `json:"lang,omitempty"`
	Status     FileStatus `json:"status"`
	Blocks     int        `json:"blocks"`
	LinesAdded int        `json:"lines_added"`
	Error      string     `json:"error,omitempty"`
	At         time.Time  `json:"at"`
}

// Run is one invocation of the annotator over a set of files.
type Run struct {
	ID        string    `json:"id"`
	StartedAt time.Time `json:"started_at"`
	Source    string    `json:"source"`
	Lang      Language  `json:"lang"`
	DryRun    bool      `json:"dry_run"`
}
