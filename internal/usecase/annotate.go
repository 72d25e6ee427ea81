package usecase

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"jaldh/internal/adapter/diff"
	"jaldh/internal/adapter/fs"
	"jaldh/internal/domain"
	"jaldh/internal/logger"
	"jaldh/internal/port"
)

var extLanguages = map[string]domain.Language{
	".py":  domain.LangPython,
	".c":   domain.LangC,
	".h":   domain.LangC,
	".cpp": domain.LangCpp,
	".hpp": domain.LangCpp,
	".cc":  domain.LangCpp,
}

// ResolveLanguage returns the language used for path. An explicit tag wins
// over the extension; LangAuto (or "") looks the extension up. Failures wrap
// domain.ErrUnsupportedLanguage.
func ResolveLanguage(path string, lang domain.Language) (domain.Language, error) {
	switch lang {
	case domain.LangPython, domain.LangC, domain.LangCpp:
		return lang, nil
	case domain.LangAuto, "":
	default:
		return "", fmt.Errorf("%w: unknown language %q", domain.ErrUnsupportedLanguage, lang)
	}

	ext := strings.ToLower(filepath.Ext(path))
	if l, ok := extLanguages[ext]; ok {
		return l, nil
	}
	return "", fmt.Errorf("%w: unsupported file extension for auto-detection: %q", domain.ErrUnsupportedLanguage, ext)
}

// AnnotateOptions controls one annotation run.
type AnnotateOptions struct {
	Source       string // recorded in the history
	Lang         domain.Language
	OutputPrefix string // write <dir>/<prefix><base> instead of overwriting
	DryRun       bool
	Diff         bool
	DiffContext  int
}

// ProgressFunc is called after each file with the number of files done.
type ProgressFunc func(done, total int, path string)

// FileDiff is the preview of the changes made to one file.
type FileDiff struct {
	Path string
	Text string
}

// AnnotateResult contains the results of an annotation run.
type AnnotateResult struct {
	RunID          string
	FilesAnnotated int
	FilesUnchanged int
	FilesSkipped   int
	FilesFailed    int
	BlocksAdded    int
	Records        []domain.FileRecord
	Diffs          []FileDiff
	Errors         []string
}

// AnnotateUseCase reads source files, inserts missing documentation blocks
// and writes the result back.
type AnnotateUseCase struct {
	annotator port.Annotator
	reader    port.FileReader
	writer    port.FileWriter
	sink      port.LogSink
	history   port.HistoryStore
	header    domain.HeaderConfig
	now       func() time.Time
	newID     func() string
}

// NewAnnotateUseCase creates a new annotate use case.
func NewAnnotateUseCase(
	annotator port.Annotator,
	reader port.FileReader,
	writer port.FileWriter,
	sink port.LogSink,
	history port.HistoryStore,
	header domain.HeaderConfig,
) *AnnotateUseCase {
	return &AnnotateUseCase{
		annotator: annotator,
		reader:    reader,
		writer:    writer,
		sink:      sink,
		history:   history,
		header:    header,
		now:       time.Now,
		newID:     uuid.NewString,
	}
}

// Run annotates every path in order. A failing file is recorded, logged and
// skipped; the run itself only fails if the history cannot be opened for it.
func (u *AnnotateUseCase) Run(paths []string, opts AnnotateOptions, progress ProgressFunc) (*AnnotateResult, error) {
	run := domain.Run{
		ID:        u.newID(),
		StartedAt: u.now(),
		Source:    opts.Source,
		Lang:      opts.Lang,
		DryRun:    opts.DryRun,
	}
	if err := u.history.PutRun(run); err != nil {
		return nil, fmt.Errorf("failed to record run: %w", err)
	}

	result := &AnnotateResult{RunID: run.ID}
	for i, path := range paths {
		rec, fd, err := u.annotateFile(path, opts)
		rec.RunID = run.ID
		rec.At = u.now()

		switch rec.Status {
		case domain.StatusAnnotated:
			result.FilesAnnotated++
			result.BlocksAdded += rec.Blocks
		case domain.StatusUnchanged:
			result.FilesUnchanged++
		case domain.StatusUnsupported:
			result.FilesSkipped++
		case domain.StatusFailed:
			result.FilesFailed++
		}
		if err != nil {
			rec.Error = err.Error()
			result.Errors = append(result.Errors, err.Error())
			u.sink.Log(fmt.Sprintf("Error processing file %s: %v", path, err))
			logger.Debug("%s: %v", path, err)
		}
		if fd != nil {
			result.Diffs = append(result.Diffs, *fd)
		}
		result.Records = append(result.Records, rec)

		if err := u.history.PutFile(rec); err != nil {
			logger.Warn("failed to record %s in history: %v", path, err)
		}
		if progress != nil {
			progress(i+1, len(paths), path)
		}
	}

	u.sink.Log(fmt.Sprintf("Run %s finished: %d annotated, %d unchanged, %d skipped, %d failed",
		run.ID, result.FilesAnnotated, result.FilesUnchanged, result.FilesSkipped, result.FilesFailed))
	return result, nil
}

func (u *AnnotateUseCase) annotateFile(path string, opts AnnotateOptions) (domain.FileRecord, *FileDiff, error) {
	rec := domain.FileRecord{Path: path}

	lang, err := ResolveLanguage(path, opts.Lang)
	if err != nil {
		rec.Status = domain.StatusUnsupported
		return rec, nil, fmt.Errorf("%s: %w", path, err)
	}
	rec.Lang = lang

	content, err := u.reader.ReadFile(path)
	if err != nil {
		rec.Status = domain.StatusFailed
		return rec, nil, fmt.Errorf("%w: %s (lang %s): %v", domain.ErrFileAccess, path, lang, err)
	}

	out, constructs := u.annotator.AnnotateDetailed(content, u.header, path, lang)
	changes := diff.Compare(content, out)
	rec.Blocks = len(constructs)
	rec.LinesAdded = changes.Added
	rec.Status = domain.StatusAnnotated
	if out == content {
		rec.Status = domain.StatusUnchanged
	}
	logger.Debug("%s (%s): %d blocks, %d lines added", path, lang, rec.Blocks, rec.LinesAdded)

	var fd *FileDiff
	if opts.Diff && changes.Changed() {
		fd = &FileDiff{Path: path, Text: changes.Render(path, opts.DiffContext)}
	}

	target := fs.PrefixedPath(path, opts.OutputPrefix)
	if target != path {
		rec.OutputPath = target
	}
	// An in-place rewrite of identical text is skipped; prefixed output is
	// always produced.
	if opts.DryRun || (target == path && rec.Status == domain.StatusUnchanged) {
		return rec, fd, nil
	}

	if err := u.writer.WriteFile(target, out); err != nil {
		rec.Status = domain.StatusFailed
		return rec, fd, fmt.Errorf("%w: %s (lang %s): %v", domain.ErrWriteFailure, target, lang, err)
	}
	return rec, fd, nil
}
