package usecase

import (
	"fmt"
	"path/filepath"
	"strings"

	"jaldh/internal/adapter/analyzer"
	"jaldh/internal/domain"
	"jaldh/internal/port"
)

var docRule = strings.Repeat("=", 60)

// DocumentResult contains the results of a header aggregation.
type DocumentResult struct {
	FilesWithHeader    int
	FilesWithoutHeader int
	Errors             []string
}

// DocumentUseCase collects the module headers of many files into one text
// file.
type DocumentUseCase struct {
	reader port.FileReader
	writer port.FileWriter
	sink   port.LogSink
}

// NewDocumentUseCase creates a new document use case.
func NewDocumentUseCase(reader port.FileReader, writer port.FileWriter, sink port.LogSink) *DocumentUseCase {
	return &DocumentUseCase{
		reader: reader,
		writer: writer,
		sink:   sink,
	}
}

// Render builds the aggregated document for paths. Unreadable files get an
// error entry and are counted in Errors.
func (u *DocumentUseCase) Render(paths []string) (string, *DocumentResult) {
	result := &DocumentResult{}
	var sb strings.Builder

	for _, path := range paths {
		content, err := u.reader.ReadFile(path)
		if err != nil {
			msg := fmt.Sprintf("File: %s - ERROR: Could not read file.", path)
			sb.WriteString(msg + "\n")
			sb.WriteString(docRule + "\n")
			u.sink.Log(msg)
			result.Errors = append(result.Errors, fmt.Errorf("%w: %s: %v", domain.ErrFileAccess, path, err).Error())
			continue
		}

		sb.WriteString("File: " + filepath.Base(path) + "\n")
		sb.WriteString(docRule + "\n")
		if header, ok := analyzer.ExtractHeader(content); ok {
			sb.WriteString(header + "\n")
			result.FilesWithHeader++
		} else {
			sb.WriteString("No documentation header found.\n")
			result.FilesWithoutHeader++
		}
		sb.WriteString(docRule + "\n")
	}

	return sb.String(), result
}

// Write renders the document for paths and writes it to output.
func (u *DocumentUseCase) Write(paths []string, output string) (*DocumentResult, error) {
	doc, result := u.Render(paths)
	if err := u.writer.WriteFile(output, doc); err != nil {
		u.sink.Log(fmt.Sprintf("ERROR: Could not write to output file: %s", output))
		return result, fmt.Errorf("%w: %s: %v", domain.ErrWriteFailure, output, err)
	}
	return result, nil
}
