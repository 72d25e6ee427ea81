package diff

import (
	"fmt"
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// DefaultContext is the number of unchanged lines shown around a change.
const DefaultContext = 2

// Line is one line of a line-level diff.
type Line struct {
	Op      diffmatchpatch.Operation
	Text    string // without line terminator
	NewLine int    // 1-based line in the new text, 0 for deletions
}

// Result is a line-level comparison of two texts.
type Result struct {
	Lines   []Line
	Added   int
	Deleted int
}

// Changed reports whether the texts differ.
func (r *Result) Changed() bool {
	return r.Added > 0 || r.Deleted > 0
}

// Compare diffs before and after line by line.
func Compare(before, after string) *Result {
	dmp := diffmatchpatch.New()
	a, b, table := dmp.DiffLinesToRunes(before, after)
	diffs := dmp.DiffCharsToLines(dmp.DiffMainRunes(a, b, false), table)

	res := &Result{}
	newLine := 0
	for _, d := range diffs {
		for _, text := range splitLines(d.Text) {
			line := Line{Op: d.Type, Text: text}
			switch d.Type {
			case diffmatchpatch.DiffInsert:
				newLine++
				line.NewLine = newLine
				res.Added++
			case diffmatchpatch.DiffDelete:
				res.Deleted++
			default:
				newLine++
				line.NewLine = newLine
			}
			res.Lines = append(res.Lines, line)
		}
	}
	return res
}

// Render prints the result as a unified-style preview for path, showing
// context unchanged lines around every change. Identical texts render as "".
func (r *Result) Render(path string, context int) string {
	if !r.Changed() {
		return ""
	}
	if context < 0 {
		context = 0
	}

	visible := make([]bool, len(r.Lines))
	for i, l := range r.Lines {
		if l.Op == diffmatchpatch.DiffEqual {
			continue
		}
		for j := i - context; j <= i+context; j++ {
			if j >= 0 && j < len(r.Lines) {
				visible[j] = true
			}
		}
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "--- %s\n+++ %s\n", path, path)
	for i, l := range r.Lines {
		if !visible[i] {
			continue
		}
		if i == 0 || !visible[i-1] {
			fmt.Fprintf(&sb, "@@ line %d @@\n", hunkStart(r.Lines, i))
		}
		switch l.Op {
		case diffmatchpatch.DiffInsert:
			sb.WriteString("+")
		case diffmatchpatch.DiffDelete:
			sb.WriteString("-")
		default:
			sb.WriteString(" ")
		}
		sb.WriteString(l.Text)
		sb.WriteString("\n")
	}
	return sb.String()
}

// hunkStart is the new-text line number at which a hunk beginning at i starts.
func hunkStart(lines []Line, i int) int {
	for j := i; j < len(lines); j++ {
		if lines[j].NewLine > 0 {
			return lines[j].NewLine
		}
	}
	// Only deletions until the end: report the line after the last kept one.
	for j := i - 1; j >= 0; j-- {
		if lines[j].NewLine > 0 {
			return lines[j].NewLine + 1
		}
	}
	return 1
}

func splitLines(text string) []string {
	if text == "" {
		return nil
	}
	lines := strings.SplitAfter(text, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	for i, l := range lines {
		lines[i] = strings.TrimSuffix(strings.TrimSuffix(l, "\n"), "\r")
	}
	return lines
}
