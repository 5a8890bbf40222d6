// Package diff computes line diffs of extracted presentation text.
package diff

import (
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

type Line struct {
	Type    string `json:"type"`
	Text    string `json:"text"`
	OldLine int    `json:"old_line,omitempty"`
	NewLine int    `json:"new_line,omitempty"`
}

const (
	LineContext = "context"
	LineAdded   = "added"
	LineRemoved = "removed"
)

const MaxDiffLines = 5000

// Comparison is the outcome of comparing two texts line by line. Lines holds
// only added and removed lines unless context was requested.
type Comparison struct {
	Identical bool   `json:"identical"`
	Added     int    `json:"added"`
	Removed   int    `json:"removed"`
	Truncated bool   `json:"truncated,omitempty"`
	Lines     []Line `json:"lines"`
}

// Lines diffs before and after and returns every line tagged with its role.
func Lines(before, after string) []Line {
	dmp := diffmatchpatch.New()
	beforeChars, afterChars, lineArray := dmp.DiffLinesToChars(before, after)
	diffs := dmp.DiffMain(beforeChars, afterChars, false)
	diffs = dmp.DiffCharsToLines(diffs, lineArray)

	lines := []Line{}
	oldLine := 1
	newLine := 1
	for _, d := range diffs {
		chunkLines := strings.Split(d.Text, "\n")
		if len(chunkLines) > 0 && chunkLines[len(chunkLines)-1] == "" {
			chunkLines = chunkLines[:len(chunkLines)-1]
		}
		for _, line := range chunkLines {
			switch d.Type {
			case diffmatchpatch.DiffEqual:
				lines = append(lines, Line{Type: LineContext, Text: line, OldLine: oldLine, NewLine: newLine})
				oldLine++
				newLine++
			case diffmatchpatch.DiffDelete:
				lines = append(lines, Line{Type: LineRemoved, Text: line, OldLine: oldLine})
				oldLine++
			case diffmatchpatch.DiffInsert:
				lines = append(lines, Line{Type: LineAdded, Text: line, NewLine: newLine})
				newLine++
			}
		}
	}
	return lines
}

// Compare diffs the two texts. Inputs with more than maxLines lines in total
// are not diffed and come back marked Truncated.
func Compare(before, after string, maxLines int, withContext bool) Comparison {
	if maxLines <= 0 {
		maxLines = MaxDiffLines
	}
	if before == after {
		return Comparison{Identical: true, Lines: []Line{}}
	}
	if lineCount(before)+lineCount(after) > maxLines {
		return Comparison{Truncated: true, Lines: []Line{}}
	}
	result := Comparison{Lines: []Line{}}
	for _, line := range Lines(before, after) {
		switch line.Type {
		case LineAdded:
			result.Added++
		case LineRemoved:
			result.Removed++
		default:
			if !withContext {
				continue
			}
		}
		result.Lines = append(result.Lines, line)
	}
	result.Identical = result.Added == 0 && result.Removed == 0
	return result
}

func lineCount(value string) int {
	if value == "" {
		return 0
	}
	return strings.Count(value, "\n") + 1
}
