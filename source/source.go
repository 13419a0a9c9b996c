// Package source loads KIF text from files, optionally restricted to a range
// of lines.
package source

import (
	"fmt"
	"os"
	"strings"

	"github.com/pkg/errors"
)

// LineRange selects lines by 1-based, inclusive numbers. A Start below 1
// means the first line and an End below 1 means the last one.
type LineRange struct {
	Start int
	End   int
}

// All selects every line.
var All = LineRange{}

// Validate rejects ranges that end before they start.
func (r LineRange) Validate() error {
	if r.End > 0 && r.Start > r.End {
		return errors.Errorf("invalid line range %v: end before start", r)
	}
	return nil
}

func (r LineRange) String() string {
	start, end := "1", "$"
	if r.Start > 1 {
		start = fmt.Sprintf("%d", r.Start)
	}
	if r.End > 0 {
		end = fmt.Sprintf("%d", r.End)
	}
	return start + "-" + end
}

// Slice returns the lines of text selected by r, line terminators included.
// Ranges running past the end of text are truncated.
func Slice(text string, r LineRange) string {
	if r == All {
		return text
	}

	lines := strings.SplitAfter(text, "\n")
	if n := len(lines); n > 0 && lines[n-1] == "" {
		lines = lines[:n-1]
	}

	start := r.Start - 1
	if start < 0 {
		start = 0
	}
	end := len(lines)
	if r.End > 0 && r.End < end {
		end = r.End
	}
	if start >= end {
		return ""
	}
	return strings.Join(lines[start:end], "")
}

// ReadFile reads the file at path and returns the lines selected by r.
func ReadFile(path string, r LineRange) (string, error) {
	if err := r.Validate(); err != nil {
		return "", err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", errors.Wrapf(err, "read %s", path)
	}
	return Slice(string(data), r), nil
}
