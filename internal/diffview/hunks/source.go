package hunks

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"github.com/codalotl/diffview/internal/q/termformat"
)

// binarySniffLen bounds how much of a file is scanned for NUL when classifying it as
// binary, mirroring git's heuristic.
const binarySniffLen = 8000

// FileSource implements diffview.Source over an in-memory snapshot of file contents.
// Every path is registered up front with Add or Load; rendering then never touches the
// filesystem.
//
// Text content is stored as display-ready lines: tabs expanded, control characters
// sanitized (see termformat.Sanitize). Binary content is kept as raw bytes.
type FileSource struct {
	tabWidth int
	data     map[string][]byte
	lines    map[string][]string // 1-based at index-1; absent for binary paths
}

// NewFileSource returns an empty source. tabWidth is the number of spaces each tab
// expands to in text lines; <= 0 leaves tabs to be escaped by sanitization.
func NewFileSource(tabWidth int) *FileSource {
	return &FileSource{
		tabWidth: tabWidth,
		data:     make(map[string][]byte),
		lines:    make(map[string][]string),
	}
}

// Add registers path with content. Content with a NUL byte in its first 8000 bytes is
// classified as binary.
func (s *FileSource) Add(path string, content []byte) {
	s.data[path] = content
	if isBinary(content) {
		delete(s.lines, path)
		return
	}
	s.lines[path] = displayLines(string(content), s.tabWidth)
}

// Load reads path from disk and registers it. A path that does not exist is registered
// as empty text, so one-sided pairs (created or deleted files) diff against nothing.
func (s *FileSource) Load(path string) error {
	content, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		s.Add(path, nil)
		return nil
	}
	if err != nil {
		return fmt.Errorf("hunks: load %s: %w", path, err)
	}
	s.Add(path, content)
	return nil
}

// Text returns the raw text of a registered text path, for diffing. Binary paths
// return "".
func (s *FileSource) Text(path string) string {
	if _, ok := s.lines[path]; !ok {
		return ""
	}
	return string(s.mustData(path))
}

// Data implements diffview.Source.
func (s *FileSource) Data(path string) ([]byte, bool) {
	data := s.mustData(path)
	_, text := s.lines[path]
	return data, !text
}

// Line implements diffview.Source. Asking for an unregistered path or an out-of-range
// number is a programming error.
func (s *FileSource) Line(path string, number int) string {
	lines, ok := s.lines[path]
	if !ok {
		panic(fmt.Errorf("hunks: no text lines for %s", path))
	}
	if number < 1 || number > len(lines) {
		panic(fmt.Errorf("hunks: %s has no line %d (%d lines)", path, number, len(lines)))
	}
	return lines[number-1]
}

func (s *FileSource) mustData(path string) []byte {
	data, ok := s.data[path]
	if !ok {
		panic(fmt.Errorf("hunks: path %s was never registered", path))
	}
	return data
}

func isBinary(content []byte) bool {
	sniff := content
	if len(sniff) > binarySniffLen {
		sniff = sniff[:binarySniffLen]
	}
	return bytes.IndexByte(sniff, 0) >= 0
}

// displayLines splits text into lines ready for width measurement and rendering. The
// trailing newline of each line (and a final empty line produced by a terminating
// newline) is dropped; a '\r' before the newline is dropped too.
func displayLines(text string, tabWidth int) []string {
	if text == "" {
		return nil
	}

	lines := strings.Split(text, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}

	for i, line := range lines {
		line = strings.TrimSuffix(line, "\r")
		lines[i] = termformat.Sanitize(termformat.ExpandTabs(line, tabWidth))
	}
	return lines
}
