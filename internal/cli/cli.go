// Package cli implements the diffview command line interface: it loads the requested
// file or directory pair, computes hunks, and writes the side-by-side rendering to
// stdout.
package cli

import (
	"flag"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"golang.org/x/term"

	"github.com/codalotl/diffview/internal/diffview"
	"github.com/codalotl/diffview/internal/diffview/hunks"
	"github.com/codalotl/diffview/internal/simplelogger"
)

const usage = `usage: diffview [flags] OLD NEW

Renders a side-by-side diff of two files, or of the files under two directories, to
stdout.

Flags:
  -width N      total output width in columns (default: terminal width, or 80)
  -context N    unchanged lines shown around each change (default 3)
  -tab-width N  spaces per tab in file content (default 4)
`

// Run executes the diffview command with args (not including the program name),
// writing rendered lines to stdout.
func Run(args []string, stdout io.Writer) error {
	flags := flag.NewFlagSet("diffview", flag.ContinueOnError)
	flags.Usage = func() { fmt.Fprint(flags.Output(), usage) }

	width := flags.Int("width", 0, "total output width in columns")
	context := flags.Int("context", 3, "unchanged lines shown around each change")
	tabWidth := flags.Int("tab-width", 4, "spaces per tab in file content")

	if err := flags.Parse(args); err != nil {
		return err
	}
	if flags.NArg() != 2 {
		flags.Usage()
		return fmt.Errorf("diffview: expected OLD and NEW arguments, got %d", flags.NArg())
	}
	oldPath, newPath := flags.Arg(0), flags.Arg(1)

	columns := *width
	if columns <= 0 {
		columns = terminalWidth()
	}

	pairs, err := collectPairs(oldPath, newPath)
	if err != nil {
		return err
	}
	simplelogger.Log("diffview: rendering %d pair(s) at %d columns", len(pairs), columns)

	src := hunks.NewFileSource(*tabWidth)
	var collection []diffview.Entry
	diffs := make(map[string]*diffview.Patch)

	for _, p := range pairs {
		if err := src.Load(p.old); err != nil {
			return err
		}
		if err := src.Load(p.new); err != nil {
			return err
		}

		_, oldBinary := src.Data(p.old)
		_, newBinary := src.Data(p.new)
		if !oldBinary && !newBinary {
			diffs[p.old] = hunks.Compute(src.Text(p.old), src.Text(p.new), *context)
		} else {
			diffs[p.old] = &diffview.Patch{}
		}

		collection = append(collection, diffview.Entry{
			Path:      p.old,
			Kind:      diffview.EntryDiff,
			OtherPath: p.new,
		})
	}

	it := diffview.Render(collection, diffs, src, diffview.Config{Columns: columns})
	for it.Next() {
		if _, err := fmt.Fprintln(stdout, it.Line().Text); err != nil {
			return err
		}
	}
	return nil
}

type pair struct {
	old string
	new string
}

// collectPairs expands the OLD/NEW arguments into file pairs. Two directories pair up
// by relative path (union of both trees, sorted); anything else is a single pair.
func collectPairs(oldPath, newPath string) ([]pair, error) {
	oldInfo, errOld := os.Stat(oldPath)
	newInfo, errNew := os.Stat(newPath)

	if errOld == nil && errNew == nil && oldInfo.IsDir() != newInfo.IsDir() {
		return nil, fmt.Errorf("diffview: cannot compare a directory with a file: %s, %s", oldPath, newPath)
	}
	if errOld == nil && oldInfo.IsDir() {
		return dirPairs(oldPath, newPath)
	}
	if errNew == nil && newInfo.IsDir() {
		return nil, fmt.Errorf("diffview: cannot compare a directory with a file: %s, %s", oldPath, newPath)
	}
	return []pair{{old: oldPath, new: newPath}}, nil
}

func dirPairs(oldDir, newDir string) ([]pair, error) {
	names := make(map[string]bool)
	for _, dir := range []string{oldDir, newDir} {
		err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() {
				return nil
			}
			rel, err := filepath.Rel(dir, path)
			if err != nil {
				return err
			}
			names[rel] = true
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("diffview: walk %s: %w", dir, err)
		}
	}

	sorted := make([]string, 0, len(names))
	for name := range names {
		sorted = append(sorted, name)
	}
	sort.Strings(sorted)

	pairs := make([]pair, 0, len(sorted))
	for _, name := range sorted {
		pairs = append(pairs, pair{
			old: filepath.Join(oldDir, name),
			new: filepath.Join(newDir, name),
		})
	}
	return pairs, nil
}

func terminalWidth() int {
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
		return w
	}
	return 80
}
