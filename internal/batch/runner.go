// Package batch drives converters over directory trees of HTML files.
//
// Files are processed strictly one at a time in walk order. Per-file
// failures are logged and counted; only precondition failures stop a run.
package batch

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"htmlconv/internal/convert"
	"htmlconv/internal/logger"
)

// Summary reports what one run did.
type Summary struct {
	// Converted counts files written to the output tree.
	Converted int
	// Skipped counts enumerated files that were not HTML documents.
	Skipped int
	// Failed counts files that could not be read, converted, or written.
	Failed int
}

// Runner mirrors an input directory into OutDir, converting every HTML
// file it finds. OutDir itself is excluded from the walk, so an output
// tree nested inside the input tree is never re-converted.
type Runner struct {
	// Root is the input directory.
	Root string
	// OutDir is the output root, usually a subdirectory of Root.
	OutDir string
	// Converter produces each output file's content and extension.
	Converter convert.Converter
}

// Run walks the input tree and converts every HTML file. Per-file errors
// are logged with the file path and counted in the summary; Run itself only
// fails on a cancelled context or an unwalkable root.
func (r *Runner) Run(ctx context.Context) (Summary, error) {
	var sum Summary

	logger.Info("processing HTML files",
		"input", r.Root, "output", r.OutDir, "converter", r.Converter.Name())

	err := filepath.WalkDir(r.Root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if path == r.Root {
				return err
			}
			logger.Error("cannot access path, skipping", "path", path, "error", err)
			sum.Failed++
			return nil
		}
		if d.IsDir() {
			if r.excluded(path) {
				return fs.SkipDir
			}
			return nil
		}
		if r.excluded(path) {
			return nil
		}
		if !IsHTML(path) {
			sum.Skipped++
			return nil
		}
		if err := ctx.Err(); err != nil {
			return err
		}

		rel, err := filepath.Rel(r.Root, path)
		if err != nil {
			logger.Error("cannot resolve relative path, skipping", "path", path, "error", err)
			sum.Failed++
			return nil
		}
		dst := filepath.Join(r.OutDir, ReplaceExt(rel, r.Converter.Ext()))

		if err := ConvertFile(path, dst, r.Converter); err != nil {
			logger.Error("conversion failed, skipping", "path", path, "error", err)
			sum.Failed++
			return nil
		}
		logger.Debug("converted", "path", rel, "output", dst)
		sum.Converted++
		return nil
	})

	return sum, err
}

// excluded reports whether path is the output root or inside it.
func (r *Runner) excluded(path string) bool {
	if path == r.OutDir {
		return true
	}
	return strings.HasPrefix(path, r.OutDir+string(filepath.Separator))
}

// ConvertFile reads src, converts it, and writes the result to dst,
// creating parent directories as needed.
func ConvertFile(src, dst string, c convert.Converter) error {
	input, err := ReadTextFile(src)
	if err != nil {
		return fmt.Errorf("read %s: %w", src, err)
	}
	out, err := c.Convert(input)
	if err != nil {
		return fmt.Errorf("convert %s: %w", src, err)
	}
	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}
	if err := os.WriteFile(dst, []byte(out), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", dst, err)
	}
	return nil
}

// IsHTML reports whether path has an .html or .htm extension,
// case-insensitively.
func IsHTML(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".html", ".htm":
		return true
	}
	return false
}

// ReplaceExt swaps path's extension for ext (which includes the dot).
func ReplaceExt(path, ext string) string {
	return strings.TrimSuffix(path, filepath.Ext(path)) + ext
}
