// Package export walks the configured project files and directories and
// concatenates their contents into a single fenced text artifact.
package export

import (
	"bufio"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"unicode/utf8"

	"go.uber.org/zap"
)

// fence is the delimiter line wrapping each entry's content.
const fence = "```"

// Report summarizes a completed export run.
type Report struct {
	Written int      // entries written to the artifact
	Skipped []string // configured paths that did not resolve to an input
	Failed  []string // resolved files that could not be read or decoded
	Output  string   // path of the artifact
}

// Export writes every configured input to cfg.OutputFilename as fenced
// entries: existing specific files in configured order, then each recursive
// directory's regular files in lexicographic path order.
//
// Per-input problems (missing file, missing directory, unreadable or
// non-UTF-8 content) are logged, recorded on the report, and never abort the
// run. Only a failure to create, write, or flush the output file is fatal.
func Export(cfg Config, logger *zap.Logger) (*Report, error) {
	logger.Info("Starting export",
		zap.Int("specificFiles", len(cfg.SpecificFiles)),
		zap.Int("recursiveDirs", len(cfg.RecursiveDirs)),
		zap.String("output", cfg.OutputFilename))

	outFile, err := os.Create(cfg.OutputFilename)
	if err != nil {
		logger.Error("Failed to create output file", zap.String("file", cfg.OutputFilename), zap.Error(err))
		return nil, fmt.Errorf("failed to create output file %s: %w", cfg.OutputFilename, err)
	}
	defer func() {
		if closeErr := outFile.Close(); closeErr != nil {
			logger.Error("Failed to close output file", zap.String("file", cfg.OutputFilename), zap.Error(closeErr))
		}
	}()

	writer := bufio.NewWriter(outFile)
	report := &Report{Output: cfg.OutputFilename}

	for _, path := range cfg.SpecificFiles {
		info, statErr := os.Stat(path)
		switch {
		case statErr != nil:
			logger.Warn("Specific file not found, skipping", zap.String("file", path), zap.Error(statErr))
			report.Skipped = append(report.Skipped, path)
		case !info.Mode().IsRegular():
			logger.Warn("Specific path is not a regular file, skipping", zap.String("file", path))
			report.Skipped = append(report.Skipped, path)
		default:
			if err := appendEntry(writer, path, report, logger); err != nil {
				return nil, err
			}
		}
	}

	for _, dir := range cfg.RecursiveDirs {
		info, statErr := os.Stat(dir)
		if statErr != nil || !info.IsDir() {
			logger.Warn("Recursive directory not found, skipping", zap.String("dir", dir))
			report.Skipped = append(report.Skipped, dir)
			continue
		}

		files, walkErr := collectFiles(dir, logger)
		if walkErr != nil {
			logger.Warn("Failed to traverse directory, skipping", zap.String("dir", dir), zap.Error(walkErr))
			report.Skipped = append(report.Skipped, dir)
			continue
		}

		for _, file := range files {
			if err := appendEntry(writer, file, report, logger); err != nil {
				return nil, err
			}
		}
	}

	if err := writer.Flush(); err != nil {
		logger.Error("Failed to flush output file", zap.String("file", cfg.OutputFilename), zap.Error(err))
		return nil, fmt.Errorf("failed to flush output file: %w", err)
	}

	logger.Info("Export completed",
		zap.String("output", cfg.OutputFilename),
		zap.Int("written", report.Written),
		zap.Int("skipped", len(report.Skipped)),
		zap.Int("failed", len(report.Failed)))
	return report, nil
}

// collectFiles walks dir and returns every regular file under it as a
// slash-separated path, sorted lexicographically so the output is stable
// regardless of filesystem enumeration order. Entries that cannot be accessed
// are logged and skipped.
func collectFiles(dir string, logger *zap.Logger) ([]string, error) {
	var files []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			logger.Warn("Error accessing path during traversal", zap.String("path", path), zap.Error(err))
			return nil
		}
		if !d.Type().IsRegular() {
			return nil
		}
		files = append(files, filepath.ToSlash(path))
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(files)
	return files, nil
}

// appendEntry reads path and writes one fenced entry to the output writer.
// Read and decode failures are recorded on the report and return nil so the
// remaining files still get exported; only a write failure is returned.
func appendEntry(writer *bufio.Writer, path string, report *Report, logger *zap.Logger) error {
	data, err := os.ReadFile(path)
	if err != nil {
		logger.Warn("Failed to read file, skipping", zap.String("file", path), zap.Error(err))
		report.Failed = append(report.Failed, path)
		return nil
	}

	if !utf8.Valid(data) {
		logger.Warn("File is not valid UTF-8, skipping", zap.String("file", path))
		report.Failed = append(report.Failed, path)
		return nil
	}

	if _, err := writer.WriteString(renderEntry(filepath.ToSlash(path), data)); err != nil {
		logger.Error("Failed to write entry", zap.String("file", path), zap.Error(err))
		return fmt.Errorf("failed to write entry for %s: %w", path, err)
	}

	report.Written++
	logger.Debug("Appended file", zap.String("file", path), zap.Int("sizeBytes", len(data)))
	return nil
}

// renderEntry formats one file's contribution to the artifact: the
// slash-separated path, an opening fence, the raw content terminated by a
// newline, a closing fence, and a blank line.
func renderEntry(path string, data []byte) string {
	var b strings.Builder
	b.Grow(len(data) + len(path) + 16)
	b.WriteString(path)
	b.WriteByte('\n')
	b.WriteString(fence)
	b.WriteByte('\n')
	b.Write(data)
	if len(data) == 0 || data[len(data)-1] != '\n' {
		b.WriteByte('\n')
	}
	b.WriteString(fence)
	b.WriteString("\n\n")
	return b.String()
}
