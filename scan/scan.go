package scan

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"snakerank/options"
	"snakerank/stats"
	"snakerank/util"
	"strings"

	"github.com/gobwas/glob"
)

// hiddenDirectoryPattern matches directory names that are never descended into
var hiddenDirectoryPattern = glob.MustCompile(".*")

type treeWalker struct {
	root            string
	excludePatterns []glob.Glob
	opts            *options.Options
	stats           *stats.CodeStats
}

// Tree walks opts.RootPath depth-first and counts non-blank lines of every
// file with a tracked extension. Hidden directories and paths matching the
// exclude patterns are skipped. Any traversal error aborts the walk.
func Tree(opts *options.Options) (*stats.CodeStats, error) {
	walker := &treeWalker{
		root:  opts.RootPath,
		opts:  opts,
		stats: stats.NewCodeStats(),
	}

	var err error
	walker.excludePatterns, err = walker.compileGlobs(opts.ExcludePatterns, "exclude")
	if err != nil {
		return nil, fmt.Errorf("failed to compile exclude patterns '%v': %w", opts.ExcludePatterns, err)
	}

	log.Printf("scanning source tree at '%v'", walker.root)

	err = filepath.WalkDir(walker.root, walker.visit)
	if err != nil {
		var withCode *util.ErrorWithCode
		if errors.As(err, &withCode) {
			return nil, err
		}
		return nil, &util.ErrorWithCode{
			StatusCode:    util.ERROR_SCAN_FAILED,
			InternalError: fmt.Errorf("failed to scan '%v': %w", walker.root, err),
		}
	}

	walker.verboseLog("scanned %v tracked files, skipped %v", walker.stats.TotalFileCount, len(walker.stats.SkippedFiles))
	return walker.stats, nil
}

func expandPatternsIfNeeded(patterns []string) []string {
	for _, pattern := range patterns {
		if strings.HasPrefix(pattern, "*/") {
			patterns = append(patterns, strings.Replace(pattern, "*/", "", 1))
		}
		if strings.HasPrefix(pattern, "**/") {
			patterns = append(patterns, strings.Replace(pattern, "**/", "", 1))
		}
	}
	return patterns
}

func (walker *treeWalker) compileGlobs(patterns []string, title string) ([]glob.Glob, error) {
	patterns = expandPatternsIfNeeded(patterns)
	if len(patterns) > 0 {
		walker.verboseLog("%v %v patterns:\n%v", len(patterns), title, strings.Join(patterns, ", "))
	}
	globs := make([]glob.Glob, len(patterns))
	for i, pattern := range patterns {
		compiled, err := glob.Compile(pattern)
		if err != nil {
			return nil, err
		}
		globs[i] = compiled
	}
	return globs, nil
}

func matches(filePath string, patterns []glob.Glob) bool {
	for _, pattern := range patterns {
		if pattern.Match(filePath) {
			return true
		}
	}
	return false
}

func (walker *treeWalker) verboseLog(format string, v ...interface{}) {
	if walker.opts.VerboseLogging {
		log.Printf(format, v...)
	}
}

func (walker *treeWalker) relativePath(path string) string {
	rel, err := filepath.Rel(walker.root, path)
	if err != nil {
		rel = path
	}
	return filepath.ToSlash(rel)
}

func (walker *treeWalker) visit(path string, entry fs.DirEntry, err error) error {
	if err != nil {
		return err
	}

	if path == walker.root {
		return nil
	}

	relPath := walker.relativePath(path)

	if entry.IsDir() {
		if hiddenDirectoryPattern.Match(entry.Name()) {
			walker.verboseLog("--- skipping '%v' - hidden directory", relPath)
			return filepath.SkipDir
		}
		if matches(relPath, walker.excludePatterns) {
			walker.verboseLog("--- skipping '%v' - matching exclude patterns", relPath)
			return filepath.SkipDir
		}
		return nil
	}

	language, tracked := stats.GetLanguageFromExtension(filepath.Ext(entry.Name()))
	if !tracked {
		return nil
	}

	if matches(relPath, walker.excludePatterns) {
		walker.verboseLog("--- skipping '%v' - matching exclude patterns", relPath)
		return nil
	}

	if entry.Type()&fs.ModeSymlink != 0 {
		info, err := os.Stat(path)
		if err != nil {
			return fmt.Errorf("failed to resolve symlink '%v': %w", relPath, err)
		}
		if !info.Mode().IsRegular() {
			walker.verboseLog("--- skipping '%v' - symlink to non-regular file", relPath)
			return nil
		}
	} else if !entry.Type().IsRegular() {
		walker.verboseLog("--- skipping '%v' - not regular file - mode: %v", relPath, entry.Type())
		return nil
	}

	return walker.countFile(path, relPath, language)
}

func (walker *treeWalker) countFile(path string, relPath string, language stats.Language) error {
	contentBytes, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read '%v': %w", relPath, err)
	}

	content, err := decodeText(contentBytes)
	if err != nil {
		if walker.opts.SkipUnreadable {
			log.Printf("--- skipping '%v' - unreadable: %v", relPath, err)
			walker.stats.Skip(relPath)
			return nil
		}
		return &util.ErrorWithCode{
			StatusCode:    util.ERROR_UNREADABLE_FILE,
			InternalError: fmt.Errorf("failed to read '%v' as text: %w", relPath, err),
		}
	}

	linesOfCode := countNonBlankLines(content)
	walker.stats.AddFile(language, linesOfCode)
	walker.verboseLog("+++ '%v' - %v - %v lines", relPath, language, linesOfCode)
	return nil
}
