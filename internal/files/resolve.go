package files

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	kerrors "github.com/PolarWolf314/naclbox/internal/errors"
	"github.com/bmatcuk/doublestar/v4"
)

// ResolveFiles takes user-provided paths, directories and globs and
// returns the matching regular files, deduplicated, in argument order.
// With forSealing, files already carrying ext are skipped; otherwise only
// files carrying ext are returned.
func ResolveFiles(patterns []string, baseDir, ext string, forSealing bool) ([]string, error) {
	var files []string
	seen := make(map[string]bool)

	for _, pattern := range patterns {
		resolved, err := resolvePattern(pattern, baseDir, ext, forSealing)
		if err != nil {
			return nil, err
		}

		for _, f := range resolved {
			if !seen[f] {
				seen[f] = true
				files = append(files, f)
			}
		}
	}

	if len(files) == 0 {
		return nil, kerrors.ErrNoFilesFound
	}

	return files, nil
}

func resolvePattern(pattern, baseDir, ext string, forSealing bool) ([]string, error) {
	absPattern := pattern
	if !filepath.IsAbs(pattern) {
		absPattern = filepath.Join(baseDir, pattern)
	}

	info, err := os.Stat(absPattern)
	if err == nil && info.IsDir() {
		return findFilesInDir(absPattern, ext, forSealing)
	}

	if strings.ContainsAny(pattern, "*?[{") {
		return expandGlob(absPattern, pattern, ext, forSealing)
	}

	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", kerrors.ErrFileNotFound, pattern)
		}
		return nil, err
	}

	if !info.Mode().IsRegular() || !wanted(absPattern, ext, forSealing) {
		return nil, fmt.Errorf("%w: %s", kerrors.ErrInvalidFileType, pattern)
	}

	return []string{absPattern}, nil
}

func expandGlob(absPattern, pattern, ext string, forSealing bool) ([]string, error) {
	matches, err := doublestar.FilepathGlob(absPattern)
	if err != nil {
		return nil, fmt.Errorf("invalid glob pattern %q: %w", pattern, err)
	}

	var filtered []string
	for _, m := range matches {
		info, err := os.Stat(m)
		if err != nil || !info.Mode().IsRegular() {
			continue
		}
		if wanted(m, ext, forSealing) {
			filtered = append(filtered, m)
		}
	}

	return filtered, nil
}

func findFilesInDir(dir, ext string, forSealing bool) ([]string, error) {
	var files []string

	err := filepath.WalkDir(dir, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			// Skip VCS metadata.
			if path != dir && d.Name() == ".git" {
				return filepath.SkipDir
			}
			return nil
		}
		if !d.Type().IsRegular() {
			return nil
		}
		if wanted(path, ext, forSealing) {
			files = append(files, path)
		}
		return nil
	})

	return files, err
}

func wanted(path, ext string, forSealing bool) bool {
	sealed := strings.HasSuffix(filepath.Base(path), ext)
	return sealed != forSealing
}
