package taxonomy

import (
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
)

// Scan walks root and returns the paths of taxonomy files in lexical order.
// Dot-directories and Rules.SkipDirs are not descended into.
func Scan(root string, rules *Rules) ([]string, error) {
	if rules == nil {
		rules = DefaultRules()
	}
	var files []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if path != root && rules.SkipDir(d.Name()) {
				slog.Debug("skipping directory", "path", path)
				return filepath.SkipDir
			}
			return nil
		}
		if rules.IsTaxonomyFile(d.Name()) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("taxonomy: scanning %s: %w", root, err)
	}
	return files, nil
}

// Collect scans root and extracts every taxonomy file it finds.
func Collect(root string, rules *Rules) ([]*File, error) {
	if rules == nil {
		rules = DefaultRules()
	}
	paths, err := Scan(root, rules)
	if err != nil {
		return nil, err
	}
	files := make([]*File, 0, len(paths))
	for _, path := range paths {
		f, err := ExtractFile(path, rules)
		if err != nil {
			return nil, err
		}
		files = append(files, f)
	}
	return files, nil
}

// ExtractFile reads and extracts a single declaration file.
func ExtractFile(path string, rules *Rules) (*File, error) {
	if rules == nil {
		rules = DefaultRules()
	}
	data, err := os.ReadFile(path) //nolint:gosec // path comes from a directory walk or the caller
	if err != nil {
		return nil, fmt.Errorf("taxonomy: reading %s: %w", path, err)
	}
	return Extract(path, data, rules.NamePattern)
}
