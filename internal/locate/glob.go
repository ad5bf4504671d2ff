package locate

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// Glob lists files matching directory/prefix*suffix*.extension.
func Glob(extension, directory, prefix, suffix string) ([]string, error) {
	return GlobByExtension([]string{extension}, directory, prefix, suffix)
}

// GlobByExtension lists files matching directory/prefix*suffix*.ext for every
// extension and returns the union sorted. Subdirectories are not searched and
// overlapping extensions may produce duplicates.
func GlobByExtension(extensions []string, directory, prefix, suffix string) ([]string, error) {
	if directory == "" {
		directory = "."
	}

	matches := []string{}
	for _, ext := range extensions {
		found, err := globPattern(filepath.Join(directory, prefix+"*"+suffix+"*."+ext))
		if err != nil {
			return nil, err
		}
		matches = append(matches, found...)
	}

	sort.Strings(matches)
	return matches, nil
}

// globPattern expands a single-segment pattern. Dot files are skipped unless
// the pattern's base itself starts with a dot, as in a shell.
func globPattern(pattern string) ([]string, error) {
	found, err := doublestar.FilepathGlob(pattern)
	if err != nil {
		return nil, fmt.Errorf("glob %s: %w", pattern, err)
	}

	hiddenOK := strings.HasPrefix(filepath.Base(pattern), ".")
	matches := make([]string, 0, len(found))
	for _, match := range found {
		if !hiddenOK && strings.HasPrefix(filepath.Base(match), ".") {
			continue
		}
		matches = append(matches, match)
	}
	return matches, nil
}
