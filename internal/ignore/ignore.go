// Package ignore matches relative paths against .bytesiftignore patterns, a
// gitignore-lite format: blank lines and # comments are skipped, a trailing
// slash marks a directory prefix, everything else is a glob matched against
// the full relative path and its base name.
package ignore

import (
	"bufio"
	"os"
	"path"
	"strings"

	doublestar "github.com/bmatcuk/doublestar/v4"
)

// Matcher holds parsed ignore patterns.
type Matcher struct {
	dirs  []string
	globs []string
}

// Load parses the ignore file at p. A missing file yields an empty matcher
// and the underlying error, so callers can ignore ErrNotExist.
func Load(p string) (Matcher, error) {
	var m Matcher
	f, err := os.Open(p)
	if err != nil {
		return m, err
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if strings.HasSuffix(line, "/") {
			m.dirs = append(m.dirs, strings.TrimSuffix(line, "/"))
			continue
		}
		m.globs = append(m.globs, line)
	}
	return m, sc.Err()
}

// Match reports whether the relative path rel is ignored.
func (m Matcher) Match(rel string) bool {
	rel = strings.ReplaceAll(rel, "\\", "/")
	for _, d := range m.dirs {
		if rel == d || strings.HasPrefix(rel, d+"/") || strings.Contains(rel, "/"+d+"/") {
			return true
		}
	}
	for _, g := range m.globs {
		if ok, _ := doublestar.Match(g, rel); ok {
			return true
		}
		if ok, _ := doublestar.Match(g, path.Base(rel)); ok {
			return true
		}
	}
	return false
}
