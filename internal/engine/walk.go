package engine

import (
	"io/fs"
	"path/filepath"
	"strings"

	doublestar "github.com/bmatcuk/doublestar/v4"

	"github.com/bytesift/bytesift/internal/ignore"
)

var defaultExcludeDirs = map[string]bool{
	".git":         true,
	"node_modules": true,
	"target":       true,
	"vendor":       true,
	"dist":         true,
	"build":        true,
	"out":          true,
	".venv":        true,
	"venv":         true,
	"__pycache__":  true,
	"coverage":     true,
}

func isDefaultDirExcluded(name string) bool {
	return defaultExcludeDirs[name] || strings.HasPrefix(name, ".git")
}

// target is one file queued for analysis. Explicit targets were named
// directly on the command line and bypass glob and ignore filtering.
type target struct {
	path     string
	explicit bool
}

// collect expands cfg.Paths into the flat list of files to analyze.
// Directory arguments are walked recursively with ignore rules, default
// directory excludes, and include/exclude globs applied; file arguments
// are taken as-is. "-" denotes stdin and is passed through untouched.
func collect(cfg Config, statFn func(string) (fs.FileInfo, error)) ([]target, error) {
	var targets []target
	for _, p := range cfg.Paths {
		if p == "-" {
			targets = append(targets, target{path: "-", explicit: true})
			continue
		}
		info, err := statFn(p)
		if err != nil {
			// Keep the missing path in the queue so the run reports a
			// per-file error record for it instead of dropping it.
			targets = append(targets, target{path: p, explicit: true})
			continue
		}
		if !info.IsDir() {
			targets = append(targets, target{path: p, explicit: true})
			continue
		}
		walked, err := walkDir(cfg, p)
		if err != nil {
			return nil, err
		}
		targets = append(targets, walked...)
	}
	return targets, nil
}

func walkDir(cfg Config, root string) ([]target, error) {
	ign, _ := ignore.Load(filepath.Join(root, ".bytesiftignore"))
	var targets []target
	err := filepath.WalkDir(root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if d.IsDir() {
			if cfg.DefaultExcludes && p != root && isDefaultDirExcluded(d.Name()) {
				return filepath.SkipDir
			}
			return nil
		}
		rel, _ := filepath.Rel(root, p)
		if !allowedByGlobs(rel, cfg) {
			return nil
		}
		if ign.Match(rel) {
			return nil
		}
		if cfg.MaxBytes > 0 {
			info, _ := d.Info()
			if info != nil && info.Size() > cfg.MaxBytes {
				return nil
			}
		}
		targets = append(targets, target{path: p})
		return nil
	})
	return targets, err
}

// allowedByGlobs returns true if the given path is allowed by the include/exclude
// glob configuration. Include globs are comma-separated and, if provided, act as
// a positive filter. Exclude globs are subtracted last. Matching uses
// forward-slash semantics.
func allowedByGlobs(relPath string, cfg Config) bool {
	rp := strings.ReplaceAll(relPath, "\\", "/")
	includes := parseGlobsList(cfg.IncludeGlobs)
	excludes := parseGlobsList(cfg.ExcludeGlobs)
	if len(includes) > 0 && !matchAnyGlob(rp, includes) {
		return false
	}
	if len(excludes) > 0 && matchAnyGlob(rp, excludes) {
		return false
	}
	return true
}

func parseGlobsList(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	var out []string
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
			out = append(out, trimGlobPrefix(p))
		}
	}
	return out
}

func matchAnyGlob(pathToMatch string, globs []string) bool {
	for _, g := range globs {
		if ok, _ := doublestar.Match(g, pathToMatch); ok {
			return true
		}
		if ok, _ := doublestar.Match(g, filepath.Base(pathToMatch)); ok {
			return true
		}
	}
	return false
}

func trimGlobPrefix(g string) string {
	s := strings.TrimPrefix(g, "./")
	for strings.HasPrefix(s, "**/") {
		s = strings.TrimPrefix(s, "**/")
	}
	return s
}
