package bytesift

import (
	"runtime/debug"
	"strings"

	semver3 "github.com/blang/semver"
	semver "github.com/blang/semver/v4"
	"github.com/rhysd/go-github-selfupdate/selfupdate"

	"github.com/bytesift/bytesift/internal/config"
	"github.com/bytesift/bytesift/internal/engine"
)

func selfUpdate() error {
	v := version
	// Use build info if tag overridden at build-time
	if info, ok := debug.ReadBuildInfo(); ok {
		for _, s := range info.Settings {
			if s.Key == "vcs.revision" && len(v) == 0 {
				v = s.Value
			}
		}
	}
	// parse semantic version (strip leading v)
	ver, err := semver.ParseTolerant(v)
	if err != nil {
		ver = semver.MustParse("0.0.0")
	}
	// Update from GitHub Releases: bytesift/bytesift
	latest, err := selfupdate.UpdateSelf(semver3.MustParse(ver.String()), "bytesift/bytesift")
	if err != nil {
		return err
	}
	_ = latest
	return nil
}

// baseConfig resolves the shared engine configuration with CLI > local >
// global precedence. Paths default to the current directory.
func baseConfig(args []string) engine.Config {
	var gcfg, lcfg config.FileConfig
	if c, err := config.LoadGlobal(); err == nil {
		gcfg = c
	}
	if c, err := config.LoadLocal("."); err == nil {
		lcfg = c
	}

	paths := args
	if len(paths) == 0 {
		paths = []string{"."}
	}

	return engine.Config{
		Paths:           paths,
		IncludeGlobs:    pickString(flagInclude, lcfg.Include, gcfg.Include),
		ExcludeGlobs:    pickString(flagExclude, lcfg.Exclude, gcfg.Exclude),
		MaxBytes:        pickInt64(flagMaxBytes, lcfg.MaxBytes, gcfg.MaxBytes),
		MinConfidence:   pickFloat(flagMinConfidence, lcfg.MinConfidence, gcfg.MinConfidence),
		EnableTypes:     splitList(pickString(flagEnable, lcfg.Enable, gcfg.Enable)),
		DisableTypes:    splitList(pickString(flagDisable, lcfg.Disable, gcfg.Disable)),
		Threads:         pickInt(flagThreads, lcfg.Threads, gcfg.Threads),
		FailFast:        pickBool(flagFailFast, lcfg.FailFast, gcfg.FailFast),
		Incremental:     pickBool(flagIncremental, lcfg.Incremental, gcfg.Incremental),
		DefaultExcludes: flagDefaultExcludes,
	}
}

func splitList(s string) []string {
	if s == "" {
		return nil
	}
	var out []string
	for _, p := range strings.Split(s, ",") {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

func pickString(cli string, local, global *string) string {
	if cli != "" {
		return cli
	}
	if local != nil && *local != "" {
		return *local
	}
	if global != nil && *global != "" {
		return *global
	}
	return ""
}

func pickInt(cli int, local, global *int) int {
	if cli != 0 {
		return cli
	}
	if local != nil && *local != 0 {
		return *local
	}
	if global != nil && *global != 0 {
		return *global
	}
	return 0
}

func pickInt64(cli int64, local, global *int64) int64 {
	if cli != 0 {
		return cli
	}
	if local != nil && *local != 0 {
		return *local
	}
	if global != nil && *global != 0 {
		return *global
	}
	return 0
}

func pickFloat(cli float64, local, global *float64) float64 {
	if cli != 0 {
		return cli
	}
	if local != nil && *local != 0 {
		return *local
	}
	if global != nil && *global != 0 {
		return *global
	}
	return 0
}

func pickBool(cli bool, local, global *bool) bool {
	if cli {
		return true
	}
	if local != nil {
		return *local
	}
	if global != nil {
		return *global
	}
	return false
}
