// Package core provides a small, stable facade over bytesift's internal
// analysis engine for external integrations. It deliberately re-exports a
// narrow API surface so embedding tools and foreign-language bindings can
// depend on a stable import path without exposing internal packages.
//
// Example:
//
//	cfg := core.Config{Paths: []string{"."}}
//	_, err := core.Analyze(cfg, func(r core.Report) { fmt.Println(r.Path) }, nil)
//	if err != nil { /* handle */ }
package core
