package core

import (
	"github.com/bytesift/bytesift/internal/classify"
	"github.com/bytesift/bytesift/internal/engine"
	"github.com/bytesift/bytesift/internal/patterns"
	"github.com/bytesift/bytesift/internal/textscan"
	"github.com/bytesift/bytesift/internal/types"
)

// Re-export selected internal types as a stable public API surface.
// These are type aliases so external consumers can depend on a stable path.
// We can replace these with decoupled structs later without breaking callers.
type Config = engine.Config
type Result = engine.Result
type Report = types.Report
type PatternMatch = types.PatternMatch
type TextMetrics = types.TextMetrics
type ContentStatistics = types.ContentStatistics
type FileClassification = types.FileClassification

// Analyze runs pattern analysis over the configured targets, invoking
// onReport once per file. onErr may be nil when per-file errors can be
// silently counted.
func Analyze(cfg Config, onReport func(Report), onErr func(path string, err error)) (Result, error) {
	if onErr == nil {
		onErr = func(string, error) {}
	}
	return engine.Analyze(cfg, onReport, onErr)
}

// Metrics counts lines, words, and bytes per configured target.
func Metrics(cfg Config, onMetrics func(path string, m TextMetrics), onErr func(path string, err error)) (Result, error) {
	if onErr == nil {
		onErr = func(string, error) {}
	}
	return engine.Metrics(cfg, onMetrics, onErr)
}

// AnalyzeText analyzes a single in-memory document.
func AnalyzeText(text, path string, minConfidence float64) Report {
	det := patterns.New(patterns.Config{MinConfidence: minConfidence})
	return det.AnalyzeContent(text, path)
}

// DetectPatterns returns every catalog match in text with default thresholds.
func DetectPatterns(text string) []PatternMatch {
	return patterns.New(patterns.DefaultConfig()).Detect(text)
}

// CountText computes text metrics for an in-memory buffer.
func CountText(data []byte) (TextMetrics, error) {
	return textscan.Scan(data)
}

// Statistics computes content statistics for an in-memory buffer.
func Statistics(data []byte) ContentStatistics {
	return patterns.Statistics(data)
}

// ClassifyBytes classifies content by path hint and a sample of its bytes.
func ClassifyBytes(path string, sample []byte) FileClassification {
	return classify.Classify(path, sample)
}

// PatternTypeIDs returns the detector catalog's pattern type ids.
// This is exposed for convenience to avoid importing internals directly.
func PatternTypeIDs() []string { return patterns.TypeIDs() }
