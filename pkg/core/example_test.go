package core_test

import (
	"fmt"
	"os"

	"github.com/bytesift/bytesift/pkg/core"
)

// ExampleAnalyze demonstrates scanning a directory for recognizable patterns.
func ExampleAnalyze() {
	cfg := core.Config{
		Paths:         []string{"."},
		IncludeGlobs:  "**/*.txt",
		MinConfidence: 0.5,
		MaxBytes:      1024 * 1024,
	}

	var reports []core.Report
	res, err := core.Analyze(cfg, func(r core.Report) { reports = append(reports, r) }, nil)
	if err != nil {
		fmt.Fprintf(os.Stderr, "analyze failed: %v\n", err)
		return
	}

	fmt.Printf("Scanned %d files in %s\n", res.FilesScanned, res.Duration)
	_ = core.MarshalReports(os.Stdout, reports)
}

// ExampleAnalyzeText analyzes a document already held in memory.
func ExampleAnalyzeText() {
	rep := core.AnalyzeText("contact admin@example.com or 10.0.0.1", "notes.txt", 0.5)
	fmt.Println(rep.TotalPatterns)
	// Output: 2
}
