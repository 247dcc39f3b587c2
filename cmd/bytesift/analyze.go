package bytesift

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bytesift/bytesift/internal/audit"
	"github.com/bytesift/bytesift/internal/engine"
	"github.com/bytesift/bytesift/internal/report"
	"github.com/bytesift/bytesift/internal/types"
	"github.com/bytesift/bytesift/internal/update"
)

var flagNoAudit bool

func init() {
	cmd := &cobra.Command{
		Use:   "analyze [paths...]",
		Short: "Detect recognizable patterns in file contents",
		Long:  "Analyze scans files for emails, URLs, IP addresses, card numbers, high-entropy tokens and other recognizable patterns, and reports per-file matches with confidence scores plus content statistics.",
		RunE:  runAnalyze,
	}
	rootCmd.AddCommand(cmd)
	addScopeFlags(cmd)
	cmd.Flags().StringVar(&flagEnable, "enable", "", "only run these pattern types (comma-separated ids)")
	cmd.Flags().StringVar(&flagDisable, "disable", "", "disable these pattern types (comma-separated ids)")
	cmd.Flags().BoolVar(&flagNoAudit, "no-audit", false, "do not record this run in the audit log")
}

func runAnalyze(_ *cobra.Command, args []string) error {
	jsonl := jsonlOutput()
	if !jsonl {
		if !flagNoUpdateCheck {
			if latest, newer, _ := update.Check(version, false); newer && latest != "" {
				fmt.Fprintf(os.Stderr, "(new version available: v%s)  run 'bytesift --self-update' to upgrade\n", latest)
			}
		}
		if flagSelfUpdate {
			if err := selfUpdate(); err == nil {
				fmt.Fprintln(os.Stderr, "updated to latest; re-run command")
				return nil
			}
		}
	}

	cfg := baseConfig(args)
	if cfg.MinConfidence == 0 {
		cfg.MinConfidence = 0.5
	}

	enc := report.NewEncoder(os.Stdout)
	opts := report.PrintOptions{NoColor: flagNoColor}
	patternCounts := map[string]int{}

	res, err := engine.Analyze(cfg,
		func(rep types.Report) {
			for id, n := range rep.PatternsByType {
				patternCounts[id] += n
			}
			if jsonl {
				_ = enc.WriteAnalysis(rep)
				return
			}
			report.PrintAnalysis(os.Stdout, rep, opts)
		},
		func(path string, e error) {
			if jsonl {
				_ = enc.WriteError(path, e)
				return
			}
			fmt.Fprintf(os.Stderr, "error: %s: %v\n", path, e)
		})
	if err != nil {
		return fmt.Errorf("analyze error: %w", err)
	}
	if !jsonl {
		opts.Duration = res.Duration
		opts.FilesScanned = res.FilesScanned
		report.PrintSummary(os.Stdout, opts, res.Errors)
	}
	if !flagNoAudit {
		rec := audit.NewRunRecord("analyze", cfg.Paths, res.FilesScanned, res.Skipped, res.Errors, patternCounts, res.Duration)
		if err := audit.NewLog(".").LogRun(rec); err != nil {
			fmt.Fprintln(os.Stderr, "audit warning:", err)
		}
	}
	if res.Errors > 0 {
		os.Exit(1)
	}
	return nil
}
