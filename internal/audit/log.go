package audit

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// RunRecord is one line of the append-only run history.
type RunRecord struct {
	Timestamp     time.Time      `json:"timestamp"`
	RunID         string         `json:"run_id"`
	Command       string         `json:"command"`
	Paths         []string       `json:"paths"`
	FilesScanned  int            `json:"files_scanned"`
	Skipped       int            `json:"skipped,omitempty"`
	Errors        int            `json:"errors,omitempty"`
	TotalPatterns int            `json:"total_patterns"`
	PatternCounts map[string]int `json:"pattern_counts,omitempty"`
	Duration      string         `json:"duration"`
}

// Log appends run records to a JSONL file, preferring the .git directory
// so the history travels with the repository without being tracked.
type Log struct {
	logPath string
}

func NewLog(root string) *Log {
	gitDir := filepath.Join(root, ".git")
	logPath := filepath.Join(root, ".bytesift_audit.jsonl")
	if st, err := os.Stat(gitDir); err == nil && st.IsDir() {
		logPath = filepath.Join(gitDir, "bytesift_audit.jsonl")
	}
	return &Log{logPath: logPath}
}

// LoadHistory returns past runs, most recent first. Unparseable lines are
// skipped so a corrupt record never blocks the history.
func (a *Log) LoadHistory() ([]RunRecord, error) {
	f, err := os.Open(a.logPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open audit log: %w", err)
	}
	defer f.Close()

	var records []RunRecord
	decoder := json.NewDecoder(f)
	for decoder.More() {
		var record RunRecord
		if err := decoder.Decode(&record); err != nil {
			continue
		}
		records = append(records, record)
	}

	for i, j := 0, len(records)-1; i < j; i, j = i+1, j-1 {
		records[i], records[j] = records[j], records[i]
	}
	return records, nil
}

func (a *Log) LogRun(record RunRecord) error {
	if record.RunID == "" {
		record.RunID = fmt.Sprintf("run_%d", time.Now().Unix())
	}

	// Owner-only permissions: records carry path names from the scan.
	f, err := os.OpenFile(a.logPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0600)
	if err != nil {
		return fmt.Errorf("failed to open audit log: %w", err)
	}
	defer f.Close()

	encoder := json.NewEncoder(f)
	if err := encoder.Encode(record); err != nil {
		return fmt.Errorf("failed to write audit record: %w", err)
	}
	return nil
}

// NewRunRecord assembles a record from batch results. Matched text is
// never stored, only per-type counts.
func NewRunRecord(command string, paths []string, filesScanned, skipped, errs int, patternCounts map[string]int, duration time.Duration) RunRecord {
	total := 0
	for _, n := range patternCounts {
		total += n
	}
	return RunRecord{
		Timestamp:     time.Now(),
		Command:       command,
		Paths:         paths,
		FilesScanned:  filesScanned,
		Skipped:       skipped,
		Errors:        errs,
		TotalPatterns: total,
		PatternCounts: patternCounts,
		Duration:      duration.String(),
	}
}
