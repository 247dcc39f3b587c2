// Package report serializes analysis results as structured lines: one
// self-contained JSON object per record. Payload encoding is deterministic —
// struct-ordered fields and sorted map keys — so identical inputs produce
// byte-identical payloads. The timestamp is envelope metadata stamped at
// write time, never part of a payload field.
package report

import (
	"encoding/json"
	"io"
	"time"

	"github.com/bytesift/bytesift/internal/types"
)

// Record type discriminators.
const (
	TypeFile     = "file"
	TypeText     = "text"
	TypeAnalysis = "analysis"
	TypeMatch    = "match"
	TypeError    = "error"
)

// FileRecord is the file-metadata record: size, content digest and
// classification for one path.
type FileRecord struct {
	Type           string                   `json:"type"`
	Timestamp      string                   `json:"timestamp"`
	Path           string                   `json:"path"`
	Size           uint64                   `json:"size"`
	Digest         string                   `json:"digest"`
	Classification types.FileClassification `json:"classification"`
}

// TextRecord is the text-content record carrying scan metrics.
type TextRecord struct {
	Type      string            `json:"type"`
	Timestamp string            `json:"timestamp"`
	Path      string            `json:"path"`
	Metrics   types.TextMetrics `json:"metrics"`
}

// AnalysisRecord is the pattern-analysis record.
type AnalysisRecord struct {
	Type      string       `json:"type"`
	Timestamp string       `json:"timestamp"`
	Analysis  types.Report `json:"analysis"`
}

// MatchRecord reports one exact byte-pattern occurrence.
type MatchRecord struct {
	Type      string `json:"type"`
	Timestamp string `json:"timestamp"`
	Path      string `json:"path"`
	Offset    uint64 `json:"offset"`
	Length    uint64 `json:"length"`
}

// ErrorRecord carries a failure kind and message instead of payload fields.
type ErrorRecord struct {
	Type      string `json:"type"`
	Timestamp string `json:"timestamp"`
	Kind      string `json:"kind"`
	Path      string `json:"path,omitempty"`
	Message   string `json:"message"`
}

// Encoder writes one record per line. Now is overridable so tests can pin
// the envelope timestamp.
type Encoder struct {
	enc *json.Encoder
	Now func() time.Time
}

// NewEncoder returns an Encoder writing to w.
func NewEncoder(w io.Writer) *Encoder {
	return &Encoder{enc: json.NewEncoder(w), Now: time.Now}
}

func (e *Encoder) stamp() string {
	return e.Now().UTC().Format(time.RFC3339Nano)
}

// WriteFile emits a file-metadata record.
func (e *Encoder) WriteFile(path string, size uint64, digest string, cls types.FileClassification) error {
	return e.enc.Encode(FileRecord{
		Type:           TypeFile,
		Timestamp:      e.stamp(),
		Path:           path,
		Size:           size,
		Digest:         digest,
		Classification: cls,
	})
}

// WriteMetrics emits a text-content record.
func (e *Encoder) WriteMetrics(path string, m types.TextMetrics) error {
	return e.enc.Encode(TextRecord{Type: TypeText, Timestamp: e.stamp(), Path: path, Metrics: m})
}

// WriteAnalysis emits a pattern-analysis record.
func (e *Encoder) WriteAnalysis(rep types.Report) error {
	return e.enc.Encode(AnalysisRecord{Type: TypeAnalysis, Timestamp: e.stamp(), Analysis: rep})
}

// WriteMatch emits one match record for an exact byte-pattern occurrence.
func (e *Encoder) WriteMatch(path string, offset, length uint64) error {
	return e.enc.Encode(MatchRecord{Type: TypeMatch, Timestamp: e.stamp(), Path: path, Offset: offset, Length: length})
}

// WriteError emits one error record for a failed file. Errors without a
// typed kind are reported as "internal".
func (e *Encoder) WriteError(path string, err error) error {
	kind := string(types.KindOf(err))
	if kind == "" {
		kind = "internal"
	}
	return e.enc.Encode(ErrorRecord{
		Type:      TypeError,
		Timestamp: e.stamp(),
		Kind:      kind,
		Path:      path,
		Message:   err.Error(),
	})
}
