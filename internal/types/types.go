package types

// PatternType identifies one entry in the detection catalog. The catalog is a
// closed set: every constant here has exactly one row in the patterns package.
type PatternType string

const (
	PatternEmail            PatternType = "email"
	PatternURL              PatternType = "url"
	PatternIPv4             PatternType = "ipv4"
	PatternPhone            PatternType = "phone"
	PatternSSN              PatternType = "ssn"
	PatternCreditCard       PatternType = "credit_card"
	PatternDate             PatternType = "date"
	PatternHexNumber        PatternType = "hex_number"
	PatternHexColor         PatternType = "hex_color"
	PatternBase64           PatternType = "base64"
	PatternUUID             PatternType = "uuid"
	PatternFilePath         PatternType = "file_path"
	PatternHighEntropyToken PatternType = "high_entropy_token"
)

// PatternMatch is one occurrence of a catalog pattern in scanned text.
// Start and End are byte offsets into the scanned text; MatchedText is
// exactly text[Start:End]. Confidence is in [0,1].
type PatternMatch struct {
	Type        PatternType `json:"pattern_type"`
	MatchedText string      `json:"matched_text"`
	Start       uint64      `json:"start_offset"`
	End         uint64      `json:"end_offset"`
	Confidence  float64     `json:"confidence"`
}

// TextMetrics holds the line, word and byte counts of one scan. Values are
// immutable once produced.
type TextMetrics struct {
	Lines uint64 `json:"lines"`
	Words uint64 `json:"words"`
	Bytes uint64 `json:"bytes"`
}

// ContentStatistics describes the statistical fingerprint of a buffer.
// Entropy is Shannon entropy over the byte-value histogram, in bits per byte
// (0 to 8). WhitespaceRatio is whitespace bytes over total bytes.
type ContentStatistics struct {
	Characters      uint64  `json:"characters"`
	Bytes           uint64  `json:"bytes"`
	Lines           uint64  `json:"lines"`
	Words           uint64  `json:"words"`
	AvgLineLength   float64 `json:"avg_line_length"`
	MaxLineLength   uint64  `json:"max_line_length"`
	WhitespaceRatio float64 `json:"whitespace_ratio"`
	Entropy         float64 `json:"entropy"`
}

// FileClassification is the inferred type of a file from its name and a
// content sample. Language is empty for binary or unrecognized content.
type FileClassification struct {
	Path       string  `json:"path"`
	FileType   string  `json:"file_type"`
	MimeType   string  `json:"mime_type"`
	Encoding   string  `json:"encoding"`
	IsBinary   bool    `json:"is_binary"`
	Language   string  `json:"language,omitempty"`
	Confidence float64 `json:"confidence"`
}

// Report aggregates pattern matches, statistics and derived issue flags for
// one file or buffer. It is immutable once built and has no identity beyond
// the emitted record.
type Report struct {
	Path           string            `json:"path"`
	TotalPatterns  int               `json:"total_patterns"`
	PatternsByType map[string]int    `json:"patterns_by_type,omitempty"`
	Matches        []PatternMatch    `json:"matches,omitempty"`
	Statistics     ContentStatistics `json:"statistics"`
	Issues         []string          `json:"issues,omitempty"`
}
