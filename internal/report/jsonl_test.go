package report

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bytesift/bytesift/internal/types"
)

func fixedEncoder(buf *bytes.Buffer) *Encoder {
	e := NewEncoder(buf)
	e.Now = func() time.Time { return time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC) }
	return e
}

func TestEncoderDeterministic(t *testing.T) {
	rep := types.Report{
		Path:           "a.txt",
		TotalPatterns:  2,
		PatternsByType: map[string]int{"ipv4": 1, "email": 1},
		Matches: []types.PatternMatch{
			{Type: types.PatternIPv4, MatchedText: "10.0.0.1", Start: 0, End: 8, Confidence: 0.99},
			{Type: types.PatternEmail, MatchedText: "a@b.io", Start: 13, End: 19, Confidence: 0.95},
		},
		Issues: []string{"contains IP addresses", "contains email addresses"},
	}

	var first, second bytes.Buffer
	require.NoError(t, fixedEncoder(&first).WriteAnalysis(rep))
	require.NoError(t, fixedEncoder(&second).WriteAnalysis(rep))
	assert.Equal(t, first.Bytes(), second.Bytes(), "identical inputs must encode identically")
	assert.Equal(t, 1, strings.Count(first.String(), "\n"), "one record per line")
}

func TestRecordDiscriminators(t *testing.T) {
	var buf bytes.Buffer
	e := fixedEncoder(&buf)

	require.NoError(t, e.WriteFile("f.bin", 10, "00ff", types.FileClassification{Path: "f.bin"}))
	require.NoError(t, e.WriteMetrics("f.txt", types.TextMetrics{Lines: 1, Words: 2, Bytes: 3}))
	require.NoError(t, e.WriteAnalysis(types.Report{Path: "f.txt"}))
	require.NoError(t, e.WriteMatch("f.bin", 4, 2))
	require.NoError(t, e.WriteError("gone", &types.Error{Kind: types.KindNotFound, Path: "gone"}))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 5)
	wantTypes := []string{TypeFile, TypeText, TypeAnalysis, TypeMatch, TypeError}
	for i, line := range lines {
		var envelope struct {
			Type      string `json:"type"`
			Timestamp string `json:"timestamp"`
		}
		require.NoError(t, json.Unmarshal([]byte(line), &envelope), "line %d", i)
		assert.Equal(t, wantTypes[i], envelope.Type)
		assert.Equal(t, "2024-05-01T12:00:00Z", envelope.Timestamp)
	}
}

func TestErrorRecordKind(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, fixedEncoder(&buf).WriteError("x", &types.Error{Kind: types.KindBounds, Msg: "read past end"}))

	var rec ErrorRecord
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "bounds", rec.Kind)
	assert.Contains(t, rec.Message, "read past end")
}

func TestErrorRecordUntypedFallback(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, fixedEncoder(&buf).WriteError("x", assert.AnError))

	var rec ErrorRecord
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "internal", rec.Kind)
}

func TestPrintAnalysisMasksSensitiveMatches(t *testing.T) {
	var buf bytes.Buffer
	PrintAnalysis(&buf, types.Report{
		Path:          "creds.txt",
		TotalPatterns: 1,
		Matches: []types.PatternMatch{
			{Type: types.PatternEmail, MatchedText: "someone@example.com", Start: 0, End: 19, Confidence: 0.95},
		},
	}, PrintOptions{NoColor: true})
	out := buf.String()
	assert.NotContains(t, out, "someone@example.com")
	assert.Contains(t, out, "some…")
}
