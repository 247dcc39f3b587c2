package patterns

import (
	"regexp"
	"strings"

	"github.com/bytesift/bytesift/internal/types"
)

// entry is one row of the detection catalog. The catalog is data, not code
// branches: adding a pattern type means adding a row. Compilation happens at
// package init via MustCompile, so an invalid pattern is a fatal construction
// error surfaced at startup, never a per-scan failure.
type entry struct {
	Type      types.PatternType
	re        *regexp.Regexp
	base      float64
	sensitive bool
	issue     string
	// adjust may refine the base confidence from the matched text. It must
	// return a score in [0,1] and never signal a drop: a match that has the
	// pattern's shape is always reported, a failed heuristic only penalizes.
	adjust func(match string, base float64) float64
}

var catalog = []entry{
	{
		Type:      types.PatternEmail,
		re:        regexp.MustCompile(`(?i)\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`),
		base:      0.95,
		sensitive: true,
		issue:     "contains email addresses",
	},
	{
		Type:   types.PatternURL,
		re:     regexp.MustCompile(`(?i)\b(?:https?://|www\.)[^\s/$.?#][^\s]*`),
		base:   0.85,
		adjust: adjustURL,
	},
	{
		Type:      types.PatternIPv4,
		re:        regexp.MustCompile(`\b(?:(?:25[0-5]|2[0-4][0-9]|[01]?[0-9][0-9]?)\.){3}(?:25[0-5]|2[0-4][0-9]|[01]?[0-9][0-9]?)\b`),
		base:      0.99,
		sensitive: true,
		issue:     "contains IP addresses",
	},
	{
		Type:      types.PatternPhone,
		re:        regexp.MustCompile(`\b(?:\+?1[-.\s]?)?\(?[0-9]{3}\)?[-.\s]?[0-9]{3}[-.\s]?[0-9]{4}\b`),
		base:      0.8,
		sensitive: true,
		issue:     "contains phone numbers",
	},
	{
		Type:      types.PatternSSN,
		re:        regexp.MustCompile(`\b\d{3}-\d{2}-\d{4}\b`),
		base:      0.8,
		sensitive: true,
		issue:     "contains SSN-formatted numbers",
	},
	{
		Type:      types.PatternCreditCard,
		re:        regexp.MustCompile(`\b(?:\d{4}[-\s]?){3}\d{4}\b`),
		base:      0.8,
		sensitive: true,
		issue:     "contains payment card numbers",
		adjust:    adjustCreditCard,
	},
	{
		Type: types.PatternDate,
		re:   regexp.MustCompile(`\b\d{4}[-/]\d{1,2}[-/]\d{1,2}\b|\b\d{1,2}[-/]\d{1,2}[-/]\d{4}\b`),
		base: 0.8,
	},
	{
		Type: types.PatternHexNumber,
		re:   regexp.MustCompile(`\b0x[0-9A-Fa-f]+\b`),
		base: 0.8,
	},
	{
		Type: types.PatternHexColor,
		re:   regexp.MustCompile(`#(?:[0-9A-Fa-f]{6}|[0-9A-Fa-f]{3})\b`),
		base: 0.8,
	},
	{
		Type:   types.PatternBase64,
		re:     regexp.MustCompile(`[A-Za-z0-9+/]{20,}={0,2}`),
		base:   0.6,
		adjust: adjustBase64,
	},
	{
		Type: types.PatternUUID,
		re:   regexp.MustCompile(`\b[0-9a-f]{8}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{12}\b`),
		base: 0.99,
	},
	{
		Type: types.PatternFilePath,
		re:   regexp.MustCompile(`[A-Za-z]:\\[^\s]*|/[^\s]+`),
		base: 0.7,
	},
	{
		Type:      types.PatternHighEntropyToken,
		re:        regexp.MustCompile(`[A-Za-z0-9+/=_-]{20,}`),
		base:      0.7,
		sensitive: true,
		issue:     "contains high-entropy tokens",
		adjust:    adjustEntropyToken,
	},
}

// TypeIDs returns the catalog's pattern type ids in catalog order.
func TypeIDs() []string {
	ids := make([]string, len(catalog))
	for i, e := range catalog {
		ids[i] = string(e.Type)
	}
	return ids
}

// BaseConfidence returns the base confidence for a pattern type id, or -1 for
// an unknown id.
func BaseConfidence(id string) float64 {
	for _, e := range catalog {
		if string(e.Type) == id {
			return e.base
		}
	}
	return -1
}

// Sensitive reports whether a pattern type id flags sensitive data.
func Sensitive(id string) bool {
	for _, e := range catalog {
		if string(e.Type) == id {
			return e.sensitive
		}
	}
	return false
}

func adjustURL(match string, base float64) float64 {
	lower := strings.ToLower(match)
	if strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://") {
		return 0.98
	}
	return base
}

// adjustCreditCard applies the Luhn checksum. Failing the checksum penalizes
// the match rather than dropping it: a well-shaped number is still reported.
func adjustCreditCard(match string, base float64) float64 {
	if luhnValid(match) {
		return 0.95
	}
	return base - 0.25
}

func adjustBase64(match string, base float64) float64 {
	if len(match) >= 40 {
		return 0.9
	}
	return base
}

// adjustEntropyToken penalizes token-shaped runs whose entropy is too low to
// be a credential. The configured minimum confidence filters them; the
// detector itself never silently discards a shaped match.
func adjustEntropyToken(match string, base float64) float64 {
	if stringEntropy(match) >= 4.0 {
		return base
	}
	return 0.3
}
