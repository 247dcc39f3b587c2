// Package patterns implements the structured-data detection catalog and the
// content analysis built on it. Each catalog entry matches independently over
// the full text; matches from different types may overlap.
package patterns

import (
	"sort"
	"strings"

	"github.com/bytesift/bytesift/internal/types"
)

// Config controls detection thresholds and the active catalog subset.
type Config struct {
	// MinConfidence filters matches below the threshold after heuristic
	// adjustment. Zero keeps everything.
	MinConfidence float64
	// Enable restricts the catalog to the listed type ids when non-empty.
	Enable []string
	// Disable removes the listed type ids from the catalog.
	Disable []string
}

// DefaultConfig mirrors the defaults of the analyze command.
func DefaultConfig() Config {
	return Config{MinConfidence: 0.5}
}

// Detector matches the fixed catalog over text. Detection is a pure function
// of its input: running twice over the same text yields the same ordered
// match sequence.
type Detector struct {
	cfg    Config
	active []entry
}

// New builds a detector over the catalog subset selected by cfg.
func New(cfg Config) *Detector {
	allowed := map[string]bool{}
	for _, id := range cfg.Enable {
		allowed[strings.TrimSpace(id)] = true
	}
	blocked := map[string]bool{}
	for _, id := range cfg.Disable {
		blocked[strings.TrimSpace(id)] = true
	}
	var active []entry
	for _, e := range catalog {
		if len(allowed) > 0 && !allowed[string(e.Type)] {
			continue
		}
		if blocked[string(e.Type)] {
			continue
		}
		active = append(active, e)
	}
	return &Detector{cfg: cfg, active: active}
}

// Detect returns every catalog match in text, ordered by ascending start
// offset with catalog order breaking ties.
func (d *Detector) Detect(text string) []types.PatternMatch {
	type ordered struct {
		m   types.PatternMatch
		idx int
	}
	var all []ordered
	for idx, e := range d.active {
		for _, loc := range e.re.FindAllStringIndex(text, -1) {
			matched := text[loc[0]:loc[1]]
			conf := e.base
			if e.adjust != nil {
				conf = e.adjust(matched, e.base)
			}
			if conf < 0 {
				conf = 0
			}
			if conf > 1 {
				conf = 1
			}
			if d.cfg.MinConfidence > 0 && conf < d.cfg.MinConfidence {
				continue
			}
			all = append(all, ordered{
				m: types.PatternMatch{
					Type:        e.Type,
					MatchedText: matched,
					Start:       uint64(loc[0]),
					End:         uint64(loc[1]),
					Confidence:  conf,
				},
				idx: idx,
			})
		}
	}
	sort.Slice(all, func(i, j int) bool {
		if all[i].m.Start != all[j].m.Start {
			return all[i].m.Start < all[j].m.Start
		}
		return all[i].idx < all[j].idx
	})
	out := make([]types.PatternMatch, len(all))
	for i, o := range all {
		out[i] = o.m
	}
	return out
}

// AnalyzeContent runs detection and statistics over text and derives issue
// flags from the matches, so issues and matches can never disagree. The two
// statistical flags (near-maximal entropy, sparse content) come from the
// computed statistics.
func (d *Detector) AnalyzeContent(text string, path string) types.Report {
	matches := d.Detect(text)
	st := Statistics([]byte(text))

	byType := map[string]int{}
	for _, m := range matches {
		byType[string(m.Type)]++
	}

	var issues []string
	for _, e := range d.active {
		if e.sensitive && byType[string(e.Type)] > 0 {
			issues = append(issues, e.issue)
		}
	}
	if st.Entropy > 7.8 {
		issues = append(issues, "high entropy content, possibly encrypted or compressed")
	}
	if st.WhitespaceRatio > 0.9 {
		issues = append(issues, "very high whitespace ratio, content may be sparse")
	}

	rep := types.Report{
		Path:          path,
		TotalPatterns: len(matches),
		Matches:       matches,
		Statistics:    st,
		Issues:        issues,
	}
	if len(byType) > 0 {
		rep.PatternsByType = byType
	}
	return rep
}
