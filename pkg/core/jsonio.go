package core

import (
	"encoding/json"
	"io"
)

// MarshalReports pretty-prints reports as JSON for humans or pipelines.
func MarshalReports(w io.Writer, reports []Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(reports)
}

// UnmarshalReports decodes reports JSON, useful for ingestion tests.
func UnmarshalReports(r io.Reader) ([]Report, error) {
	var reps []Report
	if err := json.NewDecoder(r).Decode(&reps); err != nil {
		return nil, err
	}
	return reps, nil
}
