package mapper

import (
	"encoding/json"
	"fmt"
)

type exportSummary struct {
	TotalComponents int            `json:"totalComponents"`
	CountsByType    map[string]int `json:"countsByType"`
}

type exportDoc struct {
	Summary    exportSummary       `json:"summary"`
	Components []*Entry            `json:"components"`
	Variables  map[string]Variable `json:"variables"`
}

// Export serializes the full index as indented JSON, for debugging and for
// handing the canvas state to external twin runtimes. The summary block gives
// total and per-type component counts.
func (m *Mapper) Export() ([]byte, error) {
	counts := make(map[string]int)
	for _, entry := range m.Components() {
		counts[entry.Type]++
	}
	doc := exportDoc{
		Summary: exportSummary{
			TotalComponents: m.Count(),
			CountsByType:    counts,
		},
		Components: m.Components(),
		Variables:  m.Variables(),
	}
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("export component map: %w", err)
	}
	return data, nil
}
