package store

import (
	"encoding/json"
	"io"
	"os"
)

type ExportData struct {
	ID       string             `json:"id"`
	Scenario string             `json:"scenario"`
	G        float64            `json:"g"`
	Dt       float64            `json:"dt"`
	Steps    int                `json:"steps"`
	Bodies   []string           `json:"bodies"`
	Times    []float64          `json:"times"`
	States   [][]float64        `json:"states"`
	Metrics  map[string]float64 `json:"metrics"`
}

// ExportJSON re-emits a stored run as a single JSON document.
func ExportJSON(w io.Writer, meta *RunMetadata, states [][]float64, times []float64) error {
	data := ExportData{
		ID:       meta.ID,
		Scenario: meta.Scenario,
		G:        meta.G,
		Dt:       meta.Dt,
		Steps:    meta.Steps,
		Bodies:   meta.Bodies,
		Times:    times,
		States:   states,
		Metrics:  meta.Metrics,
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(data)
}

// ExportJSONStdout is ExportJSON to standard output.
func ExportJSONStdout(meta *RunMetadata, states [][]float64, times []float64) error {
	return ExportJSON(os.Stdout, meta, states, times)
}
