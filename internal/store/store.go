// Package store persists simulation runs under a data directory, one
// subdirectory per run: metadata.json plus states.csv.
package store

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/san-kum/gravsim/internal/gravity"
)

type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

type RunMetadata struct {
	ID            string             `json:"id"`
	Scenario      string             `json:"scenario"`
	Timestamp     time.Time          `json:"timestamp"`
	G             float64            `json:"g"`
	Dt            float64            `json:"dt"`
	DistanceFloor float64            `json:"distance_floor"`
	Steps         int                `json:"steps"`
	Bodies        []string           `json:"bodies"`
	Metrics       map[string]float64 `json:"metrics"`
	EnergyDrift   float64            `json:"energy_drift"`
}

// Save writes one run. The CSV layout is a time column followed by six
// columns per body (position then velocity), bodies in arena order.
func (s *Store) Save(scenarioName string, sim *gravity.Simulation, result *gravity.Result) (string, error) {
	runID := fmt.Sprintf("%s_%d", scenarioName, time.Now().Unix())
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	names := make([]string, sim.Len())
	for i := range names {
		names[i] = sim.Body(i).Name
	}

	meta := RunMetadata{
		ID:            runID,
		Scenario:      scenarioName,
		Timestamp:     time.Now(),
		G:             sim.G(),
		Dt:            sim.Dt(),
		DistanceFloor: sim.Floor(),
		Steps:         result.StepsTaken,
		Bodies:        names,
		Metrics:       result.Metrics,
		EnergyDrift:   result.EnergyDrift,
	}

	metaPath := filepath.Join(runDir, "metadata.json")
	metaFile, err := os.Create(metaPath)
	if err != nil {
		return "", err
	}
	defer metaFile.Close()

	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return "", err
	}

	csvPath := filepath.Join(runDir, "states.csv")
	csvFile, err := os.Create(csvPath)
	if err != nil {
		return "", err
	}
	defer csvFile.Close()

	w := csv.NewWriter(csvFile)
	defer w.Flush()

	if len(result.Frames) == 0 {
		return runID, nil
	}

	header := []string{"time"}
	for _, name := range names {
		header = append(header,
			name+"_x", name+"_y", name+"_z",
			name+"_vx", name+"_vy", name+"_vz")
	}
	if err := w.Write(header); err != nil {
		return "", err
	}

	for _, frame := range result.Frames {
		row := make([]string, 0, 1+6*len(frame.Bodies))
		row = append(row, strconv.FormatFloat(frame.Time, 'g', -1, 64))
		for _, b := range frame.Bodies {
			for _, v := range []float64{
				b.Position.X, b.Position.Y, b.Position.Z,
				b.Velocity.X, b.Velocity.Y, b.Velocity.Z,
			} {
				row = append(row, strconv.FormatFloat(v, 'g', -1, 64))
			}
		}
		if err := w.Write(row); err != nil {
			return "", err
		}
	}

	return runID, nil
}

func (s *Store) List() ([]RunMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []RunMetadata{}, nil
		}
		return nil, err
	}

	runs := make([]RunMetadata, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}

		metaPath := filepath.Join(s.baseDir, entry.Name(), "metadata.json")
		data, err := os.ReadFile(metaPath)
		if err != nil {
			continue
		}

		var meta RunMetadata
		if err := json.Unmarshal(data, &meta); err != nil {
			continue
		}

		runs = append(runs, meta)
	}

	return runs, nil
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	metaPath := filepath.Join(s.baseDir, runID, "metadata.json")
	data, err := os.ReadFile(metaPath)
	if err != nil {
		return nil, err
	}

	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}

	return &meta, nil
}

// LoadStates reads back the per-step rows: times plus the raw column
// values in header order (six per body).
func (s *Store) LoadStates(runID string) ([][]float64, []float64, error) {
	csvPath := filepath.Join(s.baseDir, runID, "states.csv")
	file, err := os.Open(csvPath)
	if err != nil {
		return nil, nil, err
	}
	defer file.Close()

	r := csv.NewReader(file)
	r.FieldsPerRecord = -1

	records, err := r.ReadAll()
	if err != nil {
		return nil, nil, err
	}

	if len(records) < 2 {
		return [][]float64{}, []float64{}, nil
	}

	times := make([]float64, 0, len(records)-1)
	states := make([][]float64, 0, len(records)-1)

	for i := 1; i < len(records); i++ {
		record := records[i]
		if len(record) == 0 {
			continue
		}

		t, err := strconv.ParseFloat(record[0], 64)
		if err != nil {
			continue
		}
		times = append(times, t)

		state := make([]float64, 0, len(record)-1)
		for j := 1; j < len(record); j++ {
			val, err := strconv.ParseFloat(record[j], 64)
			if err != nil {
				continue
			}
			state = append(state, val)
		}
		states = append(states, state)
	}

	return states, times, nil
}
