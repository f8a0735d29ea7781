// Package storage persists simulation runs on disk for later replay:
// metadata as JSON next to the binary payload.
package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/Alper-bit/QTunelling-API/internal/qsim"
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

// RunMetadata summarizes one saved run.
type RunMetadata struct {
	ID            string                    `json:"id"`
	Timestamp     time.Time                 `json:"timestamp"`
	Params        qsim.SimulationParameters `json:"params"`
	BarrierHeight float64                   `json:"barrier_height"`
	GridSize      int                       `json:"grid_size"`
	FrameCount    int                       `json:"frame_count"`
	Reflected     float64                   `json:"reflected"`
	Transmitted   float64                   `json:"transmitted"`
}

// Save writes metadata.json and payload.bin for a completed run and returns
// the generated run ID.
func (s *Store) Save(meta RunMetadata, payload []byte) (string, error) {
	runID := fmt.Sprintf("run_%d", time.Now().UnixNano())
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	meta.ID = runID
	meta.Timestamp = time.Now()

	metaFile, err := os.Create(filepath.Join(runDir, "metadata.json"))
	if err != nil {
		return "", err
	}
	defer metaFile.Close()

	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return "", err
	}

	if err := os.WriteFile(filepath.Join(runDir, "payload.bin"), payload, 0644); err != nil {
		return "", err
	}
	return runID, nil
}

// Load reads the metadata of one run.
func (s *Store) Load(runID string) (*RunMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, "metadata.json"))
	if err != nil {
		return nil, fmt.Errorf("run %s not found: %w", runID, err)
	}
	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}
	return &meta, nil
}

// LoadPayload reads the stored binary payload of one run.
func (s *Store) LoadPayload(runID string) ([]byte, error) {
	return os.ReadFile(filepath.Join(s.baseDir, runID, "payload.bin"))
}

// List returns all saved runs, newest first.
func (s *Store) List() ([]RunMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	var runs []RunMetadata
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		meta, err := s.Load(e.Name())
		if err != nil {
			continue
		}
		runs = append(runs, *meta)
	}

	sort.Slice(runs, func(i, j int) bool {
		return runs[i].Timestamp.After(runs[j].Timestamp)
	})
	return runs, nil
}
