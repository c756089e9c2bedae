// Package storage persists completed runs. Each run gets its own directory
// under the store's base dir holding metadata.json and trajectory.bin.
package storage

import (
	"bufio"
	"encoding/binary"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/san-kum/mdsim/internal/md"
	"github.com/san-kum/mdsim/internal/sim"
)

const (
	metadataFile   = "metadata.json"
	trajectoryFile = "trajectory.bin"

	trajVersion int32 = 1
)

// trajMagic identifies a trajectory file; the trailing byte pads the tag to
// eight bytes.
var trajMagic = [8]byte{'M', 'D', 'T', 'R', 'A', 'J', '1', 0}

type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

// RunMetadata is the self-describing record written beside every trajectory.
type RunMetadata struct {
	ID        string             `json:"id"`
	Timestamp time.Time          `json:"timestamp"`
	Steps     int                `json:"steps"`
	Particles int                `json:"particles"`
	Dt        float64            `json:"dt"`
	Box       float64            `json:"box"`
	Epsilon   float64            `json:"epsilon"`
	Sigma     float64            `json:"sigma"`
	Mass      float64            `json:"mass"`
	Cutoff    float64            `json:"cutoff"`
	Seed      int64              `json:"seed"`
	Metrics   map[string]float64 `json:"metrics"`
}

// Save writes one completed run. Either both files land on disk or an error
// is returned; a partial run is never reported as a success.
func (s *Store) Save(cfg sim.Config, result *sim.Result) (string, error) {
	runID := fmt.Sprintf("run_%d", time.Now().Unix())
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	meta := RunMetadata{
		ID:        runID,
		Timestamp: time.Now(),
		Steps:     cfg.Steps,
		Particles: cfg.Particles,
		Dt:        cfg.Dt,
		Box:       cfg.Box,
		Epsilon:   cfg.Epsilon,
		Sigma:     cfg.Sigma,
		Mass:      cfg.Mass,
		Cutoff:    cfg.Cutoff,
		Seed:      cfg.Seed,
		Metrics:   result.Metrics,
	}

	if err := s.writeMetadata(runDir, meta); err != nil {
		return "", fmt.Errorf("write metadata: %w", err)
	}
	if err := writeTrajectory(filepath.Join(runDir, trajectoryFile), result.Trajectory); err != nil {
		return "", fmt.Errorf("write trajectory: %w", err)
	}

	return runID, nil
}

func (s *Store) writeMetadata(runDir string, meta RunMetadata) error {
	file, err := os.Create(filepath.Join(runDir, metadataFile))
	if err != nil {
		return err
	}
	defer file.Close()

	enc := json.NewEncoder(file)
	enc.SetIndent("", "  ")
	return enc.Encode(meta)
}

// writeTrajectory encodes a fixed header followed by steps*particles*3
// little-endian float64 position components, frame by frame.
func writeTrajectory(path string, traj sim.Trajectory) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	w := bufio.NewWriter(file)

	particles := 0
	if len(traj) > 0 {
		particles = len(traj[0])
	}

	if err := binary.Write(w, binary.LittleEndian, trajMagic); err != nil {
		return err
	}
	for _, dim := range []int32{trajVersion, int32(len(traj)), int32(particles)} {
		if err := binary.Write(w, binary.LittleEndian, dim); err != nil {
			return err
		}
	}

	for _, frame := range traj {
		for _, pos := range frame {
			if err := binary.Write(w, binary.LittleEndian, pos); err != nil {
				return err
			}
		}
	}

	if err := w.Flush(); err != nil {
		return err
	}
	return file.Sync()
}

// List returns the metadata of every stored run. Unreadable entries are
// skipped rather than failing the whole listing.
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
		meta, err := s.Load(entry.Name())
		if err != nil {
			continue
		}
		runs = append(runs, *meta)
	}
	return runs, nil
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, metadataFile))
	if err != nil {
		return nil, err
	}

	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}
	return &meta, nil
}

// LoadTrajectory reads a stored trajectory back into frames. A missing file
// surfaces as an os.ErrNotExist-wrapped error so callers can distinguish a
// user mistake from corruption.
func (s *Store) LoadTrajectory(runID string) (sim.Trajectory, error) {
	file, err := os.Open(filepath.Join(s.baseDir, runID, trajectoryFile))
	if err != nil {
		return nil, err
	}
	defer file.Close()

	r := bufio.NewReader(file)

	var magic [8]byte
	if err := binary.Read(r, binary.LittleEndian, &magic); err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}
	if magic != trajMagic {
		return nil, fmt.Errorf("%s: not a trajectory file", runID)
	}

	var version, steps, particles int32
	for _, dst := range []*int32{&version, &steps, &particles} {
		if err := binary.Read(r, binary.LittleEndian, dst); err != nil {
			return nil, fmt.Errorf("read header: %w", err)
		}
	}
	if version != trajVersion {
		return nil, fmt.Errorf("unsupported trajectory version %d", version)
	}
	if steps < 0 || particles < 0 {
		return nil, fmt.Errorf("corrupt trajectory header: %d steps, %d particles", steps, particles)
	}

	traj := make(sim.Trajectory, steps)
	for i := range traj {
		frame := make([]md.Vec3, particles)
		for j := range frame {
			if err := binary.Read(r, binary.LittleEndian, &frame[j]); err != nil {
				return nil, fmt.Errorf("read frame %d: %w", i, err)
			}
		}
		traj[i] = frame
	}
	return traj, nil
}
