package storage

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/san-kum/mdsim/internal/sim"
)

// ExportCSV writes one row per step: time followed by x/y/z columns for each
// particle.
func ExportCSV(w io.Writer, meta *RunMetadata, traj sim.Trajectory) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	header := []string{"time"}
	for i := 0; i < meta.Particles; i++ {
		header = append(header,
			fmt.Sprintf("p%d_x", i), fmt.Sprintf("p%d_y", i), fmt.Sprintf("p%d_z", i))
	}
	if err := cw.Write(header); err != nil {
		return err
	}

	for step, frame := range traj {
		t := float64(step+1) * meta.Dt
		row := make([]string, 0, 1+3*len(frame))
		row = append(row, strconv.FormatFloat(t, 'f', 6, 64))
		for _, pos := range frame {
			for axis := 0; axis < 3; axis++ {
				row = append(row, strconv.FormatFloat(pos[axis], 'f', 6, 64))
			}
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

// ExportData is the JSON export shape: run metadata plus the full
// (steps, particles, 3) position tensor.
type ExportData struct {
	Meta       RunMetadata   `json:"meta"`
	Times      []float64     `json:"times"`
	Trajectory [][][]float64 `json:"trajectory"`
}

// ExportJSON writes the run as one indented JSON document.
func ExportJSON(w io.Writer, meta *RunMetadata, traj sim.Trajectory) error {
	data := ExportData{
		Meta:       *meta,
		Times:      make([]float64, len(traj)),
		Trajectory: make([][][]float64, len(traj)),
	}

	for step, frame := range traj {
		data.Times[step] = float64(step+1) * meta.Dt
		positions := make([][]float64, len(frame))
		for i, pos := range frame {
			positions[i] = []float64{pos[0], pos[1], pos[2]}
		}
		data.Trajectory[step] = positions
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(data)
}
