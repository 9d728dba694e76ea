// Package export writes evaluated trajectories as CSV or JSON.
package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/san-kum/growthlab/internal/analysis"
	"github.com/san-kum/growthlab/internal/growth"
)

// Series is a named trajectory column.
type Series struct {
	Name       string
	Trajectory *growth.Trajectory
}

// WriteCSV writes one time column followed by one column per series.
// All series must share the same sample instants.
func WriteCSV(w io.Writer, series ...Series) error {
	if len(series) == 0 {
		return fmt.Errorf("no data to export")
	}
	times := series[0].Trajectory.Times
	for _, s := range series[1:] {
		if s.Trajectory.Len() != len(times) {
			return fmt.Errorf("series %s has %d samples, expected %d", s.Name, s.Trajectory.Len(), len(times))
		}
	}

	cw := csv.NewWriter(w)

	header := []string{"time"}
	for _, s := range series {
		header = append(header, s.Name)
	}
	if err := cw.Write(header); err != nil {
		return err
	}

	for i, t := range times {
		row := []string{strconv.FormatFloat(t, 'f', 6, 64)}
		for _, s := range series {
			row = append(row, strconv.FormatFloat(s.Trajectory.Values[i], 'f', 6, 64))
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

type Document struct {
	Model    string           `json:"model"`
	Params   growth.Params    `json:"params"`
	Samples  int              `json:"samples"`
	Times    []float64        `json:"times"`
	Values   []float64        `json:"values"`
	Solution *growth.Solution `json:"solution"`
	Summary  analysis.Summary `json:"summary"`
}

// WriteJSON writes one model evaluation, including its formula tree.
// JSON has no encoding for overflowed samples, so a trajectory that fails
// CheckFinite is rejected before anything is written.
func WriteJSON(w io.Writer, kind growth.Kind, p growth.Params, traj *growth.Trajectory, sol *growth.Solution) error {
	if err := traj.CheckFinite(); err != nil {
		return fmt.Errorf("export %s: %w", kind, err)
	}

	doc := Document{
		Model:    kind.String(),
		Params:   p,
		Samples:  traj.Len(),
		Times:    traj.Times,
		Values:   traj.Values,
		Solution: sol,
		Summary:  analysis.Summarize(kind, p, traj),
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(doc)
}
