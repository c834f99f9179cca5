package storage

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/san-kum/counterpart/internal/sweep"
)

// Table is a sweep flattened to numeric columns. Verdicts are stored as 0/1.
type Table struct {
	Kind    string             `json:"kind"`
	Params  map[string]float64 `json:"params"`
	Orbit   string             `json:"orbit,omitempty"`
	Columns []string           `json:"columns"`
	Rows    []Row              `json:"rows"`
}

// Row is one table row. JSON has no NaN or Inf, so non-finite cells are
// written as null and read back as NaN.
type Row []float64

func (r Row) MarshalJSON() ([]byte, error) {
	cells := make([]*float64, len(r))
	for i := range r {
		if !math.IsNaN(r[i]) && !math.IsInf(r[i], 0) {
			cells[i] = &r[i]
		}
	}
	return json.Marshal(cells)
}

func (r *Row) UnmarshalJSON(data []byte) error {
	var cells []*float64
	if err := json.Unmarshal(data, &cells); err != nil {
		return err
	}
	row := make(Row, len(cells))
	for i, c := range cells {
		if c == nil {
			row[i] = math.NaN()
			continue
		}
		row[i] = *c
	}
	*r = row
	return nil
}

func boolToFloat(b bool) float64 {
	if b {
		return 1
	}
	return 0
}

func SpinTable(p sweep.NSBHParams, points []sweep.SpinPoint) *Table {
	t := &Table{
		Kind:    "spin",
		Params:  map[string]float64{"mbh": p.MassBH, "mns": p.MassNS, "rns": p.RadiusNS},
		Orbit:   p.Orbit.String(),
		Columns: []string{"spin", "r_isco_km", "r_disruption_km", "disrupted"},
		Rows:    make([]Row, len(points)),
	}
	for i, pt := range points {
		t.Rows[i] = Row{pt.Spin, pt.RIsco, pt.RDisruption, boolToFloat(pt.Disrupted)}
	}
	return t
}

func BNSTable(p sweep.BNSParams, points []sweep.BNSPoint) *Table {
	t := &Table{
		Kind:    "bns",
		Params:  map[string]float64{"mtov": p.MassTOV, "ejecta": p.EjectaMass, "min": p.MinMass, "max": p.MaxMass},
		Columns: []string{"m1", "m2", "remnant_mass", "collapses"},
		Rows:    make([]Row, len(points)),
	}
	for i, pt := range points {
		t.Rows[i] = Row{pt.Mass1, pt.Mass2, pt.RemnantMass, boolToFloat(pt.Collapses)}
	}
	return t
}

func WriteCSV(w io.Writer, t *Table) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(t.Columns); err != nil {
		return err
	}
	record := make([]string, len(t.Columns))
	for i, row := range t.Rows {
		if len(row) != len(t.Columns) {
			return fmt.Errorf("storage: row %d has %d values, want %d", i, len(row), len(t.Columns))
		}
		for j, v := range row {
			record[j] = strconv.FormatFloat(v, 'g', -1, 64)
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func WriteJSON(w io.Writer, t *Table) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(t)
}

// Export writes t to path, choosing CSV or JSON from the extension.
func Export(path string, t *Table) error {
	var write func(io.Writer, *Table) error
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		write = WriteCSV
	case ".json":
		write = WriteJSON
	default:
		return fmt.Errorf("storage: unsupported export format %q", filepath.Ext(path))
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}

	file, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := write(file, t); err != nil {
		file.Close()
		os.Remove(path)
		return err
	}
	if err := file.Close(); err != nil {
		os.Remove(path)
		return err
	}
	return nil
}

// ReadCSV loads a table written by WriteCSV. Kind and params are not stored
// in CSV and come back empty.
func ReadCSV(r io.Reader) (*Table, error) {
	records, err := csv.NewReader(r).ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("storage: empty csv")
	}
	t := &Table{Columns: records[0], Rows: make([]Row, 0, len(records)-1)}
	for i, rec := range records[1:] {
		row := make(Row, len(rec))
		for j, s := range rec {
			v, err := strconv.ParseFloat(s, 64)
			if err != nil {
				return nil, fmt.Errorf("storage: row %d col %d: %w", i+1, j, err)
			}
			row[j] = v
		}
		t.Rows = append(t.Rows, row)
	}
	return t, nil
}
