// Package dataset reads and writes frame.Table values as CSV.
//
// The first record is the header (column names); every following record
// holds one numeric value per column. Values are written in the shortest
// form that parses back to the same float64.
package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/vifprune/frame"
)

var (
	// ErrEmpty indicates an input without a header record.
	ErrEmpty = errors.New("dataset: empty input")

	// ErrNonNumeric indicates a cell that does not parse as a number.
	ErrNonNumeric = errors.New("dataset: non-numeric value")
)

// ReadCSV parses r into a Table.
//
// Errors: ErrEmpty, ErrNonNumeric (with line and column), the frame
// construction errors (frame.ErrNoRows, frame.ErrRaggedColumns,
// frame.ErrDuplicateColumn, frame.ErrEmptyName) and csv syntax errors.
func ReadCSV(r io.Reader) (*frame.Table, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true
	cr.ReuseRecord = true

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, ErrEmpty
	}
	if err != nil {
		return nil, fmt.Errorf("dataset: read header: %w", err)
	}
	names := make([]string, len(header))
	for j, h := range header {
		names[j] = strings.TrimSpace(h)
	}

	var rows [][]float64
	for line := 2; ; line++ {
		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("dataset: read line %d: %w", line, err)
		}
		if len(record) != len(names) {
			return nil, fmt.Errorf("dataset: line %d has %d fields, want %d: %w",
				line, len(record), len(names), frame.ErrRaggedColumns)
		}
		row := make([]float64, len(record))
		for j, cell := range record {
			v, err := strconv.ParseFloat(strings.TrimSpace(cell), 64)
			if err != nil {
				return nil, fmt.Errorf("dataset: line %d column %q: %q: %w", line, names[j], cell, ErrNonNumeric)
			}
			row[j] = v
		}
		rows = append(rows, row)
	}

	t, err := frame.FromRows(names, rows)
	if err != nil {
		return nil, fmt.Errorf("dataset: %w", err)
	}

	return t, nil
}

// LoadCSV opens path and parses it with ReadCSV.
func LoadCSV(path string) (*frame.Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("dataset: open %s: %w", path, err)
	}
	defer f.Close()

	return ReadCSV(f)
}

// WriteCSV writes t (header plus rows) to w.
func WriteCSV(w io.Writer, t *frame.Table) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(t.Names()); err != nil {
		return fmt.Errorf("dataset: write header: %w", err)
	}
	record := make([]string, t.NumCols())
	for i := 0; i < t.NumRows(); i++ {
		for j, v := range t.Row(i) {
			record[j] = strconv.FormatFloat(v, 'g', -1, 64)
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("dataset: write row %d: %w", i, err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("dataset: flush: %w", err)
	}

	return nil
}

// SaveCSV creates (or truncates) path and writes t to it.
func SaveCSV(path string, t *frame.Table) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("dataset: create %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("dataset: close %s: %w", path, cerr)
		}
	}()

	return WriteCSV(f, t)
}
