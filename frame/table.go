package frame

import (
	"fmt"

	"github.com/katalvlaran/vifprune/matrix"
)

// New builds a Table from column-major input: columns[j] holds the values of
// names[j]. Values are copied.
//
// Errors: ErrNoColumns, ErrNoRows, ErrEmptyName, ErrDuplicateColumn,
// ErrRaggedColumns (wrapped with the offending name).
//
// Complexity: O(rows·cols).
func New(names []string, columns [][]float64) (*Table, error) {
	if len(names) == 0 {
		return nil, ErrNoColumns
	}
	if len(columns) != len(names) {
		return nil, fmt.Errorf("frame: %d names for %d columns: %w", len(names), len(columns), ErrRaggedColumns)
	}
	rows := len(columns[0])
	if rows == 0 {
		return nil, ErrNoRows
	}
	cols := len(names)
	data := make([]float64, rows*cols)
	for j, col := range columns {
		if len(col) != rows {
			return nil, fmt.Errorf("frame: column %q has %d rows, want %d: %w", names[j], len(col), rows, ErrRaggedColumns)
		}
		for i, v := range col {
			data[i*cols+j] = v
		}
	}

	return build(names, rows, data)
}

// FromRows builds a Table from row-major input: rows[i][j] is row i of names[j].
// Values are copied.
//
// Errors: as New.
//
// Complexity: O(rows·cols).
func FromRows(names []string, rows [][]float64) (*Table, error) {
	if len(names) == 0 {
		return nil, ErrNoColumns
	}
	if len(rows) == 0 {
		return nil, ErrNoRows
	}
	cols := len(names)
	data := make([]float64, 0, len(rows)*cols)
	for i, row := range rows {
		if len(row) != cols {
			return nil, fmt.Errorf("frame: row %d has %d values, want %d: %w", i, len(row), cols, ErrRaggedColumns)
		}
		data = append(data, row...)
	}

	return build(names, len(rows), data)
}

// FromDense builds a Table over a copy of d with the given column names.
//
// Errors: ErrNoColumns/ErrNoRows for a nil or empty matrix, ErrRaggedColumns
// when len(names) != d.Cols(), plus the name errors of New.
func FromDense(names []string, d *matrix.Dense) (*Table, error) {
	if d == nil || d.Cols() == 0 {
		return nil, ErrNoColumns
	}
	if d.Rows() == 0 {
		return nil, ErrNoRows
	}
	if len(names) != d.Cols() {
		return nil, fmt.Errorf("frame: %d names for %d columns: %w", len(names), d.Cols(), ErrRaggedColumns)
	}
	rows, cols := d.Shape()
	data := make([]float64, 0, rows*cols)
	for i := 0; i < rows; i++ {
		data = append(data, d.RawRow(i)...)
	}

	return build(names, rows, data)
}

// build validates names and wraps data (already owned) in a Table.
func build(names []string, rows int, data []float64) (*Table, error) {
	index := make(map[string]int, len(names))
	for j, name := range names {
		if name == "" {
			return nil, fmt.Errorf("frame: column %d: %w", j, ErrEmptyName)
		}
		if _, dup := index[name]; dup {
			return nil, fmt.Errorf("frame: column %q: %w", name, ErrDuplicateColumn)
		}
		index[name] = j
	}
	d, err := matrix.NewDenseFrom(rows, len(names), data, matrix.WithNoValidateNaNInf())
	if err != nil {
		return nil, fmt.Errorf("frame: %w", err)
	}

	return &Table{
		names: append([]string(nil), names...),
		index: index,
		data:  d,
	}, nil
}
