package frame

import (
	"fmt"
	"math"
	"strings"

	"github.com/katalvlaran/vifprune/matrix"
)

// Names returns a copy of the column names in table order.
func (t *Table) Names() []string { return append([]string(nil), t.names...) }

// NumRows returns the number of rows.
func (t *Table) NumRows() int { return t.data.Rows() }

// NumCols returns the number of columns.
func (t *Table) NumCols() int { return len(t.names) }

// Has reports whether a column called name exists.
func (t *Table) Has(name string) bool {
	_, ok := t.index[name]
	return ok
}

// Index returns the position of name in the column order.
func (t *Table) Index(name string) (int, bool) {
	j, ok := t.index[name]
	return j, ok
}

// Column returns a copy of the values of column name.
func (t *Table) Column(name string) ([]float64, error) {
	j, ok := t.index[name]
	if !ok {
		return nil, fmt.Errorf("frame: column %q: %w", name, ErrUnknownColumn)
	}

	return t.data.Col(j)
}

// Row returns a copy of row i in column order. i must be in [0, NumRows).
func (t *Table) Row(i int) []float64 { return t.data.RawRow(i) }

// Dense returns a copy of the underlying matrix (rows × columns).
func (t *Table) Dense() *matrix.Dense { return t.data.Clone().(*matrix.Dense) }

// Drop returns a new Table without column name.
// The receiver is unchanged; the other columns keep their order and values.
//
// Errors: ErrUnknownColumn; ErrNoColumns when name is the only column.
func (t *Table) Drop(name string) (*Table, error) {
	if _, ok := t.index[name]; !ok {
		return nil, fmt.Errorf("frame: drop %q: %w", name, ErrUnknownColumn)
	}
	keep := make([]string, 0, len(t.names)-1)
	for _, n := range t.names {
		if n != name {
			keep = append(keep, n)
		}
	}
	if len(keep) == 0 {
		return nil, fmt.Errorf("frame: drop %q: %w", name, ErrNoColumns)
	}

	return t.Select(keep)
}

// Select returns a new Table holding exactly the named columns, in the order given.
//
// Errors: ErrNoColumns for an empty selection, ErrUnknownColumn, ErrDuplicateColumn.
//
// Complexity: O(rows·len(names)).
func (t *Table) Select(names []string) (*Table, error) {
	if len(names) == 0 {
		return nil, ErrNoColumns
	}
	cols := make([]int, len(names))
	seen := make(map[string]struct{}, len(names))
	for k, n := range names {
		j, ok := t.index[n]
		if !ok {
			return nil, fmt.Errorf("frame: select %q: %w", n, ErrUnknownColumn)
		}
		if _, dup := seen[n]; dup {
			return nil, fmt.Errorf("frame: select %q: %w", n, ErrDuplicateColumn)
		}
		seen[n] = struct{}{}
		cols[k] = j
	}
	sub, err := t.data.SelectCols(cols)
	if err != nil {
		return nil, fmt.Errorf("frame: select: %w", err)
	}
	index := make(map[string]int, len(names))
	for k, n := range names {
		index[n] = k
	}

	return &Table{names: append([]string(nil), names...), index: index, data: sub}, nil
}

// HasConstant reports whether the table carries the ConstName column.
func (t *Table) HasConstant() bool { return t.Has(ConstName) }

// WithConstant returns the augmented table: a leading column of ones named
// ConstName followed by the receiver's columns. When ConstName already exists
// the receiver itself is returned, whatever its values; callers that need an
// intercept check them (see ConstantIsOnes).
func (t *Table) WithConstant() *Table {
	if t.HasConstant() {
		return t
	}
	rows, cols := t.data.Shape()
	data := make([]float64, 0, rows*(cols+1))
	for i := 0; i < rows; i++ {
		data = append(data, 1)
		data = append(data, t.data.RawRow(i)...)
	}
	d, _ := matrix.NewDenseFrom(rows, cols+1, data, matrix.WithNoValidateNaNInf()) // shape is valid by construction
	names := append([]string{ConstName}, t.names...)
	index := make(map[string]int, len(names))
	for j, n := range names {
		index[n] = j
	}

	return &Table{names: names, index: index, data: d}
}

// ConstantIsOnes reports whether the ConstName column exists and holds only
// ones. It returns the first row that breaks the rule, or -1.
func (t *Table) ConstantIsOnes() (ok bool, row int) {
	j, has := t.index[ConstName]
	if !has {
		return false, -1
	}
	for i := 0; i < t.data.Rows(); i++ {
		if v, _ := t.data.At(i, j); v != 1 {
			return false, i
		}
	}

	return true, -1
}

// WithoutConstant returns the table minus ConstName (the receiver when absent).
//
// Errors: ErrNoColumns when ConstName is the only column.
func (t *Table) WithoutConstant() (*Table, error) {
	if !t.HasConstant() {
		return t, nil
	}

	return t.Drop(ConstName)
}

// Equal reports whether both tables have the same names in the same order and
// bitwise-identical values.
func (t *Table) Equal(o *Table) bool {
	if t == o {
		return true
	}
	if t == nil || o == nil || len(t.names) != len(o.names) || t.NumRows() != o.NumRows() {
		return false
	}
	for j := range t.names {
		if t.names[j] != o.names[j] {
			return false
		}
	}
	for i := 0; i < t.NumRows(); i++ {
		a, b := t.data.RawRow(i), o.data.RawRow(i)
		for j := range a {
			if math.Float64bits(a[j]) != math.Float64bits(b[j]) {
				return false
			}
		}
	}

	return true
}

// String renders the header and rows for diagnostics.
func (t *Table) String() string {
	var b strings.Builder
	b.WriteString(strings.Join(t.names, "\t"))
	b.WriteByte('\n')
	for i := 0; i < t.NumRows(); i++ {
		for j, v := range t.data.RawRow(i) {
			if j > 0 {
				b.WriteByte('\t')
			}
			fmt.Fprintf(&b, "%g", v)
		}
		b.WriteByte('\n')
	}

	return b.String()
}
