// Package frame defines the Table type: an ordered set of uniquely named
// numeric columns with aligned rows, backed by a matrix.Dense.
//
// Tables are immutable snapshots. Drop, Select, WithConstant and
// WithoutConstant never touch the receiver; they return a fresh Table whose
// remaining columns keep their values and row order. Earlier snapshots stay
// valid for as long as a caller holds them.
//
// Non-finite values (NaN, ±Inf) are stored as-is; deciding whether they are
// acceptable is left to the consumer (the scoring layer rejects them).
//
// Errors:
//
//	ErrNoColumns       - a table needs at least one column.
//	ErrNoRows          - a table needs at least one row.
//	ErrEmptyName       - a column name is the empty string.
//	ErrDuplicateColumn - two columns share a name.
//	ErrRaggedColumns   - columns (or rows) differ in length.
//	ErrUnknownColumn   - a referenced column does not exist.
package frame

import (
	"errors"

	"github.com/katalvlaran/vifprune/matrix"
)

// ConstName is the name of the intercept column added by WithConstant.
const ConstName = "const"

// Sentinel errors for table construction and lookups.
var (
	// ErrNoColumns indicates a table was requested without columns.
	ErrNoColumns = errors.New("frame: table has no columns")

	// ErrNoRows indicates a table was requested without rows.
	ErrNoRows = errors.New("frame: table has no rows")

	// ErrEmptyName indicates a column name is empty.
	ErrEmptyName = errors.New("frame: column name is empty")

	// ErrDuplicateColumn indicates two columns share a name.
	ErrDuplicateColumn = errors.New("frame: duplicate column name")

	// ErrRaggedColumns indicates columns (or rows) of different lengths.
	ErrRaggedColumns = errors.New("frame: ragged columns")

	// ErrUnknownColumn indicates a referenced column is not in the table.
	ErrUnknownColumn = errors.New("frame: unknown column")
)

// Table is an immutable, ordered collection of named numeric columns.
//
// The zero value is not usable; build tables with New, FromRows or FromDense.
type Table struct {
	names []string       // column order
	index map[string]int // name → column position
	data  *matrix.Dense  // rows × len(names), NaN/Inf policy off
}
