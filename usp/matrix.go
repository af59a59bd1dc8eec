// Package usp implements the USP-Weakness decision engine: the puzzle
// representation, the permutation search state, and the three solvers
// (brute force, DPLL-style, CDCL-style) that decide whether a
// Unique-Solvable Puzzle is weak or strong.
package usp

import "fmt"

// Matrix is a dense, row-major (rows x cols) container. It backs both the
// raw Usp symbol grid and the per-cell state of a Permutation.
type Matrix[T any] struct {
	data []T
	rows int
	cols int
}

// NewMatrix returns a rows x cols matrix with all elements set to the zero
// value of T.
func NewMatrix[T any](rows, cols int) *Matrix[T] {
	if rows < 0 || cols < 0 {
		panic(fmt.Sprintf("usp: invalid matrix shape (%d, %d)", rows, cols))
	}
	return &Matrix[T]{
		data: make([]T, rows*cols),
		rows: rows,
		cols: cols,
	}
}

// NewMatrixFrom returns a rows x cols matrix backed by data, which must
// already contain exactly rows*cols elements in row-major order.
func NewMatrixFrom[T any](rows, cols int, data []T) *Matrix[T] {
	if rows < 0 || cols < 0 {
		panic(fmt.Sprintf("usp: invalid matrix shape (%d, %d)", rows, cols))
	}
	if len(data) != rows*cols {
		panic(fmt.Sprintf("usp: matrix data has %d elements, want %d", len(data), rows*cols))
	}
	return &Matrix[T]{data: data, rows: rows, cols: cols}
}

// Rows returns the number of rows.
func (m *Matrix[T]) Rows() int { return m.rows }

// Cols returns the number of columns.
func (m *Matrix[T]) Cols() int { return m.cols }

func (m *Matrix[T]) index(row, col int) int {
	if row < 0 || row >= m.rows || col < 0 || col >= m.cols {
		panic(fmt.Sprintf("usp: index (%d, %d) out of range for %dx%d matrix", row, col, m.rows, m.cols))
	}
	return row*m.cols + col
}

// At returns the element at (row, col). It panics if either index is out of
// range, since out-of-bounds access indicates a programmer bug rather than
// a recoverable condition.
func (m *Matrix[T]) At(row, col int) T {
	return m.data[m.index(row, col)]
}

// Set writes v to (row, col). It panics if either index is out of range.
func (m *Matrix[T]) Set(row, col int, v T) {
	m.data[m.index(row, col)] = v
}
