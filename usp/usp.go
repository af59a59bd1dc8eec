package usp

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

// Symbol is an element of the USP alphabet {1, 2, 3}.
type Symbol int

// Usp is a Unique-Solvable Puzzle: an n x k matrix over {1, 2, 3}. It is
// immutable after construction; the triple predicate Q is a pure function
// of its data, precomputed once at construction time.
type Usp struct {
	n, k int
	data *Matrix[Symbol]

	// q[a*n*n + b*n + c] holds Q(a, b, c).
	q []bool
}

// New builds a Usp from n*k symbols given in row-major order. It returns an
// error if the dimensions are non-positive or data has the wrong length, or
// if any symbol is outside {1, 2, 3}.
func New(data []Symbol, n, k int) (*Usp, error) {
	if n <= 0 || k <= 0 {
		return nil, fmt.Errorf("usp: dimensions must be positive, got n=%d k=%d", n, k)
	}
	if len(data) != n*k {
		return nil, fmt.Errorf("usp: data has %d symbols, want %d (n*k)", len(data), n*k)
	}
	for i, s := range data {
		if s < 1 || s > 3 {
			return nil, fmt.Errorf("usp: symbol at index %d is %d, want a value in {1,2,3}", i, s)
		}
	}

	u := &Usp{
		n:    n,
		k:    k,
		data: NewMatrixFrom(n, k, append([]Symbol(nil), data...)),
		q:    make([]bool, n*n*n),
	}
	u.computeQ()
	return u, nil
}

// computeQ fills Q(a,b,c) for every triple of rows: true iff some column e
// has exactly two of data[a,e]=1, data[b,e]=2, data[c,e]=3 hold.
func (u *Usp) computeQ() {
	n, k := u.n, u.k
	for a := 0; a < n; a++ {
		for b := 0; b < n; b++ {
			for c := 0; c < n; c++ {
				triple := false
				for e := 0; e < k; e++ {
					count := 0
					if u.data.At(a, e) == 1 {
						count++
					}
					if u.data.At(b, e) == 2 {
						count++
					}
					if u.data.At(c, e) == 3 {
						count++
					}
					if count == 2 {
						triple = true
						break
					}
				}
				u.q[a*n*n+b*n+c] = triple
				if logrus.IsLevelEnabled(logrus.TraceLevel) {
					logrus.WithFields(logrus.Fields{"a": a, "b": b, "c": c}).Tracef("Q(%d,%d,%d)=%v", a, b, c, triple)
				}
			}
		}
	}
}

// Rows returns n.
func (u *Usp) Rows() int { return u.n }

// Cols returns k.
func (u *Usp) Cols() int { return u.k }

// Query returns Q(a, b, c). It is O(1).
func (u *Usp) Query(a, b, c int) bool {
	return u.q[a*u.n*u.n+b*u.n+c]
}

// Symbol returns the raw puzzle symbol at (row, col).
func (u *Usp) Symbol(row, col int) Symbol {
	return u.data.At(row, col)
}
