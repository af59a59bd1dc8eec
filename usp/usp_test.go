package usp

import "testing"

func weak2x2(t *testing.T) *Usp {
	t.Helper()
	u, err := New([]Symbol{2, 2, 2, 3}, 2, 2)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return u
}

func strong2x2(t *testing.T) *Usp {
	t.Helper()
	u, err := New([]Symbol{1, 1, 2, 3}, 2, 2)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return u
}

func TestNewRejectsBadShape(t *testing.T) {
	cases := []struct {
		name string
		data []Symbol
		n, k int
	}{
		{"zero rows", nil, 0, 2},
		{"zero cols", nil, 2, 0},
		{"wrong length", []Symbol{1, 2, 3}, 2, 2},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if _, err := New(c.data, c.n, c.k); err == nil {
				t.Error("New returned nil error, want non-nil")
			}
		})
	}
}

func TestNewRejectsOutOfRangeSymbol(t *testing.T) {
	if _, err := New([]Symbol{1, 2, 4, 3}, 2, 2); err == nil {
		t.Error("New returned nil error for symbol 4, want non-nil")
	}
}

func TestQueryPoint(t *testing.T) {
	u := weak2x2(t)
	if got := u.Query(0, 0, 0); got != false {
		t.Errorf("Query(0,0,0) = %v, want false", got)
	}
	if got := u.Query(0, 0, 1); got != true {
		t.Errorf("Query(0,0,1) = %v, want true", got)
	}
}

func TestQueryDeterministic(t *testing.T) {
	u := weak2x2(t)
	for a := 0; a < u.Rows(); a++ {
		for b := 0; b < u.Rows(); b++ {
			for c := 0; c < u.Rows(); c++ {
				first := u.Query(a, b, c)
				second := u.Query(a, b, c)
				if first != second {
					t.Fatalf("Query(%d,%d,%d) not deterministic: %v then %v", a, b, c, first, second)
				}
			}
		}
	}
}

func TestSymbolRoundTrip(t *testing.T) {
	u := strong2x2(t)
	want := [][]Symbol{{1, 1}, {2, 3}}
	for r := 0; r < 2; r++ {
		for c := 0; c < 2; c++ {
			if got := u.Symbol(r, c); got != want[r][c] {
				t.Errorf("Symbol(%d,%d) = %d, want %d", r, c, got, want[r][c])
			}
		}
	}
}
