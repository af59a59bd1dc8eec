package usp

// uspUnitPropagation applies the USP-specific unit-propagation rule: for
// every row i where exactly one of rho(i), sigma(i) is known, every column
// j for which the triple predicate Q witnesses forbiddenness is ruled out
// in the other permutation.
func uspUnitPropagation(u *Usp, rho, sigma *Permutation, depth int) {
	n := u.Rows()
	for i := 0; i < n; i++ {
		r, rKnown := rho.Assignment(i)
		s, sKnown := sigma.Assignment(i)

		if rKnown && !sKnown {
			for j := 0; j < n; j++ {
				if u.Query(i, r, j) {
					sigma.Assign(i, j, false, depth, nil)
				}
			}
		}
		if sKnown && !rKnown {
			for j := 0; j < n; j++ {
				if u.Query(i, j, s) {
					rho.Assign(i, j, false, depth, nil)
				}
			}
		}
	}
}

// DpllSolver decides U's weakness via recursive backtracking with the USP
// unit-propagation rule above layered on top of plain uniqueness
// propagation. Row/column scans are ascending; rho is always branched on
// before sigma when both have a pending row.
func DpllSolver(u *Usp) (rho, sigma *Permutation, ok bool) {
	rho = NewPermutation(u.Rows())
	sigma = NewPermutation(u.Rows())
	if dpllSearch(u, rho, sigma, 0) {
		return rho, sigma, true
	}
	return nil, nil, false
}

func dpllSearch(u *Usp, rho, sigma *Permutation, depth int) bool {
	if rho.CheckContradiction() || sigma.CheckContradiction() {
		return false
	}
	if rho.CheckIdentity() && sigma.CheckIdentity() {
		return false
	}

	r, rPending := rho.NextAssignment()
	s, sPending := sigma.NextAssignment()
	if !rPending && !sPending {
		traceSolution("DpllSolver")
		return true
	}

	if rPending {
		for _, col := range rho.PossibleAssignments(r) {
			rho.AssignPropagate(r, col, true, depth)
			uspUnitPropagation(u, rho, sigma, depth)
			if dpllSearch(u, rho, sigma, depth+1) {
				return true
			}
			rho.UndoPropagation(depth)
			sigma.UndoPropagation(depth)
		}
		return false
	}

	for _, col := range sigma.PossibleAssignments(s) {
		sigma.AssignPropagate(s, col, false, depth)
		uspUnitPropagation(u, rho, sigma, depth)
		if dpllSearch(u, rho, sigma, depth+1) {
			return true
		}
		rho.UndoPropagation(depth)
		sigma.UndoPropagation(depth)
	}
	return false
}
