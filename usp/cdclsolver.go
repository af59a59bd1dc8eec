package usp

// clauseStore holds the learned clauses accumulated during a single
// CdclSolver call. Clauses are deduplicated by their literal-set key so
// that re-deriving an existing clause is a no-op, matching spec.md's
// "Clause-learning monotonicity" property: the set only grows.
type clauseStore struct {
	byKey map[string]*SatClause
	order []*SatClause
}

func newClauseStore() *clauseStore {
	return &clauseStore{byKey: make(map[string]*SatClause)}
}

func (cs *clauseStore) insert(c *SatClause) {
	key := c.Key()
	if _, ok := cs.byKey[key]; ok {
		return
	}
	cs.byKey[key] = c
	cs.order = append(cs.order, c)
}

func (cs *clauseStore) len() int { return len(cs.order) }

// clauseUnitPropagation evaluates every learned clause not already marked
// SATISFIED by an earlier Evaluate call against the current assignment of rho
// and sigma, repeating until a fixed point (no clause transitions to UNIT in a
// full pass) or a clause is found CONFLICTING, in which case it returns true
// immediately. A clause's SATISFIED mark is not cleared when the search
// backtracks, so such a clause is skipped from then on.
func clauseUnitPropagation(rho, sigma *Permutation, store *clauseStore, depth int) (conflict bool) {
	changed := true
	for changed {
		changed = false
		for _, c := range store.order {
			if c.State() == Satisfied {
				continue
			}
			switch c.Evaluate(rho, sigma, depth) {
			case Conflicting:
				return true
			case Unit:
				changed = true
			}
		}
	}
	return false
}

// nodeID identifies an implication-graph node by permutation and position,
// independent of literal polarity.
type nodeID struct {
	pos Position
	rho bool
}

// conflictAnalysis traverses the implication graph backwards from the
// contradictory rows of rho and sigma at the given decision level,
// producing a clause over literals from outside the current level plus the
// current level's decision literal(s).
func conflictAnalysis(rho, sigma *Permutation, level int) *SatClause {
	queue := append([]SatVariable{}, rho.ContradictionAntecedents(level)...)
	queue = append(queue, sigma.ContradictionAntecedents(level)...)

	seen := make(map[nodeID]bool)
	learned := NewSatClause()

	for len(queue) > 0 {
		v := queue[0]
		queue = queue[1:]

		id := nodeID{pos: v.Pos, rho: v.Rho}
		if seen[id] {
			continue
		}
		seen[id] = true

		perm := sigma
		if v.Rho {
			perm = rho
		}

		if perm.NodeDecisionLevel(v.Pos) != level {
			learned.AddVariable(v)
			continue
		}

		antecedents := perm.Antecedents(v.Pos)
		if len(antecedents) == 0 {
			learned.AddVariable(v)
			continue
		}
		queue = append(queue, antecedents...)
	}

	return learned
}

// CdclSolver decides U's weakness via the same backtracking skeleton as
// DpllSolver, extended with clause learning: every conflict (a row/column
// contradiction or a CONFLICTING learned clause) found after a decision is
// analyzed into a clause before backtracking, and a non-empty clause not
// already in the store is added and immediately available to prune future
// branches via clauseUnitPropagation. Unlike DpllSolver, CDCL
// does not apply the USP-specific domain propagation rule directly -- its
// pruning power instead comes entirely from the clauses it learns, so the
// two solvers explore the search tree differently even though they agree
// on every puzzle's weak/strong verdict.
func CdclSolver(u *Usp) (rho, sigma *Permutation, ok bool) {
	rho = NewPermutation(u.Rows())
	sigma = NewPermutation(u.Rows())
	store := newClauseStore()
	if cdclSearch(rho, sigma, store, 0) {
		return rho, sigma, true
	}
	return nil, nil, false
}

func cdclSearch(rho, sigma *Permutation, store *clauseStore, depth int) bool {
	if rho.CheckContradiction() || sigma.CheckContradiction() {
		return false
	}
	if rho.CheckIdentity() && sigma.CheckIdentity() {
		return false
	}

	r, rPending := rho.NextAssignment()
	s, sPending := sigma.NextAssignment()
	if !rPending && !sPending {
		traceSolution("CdclSolver")
		return true
	}

	rhoTurn := rPending
	row := r
	if !rhoTurn {
		row = s
	}

	candidates := rho.PossibleAssignments(row)
	if !rhoTurn {
		candidates = sigma.PossibleAssignments(row)
	}

	for _, col := range candidates {
		if rhoTurn {
			rho.AssignPropagate(row, col, true, depth)
		} else {
			sigma.AssignPropagate(row, col, false, depth)
		}

		conflict := clauseUnitPropagation(rho, sigma, store, depth)
		if !conflict {
			conflict = rho.CheckContradiction() || sigma.CheckContradiction()
		}

		if conflict {
			learned := conflictAnalysis(rho, sigma, depth)
			if learned.Size() > 0 {
				store.insert(learned)
			}
			rho.UndoPropagation(depth)
			sigma.UndoPropagation(depth)
			continue
		}

		if cdclSearch(rho, sigma, store, depth+1) {
			return true
		}
		rho.UndoPropagation(depth)
		sigma.UndoPropagation(depth)
	}

	return false
}
