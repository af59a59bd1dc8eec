package usp

import "fmt"

// VerifyUspWeakness reports whether (rho, sigma) witness U's weakness: true
// iff for every row i, Q(i, rho(i), sigma(i)) is false. It panics if either
// permutation has an unassigned row, since the verifier's precondition
// (fully assigned rho and sigma) is an internal invariant whose violation
// is a programmer error, not a recoverable condition.
func VerifyUspWeakness(u *Usp, rho, sigma *Permutation) bool {
	for i := 0; i < u.Rows(); i++ {
		r, ok := rho.Assignment(i)
		if !ok {
			panic(fmt.Sprintf("usp: VerifyUspWeakness precondition violated: rho row %d is unassigned", i))
		}
		s, ok := sigma.Assignment(i)
		if !ok {
			panic(fmt.Sprintf("usp: VerifyUspWeakness precondition violated: sigma row %d is unassigned", i))
		}
		if u.Query(i, r, s) {
			return false
		}
	}
	traceSolution("VerifyUspWeakness")
	return true
}
