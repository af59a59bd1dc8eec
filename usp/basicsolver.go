package usp

// BasicSolver decides U's weakness by brute-force enumeration: it walks all
// pairs (rho, sigma) of permutations of {0, ..., n-1} via lexicographic
// next-permutation iteration on two length-n sequences, skipping the pair
// where both are the identity, and returns the first pair the Verifier
// accepts. Complexity is O((n!)^2 * n).
func BasicSolver(u *Usp) (rho, sigma *Permutation, ok bool) {
	n := u.Rows()

	a := identitySequence(n)
	for {
		b := identitySequence(n)
		for {
			if !isIdentitySequence(a) || !isIdentitySequence(b) {
				rhoP := permutationFromSequence(n, a)
				sigmaP := permutationFromSequence(n, b)
				if VerifyUspWeakness(u, rhoP, sigmaP) {
					return rhoP, sigmaP, true
				}
			}
			if !nextPermutation(b) {
				break
			}
		}
		if !nextPermutation(a) {
			break
		}
	}

	return nil, nil, false
}

func identitySequence(n int) []int {
	seq := make([]int, n)
	for i := range seq {
		seq[i] = i
	}
	return seq
}

func isIdentitySequence(seq []int) bool {
	for i, v := range seq {
		if v != i {
			return false
		}
	}
	return true
}

func permutationFromSequence(n int, seq []int) *Permutation {
	p := NewPermutation(n)
	for row, col := range seq {
		p.Assign(row, col, true, 0, nil)
	}
	return p
}

// nextPermutation rearranges seq into the lexicographically next
// permutation. It returns false and rearranges seq into the first
// (ascending) permutation if seq is already the lexicographically last one,
// mirroring the behavior of C++'s std::next_permutation.
func nextPermutation(seq []int) bool {
	n := len(seq)
	i := n - 2
	for i >= 0 && seq[i] >= seq[i+1] {
		i--
	}
	if i < 0 {
		reverseInts(seq)
		return false
	}

	j := n - 1
	for seq[j] <= seq[i] {
		j--
	}
	seq[i], seq[j] = seq[j], seq[i]
	reverseInts(seq[i+1:])
	return true
}

func reverseInts(seq []int) {
	for i, j := 0, len(seq)-1; i < j; i, j = i+1, j-1 {
		seq[i], seq[j] = seq[j], seq[i]
	}
}
