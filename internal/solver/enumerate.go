package solver

import "svw.info/twentyfour/internal/domain"

// --- candidate enumeration helpers used by FindAll/FindFirst ---

// permutations returns every index permutation of [0..n) in lexicographic
// order. Operands are distinguishable by slot, so a puzzle with repeated
// values still enumerates all n! orderings; duplicate renderings fall out
// at dedup time.
func permutations(n int) [][]int {
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	var out [][]int
	used := make([]bool, n)
	perm := make([]int, 0, n)
	var rec func()
	rec = func() {
		if len(perm) == n {
			out = append(out, append([]int(nil), perm...))
			return
		}
		for i := 0; i < n; i++ {
			if used[i] {
				continue
			}
			used[i] = true
			perm = append(perm, idx[i])
			rec()
			perm = perm[:len(perm)-1]
			used[i] = false
		}
	}
	rec()
	return out
}

// opTuple writes the i-th operator tuple into dst, counting in base
// len(allowed) with the most significant digit first. Deterministic, so
// repeated searches on the same spec visit candidates in the same order.
func opTuple(allowed []domain.Operator, i int, dst []domain.Operator) {
	for p := len(dst) - 1; p >= 0; p-- {
		dst[p] = allowed[i%len(allowed)]
		i /= len(allowed)
	}
}

func intPow(base, exp int) int {
	out := 1
	for ; exp > 0; exp-- {
		out *= base
	}
	return out
}
