package strmetric

// aggregatePairwise generalizes a natively-two-input kernel (pairFn) to n>=2
// inputs per spec §4.11/C11: for exactly two inputs it is a direct call; for
// three or more it evaluates every permutation of the inputs, chains pairFn
// across consecutive elements of each ordering, and returns the
// permutation-minimum (distance-kind) or permutation-maximum
// (similarity-kind) total. Counter-algebra kernels (C8) do not go through
// this path — they generalize to n inputs directly via Multiset
// intersect/union/sum.
func aggregatePairwise[T any](kind Kind, seqs []T, pairFn func(a, b T) (float64, error)) (float64, error) {
	if len(seqs) == 2 {
		return pairFn(seqs[0], seqs[1])
	}

	n := len(seqs)
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}

	var best float64
	haveBest := false
	var firstErr error

	permute(idx, func(order []int) {
		if firstErr != nil {
			return
		}
		total := 0.0
		for i := 0; i < len(order)-1; i++ {
			v, err := pairFn(seqs[order[i]], seqs[order[i+1]])
			if err != nil {
				firstErr = err
				return
			}
			total += v
		}
		if !haveBest {
			best, haveBest = total, true
			return
		}
		switch kind {
		case KindSimilarity:
			if total > best {
				best = total
			}
		default:
			if total < best {
				best = total
			}
		}
	})

	if firstErr != nil {
		return 0, firstErr
	}
	return best, nil
}

// permute invokes visit once per permutation of idx (Heap's algorithm),
// leaving idx restored to its original order on return.
func permute(idx []int, visit func([]int)) {
	n := len(idx)
	c := make([]int, n)
	orig := append([]int(nil), idx...)
	visit(idx)
	i := 0
	for i < n {
		if c[i] < i {
			if i%2 == 0 {
				idx[0], idx[i] = idx[i], idx[0]
			} else {
				idx[c[i]], idx[i] = idx[i], idx[c[i]]
			}
			visit(idx)
			c[i]++
			i = 0
		} else {
			c[i] = 0
			i++
		}
	}
	copy(idx, orig)
}
