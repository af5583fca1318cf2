package partition

import (
	"math/big"

	"golang.org/x/sync/errgroup"
)

// parallelGrain is the minimum number of targets in one outer step before the
// step is split across goroutines. Below it the spawn cost dominates.
const parallelGrain = 256

// fillCoinChangeParallel is fillCoinChange with the inner loop split by residue.
//
// For a fixed part size i the update table[j] += table[j-i] reads a cell of
// the same residue class mod i, written earlier in the same step when j ≥ 2i.
// Each class r ∈ [0, i) is therefore a sequential chain
//
//	i+r, 2i+r, 3i+r, …
//
// while distinct chains touch disjoint cells and run concurrently. Outer
// steps are separated by a Wait barrier: step i+1 reads the whole table
// produced by step i.
func fillCoinChangeParallel(table []*big.Int, workers int) {
	n := len(table) - 1
	for i := 1; i <= n; i++ {
		targets := n - i + 1
		chains := i
		if chains > targets {
			chains = targets
		}
		if targets < parallelGrain || chains < 2 {
			for j := i; j <= n; j++ {
				table[j].Add(table[j], table[j-i])
			}
			continue
		}

		w := workers
		if w > chains {
			w = chains
		}
		var g errgroup.Group
		g.SetLimit(w)
		for s := 0; s < w; s++ {
			s := s
			g.Go(func() error {
				for r := s; r < chains; r += w {
					for j := i + r; j <= n; j += i {
						table[j].Add(table[j], table[j-i])
					}
				}
				return nil
			})
		}
		_ = g.Wait() // workers never fail
	}
}
