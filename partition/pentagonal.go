package partition

import "math/big"

// fillPentagonal fills table[1..n] with Euler's recurrence over generalized
// pentagonal numbers g = k(3k−1)/2 and g' = k(3k+1)/2:
//
//	p(m) = Σ_{k≥1} s_k·[p(m−g) + p(m−g')],  s_k = +1 for odd k, −1 for even k.
//
// Only O(√m) terms are non-zero per target, so the fill costs O(n·√n)
// additions. table[0] must already be 1.
func fillPentagonal(table []*big.Int) {
	n := len(table) - 1
	for m := 1; m <= n; m++ {
		acc := table[m]
		for k := 1; ; k++ {
			g := k * (3*k - 1) / 2
			if g > m {
				break
			}
			add := k%2 == 1
			combine(acc, table[m-g], add)
			if g2 := g + k; g2 <= m { // k(3k+1)/2 = k(3k−1)/2 + k
				combine(acc, table[m-g2], add)
			}
		}
	}
}

// combine adds or subtracts x into acc.
func combine(acc, x *big.Int, add bool) {
	if add {
		acc.Add(acc, x)
	} else {
		acc.Sub(acc, x)
	}
}
