// Package partition counts integer partitions: p(n), the number of ways to
// write n as a sum of positive integers when the order of the parts does not
// matter.
//
// 🚀 What is p(n)?
//
//	4 = 4 = 3+1 = 2+2 = 2+1+1 = 1+1+1+1   →   p(4) = 5
//
//	By convention p(0) = 1 (the empty sum). The sequence grows faster than
//	any polynomial (p(100) = 190569292, p(1000) has 32 digits), so every
//	result is a *big.Int and never overflows.
//
// ✨ Key features:
//   - bottom-up 1-D table, no recursion: O(n²) additions, O(n) cells
//   - CoinChange (default) and Pentagonal (Euler) methods that cross-check
//   - optional parallel fill over independent residue chains (Workers > 1)
//   - Table returns the whole row p(0..n) for lookup-table builders
//   - strict numeral parsing at the input boundary (ParseInput)
//
// ⚙️ Usage:
//
//	import "github.com/zeusvoltaire/invpart/partition"
//
//	n, err := partition.ParseInput("100")
//	if err != nil {
//	  // errors.Is(err, partition.ErrInvalidInput)
//	}
//	p, _ := partition.Count(n) // 190569292
//
//	opts := partition.DefaultOptions()
//	opts.Workers = 4
//	row, _ := partition.Table(500, opts) // row[k] == p(k)
//
// Performance:
//
//   - Time:   O(n²) big-integer additions
//   - Memory: O(n) cells of O(√n) bits each
package partition
