// Package codec implements the partition-sum encoding scheme built on top of
// package partition.
//
// 🚀 How it works
//
//	Every character c carries a partition number value(c) (by default
//	value(c) = p(int(c)) for printable ASCII). A password encodes to
//
//	  Z = Σ value(c) + C,        C = 426609638937 by default
//
//	Decoding recovers K = Z − C and searches for strings whose character
//	values sum to K. Addition forgets order and many strings share a sum, so
//	decoding yields candidates, not a unique plaintext. This is a toy scheme
//	and provides no confidentiality.
//
// ✨ Key features:
//   - LookupTable: default ASCII table, CSV loader (character,partition_value)
//   - Encoder with functional options (constant, length bounds)
//   - Two interchangeable search strategies behind the Strategy interface:
//     Backtracking (depth-first, bound pruning, O(len) memory) and
//     MeetInTheMiddle (half enumeration + join, O(c^⌈L/2⌉) memory)
//   - context-aware search with per-run Stats
//
// ⚙️ Usage:
//
//	enc, _ := codec.NewEncoder(codec.DefaultLookupTable())
//	z, _ := enc.Encode("hi")
//	res, _ := enc.Decode(ctx, z, codec.NewBacktracking())
//	fmt.Println(res.Solutions) // candidates that sum like "hi"
package codec
