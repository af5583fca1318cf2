// Package invpart counts integer partitions and ships the tools built on
// top of them: a read/print shell, a partition table printer and a
// partition-sum password codec.
//
// 🚀 What is invpart?
//
//	A small module around one number, p(n), the count of ways to write n
//	as an unordered sum of positive integers:
//		• partition: bottom-up p(n) with CoinChange and Pentagonal methods
//		• codec:     Z = Σ p(c) + C encoding and its search-based inverse
//		• cmd/invpart: "The inverse of partitions for 5 is 7"
//
// ✨ Why this layout?
//
//   - Exact arithmetic: every count is a *big.Int
//   - No state between calls: each Count builds and drops its own table
//   - Library packages never log and never panic on user input
//   - The command layer owns config (YAML + env), zap logging and
//     Prometheus metrics
//
// Packages:
//
//	partition/        — p(n), Table, strict numeral parsing
//	codec/            — lookup tables, Encoder, Backtracking and MeetInTheMiddle
//	log/              — zap-backed Logger
//	internal/config/  — defaults, YAML file, INVPART_* environment
//	internal/metrics/ — Collector with no-op and Prometheus backends
//	internal/cli/     — count, table, encode and decode commands
//	cmd/invpart/      — process entry point
//
// Quick example:
//
//	$ echo 5 | invpart
//	Enter the partition number: The inverse of partitions for 5 is 7
//
//	go install github.com/zeusvoltaire/invpart/cmd/invpart@latest
package invpart
