package partition_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zeusvoltaire/invpart/partition"
)

// known holds reference values of p(n) (OEIS A000041).
var known = map[int]string{
	0:   "1",
	1:   "1",
	2:   "2",
	3:   "3",
	4:   "5",
	5:   "7",
	6:   "11",
	7:   "15",
	10:  "42",
	20:  "627",
	50:  "204226",
	100: "190569292",
	200: "3972999029388",
	500: "2300165032574323995027",
}

// TestCount_KnownValues checks Count against the reference table.
func TestCount_KnownValues(t *testing.T) {
	for n, want := range known {
		got, err := partition.Count(n)
		require.NoError(t, err, "n=%d", n)
		assert.Equal(t, want, got.String(), "p(%d)", n)
	}
}

// TestCount_ZeroIsValid verifies the empty partition: p(0) = 1.
func TestCount_ZeroIsValid(t *testing.T) {
	got, err := partition.Count(0)
	require.NoError(t, err)
	assert.Equal(t, int64(1), got.Int64())
}

// TestCount_Negative ensures negative n never reaches the table.
func TestCount_Negative(t *testing.T) {
	_, err := partition.Count(-1)
	assert.ErrorIs(t, err, partition.ErrInvalidInput)
}

// TestCount_Monotone verifies p(n) ≥ p(n−1) for n ≥ 1.
func TestCount_Monotone(t *testing.T) {
	table, err := partition.Table(300, partition.DefaultOptions())
	require.NoError(t, err)
	require.Len(t, table, 301)
	for n := 1; n < len(table); n++ {
		assert.GreaterOrEqual(t, table[n].Cmp(table[n-1]), 0, "p(%d) < p(%d)", n, n-1)
	}
}

// TestCount_Idempotent verifies repeated calls agree and do not share state.
func TestCount_Idempotent(t *testing.T) {
	first, err := partition.Count(60)
	require.NoError(t, err)
	first.SetInt64(-1) // mutating a result must not leak into the next call

	for i := 0; i < 3; i++ {
		got, err := partition.Count(60)
		require.NoError(t, err)
		assert.Equal(t, "966467", got.String())
	}
}

// TestTable_RowMatchesCount checks every cell of Table against Count.
func TestTable_RowMatchesCount(t *testing.T) {
	table, err := partition.Table(40, partition.DefaultOptions())
	require.NoError(t, err)
	for n, cell := range table {
		want, err := partition.Count(n)
		require.NoError(t, err)
		assert.Zero(t, want.Cmp(cell), "table[%d]", n)
	}
}

// TestTable_BruteForce cross-checks small n against direct enumeration of
// non-increasing part sequences.
func TestTable_BruteForce(t *testing.T) {
	var enumerate func(rest, maxPart int) int64
	enumerate = func(rest, maxPart int) int64 {
		if rest == 0 {
			return 1
		}
		var total int64
		for part := min(rest, maxPart); part >= 1; part-- {
			total += enumerate(rest-part, part)
		}
		return total
	}

	table, err := partition.Table(25, partition.DefaultOptions())
	require.NoError(t, err)
	for n := 0; n <= 25; n++ {
		assert.Equal(t, enumerate(n, n), table[n].Int64(), "p(%d)", n)
	}
}

// TestMethods_Agree checks CoinChange, parallel CoinChange and Pentagonal
// produce identical tables, including sizes above the parallel grain.
func TestMethods_Agree(t *testing.T) {
	const n = 700

	seq, err := partition.Table(n, partition.DefaultOptions())
	require.NoError(t, err)

	par := partition.DefaultOptions()
	par.Workers = 4
	parTable, err := partition.Table(n, par)
	require.NoError(t, err)

	pent := partition.DefaultOptions()
	pent.Method = partition.Pentagonal
	pentTable, err := partition.Table(n, pent)
	require.NoError(t, err)

	for k := 0; k <= n; k++ {
		assert.Zero(t, seq[k].Cmp(parTable[k]), "parallel p(%d)", k)
		assert.Zero(t, seq[k].Cmp(pentTable[k]), "pentagonal p(%d)", k)
	}
}

// TestCountWithOptions_MaxN verifies the configured upper bound.
func TestCountWithOptions_MaxN(t *testing.T) {
	opts := partition.DefaultOptions()
	opts.MaxN = 10

	got, err := partition.CountWithOptions(10, opts)
	require.NoError(t, err)
	assert.Equal(t, "42", got.String())

	_, err = partition.CountWithOptions(11, opts)
	assert.ErrorIs(t, err, partition.ErrTooLarge)
}

// TestCountWithOptions_BadOptions covers every rejected option combination.
func TestCountWithOptions_BadOptions(t *testing.T) {
	cases := []struct {
		name string
		opts partition.Options
	}{
		{"unknown method", partition.Options{Method: partition.Method(9)}},
		{"negative workers", partition.Options{Workers: -1}},
		{"negative max", partition.Options{MaxN: -5}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := partition.CountWithOptions(5, tc.opts)
			assert.ErrorIs(t, err, partition.ErrBadOptions)
		})
	}
}

// TestParseInput covers the numeral grammar accepted at the boundary.
func TestParseInput(t *testing.T) {
	valid := map[string]int{
		"0":   0,
		"5":   5,
		"007": 7,
		"100": 100,
	}
	for in, want := range valid {
		got, err := partition.ParseInput(in)
		require.NoError(t, err, "input %q", in)
		assert.Equal(t, want, got, "input %q", in)
	}

	invalid := []string{"", "-3", "-0", "+5", "abc", "5a", " 5", "5 ", "1.5", "٣",
		"99999999999999999999999999999"}
	for _, in := range invalid {
		_, err := partition.ParseInput(in)
		assert.ErrorIs(t, err, partition.ErrInvalidInput, "input %q", in)
	}
}

// TestCountString covers the end-to-end numeral → numeral path.
func TestCountString(t *testing.T) {
	got, err := partition.CountString("5", partition.DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, "7", got)

	got, err = partition.CountString("0", partition.DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, "1", got)

	_, err = partition.CountString("abc", partition.DefaultOptions())
	assert.ErrorIs(t, err, partition.ErrInvalidInput)
}

// TestCount_NoOverflow checks a value far beyond uint64 is exact.
func TestCount_NoOverflow(t *testing.T) {
	got, err := partition.Count(1000)
	require.NoError(t, err)
	want, ok := new(big.Int).SetString("24061467864032622473692149727991", 10)
	require.True(t, ok)
	assert.Zero(t, want.Cmp(got))
	assert.Greater(t, got.BitLen(), 64)
}

// TestMethod_StringRoundTrip checks names parse back to the same Method.
func TestMethod_StringRoundTrip(t *testing.T) {
	for _, m := range []partition.Method{partition.CoinChange, partition.Pentagonal} {
		got, err := partition.ParseMethod(m.String())
		require.NoError(t, err)
		assert.Equal(t, m, got)
	}

	_, err := partition.ParseMethod("bogus")
	assert.ErrorIs(t, err, partition.ErrBadOptions)
	assert.Equal(t, "Method(7)", partition.Method(7).String())
}
