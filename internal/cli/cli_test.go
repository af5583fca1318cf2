package cli_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zeusvoltaire/invpart/internal/cli"
	"github.com/zeusvoltaire/invpart/partition"
)

// run executes the command with stdin and returns exit code, stdout and stderr.
func run(t *testing.T, stdin string, args ...string) (int, string, string) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	code := cli.Run(context.Background(), args, strings.NewReader(stdin), &stdout, &stderr)

	return code, stdout.String(), stderr.String()
}

// writeFile creates name under a temp dir with content and returns its path.
func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestCount_FromStdin(t *testing.T) {
	cases := []struct {
		stdin string
		want  string
	}{
		{"5\n", "The inverse of partitions for 5 is 7\n"},
		{"0\n", "The inverse of partitions for 0 is 1\n"},
		{"10", "The inverse of partitions for 10 is 42\n"},
		{"  100 \r\n", "The inverse of partitions for 100 is 190569292\n"},
		{"007\n", "The inverse of partitions for 007 is 15\n"},
	}
	for _, tc := range cases {
		code, out, errOut := run(t, tc.stdin)
		assert.Equal(t, cli.ExitOK, code, "stdin %q", tc.stdin)
		assert.Equal(t, tc.want, out, "stdin %q", tc.stdin)
		assert.Contains(t, errOut, "Enter the partition number: ")
	}
}

func TestCount_FromArgument(t *testing.T) {
	code, out, errOut := run(t, "", "count", "4")
	assert.Equal(t, cli.ExitOK, code)
	assert.Equal(t, "The inverse of partitions for 4 is 5\n", out)
	assert.NotContains(t, errOut, "Enter the partition number")

	code, out, _ = run(t, "", "6")
	assert.Equal(t, cli.ExitOK, code, "count is the default command")
	assert.Equal(t, "The inverse of partitions for 6 is 11\n", out)
}

func TestCount_InvalidInput(t *testing.T) {
	for _, in := range []string{"-3\n", "abc\n", "+5\n", "1.5\n", "\n", "99999999999999999999999\n"} {
		code, out, errOut := run(t, in)
		assert.Equal(t, cli.ExitFailure, code, "stdin %q", in)
		assert.Empty(t, out, "stdin %q", in)
		assert.Contains(t, errOut, "invpart: partition: invalid input", "stdin %q", in)
	}
}

func TestCount_NoInput(t *testing.T) {
	code, out, _ := run(t, "")
	assert.Equal(t, cli.ExitUsage, code)
	assert.Empty(t, out)
}

func TestCount_Methods(t *testing.T) {
	want, err := partition.Count(300)
	require.NoError(t, err)
	line := "The inverse of partitions for 300 is " + want.String() + "\n"

	for _, args := range [][]string{
		{"-method", "pentagonal", "300"},
		{"-workers", "4", "300"},
		{"-method", "coin-change", "-workers", "1", "300"},
	} {
		code, out, _ := run(t, "", args...)
		assert.Equal(t, cli.ExitOK, code, "%v", args)
		assert.Equal(t, line, out, "%v", args)
	}
}

func TestCount_MaxN(t *testing.T) {
	code, out, errOut := run(t, "", "-max-n", "10", "11")
	assert.Equal(t, cli.ExitFailure, code)
	assert.Empty(t, out)
	assert.Contains(t, errOut, "exceeds limit")

	code, _, _ = run(t, "", "-max-n", "10", "10")
	assert.Equal(t, cli.ExitOK, code)
}

func TestRun_UsageErrors(t *testing.T) {
	cases := [][]string{
		{"-no-such-flag"},
		{"-log-level", "loud", "5"},
		{"-method", "guess", "5"},
		{"-config", "/does/not/exist.yaml", "5"},
		{"5", "6"},
		{"table"},
		{"decode"},
	}
	for _, args := range cases {
		code, out, _ := run(t, "", args...)
		assert.Equal(t, cli.ExitUsage, code, "%v", args)
		assert.Empty(t, out, "%v", args)
	}

	code, _, errOut := run(t, "", "-h")
	assert.Equal(t, cli.ExitOK, code)
	assert.Contains(t, errOut, "Commands:")
}

func TestRun_ConfigFile(t *testing.T) {
	path := writeFile(t, "invpart.yaml", "partition:\n  method: pentagonal\n  maxN: 20\n")

	code, out, _ := run(t, "", "-config", path, "20")
	assert.Equal(t, cli.ExitOK, code)
	assert.Equal(t, "The inverse of partitions for 20 is 627\n", out)

	code, _, _ = run(t, "", "-config", path, "21")
	assert.Equal(t, cli.ExitFailure, code, "maxN comes from the file")

	code, _, _ = run(t, "", "-config", path, "-max-n", "0", "21")
	assert.Equal(t, cli.ExitOK, code, "flags override the file")
}

func TestRun_MetricsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "invpart.prom")

	code, _, _ := run(t, "", "-metrics-file", path, "25")
	require.Equal(t, cli.ExitOK, code)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `invpart_partition_counts_total{method="coin-change"} 1`)
	assert.Contains(t, string(data), "invpart_partition_largest_n 25")

	code, _, _ = run(t, "abc\n", "-metrics-file", path)
	require.Equal(t, cli.ExitFailure, code)
	data, err = os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `invpart_invalid_inputs_total{reason="not_a_number"} 1`)
}

func TestTable(t *testing.T) {
	code, out, _ := run(t, "", "table", "5")
	assert.Equal(t, cli.ExitOK, code)
	assert.Equal(t, "0 1\n1 1\n2 2\n3 3\n4 5\n5 7\n", out)

	code, _, _ = run(t, "", "table", "x")
	assert.Equal(t, cli.ExitFailure, code)
}

// smallCSV maps a→1, b→2, c→3.
const smallCSV = "character,partition_value\na,1\nb,2\nc,3\n"

func TestEncode(t *testing.T) {
	table := writeFile(t, "table.csv", smallCSV)

	code, out, _ := run(t, "", "encode", "-lookup-table", table, "-constant", "10", "abc")
	assert.Equal(t, cli.ExitOK, code)
	assert.Equal(t, "16\n", out)

	code, out, _ = run(t, "cab\n", "encode", "-lookup-table", table, "-constant", "10")
	assert.Equal(t, cli.ExitOK, code)
	assert.Equal(t, "16\n", out)

	code, _, errOut := run(t, "", "encode", "-lookup-table", table, "abz")
	assert.Equal(t, cli.ExitFailure, code)
	assert.Contains(t, errOut, "character not in lookup table")

	code, _, _ = run(t, "", "encode", "-lookup-table", table, "-max-length", "2", "abc")
	assert.Equal(t, cli.ExitFailure, code)
}

func TestEncode_DefaultTable(t *testing.T) {
	code, out, _ := run(t, "", "encode", "-constant", "0", "A")
	assert.Equal(t, cli.ExitOK, code)
	assert.Equal(t, "2012558\n", out, "'A' is 65 and p(65) = 2012558")
}

func TestDecode(t *testing.T) {
	table := writeFile(t, "table.csv", smallCSV)
	want := []string{"aab", "aba", "ac", "baa", "bb", "ca"}

	for _, strategy := range []string{"backtracking", "mitm"} {
		code, out, _ := run(t, "", "decode",
			"-lookup-table", table, "-constant", "10", "-max-length", "3",
			"-strategy", strategy, "14")
		require.Equal(t, cli.ExitOK, code, strategy)

		got := strings.Fields(out)
		sort.Strings(got)
		assert.Equal(t, want, got, strategy)
	}

	code, out, _ := run(t, "", "decode",
		"-lookup-table", table, "-constant", "10", "-max-length", "3",
		"-max-solutions", "2", "14")
	assert.Equal(t, cli.ExitOK, code)
	assert.Len(t, strings.Fields(out), 2)
}

func TestDecode_Errors(t *testing.T) {
	table := writeFile(t, "table.csv", smallCSV)

	code, _, errOut := run(t, "", "decode", "-lookup-table", table, "-constant", "10", "9")
	assert.Equal(t, cli.ExitFailure, code)
	assert.Contains(t, errOut, "below the constant")

	code, _, _ = run(t, "", "decode", "-lookup-table", table, "nine")
	assert.Equal(t, cli.ExitFailure, code)

	code, _, _ = run(t, "", "decode", "-lookup-table", filepath.Join(t.TempDir(), "none.csv"), "20")
	assert.Equal(t, cli.ExitFailure, code)

	code, _, _ = run(t, "", "decode", "-strategy", "guess", "20")
	assert.Equal(t, cli.ExitUsage, code)
}
