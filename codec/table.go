package codec

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math/big"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/zeusvoltaire/invpart/partition"
)

// Printable ASCII range covered by DefaultLookupTable.
const (
	defaultFirstRune = ' '
	defaultLastRune  = '~'
)

// Entry is one character and its partition value.
type Entry struct {
	Char  rune
	Value *big.Int
}

// LookupTable maps characters to positive partition values.
// A LookupTable is immutable after construction and safe for concurrent use.
type LookupTable struct {
	entries []Entry // ascending by Value, then Char
	byChar  map[rune]*big.Int
}

// NewLookupTable copies m into a LookupTable.
//
// Errors:
//   - ErrEmptyTable — m has no entries.
//   - ErrBadValue   — a value is nil, zero or negative.
func NewLookupTable(m map[rune]*big.Int) (*LookupTable, error) {
	if len(m) == 0 {
		return nil, ErrEmptyTable
	}

	t := &LookupTable{
		entries: make([]Entry, 0, len(m)),
		byChar:  make(map[rune]*big.Int, len(m)),
	}
	for c, v := range m {
		if v == nil || v.Sign() <= 0 {
			return nil, fmt.Errorf("%w: character %q", ErrBadValue, c)
		}
		cp := new(big.Int).Set(v)
		t.byChar[c] = cp
		t.entries = append(t.entries, Entry{Char: c, Value: cp})
	}
	sort.Slice(t.entries, func(i, j int) bool {
		if cmp := t.entries[i].Value.Cmp(t.entries[j].Value); cmp != 0 {
			return cmp < 0
		}
		return t.entries[i].Char < t.entries[j].Char
	})

	return t, nil
}

// DefaultLookupTable maps every printable ASCII character c (U+0020..U+007E)
// to p(int(c)). p is strictly increasing there, so the mapping is injective.
func DefaultLookupTable() *LookupTable {
	row, err := partition.Table(defaultLastRune, partition.DefaultOptions())
	if err != nil {
		panic("codec: default table: " + err.Error()) // unreachable: fixed, valid n
	}

	m := make(map[rune]*big.Int, defaultLastRune-defaultFirstRune+1)
	for c := rune(defaultFirstRune); c <= defaultLastRune; c++ {
		m[c] = row[c]
	}
	t, err := NewLookupTable(m)
	if err != nil {
		panic("codec: default table: " + err.Error()) // unreachable: all values positive
	}

	return t
}

// LoadLookupTable reads a CSV table with a header row, one
// "character,partition_value" record per line. Blank lines are skipped; the
// first rune of the character field is the key. Characters that need quoting
// in CSV (',' and '"') must be quoted.
//
// Errors: ErrMalformedTable for unreadable rows, ErrEmptyTable when only a
// header is present, ErrBadValue for non-positive values.
func LoadLookupTable(r io.Reader) (*LookupTable, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	m := make(map[rune]*big.Int)
	headerSkipped := false
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformedTable, err)
		}
		if !headerSkipped {
			headerSkipped = true
			continue
		}
		line, _ := cr.FieldPos(0)
		if len(rec) != 2 || rec[0] == "" {
			return nil, fmt.Errorf("%w: line %d: want character,partition_value", ErrMalformedTable, line)
		}

		c, _ := utf8.DecodeRuneInString(rec[0])
		v, ok := new(big.Int).SetString(strings.TrimSpace(rec[1]), 10)
		if !ok {
			return nil, fmt.Errorf("%w: line %d: bad value %q", ErrMalformedTable, line, rec[1])
		}
		m[c] = v
	}

	return NewLookupTable(m)
}

// Value returns the partition value for c. The result must not be modified.
func (t *LookupTable) Value(c rune) (*big.Int, bool) {
	v, ok := t.byChar[c]
	return v, ok
}

// Len returns the number of characters in the table.
func (t *LookupTable) Len() int {
	return len(t.entries)
}

// Entries returns a copy of the entries, ascending by value then character.
func (t *LookupTable) Entries() []Entry {
	out := make([]Entry, len(t.entries))
	for i, e := range t.entries {
		out[i] = Entry{Char: e.Char, Value: new(big.Int).Set(e.Value)}
	}

	return out
}

// Bounds returns copies of the smallest and largest values in the table.
func (t *LookupTable) Bounds() (lo, hi *big.Int) {
	return new(big.Int).Set(t.entries[0].Value), new(big.Int).Set(t.entries[len(t.entries)-1].Value)
}
