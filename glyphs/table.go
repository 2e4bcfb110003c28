package glyphs

import (
	"errors"
	"fmt"
	"unicode"

	"golang.org/x/text/unicode/rangetable"
	"golang.org/x/text/unicode/runenames"
)

// ErrInvalidRange is returned when a range has First > Last or lies outside
// the Unicode code space.
var ErrInvalidRange = errors.New("glyphs: invalid range")

// Range is an inclusive interval of code points.
type Range struct {
	First rune
	Last  rune
}

// Contains reports whether c lies within r, bounds included.
func (r Range) Contains(c rune) bool {
	return c >= r.First && c <= r.Last
}

// String returns the range in U+XXXX notation.
func (r Range) String() string {
	if r.First == r.Last {
		return fmt.Sprintf("U+%04X", r.First)
	}
	return fmt.Sprintf("U+%04X..U+%04X", r.First, r.Last)
}

func (r Range) valid() bool {
	return r.First >= 0 && r.First <= r.Last && r.Last <= unicode.MaxRune
}

// Set is a named group of ranges belonging to one icon collection.
type Set struct {
	Name   string
	Ranges []Range
}

// Contains reports whether any range of s contains c.
func (s Set) Contains(c rune) bool {
	for _, r := range s.Ranges {
		if r.Contains(c) {
			return true
		}
	}
	return false
}

// Table is an ordered, immutable collection of glyph sets.
// Accessors return copies; a Table is safe for concurrent use.
type Table struct {
	sets []Set
	flat []Range
	rt   *unicode.RangeTable
}

// NewTable builds a table from sets, in the given order.
// Every range must satisfy First <= Last.
func NewTable(sets ...Set) (*Table, error) {
	t := &Table{sets: make([]Set, 0, len(sets))}
	for _, s := range sets {
		for _, r := range s.Ranges {
			if !r.valid() {
				return nil, fmt.Errorf("%w: %s %s", ErrInvalidRange, s.Name, r)
			}
		}
		ranges := make([]Range, len(s.Ranges))
		copy(ranges, s.Ranges)
		t.sets = append(t.sets, Set{Name: s.Name, Ranges: ranges})
		t.flat = append(t.flat, ranges...)
	}
	t.rt = buildRangeTable(t.flat)
	return t, nil
}

// MustTable is like NewTable but panics on error.
// It is intended for package-level tables built from constants.
func MustTable(sets ...Set) *Table {
	t, err := NewTable(sets...)
	if err != nil {
		panic(err)
	}
	return t
}

// With returns a new table holding the sets of t followed by sets.
// t itself is not modified.
func (t *Table) With(sets ...Set) (*Table, error) {
	all := make([]Set, 0, len(t.sets)+len(sets))
	all = append(all, t.sets...)
	all = append(all, sets...)
	return NewTable(all...)
}

// Sets returns a copy of the glyph sets in table order.
func (t *Table) Sets() []Set {
	out := make([]Set, len(t.sets))
	for i, s := range t.sets {
		ranges := make([]Range, len(s.Ranges))
		copy(ranges, s.Ranges)
		out[i] = Set{Name: s.Name, Ranges: ranges}
	}
	return out
}

// Ranges returns the flattened ranges of every set, in set order then range
// order.
func (t *Table) Ranges() []Range {
	out := make([]Range, len(t.flat))
	copy(out, t.flat)
	return out
}

// Contains reports whether c falls within any range of the table.
func (t *Table) Contains(c rune) bool {
	for _, r := range t.flat {
		if r.Contains(c) {
			return true
		}
	}
	return false
}

// Lookup returns the first set containing c.
func (t *Table) Lookup(c rune) (Set, bool) {
	for _, s := range t.sets {
		if s.Contains(c) {
			return s, true
		}
	}
	return Set{}, false
}

// RangeTable returns the table's membership as a unicode.RangeTable,
// usable with unicode.Is. The result is shared and must not be modified.
func (t *Table) RangeTable() *unicode.RangeTable {
	return t.rt
}

// Len returns the number of distinct code points covered by the table.
func (t *Table) Len() int {
	n := 0
	for _, r := range t.rt.R16 {
		n += int(r.Hi-r.Lo)/int(r.Stride) + 1
	}
	for _, r := range t.rt.R32 {
		n += int(r.Hi-r.Lo)/int(r.Stride) + 1
	}
	return n
}

// buildRangeTable converts ranges into a merged unicode.RangeTable.
// Each range becomes its own single-entry table so rangetable.Merge can sort
// and coalesce them; ranges straddling U+FFFF are split between R16 and R32.
func buildRangeTable(ranges []Range) *unicode.RangeTable {
	tables := make([]*unicode.RangeTable, 0, len(ranges))
	for _, r := range ranges {
		rt := &unicode.RangeTable{}
		if r.First <= 0xFFFF {
			hi := min(r.Last, 0xFFFF)
			rt.R16 = append(rt.R16, unicode.Range16{Lo: uint16(r.First), Hi: uint16(hi), Stride: 1})
		}
		if r.Last > 0xFFFF {
			lo := max(r.First, 0x10000)
			rt.R32 = append(rt.R32, unicode.Range32{Lo: uint32(lo), Hi: uint32(r.Last), Stride: 1})
		}
		tables = append(tables, rt)
	}
	if len(tables) == 0 {
		return &unicode.RangeTable{}
	}
	return rangetable.Merge(tables...)
}

// Describe returns the Unicode character name of c, or an empty string when
// the character database has none. Glyphs in the private use areas report
// "<Private Use>" or the plane-specific variant.
func Describe(c rune) string {
	return runenames.Name(c)
}
