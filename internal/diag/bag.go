package diag

import (
	"cmp"
	"math"
	"slices"

	"fortio.org/safecast"
)

// Bag collects diagnostics up to a limit. It is not safe for concurrent use.
type Bag struct {
	items []Diagnostic
	max   uint16
}

// NewBag returns a bag holding at most limit diagnostics. Limits beyond
// 65535 are clamped.
func NewBag(limit int) *Bag {
	return &Bag{max: clampLimit(limit)}
}

func clampLimit(n int) uint16 {
	v, err := safecast.Conv[uint16](n)
	if err != nil {
		if n < 0 {
			return 0
		}
		return math.MaxUint16
	}
	return v
}

func (b *Bag) full() bool { return len(b.items) >= int(b.max) }

// Add appends d unless the bag is full, in which case it returns false.
func (b *Bag) Add(d Diagnostic) bool {
	if b.full() {
		return false
	}
	b.items = append(b.items, d)
	return true
}

// Force appends d even when the bag is full, raising the limit by one.
func (b *Bag) Force(d Diagnostic) {
	if b.full() {
		b.max = clampLimit(int(b.max) + 1)
	}
	b.items = append(b.items, d)
}

// Merge appends every diagnostic of other, growing the limit if needed.
func (b *Bag) Merge(other *Bag) {
	if other == nil || len(other.items) == 0 {
		return
	}
	b.items = append(b.items, other.items...)
	b.max = max(b.max, clampLimit(len(b.items)))
}

// Filter keeps the diagnostics for which keep returns true.
func (b *Bag) Filter(keep func(Diagnostic) bool) {
	b.items = slices.DeleteFunc(b.items, func(d Diagnostic) bool { return !keep(d) })
}

// Sort orders diagnostics by file and span, errors before warnings at the
// same span, then by code.
func (b *Bag) Sort() {
	slices.SortStableFunc(b.items, func(x, y Diagnostic) int {
		return cmp.Or(
			cmp.Compare(x.Primary.File, y.Primary.File),
			cmp.Compare(x.Primary.Start, y.Primary.Start),
			cmp.Compare(x.Primary.End, y.Primary.End),
			cmp.Compare(y.Severity, x.Severity),
			cmp.Compare(x.Code, y.Code),
		)
	})
}

// Dedup drops diagnostics that repeat an earlier one, keeping the first.
func (b *Bag) Dedup() {
	seen := make(map[dedupKey]struct{}, len(b.items))
	b.items = slices.DeleteFunc(b.items, func(d Diagnostic) bool {
		k := keyOf(d)
		if _, dup := seen[k]; dup {
			return true
		}
		seen[k] = struct{}{}
		return false
	})
}

// Count returns how many diagnostics have exactly severity sev.
func (b *Bag) Count(sev Severity) int {
	n := 0
	for _, d := range b.items {
		if d.Severity == sev {
			n++
		}
	}
	return n
}

func (b *Bag) atLeast(sev Severity) bool {
	return slices.ContainsFunc(b.items, func(d Diagnostic) bool { return d.Severity >= sev })
}

func (b *Bag) HasErrors() bool   { return b.atLeast(SevError) }
func (b *Bag) HasWarnings() bool { return b.atLeast(SevWarning) }

func (b *Bag) Len() int    { return len(b.items) }
func (b *Bag) Cap() uint16 { return b.max }

// Items returns the diagnostics. The slice aliases the bag.
func (b *Bag) Items() []Diagnostic { return b.items }
