package search

import (
	"fmt"
	"sort"
	"strings"
)

// Summary is a configuration-depth histogram: for each depth at which at
// least one new configuration was found, the number found there. Depths are
// gapless starting at 0.
type Summary struct {
	Counts map[int]uint64
}

// Total is the number of distinct configurations across all depths.
func (s Summary) Total() uint64 {
	var total uint64
	for _, c := range s.Counts {
		total += c
	}
	return total
}

// Depths returns the recorded depths in increasing order.
func (s Summary) Depths() []int {
	depths := make([]int, 0, len(s.Counts))
	for d := range s.Counts {
		depths = append(depths, d)
	}
	sort.Ints(depths)
	return depths
}

// String renders the histogram for console reporting, one line per depth
// with the share of the total.
func (s Summary) String() string {
	var b strings.Builder

	total := s.Total()
	fmt.Fprintf(&b, "There are %d total configurations.\n", total)

	for _, d := range s.Depths() {
		count := s.Counts[d]
		pct := float64(count) / float64(total) * 100
		fmt.Fprintf(&b, "\t%d moves: %d configurations (%0.3f %%)\n", d, count, pct)
	}

	return b.String()
}
