package ledger

import (
	"sort"
	"strings"
)

// SizeLedger maps a size name to the total quantity ordered for it.
type SizeLedger map[string]int

// Total is the sum over all sizes.
func (l SizeLedger) Total() int {
	total := 0
	for _, q := range l {
		total += q
	}
	return total
}

// Sizes returns the ledger's sizes in garment order.
func (l SizeLedger) Sizes() []string {
	sizes := make([]string, 0, len(l))
	for s := range l {
		sizes = append(sizes, s)
	}
	SortSizes(sizes)
	return sizes
}

var sizeRank = map[string]int{
	"XXS": 1, "XS": 2, "S": 3, "M": 4, "L": 5, "XL": 6,
	"XXL": 7, "2XL": 7, "XXXL": 8, "3XL": 8, "4XL": 9, "5XL": 10,
}

// SortSizes sorts known garment sizes from smallest to largest, then everything
// else (numeric or custom sizes) lexically after them.
func SortSizes(sizes []string) {
	sort.SliceStable(sizes, func(i, j int) bool {
		ri, rj := sizeRank[strings.ToUpper(sizes[i])], sizeRank[strings.ToUpper(sizes[j])]
		switch {
		case ri != 0 && rj != 0 && ri != rj:
			return ri < rj
		case ri != 0 && rj != 0:
			return sizes[i] < sizes[j]
		case ri != 0:
			return true
		case rj != 0:
			return false
		}
		return sizes[i] < sizes[j]
	})
}

func sortedKeys(m map[string]int) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	SortSizes(keys)
	return keys
}
