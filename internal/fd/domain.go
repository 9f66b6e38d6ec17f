package fd

import "math/bits"

// domain is a bitset over the integer values a variable may still take.
// Operations mutate in place; the solver clones domains before branching.
type domain struct {
	words []uint64
	limit int // values lie in [0, limit]
}

func newDomain(lo, hi int) domain {
	d := domain{
		words: make([]uint64, hi/64+1),
		limit: hi,
	}
	for value := lo; value <= hi; value++ {
		d.words[value/64] |= 1 << (value % 64)
	}
	return d
}

func (d *domain) has(value int) bool {
	if value < 0 || value > d.limit {
		return false
	}
	return d.words[value/64]&(1<<(value%64)) != 0
}

func (d *domain) remove(value int) {
	if value < 0 || value > d.limit {
		return
	}
	d.words[value/64] &^= 1 << (value % 64)
}

func (d *domain) count() int {
	total := 0
	for _, word := range d.words {
		total += bits.OnesCount64(word)
	}
	return total
}

func (d *domain) empty() bool {
	for _, word := range d.words {
		if word != 0 {
			return false
		}
	}
	return true
}

func (d *domain) singleton() bool {
	seen := false
	for _, word := range d.words {
		count := bits.OnesCount64(word)
		if count > 1 || (count == 1 && seen) {
			return false
		}
		seen = seen || count == 1
	}
	return seen
}

// min returns the smallest remaining value, or -1 on an empty domain.
func (d *domain) min() int {
	for i, word := range d.words {
		if word != 0 {
			return i*64 + bits.TrailingZeros64(word)
		}
	}
	return -1
}

// max returns the largest remaining value, or -1 on an empty domain.
func (d *domain) max() int {
	for i := len(d.words) - 1; i >= 0; i-- {
		if d.words[i] != 0 {
			return i*64 + 63 - bits.LeadingZeros64(d.words[i])
		}
	}
	return -1
}

// removeBelow drops every value smaller than bound.
func (d *domain) removeBelow(bound int) {
	for value := d.min(); value >= 0 && value < bound; value = d.min() {
		d.remove(value)
	}
}

// removeAbove drops every value greater than bound.
func (d *domain) removeAbove(bound int) {
	for value := d.max(); value > bound; value = d.max() {
		d.remove(value)
	}
}

func (d *domain) assign(value int) {
	for i := range d.words {
		d.words[i] = 0
	}
	if value >= 0 && value <= d.limit {
		d.words[value/64] |= 1 << (value % 64)
	}
}

func (d *domain) clone() domain {
	words := make([]uint64, len(d.words))
	copy(words, d.words)
	return domain{words: words, limit: d.limit}
}

func (d *domain) values() []int {
	result := make([]int, 0, d.count())
	for value := 0; value <= d.limit; value++ {
		if d.has(value) {
			result = append(result, value)
		}
	}
	return result
}

func cloneDomains(domains []domain) []domain {
	result := make([]domain, len(domains))
	for i := range domains {
		result[i] = domains[i].clone()
	}
	return result
}
