// Package cache holds learned answers recorded during a single
// verification call. A Cache is allocated per call and never shared, so
// repeated verifications stay independent of each other.
package cache

// Cache is an ordered collection of recorded answer strings.
type Cache struct {
	entries []string
}

// New creates an empty cache.
func New() *Cache {
	return &Cache{}
}

// Record appends an answer. Empty answers are ignored.
func (c *Cache) Record(answer string) {
	if answer == "" {
		return
	}
	c.entries = append(c.entries, answer)
}

// Entries returns the recorded answers in insertion order. The returned
// slice is a copy; mutating it does not affect the cache.
func (c *Cache) Entries() []string {
	out := make([]string, len(c.entries))
	copy(out, c.entries)
	return out
}

// Len reports how many answers have been recorded.
func (c *Cache) Len() int {
	return len(c.entries)
}
