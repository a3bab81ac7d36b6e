package enum

// Stats holds per-set operation counters.
type Stats struct {
	Lookups        int `json:"lookups"`
	Creations      int `json:"creations"`
	Modifications  int `json:"modifications"`
	Serializations int `json:"serializations"`
}

// Stats returns a snapshot copy of the counters.
func (s *Set) Stats() Stats {
	return s.stats
}

// ResetStats zeroes all counters.
func (s *Set) ResetStats() {
	s.stats = Stats{}
}

// Optimize is an extension point: it performs no work beyond emitting an
// optimized event.
func (s *Set) Optimize() {
	s.Trigger(EventOptimized, nil)
}
