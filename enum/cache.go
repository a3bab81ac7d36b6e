package enum

// The cache is a caller-managed scratch space scoped to the set: no
// eviction, no expiry, and no interaction with freeze state. Keys and
// values are entirely up to the embedding application.

// CacheGet retrieves a cached entry.
func (s *Set) CacheGet(key string) (any, bool) {
	return s.cache.Get(key)
}

// CacheSet stores a cached entry.
func (s *Set) CacheSet(key string, value any) {
	s.cache.Set(key, value)
}

// CacheHas reports whether an entry exists for key.
func (s *Set) CacheHas(key string) bool {
	return s.cache.Has(key)
}

// CacheDelete removes the entry for key, if any.
func (s *Set) CacheDelete(key string) {
	s.cache.Delete(key)
}

// CacheClear removes all cached entries.
func (s *Set) CacheClear() {
	s.cache.Flush()
}
