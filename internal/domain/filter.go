package domain

// FilterOptions is a discovery request. It is never persisted.
type FilterOptions struct {
	Type       ContentType
	Genres     []int
	Providers  []string
	ExcludeIDs []int64
}

// Excludes reports whether id is in the exclusion set.
func (f FilterOptions) Excludes(id int64) bool {
	for _, x := range f.ExcludeIDs {
		if x == id {
			return true
		}
	}
	return false
}
