// Package provider holds the provider-neutral results returned by catalog
// adapters. Services depend on these shapes, not on any wire format.
package provider

// DiscoverPage is one page of a filtered catalog listing.
type DiscoverPage struct {
	Page         int
	TotalPages   int
	TotalResults int
	Items        []DiscoverItem
}

// DiscoverItem is a raw listing entry before enrichment. Movies fill Title
// and ReleaseDate; series fill Name and FirstAirDate.
type DiscoverItem struct {
	ID           int64
	Title        string
	Name         string
	Overview     string
	PosterPath   string
	BackdropPath string
	ReleaseDate  string
	FirstAirDate string
	VoteAverage  float64
	GenreIDs     []int
}

// Details carries the per-item fields discovery needs beyond the listing.
type Details struct {
	ID     int64
	Genres []string
}

// WatchProvider is a streaming service offering an item in a region.
type WatchProvider struct {
	ID       int
	Name     string
	Priority int
}
