package domain

// ContentType distinguishes movies from series.
type ContentType string

const (
	ContentTypeMovie  ContentType = "movie"
	ContentTypeSeries ContentType = "series"
)

func (t ContentType) String() string { return string(t) }

func (t ContentType) IsValid() bool {
	switch t {
	case ContentTypeMovie, ContentTypeSeries:
		return true
	}
	return false
}

// TMDBPath returns the catalog path segment for the type ("movie" or "tv").
func (t ContentType) TMDBPath() string {
	if t == ContentTypeSeries {
		return "tv"
	}
	return "movie"
}

// ListKind names a per-user content list.
type ListKind string

const (
	ListWatchlist ListKind = "watchlist"
	ListWatched   ListKind = "watched"
	ListSaved     ListKind = "saved"
)

func (k ListKind) String() string { return string(k) }

func (k ListKind) IsValid() bool {
	switch k {
	case ListWatchlist, ListWatched, ListSaved:
		return true
	}
	return false
}
