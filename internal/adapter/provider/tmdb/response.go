package tmdb

type apiDiscoverResponse struct {
	Page         int              `json:"page"`
	TotalPages   int              `json:"total_pages"`
	TotalResults int              `json:"total_results"`
	Results      []apiDiscoverHit `json:"results"`
}

type apiDiscoverHit struct {
	ID           int64   `json:"id"`
	Title        string  `json:"title"`
	Name         string  `json:"name"`
	Overview     string  `json:"overview"`
	PosterPath   string  `json:"poster_path"`
	BackdropPath string  `json:"backdrop_path"`
	ReleaseDate  string  `json:"release_date"`
	FirstAirDate string  `json:"first_air_date"`
	VoteAverage  float64 `json:"vote_average"`
	GenreIDs     []int   `json:"genre_ids"`
}

type apiGenre struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type apiDetails struct {
	ID     int64      `json:"id"`
	Genres []apiGenre `json:"genres"`
}

type apiGenreList struct {
	Genres []apiGenre `json:"genres"`
}

type apiProvider struct {
	ProviderID      int    `json:"provider_id"`
	ProviderName    string `json:"provider_name"`
	DisplayPriority int    `json:"display_priority"`
}

type apiRegionOffers struct {
	Link     string        `json:"link"`
	Flatrate []apiProvider `json:"flatrate"`
}

type apiWatchProviders struct {
	ID      int64                      `json:"id"`
	Results map[string]apiRegionOffers `json:"results"`
}

type apiProviderList struct {
	Results []apiProvider `json:"results"`
}
