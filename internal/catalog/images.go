package catalog

import "strings"

// Image sizes accepted by the TMDB image CDN.
const (
	SizeW92      = "w92"
	SizeW154     = "w154"
	SizeW185     = "w185"
	SizeW342     = "w342"
	SizeW500     = "w500"
	SizeW780     = "w780"
	SizeOriginal = "original"

	PosterSize   = SizeW342
	BackdropSize = SizeW500
)

var validSizes = map[string]struct{}{
	SizeW92: {}, SizeW154: {}, SizeW185: {}, SizeW342: {},
	SizeW500: {}, SizeW780: {}, SizeOriginal: {},
}

// ImageURL joins base, size and path. Unknown sizes fall back to w500.
// Returns nil for an empty path.
func ImageURL(base, size, path string) *string {
	if path == "" {
		return nil
	}
	if _, ok := validSizes[size]; !ok {
		size = SizeW500
	}
	u := strings.TrimRight(base, "/") + "/" + size + "/" + strings.TrimLeft(path, "/")
	return &u
}
