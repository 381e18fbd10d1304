package catalog

import "github.com/heartmarshall/escolhe-pra-mim/internal/domain"

var movieGenres = []domain.Genre{
	{ID: 28, Name: "Ação"},
	{ID: 12, Name: "Aventura"},
	{ID: 16, Name: "Animação"},
	{ID: 35, Name: "Comédia"},
	{ID: 80, Name: "Crime"},
	{ID: 99, Name: "Documentário"},
	{ID: 18, Name: "Drama"},
	{ID: 10751, Name: "Família"},
	{ID: 14, Name: "Fantasia"},
	{ID: 36, Name: "História"},
	{ID: 27, Name: "Terror"},
	{ID: 10402, Name: "Música"},
	{ID: 9648, Name: "Mistério"},
	{ID: 10749, Name: "Romance"},
	{ID: 878, Name: "Ficção científica"},
	{ID: 10770, Name: "Cinema TV"},
	{ID: 53, Name: "Thriller"},
	{ID: 10752, Name: "Guerra"},
	{ID: 37, Name: "Faroeste"},
}

var seriesGenres = []domain.Genre{
	{ID: 10759, Name: "Action & Adventure"},
	{ID: 16, Name: "Animação"},
	{ID: 35, Name: "Comédia"},
	{ID: 80, Name: "Crime"},
	{ID: 99, Name: "Documentário"},
	{ID: 18, Name: "Drama"},
	{ID: 10751, Name: "Família"},
	{ID: 10762, Name: "Kids"},
	{ID: 9648, Name: "Mistério"},
	{ID: 10763, Name: "News"},
	{ID: 10764, Name: "Reality"},
	{ID: 10765, Name: "Sci-Fi & Fantasy"},
	{ID: 10766, Name: "Soap"},
	{ID: 10767, Name: "Talk"},
	{ID: 10768, Name: "War & Politics"},
	{ID: 37, Name: "Faroeste"},
}

// StaticGenres returns a copy of the built-in genre list for t.
func StaticGenres(t domain.ContentType) []domain.Genre {
	src := movieGenres
	if t == domain.ContentTypeSeries {
		src = seriesGenres
	}
	out := make([]domain.Genre, len(src))
	copy(out, src)
	return out
}

// VirtualGenre groups several real genres under one selectable entry.
type VirtualGenre struct {
	ID     int
	Name   string
	Movie  []int
	Series []int
}

// VirtualGenres carry negative IDs so they never collide with real ones.
var VirtualGenres = []VirtualGenre{
	{ID: -1, Name: "Ação & Aventura", Movie: []int{28, 12}, Series: []int{10759}},
	{ID: -2, Name: "Ficção & Fantasia", Movie: []int{878, 14}, Series: []int{10765}},
	{ID: -3, Name: "Suspense & Mistério", Movie: []int{53, 9648}, Series: []int{9648, 80}},
	{ID: -4, Name: "Guerra & Política", Movie: []int{10752, 36}, Series: []int{10768}},
	{ID: -5, Name: "Infantil & Família", Movie: []int{10751, 16}, Series: []int{10762, 10751, 16}},
}

func (v VirtualGenre) expand(t domain.ContentType) []int {
	if t == domain.ContentTypeSeries {
		return v.Series
	}
	return v.Movie
}

// VirtualGenreList returns the virtual genres that expand to something for t.
func VirtualGenreList(t domain.ContentType) []domain.Genre {
	out := make([]domain.Genre, 0, len(VirtualGenres))
	for _, v := range VirtualGenres {
		if len(v.expand(t)) > 0 {
			out = append(out, domain.Genre{ID: v.ID, Name: v.Name})
		}
	}
	return out
}

// ExpandGenres resolves virtual genre IDs into real ones. Non-negative IDs
// pass through, unknown negative IDs are dropped, and the result keeps
// first-seen order without duplicates.
func ExpandGenres(ids []int, t domain.ContentType) []int {
	seen := make(map[int]struct{}, len(ids))
	out := make([]int, 0, len(ids))
	add := func(id int) {
		if _, ok := seen[id]; ok {
			return
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}

	for _, id := range ids {
		if id >= 0 {
			add(id)
			continue
		}
		for _, v := range VirtualGenres {
			if v.ID == id {
				for _, g := range v.expand(t) {
					add(g)
				}
				break
			}
		}
	}
	return out
}

// GenreNames maps genre IDs (virtual ones expanded) to names from the
// static list for t. IDs without a name are skipped.
func GenreNames(ids []int, t domain.ContentType) []string {
	byID := make(map[int]string)
	for _, g := range StaticGenres(t) {
		byID[g.ID] = g.Name
	}

	expanded := ExpandGenres(ids, t)
	names := make([]string, 0, len(expanded))
	for _, id := range expanded {
		if n, ok := byID[id]; ok {
			names = append(names, n)
		}
	}
	return names
}
