// Package catalog holds the static reference data for discovery: the
// streaming providers we filter on, the pt-BR genre lists, the virtual
// genres that expand into several real ones, and the bundled mock catalog
// used when no TMDB key is configured.
package catalog

import "github.com/heartmarshall/escolhe-pra-mim/internal/domain"

// Providers are the streaming services offered in the filter form, with
// their TMDB watch-provider IDs for the BR region.
var Providers = []domain.Provider{
	{ID: 8, Name: "Netflix"},
	{ID: 307, Name: "Globoplay"},
	{ID: 384, Name: "HBO Max"},
	{ID: 337, Name: "Disney+"},
	{ID: 119, Name: "Prime Video"},
	{ID: 350, Name: "Apple TV+"},
	{ID: 618, Name: "Mercado Play"},
}

var (
	providerByName = make(map[string]int, len(Providers))
	providerByID   = make(map[int]string, len(Providers))
)

func init() {
	for _, p := range Providers {
		providerByName[p.Name] = p.ID
		providerByID[p.ID] = p.Name
	}
}

// ProviderIDs maps provider names to IDs. Unknown names are skipped.
func ProviderIDs(names []string) []int {
	ids := make([]int, 0, len(names))
	for _, n := range names {
		if id, ok := providerByName[n]; ok {
			ids = append(ids, id)
		}
	}
	return ids
}

// ProviderName returns the name of a known provider ID.
func ProviderName(id int) (string, bool) {
	name, ok := providerByID[id]
	return name, ok
}

// IsKnownProvider reports whether name is one of Providers.
func IsKnownProvider(name string) bool {
	_, ok := providerByName[name]
	return ok
}
