package catalog

import (
	_ "embed"
	"fmt"
	"sync"

	json "github.com/goccy/go-json"

	"github.com/heartmarshall/escolhe-pra-mim/internal/domain"
)

//go:embed mock_catalog.json
var mockCatalogJSON []byte

var (
	mockOnce     sync.Once
	mockContents []domain.Content
	mockErr      error
)

// MockContents returns a copy of the bundled catalog. It backs discovery
// when no TMDB key is configured and seeds the contents table.
func MockContents() ([]domain.Content, error) {
	mockOnce.Do(func() {
		if err := json.Unmarshal(mockCatalogJSON, &mockContents); err != nil {
			mockErr = fmt.Errorf("catalog: decode mock catalog: %w", err)
		}
	})
	if mockErr != nil {
		return nil, mockErr
	}
	out := make([]domain.Content, len(mockContents))
	copy(out, mockContents)
	return out, nil
}
