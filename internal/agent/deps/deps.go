package deps

import (
	"context"

	"book-curator/backend/internal/catalog"
	"book-curator/backend/internal/model"
)

// Completer sends a prompt to a language model and returns its raw reply text.
type Completer interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// Catalog abstracts the book catalog. Methods never fail outright:
// upstream errors come back in CatalogResult.Error with an empty item list.
type Catalog interface {
	Search(ctx context.Context, p catalog.SearchParams) *model.CatalogResult
	Bestsellers(ctx context.Context, categoryID, maxResults int) *model.CatalogResult
	NewReleases(ctx context.Context, categoryID, maxResults int) *model.CatalogResult
	Lookup(ctx context.Context, itemID string) *model.CatalogResult
}
