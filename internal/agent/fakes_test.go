package agent

import (
	"context"
	"sync"

	"book-curator/backend/internal/catalog"
	"book-curator/backend/internal/model"
)

type fakeCatalog struct {
	mu          sync.Mutex
	search      map[string][]model.Book
	bestsellers []model.Book
	searches    []catalog.SearchParams
	bestCalls   int
}

func (f *fakeCatalog) Search(_ context.Context, p catalog.SearchParams) *model.CatalogResult {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.searches = append(f.searches, p)
	items := f.search[p.Query]
	if items == nil {
		items = []model.Book{}
	}
	return &model.CatalogResult{Item: items}
}

func (f *fakeCatalog) Bestsellers(_ context.Context, _, _ int) *model.CatalogResult {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.bestCalls++
	items := f.bestsellers
	if items == nil {
		items = []model.Book{}
	}
	return &model.CatalogResult{Item: items}
}

func (f *fakeCatalog) NewReleases(_ context.Context, _, _ int) *model.CatalogResult {
	return &model.CatalogResult{Item: []model.Book{}}
}

func (f *fakeCatalog) Lookup(_ context.Context, _ string) *model.CatalogResult {
	return &model.CatalogResult{Item: []model.Book{}}
}

type fakeCompleter struct {
	reply   string
	err     error
	prompts []string
}

func (f *fakeCompleter) Complete(_ context.Context, prompt string) (string, error) {
	f.prompts = append(f.prompts, prompt)
	return f.reply, f.err
}
