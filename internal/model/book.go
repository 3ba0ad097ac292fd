package model

// Book is one catalog record as returned by the Aladin item APIs.
type Book struct {
	ItemID             int64   `json:"itemId,omitempty"`
	Title              string  `json:"title"`
	Author             string  `json:"author"`
	Description        string  `json:"description"`
	CategoryID         int     `json:"categoryId,omitempty"`
	CategoryName       string  `json:"categoryName,omitempty"`
	Cover              string  `json:"cover"`
	ISBN               string  `json:"isbn"`
	ISBN13             string  `json:"isbn13"`
	Publisher          string  `json:"publisher"`
	PubDate            string  `json:"pubDate"`
	Link               string  `json:"link"`
	PriceSales         int     `json:"priceSales,omitempty"`
	PriceStandard      int     `json:"priceStandard,omitempty"`
	CustomerReviewRank float64 `json:"customerReviewRank,omitempty"`
}

// PreferredISBN returns isbn13 when non-empty, else isbn.
func (b *Book) PreferredISBN() string {
	if b.ISBN13 != "" {
		return b.ISBN13
	}
	return b.ISBN
}

// CatalogResult is the catalog envelope passed through to API clients.
// On failure Error is set and Item is empty, never nil.
type CatalogResult struct {
	Title              string `json:"title,omitempty"`
	TotalResults       int    `json:"totalResults"`
	StartIndex         int    `json:"startIndex"`
	ItemsPerPage       int    `json:"itemsPerPage"`
	Query              string `json:"query,omitempty"`
	SearchCategoryID   int    `json:"searchCategoryId,omitempty"`
	SearchCategoryName string `json:"searchCategoryName,omitempty"`
	Item               []Book `json:"item"`
	Error              string `json:"error,omitempty"`
}

// FailedResult builds the degraded envelope for an upstream failure.
func FailedResult(err error) *CatalogResult {
	return &CatalogResult{Item: []Book{}, Error: err.Error()}
}
