package response

import (
	"strings"

	"book-curator/backend/internal/model"
)

// Enrich copies catalog metadata onto each recommended item from the first
// candidate whose title contains the item's title (case-sensitive substring).
// Cover, ISBN and publisher are always copied; pubDate and link only for the
// general variant. Unmatched items are left as the model returned them.
//
// Only parsed replies that carried a "recommendations" key are touched.
// It returns the number of matched items.
func Enrich(reply *Reply, books []model.Book) int {
	if reply == nil || !reply.parsed || !reply.hasRecommendations {
		return 0
	}

	matched := 0
	for i := range reply.Recommendations {
		item := &reply.Recommendations[i]
		book := findByTitle(books, item.Title)
		if book == nil {
			continue
		}

		item.Cover = book.Cover
		item.ISBN = book.PreferredISBN()
		item.Publisher = book.Publisher
		if reply.Variant == model.General {
			item.PubDate = book.PubDate
			item.Link = book.Link
		}
		matched++
	}
	return matched
}

// findByTitle returns the first book whose title contains title.
// An empty title matches nothing.
func findByTitle(books []model.Book, title string) *model.Book {
	if title == "" {
		return nil
	}
	for i := range books {
		if strings.Contains(books[i].Title, title) {
			return &books[i]
		}
	}
	return nil
}
