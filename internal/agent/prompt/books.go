package prompt

import (
	"fmt"
	"strings"

	"book-curator/backend/internal/model"
)

const (
	// DescriptionLimit is the rune budget for a candidate description.
	DescriptionLimit = 200
	// NoBooksPlaceholder replaces the list when there are no candidates.
	NoBooksPlaceholder = "도서 목록이 없습니다."
)

// FormatBooks renders candidates as the numbered list embedded in prompts.
func FormatBooks(books []model.Book) string {
	if len(books) == 0 {
		return NoBooksPlaceholder
	}

	lines := make([]string, 0, len(books)*4)
	for i, book := range books {
		title := book.Title
		if title == "" {
			title = "제목 없음"
		}
		author := book.Author
		if author == "" {
			author = "저자 미상"
		}

		lines = append(lines, fmt.Sprintf("%d. 《%s》 - %s", i+1, title, author))
		if book.CategoryName != "" {
			lines = append(lines, "   분류: "+book.CategoryName)
		}
		if book.Description != "" {
			lines = append(lines, "   소개: "+truncateRunes(book.Description, DescriptionLimit)+"...")
		}
		lines = append(lines, "")
	}

	return strings.Join(lines, "\n")
}

// truncateRunes cuts s to at most maxLen runes
func truncateRunes(s string, maxLen int) string {
	runes := []rune(s)
	if len(runes) > maxLen {
		return string(runes[:maxLen])
	}
	return s
}
