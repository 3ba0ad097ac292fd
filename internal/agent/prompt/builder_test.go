package prompt

import (
	"strings"
	"testing"
	"unicode/utf8"

	"book-curator/backend/internal/model"

	"github.com/stretchr/testify/assert"
)

func sampleBooks() []model.Book {
	return []model.Book{
		{Title: "코스모스", Author: "칼 세이건", CategoryName: "국내도서>과학", Description: "우주에 대한 이야기"},
		{Title: "이기적 유전자", Author: "리처드 도킨스"},
	}
}

func TestFormatBooks(t *testing.T) {
	t.Run("empty list uses placeholder", func(t *testing.T) {
		assert.Equal(t, NoBooksPlaceholder, FormatBooks(nil))
		assert.Equal(t, NoBooksPlaceholder, FormatBooks([]model.Book{}))
	})

	t.Run("numbered entries with optional lines", func(t *testing.T) {
		got := FormatBooks(sampleBooks())
		want := "1. 《코스모스》 - 칼 세이건\n" +
			"   분류: 국내도서>과학\n" +
			"   소개: 우주에 대한 이야기...\n" +
			"\n" +
			"2. 《이기적 유전자》 - 리처드 도킨스\n"
		assert.Equal(t, want, got)
	})

	t.Run("defaults for missing title and author", func(t *testing.T) {
		got := FormatBooks([]model.Book{{}})
		assert.Equal(t, "1. 《제목 없음》 - 저자 미상\n", got)
	})

	t.Run("description truncated to 200 runes", func(t *testing.T) {
		long := strings.Repeat("가", 250)
		got := FormatBooks([]model.Book{{Title: "t", Author: "a", Description: long}})

		var descLine string
		for _, line := range strings.Split(got, "\n") {
			if strings.HasPrefix(line, "   소개: ") {
				descLine = line
			}
		}
		body := strings.TrimSuffix(strings.TrimPrefix(descLine, "   소개: "), "...")
		assert.Equal(t, DescriptionLimit, utf8.RuneCountInString(body))
		assert.Equal(t, strings.Repeat("가", DescriptionLimit), body)
	})

	t.Run("description at the limit is kept whole", func(t *testing.T) {
		exact := strings.Repeat("a", DescriptionLimit)
		got := FormatBooks([]model.Book{{Title: "t", Author: "a", Description: exact}})
		assert.Contains(t, got, "   소개: "+exact+"...\n")
	})
}

func TestBuilder_Compose(t *testing.T) {
	b := NewBuilder()

	t.Run("general includes only non-empty fields", func(t *testing.T) {
		got := b.Compose(GeneralRequest{Interests: "인공지능", Purpose: "과제"}, sampleBooks())

		assert.True(t, strings.HasPrefix(got, generalRole))
		assert.Contains(t, got, "- 관심사/키워드: 인공지능\n- 독서 목적: 과제\n")
		assert.NotContains(t, got, labelDepartment)
		assert.NotContains(t, got, labelMood)
		assert.Contains(t, got, "1. 《코스모스》 - 칼 세이건")
		assert.Contains(t, got, `"curator_comment"`)
		assert.Contains(t, got, `"highlight"`)
		assert.Contains(t, got, "```json\n{")
		assert.Contains(t, got, strictDirective)
	})

	t.Run("general with department only", func(t *testing.T) {
		got := b.Compose(GeneralRequest{Department: "컴퓨터공학과"}, nil)

		assert.Contains(t, got, generalUserHeading+"\n- 학과/전공: 컴퓨터공학과\n")
		assert.NotContains(t, got, labelInterests)
		assert.Contains(t, got, NoBooksPlaceholder)
	})

	t.Run("mood uses phrase table", func(t *testing.T) {
		got := b.Compose(MoodRequest{Mood: "힐링"}, sampleBooks())

		assert.Contains(t, got, "마음의 안정과 위로가 필요한 학생에게 어울리는 책을 추천해주세요.")
		assert.Contains(t, got, moodUserHeading+"\n힐링\n")
		assert.Contains(t, got, `"mood_analysis"`)
		assert.Contains(t, got, `"encouragement"`)
		assert.Contains(t, got, `"quote"`)
		assert.Contains(t, got, listDirective)
	})

	t.Run("mood falls back to raw mood", func(t *testing.T) {
		got := b.Compose(MoodRequest{Mood: "지루함"}, nil)
		assert.Contains(t, got, "지루함 학생에게 어울리는 책을 추천해주세요.")
	})

	t.Run("chat", func(t *testing.T) {
		got := b.Compose(ChatRequest{Query: "우주에 관한 책 있어?"}, sampleBooks())

		assert.True(t, strings.HasPrefix(got, chatRole))
		assert.Contains(t, got, chatUserHeading+"\n우주에 관한 책 있어?\n")
		assert.Contains(t, got, `"answer"`)
		assert.Contains(t, got, `"followup_questions"`)
	})

	t.Run("pointer requests compose the same", func(t *testing.T) {
		req := ChatRequest{Query: "q"}
		assert.Equal(t, b.Compose(req, nil), b.Compose(&req, nil))
	})

	t.Run("idempotent", func(t *testing.T) {
		req := GeneralRequest{Interests: "역사", Mood: "설렘", Purpose: "교양", Department: "경영학과"}
		first := b.Compose(req, sampleBooks())
		second := b.Compose(req, sampleBooks())
		assert.Equal(t, first, second)
	})
}

func TestMoodPhrase(t *testing.T) {
	assert.Equal(t, "마음의 안정과 위로가 필요한", MoodPhrase("힐링"))
	assert.Equal(t, "지적 탐구욕을 자극하는", MoodPhrase("호기심"))
	assert.Equal(t, "지루함", MoodPhrase("지루함"))
}

func TestMoodSearchKeyword(t *testing.T) {
	assert.Equal(t, "에세이 위로", MoodSearchKeyword("힐링"))
	assert.Equal(t, "자기계발 성장", MoodSearchKeyword("성장"))
	assert.Equal(t, "지루함", MoodSearchKeyword("지루함"))
}
