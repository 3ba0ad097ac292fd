package response

import (
	"testing"

	"book-curator/backend/internal/model"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func candidates() []model.Book {
	return []model.Book{
		{Title: "The Pragmatic Programmer", Cover: "pp.jpg", ISBN: "020161622X", ISBN13: "9780201616224", Publisher: "Addison-Wesley", PubDate: "1999-10-20", Link: "https://aladin.co.kr/pp"},
		{Title: "Pragmatic Thinking", Cover: "pt.jpg", ISBN: "1934356050", Publisher: "PragProg"},
	}
}

func TestEnrich(t *testing.T) {
	t.Run("first substring match wins", func(t *testing.T) {
		reply := Parse(model.General, `{"recommendations":[{"title":"Pragmatic","author":"a","reason":"r"}],"curator_comment":""}`, nil)

		matched := Enrich(reply, candidates())

		assert.Equal(t, 1, matched)
		item := reply.Recommendations[0]
		assert.Equal(t, "pp.jpg", item.Cover)
		assert.Equal(t, "9780201616224", item.ISBN)
		assert.Equal(t, "Addison-Wesley", item.Publisher)
		assert.Equal(t, "1999-10-20", item.PubDate)
		assert.Equal(t, "https://aladin.co.kr/pp", item.Link)
	})

	t.Run("isbn falls back to isbn10", func(t *testing.T) {
		reply := Parse(model.General, `{"recommendations":[{"title":"Thinking","author":"a","reason":"r"}]}`, nil)

		Enrich(reply, candidates())
		assert.Equal(t, "1934356050", reply.Recommendations[0].ISBN)
	})

	t.Run("matching is case sensitive", func(t *testing.T) {
		reply := Parse(model.General, `{"recommendations":[{"title":"pragmatic","author":"a","reason":"r"}]}`, nil)

		assert.Equal(t, 0, Enrich(reply, candidates()))
		assert.Empty(t, reply.Recommendations[0].Cover)
	})

	t.Run("mood and chat skip pubDate and link", func(t *testing.T) {
		for _, v := range []model.Variant{model.Mood, model.Chat} {
			reply := Parse(v, `{"recommendations":[{"title":"Pragmatic","author":"a","reason":"r"}]}`, nil)
			Enrich(reply, candidates())

			item := reply.Recommendations[0]
			assert.Equal(t, "pp.jpg", item.Cover, v.String())
			assert.Empty(t, item.PubDate, v.String())
			assert.Empty(t, item.Link, v.String())
		}
	})

	t.Run("unmatched and empty titles are left alone", func(t *testing.T) {
		reply := Parse(model.General, `{"recommendations":[{"title":"없는 책","author":"a","reason":"r"},{"title":"","author":"b","reason":"r"}]}`, nil)

		assert.Equal(t, 0, Enrich(reply, candidates()))
		require.Len(t, reply.Recommendations, 2)
		assert.Empty(t, reply.Recommendations[0].Cover)
		assert.Empty(t, reply.Recommendations[1].Cover)
	})

	t.Run("enrichment replaces a wrong-typed model value", func(t *testing.T) {
		reply := Parse(model.General, `{"recommendations":[{"title":"Pragmatic","author":"a","reason":"r","cover":false}]}`, nil)

		Enrich(reply, candidates())

		data, err := json.Marshal(reply.Recommendations[0])
		require.NoError(t, err)
		assert.Contains(t, string(data), `"cover":"pp.jpg"`)
		assert.NotContains(t, string(data), "false")
	})

	t.Run("unmatched item keeps unknown keys", func(t *testing.T) {
		reply := Parse(model.Mood, `{"recommendations":[{"title":"없는 책","author":"a","reason":"r","followup_hint":"h"}]}`, nil)

		Enrich(reply, candidates())

		data, err := json.Marshal(reply.Recommendations[0])
		require.NoError(t, err)
		assert.JSONEq(t, `{"title":"없는 책","author":"a","reason":"r","followup_hint":"h"}`, string(data))
	})

	t.Run("fallback replies are not enriched", func(t *testing.T) {
		reply := Fallback(model.General, nil)
		assert.Equal(t, 0, Enrich(reply, candidates()))
	})

	t.Run("reply without recommendations key is untouched", func(t *testing.T) {
		reply := Parse(model.Chat, `{"answer":"hi"}`, nil)

		assert.Equal(t, 0, Enrich(reply, candidates()))
		assert.Nil(t, reply.Recommendations)
	})

	t.Run("nil reply", func(t *testing.T) {
		assert.Equal(t, 0, Enrich(nil, candidates()))
	})
}
