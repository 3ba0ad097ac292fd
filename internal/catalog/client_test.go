package catalog

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const searchBody = `{
  "version": "20131101",
  "title": "알라딘 검색결과 - 과학",
  "totalResults": 2,
  "startIndex": 1,
  "itemsPerPage": 2,
  "query": "과학",
  "searchCategoryId": 0,
  "searchCategoryName": "",
  "item": [
    {"title": "코스모스", "author": "칼 세이건", "description": "우주에 대한 이야기", "isbn": "8983711892", "isbn13": "9788983711892", "itemId": 123, "cover": "https://image.aladin.co.kr/cosmos.jpg", "publisher": "사이언스북스", "pubDate": "2006-12-20", "link": "https://aladin.co.kr/cosmos", "categoryName": "국내도서>과학", "priceSales": 17910, "customerReviewRank": 10},
    {"title": "이기적 유전자", "author": "리처드 도킨스", "isbn13": "9788932473901", "cover": "https://image.aladin.co.kr/gene.jpg", "publisher": "을유문화사"}
  ]
}`

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	c, err := NewClient(Config{APIKey: "ttb-test", BaseURL: server.URL, Timeout: 2 * time.Second})
	require.NoError(t, err)
	return c
}

func TestNewClient(t *testing.T) {
	t.Run("requires api key", func(t *testing.T) {
		_, err := NewClient(Config{})
		assert.ErrorIs(t, err, ErrMissingAPIKey)
	})

	t.Run("applies defaults", func(t *testing.T) {
		c, err := NewClient(Config{APIKey: "k"})
		require.NoError(t, err)
		assert.Equal(t, DefaultBaseURL, c.baseURL)
		assert.Equal(t, defaultTimeout, c.httpClient.Timeout)
	})
}

func TestClient_Search(t *testing.T) {
	t.Run("sends aladin parameters and decodes items", func(t *testing.T) {
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/ItemSearch.aspx", r.URL.Path)
			q := r.URL.Query()
			assert.Equal(t, "ttb-test", q.Get("ttbkey"))
			assert.Equal(t, "과학", q.Get("Query"))
			assert.Equal(t, "Keyword", q.Get("QueryType"))
			assert.Equal(t, "20", q.Get("MaxResults"))
			assert.Equal(t, "1", q.Get("start"))
			assert.Equal(t, "987", q.Get("CategoryId"))
			assert.Equal(t, "Book", q.Get("SearchTarget"))
			assert.Equal(t, "js", q.Get("output"))
			assert.Equal(t, "20131101", q.Get("Version"))
			assert.Equal(t, "Big", q.Get("Cover"))
			w.Write([]byte(searchBody))
		})

		result := c.Search(context.Background(), SearchParams{Query: "과학", MaxResults: 20, CategoryID: 987})

		assert.Empty(t, result.Error)
		assert.Equal(t, 2, result.TotalResults)
		require.Len(t, result.Item, 2)
		assert.Equal(t, "코스모스", result.Item[0].Title)
		assert.Equal(t, "9788983711892", result.Item[0].ISBN13)
		assert.Equal(t, int64(123), result.Item[0].ItemID)
		assert.Equal(t, "국내도서>과학", result.Item[0].CategoryName)
	})

	t.Run("caps max results and omits zero category", func(t *testing.T) {
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			q := r.URL.Query()
			assert.Equal(t, "50", q.Get("MaxResults"))
			assert.Equal(t, "Title", q.Get("QueryType"))
			_, hasCategory := q["CategoryId"]
			assert.False(t, hasCategory)
			w.Write([]byte(`{"item": []}`))
		})

		result := c.Search(context.Background(), SearchParams{Query: "x", QueryType: "Title", MaxResults: 500})
		assert.Empty(t, result.Error)
		assert.NotNil(t, result.Item)
	})

	t.Run("server error degrades to empty result", func(t *testing.T) {
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		})

		result := c.Search(context.Background(), SearchParams{Query: "x"})
		assert.Contains(t, result.Error, "502")
		assert.NotNil(t, result.Item)
		assert.Empty(t, result.Item)
	})

	t.Run("aladin error envelope degrades to empty result", func(t *testing.T) {
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"errorCode": 1, "errorMessage": "잘못된 TTBKey 입니다."}`))
		})

		result := c.Search(context.Background(), SearchParams{Query: "x"})
		assert.Contains(t, result.Error, "잘못된 TTBKey")
		assert.Empty(t, result.Item)
	})

	t.Run("undecodable body degrades to empty result", func(t *testing.T) {
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`<html>maintenance</html>`))
		})

		result := c.Search(context.Background(), SearchParams{Query: "x"})
		assert.Contains(t, result.Error, "decode response")
		assert.Empty(t, result.Item)
	})

	t.Run("transport error does not leak the key", func(t *testing.T) {
		c, err := NewClient(Config{APIKey: "secret-key", BaseURL: "http://127.0.0.1:1", Timeout: time.Second})
		require.NoError(t, err)

		result := c.Search(context.Background(), SearchParams{Query: "x"})
		assert.NotEmpty(t, result.Error)
		assert.NotContains(t, result.Error, "secret-key")
	})
}

func TestClient_Lists(t *testing.T) {
	t.Run("bestsellers", func(t *testing.T) {
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/ItemList.aspx", r.URL.Path)
			assert.Equal(t, "Bestseller", r.URL.Query().Get("QueryType"))
			assert.Equal(t, "170", r.URL.Query().Get("CategoryId"))
			w.Write([]byte(searchBody))
		})

		result := c.Bestsellers(context.Background(), 170, 10)
		assert.Len(t, result.Item, 2)
	})

	t.Run("new releases", func(t *testing.T) {
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/ItemList.aspx", r.URL.Path)
			assert.Equal(t, "ItemNewAll", r.URL.Query().Get("QueryType"))
			assert.Empty(t, r.URL.Query().Get("CategoryId"))
			w.Write([]byte(searchBody))
		})

		result := c.NewReleases(context.Background(), 0, 10)
		assert.Len(t, result.Item, 2)
	})
}

func TestClient_Lookup(t *testing.T) {
	t.Run("isbn13", func(t *testing.T) {
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/ItemLookUp.aspx", r.URL.Path)
			assert.Equal(t, "ISBN13", r.URL.Query().Get("itemIdType"))
			assert.Equal(t, "9788983711892", r.URL.Query().Get("ItemId"))
			w.Write([]byte(searchBody))
		})

		result := c.Lookup(context.Background(), "9788983711892")
		assert.Empty(t, result.Error)
	})

	t.Run("item id", func(t *testing.T) {
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "ItemId", r.URL.Query().Get("itemIdType"))
			w.Write([]byte(searchBody))
		})

		c.Lookup(context.Background(), "123")
	})
}

func TestCategories(t *testing.T) {
	names := Categories()
	assert.Len(t, names, 16)
	assert.Equal(t, AllCategories, names[0])
	assert.Equal(t, "요리", names[len(names)-1])

	assert.Equal(t, 987, CategoryID("과학"))
	assert.Equal(t, 351, CategoryID("컴퓨터/IT"))
	assert.Equal(t, 0, CategoryID(AllCategories))
	assert.Equal(t, 0, CategoryID("없는 분류"))
}
