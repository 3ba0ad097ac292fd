package handler

import (
	"net/http"
	"strconv"

	"book-curator/backend/internal/agent/sanitize"
	"book-curator/backend/internal/catalog"

	"github.com/gin-gonic/gin"
)

const defaultListLimit = 10

// HandleSearch runs a catalog search: GET /api/search?query&type&limit
func (h *Handler) HandleSearch(c *gin.Context) {
	if !h.requireCatalog(c) {
		return
	}

	limit, ok := parseLimit(c)
	if !ok {
		return
	}

	query := sanitize.Input(c.Query("query"))
	if query == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": MsgQueryRequired})
		return
	}

	result := h.catalog.Search(c.Request.Context(), catalog.SearchParams{
		Query:      query,
		QueryType:  c.DefaultQuery("type", catalog.DefaultQueryType),
		MaxResults: limit,
	})
	c.PureJSON(http.StatusOK, result)
}

// HandleBestsellers lists bestsellers: GET /api/bestsellers?category&limit
func (h *Handler) HandleBestsellers(c *gin.Context) {
	if !h.requireCatalog(c) {
		return
	}

	limit, ok := parseLimit(c)
	if !ok {
		return
	}

	categoryID := catalog.CategoryID(sanitize.Input(c.DefaultQuery("category", catalog.AllCategories)))
	c.PureJSON(http.StatusOK, h.catalog.Bestsellers(c.Request.Context(), categoryID, limit))
}

// HandleNewReleases lists new releases: GET /api/new-releases?category&limit
func (h *Handler) HandleNewReleases(c *gin.Context) {
	if !h.requireCatalog(c) {
		return
	}

	limit, ok := parseLimit(c)
	if !ok {
		return
	}

	categoryID := catalog.CategoryID(sanitize.Input(c.DefaultQuery("category", catalog.AllCategories)))
	c.PureJSON(http.StatusOK, h.catalog.NewReleases(c.Request.Context(), categoryID, limit))
}

// HandleGetBook returns a single catalog record by ISBN13 or item ID.
func (h *Handler) HandleGetBook(c *gin.Context) {
	if !h.requireCatalog(c) {
		return
	}

	result := h.catalog.Lookup(c.Request.Context(), c.Param("id"))
	if len(result.Item) == 0 {
		msg := MsgBookNotFound
		if result.Error != "" {
			msg = result.Error
		}
		c.JSON(http.StatusNotFound, gin.H{"error": msg})
		return
	}

	c.PureJSON(http.StatusOK, result.Item[0])
}

// HandleCategories lists the category names in display order.
func (h *Handler) HandleCategories(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"categories": catalog.Categories()})
}

// parseLimit reads ?limit (default 10), writing a 400 when it is not an integer.
func parseLimit(c *gin.Context) (int, bool) {
	raw := c.Query("limit")
	if raw == "" {
		return defaultListLimit, true
	}
	limit, err := strconv.Atoi(raw)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": MsgInvalidLimit})
		return 0, false
	}
	return limit, true
}
