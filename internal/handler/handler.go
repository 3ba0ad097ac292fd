package handler

import (
	"context"
	"net/http"

	"book-curator/backend/internal/agent/deps"
	"book-curator/backend/internal/agent/prompt"
	"book-curator/backend/internal/agent/response"
	"book-curator/backend/internal/config"

	"github.com/gin-gonic/gin"
)

// User-facing error messages
const (
	MsgCatalogKeyMissing = "알라딘 API 키가 설정되지 않았습니다."
	MsgOpenAIKeyMissing  = "OpenAI API 키가 설정되지 않았습니다."
	MsgGeminiKeyMissing  = "Gemini API 키가 설정되지 않았습니다."
	MsgInvalidBody       = "잘못된 요청 형식입니다."
	MsgInvalidLimit      = "limit 값은 숫자여야 합니다."
	MsgQueryRequired     = "검색어를 입력해주세요."
	MsgInterestsRequired = "관심사 또는 학과를 입력해주세요."
	MsgMoodRequired      = "기분을 선택해주세요."
	MsgQuestionRequired  = "질문을 입력해주세요."
	MsgBookNotFound      = "도서를 찾을 수 없습니다."
)

// Curator produces recommendation replies.
type Curator interface {
	Recommend(ctx context.Context, req prompt.GeneralRequest) *response.Reply
	RecommendByMood(ctx context.Context, req prompt.MoodRequest) *response.Reply
	Answer(ctx context.Context, req prompt.ChatRequest) *response.Reply
}

// Options wires a Handler. A nil Catalog or Curator means that service is not
// configured; its routes answer 500 with the missing-key message.
type Options struct {
	Catalog  deps.Catalog
	Curator  Curator
	Provider string
}

// Handler serves the catalog and recommendation API.
type Handler struct {
	catalog         deps.Catalog
	curator         Curator
	curatorKeyError string
}

// New creates a Handler.
func New(opts Options) *Handler {
	keyErr := MsgOpenAIKeyMissing
	if opts.Provider == config.ProviderGemini {
		keyErr = MsgGeminiKeyMissing
	}
	return &Handler{
		catalog:         opts.Catalog,
		curator:         opts.Curator,
		curatorKeyError: keyErr,
	}
}

// RegisterRoutes mounts the API and probe routes on r.
func (h *Handler) RegisterRoutes(r gin.IRouter) {
	r.GET("/health", h.HandleHealth)
	r.GET("/ready", h.HandleReadiness)

	api := r.Group("/api")
	{
		api.GET("/search", h.HandleSearch)
		api.GET("/bestsellers", h.HandleBestsellers)
		api.GET("/new-releases", h.HandleNewReleases)
		api.GET("/books/:id", h.HandleGetBook)
		api.GET("/categories", h.HandleCategories)

		api.POST("/recommend", h.HandleRecommend)
		api.POST("/recommend/mood", h.HandleMoodRecommend)
		api.POST("/recommend/chat", h.HandleChatRecommend)
	}
}

// requireCatalog writes the missing-key error and reports false when no catalog is configured.
func (h *Handler) requireCatalog(c *gin.Context) bool {
	if h.catalog == nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": MsgCatalogKeyMissing})
		return false
	}
	return true
}

// requireCurator checks both upstreams a recommendation needs, catalog first.
func (h *Handler) requireCurator(c *gin.Context) bool {
	if !h.requireCatalog(c) {
		return false
	}
	if h.curator == nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": h.curatorKeyError})
		return false
	}
	return true
}
