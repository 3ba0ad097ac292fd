package handler

import (
	"net/http"
	"time"

	"book-curator/backend/internal/agent/prompt"
	"book-curator/backend/internal/agent/sanitize"
	"book-curator/backend/internal/catalog"
	"book-curator/backend/internal/logging"

	"github.com/gin-gonic/gin"
)

// RecommendRequest is the body of POST /api/recommend.
type RecommendRequest struct {
	Interests  string `json:"interests"`
	Mood       string `json:"mood"`
	Purpose    string `json:"purpose"`
	Department string `json:"department"`
	Category   string `json:"category"`
}

// MoodRecommendRequest is the body of POST /api/recommend/mood.
type MoodRecommendRequest struct {
	Mood string `json:"mood"`
}

// ChatRecommendRequest is the body of POST /api/recommend/chat.
type ChatRecommendRequest struct {
	Query string `json:"query"`
}

// HandleRecommend curates from interests or department.
func (h *Handler) HandleRecommend(c *gin.Context) {
	if !h.requireCurator(c) {
		return
	}

	var body RecommendRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": MsgInvalidBody})
		return
	}

	req := prompt.GeneralRequest{
		Interests:  sanitize.Input(body.Interests),
		Mood:       sanitize.Input(body.Mood),
		Purpose:    sanitize.Input(body.Purpose),
		Department: sanitize.Input(body.Department),
		Category:   sanitize.Input(body.Category),
	}
	if req.Category == "" {
		req.Category = catalog.AllCategories
	}
	if req.Interests == "" && req.Department == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": MsgInterestsRequired})
		return
	}

	start := time.Now()
	reply := h.curator.Recommend(c.Request.Context(), req)
	logging.Ctx(c.Request.Context()).Info().
		Str("variant", "general").
		Dur("took", time.Since(start)).
		Msg("[PERF] Recommendation completed")

	c.PureJSON(http.StatusOK, reply)
}

// HandleMoodRecommend curates for a selected mood.
func (h *Handler) HandleMoodRecommend(c *gin.Context) {
	if !h.requireCurator(c) {
		return
	}

	var body MoodRecommendRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": MsgInvalidBody})
		return
	}

	mood := sanitize.Input(body.Mood)
	if mood == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": MsgMoodRequired})
		return
	}

	start := time.Now()
	reply := h.curator.RecommendByMood(c.Request.Context(), prompt.MoodRequest{Mood: mood})
	logging.Ctx(c.Request.Context()).Info().
		Str("variant", "mood").
		Dur("took", time.Since(start)).
		Msg("[PERF] Recommendation completed")

	c.PureJSON(http.StatusOK, reply)
}

// HandleChatRecommend answers a free-form question.
func (h *Handler) HandleChatRecommend(c *gin.Context) {
	if !h.requireCurator(c) {
		return
	}

	var body ChatRecommendRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": MsgInvalidBody})
		return
	}

	query := sanitize.Input(body.Query)
	if query == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": MsgQuestionRequired})
		return
	}

	start := time.Now()
	reply := h.curator.Answer(c.Request.Context(), prompt.ChatRequest{Query: query})
	logging.Ctx(c.Request.Context()).Info().
		Str("variant", "chat").
		Dur("took", time.Since(start)).
		Msg("[PERF] Recommendation completed")

	c.PureJSON(http.StatusOK, reply)
}
