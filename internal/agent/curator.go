package agent

import (
	"context"
	"time"

	"book-curator/backend/internal/agent/deps"
	"book-curator/backend/internal/agent/prompt"
	"book-curator/backend/internal/agent/response"
	"book-curator/backend/internal/catalog"
	"book-curator/backend/internal/logging"
	"book-curator/backend/internal/metrics"
	"book-curator/backend/internal/model"
)

// Candidate list sizes
const (
	RecommendSearchSize = 20
	FallbackSearchSize  = 15
)

// departmentSuffix turns a department into a search query.
const departmentSuffix = " 전공"

// Curator runs one recommendation request end to end:
// catalog lookup, prompt, completion, reconcile, enrich.
type Curator struct {
	catalog   deps.Catalog
	completer deps.Completer
	builder   *prompt.Builder
}

// NewCurator creates a Curator over the given catalog and completer.
func NewCurator(catalog deps.Catalog, completer deps.Completer) *Curator {
	return &Curator{
		catalog:   catalog,
		completer: completer,
		builder:   prompt.NewBuilder(),
	}
}

// Recommend curates from a keyword search of the user's interests, or of their
// department when no interests were given.
func (c *Curator) Recommend(ctx context.Context, req prompt.GeneralRequest) *response.Reply {
	query := req.Interests
	if query == "" {
		query = req.Department + departmentSuffix
	}

	result := c.catalog.Search(ctx, catalog.SearchParams{
		Query:      query,
		MaxResults: RecommendSearchSize,
		CategoryID: catalog.CategoryID(req.Category),
	})
	if len(result.Item) == 0 {
		metrics.Replies.WithLabelValues(model.General.String(), "no_candidates").Inc()
		logging.Ctx(ctx).Info().
			Str("query", query).
			Str("catalog_error", result.Error).
			Msg("[CURATOR] No candidates found")
		return response.NoCandidates()
	}

	return c.curate(ctx, req, result.Item)
}

// RecommendByMood curates from the mood's search keyword, falling back to bestsellers.
func (c *Curator) RecommendByMood(ctx context.Context, req prompt.MoodRequest) *response.Reply {
	books := c.searchOrBestsellers(ctx, prompt.MoodSearchKeyword(req.Mood))
	return c.curate(ctx, req, books)
}

// Answer replies to a free-form question, grounded on a search of the question text.
func (c *Curator) Answer(ctx context.Context, req prompt.ChatRequest) *response.Reply {
	books := c.searchOrBestsellers(ctx, req.Query)
	return c.curate(ctx, req, books)
}

func (c *Curator) searchOrBestsellers(ctx context.Context, query string) []model.Book {
	result := c.catalog.Search(ctx, catalog.SearchParams{
		Query:      query,
		MaxResults: FallbackSearchSize,
	})
	if len(result.Item) > 0 {
		return result.Item
	}

	logging.Ctx(ctx).Debug().Str("query", query).Msg("[CURATOR] Search empty, using bestsellers")
	return c.catalog.Bestsellers(ctx, 0, FallbackSearchSize).Item
}

func (c *Curator) curate(ctx context.Context, req prompt.Request, books []model.Book) *response.Reply {
	variant := req.Variant().String()
	start := time.Now()

	raw, err := c.completer.Complete(ctx, c.builder.Compose(req, books))
	reply := response.Parse(req.Variant(), raw, err)

	if !reply.Parsed() {
		metrics.Replies.WithLabelValues(variant, "fallback").Inc()
		logging.Ctx(ctx).Warn().
			Str("variant", variant).
			Str("reason", reply.Error).
			Msg("[CURATOR] Falling back")
		return reply
	}
	metrics.Replies.WithLabelValues(variant, "parsed").Inc()

	matched := response.Enrich(reply, books)
	unmatched := len(reply.Recommendations) - matched
	metrics.EnrichedItems.WithLabelValues(variant, "matched").Add(float64(matched))
	metrics.EnrichedItems.WithLabelValues(variant, "unmatched").Add(float64(unmatched))

	logging.Ctx(ctx).Info().
		Str("variant", variant).
		Int("candidates", len(books)).
		Int("recommended", len(reply.Recommendations)).
		Int("enriched", matched).
		Dur("took", time.Since(start)).
		Msg("[CURATOR] Reply ready")
	return reply
}
