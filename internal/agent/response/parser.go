package response

import (
	"bytes"
	"errors"
	"fmt"

	"book-curator/backend/internal/model"

	"github.com/goccy/go-json"
)

var errNotObject = errors.New("reply is not a JSON object")

// Parse turns raw completion text into a Reply. callErr is the completion
// failure, if any; any failure yields the variant's Fallback reply.
//
// Only the top-level object shape is required. Top-level fields of the wrong
// type are ignored. Recommendation entries that are not objects are dropped;
// object entries are kept whatever their fields hold (see model.Item).
func Parse(variant model.Variant, raw string, callErr error) *Reply {
	if callErr != nil {
		return Fallback(variant, callErr)
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal([]byte(CandidateJSON(raw)), &fields); err != nil {
		return Fallback(variant, fmt.Errorf("parse reply: %w", err))
	}
	if fields == nil {
		return Fallback(variant, errNotObject)
	}

	reply := &Reply{Variant: variant, parsed: true}

	if rawRecs, ok := fields["recommendations"]; ok {
		reply.hasRecommendations = true
		reply.Recommendations = decodeItems(rawRecs)
	}

	decodeString(fields, "curator_comment", &reply.CuratorComment)
	decodeString(fields, "mood_analysis", &reply.MoodAnalysis)
	decodeString(fields, "encouragement", &reply.Encouragement)
	decodeString(fields, "answer", &reply.Answer)
	decodeString(fields, "error", &reply.Error)

	if rawFollowups, ok := fields["followup_questions"]; ok {
		var followups []string
		if err := json.Unmarshal(rawFollowups, &followups); err == nil {
			reply.FollowupQuestions = followups
		}
	}

	return reply
}

func decodeItems(raw json.RawMessage) []model.Item {
	var entries []json.RawMessage
	if err := json.Unmarshal(raw, &entries); err != nil {
		return []model.Item{}
	}

	items := make([]model.Item, 0, len(entries))
	for _, entry := range entries {
		if bytes.Equal(bytes.TrimSpace(entry), []byte("null")) {
			continue
		}
		var item model.Item
		if err := json.Unmarshal(entry, &item); err != nil {
			continue
		}
		items = append(items, item)
	}
	return items
}

func decodeString(fields map[string]json.RawMessage, key string, dst *string) {
	raw, ok := fields[key]
	if !ok {
		return
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		*dst = s
	}
}
