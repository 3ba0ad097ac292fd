package response

import (
	"bytes"

	"book-curator/backend/internal/model"

	"github.com/goccy/go-json"
)

// Reply is the structured answer for one recommendation request.
// Which commentary fields are meaningful depends on Variant:
//
//	General: CuratorComment
//	Mood:    MoodAnalysis, Encouragement
//	Chat:    Answer, FollowupQuestions
type Reply struct {
	Variant         model.Variant
	Recommendations []model.Item

	CuratorComment    string
	MoodAnalysis      string
	Encouragement     string
	Answer            string
	FollowupQuestions []string

	// Error describes why the reply is degraded; empty on success.
	Error string

	parsed             bool
	hasRecommendations bool
}

// Parsed reports whether the reply was decoded from model output.
func (r *Reply) Parsed() bool {
	return r.parsed
}

// Commentary returns the variant's main free-text field.
func (r *Reply) Commentary() string {
	switch r.Variant {
	case model.Mood:
		return r.Encouragement
	case model.Chat:
		return r.Answer
	default:
		return r.CuratorComment
	}
}

type generalJSON struct {
	Recommendations []model.Item `json:"recommendations"`
	CuratorComment  string       `json:"curator_comment"`
	Error           string       `json:"error,omitempty"`
}

type moodJSON struct {
	MoodAnalysis    string       `json:"mood_analysis"`
	Recommendations []model.Item `json:"recommendations"`
	Encouragement   string       `json:"encouragement"`
	Error           string       `json:"error,omitempty"`
}

type chatJSON struct {
	Answer            string       `json:"answer"`
	Recommendations   []model.Item `json:"recommendations"`
	FollowupQuestions []string     `json:"followup_questions"`
	Error             string       `json:"error,omitempty"`
}

// MarshalJSON emits exactly the keys of the reply's variant.
func (r Reply) MarshalJSON() ([]byte, error) {
	recs := r.Recommendations
	if recs == nil {
		recs = []model.Item{}
	}

	switch r.Variant {
	case model.Mood:
		return marshalNoEscape(moodJSON{
			MoodAnalysis:    r.MoodAnalysis,
			Recommendations: recs,
			Encouragement:   r.Encouragement,
			Error:           r.Error,
		})
	case model.Chat:
		followups := r.FollowupQuestions
		if followups == nil {
			followups = []string{}
		}
		return marshalNoEscape(chatJSON{
			Answer:            r.Answer,
			Recommendations:   recs,
			FollowupQuestions: followups,
			Error:             r.Error,
		})
	default:
		return marshalNoEscape(generalJSON{
			Recommendations: recs,
			CuratorComment:  r.CuratorComment,
			Error:           r.Error,
		})
	}
}

// marshalNoEscape encodes v without HTML-escaping <, > and &.
func marshalNoEscape(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}
