package prompt

import "book-curator/backend/internal/model"

// Request is one of GeneralRequest, MoodRequest or ChatRequest.
type Request interface {
	Variant() model.Variant
}

// GeneralRequest asks for recommendations from interests and profile fields.
type GeneralRequest struct {
	Interests  string
	Mood       string
	Purpose    string
	Department string
	Category   string
}

// MoodRequest asks for recommendations matching how the reader feels.
type MoodRequest struct {
	Mood string
}

// ChatRequest is a free-form question.
type ChatRequest struct {
	Query string
}

func (GeneralRequest) Variant() model.Variant { return model.General }
func (MoodRequest) Variant() model.Variant    { return model.Mood }
func (ChatRequest) Variant() model.Variant    { return model.Chat }
