package response

import (
	"book-curator/backend/internal/model"
)

// Apology prefixes; the failure description follows.
const (
	recommendFailedPrefix = "추천을 생성하는 중 오류가 발생했습니다: "
	answerFailedPrefix    = "답변을 생성하는 중 오류가 발생했습니다: "
)

// No-candidate reply texts
const (
	NoCandidatesError   = "관련 도서를 찾을 수 없습니다."
	NoCandidatesComment = "죄송해요, 해당 키워드로 검색된 도서가 없습니다. 다른 키워드로 시도해보세요!"
)

// Fallback builds the degraded reply for a failed completion or unparseable output.
// It is a complete, valid reply shape.
func Fallback(variant model.Variant, err error) *Reply {
	msg := "unknown error"
	if err != nil {
		msg = err.Error()
	}

	reply := &Reply{
		Variant:         variant,
		Recommendations: []model.Item{},
		Error:           msg,
	}

	switch variant {
	case model.Mood:
		reply.Encouragement = recommendFailedPrefix + msg
	case model.Chat:
		reply.Answer = answerFailedPrefix + msg
		reply.FollowupQuestions = []string{}
	default:
		reply.CuratorComment = recommendFailedPrefix + msg
	}
	return reply
}

// NoCandidates is the general-variant reply when the catalog found nothing to offer.
func NoCandidates() *Reply {
	return &Reply{
		Variant:         model.General,
		Recommendations: []model.Item{},
		CuratorComment:  NoCandidatesComment,
		Error:           NoCandidatesError,
	}
}
