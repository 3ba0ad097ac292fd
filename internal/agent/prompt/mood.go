package prompt

// moodPhrases describes the reader for each known mood.
var moodPhrases = map[string]string{
	"힐링":  "마음의 안정과 위로가 필요한",
	"설렘":  "새로운 도전과 영감이 필요한",
	"우울":  "기분 전환과 희망이 필요한",
	"호기심": "지적 탐구욕을 자극하는",
	"지침":  "가벼운 휴식이 필요한",
	"성장":  "자기 발전과 성장을 원하는",
}

// moodKeywords are the catalog search keywords for each known mood.
var moodKeywords = map[string]string{
	"힐링":  "에세이 위로",
	"설렘":  "도전 성공",
	"우울":  "희망 치유",
	"호기심": "과학 철학",
	"지침":  "여행 휴식",
	"성장":  "자기계발 성장",
}

// MoodPhrase returns the descriptive phrase for a mood, or the mood itself when unknown.
func MoodPhrase(mood string) string {
	if phrase, ok := moodPhrases[mood]; ok {
		return phrase
	}
	return mood
}

// MoodSearchKeyword returns the catalog search keyword for a mood, or the mood itself when unknown.
func MoodSearchKeyword(mood string) string {
	if keyword, ok := moodKeywords[mood]; ok {
		return keyword
	}
	return mood
}
