package prompt

const fence = "```"

// Role framing per variant
const (
	generalRole = "당신은 동양미래대학교 도서관의 친절한 AI 사서입니다.\n" +
		"아래 도서 목록에서 사용자에게 적합한 책 3-5권을 추천해주세요."

	// %s: mood phrase
	moodRole = "당신은 동양미래대학교 도서관의 감성 AI 사서입니다.\n" +
		"%s 학생에게 어울리는 책을 추천해주세요."

	chatRole = "당신은 동양미래대학교 도서관의 AI 사서 '책누리'입니다.\n" +
		"학생의 질문에 친절하고 도움되게 답변하며, 관련 도서를 추천해주세요."
)

// Section headings
const (
	generalUserHeading  = "## 사용자 정보"
	generalBooksHeading = "## 추천 대상 도서 목록"
	moodUserHeading     = "## 학생의 현재 기분"
	moodBooksHeading    = "## 도서관 도서 목록"
	chatUserHeading     = "## 학생 질문"
	chatBooksHeading    = "## 도서관 보유 도서 목록"
	formatHeading       = "## 응답 형식 (반드시 이 JSON 형식으로만 응답)"
)

// Output schemas. Key names must match response.Reply encoding.
const (
	generalSchema = `{
    "recommendations": [
        {
            "title": "도서 제목",
            "author": "저자",
            "reason": "이 책을 추천하는 이유 (2-3문장)",
            "highlight": "핵심 포인트 한 줄"
        }
    ],
    "curator_comment": "전체적인 추천 코멘트 (친근하고 따뜻한 톤으로)"
}`

	moodSchema = `{
    "mood_analysis": "학생의 기분에 대한 공감과 이해 (따뜻한 톤으로)",
    "recommendations": [
        {
            "title": "도서 제목",
            "author": "저자",
            "reason": "이 기분일 때 이 책이 좋은 이유",
            "quote": "책에서 위로가 될 만한 구절이나 메시지 (있다면)"
        }
    ],
    "encouragement": "학생에게 전하는 따뜻한 응원 메시지"
}`

	chatSchema = `{
    "answer": "질문에 대한 답변 (친근하고 도움되는 톤으로)",
    "recommendations": [
        {
            "title": "도서 제목",
            "author": "저자",
            "reason": "이 책을 추천하는 이유"
        }
    ],
    "followup_questions": ["추가로 물어볼만한 질문 1", "질문 2"]
}`
)

// Closing directives
const (
	strictDirective = "중요: 반드시 위의 도서 목록에 있는 책만 추천하세요. JSON 형식으로만 응답하세요."
	listDirective   = "중요: 도서 목록에 있는 책만 추천하세요. JSON 형식으로만 응답하세요."
)

// User field labels for the general variant
const (
	labelInterests  = "관심사/키워드"
	labelDepartment = "학과/전공"
	labelMood       = "현재 기분"
	labelPurpose    = "독서 목적"
)
