package prompt

import (
	"fmt"
	"strings"

	"book-curator/backend/internal/model"
)

// Builder constructs completion prompts
type Builder struct{}

// NewBuilder creates a new prompt builder
func NewBuilder() *Builder {
	return &Builder{}
}

// Compose renders the full instruction for a request and its candidate books.
// The output depends only on its inputs.
func (b *Builder) Compose(req Request, books []model.Book) string {
	switch r := req.(type) {
	case GeneralRequest:
		return b.composeGeneral(r, books)
	case *GeneralRequest:
		return b.composeGeneral(*r, books)
	case MoodRequest:
		return b.composeMood(r, books)
	case *MoodRequest:
		return b.composeMood(*r, books)
	case ChatRequest:
		return b.composeChat(r, books)
	case *ChatRequest:
		return b.composeChat(*r, books)
	default:
		return b.composeChat(ChatRequest{}, books)
	}
}

func (b *Builder) composeGeneral(r GeneralRequest, books []model.Book) string {
	var fields strings.Builder
	writeField(&fields, labelInterests, r.Interests)
	writeField(&fields, labelDepartment, r.Department)
	writeField(&fields, labelMood, r.Mood)
	writeField(&fields, labelPurpose, r.Purpose)

	return assemble(generalRole, generalUserHeading, fields.String(), generalBooksHeading, books, generalSchema, strictDirective)
}

func (b *Builder) composeMood(r MoodRequest, books []model.Book) string {
	role := fmt.Sprintf(moodRole, MoodPhrase(r.Mood))
	return assemble(role, moodUserHeading, r.Mood, moodBooksHeading, books, moodSchema, listDirective)
}

func (b *Builder) composeChat(r ChatRequest, books []model.Book) string {
	return assemble(chatRole, chatUserHeading, r.Query, chatBooksHeading, books, chatSchema, listDirective)
}

// writeField appends "- label: value" when value is non-empty
func writeField(sb *strings.Builder, label, value string) {
	if value == "" {
		return
	}
	if sb.Len() > 0 {
		sb.WriteString("\n")
	}
	sb.WriteString("- ")
	sb.WriteString(label)
	sb.WriteString(": ")
	sb.WriteString(value)
}

func assemble(role, userHeading, userBody, booksHeading string, books []model.Book, schema, directive string) string {
	var sb strings.Builder
	sb.WriteString(role)
	sb.WriteString("\n\n")
	sb.WriteString(userHeading)
	sb.WriteString("\n")
	sb.WriteString(userBody)
	sb.WriteString("\n\n")
	sb.WriteString(booksHeading)
	sb.WriteString("\n")
	sb.WriteString(FormatBooks(books))
	sb.WriteString("\n\n")
	sb.WriteString(formatHeading)
	sb.WriteString("\n")
	sb.WriteString(fence + "json\n")
	sb.WriteString(schema)
	sb.WriteString("\n" + fence + "\n\n")
	sb.WriteString(directive)
	sb.WriteString("\n")
	return sb.String()
}
