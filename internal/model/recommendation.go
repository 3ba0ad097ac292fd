package model

import (
	"bytes"
	"errors"
	"sort"

	"github.com/goccy/go-json"
)

// Variant tags which recommendation flow produced a request or reply.
type Variant int

const (
	General Variant = iota
	Mood
	Chat
)

func (v Variant) String() string {
	switch v {
	case General:
		return "general"
	case Mood:
		return "mood"
	case Chat:
		return "chat"
	default:
		return "unknown"
	}
}

// Item is one recommended book. The catalog fields are filled in by
// enrichment and stay empty when no candidate matched.
//
// Decoding is lenient: a known field of the wrong type is kept verbatim in
// Extra instead of failing the item, and unknown keys are kept in Extra.
// Encoding writes Extra back, so unmatched items round-trip as the model
// returned them.
type Item struct {
	Title     string `json:"title"`
	Author    string `json:"author"`
	Reason    string `json:"reason"`
	Highlight string `json:"highlight,omitempty"`
	Quote     string `json:"quote,omitempty"`

	Cover     string `json:"cover,omitempty"`
	ISBN      string `json:"isbn,omitempty"`
	Publisher string `json:"publisher,omitempty"`
	PubDate   string `json:"pubDate,omitempty"`
	Link      string `json:"link,omitempty"`

	Extra map[string]json.RawMessage `json:"-"`
}

type itemField struct {
	key       string
	value     *string
	omitEmpty bool
}

func (it *Item) fields() []itemField {
	return []itemField{
		{"title", &it.Title, false},
		{"author", &it.Author, false},
		{"reason", &it.Reason, false},
		{"highlight", &it.Highlight, true},
		{"quote", &it.Quote, true},
		{"cover", &it.Cover, true},
		{"isbn", &it.ISBN, true},
		{"publisher", &it.Publisher, true},
		{"pubDate", &it.PubDate, true},
		{"link", &it.Link, true},
	}
}

var errItemNotObject = errors.New("recommendation entry is not a JSON object")

// UnmarshalJSON decodes any JSON object; only non-objects are rejected.
func (it *Item) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if raw == nil {
		return errItemNotObject
	}

	*it = Item{}
	known := make(map[string]bool)
	for _, f := range it.fields() {
		known[f.key] = true
		value, ok := raw[f.key]
		if !ok {
			continue
		}
		if isNull(value) || json.Unmarshal(value, f.value) != nil {
			it.setExtra(f.key, value)
		}
	}
	for key, value := range raw {
		if !known[key] {
			it.setExtra(key, value)
		}
	}
	return nil
}

// MarshalJSON writes the known fields in declaration order, then extra keys
// sorted. A known field left empty falls back to its raw model value.
func (it Item) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')

	first := true
	writeKey := func(key string) error {
		if !first {
			buf.WriteByte(',')
		}
		first = false
		k, err := marshalNoEscape(key)
		if err != nil {
			return err
		}
		buf.Write(k)
		buf.WriteByte(':')
		return nil
	}

	known := make(map[string]bool)
	for _, f := range it.fields() {
		known[f.key] = true
		raw, hasRaw := it.Extra[f.key]
		switch {
		case *f.value != "":
			if err := writeKey(f.key); err != nil {
				return nil, err
			}
			v, err := marshalNoEscape(*f.value)
			if err != nil {
				return nil, err
			}
			buf.Write(v)
		case hasRaw:
			if err := writeKey(f.key); err != nil {
				return nil, err
			}
			buf.Write(raw)
		case !f.omitEmpty:
			if err := writeKey(f.key); err != nil {
				return nil, err
			}
			buf.WriteString(`""`)
		}
	}

	extra := make([]string, 0, len(it.Extra))
	for key := range it.Extra {
		if !known[key] {
			extra = append(extra, key)
		}
	}
	sort.Strings(extra)
	for _, key := range extra {
		if err := writeKey(key); err != nil {
			return nil, err
		}
		buf.Write(it.Extra[key])
	}

	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func (it *Item) setExtra(key string, value json.RawMessage) {
	if it.Extra == nil {
		it.Extra = make(map[string]json.RawMessage)
	}
	it.Extra[key] = value
}

func isNull(raw json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(raw), []byte("null"))
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
