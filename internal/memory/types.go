// Package memory implements the memory store: a single JSON document holding
// conversation memories recorded by the chat client and custom memories
// written by the user.
package memory

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/samber/lo"
)

// Category selects one of the two memory mappings in the store.
type Category string

const (
	Conversation Category = "conversation"
	Custom       Category = "custom"
)

// Categories lists the valid --type values.
var Categories = []Category{Conversation, Custom}

// ParseCategory validates a --type value. Empty means Conversation.
func ParseCategory(s string) (Category, error) {
	switch Category(strings.ToLower(strings.TrimSpace(s))) {
	case "", Conversation:
		return Conversation, nil
	case Custom:
		return Custom, nil
	}
	return "", invalid("invalid memory type %q (valid: %s)", s, CategoryNames())
}

// CategoryNames returns the valid --type values as a comma-separated list.
func CategoryNames() string {
	return strings.Join(lo.Map(Categories, func(c Category, _ int) string {
		return string(c)
	}), ", ")
}

// Title returns the capitalized category name used in messages.
func (c Category) Title() string {
	switch c {
	case Custom:
		return "Custom"
	default:
		return "Conversation"
	}
}

// Store keys in the on-disk document.
const (
	conversationsKey  = "conversations"
	customMemoriesKey = "custom_memories"
)

// Store is the on-disk memory document.
//
// Conversation records belong to the chat client, so they are kept as raw
// JSON and written back unchanged. Top-level keys other than the two
// mappings are carried in Extra so a save never drops them.
type Store struct {
	Conversations  map[string]json.RawMessage
	CustomMemories map[string]CustomMemory
	Extra          map[string]json.RawMessage
}

// NewStore returns an empty store with both mappings allocated.
func NewStore() *Store {
	return &Store{
		Conversations:  map[string]json.RawMessage{},
		CustomMemories: map[string]CustomMemory{},
	}
}

// UnmarshalJSON splits the document into the two mappings and Extra.
// A missing or null mapping decodes as empty.
func (s *Store) UnmarshalJSON(data []byte) error {
	var doc map[string]json.RawMessage
	if err := json.Unmarshal(data, &doc); err != nil {
		return err
	}

	s.Conversations = nil
	s.CustomMemories = nil
	if raw, ok := doc[conversationsKey]; ok {
		if err := json.Unmarshal(raw, &s.Conversations); err != nil {
			return fmt.Errorf("%s: %w", conversationsKey, err)
		}
		delete(doc, conversationsKey)
	}
	if raw, ok := doc[customMemoriesKey]; ok {
		if err := json.Unmarshal(raw, &s.CustomMemories); err != nil {
			return fmt.Errorf("%s: %w", customMemoriesKey, err)
		}
		delete(doc, customMemoriesKey)
	}
	if s.Conversations == nil {
		s.Conversations = map[string]json.RawMessage{}
	}
	if s.CustomMemories == nil {
		s.CustomMemories = map[string]CustomMemory{}
	}

	s.Extra = nil
	if len(doc) > 0 {
		s.Extra = doc
	}
	return nil
}

// MarshalJSON writes Extra back alongside the two mappings.
func (s Store) MarshalJSON() ([]byte, error) {
	doc := make(map[string]interface{}, len(s.Extra)+2)
	for k, v := range s.Extra {
		doc[k] = v
	}

	conversations := s.Conversations
	if conversations == nil {
		conversations = map[string]json.RawMessage{}
	}
	custom := s.CustomMemories
	if custom == nil {
		custom = map[string]CustomMemory{}
	}
	doc[conversationsKey] = conversations
	doc[customMemoriesKey] = custom
	return encodeCompact(doc)
}

// CustomMemory is a user-authored memory. Fields other than description
// and content are kept in Extra.
type CustomMemory struct {
	Description string
	Content     string
	Extra       map[string]json.RawMessage
}

// UnmarshalJSON reads description and content and keeps everything else.
func (c *CustomMemory) UnmarshalJSON(data []byte) error {
	var doc map[string]json.RawMessage
	if err := json.Unmarshal(data, &doc); err != nil {
		return err
	}

	c.Description, c.Content = "", ""
	if raw, ok := doc["description"]; ok {
		if err := json.Unmarshal(raw, &c.Description); err != nil {
			return fmt.Errorf("description: %w", err)
		}
		delete(doc, "description")
	}
	if raw, ok := doc["content"]; ok {
		if err := json.Unmarshal(raw, &c.Content); err != nil {
			return fmt.Errorf("content: %w", err)
		}
		delete(doc, "content")
	}

	c.Extra = nil
	if len(doc) > 0 {
		c.Extra = doc
	}
	return nil
}

// MarshalJSON writes description, content and any extra fields.
func (c CustomMemory) MarshalJSON() ([]byte, error) {
	doc := make(map[string]interface{}, len(c.Extra)+2)
	for k, v := range c.Extra {
		doc[k] = v
	}
	doc["description"] = c.Description
	doc["content"] = c.Content
	return encodeCompact(doc)
}

// encodeCompact marshals v without escaping <, > and &, so hand-edited
// stores stay readable.
func encodeCompact(v interface{}) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

// Message is one turn of a conversation memory.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// contentBlock is the block form of message content used by the chat API.
type contentBlock struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

// UnmarshalJSON accepts content either as a plain string or as a list of
// content blocks. Text blocks are joined with newlines; other blocks are
// dropped.
func (m *Message) UnmarshalJSON(data []byte) error {
	var raw struct {
		Role    string          `json:"role"`
		Content json.RawMessage `json:"content"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	m.Role = raw.Role
	m.Content = ""

	if len(raw.Content) == 0 || string(raw.Content) == "null" {
		return nil
	}

	var s string
	if err := json.Unmarshal(raw.Content, &s); err == nil {
		m.Content = s
		return nil
	}

	var blocks []contentBlock
	if err := json.Unmarshal(raw.Content, &blocks); err != nil {
		return err
	}
	var texts []string
	for _, b := range blocks {
		if b.Type == "text" || (b.Type == "" && b.Text != "") {
			texts = append(texts, b.Text)
		}
	}
	m.Content = strings.Join(texts, "\n")
	return nil
}

// DecodeConversation decodes a raw conversation record into messages.
// Records may be a bare message list or an object with a "messages" field.
func DecodeConversation(raw json.RawMessage) ([]Message, error) {
	var msgs []Message
	if err := json.Unmarshal(raw, &msgs); err == nil {
		return msgs, nil
	}

	var wrapped struct {
		Messages []Message `json:"messages"`
	}
	if err := json.Unmarshal(raw, &wrapped); err != nil {
		return nil, err
	}
	return wrapped.Messages, nil
}
