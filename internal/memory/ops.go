package memory

import (
	"encoding/json"
	"log/slog"
	"sort"
	"strings"

	"github.com/pkg/errors"
	"github.com/samber/lo"
)

// Manager runs memory operations against one store file.
// Every operation loads the file fresh; mutating operations save it back.
type Manager struct {
	Path string
}

// NewManager returns a Manager for the store at path.
func NewManager(path string) *Manager {
	return &Manager{Path: path}
}

// ConversationSummary is a list entry for a conversation memory.
type ConversationSummary struct {
	ID       string `json:"id"`
	Messages int    `json:"messages"`
}

// CustomSummary is a list entry for a custom memory.
type CustomSummary struct {
	ID          string `json:"id"`
	Description string `json:"description"`
}

// Listing holds both categories, each sorted by ID.
type Listing struct {
	Conversations []ConversationSummary `json:"conversations"`
	Custom        []CustomSummary       `json:"custom_memories"`
}

// Entry is a single memory as returned by View.
type Entry struct {
	ID          string    `json:"id"`
	Type        Category  `json:"type"`
	Description string    `json:"description,omitempty"`
	Content     string    `json:"content,omitempty"`
	Messages    []Message `json:"messages,omitempty"`
}

// CreateInput carries the create arguments. Exactly one of Content and File
// must be non-empty.
type CreateInput struct {
	ID          string
	Description string
	Content     string
	File        string
}

// Create actions.
const (
	ActionCreated = "created"
	ActionUpdated = "updated"
)

// CreateResult reports what Create did.
type CreateResult struct {
	ID     string `json:"id"`
	Action string `json:"action"`
}

// List returns the IDs in both categories.
func (m *Manager) List() (*Listing, error) {
	s, err := Load(m.Path)
	if err != nil {
		return nil, err
	}

	listing := &Listing{
		Conversations: lo.MapToSlice(s.Conversations, func(id string, raw json.RawMessage) ConversationSummary {
			msgs, err := DecodeConversation(raw)
			if err != nil {
				slog.Debug("conversation not decodable", "id", id, "error", err)
			}
			return ConversationSummary{ID: id, Messages: len(msgs)}
		}),
		Custom: lo.MapToSlice(s.CustomMemories, func(id string, cm CustomMemory) CustomSummary {
			return CustomSummary{ID: id, Description: cm.Description}
		}),
	}
	sort.Slice(listing.Conversations, func(i, j int) bool {
		return listing.Conversations[i].ID < listing.Conversations[j].ID
	})
	sort.Slice(listing.Custom, func(i, j int) bool {
		return listing.Custom[i].ID < listing.Custom[j].ID
	})
	return listing, nil
}

// View looks up id in the given category.
func (m *Manager) View(id string, cat Category) (*Entry, error) {
	s, err := Load(m.Path)
	if err != nil {
		return nil, err
	}

	switch cat {
	case Custom:
		cm, ok := s.CustomMemories[id]
		if !ok {
			return nil, &NotFoundError{Category: cat, ID: id}
		}
		return &Entry{ID: id, Type: cat, Description: cm.Description, Content: cm.Content}, nil
	default:
		raw, ok := s.Conversations[id]
		if !ok {
			return nil, &NotFoundError{Category: Conversation, ID: id}
		}
		msgs, err := DecodeConversation(raw)
		if err != nil {
			return nil, &ParseError{Path: m.Path, Err: errors.Wrapf(err, "conversation %q", id)}
		}
		return &Entry{ID: id, Type: Conversation, Messages: msgs}, nil
	}
}

// Delete removes id from the given category and saves the store.
// The store is not written when id is absent.
func (m *Manager) Delete(id string, cat Category) error {
	s, err := Load(m.Path)
	if err != nil {
		return err
	}

	switch cat {
	case Custom:
		if _, ok := s.CustomMemories[id]; !ok {
			return &NotFoundError{Category: cat, ID: id}
		}
		delete(s.CustomMemories, id)
	default:
		if _, ok := s.Conversations[id]; !ok {
			return &NotFoundError{Category: Conversation, ID: id}
		}
		delete(s.Conversations, id)
	}

	return Save(m.Path, s)
}

// Create inserts or overwrites a custom memory. Input is validated and
// content is resolved before the store is touched.
func (m *Manager) Create(in CreateInput) (*CreateResult, error) {
	if strings.TrimSpace(in.ID) == "" {
		return nil, invalid("memory ID must not be empty")
	}
	if strings.TrimSpace(in.Description) == "" {
		return nil, invalid("description must not be empty")
	}
	content, err := resolveContent(in.Content, in.File)
	if err != nil {
		return nil, err
	}

	s, err := Load(m.Path)
	if err != nil {
		return nil, err
	}

	action := ActionCreated
	cm, exists := s.CustomMemories[in.ID]
	if exists {
		slog.Debug("overwriting custom memory", "id", in.ID)
		action = ActionUpdated
	}
	// Fields this tool doesn't manage survive an overwrite.
	cm.Description = in.Description
	cm.Content = content
	s.CustomMemories[in.ID] = cm

	if err := Save(m.Path, s); err != nil {
		return nil, err
	}
	return &CreateResult{ID: in.ID, Action: action}, nil
}
