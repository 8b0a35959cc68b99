package memory

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleStore = `{
  "conversations": {
    "chat-1": [
      {"role": "user", "content": "What is a goroutine?"},
      {"role": "assistant", "content": "A lightweight thread managed by the Go runtime."}
    ],
    "shared": [{"role": "user", "content": "hello"}]
  },
  "custom_memories": {
    "style": {"description": "coding style", "content": "Prefer table-driven tests."}
  }
}`

func newTestManager(t *testing.T, initial string) *Manager {
	t.Helper()
	path := filepath.Join(t.TempDir(), "memory.json")
	if initial != "" {
		require.NoError(t, os.WriteFile(path, []byte(initial), 0644))
	}
	return NewManager(path)
}

func readFile(t *testing.T, path string) []byte {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return data
}

func TestCreateThenView_RoundTrip(t *testing.T) {
	m := newTestManager(t, "")

	res, err := m.Create(CreateInput{ID: "style", Description: "coding style", Content: "Use gofmt.\nNo globals."})
	require.NoError(t, err)
	assert.Equal(t, &CreateResult{ID: "style", Action: ActionCreated}, res)

	entry, err := m.View("style", Custom)
	require.NoError(t, err)
	assert.Equal(t, "coding style", entry.Description)
	assert.Equal(t, "Use gofmt.\nNo globals.", entry.Content)
	assert.Equal(t, Custom, entry.Type)
}

func TestCreate_Overwrite(t *testing.T) {
	m := newTestManager(t, sampleStore)

	res, err := m.Create(CreateInput{ID: "style", Description: "new", Content: "updated"})
	require.NoError(t, err)
	assert.Equal(t, ActionUpdated, res.Action)

	entry, err := m.View("style", Custom)
	require.NoError(t, err)
	assert.Equal(t, "new", entry.Description)
	assert.Equal(t, "updated", entry.Content)
}

func TestCreate_FromFile(t *testing.T) {
	m := newTestManager(t, "")
	src := filepath.Join(t.TempDir(), "instructions.md")
	require.NoError(t, os.WriteFile(src, []byte("# Rules\nBe terse.\n"), 0644))

	_, err := m.Create(CreateInput{ID: "rules", Description: "house rules", File: src})
	require.NoError(t, err)

	entry, err := m.View("rules", Custom)
	require.NoError(t, err)
	assert.Equal(t, "# Rules\nBe terse.\n", entry.Content)
}

func TestCreate_ValidationPerformsNoWrite(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "missing.txt")
	emptyFile := filepath.Join(t.TempDir(), "empty.txt")
	require.NoError(t, os.WriteFile(emptyFile, nil, 0644))
	latin1File := filepath.Join(t.TempDir(), "latin1.txt")
	require.NoError(t, os.WriteFile(latin1File, []byte("caf\xe9 r\xe9sum\xe9\n"), 0644))

	tests := []struct {
		name string
		in   CreateInput
	}{
		{"no content source", CreateInput{ID: "a", Description: "d"}},
		{"both sources", CreateInput{ID: "a", Description: "d", Content: "c", File: emptyFile}},
		{"unreadable file", CreateInput{ID: "a", Description: "d", File: missing}},
		{"empty file", CreateInput{ID: "a", Description: "d", File: emptyFile}},
		{"file not UTF-8", CreateInput{ID: "a", Description: "d", File: latin1File}},
		{"whitespace-only content", CreateInput{ID: "a", Description: "d", Content: " \n\t"}},
		{"empty description", CreateInput{ID: "a", Content: "c"}},
		{"empty id", CreateInput{ID: " ", Description: "d", Content: "c"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newTestManager(t, "")

			_, err := m.Create(tt.in)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrValidation), "got %v", err)

			_, statErr := os.Stat(m.Path)
			assert.True(t, os.IsNotExist(statErr), "store file should not be written")
		})
	}
}

func TestCreate_UnreadableFileWrapsCause(t *testing.T) {
	m := newTestManager(t, "")
	_, err := m.Create(CreateInput{ID: "a", Description: "d", File: filepath.Join(t.TempDir(), "nope")})

	var ve *ValidationError
	require.True(t, errors.As(err, &ve))
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestList_IncludesCreatedIDs(t *testing.T) {
	m := newTestManager(t, sampleStore)

	_, err := m.Create(CreateInput{ID: "b", Description: "second", Content: "B"})
	require.NoError(t, err)
	_, err = m.Create(CreateInput{ID: "a", Description: "first", Content: "A"})
	require.NoError(t, err)

	listing, err := m.List()
	require.NoError(t, err)

	assert.Equal(t, []CustomSummary{
		{ID: "a", Description: "first"},
		{ID: "b", Description: "second"},
		{ID: "style", Description: "coding style"},
	}, listing.Custom)
	assert.Equal(t, []ConversationSummary{
		{ID: "chat-1", Messages: 2},
		{ID: "shared", Messages: 1},
	}, listing.Conversations)
}

func TestList_Empty(t *testing.T) {
	m := newTestManager(t, "")

	listing, err := m.List()
	require.NoError(t, err)
	assert.Empty(t, listing.Conversations)
	assert.Empty(t, listing.Custom)

	_, statErr := os.Stat(m.Path)
	assert.True(t, os.IsNotExist(statErr), "list must not create the store")
}

func TestView_Conversation(t *testing.T) {
	m := newTestManager(t, sampleStore)

	entry, err := m.View("chat-1", Conversation)
	require.NoError(t, err)
	assert.Equal(t, Conversation, entry.Type)
	require.Len(t, entry.Messages, 2)
	assert.Equal(t, Message{Role: "user", Content: "What is a goroutine?"}, entry.Messages[0])
}

func TestView_CategoryIsolation(t *testing.T) {
	m := newTestManager(t, sampleStore)

	_, err := m.View("chat-1", Custom)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNotFound))

	var nf *NotFoundError
	require.True(t, errors.As(err, &nf))
	assert.Equal(t, Custom, nf.Category)
	assert.Equal(t, "chat-1", nf.ID)

	_, err = m.View("style", Conversation)
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestView_UndecodableConversation(t *testing.T) {
	m := newTestManager(t, `{"conversations": {"odd": 42}, "custom_memories": {}}`)

	_, err := m.View("odd", Conversation)
	assert.True(t, errors.Is(err, ErrParse))

	listing, err := m.List()
	require.NoError(t, err)
	assert.Equal(t, []ConversationSummary{{ID: "odd", Messages: 0}}, listing.Conversations)
}

func TestDelete(t *testing.T) {
	m := newTestManager(t, sampleStore)

	require.NoError(t, m.Delete("chat-1", Conversation))
	_, err := m.View("chat-1", Conversation)
	assert.True(t, errors.Is(err, ErrNotFound))

	require.NoError(t, m.Delete("style", Custom))
	_, err = m.View("style", Custom)
	assert.True(t, errors.Is(err, ErrNotFound))

	// Untouched entries survive.
	_, err = m.View("shared", Conversation)
	assert.NoError(t, err)
}

func TestDelete_MissingLeavesStoreUnchanged(t *testing.T) {
	m := newTestManager(t, sampleStore)
	before := readFile(t, m.Path)

	err := m.Delete("ghost", Custom)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNotFound))

	// Conversation-only ID is not found under custom either.
	err = m.Delete("chat-1", Custom)
	assert.True(t, errors.Is(err, ErrNotFound))

	assert.Equal(t, before, readFile(t, m.Path))
}

func TestOperations_CorruptStore(t *testing.T) {
	corrupt := `{"conversations": `
	m := newTestManager(t, corrupt)

	_, err := m.List()
	assert.True(t, errors.Is(err, ErrParse))
	_, err = m.View("a", Custom)
	assert.True(t, errors.Is(err, ErrParse))
	err = m.Delete("a", Custom)
	assert.True(t, errors.Is(err, ErrParse))
	_, err = m.Create(CreateInput{ID: "a", Description: "d", Content: "c"})
	assert.True(t, errors.Is(err, ErrParse))

	assert.Equal(t, corrupt, string(readFile(t, m.Path)))
}

func TestCreate_OverwriteKeepsUnmanagedFields(t *testing.T) {
	m := newTestManager(t, `{
  "conversations": {},
  "custom_memories": {"style": {"description": "old", "content": "old", "tags": ["go"]}}
}`)

	_, err := m.Create(CreateInput{ID: "style", Description: "new", Content: "new"})
	require.NoError(t, err)

	assert.JSONEq(t, `{
  "conversations": {},
  "custom_memories": {"style": {"description": "new", "content": "new", "tags": ["go"]}}
}`, string(readFile(t, m.Path)))
}

func TestDelete_KeepsUnmanagedData(t *testing.T) {
	m := newTestManager(t, `{
  "conversations": {"c": []},
  "custom_memories": {"x": {"description": "d", "content": "c", "tags": ["t"]}},
  "settings": {"k": 1}
}`)

	require.NoError(t, m.Delete("c", Conversation))

	assert.JSONEq(t, `{
  "conversations": {},
  "custom_memories": {"x": {"description": "d", "content": "c", "tags": ["t"]}},
  "settings": {"k": 1}
}`, string(readFile(t, m.Path)))
}

func TestCreate_ContentRoundTripsSpecialCharacters(t *testing.T) {
	m := newTestManager(t, "")
	content := "if a < b && c > d {\n\treturn \"café\"\n}"

	_, err := m.Create(CreateInput{ID: "snippet", Description: "code", Content: content})
	require.NoError(t, err)

	entry, err := m.View("snippet", Custom)
	require.NoError(t, err)
	assert.Equal(t, content, entry.Content)
	assert.Contains(t, string(readFile(t, m.Path)), "a < b && c > d")
}
