package notes

import (
	"path/filepath"
	"testing"

	"github.com/entrhq/assistant/pkg/errs"
	"github.com/entrhq/assistant/pkg/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openNotebook(t *testing.T, path string) *Notebook {
	t.Helper()
	p, err := store.NewJSONFile[*Note](path, store.WithSchema(Schema))
	require.NoError(t, err)
	b, err := Open(p)
	require.NoError(t, err)
	return b
}

func seedNotebook(t *testing.T, b *Notebook) {
	t.Helper()
	seeds := []struct {
		title, content string
		tags           []string
	}{
		{"Groceries", "milk and bread", []string{"home", "shopping"}},
		{"Standup", "demo the parser", []string{"work", "workshop"}},
		{"Birthday party", "buy balloons", []string{"family"}},
		{"Reading list", "Go in Action", nil},
	}
	for _, s := range seeds {
		_, err := b.AddNote(s.title, s.content, s.tags)
		require.NoError(t, err)
	}
}

func titles(notes []*Note) []string {
	out := make([]string, len(notes))
	for i, n := range notes {
		out[i] = n.Key()
	}
	return out
}

func TestNotebookAddAndDelete(t *testing.T) {
	b := openNotebook(t, filepath.Join(t.TempDir(), "notes.json"))

	_, err := b.AddNote("Todo", "call mom", []string{"family"})
	require.NoError(t, err)

	_, err = b.AddNote("Todo", "other", nil)
	assert.ErrorIs(t, err, errs.ErrAlreadyExists)

	n, ok := b.Find("Todo")
	require.True(t, ok)
	assert.Equal(t, "call mom", n.Content().String())

	require.NoError(t, b.DeleteNote("Todo"))
	assert.ErrorIs(t, b.DeleteNote("Todo"), errs.ErrNotFound)
	assert.Zero(t, b.Count())
}

func TestNotebookEditsPersist(t *testing.T) {
	path := filepath.Join(t.TempDir(), "notes.json")
	b := openNotebook(t, path)
	seedNotebook(t, b)

	n, err := b.AddTags("Groceries", []string{"#Weekly", "home"})
	require.NoError(t, err)
	assert.Equal(t, []string{"home", "shopping", "weekly"}, n.Tags())

	_, err = b.ChangeContent("Standup", "demo the store")
	require.NoError(t, err)

	_, err = b.AddTags("Missing", []string{"x"})
	assert.ErrorIs(t, err, errs.ErrNotFound)
	_, err = b.AddTags("Groceries", nil)
	assert.ErrorIs(t, err, errs.ErrValidation)

	reloaded := openNotebook(t, path)
	g, ok := reloaded.Find("Groceries")
	require.True(t, ok)
	assert.Equal(t, []string{"home", "shopping", "weekly"}, g.Tags())
	s, ok := reloaded.Find("Standup")
	require.True(t, ok)
	assert.Equal(t, "demo the store", s.Content().String())
}

func TestNotebookChangeTitle(t *testing.T) {
	path := filepath.Join(t.TempDir(), "notes.json")
	b := openNotebook(t, path)
	seedNotebook(t, b)

	t.Run("moves to the end", func(t *testing.T) {
		n, err := b.ChangeTitle("Groceries", "Shopping")
		require.NoError(t, err)
		assert.Equal(t, "Shopping", n.Key())
		assert.Equal(t, []string{"home", "shopping"}, n.Tags())
		assert.Equal(t, []string{"Standup", "Birthday party", "Reading list", "Shopping"}, b.Titles())

		_, ok := b.Find("Groceries")
		assert.False(t, ok)
	})

	t.Run("taken title", func(t *testing.T) {
		_, err := b.ChangeTitle("Standup", "Shopping")
		assert.ErrorIs(t, err, errs.ErrAlreadyExists)
		_, ok := b.Find("Standup")
		assert.True(t, ok)
	})

	t.Run("missing note", func(t *testing.T) {
		_, err := b.ChangeTitle("Nope", "Other")
		assert.ErrorIs(t, err, errs.ErrNotFound)
	})

	t.Run("invalid title", func(t *testing.T) {
		_, err := b.ChangeTitle("Standup", " ")
		assert.ErrorIs(t, err, errs.ErrValidation)
	})

	assert.Equal(t, b.Titles(), openNotebook(t, path).Titles())
}

func TestNotebookSearch(t *testing.T) {
	b := openNotebook(t, filepath.Join(t.TempDir(), "notes.json"))
	seedNotebook(t, b)

	found, err := b.Search("WORK")
	require.NoError(t, err)
	assert.Equal(t, []string{"Standup"}, titles(found))

	found, err = b.Search("bal")
	require.NoError(t, err)
	assert.Equal(t, []string{"Birthday party"}, titles(found))

	found, err = b.Search("zz")
	require.NoError(t, err)
	assert.Empty(t, found)

	_, err = b.Search("g")
	assert.ErrorIs(t, err, errs.ErrValidation)
}

func TestNotebookTags(t *testing.T) {
	b := openNotebook(t, filepath.Join(t.TempDir(), "notes.json"))
	assert.Empty(t, b.ListTags())

	seedNotebook(t, b)
	assert.Equal(t, []string{"family", "home", "shopping", "work", "workshop"}, b.ListTags())

	tests := []struct {
		pattern string
		want    []string
	}{
		{"work", []string{"Standup"}},
		{"work*", []string{"Standup"}},
		{"{home,family}", []string{"Groceries", "Birthday party"}},
		{"*", []string{"Groceries", "Standup", "Birthday party"}},
		{"nothing", []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.pattern, func(t *testing.T) {
			got, err := b.FilterByTag(tt.pattern)
			require.NoError(t, err)
			assert.Equal(t, tt.want, titles(got))
		})
	}

	_, err := b.FilterByTag("[unclosed")
	assert.ErrorIs(t, err, errs.ErrValidation)
}

func TestNotebookPages(t *testing.T) {
	b := openNotebook(t, filepath.Join(t.TempDir(), "notes.json"))
	seedNotebook(t, b)

	var sizes []int
	for page := range b.Pages(3) {
		sizes = append(sizes, len(page))
	}
	assert.Equal(t, []int{3, 1}, sizes)
}

func TestNotebookYAMLBackend(t *testing.T) {
	path := filepath.Join(t.TempDir(), "notes.yaml")
	b, err := Open(store.NewYAMLFile[*Note](path))
	require.NoError(t, err)
	seedNotebook(t, b)

	reloaded, err := Open(store.NewYAMLFile[*Note](path))
	require.NoError(t, err)
	assert.Equal(t, b.Titles(), reloaded.Titles())
	assert.Equal(t, b.ListTags(), reloaded.ListTags())
}
