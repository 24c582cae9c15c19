package notes

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestNewNote(t *testing.T) {
	tests := []struct {
		name        string
		title       string
		content     string
		tags        []string
		expectError bool
		errorMsg    string
	}{
		{
			name:    "valid note",
			title:   "Groceries",
			content: "milk, bread",
			tags:    []string{"home", "shopping"},
		},
		{
			name:    "no tags",
			title:   "Plain",
			content: "Valid content",
		},
		{
			name:    "max tags",
			title:   "Busy",
			content: "Note with max tags",
			tags:    []string{"tag1", "tag2", "tag3", "tag4", "tag5"},
		},
		{
			name:        "empty title",
			title:       "  ",
			content:     "Valid content",
			expectError: true,
			errorMsg:    "cannot be empty",
		},
		{
			name:        "empty content",
			title:       "Empty",
			content:     "",
			expectError: true,
			errorMsg:    "cannot be empty",
		},
		{
			name:        "content too long",
			title:       "Long",
			content:     strings.Repeat("a", 801),
			expectError: true,
			errorMsg:    "exceeds 800 characters",
		},
		{
			name:        "too many tags",
			title:       "Tagged",
			content:     "Valid content",
			tags:        []string{"tag1", "tag2", "tag3", "tag4", "tag5", "tag6"},
			expectError: true,
			errorMsg:    "at most 5 tags",
		},
		{
			name:        "empty tag",
			title:       "Tagged",
			content:     "Valid content",
			tags:        []string{"valid", ""},
			expectError: true,
			errorMsg:    "tag at position 1",
		},
		{
			name:        "multi-word tag",
			title:       "Tagged",
			content:     "Valid content",
			tags:        []string{"two words"},
			expectError: true,
			errorMsg:    "single word",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			note, err := NewNote(tt.title, tt.content, tt.tags)

			if tt.expectError {
				if err == nil {
					t.Errorf("expected error but got none")
				} else if !strings.Contains(err.Error(), tt.errorMsg) {
					t.Errorf("expected error containing %q, got %q", tt.errorMsg, err.Error())
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if note.Key() != strings.TrimSpace(tt.title) {
				t.Errorf("expected key %q, got %q", tt.title, note.Key())
			}
			if len(note.Tags()) != len(tt.tags) {
				t.Errorf("expected %d tags, got %d", len(tt.tags), len(note.Tags()))
			}
		})
	}
}

func TestAddTagsNormalizesAndMerges(t *testing.T) {
	note, err := NewNote("Trip", "pack bags", []string{"#Travel"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := note.AddTags([]string{"travel", "SUMMER", "#family"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []string{"travel", "summer", "family"}
	got := note.Tags()
	if strings.Join(got, ",") != strings.Join(want, ",") {
		t.Errorf("expected tags %v, got %v", want, got)
	}
}

func TestAddTagsOverLimitLeavesNoteUnchanged(t *testing.T) {
	note, err := NewNote("Full", "body", []string{"a", "b", "c", "d"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := note.AddTags([]string{"e", "f"}); err == nil {
		t.Fatal("expected error for sixth tag")
	}
	if len(note.Tags()) != 4 {
		t.Errorf("expected 4 tags after failed add, got %d", len(note.Tags()))
	}
}

func TestHasTag(t *testing.T) {
	note, _ := NewNote("Tags", "content", []string{"golang", "testing"})

	tests := []struct {
		tag      string
		expected bool
	}{
		{"golang", true},
		{"GOLANG", true},
		{"#testing", true},
		{"python", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.tag, func(t *testing.T) {
			if result := note.HasTag(tt.tag); result != tt.expected {
				t.Errorf("HasTag(%q) = %v, expected %v", tt.tag, result, tt.expected)
			}
		})
	}
}

func TestMatchesAllTags(t *testing.T) {
	note, _ := NewNote("Tags", "content", []string{"golang", "testing", "tdd"})

	tests := []struct {
		name     string
		tags     []string
		expected bool
	}{
		{"single match", []string{"golang"}, true},
		{"all match", []string{"golang", "testing"}, true},
		{"case insensitive", []string{"GOLANG", "TESTING"}, true},
		{"partial match", []string{"golang", "python"}, false},
		{"no tags", []string{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if result := note.MatchesAllTags(tt.tags); result != tt.expected {
				t.Errorf("MatchesAllTags(%v) = %v, expected %v", tt.tags, result, tt.expected)
			}
		})
	}
}

func TestCloneIsIndependent(t *testing.T) {
	note, _ := NewNote("Orig", "content", []string{"one"})
	cp := note.Clone()

	if err := cp.AddTags([]string{"two"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := cp.SetContent("changed"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(note.Tags()) != 1 || note.Content().String() != "content" {
		t.Errorf("original changed through clone: %v %q", note.Tags(), note.Content())
	}
}

func TestNoteJSON(t *testing.T) {
	note, _ := NewNote("Ideas", "write more tests", []string{"work"})

	b, err := json.Marshal(note)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(b) != `{"title":"Ideas","content":"write more tests","tags":["work"]}` {
		t.Errorf("unexpected encoding %s", b)
	}

	var back Note
	if err := json.Unmarshal(b, &back); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if back.Key() != "Ideas" || !back.HasTag("work") {
		t.Errorf("round trip lost data: %+v", back.doc())
	}

	untagged, _ := NewNote("Bare", "text", nil)
	b, _ = json.Marshal(untagged)
	if strings.Contains(string(b), "tags") {
		t.Errorf("expected tags to be omitted, got %s", b)
	}

	if err := json.Unmarshal([]byte(`{"title":"","content":"x"}`), &back); err == nil {
		t.Error("expected error for empty title")
	}
}
