package notes

import (
	"encoding/json"

	"gopkg.in/yaml.v3"
)

type noteDoc struct {
	Title   string   `json:"title" yaml:"title"`
	Content string   `json:"content" yaml:"content"`
	Tags    []string `json:"tags,omitempty" yaml:"tags,omitempty"`
}

func (n *Note) doc() noteDoc {
	d := noteDoc{Title: n.title.String(), Content: n.content.String()}
	if len(n.tags) > 0 {
		d.Tags = n.Tags()
	}
	return d
}

func (n *Note) MarshalJSON() ([]byte, error) {
	return json.Marshal(n.doc())
}

func (n *Note) UnmarshalJSON(b []byte) error {
	var d noteDoc
	if err := json.Unmarshal(b, &d); err != nil {
		return err
	}
	parsed, err := NewNote(d.Title, d.Content, d.Tags)
	if err != nil {
		return err
	}
	*n = *parsed
	return nil
}

func (n *Note) MarshalYAML() (interface{}, error) {
	return n.doc(), nil
}

func (n *Note) UnmarshalYAML(node *yaml.Node) error {
	var d noteDoc
	if err := node.Decode(&d); err != nil {
		return err
	}
	parsed, err := NewNote(d.Title, d.Content, d.Tags)
	if err != nil {
		return err
	}
	*n = *parsed
	return nil
}

// Schema is the JSON Schema of the notes document, checked on load.
const Schema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "title": "notes",
  "type": "object",
  "required": ["version", "records"],
  "properties": {
    "version": {"type": "integer", "minimum": 1},
    "records": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["title", "content"],
        "additionalProperties": false,
        "properties": {
          "title": {"type": "string", "minLength": 1},
          "content": {"type": "string", "minLength": 1},
          "tags": {"type": "array", "items": {"type": "string"}, "maxItems": 5}
        }
      }
    }
  }
}`
