package contacts

import (
	"encoding/json"

	"gopkg.in/yaml.v3"

	"github.com/entrhq/assistant/pkg/field"
)

// contactDoc is the persisted form of a Contact. Unset attributes are omitted.
type contactDoc struct {
	Name     string   `json:"name" yaml:"name"`
	Phones   []string `json:"phones,omitempty" yaml:"phones,omitempty"`
	Birthday string   `json:"birthday,omitempty" yaml:"birthday,omitempty"`
	Email    string   `json:"email,omitempty" yaml:"email,omitempty"`
	Address  []string `json:"address,omitempty" yaml:"address,omitempty"`
}

func (c *Contact) doc() contactDoc {
	d := contactDoc{
		Name:     c.name.String(),
		Phones:   c.PhoneStrings(),
		Birthday: c.birthday.String(),
		Email:    c.email.String(),
		Address:  c.address.Components(),
	}
	if len(d.Phones) == 0 {
		d.Phones = nil
	}
	return d
}

// fromDoc rebuilds a contact, validating every field.
func fromDoc(d contactDoc) (*Contact, error) {
	c, err := NewContact(d.Name)
	if err != nil {
		return nil, err
	}
	for _, p := range d.Phones {
		if err := c.AddPhone(p); err != nil {
			return nil, err
		}
	}
	if d.Birthday != "" {
		b, err := field.NewBirthday(d.Birthday)
		if err != nil {
			return nil, err
		}
		c.birthday = b
	}
	if d.Email != "" {
		if err := c.SetEmail(d.Email); err != nil {
			return nil, err
		}
	}
	if len(d.Address) > 0 {
		if err := c.SetAddress(d.Address); err != nil {
			return nil, err
		}
	}
	return c, nil
}

func (c *Contact) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.doc())
}

func (c *Contact) UnmarshalJSON(b []byte) error {
	var d contactDoc
	if err := json.Unmarshal(b, &d); err != nil {
		return err
	}
	parsed, err := fromDoc(d)
	if err != nil {
		return err
	}
	*c = *parsed
	return nil
}

func (c *Contact) MarshalYAML() (interface{}, error) {
	return c.doc(), nil
}

func (c *Contact) UnmarshalYAML(node *yaml.Node) error {
	var d contactDoc
	if err := node.Decode(&d); err != nil {
		return err
	}
	parsed, err := fromDoc(d)
	if err != nil {
		return err
	}
	*c = *parsed
	return nil
}
