/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package contactmodels

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// Field is a single contact property. One value reads as a string,
// several as a list.
type Field struct {
	Name   string   `json:"name"`
	Values []string `json:"values"`
}

// Contact is an ordered mapping from property name to value(s).
// Names compare case-insensitively.
type Contact struct {
	Fields []Field
}

// NewContact returns an empty contact.
func NewContact() *Contact {
	return &Contact{}
}

func (c *Contact) index(name string) int {
	for i, f := range c.Fields {
		if strings.EqualFold(f.Name, name) {
			return i
		}
	}
	return -1
}

// Has reports whether the contact carries the named property.
func (c *Contact) Has(name string) bool {
	return c.index(name) >= 0
}

// Get returns the first value of the named property, or "".
func (c *Contact) Get(name string) string {
	if i := c.index(name); i >= 0 && len(c.Fields[i].Values) > 0 {
		return c.Fields[i].Values[0]
	}
	return ""
}

// Values returns every value of the named property.
func (c *Contact) Values(name string) []string {
	if i := c.index(name); i >= 0 {
		return c.Fields[i].Values
	}
	return nil
}

// Set replaces the named property in place, or appends it when absent.
// Calling Set with no values removes the property.
func (c *Contact) Set(name string, values ...string) *Contact {
	if len(values) == 0 {
		c.Del(name)
		return c
	}
	vals := append([]string(nil), values...)
	if i := c.index(name); i >= 0 {
		c.Fields[i].Values = vals
		return c
	}
	c.Fields = append(c.Fields, Field{Name: name, Values: vals})
	return c
}

// Del removes the named property if present.
func (c *Contact) Del(name string) {
	if i := c.index(name); i >= 0 {
		c.Fields = append(c.Fields[:i], c.Fields[i+1:]...)
	}
}

// ID returns the reserved id property.
func (c *Contact) ID() string {
	return c.Get(FieldID)
}

// SetID stores id as the first property of the contact.
func (c *Contact) SetID(id string) *Contact {
	c.Del(FieldID)
	c.Fields = append([]Field{{Name: FieldID, Values: []string{id}}}, c.Fields...)
	return c
}

// Names returns the property names in order.
func (c *Contact) Names() []string {
	names := make([]string, 0, len(c.Fields))
	for _, f := range c.Fields {
		names = append(names, f.Name)
	}
	return names
}

// Len returns the number of properties.
func (c *Contact) Len() int {
	return len(c.Fields)
}

// Clone returns a deep copy of the contact.
func (c *Contact) Clone() *Contact {
	if c == nil {
		return nil
	}
	out := &Contact{Fields: make([]Field, len(c.Fields))}
	for i, f := range c.Fields {
		out.Fields[i] = Field{Name: f.Name, Values: append([]string(nil), f.Values...)}
	}
	return out
}

// MarshalJSON encodes the contact as a JSON object in property order.
// Single-valued properties encode as strings, the rest as arrays.
func (c Contact) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, f := range c.Fields {
		if i > 0 {
			buf.WriteByte(',')
		}
		name, err := json.Marshal(f.Name)
		if err != nil {
			return nil, err
		}
		buf.Write(name)
		buf.WriteByte(':')

		var val []byte
		if len(f.Values) == 1 {
			val, err = json.Marshal(f.Values[0])
		} else {
			vals := f.Values
			if vals == nil {
				vals = []string{}
			}
			val, err = json.Marshal(vals)
		}
		if err != nil {
			return nil, err
		}
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON decodes a JSON object keeping the key order. Values may be
// strings or arrays of strings; null and empty arrays are skipped. A name
// repeated in another case replaces the earlier value, as Set does.
func (c *Contact) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return fmt.Errorf("contact: expected JSON object")
	}

	c.Fields = c.Fields[:0]
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		name, ok := tok.(string)
		if !ok {
			return fmt.Errorf("contact: expected property name, got %v", tok)
		}

		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return fmt.Errorf("contact: property %q: %w", name, err)
		}
		if bytes.Equal(bytes.TrimSpace(raw), []byte("null")) {
			continue
		}
		var single string
		if err := json.Unmarshal(raw, &single); err == nil {
			c.Set(name, single)
			continue
		}
		var multi []string
		if err := json.Unmarshal(raw, &multi); err != nil {
			return fmt.Errorf("contact: property %q must be a string or a list of strings", name)
		}
		c.Set(name, multi...)
	}
	_, err = dec.Token()
	return err
}
