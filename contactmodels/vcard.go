/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package contactmodels

import (
	"sort"
	"strings"

	"github.com/emersion/go-vcard"
)

// FromCard converts a decoded vCard into a contact. The UID becomes the id
// and VERSION is dropped.
func FromCard(card vcard.Card) *Contact {
	names := make([]string, 0, len(card))
	for name := range card {
		if name == vcard.FieldVersion || name == vcard.FieldUID {
			continue
		}
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		ri, rj := fieldRank(names[i]), fieldRank(names[j])
		if ri != rj {
			return ri < rj
		}
		return names[i] < names[j]
	})

	c := NewContact()
	for _, name := range names {
		var values []string
		for _, f := range card[name] {
			values = append(values, f.Value)
		}
		if len(values) == 0 {
			continue
		}
		if orig := card[name][0].Params.Get(ParamPropertyName); strings.EqualFold(orig, name) {
			name = orig
		}
		c.Set(name, values...)
	}
	if uid := card.Value(vcard.FieldUID); uid != "" {
		c.SetID(uid)
	}
	return c
}

// ParamPropertyName records the spelling of a property whose name is not
// upper case, so FromCard can restore it. vCard property names themselves
// are case-insensitive and are written upper case.
const ParamPropertyName = "X-PROPERTY-NAME"

// Card converts the contact into a vCard 4.0 card. The id becomes the UID.
func (c *Contact) Card() vcard.Card {
	card := make(vcard.Card)
	card.SetValue(vcard.FieldVersion, "4.0")
	for _, f := range c.Fields {
		if strings.EqualFold(f.Name, FieldID) {
			card.SetValue(vcard.FieldUID, firstOrEmpty(f.Values))
			continue
		}
		name := strings.ToUpper(f.Name)
		for _, v := range f.Values {
			field := &vcard.Field{Value: v}
			if name != f.Name {
				field.Params = vcard.Params{ParamPropertyName: {f.Name}}
			}
			card.Add(name, field)
		}
	}
	return card
}

func firstOrEmpty(values []string) string {
	if len(values) == 0 {
		return ""
	}
	return values[0]
}
