/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package contactmodels

import "strings"

// SearchOptions carries the optional search arguments passed through the
// registry to every provider. Zero values mean no limit, no offset and
// substring matching.
type SearchOptions struct {
	// Limit caps the number of contacts a single provider returns.
	Limit int
	// Offset skips that many matches in each provider.
	Offset int
	// Strict requires a whole, case-insensitive value match.
	Strict bool
	// Extra holds provider-specific options.
	Extra map[string]any
}

// Match reports whether any value of the searched properties contains
// pattern, case-insensitively. An empty props list searches every property
// except the id; an empty pattern matches every contact.
func Match(c *Contact, pattern string, props []string, opts SearchOptions) bool {
	if pattern == "" {
		return true
	}
	needle := strings.ToLower(pattern)

	for _, f := range c.Fields {
		if !searched(f.Name, props) {
			continue
		}
		for _, v := range f.Values {
			hay := strings.ToLower(v)
			if opts.Strict {
				if hay == needle {
					return true
				}
			} else if strings.Contains(hay, needle) {
				return true
			}
		}
	}
	return false
}

func searched(name string, props []string) bool {
	if len(props) == 0 {
		return !strings.EqualFold(name, FieldID)
	}
	for _, p := range props {
		if strings.EqualFold(p, name) {
			return true
		}
	}
	return false
}

// Paginate applies opts.Offset and opts.Limit to an already ordered result.
func Paginate(contacts []*Contact, opts SearchOptions) []*Contact {
	if opts.Offset > 0 {
		if opts.Offset >= len(contacts) {
			return []*Contact{}
		}
		contacts = contacts[opts.Offset:]
	}
	if opts.Limit > 0 && opts.Limit < len(contacts) {
		contacts = contacts[:opts.Limit]
	}
	return contacts
}
