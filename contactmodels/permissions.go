/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package contactmodels

import (
	"fmt"
	"strings"
)

// Permission is the bitmask an address book reports for the operations it allows.
type Permission int

const (
	PermissionRead Permission = 1 << iota
	PermissionUpdate
	PermissionCreate
	PermissionDelete
	PermissionShare

	PermissionAll = PermissionRead | PermissionUpdate | PermissionCreate | PermissionDelete | PermissionShare
)

var permissionNames = []struct {
	bit  Permission
	name string
}{
	{PermissionRead, "read"},
	{PermissionUpdate, "update"},
	{PermissionCreate, "create"},
	{PermissionDelete, "delete"},
	{PermissionShare, "share"},
}

// Has reports whether every bit of want is set in p.
func (p Permission) Has(want Permission) bool {
	return p&want == want
}

func (p Permission) String() string {
	if p == 0 {
		return "none"
	}
	var parts []string
	for _, pn := range permissionNames {
		if p&pn.bit != 0 {
			parts = append(parts, pn.name)
		}
	}
	return strings.Join(parts, "|")
}

// ParsePermissions folds permission names ("read", "create", ..., or "all")
// into a bitmask.
func ParsePermissions(names []string) (Permission, error) {
	var p Permission
	for _, raw := range names {
		name := strings.ToLower(strings.TrimSpace(raw))
		if name == "all" {
			p |= PermissionAll
			continue
		}
		found := false
		for _, pn := range permissionNames {
			if pn.name == name {
				p |= pn.bit
				found = true
				break
			}
		}
		if !found {
			return 0, fmt.Errorf("unknown permission %q", raw)
		}
	}
	return p, nil
}
