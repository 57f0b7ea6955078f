/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package contactmodels

import "github.com/emersion/go-vcard"

// FieldID is the reserved property identifying a stored contact.
const FieldID = "id"

// Standard property names, shared with the vCard vocabulary.
const (
	FieldFormattedName = vcard.FieldFormattedName
	FieldName          = vcard.FieldName
	FieldNickname      = vcard.FieldNickname
	FieldEmail         = vcard.FieldEmail
	FieldTelephone     = vcard.FieldTelephone
	FieldAddress       = vcard.FieldAddress
	FieldOrganization  = vcard.FieldOrganization
	FieldTitle         = vcard.FieldTitle
	FieldRole          = vcard.FieldRole
	FieldBirthday      = vcard.FieldBirthday
	FieldURL           = vcard.FieldURL
	FieldNote          = vcard.FieldNote
	FieldCategories    = vcard.FieldCategories
	FieldPhoto         = vcard.FieldPhoto
	FieldUID           = vcard.FieldUID
	FieldRevision      = vcard.FieldRevision
	FieldCloud         = "CLOUD"
)

// fieldOrder is the order properties take when a contact is built from an
// unordered source such as a decoded vCard.
var fieldOrder = []string{
	FieldFormattedName,
	FieldName,
	FieldNickname,
	FieldEmail,
	FieldTelephone,
	FieldAddress,
	FieldOrganization,
	FieldTitle,
	FieldRole,
	FieldBirthday,
	FieldURL,
	FieldCloud,
	FieldCategories,
	FieldNote,
	FieldPhoto,
}

func fieldRank(name string) int {
	for i, n := range fieldOrder {
		if n == name {
			return i
		}
	}
	return len(fieldOrder)
}
