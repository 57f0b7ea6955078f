/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package ddb

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// KeyLayout holds the macro templates for the table and GSI keys. A macro
// such as {ID} is replaced with the item attribute of that name.
type KeyLayout struct {
	PK     string
	SK     string
	GSI1PK string
	GSI1SK string
}

// DefaultKeyLayout files each contact under its own partition and indexes
// it by address book, ordered by creation time.
var DefaultKeyLayout = KeyLayout{
	PK:     "CONTACT#{ID}",
	SK:     "CONTACT#{ID}",
	GSI1PK: "BOOK#{BookKey}",
	GSI1SK: "CONTACT#{CreatedAt}#{ID}",
}

// GSIConfig names the index used to list an address book.
type GSIConfig struct {
	// IndexName is the GSI name in DynamoDB (e.g., "GSI1")
	IndexName string
	// PartitionKeyName is the partition key attribute of the GSI
	PartitionKeyName string
	// SortKeyName is the sort key attribute of the GSI
	SortKeyName string
}

// DefaultGSIConfig matches the attribute names written by DefaultKeyLayout.
var DefaultGSIConfig = GSIConfig{
	IndexName:        "GSI1",
	PartitionKeyName: "GSI1PK",
	SortKeyName:      "GSI1SK",
}

var macroPattern = regexp.MustCompile(`{([^}]+)}`)

// expand returns every key attribute of the layout, expanded against input.
func (l KeyLayout) expand(input any) (map[string]string, error) {
	av, err := attributevalue.MarshalMap(input)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal key input: %w", err)
	}

	templates := map[string]string{
		"PK":     l.PK,
		"SK":     l.SK,
		"GSI1PK": l.GSI1PK,
		"GSI1SK": l.GSI1SK,
	}
	res := make(map[string]string, len(templates))
	for name, template := range templates {
		if template == "" {
			continue
		}
		res[name] = macroPattern.ReplaceAllStringFunc(template, func(macro string) string {
			return attributeString(av[strings.Trim(macro, "{}")])
		})
	}
	return res, nil
}

// primaryKey builds the PK/SK pair for a contact id.
func (l KeyLayout) primaryKey(id string) (map[string]types.AttributeValue, error) {
	expanded, err := l.expand(struct{ ID string }{ID: id})
	if err != nil {
		return nil, err
	}
	pk, sk := expanded["PK"], expanded["SK"]
	if pk == "" || sk == "" {
		return nil, fmt.Errorf("key layout yields an empty PK or SK for id %q", id)
	}
	return map[string]types.AttributeValue{
		"PK": &types.AttributeValueMemberS{Value: pk},
		"SK": &types.AttributeValueMemberS{Value: sk},
	}, nil
}

// bookPartition expands GSI1PK for an address book key.
func (l KeyLayout) bookPartition(bookKey string) (string, error) {
	expanded, err := l.expand(struct{ BookKey string }{BookKey: bookKey})
	if err != nil {
		return "", err
	}
	return expanded["GSI1PK"], nil
}

func attributeString(val types.AttributeValue) string {
	switch tv := val.(type) {
	case *types.AttributeValueMemberS:
		return tv.Value
	case *types.AttributeValueMemberN:
		return tv.Value
	case *types.AttributeValueMemberBOOL:
		return fmt.Sprintf("%v", tv.Value)
	default:
		// NULL, binary and set members have no key form
		return ""
	}
}
