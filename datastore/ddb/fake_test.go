/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package ddb

import (
	"context"
	"sort"
	"sync"

	"github.com/aws/aws-sdk-go-v2/aws"
	sdk "github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// fakeAPI is an in-memory table that understands the expressions the Store sends.
type fakeAPI struct {
	mu         sync.Mutex
	items      map[string]map[string]types.AttributeValue
	queryErrs  []error
	queryCalls int
}

func newFakeAPI() *fakeAPI {
	return &fakeAPI{items: make(map[string]map[string]types.AttributeValue)}
}

func str(av types.AttributeValue) string {
	if s, ok := av.(*types.AttributeValueMemberS); ok {
		return s.Value
	}
	return ""
}

func itemKey(m map[string]types.AttributeValue) string {
	return str(m["PK"]) + "|" + str(m["SK"])
}

func (f *fakeAPI) GetItem(ctx context.Context, params *sdk.GetItemInput, optFns ...func(*sdk.Options)) (*sdk.GetItemOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return &sdk.GetItemOutput{Item: f.items[itemKey(params.Key)]}, nil
}

func (f *fakeAPI) PutItem(ctx context.Context, params *sdk.PutItemInput, optFns ...func(*sdk.Options)) (*sdk.PutItemOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	k := itemKey(params.Item)
	if cond := aws.ToString(params.ConditionExpression); cond == "attribute_not_exists(PK)" {
		if _, exists := f.items[k]; exists {
			return nil, &types.ConditionalCheckFailedException{Message: aws.String("exists")}
		}
	}
	f.items[k] = params.Item
	return &sdk.PutItemOutput{}, nil
}

func (f *fakeAPI) DeleteItem(ctx context.Context, params *sdk.DeleteItemInput, optFns ...func(*sdk.Options)) (*sdk.DeleteItemOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	k := itemKey(params.Key)
	if cond := aws.ToString(params.ConditionExpression); cond == "attribute_exists(PK)" {
		if _, exists := f.items[k]; !exists {
			return nil, &types.ConditionalCheckFailedException{Message: aws.String("missing")}
		}
	}
	delete(f.items, k)
	return &sdk.DeleteItemOutput{}, nil
}

func (f *fakeAPI) Query(ctx context.Context, params *sdk.QueryInput, optFns ...func(*sdk.Options)) (*sdk.QueryOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.queryCalls++
	if len(f.queryErrs) > 0 {
		err := f.queryErrs[0]
		f.queryErrs = f.queryErrs[1:]
		return nil, err
	}

	pkName := params.ExpressionAttributeNames["#pk"]
	want := str(params.ExpressionAttributeValues[":pk"])

	var matches []map[string]types.AttributeValue
	for _, item := range f.items {
		if str(item[pkName]) == want {
			matches = append(matches, item)
		}
	}
	sort.Slice(matches, func(i, j int) bool {
		return str(matches[i]["GSI1SK"]) < str(matches[j]["GSI1SK"])
	})

	start := 0
	if params.ExclusiveStartKey != nil {
		after := itemKey(params.ExclusiveStartKey)
		for i, m := range matches {
			if itemKey(m) == after {
				start = i + 1
				break
			}
		}
	}
	matches = matches[start:]

	out := &sdk.QueryOutput{}
	if params.Limit != nil && int(*params.Limit) < len(matches) {
		matches = matches[:*params.Limit]
		last := matches[len(matches)-1]
		out.LastEvaluatedKey = map[string]types.AttributeValue{"PK": last["PK"], "SK": last["SK"]}
	}
	out.Items = matches
	return out, nil
}
