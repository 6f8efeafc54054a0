package services

import (
	"context"
	"fmt"
	"strings"

	"campuslink_server/models"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// fakeDynamo is an in-memory DynamoAPI. It understands the expression
// subset the services emit: equality key conditions, contains() filters,
// SET with if_not_exists, and ADD/DELETE on string sets.
type fakeDynamo struct {
	tables map[string]map[string]map[string]types.AttributeValue
	keys   map[string][]string

	failNext error // returned by the next write call when set
}

func newFakeDynamo() *fakeDynamo {
	return &fakeDynamo{
		tables: map[string]map[string]map[string]types.AttributeValue{},
		keys: map[string][]string{
			models.UsersTable:       {"userId"},
			models.ClubsTable:       {"clubId"},
			models.EventsTable:      {"eventId"},
			models.EngagementsTable: {"PK", "SK"},
		},
	}
}

func (f *fakeDynamo) table(name string) map[string]map[string]types.AttributeValue {
	if f.tables[name] == nil {
		f.tables[name] = map[string]map[string]types.AttributeValue{}
	}
	return f.tables[name]
}

func (f *fakeDynamo) keyString(tableName string, item map[string]types.AttributeValue) string {
	parts := make([]string, 0, 2)
	for _, attr := range f.keys[tableName] {
		if v, ok := item[attr].(*types.AttributeValueMemberS); ok {
			parts = append(parts, v.Value)
		}
	}
	return strings.Join(parts, "|")
}

func (f *fakeDynamo) takeFailure() error {
	err := f.failNext
	f.failNext = nil
	return err
}

func copyItem(item map[string]types.AttributeValue) map[string]types.AttributeValue {
	out := make(map[string]types.AttributeValue, len(item))
	for k, v := range item {
		out[k] = v
	}
	return out
}

func (f *fakeDynamo) GetItem(_ context.Context, tableName string, key map[string]types.AttributeValue) (map[string]types.AttributeValue, error) {
	item, ok := f.table(tableName)[f.keyString(tableName, key)]
	if !ok {
		return nil, ErrItemNotFound
	}
	return copyItem(item), nil
}

func (f *fakeDynamo) PutItem(_ context.Context, tableName string, item interface{}) error {
	if err := f.takeFailure(); err != nil {
		return err
	}
	marshaled, err := attributevalue.MarshalMap(item)
	if err != nil {
		return err
	}
	f.table(tableName)[f.keyString(tableName, marshaled)] = marshaled
	return nil
}

func (f *fakeDynamo) DeleteItem(_ context.Context, tableName string, key map[string]types.AttributeValue) error {
	if err := f.takeFailure(); err != nil {
		return err
	}
	delete(f.table(tableName), f.keyString(tableName, key))
	return nil
}

func (f *fakeDynamo) UpdateItem(_ context.Context, tableName, updateExpression string, key map[string]types.AttributeValue, values map[string]types.AttributeValue, names map[string]string) (map[string]types.AttributeValue, error) {
	if err := f.takeFailure(); err != nil {
		return nil, err
	}

	ks := f.keyString(tableName, key)
	item, ok := f.table(tableName)[ks]
	if !ok {
		item = copyItem(key)
	}

	verb, rest, _ := strings.Cut(updateExpression, " ")
	switch verb {
	case "SET":
		for _, assignment := range splitAssignments(rest) {
			lhs, rhs, ok := strings.Cut(assignment, "=")
			if !ok {
				return nil, fmt.Errorf("bad assignment %q", assignment)
			}
			attr := resolveName(strings.TrimSpace(lhs), names)
			item[attr] = resolveOperand(strings.TrimSpace(rhs), item, values, names)
		}
	case "ADD", "DELETE":
		fields := strings.Fields(rest)
		if len(fields) != 2 {
			return nil, fmt.Errorf("bad %s expression %q", verb, rest)
		}
		attr := resolveName(fields[0], names)
		operand, _ := values[fields[1]].(*types.AttributeValueMemberSS)
		if operand == nil {
			return nil, fmt.Errorf("%s expects a string set operand", verb)
		}
		current := map[string]bool{}
		if existing, ok := item[attr].(*types.AttributeValueMemberSS); ok {
			for _, v := range existing.Value {
				current[v] = true
			}
		}
		for _, v := range operand.Value {
			if verb == "ADD" {
				current[v] = true
			} else {
				delete(current, v)
			}
		}
		if len(current) == 0 {
			delete(item, attr)
		} else {
			merged := make([]string, 0, len(current))
			for v := range current {
				merged = append(merged, v)
			}
			item[attr] = &types.AttributeValueMemberSS{Value: merged}
		}
	default:
		return nil, fmt.Errorf("unsupported update verb %q", verb)
	}

	f.table(tableName)[ks] = item
	return copyItem(item), nil
}

func (f *fakeDynamo) QueryItems(_ context.Context, tableName, keyCondition string, values map[string]types.AttributeValue, names map[string]string, _ int32) ([]map[string]types.AttributeValue, error) {
	return f.match(tableName, keyCondition, values, names)
}

func (f *fakeDynamo) QueryItemsWithIndex(_ context.Context, tableName, _ string, keyCondition string, values map[string]types.AttributeValue, names map[string]string, _ int32) ([]map[string]types.AttributeValue, error) {
	return f.match(tableName, keyCondition, values, names)
}

func (f *fakeDynamo) ScanItems(_ context.Context, tableName, filterExpression string, values map[string]types.AttributeValue, names map[string]string) ([]map[string]types.AttributeValue, error) {
	if filterExpression == "" {
		var items []map[string]types.AttributeValue
		for _, item := range f.table(tableName) {
			items = append(items, copyItem(item))
		}
		return items, nil
	}
	if inner, ok := strings.CutPrefix(filterExpression, "contains("); ok {
		attr, placeholder, _ := strings.Cut(strings.TrimSuffix(inner, ")"), ",")
		attr = resolveName(strings.TrimSpace(attr), names)
		want, _ := values[strings.TrimSpace(placeholder)].(*types.AttributeValueMemberS)
		var items []map[string]types.AttributeValue
		for _, item := range f.table(tableName) {
			if set, ok := item[attr].(*types.AttributeValueMemberSS); ok && want != nil {
				for _, v := range set.Value {
					if v == want.Value {
						items = append(items, copyItem(item))
						break
					}
				}
			}
		}
		return items, nil
	}
	return f.match(tableName, filterExpression, values, names)
}

func (f *fakeDynamo) BatchWriteItems(_ context.Context, tableName string, writeRequests []types.WriteRequest) error {
	if err := f.takeFailure(); err != nil {
		return err
	}
	for _, request := range writeRequests {
		if request.DeleteRequest != nil {
			delete(f.table(tableName), f.keyString(tableName, request.DeleteRequest.Key))
		}
		if request.PutRequest != nil {
			f.table(tableName)[f.keyString(tableName, request.PutRequest.Item)] = request.PutRequest.Item
		}
	}
	return nil
}

// match filters a table by a single "attr = :placeholder" condition.
func (f *fakeDynamo) match(tableName, condition string, values map[string]types.AttributeValue, names map[string]string) ([]map[string]types.AttributeValue, error) {
	lhs, rhs, ok := strings.Cut(condition, "=")
	if !ok {
		return nil, fmt.Errorf("unsupported condition %q", condition)
	}
	attr := resolveName(strings.TrimSpace(lhs), names)
	want, _ := values[strings.TrimSpace(rhs)].(*types.AttributeValueMemberS)
	if want == nil {
		return nil, fmt.Errorf("missing value for condition %q", condition)
	}

	var items []map[string]types.AttributeValue
	for _, item := range f.table(tableName) {
		if have, ok := item[attr].(*types.AttributeValueMemberS); ok && have.Value == want.Value {
			items = append(items, copyItem(item))
		}
	}
	return items, nil
}

func resolveName(name string, names map[string]string) string {
	if strings.HasPrefix(name, "#") {
		if resolved, ok := names[name]; ok {
			return resolved
		}
	}
	return name
}

func resolveOperand(operand string, item, values map[string]types.AttributeValue, names map[string]string) types.AttributeValue {
	if inner, ok := strings.CutPrefix(operand, "if_not_exists("); ok {
		attr, placeholder, _ := strings.Cut(strings.TrimSuffix(inner, ")"), ",")
		attr = resolveName(strings.TrimSpace(attr), names)
		if existing, ok := item[attr]; ok {
			return existing
		}
		return values[strings.TrimSpace(placeholder)]
	}
	return values[operand]
}

// splitAssignments splits a SET clause on commas outside parentheses, so
// if_not_exists(createdAt, :now) stays in one piece.
func splitAssignments(clause string) []string {
	var parts []string
	depth, start := 0, 0
	for i, r := range clause {
		switch r {
		case '(':
			depth++
		case ')':
			depth--
		case ',':
			if depth == 0 {
				parts = append(parts, clause[start:i])
				start = i + 1
			}
		}
	}
	parts = append(parts, clause[start:])
	return parts
}
