package repository

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/pkg/errors"

	"github.com/Vinicios-DRH/iap-convencao-amazonica/internal/usecase/interfaces"
)

// DynamoAPI is the subset of *dynamodb.Client used by the repositories.
type DynamoAPI interface {
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	BatchGetItem(ctx context.Context, params *dynamodb.BatchGetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.BatchGetItemOutput, error)
	Query(ctx context.Context, params *dynamodb.QueryInput, optFns ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error)
	UpdateItem(ctx context.Context, params *dynamodb.UpdateItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error)
	Scan(ctx context.Context, params *dynamodb.ScanInput, optFns ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error)
	TransactWriteItems(ctx context.Context, params *dynamodb.TransactWriteItemsInput, optFns ...func(*dynamodb.Options)) (*dynamodb.TransactWriteItemsOutput, error)
}

var _ DynamoAPI = (*dynamodb.Client)(nil)

// Unique guard keys stored in the uniques table.
const (
	uniqueUserPrefix  = "user#"
	uniqueCPFPrefix   = "cpf#"
	uniqueEmailPrefix = "email#"
)

type uniqueItem struct {
	PK    string `dynamodbav:"pk"`
	Owner string `dynamodbav:"owner"`
}

// scanAll walks every page of a scan.
func scanAll(ctx context.Context, ddb DynamoAPI, in *dynamodb.ScanInput) ([]map[string]types.AttributeValue, error) {
	var items []map[string]types.AttributeValue
	for {
		out, err := ddb.Scan(ctx, in)
		if err != nil {
			return nil, errors.Wrapf(err, "scan %s", stringValue(in.TableName))
		}
		items = append(items, out.Items...)
		if len(out.LastEvaluatedKey) == 0 {
			return items, nil
		}
		in.ExclusiveStartKey = out.LastEvaluatedKey
	}
}

// countAll sums a COUNT scan across pages.
func countAll(ctx context.Context, ddb DynamoAPI, table string) (int, error) {
	in := &dynamodb.ScanInput{TableName: &table, Select: types.SelectCount}
	total := 0
	for {
		out, err := ddb.Scan(ctx, in)
		if err != nil {
			return 0, errors.Wrapf(err, "count %s", table)
		}
		total += int(out.Count)
		if len(out.LastEvaluatedKey) == 0 {
			return total, nil
		}
		in.ExclusiveStartKey = out.LastEvaluatedKey
	}
}

// conflictOr maps failed condition checks to interfaces.ErrConflict.
func conflictOr(err error, msg string) error {
	var cfe *types.ConditionalCheckFailedException
	var tce *types.TransactionCanceledException
	if errors.As(err, &cfe) || errors.As(err, &tce) {
		return interfaces.ErrConflict
	}
	return errors.Wrap(err, msg)
}

// updateByID applies a SET expression to an existing item and unmarshals the new image into out.
// updateByID SETs the given attributes on an existing item. Every attribute in
// where must still hold its value, otherwise the write fails with ErrStatusChanged.
func updateByID(ctx context.Context, ddb DynamoAPI, table, id string, set, where map[string]types.AttributeValue, out interface{}) error {
	names := map[string]string{"#id": "id"}
	values := make(map[string]types.AttributeValue, len(set)+len(where))
	clauses := make([]string, 0, len(set))
	for _, attr := range sortedKeys(set) {
		names["#"+attr] = attr
		values[":"+attr] = set[attr]
		clauses = append(clauses, "#"+attr+" = :"+attr)
	}
	conds := []string{"attribute_exists(#id)"}
	for _, attr := range sortedKeys(where) {
		names["#"+attr] = attr
		values[":expected_"+attr] = where[attr]
		conds = append(conds, "#"+attr+" = :expected_"+attr)
	}

	res, err := ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(table),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression:                 aws.String(strings.Join(conds, " AND ")),
		UpdateExpression:                    aws.String("SET " + strings.Join(clauses, ", ")),
		ExpressionAttributeNames:            names,
		ExpressionAttributeValues:           values,
		ReturnValues:                        types.ReturnValueAllNew,
		ReturnValuesOnConditionCheckFailure: types.ReturnValuesOnConditionCheckFailureAllOld,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			if len(cfe.Item) > 0 {
				return interfaces.ErrStatusChanged
			}
			return interfaces.ErrNotFound
		}
		return errors.Wrapf(err, "update %s", table)
	}
	return errors.Wrap(attributevalue.UnmarshalMap(res.Attributes, out), "unmarshal updated item")
}

func sortedKeys(m map[string]types.AttributeValue) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func attrS(v string) types.AttributeValue {
	return &types.AttributeValueMemberS{Value: v}
}

func stringValue(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339Nano)
}

func parseTime(s string) time.Time {
	t, _ := time.Parse(time.RFC3339Nano, s)
	return t
}

func formatTimePtr(t *time.Time) string {
	if t == nil {
		return ""
	}
	return formatTime(*t)
}

func parseTimePtr(s string) *time.Time {
	if s == "" {
		return nil
	}
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return nil
	}
	return &t
}
