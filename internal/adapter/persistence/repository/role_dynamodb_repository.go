package repository

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/pkg/errors"

	"github.com/Vinicios-DRH/iap-convencao-amazonica/internal/domain/entities"
	"github.com/Vinicios-DRH/iap-convencao-amazonica/internal/usecase/interfaces"
)

// batchGetLimit is the DynamoDB cap on keys per BatchGetItem call.
const batchGetLimit = 100

type roleItem struct {
	Name              string `dynamodbav:"name"`
	IsSuper           bool   `dynamodbav:"is_super"`
	CanAccessAdmin    bool   `dynamodbav:"can_access_admin"`
	CanReviewPayments bool   `dynamodbav:"can_review_payments"`
	CreatedAt         string `dynamodbav:"created_at"`
}

// RoleDynamoRepository persists Role entities keyed by name.
type RoleDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.IRoleRepository = (*RoleDynamoRepository)(nil)

func NewRoleDynamoRepository(ddb DynamoAPI, tableName string) *RoleDynamoRepository {
	return &RoleDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *RoleDynamoRepository) Create(ctx context.Context, role entities.Role) (entities.Role, error) {
	av, err := attributevalue.MarshalMap(toRoleItem(role))
	if err != nil {
		return entities.Role{}, errors.Wrap(err, "marshal role")
	}
	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:                aws.String(r.tableName),
		Item:                     av,
		ConditionExpression:      aws.String("attribute_not_exists(#name)"),
		ExpressionAttributeNames: map[string]string{"#name": "name"},
	})
	if err != nil {
		return entities.Role{}, conflictOr(err, "put role")
	}
	return role, nil
}

func (r *RoleDynamoRepository) GetByName(ctx context.Context, name string) (entities.Role, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.tableName),
		Key:            map[string]types.AttributeValue{"name": attrS(name)},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Role{}, errors.Wrap(err, "get role")
	}
	if len(out.Item) == 0 {
		return entities.Role{}, nil
	}
	return unmarshalRole(out.Item)
}

// GetMany returns the roles that exist among names; unknown names are skipped.
func (r *RoleDynamoRepository) GetMany(ctx context.Context, names []string) ([]entities.Role, error) {
	seen := make(map[string]bool, len(names))
	keys := make([]map[string]types.AttributeValue, 0, len(names))
	for _, n := range names {
		if n == "" || seen[n] {
			continue
		}
		seen[n] = true
		keys = append(keys, map[string]types.AttributeValue{"name": attrS(n)})
	}

	var out []entities.Role
	for start := 0; start < len(keys); start += batchGetLimit {
		end := start + batchGetLimit
		if end > len(keys) {
			end = len(keys)
		}
		pending := map[string]types.KeysAndAttributes{
			r.tableName: {Keys: keys[start:end]},
		}
		for len(pending) > 0 {
			res, err := r.ddb.BatchGetItem(ctx, &dynamodb.BatchGetItemInput{RequestItems: pending})
			if err != nil {
				return nil, errors.Wrap(err, "batch get roles")
			}
			for _, item := range res.Responses[r.tableName] {
				role, err := unmarshalRole(item)
				if err != nil {
					return nil, err
				}
				out = append(out, role)
			}
			pending = res.UnprocessedKeys
		}
	}
	return out, nil
}

func (r *RoleDynamoRepository) List(ctx context.Context) ([]entities.Role, error) {
	raw, err := scanAll(ctx, r.ddb, &dynamodb.ScanInput{TableName: aws.String(r.tableName)})
	if err != nil {
		return nil, err
	}
	out := make([]entities.Role, 0, len(raw))
	for _, item := range raw {
		role, err := unmarshalRole(item)
		if err != nil {
			return nil, err
		}
		out = append(out, role)
	}
	return out, nil
}

func unmarshalRole(item map[string]types.AttributeValue) (entities.Role, error) {
	var it roleItem
	if err := attributevalue.UnmarshalMap(item, &it); err != nil {
		return entities.Role{}, errors.Wrap(err, "unmarshal role")
	}
	return entities.Role{
		Name:              it.Name,
		IsSuper:           it.IsSuper,
		CanAccessAdmin:    it.CanAccessAdmin,
		CanReviewPayments: it.CanReviewPayments,
		CreatedAt:         parseTime(it.CreatedAt),
	}, nil
}

func toRoleItem(r entities.Role) roleItem {
	return roleItem{
		Name:              r.Name,
		IsSuper:           r.IsSuper,
		CanAccessAdmin:    r.CanAccessAdmin,
		CanReviewPayments: r.CanReviewPayments,
		CreatedAt:         formatTime(r.CreatedAt),
	}
}
