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

const UsersEmailIndex = "email-index"

type userItem struct {
	ID           string   `dynamodbav:"id"`
	Email        string   `dynamodbav:"email"`
	PasswordHash string   `dynamodbav:"password_hash"`
	IsActive     bool     `dynamodbav:"is_active"`
	Roles        []string `dynamodbav:"roles,omitempty"`
	CreatedAt    string   `dynamodbav:"created_at"`
	LastLogin    string   `dynamodbav:"last_login,omitempty"`
}

// UserDynamoRepository persists User entities in DynamoDB.
//
// Table requirements:
//   - users: PK id (string), GSI email-index (PK: email)
//   - uniques: email#<email> guard written alongside each user
type UserDynamoRepository struct {
	ddb          DynamoAPI
	tableName    string
	uniquesTable string
}

var _ interfaces.IUserRepository = (*UserDynamoRepository)(nil)

func NewUserDynamoRepository(ddb DynamoAPI, tableName, uniquesTable string) *UserDynamoRepository {
	return &UserDynamoRepository{ddb: ddb, tableName: tableName, uniquesTable: uniquesTable}
}

func (r *UserDynamoRepository) Create(ctx context.Context, u entities.User) (entities.User, error) {
	av, err := attributevalue.MarshalMap(toUserItem(u))
	if err != nil {
		return entities.User{}, errors.Wrap(err, "marshal user")
	}
	guard, err := attributevalue.MarshalMap(uniqueItem{PK: uniqueEmailPrefix + u.Email, Owner: u.ID})
	if err != nil {
		return entities.User{}, errors.Wrap(err, "marshal email guard")
	}

	_, err = r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			{Put: &types.Put{
				TableName:                aws.String(r.tableName),
				Item:                     av,
				ConditionExpression:      aws.String("attribute_not_exists(#id)"),
				ExpressionAttributeNames: map[string]string{"#id": "id"},
			}},
			{Put: &types.Put{
				TableName:                aws.String(r.uniquesTable),
				Item:                     guard,
				ConditionExpression:      aws.String("attribute_not_exists(#pk)"),
				ExpressionAttributeNames: map[string]string{"#pk": "pk"},
			}},
		},
	})
	if err != nil {
		return entities.User{}, conflictOr(err, "create user")
	}
	return u, nil
}

func (r *UserDynamoRepository) GetByID(ctx context.Context, id string) (entities.User, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.tableName),
		Key:            map[string]types.AttributeValue{"id": attrS(id)},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.User{}, errors.Wrap(err, "get user")
	}
	if len(out.Item) == 0 {
		return entities.User{}, nil
	}
	return unmarshalUser(out.Item)
}

func (r *UserDynamoRepository) GetByEmail(ctx context.Context, email string) (entities.User, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(UsersEmailIndex),
		KeyConditionExpression: aws.String("email = :email"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":email": attrS(email),
		},
		Limit: aws.Int32(1),
	})
	if err != nil {
		return entities.User{}, errors.Wrap(err, "query user by email")
	}
	if len(out.Items) == 0 {
		return entities.User{}, nil
	}
	return unmarshalUser(out.Items[0])
}

// Update rewrites activation, roles and last login. Email and password are immutable here.
func (r *UserDynamoRepository) Update(ctx context.Context, u entities.User) (entities.User, error) {
	roles, err := attributevalue.Marshal(u.Roles)
	if err != nil {
		return entities.User{}, errors.Wrap(err, "marshal roles")
	}
	var updated userItem
	err = updateByID(ctx, r.ddb, r.tableName, u.ID, map[string]types.AttributeValue{
		"is_active":  &types.AttributeValueMemberBOOL{Value: u.IsActive},
		"roles":      roles,
		"last_login": attrS(formatTimePtr(u.LastLogin)),
	}, nil, &updated)
	if err != nil {
		return entities.User{}, err
	}
	return fromUserItem(updated), nil
}

func (r *UserDynamoRepository) List(ctx context.Context) ([]entities.User, error) {
	raw, err := scanAll(ctx, r.ddb, &dynamodb.ScanInput{TableName: aws.String(r.tableName)})
	if err != nil {
		return nil, err
	}
	out := make([]entities.User, 0, len(raw))
	for _, item := range raw {
		u, err := unmarshalUser(item)
		if err != nil {
			return nil, err
		}
		out = append(out, u)
	}
	return out, nil
}

func unmarshalUser(item map[string]types.AttributeValue) (entities.User, error) {
	var it userItem
	if err := attributevalue.UnmarshalMap(item, &it); err != nil {
		return entities.User{}, errors.Wrap(err, "unmarshal user")
	}
	return fromUserItem(it), nil
}

func toUserItem(u entities.User) userItem {
	return userItem{
		ID:           u.ID,
		Email:        u.Email,
		PasswordHash: u.PasswordHash,
		IsActive:     u.IsActive,
		Roles:        u.Roles,
		CreatedAt:    formatTime(u.CreatedAt),
		LastLogin:    formatTimePtr(u.LastLogin),
	}
}

func fromUserItem(it userItem) entities.User {
	return entities.User{
		ID:           it.ID,
		Email:        it.Email,
		PasswordHash: it.PasswordHash,
		IsActive:     it.IsActive,
		Roles:        it.Roles,
		CreatedAt:    parseTime(it.CreatedAt),
		LastLogin:    parseTimePtr(it.LastLogin),
	}
}
