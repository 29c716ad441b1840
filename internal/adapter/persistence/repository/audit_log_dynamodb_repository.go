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

const (
	AuditLogsKindIndex = "kind-created_at-index"
	auditKind          = "audit"
)

// auditItem carries a constant kind so a single GSI partition orders every entry by created_at.
type auditItem struct {
	ID          string `dynamodbav:"id"`
	Kind        string `dynamodbav:"kind"`
	ActorUserID string `dynamodbav:"actor_user_id,omitempty"`
	Action      string `dynamodbav:"action"`
	Details     string `dynamodbav:"details,omitempty"`
	CreatedAt   string `dynamodbav:"created_at"`
}

type AuditLogDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.IAuditLogRepository = (*AuditLogDynamoRepository)(nil)

func NewAuditLogDynamoRepository(ddb DynamoAPI, tableName string) *AuditLogDynamoRepository {
	return &AuditLogDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *AuditLogDynamoRepository) Create(ctx context.Context, l entities.AuditLog) (entities.AuditLog, error) {
	av, err := attributevalue.MarshalMap(auditItem{
		ID:          l.ID,
		Kind:        auditKind,
		ActorUserID: l.ActorUserID,
		Action:      l.Action,
		Details:     l.Details,
		CreatedAt:   formatTime(l.CreatedAt),
	})
	if err != nil {
		return entities.AuditLog{}, errors.Wrap(err, "marshal audit log")
	}
	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:                aws.String(r.tableName),
		Item:                     av,
		ConditionExpression:      aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{"#id": "id"},
	})
	if err != nil {
		return entities.AuditLog{}, conflictOr(err, "put audit log")
	}
	return l, nil
}

func (r *AuditLogDynamoRepository) List(ctx context.Context, limit int) ([]entities.AuditLog, error) {
	if limit <= 0 {
		return nil, nil
	}
	in := &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(AuditLogsKindIndex),
		KeyConditionExpression: aws.String("#kind = :kind"),
		ExpressionAttributeNames: map[string]string{
			"#kind": "kind",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":kind": attrS(auditKind),
		},
		ScanIndexForward: aws.Bool(false),
		Limit:            aws.Int32(int32(limit)),
	}

	out := make([]entities.AuditLog, 0, limit)
	for len(out) < limit {
		res, err := r.ddb.Query(ctx, in)
		if err != nil {
			return nil, errors.Wrap(err, "query audit logs")
		}
		for _, item := range res.Items {
			var it auditItem
			if err := attributevalue.UnmarshalMap(item, &it); err != nil {
				return nil, errors.Wrap(err, "unmarshal audit log")
			}
			out = append(out, entities.AuditLog{
				ID:          it.ID,
				ActorUserID: it.ActorUserID,
				Action:      it.Action,
				Details:     it.Details,
				CreatedAt:   parseTime(it.CreatedAt),
			})
			if len(out) == limit {
				break
			}
		}
		if len(res.LastEvaluatedKey) == 0 {
			break
		}
		in.ExclusiveStartKey = res.LastEvaluatedKey
	}
	return out, nil
}
