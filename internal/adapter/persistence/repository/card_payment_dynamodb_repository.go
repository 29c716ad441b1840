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

const PaymentsRegistrationIDIndex = "registration_id-index"

type cardPaymentItem struct {
	ID             string                 `dynamodbav:"id"`
	RegistrationID string                 `dynamodbav:"registration_id"`
	AmountCents    int64                  `dynamodbav:"amount_cents"`
	Installments   int                    `dynamodbav:"installments"`
	Date           string                 `dynamodbav:"date"`
	Status         string                 `dynamodbav:"status"`
	ProviderStatus string                 `dynamodbav:"provider_status,omitempty"`
	MPPayload      map[string]interface{} `dynamodbav:"mp_payload,omitempty"`
	MPPayloadRaw   string                 `dynamodbav:"mp_payload_raw,omitempty"`
}

// CardPaymentDynamoRepository persists CardPayment entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: registration_id-index (PK: registration_id)

type CardPaymentDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.ICardPaymentRepository = (*CardPaymentDynamoRepository)(nil)

func NewCardPaymentDynamoRepository(ddb DynamoAPI, tableName string) *CardPaymentDynamoRepository {
	return &CardPaymentDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *CardPaymentDynamoRepository) Create(ctx context.Context, p entities.CardPayment) (entities.CardPayment, error) {
	av, err := attributevalue.MarshalMap(toCardPaymentItem(p))
	if err != nil {
		return entities.CardPayment{}, errors.Wrap(err, "marshal card payment")
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.CardPayment{}, conflictOr(err, "put card payment")
	}
	return p, nil
}

func (r *CardPaymentDynamoRepository) GetByID(ctx context.Context, id string) (entities.CardPayment, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.CardPayment{}, errors.Wrap(err, "get card payment")
	}
	if len(out.Item) == 0 {
		return entities.CardPayment{}, nil
	}

	var it cardPaymentItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.CardPayment{}, errors.Wrap(err, "unmarshal card payment")
	}
	return fromCardPaymentItem(it), nil
}

func (r *CardPaymentDynamoRepository) ListByRegistrationID(ctx context.Context, registrationID string) ([]entities.CardPayment, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(PaymentsRegistrationIDIndex),
		KeyConditionExpression: aws.String("registration_id = :rid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":rid": &types.AttributeValueMemberS{Value: registrationID},
		},
	})
	if err != nil {
		return nil, errors.Wrap(err, "query card payments")
	}

	items := make([]entities.CardPayment, 0, len(out.Items))
	for _, raw := range out.Items {
		var it cardPaymentItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, errors.Wrap(err, "unmarshal card payment")
		}
		items = append(items, fromCardPaymentItem(it))
	}
	return items, nil
}

func toCardPaymentItem(p entities.CardPayment) cardPaymentItem {
	return cardPaymentItem{
		ID:             p.ID,
		RegistrationID: p.RegistrationID,
		AmountCents:    p.AmountCents,
		Installments:   p.Installments,
		Date:           formatTime(p.Date),
		Status:         string(p.Status),
		ProviderStatus: p.ProviderStatus,
		MPPayload:      p.MPPayload,
		MPPayloadRaw:   string(p.MPPayloadRaw),
	}
}

func fromCardPaymentItem(it cardPaymentItem) entities.CardPayment {
	return entities.CardPayment{
		ID:             it.ID,
		RegistrationID: it.RegistrationID,
		AmountCents:    it.AmountCents,
		Installments:   it.Installments,
		Date:           parseTime(it.Date),
		Status:         entities.PaymentStatus(it.Status),
		ProviderStatus: it.ProviderStatus,
		MPPayload:      it.MPPayload,
		MPPayloadRaw:   []byte(it.MPPayloadRaw),
	}
}
