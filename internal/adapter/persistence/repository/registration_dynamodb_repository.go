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

const RegistrationsUserIDIndex = "user_id-index"

type registrationItem struct {
	ID               string `dynamodbav:"id"`
	UserID           string `dynamodbav:"user_id"`
	FullName         string `dynamodbav:"full_name"`
	CPF              string `dynamodbav:"cpf"`
	Phone            string `dynamodbav:"phone"`
	IAPLocal         string `dynamodbav:"iap_local"`
	Transport        string `dynamodbav:"transport"`
	LotName          string `dynamodbav:"lot_name"`
	LotValueCents    int64  `dynamodbav:"lot_value_cents"`
	PaymentType      string `dynamodbav:"payment_type"`
	Installments     int    `dynamodbav:"installments"`
	Status           string `dynamodbav:"status"`
	StatusMessage    string `dynamodbav:"status_message,omitempty"`
	ProofFilePath    string `dynamodbav:"proof_file_path,omitempty"`
	ProofUploadedAt  string `dynamodbav:"proof_uploaded_at,omitempty"`
	ReviewedByUserID string `dynamodbav:"reviewed_by_user_id,omitempty"`
	ReviewedAt       string `dynamodbav:"reviewed_at,omitempty"`
	ReviewNote       string `dynamodbav:"review_note,omitempty"`
	CreatedAt        string `dynamodbav:"created_at"`
	UpdatedAt        string `dynamodbav:"updated_at"`
}

// RegistrationDynamoRepository persists Registration entities in DynamoDB.
//
// Table requirements:
//   - registrations: PK id (string), GSI user_id-index (PK: user_id)
//   - uniques: PK pk (string); holds user#<id> and cpf#<digits> guards
type RegistrationDynamoRepository struct {
	ddb          DynamoAPI
	tableName    string
	uniquesTable string
}

var _ interfaces.IRegistrationRepository = (*RegistrationDynamoRepository)(nil)

func NewRegistrationDynamoRepository(ddb DynamoAPI, tableName, uniquesTable string) *RegistrationDynamoRepository {
	return &RegistrationDynamoRepository{ddb: ddb, tableName: tableName, uniquesTable: uniquesTable}
}

// Create writes the registration and both uniqueness guards in one transaction.
func (r *RegistrationDynamoRepository) Create(ctx context.Context, reg entities.Registration) (entities.Registration, error) {
	av, err := attributevalue.MarshalMap(toRegistrationItem(reg))
	if err != nil {
		return entities.Registration{}, errors.Wrap(err, "marshal registration")
	}
	userGuard, err := attributevalue.MarshalMap(uniqueItem{PK: uniqueUserPrefix + reg.UserID, Owner: reg.ID})
	if err != nil {
		return entities.Registration{}, errors.Wrap(err, "marshal user guard")
	}
	cpfGuard, err := attributevalue.MarshalMap(uniqueItem{PK: uniqueCPFPrefix + reg.CPF, Owner: reg.ID})
	if err != nil {
		return entities.Registration{}, errors.Wrap(err, "marshal cpf guard")
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
				Item:                     userGuard,
				ConditionExpression:      aws.String("attribute_not_exists(#pk)"),
				ExpressionAttributeNames: map[string]string{"#pk": "pk"},
			}},
			{Put: &types.Put{
				TableName:                aws.String(r.uniquesTable),
				Item:                     cpfGuard,
				ConditionExpression:      aws.String("attribute_not_exists(#pk)"),
				ExpressionAttributeNames: map[string]string{"#pk": "pk"},
			}},
		},
	})
	if err != nil {
		return entities.Registration{}, conflictOr(err, "create registration")
	}
	return reg, nil
}

func (r *RegistrationDynamoRepository) GetByID(ctx context.Context, id string) (entities.Registration, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": attrS(id),
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Registration{}, errors.Wrap(err, "get registration")
	}
	if len(out.Item) == 0 {
		return entities.Registration{}, nil
	}
	return unmarshalRegistration(out.Item)
}

func (r *RegistrationDynamoRepository) GetByUserID(ctx context.Context, userID string) (entities.Registration, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(RegistrationsUserIDIndex),
		KeyConditionExpression: aws.String("user_id = :uid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":uid": attrS(userID),
		},
		Limit: aws.Int32(1),
	})
	if err != nil {
		return entities.Registration{}, errors.Wrap(err, "query registration by user")
	}
	if len(out.Items) == 0 {
		return entities.Registration{}, nil
	}
	return unmarshalRegistration(out.Items[0])
}

func (r *RegistrationDynamoRepository) CPFTaken(ctx context.Context, cpf string) (bool, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.uniquesTable),
		Key: map[string]types.AttributeValue{
			"pk": attrS(uniqueCPFPrefix + cpf),
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return false, errors.Wrap(err, "get cpf guard")
	}
	return len(out.Item) > 0, nil
}

// Update rewrites the review and proof fields; identity fields are immutable.
// The write only applies while the stored status is still from.
func (r *RegistrationDynamoRepository) Update(ctx context.Context, reg entities.Registration, from entities.RegistrationStatus) (entities.Registration, error) {
	it := toRegistrationItem(reg)
	var updated registrationItem
	err := updateByID(ctx, r.ddb, r.tableName, reg.ID, map[string]types.AttributeValue{
		"status":              attrS(it.Status),
		"status_message":      attrS(it.StatusMessage),
		"proof_file_path":     attrS(it.ProofFilePath),
		"proof_uploaded_at":   attrS(it.ProofUploadedAt),
		"reviewed_by_user_id": attrS(it.ReviewedByUserID),
		"reviewed_at":         attrS(it.ReviewedAt),
		"review_note":         attrS(it.ReviewNote),
		"updated_at":          attrS(it.UpdatedAt),
	}, map[string]types.AttributeValue{
		"status": attrS(string(from)),
	}, &updated)
	if err != nil {
		return entities.Registration{}, err
	}
	return fromRegistrationItem(updated), nil
}

func (r *RegistrationDynamoRepository) List(ctx context.Context) ([]entities.Registration, error) {
	raw, err := scanAll(ctx, r.ddb, &dynamodb.ScanInput{TableName: aws.String(r.tableName)})
	if err != nil {
		return nil, err
	}
	out := make([]entities.Registration, 0, len(raw))
	for _, item := range raw {
		reg, err := unmarshalRegistration(item)
		if err != nil {
			return nil, err
		}
		out = append(out, reg)
	}
	return out, nil
}

func (r *RegistrationDynamoRepository) Count(ctx context.Context) (int, error) {
	return countAll(ctx, r.ddb, r.tableName)
}

func unmarshalRegistration(item map[string]types.AttributeValue) (entities.Registration, error) {
	var it registrationItem
	if err := attributevalue.UnmarshalMap(item, &it); err != nil {
		return entities.Registration{}, errors.Wrap(err, "unmarshal registration")
	}
	return fromRegistrationItem(it), nil
}

func toRegistrationItem(r entities.Registration) registrationItem {
	return registrationItem{
		ID:               r.ID,
		UserID:           r.UserID,
		FullName:         r.FullName,
		CPF:              r.CPF,
		Phone:            r.Phone,
		IAPLocal:         r.IAPLocal,
		Transport:        string(r.Transport),
		LotName:          r.LotName,
		LotValueCents:    r.LotValueCents,
		PaymentType:      string(r.PaymentType),
		Installments:     r.Installments,
		Status:           string(r.Status),
		StatusMessage:    r.StatusMessage,
		ProofFilePath:    r.ProofFilePath,
		ProofUploadedAt:  formatTimePtr(r.ProofUploadedAt),
		ReviewedByUserID: r.ReviewedByUserID,
		ReviewedAt:       formatTimePtr(r.ReviewedAt),
		ReviewNote:       r.ReviewNote,
		CreatedAt:        formatTime(r.CreatedAt),
		UpdatedAt:        formatTime(r.UpdatedAt),
	}
}

func fromRegistrationItem(it registrationItem) entities.Registration {
	return entities.Registration{
		ID:               it.ID,
		UserID:           it.UserID,
		FullName:         it.FullName,
		CPF:              it.CPF,
		Phone:            it.Phone,
		IAPLocal:         it.IAPLocal,
		Transport:        entities.Transport(it.Transport),
		LotName:          it.LotName,
		LotValueCents:    it.LotValueCents,
		PaymentType:      entities.PaymentType(it.PaymentType),
		Installments:     it.Installments,
		Status:           entities.RegistrationStatus(it.Status),
		StatusMessage:    it.StatusMessage,
		ProofFilePath:    it.ProofFilePath,
		ProofUploadedAt:  parseTimePtr(it.ProofUploadedAt),
		ReviewedByUserID: it.ReviewedByUserID,
		ReviewedAt:       parseTimePtr(it.ReviewedAt),
		ReviewNote:       it.ReviewNote,
		CreatedAt:        parseTime(it.CreatedAt),
		UpdatedAt:        parseTime(it.UpdatedAt),
	}
}
