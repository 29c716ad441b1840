package repository

import (
	"context"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	pkgerrors "github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Vinicios-DRH/iap-convencao-amazonica/internal/domain/entities"
	"github.com/Vinicios-DRH/iap-convencao-amazonica/internal/usecase/interfaces"
)

type fakeDynamo struct {
	put      func(*dynamodb.PutItemInput) (*dynamodb.PutItemOutput, error)
	get      func(*dynamodb.GetItemInput) (*dynamodb.GetItemOutput, error)
	batchGet func(*dynamodb.BatchGetItemInput) (*dynamodb.BatchGetItemOutput, error)
	query    func(*dynamodb.QueryInput) (*dynamodb.QueryOutput, error)
	update   func(*dynamodb.UpdateItemInput) (*dynamodb.UpdateItemOutput, error)
	scan     func(*dynamodb.ScanInput) (*dynamodb.ScanOutput, error)
	transact func(*dynamodb.TransactWriteItemsInput) (*dynamodb.TransactWriteItemsOutput, error)
}

func (f *fakeDynamo) PutItem(_ context.Context, in *dynamodb.PutItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
	return f.put(in)
}

func (f *fakeDynamo) GetItem(_ context.Context, in *dynamodb.GetItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error) {
	return f.get(in)
}

func (f *fakeDynamo) BatchGetItem(_ context.Context, in *dynamodb.BatchGetItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.BatchGetItemOutput, error) {
	return f.batchGet(in)
}

func (f *fakeDynamo) Query(_ context.Context, in *dynamodb.QueryInput, _ ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error) {
	return f.query(in)
}

func (f *fakeDynamo) UpdateItem(_ context.Context, in *dynamodb.UpdateItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error) {
	return f.update(in)
}

func (f *fakeDynamo) Scan(_ context.Context, in *dynamodb.ScanInput, _ ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error) {
	return f.scan(in)
}

func (f *fakeDynamo) TransactWriteItems(_ context.Context, in *dynamodb.TransactWriteItemsInput, _ ...func(*dynamodb.Options)) (*dynamodb.TransactWriteItemsOutput, error) {
	return f.transact(in)
}

func mustMarshal(t *testing.T, v interface{}) map[string]types.AttributeValue {
	t.Helper()
	av, err := attributevalue.MarshalMap(v)
	require.NoError(t, err)
	return av
}

func sampleRegistration() entities.Registration {
	now := time.Date(2025, 11, 3, 14, 0, 0, 0, time.UTC)
	return entities.Registration{
		ID:            "r1",
		UserID:        "u1",
		FullName:      "Ana Souza",
		CPF:           "52998224725",
		Phone:         "92999990000",
		IAPLocal:      "Central",
		Transport:     entities.TransportOnibus,
		LotName:       "1_LOTE",
		LotValueCents: 18009,
		PaymentType:   entities.PaymentTypePix,
		Installments:  2,
		Status:        entities.RegistrationStatusAguardando,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

func TestRegistrationRepository_CreateWritesGuards(t *testing.T) {
	var got *dynamodb.TransactWriteItemsInput
	ddb := &fakeDynamo{transact: func(in *dynamodb.TransactWriteItemsInput) (*dynamodb.TransactWriteItemsOutput, error) {
		got = in
		return &dynamodb.TransactWriteItemsOutput{}, nil
	}}
	repo := NewRegistrationDynamoRepository(ddb, "registrations", "uniques")

	_, err := repo.Create(context.Background(), sampleRegistration())
	require.NoError(t, err)
	require.Len(t, got.TransactItems, 3)

	assert.Equal(t, "registrations", aws.ToString(got.TransactItems[0].Put.TableName))
	pks := []string{}
	for _, ti := range got.TransactItems[1:] {
		assert.Equal(t, "uniques", aws.ToString(ti.Put.TableName))
		assert.Equal(t, "attribute_not_exists(#pk)", aws.ToString(ti.Put.ConditionExpression))
		pks = append(pks, ti.Put.Item["pk"].(*types.AttributeValueMemberS).Value)
	}
	assert.Equal(t, []string{"user#u1", "cpf#52998224725"}, pks)
}

func TestRegistrationRepository_CreateConflict(t *testing.T) {
	ddb := &fakeDynamo{transact: func(*dynamodb.TransactWriteItemsInput) (*dynamodb.TransactWriteItemsOutput, error) {
		return nil, &types.TransactionCanceledException{Message: aws.String("ConditionalCheckFailed")}
	}}
	repo := NewRegistrationDynamoRepository(ddb, "registrations", "uniques")

	_, err := repo.Create(context.Background(), sampleRegistration())
	assert.ErrorIs(t, err, interfaces.ErrConflict)
}

func TestRegistrationRepository_GetAndQuery(t *testing.T) {
	reg := sampleRegistration()
	reviewed := reg.CreatedAt.Add(time.Hour)
	reg.ReviewedAt = &reviewed
	item := mustMarshal(t, toRegistrationItem(reg))

	ddb := &fakeDynamo{
		get: func(in *dynamodb.GetItemInput) (*dynamodb.GetItemOutput, error) {
			if in.Key["id"].(*types.AttributeValueMemberS).Value == "missing" {
				return &dynamodb.GetItemOutput{}, nil
			}
			return &dynamodb.GetItemOutput{Item: item}, nil
		},
		query: func(in *dynamodb.QueryInput) (*dynamodb.QueryOutput, error) {
			assert.Equal(t, RegistrationsUserIDIndex, aws.ToString(in.IndexName))
			return &dynamodb.QueryOutput{Items: []map[string]types.AttributeValue{item}}, nil
		},
	}
	repo := NewRegistrationDynamoRepository(ddb, "registrations", "uniques")

	got, err := repo.GetByID(context.Background(), "r1")
	require.NoError(t, err)
	assert.Equal(t, reg.CPF, got.CPF)
	assert.Equal(t, int64(18009), got.LotValueCents)
	require.NotNil(t, got.ReviewedAt)
	assert.True(t, got.ReviewedAt.Equal(reviewed))
	assert.Nil(t, got.ProofUploadedAt)

	missing, err := repo.GetByID(context.Background(), "missing")
	require.NoError(t, err)
	assert.Empty(t, missing.ID)

	byUser, err := repo.GetByUserID(context.Background(), "u1")
	require.NoError(t, err)
	assert.Equal(t, "r1", byUser.ID)
}

func TestRegistrationRepository_CPFTaken(t *testing.T) {
	ddb := &fakeDynamo{get: func(in *dynamodb.GetItemInput) (*dynamodb.GetItemOutput, error) {
		assert.Equal(t, "uniques", aws.ToString(in.TableName))
		if in.Key["pk"].(*types.AttributeValueMemberS).Value == "cpf#111" {
			return &dynamodb.GetItemOutput{Item: map[string]types.AttributeValue{"pk": attrS("cpf#111")}}, nil
		}
		return &dynamodb.GetItemOutput{}, nil
	}}
	repo := NewRegistrationDynamoRepository(ddb, "registrations", "uniques")

	taken, err := repo.CPFTaken(context.Background(), "111")
	require.NoError(t, err)
	assert.True(t, taken)

	taken, err = repo.CPFTaken(context.Background(), "222")
	require.NoError(t, err)
	assert.False(t, taken)
}

func TestRegistrationRepository_Update(t *testing.T) {
	reg := sampleRegistration()
	reg.Status = entities.RegistrationStatusConfirmada

	t.Run("builds set expression guarded by the previous status", func(t *testing.T) {
		ddb := &fakeDynamo{update: func(in *dynamodb.UpdateItemInput) (*dynamodb.UpdateItemOutput, error) {
			assert.Equal(t, "attribute_exists(#id) AND #status = :expected_status", aws.ToString(in.ConditionExpression))
			assert.Contains(t, aws.ToString(in.UpdateExpression), "#status = :status")
			assert.Equal(t, "CONFIRMADA", in.ExpressionAttributeValues[":status"].(*types.AttributeValueMemberS).Value)
			assert.Equal(t, "AGUARDANDO_CONFIRMACAO", in.ExpressionAttributeValues[":expected_status"].(*types.AttributeValueMemberS).Value)
			assert.Equal(t, types.ReturnValuesOnConditionCheckFailureAllOld, in.ReturnValuesOnConditionCheckFailure)
			return &dynamodb.UpdateItemOutput{Attributes: mustMarshal(t, toRegistrationItem(reg))}, nil
		}}
		repo := NewRegistrationDynamoRepository(ddb, "registrations", "uniques")

		got, err := repo.Update(context.Background(), reg, entities.RegistrationStatusAguardando)
		require.NoError(t, err)
		assert.Equal(t, entities.RegistrationStatusConfirmada, got.Status)
	})

	t.Run("status changed by another writer", func(t *testing.T) {
		stored := sampleRegistration()
		stored.Status = entities.RegistrationStatusRecusada
		ddb := &fakeDynamo{update: func(*dynamodb.UpdateItemInput) (*dynamodb.UpdateItemOutput, error) {
			return nil, &types.ConditionalCheckFailedException{
				Message: aws.String("conditional request failed"),
				Item:    mustMarshal(t, toRegistrationItem(stored)),
			}
		}}
		repo := NewRegistrationDynamoRepository(ddb, "registrations", "uniques")

		_, err := repo.Update(context.Background(), reg, entities.RegistrationStatusAguardando)
		assert.ErrorIs(t, err, interfaces.ErrStatusChanged)
	})

	t.Run("missing item", func(t *testing.T) {
		ddb := &fakeDynamo{update: func(*dynamodb.UpdateItemInput) (*dynamodb.UpdateItemOutput, error) {
			return nil, &types.ConditionalCheckFailedException{Message: aws.String("nope")}
		}}
		repo := NewRegistrationDynamoRepository(ddb, "registrations", "uniques")

		_, err := repo.Update(context.Background(), reg, entities.RegistrationStatusAguardando)
		assert.ErrorIs(t, err, interfaces.ErrNotFound)
	})
}

func TestRegistrationRepository_ListAndCountPaginate(t *testing.T) {
	first := mustMarshal(t, toRegistrationItem(sampleRegistration()))
	second := sampleRegistration()
	second.ID = "r2"
	secondItem := mustMarshal(t, toRegistrationItem(second))

	ddb := &fakeDynamo{scan: func(in *dynamodb.ScanInput) (*dynamodb.ScanOutput, error) {
		if in.Select == types.SelectCount {
			if in.ExclusiveStartKey == nil {
				return &dynamodb.ScanOutput{Count: 3, LastEvaluatedKey: map[string]types.AttributeValue{"id": attrS("x")}}, nil
			}
			return &dynamodb.ScanOutput{Count: 2}, nil
		}
		if in.ExclusiveStartKey == nil {
			return &dynamodb.ScanOutput{Items: []map[string]types.AttributeValue{first}, LastEvaluatedKey: map[string]types.AttributeValue{"id": attrS("r1")}}, nil
		}
		return &dynamodb.ScanOutput{Items: []map[string]types.AttributeValue{secondItem}}, nil
	}}
	repo := NewRegistrationDynamoRepository(ddb, "registrations", "uniques")

	list, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "r2", list[1].ID)

	n, err := repo.Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 5, n)
}

func TestUserRepository(t *testing.T) {
	user := entities.User{ID: "u1", Email: "ana@test.com", PasswordHash: "h", IsActive: true, Roles: []string{"admin"}, CreatedAt: time.Now().UTC()}

	t.Run("create guards email", func(t *testing.T) {
		ddb := &fakeDynamo{transact: func(in *dynamodb.TransactWriteItemsInput) (*dynamodb.TransactWriteItemsOutput, error) {
			require.Len(t, in.TransactItems, 2)
			assert.Equal(t, "email#ana@test.com", in.TransactItems[1].Put.Item["pk"].(*types.AttributeValueMemberS).Value)
			return nil, &types.TransactionCanceledException{}
		}}
		repo := NewUserDynamoRepository(ddb, "users", "uniques")

		_, err := repo.Create(context.Background(), user)
		assert.ErrorIs(t, err, interfaces.ErrConflict)
	})

	t.Run("get by email keeps hash", func(t *testing.T) {
		ddb := &fakeDynamo{query: func(in *dynamodb.QueryInput) (*dynamodb.QueryOutput, error) {
			assert.Equal(t, UsersEmailIndex, aws.ToString(in.IndexName))
			return &dynamodb.QueryOutput{Items: []map[string]types.AttributeValue{mustMarshal(t, toUserItem(user))}}, nil
		}}
		repo := NewUserDynamoRepository(ddb, "users", "uniques")

		got, err := repo.GetByEmail(context.Background(), "ana@test.com")
		require.NoError(t, err)
		assert.Equal(t, "h", got.PasswordHash)
		assert.Equal(t, []string{"admin"}, got.Roles)
	})

	t.Run("update sets mutable fields", func(t *testing.T) {
		ddb := &fakeDynamo{update: func(in *dynamodb.UpdateItemInput) (*dynamodb.UpdateItemOutput, error) {
			assert.Equal(t, "SET #is_active = :is_active, #last_login = :last_login, #roles = :roles", aws.ToString(in.UpdateExpression))
			return &dynamodb.UpdateItemOutput{Attributes: mustMarshal(t, toUserItem(user))}, nil
		}}
		repo := NewUserDynamoRepository(ddb, "users", "uniques")

		_, err := repo.Update(context.Background(), user)
		require.NoError(t, err)
	})

	t.Run("wraps driver errors", func(t *testing.T) {
		boom := pkgerrors.New("boom")
		ddb := &fakeDynamo{get: func(*dynamodb.GetItemInput) (*dynamodb.GetItemOutput, error) { return nil, boom }}
		repo := NewUserDynamoRepository(ddb, "users", "uniques")

		_, err := repo.GetByID(context.Background(), "u1")
		require.Error(t, err)
		assert.Equal(t, boom, pkgerrors.Cause(err))
	})
}

func TestRoleRepository_GetManyRetriesUnprocessed(t *testing.T) {
	calls := 0
	ddb := &fakeDynamo{batchGet: func(in *dynamodb.BatchGetItemInput) (*dynamodb.BatchGetItemOutput, error) {
		calls++
		if calls == 1 {
			assert.Len(t, in.RequestItems["roles"].Keys, 2)
			return &dynamodb.BatchGetItemOutput{
				Responses: map[string][]map[string]types.AttributeValue{
					"roles": {mustMarshal(t, toRoleItem(entities.Role{Name: "admin", CanAccessAdmin: true}))},
				},
				UnprocessedKeys: map[string]types.KeysAndAttributes{
					"roles": {Keys: []map[string]types.AttributeValue{{"name": attrS("tesouraria")}}},
				},
			}, nil
		}
		return &dynamodb.BatchGetItemOutput{
			Responses: map[string][]map[string]types.AttributeValue{
				"roles": {mustMarshal(t, toRoleItem(entities.Role{Name: "tesouraria", CanReviewPayments: true}))},
			},
		}, nil
	}}
	repo := NewRoleDynamoRepository(ddb, "roles")

	roles, err := repo.GetMany(context.Background(), []string{"admin", "tesouraria", "admin", ""})
	require.NoError(t, err)
	assert.Equal(t, 2, calls)
	require.Len(t, roles, 2)
	assert.True(t, entities.PermissionsFor(roles).CanReviewPayments)

	none, err := repo.GetMany(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestRoleRepository_CreateConflict(t *testing.T) {
	ddb := &fakeDynamo{put: func(in *dynamodb.PutItemInput) (*dynamodb.PutItemOutput, error) {
		assert.Equal(t, "attribute_not_exists(#name)", aws.ToString(in.ConditionExpression))
		return nil, &types.ConditionalCheckFailedException{}
	}}
	repo := NewRoleDynamoRepository(ddb, "roles")

	_, err := repo.Create(context.Background(), entities.Role{Name: "admin"})
	assert.ErrorIs(t, err, interfaces.ErrConflict)
}

func TestAuditLogRepository_ListNewestFirst(t *testing.T) {
	mk := func(id string) map[string]types.AttributeValue {
		return mustMarshal(t, auditItem{ID: id, Kind: auditKind, Action: "x", CreatedAt: formatTime(time.Now())})
	}
	ddb := &fakeDynamo{query: func(in *dynamodb.QueryInput) (*dynamodb.QueryOutput, error) {
		assert.False(t, aws.ToBool(in.ScanIndexForward))
		assert.Equal(t, AuditLogsKindIndex, aws.ToString(in.IndexName))
		if in.ExclusiveStartKey == nil {
			return &dynamodb.QueryOutput{Items: []map[string]types.AttributeValue{mk("a")}, LastEvaluatedKey: map[string]types.AttributeValue{"id": attrS("a")}}, nil
		}
		return &dynamodb.QueryOutput{Items: []map[string]types.AttributeValue{mk("b"), mk("c")}}, nil
	}}
	repo := NewAuditLogDynamoRepository(ddb, "audit_logs")

	logs, err := repo.List(context.Background(), 2)
	require.NoError(t, err)
	require.Len(t, logs, 2)
	assert.Equal(t, "a", logs[0].ID)
	assert.Equal(t, "b", logs[1].ID)

	logs, err = repo.List(context.Background(), 0)
	require.NoError(t, err)
	assert.Empty(t, logs)
}
