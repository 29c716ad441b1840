package database

import (
	"context"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Vinicios-DRH/iap-convencao-amazonica/internal/config"
)

type fakeTables struct {
	existing map[string]bool
	created  []string
}

func (f *fakeTables) CreateTable(_ context.Context, in *dynamodb.CreateTableInput, _ ...func(*dynamodb.Options)) (*dynamodb.CreateTableOutput, error) {
	name := aws.ToString(in.TableName)
	f.existing[name] = true
	f.created = append(f.created, name)
	return &dynamodb.CreateTableOutput{}, nil
}

func (f *fakeTables) DescribeTable(_ context.Context, in *dynamodb.DescribeTableInput, _ ...func(*dynamodb.Options)) (*dynamodb.DescribeTableOutput, error) {
	if !f.existing[aws.ToString(in.TableName)] {
		return nil, &types.ResourceNotFoundException{Message: aws.String("not found")}
	}
	return &dynamodb.DescribeTableOutput{Table: &types.TableDescription{
		TableName:   in.TableName,
		TableStatus: types.TableStatusActive,
	}}, nil
}

func testDynamoConfig() config.DynamoDBConfig {
	return config.DynamoDBConfig{
		UsersTable:         "users",
		RolesTable:         "roles",
		RegistrationsTable: "registrations",
		UniquesTable:       "uniques",
		PaymentsTable:      "payments",
		AuditLogsTable:     "audit_logs",
	}
}

func TestTableDefinitions(t *testing.T) {
	defs := TableDefinitions(testDynamoConfig())
	require.Len(t, defs, 6)

	byName := map[string]*dynamodb.CreateTableInput{}
	for _, d := range defs {
		byName[aws.ToString(d.TableName)] = d
		assert.Equal(t, types.BillingModePayPerRequest, d.BillingMode)
	}

	audit := byName["audit_logs"]
	require.Len(t, audit.GlobalSecondaryIndexes, 1)
	assert.Equal(t, "kind-created_at-index", aws.ToString(audit.GlobalSecondaryIndexes[0].IndexName))
	assert.Len(t, audit.GlobalSecondaryIndexes[0].KeySchema, 2)
	assert.Len(t, audit.AttributeDefinitions, 3)

	roles := byName["roles"]
	assert.Equal(t, "name", aws.ToString(roles.KeySchema[0].AttributeName))
	assert.Empty(t, roles.GlobalSecondaryIndexes)
}

func TestEnsureTables_CreatesOnlyMissing(t *testing.T) {
	api := &fakeTables{existing: map[string]bool{"users": true, "roles": true}}

	created, err := EnsureTables(context.Background(), api, TableDefinitions(testDynamoConfig()))
	require.NoError(t, err)
	assert.Equal(t, []string{"registrations", "uniques", "payments", "audit_logs"}, created)

	created, err = EnsureTables(context.Background(), api, TableDefinitions(testDynamoConfig()))
	require.NoError(t, err)
	assert.Empty(t, created)
}
