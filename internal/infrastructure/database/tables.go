package database

import (
	"context"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/pkg/errors"

	"github.com/Vinicios-DRH/iap-convencao-amazonica/internal/config"
	"github.com/Vinicios-DRH/iap-convencao-amazonica/internal/infrastructure/logger"
)

// TableAPI is the subset of *dynamodb.Client needed to bootstrap tables.
type TableAPI interface {
	CreateTable(ctx context.Context, params *dynamodb.CreateTableInput, optFns ...func(*dynamodb.Options)) (*dynamodb.CreateTableOutput, error)
	DescribeTable(ctx context.Context, params *dynamodb.DescribeTableInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DescribeTableOutput, error)
}

var _ TableAPI = (*dynamodb.Client)(nil)

const tableWaitTimeout = 2 * time.Minute

// TableDefinitions describes every table the service reads and writes.
// Index names match those queried by the repositories.
func TableDefinitions(cfg config.DynamoDBConfig) []*dynamodb.CreateTableInput {
	return []*dynamodb.CreateTableInput{
		hashTable(cfg.UsersTable, "id", gsi("email-index", "email", "")),
		hashTable(cfg.RolesTable, "name"),
		hashTable(cfg.RegistrationsTable, "id", gsi("user_id-index", "user_id", "")),
		hashTable(cfg.UniquesTable, "pk"),
		hashTable(cfg.PaymentsTable, "id", gsi("registration_id-index", "registration_id", "")),
		hashTable(cfg.AuditLogsTable, "id", gsi("kind-created_at-index", "kind", "created_at")),
	}
}

type indexDef struct {
	name, hash, rng string
}

func gsi(name, hash, rng string) indexDef {
	return indexDef{name: name, hash: hash, rng: rng}
}

func hashTable(name, hash string, indexes ...indexDef) *dynamodb.CreateTableInput {
	in := &dynamodb.CreateTableInput{
		TableName:   aws.String(name),
		BillingMode: types.BillingModePayPerRequest,
		KeySchema: []types.KeySchemaElement{
			{AttributeName: aws.String(hash), KeyType: types.KeyTypeHash},
		},
	}
	seen := map[string]bool{}
	define := func(attr string) {
		if attr == "" || seen[attr] {
			return
		}
		seen[attr] = true
		in.AttributeDefinitions = append(in.AttributeDefinitions, types.AttributeDefinition{
			AttributeName: aws.String(attr),
			AttributeType: types.ScalarAttributeTypeS,
		})
	}
	define(hash)

	for _, idx := range indexes {
		keys := []types.KeySchemaElement{{AttributeName: aws.String(idx.hash), KeyType: types.KeyTypeHash}}
		define(idx.hash)
		if idx.rng != "" {
			keys = append(keys, types.KeySchemaElement{AttributeName: aws.String(idx.rng), KeyType: types.KeyTypeRange})
			define(idx.rng)
		}
		in.GlobalSecondaryIndexes = append(in.GlobalSecondaryIndexes, types.GlobalSecondaryIndex{
			IndexName:  aws.String(idx.name),
			KeySchema:  keys,
			Projection: &types.Projection{ProjectionType: types.ProjectionTypeAll},
		})
	}
	return in
}

// EnsureTables creates the missing tables and waits until each is active.
// It returns the names of the tables it created.
func EnsureTables(ctx context.Context, api TableAPI, defs []*dynamodb.CreateTableInput) ([]string, error) {
	log := logger.For("setup")
	var created []string
	for _, def := range defs {
		name := aws.ToString(def.TableName)
		_, err := api.DescribeTable(ctx, &dynamodb.DescribeTableInput{TableName: def.TableName})
		if err == nil {
			log.WithField("table", name).Debug("table exists")
			continue
		}
		var nf *types.ResourceNotFoundException
		if !errors.As(err, &nf) {
			return created, errors.Wrapf(err, "describe table %s", name)
		}

		if _, err := api.CreateTable(ctx, def); err != nil {
			var inUse *types.ResourceInUseException
			if errors.As(err, &inUse) {
				continue
			}
			return created, errors.Wrapf(err, "create table %s", name)
		}

		waiter := dynamodb.NewTableExistsWaiter(api)
		if err := waiter.Wait(ctx, &dynamodb.DescribeTableInput{TableName: def.TableName}, tableWaitTimeout); err != nil {
			return created, errors.Wrapf(err, "wait for table %s", name)
		}
		log.WithField("table", name).Info("table created")
		created = append(created, name)
	}
	return created, nil
}
