package database

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/pkg/errors"

	"github.com/Vinicios-DRH/iap-convencao-amazonica/internal/config"
	"github.com/Vinicios-DRH/iap-convencao-amazonica/internal/infrastructure/logger"
)

// localCredential is accepted by DynamoDB Local, which ignores credentials but
// still requires the SDK to sign requests.
const localCredential = "local"

// Connect builds a DynamoDB client for the configured region. A non-empty
// Endpoint points the client at DynamoDB Local or another compatible server.
func Connect(ctx context.Context, cfg config.DynamoDBConfig) (*dynamodb.Client, error) {
	awsCfg, err := AWSConfig(ctx, cfg)
	if err != nil {
		return nil, err
	}

	log := logger.For("dynamodb")
	var opts []func(*dynamodb.Options)
	if cfg.Endpoint != "" {
		log.WithField("endpoint", cfg.Endpoint).Info("using custom endpoint")
		opts = append(opts, func(o *dynamodb.Options) {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		})
	}
	log.WithField("region", cfg.Region).Debug("client initialized")
	return dynamodb.NewFromConfig(awsCfg, opts...), nil
}

// AWSConfig resolves credentials: explicit keys first, then the local
// placeholder when an endpoint override is set, else the default chain.
func AWSConfig(ctx context.Context, cfg config.DynamoDBConfig) (aws.Config, error) {
	loadOpts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(cfg.Region),
	}

	switch {
	case cfg.AccessKeyID != "" && cfg.SecretAccessKey != "":
		loadOpts = append(loadOpts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		))
	case cfg.Endpoint != "":
		loadOpts = append(loadOpts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(localCredential, localCredential, ""),
		))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return aws.Config{}, errors.Wrap(err, "load aws config")
	}
	return awsCfg, nil
}
