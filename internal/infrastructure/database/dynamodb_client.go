package database

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

// DynamoDBOptions locates the DynamoDB template store.
type DynamoDBOptions struct {
	Region          string
	Endpoint        string
	AccessKeyID     string
	SecretAccessKey string
}

// ConnectDynamoDB builds a client for the template store. A custom Endpoint
// targets DynamoDB Local, which ignores credentials but still needs some, so
// static placeholders are used when none are configured.
func ConnectDynamoDB(ctx context.Context, opts DynamoDBOptions) (*dynamodb.Client, error) {
	loadOpts := []func(*config.LoadOptions) error{config.WithRegion(opts.Region)}

	accessKey, secretKey := opts.AccessKeyID, opts.SecretAccessKey
	if accessKey == "" && opts.Endpoint != "" {
		accessKey, secretKey = "local", "local"
	}
	if accessKey != "" {
		loadOpts = append(loadOpts, config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(accessKey, secretKey, ""),
		))
	}

	awsCfg, err := config.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create dynamodb config: %w", err)
	}
	return dynamodb.NewFromConfig(awsCfg, func(o *dynamodb.Options) {
		if opts.Endpoint != "" {
			o.BaseEndpoint = aws.String(opts.Endpoint)
		}
	}), nil
}
