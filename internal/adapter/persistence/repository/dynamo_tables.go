package repository

import (
	"context"
	"errors"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// EnsureBenefitDesignerTables creates the template store tables when they
// are missing. It is meant for local DynamoDB; provisioned environments
// create the tables out of band.
func EnsureBenefitDesignerTables(ctx context.Context, ddb *dynamodb.Client) error {
	tables := []*dynamodb.CreateTableInput{
		{
			TableName:            aws.String(getenvDefault("BENEFIT_TEMPLATES_TABLE", defaultTemplatesTableName)),
			BillingMode:          types.BillingModePayPerRequest,
			AttributeDefinitions: []types.AttributeDefinition{
				{AttributeName: aws.String("id"), AttributeType: types.ScalarAttributeTypeN},
				{AttributeName: aws.String("template_id"), AttributeType: types.ScalarAttributeTypeS},
			},
			KeySchema: []types.KeySchemaElement{{AttributeName: aws.String("id"), KeyType: types.KeyTypeHash}},
			GlobalSecondaryIndexes: []types.GlobalSecondaryIndex{{
				IndexName:  aws.String(templateIDIndexName),
				KeySchema:  []types.KeySchemaElement{{AttributeName: aws.String("template_id"), KeyType: types.KeyTypeHash}},
				Projection: &types.Projection{ProjectionType: types.ProjectionTypeAll},
			}},
		},
		{
			TableName:            aws.String(getenvDefault("BENEFIT_CATEGORIES_TABLE", defaultCategoriesTableName)),
			BillingMode:          types.BillingModePayPerRequest,
			AttributeDefinitions: []types.AttributeDefinition{{AttributeName: aws.String("id"), AttributeType: types.ScalarAttributeTypeN}},
			KeySchema:            []types.KeySchemaElement{{AttributeName: aws.String("id"), KeyType: types.KeyTypeHash}},
		},
		{
			TableName:            aws.String(getenvDefault("BENEFIT_COUNTERS_TABLE", defaultCountersTableName)),
			BillingMode:          types.BillingModePayPerRequest,
			AttributeDefinitions: []types.AttributeDefinition{{AttributeName: aws.String("name"), AttributeType: types.ScalarAttributeTypeS}},
			KeySchema:            []types.KeySchemaElement{{AttributeName: aws.String("name"), KeyType: types.KeyTypeHash}},
		},
	}
	for _, in := range tables {
		_, err := ddb.CreateTable(ctx, in)
		var exists *types.ResourceInUseException
		if err != nil && !errors.As(err, &exists) {
			return err
		}
	}
	return nil
}
