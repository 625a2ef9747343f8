package repository

import (
	"context"
	"sort"
	"strconv"

	"insurance_portal/internal/domain/entities"
	"insurance_portal/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

type categoryItem struct {
	ID           int64    `dynamodbav:"id"`
	Name         string   `dynamodbav:"name"`
	NameKey      string   `dynamodbav:"name_key"`
	Icon         string   `dynamodbav:"icon"`
	AppliesTo    []string `dynamodbav:"applies_to"`
	DisplayOrder int      `dynamodbav:"display_order"`
	IsActive     bool     `dynamodbav:"is_active"`
	CreatedAt    string   `dynamodbav:"created_at"`
	UpdatedAt    string   `dynamodbav:"updated_at"`
}

// CategoryDynamoRepository persists BenefitCategory items in DynamoDB.
//
// Table requirements:
//   - PK: id (number)
//
// Name uniqueness is held by a guard item "category_name#<lower name>" in
// the counters table, written in the same transaction as the category.
type CategoryDynamoRepository struct {
	ddb           dynamoAPI
	tableName     string
	countersTable string
}

var _ interfaces.ICategoryRepository = (*CategoryDynamoRepository)(nil)

func NewCategoryDynamoRepository(ddb *dynamodb.Client) *CategoryDynamoRepository {
	return newCategoryDynamoRepository(ddb)
}

func newCategoryDynamoRepository(ddb dynamoAPI) *CategoryDynamoRepository {
	return &CategoryDynamoRepository{
		ddb:           ddb,
		tableName:     getenvDefault("BENEFIT_CATEGORIES_TABLE", defaultCategoriesTableName),
		countersTable: getenvDefault("BENEFIT_COUNTERS_TABLE", defaultCountersTableName),
	}
}

func (r *CategoryDynamoRepository) Create(ctx context.Context, c entities.BenefitCategory) (entities.BenefitCategory, error) {
	id, err := nextSequence(ctx, r.ddb, r.countersTable, r.tableName)
	if err != nil {
		return entities.BenefitCategory{}, err
	}
	c.ID = id
	put, err := r.putCategory(c, "attribute_not_exists(#id)")
	if err != nil {
		return entities.BenefitCategory{}, err
	}
	_, err = r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{r.putNameGuard(c.Name, id), put},
	})
	if err != nil {
		return entities.BenefitCategory{}, err
	}
	return c, nil
}

func (r *CategoryDynamoRepository) GetByID(ctx context.Context, id int64) (entities.BenefitCategory, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.tableName),
		Key:            idKey(id),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.BenefitCategory{}, err
	}
	if len(out.Item) == 0 {
		return entities.BenefitCategory{}, nil
	}
	var it categoryItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.BenefitCategory{}, err
	}
	return fromCategoryItem(it), nil
}

func (r *CategoryDynamoRepository) GetByName(ctx context.Context, name string) (entities.BenefitCategory, error) {
	rows, err := r.scan(ctx, &dynamodb.ScanInput{
		TableName:                 aws.String(r.tableName),
		FilterExpression:          aws.String("#name_key = :name_key"),
		ExpressionAttributeNames:  map[string]string{"#name_key": "name_key"},
		ExpressionAttributeValues: map[string]types.AttributeValue{":name_key": &types.AttributeValueMemberS{Value: nameKey(name)}},
	})
	if err != nil || len(rows) == 0 {
		return entities.BenefitCategory{}, err
	}
	return rows[0], nil
}

func (r *CategoryDynamoRepository) List(ctx context.Context, includeInactive bool) ([]entities.BenefitCategory, error) {
	in := &dynamodb.ScanInput{TableName: aws.String(r.tableName)}
	if !includeInactive {
		in.FilterExpression = aws.String("#is_active = :true")
		in.ExpressionAttributeNames = map[string]string{"#is_active": "is_active"}
		in.ExpressionAttributeValues = map[string]types.AttributeValue{":true": &types.AttributeValueMemberBOOL{Value: true}}
	}
	rows, err := r.scan(ctx, in)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].DisplayOrder != rows[j].DisplayOrder {
			return rows[i].DisplayOrder < rows[j].DisplayOrder
		}
		return rows[i].Name < rows[j].Name
	})
	return rows, nil
}

// Update swaps the name guard when the name changes.
func (r *CategoryDynamoRepository) Update(ctx context.Context, c entities.BenefitCategory) (entities.BenefitCategory, error) {
	existing, err := r.GetByID(ctx, c.ID)
	if err != nil || existing.ID == 0 {
		return entities.BenefitCategory{}, err
	}
	c.CreatedAt = existing.CreatedAt
	put, err := r.putCategory(c, "attribute_exists(#id)")
	if err != nil {
		return entities.BenefitCategory{}, err
	}
	items := []types.TransactWriteItem{put}
	if nameKey(existing.Name) != nameKey(c.Name) {
		items = append(items, r.putNameGuard(c.Name, c.ID), types.TransactWriteItem{Delete: &types.Delete{
			TableName: aws.String(r.countersTable),
			Key: map[string]types.AttributeValue{
				"name": &types.AttributeValueMemberS{Value: nameGuardKey(existing.Name)},
			},
		}})
	}
	if _, err := r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{TransactItems: items}); err != nil {
		return entities.BenefitCategory{}, err
	}
	return c, nil
}

func (r *CategoryDynamoRepository) scan(ctx context.Context, in *dynamodb.ScanInput) ([]entities.BenefitCategory, error) {
	out := []entities.BenefitCategory{}
	p := dynamodb.NewScanPaginator(r.ddb, in)
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		var items []categoryItem
		if err := attributevalue.UnmarshalListOfMaps(page.Items, &items); err != nil {
			return nil, err
		}
		for _, it := range items {
			out = append(out, fromCategoryItem(it))
		}
	}
	return out, nil
}

func (r *CategoryDynamoRepository) putCategory(c entities.BenefitCategory, condition string) (types.TransactWriteItem, error) {
	av, err := attributevalue.MarshalMap(toCategoryItem(c))
	if err != nil {
		return types.TransactWriteItem{}, err
	}
	return types.TransactWriteItem{Put: &types.Put{
		TableName:                aws.String(r.tableName),
		Item:                     av,
		ConditionExpression:      aws.String(condition),
		ExpressionAttributeNames: map[string]string{"#id": "id"},
	}}, nil
}

func (r *CategoryDynamoRepository) putNameGuard(name string, id int64) types.TransactWriteItem {
	return types.TransactWriteItem{Put: &types.Put{
		TableName: aws.String(r.countersTable),
		Item: map[string]types.AttributeValue{
			"name":        &types.AttributeValueMemberS{Value: nameGuardKey(name)},
			"category_id": &types.AttributeValueMemberN{Value: strconv.FormatInt(id, 10)},
		},
		ConditionExpression:      aws.String("attribute_not_exists(#name)"),
		ExpressionAttributeNames: map[string]string{"#name": "name"},
	}}
}

func nameGuardKey(name string) string {
	return "category_name#" + nameKey(name)
}

func toCategoryItem(c entities.BenefitCategory) categoryItem {
	applies := make([]string, 0, len(c.AppliesTo))
	for _, t := range c.AppliesTo {
		applies = append(applies, string(t))
	}
	return categoryItem{
		ID:           c.ID,
		Name:         c.Name,
		NameKey:      nameKey(c.Name),
		Icon:         c.Icon,
		AppliesTo:    applies,
		DisplayOrder: c.DisplayOrder,
		IsActive:     c.IsActive,
		CreatedAt:    timeString(c.CreatedAt),
		UpdatedAt:    timeString(c.UpdatedAt),
	}
}

func fromCategoryItem(it categoryItem) entities.BenefitCategory {
	applies := make([]entities.TemplateType, 0, len(it.AppliesTo))
	for _, t := range it.AppliesTo {
		applies = append(applies, entities.TemplateType(t))
	}
	return entities.BenefitCategory{
		ID:           it.ID,
		Name:         it.Name,
		Icon:         it.Icon,
		AppliesTo:    applies,
		DisplayOrder: it.DisplayOrder,
		IsActive:     it.IsActive,
		CreatedAt:    parseTime(it.CreatedAt),
		UpdatedAt:    parseTime(it.UpdatedAt),
	}
}
