package repository

import (
	"context"
	"encoding/json"
	"sort"
	"strconv"
	"strings"

	"insurance_portal/internal/domain/entities"
	"insurance_portal/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

type templateItem struct {
	ID            int64  `dynamodbav:"id"`
	TemplateID    string `dynamodbav:"template_id"`
	CategoryID    int64  `dynamodbav:"category_id"`
	Type          string `dynamodbav:"type"`
	Name          string `dynamodbav:"name"`
	Description   string `dynamodbav:"description"`
	Version       string `dynamodbav:"version"`
	MajorVersion  int    `dynamodbav:"major_version"`
	MinorVersion  int    `dynamodbav:"minor_version"`
	FieldSchema   string `dynamodbav:"field_schema"`
	DefaultValues string `dynamodbav:"default_values"`
	Status        string `dynamodbav:"status"`
	CreatedAt     string `dynamodbav:"created_at"`
	UpdatedAt     string `dynamodbav:"updated_at"`
}

// TemplateDynamoRepository persists BenefitTemplate versions in DynamoDB.
//
// Table requirements:
//   - PK: id (number), allocated from the counters table
//   - GSI template_id-index: template_id (string)
//
// Status changes that touch more than one row go through
// TransactWriteItems with a status condition on every archived row, so a
// concurrent activation fails instead of leaving two active versions.
type TemplateDynamoRepository struct {
	ddb           dynamoAPI
	tableName     string
	countersTable string
}

var _ interfaces.ITemplateRepository = (*TemplateDynamoRepository)(nil)

func NewTemplateDynamoRepository(ddb *dynamodb.Client) *TemplateDynamoRepository {
	return newTemplateDynamoRepository(ddb)
}

func newTemplateDynamoRepository(ddb dynamoAPI) *TemplateDynamoRepository {
	return &TemplateDynamoRepository{
		ddb:           ddb,
		tableName:     getenvDefault("BENEFIT_TEMPLATES_TABLE", defaultTemplatesTableName),
		countersTable: getenvDefault("BENEFIT_COUNTERS_TABLE", defaultCountersTableName),
	}
}

func (r *TemplateDynamoRepository) Create(ctx context.Context, t entities.BenefitTemplate) (entities.BenefitTemplate, error) {
	id, err := nextSequence(ctx, r.ddb, r.countersTable, r.tableName)
	if err != nil {
		return entities.BenefitTemplate{}, err
	}
	t.ID = id

	var archive []types.TransactWriteItem
	if t.Status == entities.TemplateStatusActive {
		archive, err = r.archiveOthers(ctx, t.TemplateID, 0)
		if err != nil {
			return entities.BenefitTemplate{}, err
		}
	}
	put, err := r.putNew(t)
	if err != nil {
		return entities.BenefitTemplate{}, err
	}
	if err := r.write(ctx, append(archive, put)); err != nil {
		return entities.BenefitTemplate{}, err
	}
	return t, nil
}

func (r *TemplateDynamoRepository) GetByID(ctx context.Context, id int64) (entities.BenefitTemplate, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.tableName),
		Key:            idKey(id),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.BenefitTemplate{}, err
	}
	if len(out.Item) == 0 {
		return entities.BenefitTemplate{}, nil
	}
	return unmarshalTemplate(out.Item)
}

func (r *TemplateDynamoRepository) List(ctx context.Context, filter entities.TemplateFilter) ([]entities.BenefitTemplate, error) {
	var (
		conds  []string
		names  = map[string]string{}
		values = map[string]types.AttributeValue{}
	)
	if filter.Type != "" {
		conds = append(conds, "#type = :type")
		names["#type"] = "type"
		values[":type"] = &types.AttributeValueMemberS{Value: string(filter.Type)}
	}
	if filter.CategoryID != 0 {
		conds = append(conds, "#category_id = :category_id")
		names["#category_id"] = "category_id"
		values[":category_id"] = &types.AttributeValueMemberN{Value: strconv.FormatInt(filter.CategoryID, 10)}
	}
	if filter.Status != "" {
		conds = append(conds, "#status = :status")
		names["#status"] = "status"
		values[":status"] = &types.AttributeValueMemberS{Value: string(filter.Status)}
	}

	in := &dynamodb.ScanInput{TableName: aws.String(r.tableName)}
	if len(conds) > 0 {
		in.FilterExpression = aws.String(strings.Join(conds, " AND "))
		in.ExpressionAttributeNames = names
		in.ExpressionAttributeValues = values
	}

	var out []entities.BenefitTemplate
	p := dynamodb.NewScanPaginator(r.ddb, in)
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, item := range page.Items {
			t, err := unmarshalTemplate(item)
			if err != nil {
				return nil, err
			}
			out = append(out, t)
		}
	}
	sortTemplatesByID(out)
	return out, nil
}

func (r *TemplateDynamoRepository) ListByTemplateID(ctx context.Context, templateID string) ([]entities.BenefitTemplate, error) {
	p := dynamodb.NewQueryPaginator(r.ddb, &dynamodb.QueryInput{
		TableName:                 aws.String(r.tableName),
		IndexName:                 aws.String(templateIDIndexName),
		KeyConditionExpression:    aws.String("#template_id = :template_id"),
		ExpressionAttributeNames:  map[string]string{"#template_id": "template_id"},
		ExpressionAttributeValues: map[string]types.AttributeValue{":template_id": &types.AttributeValueMemberS{Value: templateID}},
	})
	out := []entities.BenefitTemplate{}
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, item := range page.Items {
			t, err := unmarshalTemplate(item)
			if err != nil {
				return nil, err
			}
			out = append(out, t)
		}
	}
	sortTemplatesByID(out)
	return out, nil
}

func (r *TemplateDynamoRepository) Update(ctx context.Context, t entities.BenefitTemplate) (entities.BenefitTemplate, error) {
	schema, defaults, err := encodeTemplateJSON(t)
	if err != nil {
		return entities.BenefitTemplate{}, err
	}
	return r.update(ctx, t.ID, func(now string) (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #category_id = :category_id, #name = :name, #description = :description, " +
			"#field_schema = :field_schema, #default_values = :default_values, #status = :status, #updated_at = :updated_at"
		vals := map[string]types.AttributeValue{
			":category_id":    &types.AttributeValueMemberN{Value: strconv.FormatInt(t.CategoryID, 10)},
			":name":           &types.AttributeValueMemberS{Value: t.Name},
			":description":    &types.AttributeValueMemberS{Value: t.Description},
			":field_schema":   &types.AttributeValueMemberS{Value: schema},
			":default_values": &types.AttributeValueMemberS{Value: defaults},
			":status":         &types.AttributeValueMemberS{Value: string(t.Status)},
			":updated_at":     &types.AttributeValueMemberS{Value: now},
		}
		names := map[string]string{
			"#category_id":    "category_id",
			"#name":           "name",
			"#description":    "description",
			"#field_schema":   "field_schema",
			"#default_values": "default_values",
			"#status":         "status",
			"#updated_at":     "updated_at",
		}
		return expr, vals, names
	})
}

func (r *TemplateDynamoRepository) CreateVersion(ctx context.Context, supersededID int64, next entities.BenefitTemplate) (entities.BenefitTemplate, error) {
	superseded, err := r.GetByID(ctx, supersededID)
	if err != nil {
		return entities.BenefitTemplate{}, err
	}
	id, err := nextSequence(ctx, r.ddb, r.countersTable, r.tableName)
	if err != nil {
		return entities.BenefitTemplate{}, err
	}
	next.ID = id

	var items []types.TransactWriteItem
	if next.Status == entities.TemplateStatusActive {
		items, err = r.archiveOthers(ctx, next.TemplateID, 0)
		if err != nil {
			return entities.BenefitTemplate{}, err
		}
	} else if superseded.Status == entities.TemplateStatusActive {
		items = append(items, r.archiveItem(superseded.ID, nowString()))
	}
	put, err := r.putNew(next)
	if err != nil {
		return entities.BenefitTemplate{}, err
	}
	if err := r.write(ctx, append(items, put)); err != nil {
		return entities.BenefitTemplate{}, err
	}
	return next, nil
}

func (r *TemplateDynamoRepository) Activate(ctx context.Context, id int64) (entities.BenefitTemplate, error) {
	current, err := r.GetByID(ctx, id)
	if err != nil || current.ID == 0 {
		return entities.BenefitTemplate{}, err
	}
	items, err := r.archiveOthers(ctx, current.TemplateID, id)
	if err != nil {
		return entities.BenefitTemplate{}, err
	}
	now := nowString()
	items = append(items, types.TransactWriteItem{Update: &types.Update{
		TableName:           aws.String(r.tableName),
		Key:                 idKey(id),
		UpdateExpression:    aws.String("SET #status = :active, #updated_at = :now"),
		ConditionExpression: aws.String("attribute_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id", "#status": "status", "#updated_at": "updated_at",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":active": &types.AttributeValueMemberS{Value: string(entities.TemplateStatusActive)},
			":now":    &types.AttributeValueMemberS{Value: now},
		},
	}})
	if err := r.write(ctx, items); err != nil {
		return entities.BenefitTemplate{}, err
	}
	current.Status = entities.TemplateStatusActive
	current.UpdatedAt = parseTime(now)
	return current, nil
}

func (r *TemplateDynamoRepository) UpdateStatus(ctx context.Context, id int64, status entities.TemplateStatus) (entities.BenefitTemplate, error) {
	return r.update(ctx, id, func(now string) (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #status = :status, #updated_at = :updated_at"
		vals := map[string]types.AttributeValue{
			":status":     &types.AttributeValueMemberS{Value: string(status)},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		}
		names := map[string]string{
			"#status":     "status",
			"#updated_at": "updated_at",
		}
		return expr, vals, names
	})
}

func (r *TemplateDynamoRepository) Delete(ctx context.Context, id int64) (bool, error) {
	out, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName:    aws.String(r.tableName),
		Key:          idKey(id),
		ReturnValues: types.ReturnValueAllOld,
	})
	if err != nil {
		return false, err
	}
	return len(out.Attributes) > 0, nil
}

// archiveOthers builds conditional archive writes for every active row of
// templateID except keepID.
func (r *TemplateDynamoRepository) archiveOthers(ctx context.Context, templateID string, keepID int64) ([]types.TransactWriteItem, error) {
	rows, err := r.ListByTemplateID(ctx, templateID)
	if err != nil {
		return nil, err
	}
	now := nowString()
	var items []types.TransactWriteItem
	for _, row := range rows {
		if row.ID != keepID && row.Status == entities.TemplateStatusActive {
			items = append(items, r.archiveItem(row.ID, now))
		}
	}
	return items, nil
}

func (r *TemplateDynamoRepository) archiveItem(id int64, now string) types.TransactWriteItem {
	return types.TransactWriteItem{Update: &types.Update{
		TableName:                aws.String(r.tableName),
		Key:                      idKey(id),
		UpdateExpression:         aws.String("SET #status = :archived, #updated_at = :now"),
		ConditionExpression:      aws.String("#status = :active"),
		ExpressionAttributeNames: map[string]string{"#status": "status", "#updated_at": "updated_at"},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":archived": &types.AttributeValueMemberS{Value: string(entities.TemplateStatusArchived)},
			":active":   &types.AttributeValueMemberS{Value: string(entities.TemplateStatusActive)},
			":now":      &types.AttributeValueMemberS{Value: now},
		},
	}}
}

func (r *TemplateDynamoRepository) putNew(t entities.BenefitTemplate) (types.TransactWriteItem, error) {
	it, err := toTemplateItem(t)
	if err != nil {
		return types.TransactWriteItem{}, err
	}
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return types.TransactWriteItem{}, err
	}
	return types.TransactWriteItem{Put: &types.Put{
		TableName:                aws.String(r.tableName),
		Item:                     av,
		ConditionExpression:      aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{"#id": "id"},
	}}, nil
}

func (r *TemplateDynamoRepository) write(ctx context.Context, items []types.TransactWriteItem) error {
	_, err := r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{TransactItems: items})
	return err
}

func (r *TemplateDynamoRepository) update(
	ctx context.Context,
	id int64,
	build func(now string) (updateExpr string, values map[string]types.AttributeValue, names map[string]string),
) (entities.BenefitTemplate, error) {
	updateExpr, values, names := build(nowString())

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:                 aws.String(r.tableName),
		Key:                       idKey(id),
		ConditionExpression:       aws.String("attribute_exists(#id)"),
		UpdateExpression:          aws.String(updateExpr),
		ExpressionAttributeValues: values,
		ExpressionAttributeNames:  mergeNames(names, map[string]string{"#id": "id"}),
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		if isConditionalFailure(err) {
			return entities.BenefitTemplate{}, nil
		}
		return entities.BenefitTemplate{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.BenefitTemplate{}, nil
	}
	return unmarshalTemplate(out.Attributes)
}

func unmarshalTemplate(av map[string]types.AttributeValue) (entities.BenefitTemplate, error) {
	var it templateItem
	if err := attributevalue.UnmarshalMap(av, &it); err != nil {
		return entities.BenefitTemplate{}, err
	}
	return fromTemplateItem(it)
}

func encodeTemplateJSON(t entities.BenefitTemplate) (string, string, error) {
	fields := t.FieldSchema
	if fields == nil {
		fields = []entities.FieldDefinition{}
	}
	schema, err := json.Marshal(fields)
	if err != nil {
		return "", "", err
	}
	values := t.DefaultValues
	if values == nil {
		values = map[string]any{}
	}
	defaults, err := json.Marshal(values)
	if err != nil {
		return "", "", err
	}
	return string(schema), string(defaults), nil
}

func toTemplateItem(t entities.BenefitTemplate) (templateItem, error) {
	schema, defaults, err := encodeTemplateJSON(t)
	if err != nil {
		return templateItem{}, err
	}
	return templateItem{
		ID:            t.ID,
		TemplateID:    t.TemplateID,
		CategoryID:    t.CategoryID,
		Type:          string(t.Type),
		Name:          t.Name,
		Description:   t.Description,
		Version:       t.Version,
		MajorVersion:  t.MajorVersion,
		MinorVersion:  t.MinorVersion,
		FieldSchema:   schema,
		DefaultValues: defaults,
		Status:        string(t.Status),
		CreatedAt:     timeString(t.CreatedAt),
		UpdatedAt:     timeString(t.UpdatedAt),
	}, nil
}

func fromTemplateItem(it templateItem) (entities.BenefitTemplate, error) {
	fields := []entities.FieldDefinition{}
	if it.FieldSchema != "" {
		if err := json.Unmarshal([]byte(it.FieldSchema), &fields); err != nil {
			return entities.BenefitTemplate{}, err
		}
	}
	values := map[string]any{}
	if it.DefaultValues != "" {
		if err := json.Unmarshal([]byte(it.DefaultValues), &values); err != nil {
			return entities.BenefitTemplate{}, err
		}
	}
	return entities.BenefitTemplate{
		ID:            it.ID,
		TemplateID:    it.TemplateID,
		CategoryID:    it.CategoryID,
		Type:          entities.TemplateType(it.Type),
		Name:          it.Name,
		Description:   it.Description,
		Version:       it.Version,
		MajorVersion:  it.MajorVersion,
		MinorVersion:  it.MinorVersion,
		FieldSchema:   fields,
		DefaultValues: values,
		Status:        entities.TemplateStatus(it.Status),
		CreatedAt:     parseTime(it.CreatedAt),
		UpdatedAt:     parseTime(it.UpdatedAt),
	}, nil
}

func sortTemplatesByID(rows []entities.BenefitTemplate) {
	sort.Slice(rows, func(i, j int) bool { return rows[i].ID < rows[j].ID })
}
