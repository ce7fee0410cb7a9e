package repository

import (
	"context"
	"errors"
	"time"

	"hsj_mel/internal/domain/entities"
	"hsj_mel/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultMelRulesTableName = "mel_rules"

type melRuleItem struct {
	RuleKey         string `dynamodbav:"rule_key"`
	SectorID        string `dynamodbav:"sector_id"`
	SectorName      string `dynamodbav:"sector_name"`
	GroupKey        string `dynamodbav:"group_key"`
	GroupName       string `dynamodbav:"group_name"`
	Definition      string `dynamodbav:"definition,omitempty"`
	MinimumQuantity int    `dynamodbav:"minimum_quantity"`
	Active          bool   `dynamodbav:"active"`
	Justification   string `dynamodbav:"justification,omitempty"`
	CreatedAt       string `dynamodbav:"created_at"`
	UpdatedAt       string `dynamodbav:"updated_at"`
}

// MelRuleDynamoRepository persists SectorMelRule entities in DynamoDB.
//
// Table requirements:
//   - PK: rule_key (string) = "<sector_id>#<group_key>"
//
// The composite PK is what enforces "at most one rule per (sector, group)";
// Create's condition expression turns a duplicate into a failed write
// instead of a silent overwrite.

type MelRuleDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IMelRuleRepository = (*MelRuleDynamoRepository)(nil)

func NewMelRuleDynamoRepository(ddb *dynamodb.Client) *MelRuleDynamoRepository {
	return &MelRuleDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("MEL_RULES_TABLE", defaultMelRulesTableName),
	}
}

func (r *MelRuleDynamoRepository) Create(ctx context.Context, rule entities.SectorMelRule) (entities.SectorMelRule, error) {
	it := toMelRuleItem(rule)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.SectorMelRule{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#rule_key)"),
		ExpressionAttributeNames: map[string]string{
			"#rule_key": "rule_key",
		},
	})
	if err != nil {
		return entities.SectorMelRule{}, err
	}
	return rule, nil
}

func (r *MelRuleDynamoRepository) GetByKey(ctx context.Context, sectorID, groupKey string) (entities.SectorMelRule, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"rule_key": &types.AttributeValueMemberS{Value: entities.RuleKey(sectorID, groupKey)},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.SectorMelRule{}, err
	}
	if len(out.Item) == 0 {
		return entities.SectorMelRule{}, nil
	}

	var it melRuleItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.SectorMelRule{}, err
	}
	return fromMelRuleItem(it), nil
}

func (r *MelRuleDynamoRepository) List(ctx context.Context) ([]entities.SectorMelRule, error) {
	return r.scan(ctx, nil, nil, nil)
}

func (r *MelRuleDynamoRepository) ListActive(ctx context.Context) ([]entities.SectorMelRule, error) {
	return r.scan(ctx,
		aws.String("#active = :active"),
		map[string]string{"#active": "active"},
		map[string]types.AttributeValue{":active": &types.AttributeValueMemberBOOL{Value: true}},
	)
}

func (r *MelRuleDynamoRepository) scan(
	ctx context.Context,
	filter *string,
	names map[string]string,
	values map[string]types.AttributeValue,
) ([]entities.SectorMelRule, error) {
	rules := make([]entities.SectorMelRule, 0, 16)

	var startKey map[string]types.AttributeValue
	for {
		out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
			TableName:                 aws.String(r.tableName),
			FilterExpression:          filter,
			ExpressionAttributeNames:  names,
			ExpressionAttributeValues: values,
			ExclusiveStartKey:         startKey,
		})
		if err != nil {
			return nil, err
		}
		for _, raw := range out.Items {
			var it melRuleItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			rules = append(rules, fromMelRuleItem(it))
		}
		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		startKey = out.LastEvaluatedKey
	}
	return rules, nil
}

func (r *MelRuleDynamoRepository) Update(ctx context.Context, rule entities.SectorMelRule) (entities.SectorMelRule, error) {
	now := time.Now().UTC().Format(time.RFC3339Nano)

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"rule_key": &types.AttributeValueMemberS{Value: rule.Key()},
		},
		ConditionExpression: aws.String("attribute_exists(#rule_key)"),
		UpdateExpression: aws.String("SET #sector_name = :sector_name, #group_name = :group_name, " +
			"#definition = :definition, #minimum_quantity = :minimum_quantity, #active = :active, " +
			"#justification = :justification, #updated_at = :updated_at"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":sector_name":      &types.AttributeValueMemberS{Value: rule.SectorName},
			":group_name":       &types.AttributeValueMemberS{Value: rule.GroupName},
			":definition":       &types.AttributeValueMemberS{Value: rule.Definition},
			":minimum_quantity": &types.AttributeValueMemberN{Value: intToString(rule.MinimumQuantity)},
			":active":           &types.AttributeValueMemberBOOL{Value: rule.Active},
			":justification":    &types.AttributeValueMemberS{Value: rule.Justification},
			":updated_at":       &types.AttributeValueMemberS{Value: now},
		},
		ExpressionAttributeNames: map[string]string{
			"#rule_key":         "rule_key",
			"#sector_name":      "sector_name",
			"#group_name":       "group_name",
			"#definition":       "definition",
			"#minimum_quantity": "minimum_quantity",
			"#active":           "active",
			"#justification":    "justification",
			"#updated_at":       "updated_at",
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.SectorMelRule{}, nil
		}
		return entities.SectorMelRule{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.SectorMelRule{}, nil
	}

	var it melRuleItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.SectorMelRule{}, err
	}
	return fromMelRuleItem(it), nil
}

func (r *MelRuleDynamoRepository) Delete(ctx context.Context, sectorID, groupKey string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"rule_key": &types.AttributeValueMemberS{Value: entities.RuleKey(sectorID, groupKey)},
		},
	})
	return err
}

func toMelRuleItem(rule entities.SectorMelRule) melRuleItem {
	return melRuleItem{
		RuleKey:         rule.Key(),
		SectorID:        rule.SectorID,
		SectorName:      rule.SectorName,
		GroupKey:        rule.GroupKey,
		GroupName:       rule.GroupName,
		Definition:      rule.Definition,
		MinimumQuantity: rule.MinimumQuantity,
		Active:          rule.Active,
		Justification:   rule.Justification,
		CreatedAt:       rule.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:       rule.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromMelRuleItem(it melRuleItem) entities.SectorMelRule {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	return entities.SectorMelRule{
		SectorID:        it.SectorID,
		SectorName:      it.SectorName,
		GroupKey:        it.GroupKey,
		GroupName:       it.GroupName,
		Definition:      it.Definition,
		MinimumQuantity: it.MinimumQuantity,
		Active:          it.Active,
		Justification:   it.Justification,
		CreatedAt:       createdAt,
		UpdatedAt:       updatedAt,
	}
}
