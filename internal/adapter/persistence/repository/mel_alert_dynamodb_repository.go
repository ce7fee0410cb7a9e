package repository

import (
	"context"
	"errors"
	"strconv"
	"time"

	"hsj_mel/internal/domain/entities"
	"hsj_mel/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultMelAlertsTableName = "mel_alerts"
	melAlertsRuleKeyIndex     = "rule_key-index"
	melAlertsStatusIndex      = "status-index"
)

type melAlertItem struct {
	ID         string `dynamodbav:"id"`
	RuleKey    string `dynamodbav:"rule_key"`
	SectorID   string `dynamodbav:"sector_id"`
	SectorName string `dynamodbav:"sector_name"`
	GroupKey   string `dynamodbav:"group_key"`
	GroupName  string `dynamodbav:"group_name"`

	Available   int `dynamodbav:"available"`
	Total       int `dynamodbav:"total"`
	Unavailable int `dynamodbav:"unavailable"`
	Minimum     int `dynamodbav:"minimum"`

	Status     string `dynamodbav:"status"`
	CreatedAt  string `dynamodbav:"created_at"`
	UpdatedAt  string `dynamodbav:"updated_at"`
	ResolvedAt string `dynamodbav:"resolved_at,omitempty"`
}

// MelAlertDynamoRepository persists MelAlert entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string, uuid)
//   - GSI: rule_key-index (PK: rule_key)
//   - GSI: status-index (PK: status)
//
// Alerts are append-then-mutate: the engine creates, refreshes counts and
// resolves, but never deletes — alert history is the audit trail.

type MelAlertDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IMelAlertRepository = (*MelAlertDynamoRepository)(nil)

func NewMelAlertDynamoRepository(ddb *dynamodb.Client) *MelAlertDynamoRepository {
	return &MelAlertDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("MEL_ALERTS_TABLE", defaultMelAlertsTableName),
	}
}

func (r *MelAlertDynamoRepository) Create(ctx context.Context, a entities.MelAlert) (entities.MelAlert, error) {
	it := toMelAlertItem(a)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.MelAlert{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.MelAlert{}, err
	}
	return a, nil
}

func (r *MelAlertDynamoRepository) UpdateCounts(ctx context.Context, id string, available, total, unavailable int) (entities.MelAlert, error) {
	return r.update(ctx, id, func(now string) (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #available = :available, #total = :total, #unavailable = :unavailable, #updated_at = :updated_at"
		vals := map[string]types.AttributeValue{
			":available":   &types.AttributeValueMemberN{Value: intToString(available)},
			":total":       &types.AttributeValueMemberN{Value: intToString(total)},
			":unavailable": &types.AttributeValueMemberN{Value: intToString(unavailable)},
			":updated_at":  &types.AttributeValueMemberS{Value: now},
		}
		names := map[string]string{
			"#available":   "available",
			"#total":       "total",
			"#unavailable": "unavailable",
			"#updated_at":  "updated_at",
		}
		return expr, vals, names
	})
}

func (r *MelAlertDynamoRepository) Resolve(ctx context.Context, id string, resolvedAt time.Time) (entities.MelAlert, error) {
	return r.update(ctx, id, func(now string) (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #status = :status, #resolved_at = :resolved_at, #updated_at = :updated_at"
		vals := map[string]types.AttributeValue{
			":status":      &types.AttributeValueMemberS{Value: string(entities.MelAlertStatusResolvido)},
			":resolved_at": &types.AttributeValueMemberS{Value: resolvedAt.UTC().Format(time.RFC3339Nano)},
			":updated_at":  &types.AttributeValueMemberS{Value: now},
		}
		names := map[string]string{
			"#status":      "status",
			"#resolved_at": "resolved_at",
			"#updated_at":  "updated_at",
		}
		return expr, vals, names
	})
}

func (r *MelAlertDynamoRepository) update(
	ctx context.Context,
	id string,
	build func(now string) (updateExpr string, values map[string]types.AttributeValue, names map[string]string),
) (entities.MelAlert, error) {
	now := time.Now().UTC().Format(time.RFC3339Nano)
	updateExpr, values, names := build(now)

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression:       aws.String("attribute_exists(#id)"),
		UpdateExpression:          aws.String(updateExpr),
		ExpressionAttributeValues: values,
		ExpressionAttributeNames:  mergeNames(names, map[string]string{"#id": "id"}),
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.MelAlert{}, nil
		}
		return entities.MelAlert{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.MelAlert{}, nil
	}
	var it melAlertItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.MelAlert{}, err
	}
	return fromMelAlertItem(it), nil
}

func (r *MelAlertDynamoRepository) GetActiveByRuleKey(ctx context.Context, ruleKey string) (entities.MelAlert, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(melAlertsRuleKeyIndex),
		KeyConditionExpression: aws.String("rule_key = :rk"),
		FilterExpression:       aws.String("#status = :status"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":rk":     &types.AttributeValueMemberS{Value: ruleKey},
			":status": &types.AttributeValueMemberS{Value: string(entities.MelAlertStatusAtivo)},
		},
		ExpressionAttributeNames: map[string]string{
			"#status": "status",
		},
	})
	if err != nil {
		return entities.MelAlert{}, err
	}
	if len(out.Items) == 0 {
		return entities.MelAlert{}, nil
	}

	// The reconciler keeps at most one open alert per rule; if the table
	// ever carries more, the first is the one it keeps maintaining.
	var it melAlertItem
	if err := attributevalue.UnmarshalMap(out.Items[0], &it); err != nil {
		return entities.MelAlert{}, err
	}
	return fromMelAlertItem(it), nil
}

func (r *MelAlertDynamoRepository) ListActive(ctx context.Context) ([]entities.MelAlert, error) {
	alerts := make([]entities.MelAlert, 0, 16)

	var startKey map[string]types.AttributeValue
	for {
		out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
			TableName:              aws.String(r.tableName),
			IndexName:              aws.String(melAlertsStatusIndex),
			KeyConditionExpression: aws.String("#status = :status"),
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":status": &types.AttributeValueMemberS{Value: string(entities.MelAlertStatusAtivo)},
			},
			ExpressionAttributeNames: map[string]string{
				"#status": "status",
			},
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, err
		}
		for _, raw := range out.Items {
			var it melAlertItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			alerts = append(alerts, fromMelAlertItem(it))
		}
		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		startKey = out.LastEvaluatedKey
	}
	return alerts, nil
}

func (r *MelAlertDynamoRepository) List(ctx context.Context) ([]entities.MelAlert, error) {
	alerts := make([]entities.MelAlert, 0, 16)

	var startKey map[string]types.AttributeValue
	for {
		out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
			TableName:         aws.String(r.tableName),
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, err
		}
		for _, raw := range out.Items {
			var it melAlertItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			alerts = append(alerts, fromMelAlertItem(it))
		}
		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		startKey = out.LastEvaluatedKey
	}
	return alerts, nil
}

func toMelAlertItem(a entities.MelAlert) melAlertItem {
	it := melAlertItem{
		ID:          a.ID,
		RuleKey:     a.RuleKey,
		SectorID:    a.SectorID,
		SectorName:  a.SectorName,
		GroupKey:    a.GroupKey,
		GroupName:   a.GroupName,
		Available:   a.Available,
		Total:       a.Total,
		Unavailable: a.Unavailable,
		Minimum:     a.Minimum,
		Status:      string(a.Status),
		CreatedAt:   a.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:   a.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
	if a.ResolvedAt != nil {
		it.ResolvedAt = a.ResolvedAt.UTC().Format(time.RFC3339Nano)
	}
	return it
}

func fromMelAlertItem(it melAlertItem) entities.MelAlert {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	a := entities.MelAlert{
		ID:          it.ID,
		RuleKey:     it.RuleKey,
		SectorID:    it.SectorID,
		SectorName:  it.SectorName,
		GroupKey:    it.GroupKey,
		GroupName:   it.GroupName,
		Available:   it.Available,
		Total:       it.Total,
		Unavailable: it.Unavailable,
		Minimum:     it.Minimum,
		Status:      entities.MelAlertStatus(it.Status),
		CreatedAt:   createdAt,
		UpdatedAt:   updatedAt,
	}
	if it.ResolvedAt != "" {
		if resolvedAt, err := time.Parse(time.RFC3339Nano, it.ResolvedAt); err == nil {
			a.ResolvedAt = &resolvedAt
		}
	}
	return a
}

func intToString(v int) string {
	return strconv.Itoa(v)
}
