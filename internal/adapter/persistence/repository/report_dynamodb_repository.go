package repository

import (
	"context"
	"errors"
	"time"

	"veredicto/internal/domain/entities"
	"veredicto/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultReportsTableName = "reports"

type reportItem struct {
	ID                string            `dynamodbav:"id"`
	Domain            string            `dynamodbav:"domain,omitempty"`
	ModulesSelected   []string          `dynamodbav:"modules_selected,omitempty"`
	ProblemsDetected  []string          `dynamodbav:"problems_detected,omitempty"`
	TechnicalSummary  string            `dynamodbav:"technical_summary,omitempty"`
	FullReport        string            `dynamodbav:"full_report,omitempty"`
	SuggestedActions  string            `dynamodbav:"suggested_actions,omitempty"`
	Paid              bool              `dynamodbav:"paid"`
	Sent              bool              `dynamodbav:"sent"`
	RepairActive      bool              `dynamodbav:"repair_active"`
	Email             string            `dynamodbav:"email,omitempty"`
	PendingCheckouts  map[string]string `dynamodbav:"pending_checkouts"`
	ProcessedEventIDs []string          `dynamodbav:"processed_event_ids,omitempty,stringset"`
	DeliveryAttempts  int               `dynamodbav:"delivery_attempts"`
	NeedsReview       bool              `dynamodbav:"needs_review"`
	CreatedAt         string            `dynamodbav:"created_at"`
	UpdatedAt         string            `dynamodbav:"updated_at"`
	SentAt            string            `dynamodbav:"sent_at,omitempty"`
}

// ReportDynamoRepository persists Report entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// Every mutation is a single-item conditional UpdateItem, which gives the
// per-report exclusivity the unlock state machine relies on: concurrent
// deliveries of the same provider event race on the same condition and exactly
// one write lands. processed_event_ids is a string set so the idempotency
// check and the event registration are one atomic operation (contains() in the
// condition, ADD in the update).

type ReportDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IReportRepository = (*ReportDynamoRepository)(nil)

func NewReportDynamoRepository(ddb *dynamodb.Client) *ReportDynamoRepository {
	return &ReportDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("REPORTS_TABLE", defaultReportsTableName),
	}
}

func (r *ReportDynamoRepository) Create(ctx context.Context, rep entities.Report) (entities.Report, error) {
	it := toReportItem(rep)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Report{}, err
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
		return entities.Report{}, err
	}
	return rep, nil
}

func (r *ReportDynamoRepository) GetByID(ctx context.Context, id string) (entities.Report, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Report{}, err
	}
	if len(out.Item) == 0 {
		return entities.Report{}, nil
	}

	var it reportItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Report{}, err
	}
	return fromReportItem(it), nil
}

func (r *ReportDynamoRepository) AddPendingCheckout(ctx context.Context, id, sessionID string, tier entities.Tier) (entities.Report, error) {
	return r.update(ctx, id, func(now string) (string, string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #pc.#sid = :tier, #updated_at = :updated_at"
		cond := "attribute_exists(#id)"
		vals := map[string]types.AttributeValue{
			":tier":       &types.AttributeValueMemberS{Value: string(tier)},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		}
		names := map[string]string{
			"#pc":         "pending_checkouts",
			"#sid":        sessionID,
			"#updated_at": "updated_at",
		}
		return expr, cond, vals, names
	})
}

func (r *ReportDynamoRepository) ApplyPaidEvent(ctx context.Context, id string, ev entities.PaidEvent) (entities.Report, bool, error) {
	flag := "paid"
	if ev.Tier == entities.TierRepair {
		flag = "repair_active"
	}

	now := time.Now().UTC().Format(time.RFC3339Nano)
	expr := "SET #flag = :true, #updated_at = :updated_at"
	names := map[string]string{
		"#id":         "id",
		"#flag":       flag,
		"#pe":         "processed_event_ids",
		"#updated_at": "updated_at",
	}
	vals := map[string]types.AttributeValue{
		":true":       &types.AttributeValueMemberBOOL{Value: true},
		":updated_at": &types.AttributeValueMemberS{Value: now},
		":eid":        &types.AttributeValueMemberS{Value: ev.EventID},
		":eids":       &types.AttributeValueMemberSS{Value: []string{ev.EventID}},
	}
	if ev.PayerEmail != "" {
		expr += ", #email = :email"
		names["#email"] = "email"
		vals[":email"] = &types.AttributeValueMemberS{Value: ev.PayerEmail}
	}
	if ev.SessionID != "" {
		expr += " REMOVE #pc.#sid"
		names["#pc"] = "pending_checkouts"
		names["#sid"] = ev.SessionID
	}
	expr += " ADD #pe :eids"

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression:       aws.String("attribute_exists(#id) AND (attribute_not_exists(#pe) OR NOT contains(#pe, :eid))"),
		UpdateExpression:          aws.String(expr),
		ExpressionAttributeNames:  names,
		ExpressionAttributeValues: vals,
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			// Either the report is unknown or the event id was already
			// applied. Disambiguate with a consistent read.
			existing, gerr := r.GetByID(ctx, id)
			if gerr != nil {
				return entities.Report{}, false, gerr
			}
			return existing, false, nil
		}
		return entities.Report{}, false, err
	}

	var it reportItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Report{}, false, err
	}
	return fromReportItem(it), true, nil
}

func (r *ReportDynamoRepository) SetFullReport(ctx context.Context, id, content string) (entities.Report, error) {
	return r.update(ctx, id, func(now string) (string, string, map[string]types.AttributeValue, map[string]string) {
		// paid = true is part of the condition: premium content can never be
		// written to a locked record, whatever the caller believes.
		expr := "SET #fr = :content, #updated_at = :updated_at"
		cond := "attribute_exists(#id) AND #paid = :true"
		vals := map[string]types.AttributeValue{
			":content":    &types.AttributeValueMemberS{Value: content},
			":updated_at": &types.AttributeValueMemberS{Value: now},
			":true":       &types.AttributeValueMemberBOOL{Value: true},
		}
		names := map[string]string{
			"#fr":         "full_report",
			"#paid":       "paid",
			"#updated_at": "updated_at",
		}
		return expr, cond, vals, names
	})
}

func (r *ReportDynamoRepository) SetSuggestedActions(ctx context.Context, id, content string) (entities.Report, error) {
	return r.update(ctx, id, func(now string) (string, string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #sa = :content, #updated_at = :updated_at"
		cond := "attribute_exists(#id) AND #ra = :true"
		vals := map[string]types.AttributeValue{
			":content":    &types.AttributeValueMemberS{Value: content},
			":updated_at": &types.AttributeValueMemberS{Value: now},
			":true":       &types.AttributeValueMemberBOOL{Value: true},
		}
		names := map[string]string{
			"#sa":         "suggested_actions",
			"#ra":         "repair_active",
			"#updated_at": "updated_at",
		}
		return expr, cond, vals, names
	})
}

func (r *ReportDynamoRepository) MarkSent(ctx context.Context, id string) (entities.Report, error) {
	return r.update(ctx, id, func(now string) (string, string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #sent = :true, #sent_at = :sent_at, #updated_at = :updated_at"
		cond := "attribute_exists(#id) AND #paid = :true"
		vals := map[string]types.AttributeValue{
			":true":       &types.AttributeValueMemberBOOL{Value: true},
			":sent_at":    &types.AttributeValueMemberS{Value: now},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		}
		names := map[string]string{
			"#sent":       "sent",
			"#sent_at":    "sent_at",
			"#paid":       "paid",
			"#updated_at": "updated_at",
		}
		return expr, cond, vals, names
	})
}

func (r *ReportDynamoRepository) RecordDeliveryFailure(ctx context.Context, id string, maxAttempts int) (entities.Report, error) {
	rep, err := r.update(ctx, id, func(now string) (string, string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #updated_at = :updated_at ADD #da :one"
		cond := "attribute_exists(#id)"
		vals := map[string]types.AttributeValue{
			":one":        &types.AttributeValueMemberN{Value: "1"},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		}
		names := map[string]string{
			"#da":         "delivery_attempts",
			"#updated_at": "updated_at",
		}
		return expr, cond, vals, names
	})
	if err != nil || rep.ID == "" {
		return rep, err
	}
	if maxAttempts > 0 && rep.DeliveryAttempts >= maxAttempts && !rep.NeedsReview {
		return r.update(ctx, id, func(now string) (string, string, map[string]types.AttributeValue, map[string]string) {
			expr := "SET #nr = :true, #updated_at = :updated_at"
			cond := "attribute_exists(#id)"
			vals := map[string]types.AttributeValue{
				":true":       &types.AttributeValueMemberBOOL{Value: true},
				":updated_at": &types.AttributeValueMemberS{Value: now},
			}
			names := map[string]string{
				"#nr":         "needs_review",
				"#updated_at": "updated_at",
			}
			return expr, cond, vals, names
		})
	}
	return rep, nil
}

func (r *ReportDynamoRepository) ListAwaitingFulfillment(ctx context.Context) ([]entities.Report, error) {
	filter := "((#paid = :true AND #sent = :false) OR (#ra = :true AND attribute_not_exists(#sa)))" +
		" AND (attribute_not_exists(#nr) OR #nr = :false)"

	var reports []entities.Report
	var startKey map[string]types.AttributeValue
	for {
		out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
			TableName:        aws.String(r.tableName),
			FilterExpression: aws.String(filter),
			ExpressionAttributeNames: map[string]string{
				"#paid": "paid",
				"#sent": "sent",
				"#ra":   "repair_active",
				"#sa":   "suggested_actions",
				"#nr":   "needs_review",
			},
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":true":  &types.AttributeValueMemberBOOL{Value: true},
				":false": &types.AttributeValueMemberBOOL{Value: false},
			},
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, err
		}
		for _, raw := range out.Items {
			var it reportItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			reports = append(reports, fromReportItem(it))
		}
		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		startKey = out.LastEvaluatedKey
	}
	return reports, nil
}

func (r *ReportDynamoRepository) update(
	ctx context.Context,
	id string,
	build func(now string) (updateExpr, condExpr string, values map[string]types.AttributeValue, names map[string]string),
) (entities.Report, error) {
	now := time.Now().UTC().Format(time.RFC3339Nano)
	updateExpr, condExpr, values, names := build(now)

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression:       aws.String(condExpr),
		UpdateExpression:          aws.String(updateExpr),
		ExpressionAttributeValues: values,
		ExpressionAttributeNames:  mergeNames(names, map[string]string{"#id": "id"}),
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Report{}, nil
		}
		return entities.Report{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Report{}, nil
	}
	var it reportItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Report{}, err
	}
	return fromReportItem(it), nil
}

func toReportItem(rep entities.Report) reportItem {
	pending := make(map[string]string, len(rep.PendingCheckouts))
	for sid, tier := range rep.PendingCheckouts {
		pending[sid] = string(tier)
	}
	it := reportItem{
		ID:                rep.ID,
		Domain:            rep.Domain,
		ModulesSelected:   rep.ModulesSelected,
		ProblemsDetected:  rep.ProblemsDetected,
		TechnicalSummary:  rep.TechnicalSummary,
		FullReport:        rep.FullReport,
		SuggestedActions:  rep.SuggestedActions,
		Paid:              rep.Paid,
		Sent:              rep.Sent,
		RepairActive:      rep.RepairActive,
		Email:             rep.Email,
		PendingCheckouts:  pending,
		ProcessedEventIDs: rep.ProcessedEventIDs,
		DeliveryAttempts:  rep.DeliveryAttempts,
		NeedsReview:       rep.NeedsReview,
		CreatedAt:         rep.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:         rep.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
	if rep.SentAt != nil {
		it.SentAt = rep.SentAt.UTC().Format(time.RFC3339Nano)
	}
	return it
}

func fromReportItem(it reportItem) entities.Report {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	pending := make(map[string]entities.Tier, len(it.PendingCheckouts))
	for sid, tier := range it.PendingCheckouts {
		pending[sid] = entities.Tier(tier)
	}
	rep := entities.Report{
		ID:                it.ID,
		Domain:            it.Domain,
		ModulesSelected:   it.ModulesSelected,
		ProblemsDetected:  it.ProblemsDetected,
		TechnicalSummary:  it.TechnicalSummary,
		FullReport:        it.FullReport,
		SuggestedActions:  it.SuggestedActions,
		Paid:              it.Paid,
		Sent:              it.Sent,
		RepairActive:      it.RepairActive,
		Email:             it.Email,
		PendingCheckouts:  pending,
		ProcessedEventIDs: it.ProcessedEventIDs,
		DeliveryAttempts:  it.DeliveryAttempts,
		NeedsReview:       it.NeedsReview,
		CreatedAt:         createdAt,
		UpdatedAt:         updatedAt,
	}
	if it.SentAt != "" {
		if sentAt, err := time.Parse(time.RFC3339Nano, it.SentAt); err == nil {
			rep.SentAt = &sentAt
		}
	}
	return rep
}

func mergeNames(a, b map[string]string) map[string]string {
	if len(a) == 0 {
		return b
	}
	if len(b) == 0 {
		return a
	}
	out := make(map[string]string, len(a)+len(b))
	for k, v := range a {
		out[k] = v
	}
	for k, v := range b {
		out[k] = v
	}
	return out
}
