package repository

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"cablequote/internal/domain/entities"
	"cablequote/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const DefaultApprovalsTableName = "cablequote_approvals"

var ErrApprovalExists = errors.New("approval request already exists")

type approvalItem struct {
	ID           string  `dynamodbav:"id"`
	QuoteNumber  string  `dynamodbav:"quote_number"`
	CustomerID   string  `dynamodbav:"customer_id"`
	CustomerName string  `dynamodbav:"customer_name"`
	ProjectName  string  `dynamodbav:"project_name,omitempty"`
	Agent        string  `dynamodbav:"agent"`
	Amount       float64 `dynamodbav:"amount"`
	ItemCount    int     `dynamodbav:"item_count"`
	Status       string  `dynamodbav:"status"`
	DecidedBy    string  `dynamodbav:"decided_by,omitempty"`
	CreatedAt    string  `dynamodbav:"created_at"`
	UpdatedAt    string  `dynamodbav:"updated_at"`
}

// ApprovalDynamoRepository persists ApprovalRequest entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// Decisions are conditional writes on status = pending, so two admins
// deciding the same request cannot both win.
type ApprovalDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.IApprovalRepository = (*ApprovalDynamoRepository)(nil)

func NewApprovalDynamoRepository(ddb DynamoAPI, tableName string) *ApprovalDynamoRepository {
	return &ApprovalDynamoRepository{
		ddb:       ddb,
		tableName: tableOrDefault(tableName, DefaultApprovalsTableName),
	}
}

func (r *ApprovalDynamoRepository) Create(ctx context.Context, a entities.ApprovalRequest) (entities.ApprovalRequest, error) {
	written, err := putIfAbsent(ctx, r.ddb, r.tableName, toApprovalItem(a))
	if err != nil {
		return entities.ApprovalRequest{}, err
	}
	if !written {
		return entities.ApprovalRequest{}, fmt.Errorf("%w: %s", ErrApprovalExists, a.ID)
	}
	return a, nil
}

func (r *ApprovalDynamoRepository) GetByID(ctx context.Context, id string) (entities.ApprovalRequest, error) {
	item, found, err := getByID[approvalItem](ctx, r.ddb, r.tableName, id)
	if err != nil || !found {
		return entities.ApprovalRequest{}, err
	}
	return fromApprovalItem(item), nil
}

// List returns the newest requests first.
func (r *ApprovalDynamoRepository) List(ctx context.Context, status entities.ApprovalStatus) ([]entities.ApprovalRequest, error) {
	in := &dynamodb.ScanInput{TableName: aws.String(r.tableName)}
	if status != "" {
		in.FilterExpression = aws.String("#status = :status")
		in.ExpressionAttributeNames = map[string]string{"#status": "status"}
		in.ExpressionAttributeValues = map[string]types.AttributeValue{
			":status": &types.AttributeValueMemberS{Value: string(status)},
		}
	}

	items, err := scanAll[approvalItem](ctx, r.ddb, in)
	if err != nil {
		return nil, err
	}

	out := make([]entities.ApprovalRequest, 0, len(items))
	for _, it := range items {
		out = append(out, fromApprovalItem(it))
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID < out[j].ID
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (r *ApprovalDynamoRepository) UpdateStatus(
	ctx context.Context,
	id string,
	status entities.ApprovalStatus,
	decidedBy string,
	at time.Time,
) (entities.ApprovalRequest, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id) AND #status = :pending"),
		UpdateExpression:    aws.String("SET #status = :status, #decided_by = :decided_by, #updated_at = :updated_at"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":pending":    &types.AttributeValueMemberS{Value: string(entities.ApprovalStatusPending)},
			":status":     &types.AttributeValueMemberS{Value: string(status)},
			":decided_by": &types.AttributeValueMemberS{Value: decidedBy},
			":updated_at": &types.AttributeValueMemberS{Value: formatTime(at)},
		},
		ExpressionAttributeNames: mergeNames(
			map[string]string{"#status": "status", "#decided_by": "decided_by", "#updated_at": "updated_at"},
			map[string]string{"#id": "id"},
		),
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		if isConditionFailed(err) {
			return entities.ApprovalRequest{}, nil
		}
		return entities.ApprovalRequest{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.ApprovalRequest{}, nil
	}

	var it approvalItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.ApprovalRequest{}, err
	}
	return fromApprovalItem(it), nil
}

func isConditionFailed(err error) bool {
	var cfe *types.ConditionalCheckFailedException
	return errors.As(err, &cfe)
}

func toApprovalItem(a entities.ApprovalRequest) approvalItem {
	return approvalItem{
		ID:           a.ID,
		QuoteNumber:  a.QuoteNumber,
		CustomerID:   a.CustomerID,
		CustomerName: a.CustomerName,
		ProjectName:  a.ProjectName,
		Agent:        a.Agent,
		Amount:       a.Amount,
		ItemCount:    a.ItemCount,
		Status:       string(a.Status),
		DecidedBy:    a.DecidedBy,
		CreatedAt:    formatTime(a.CreatedAt),
		UpdatedAt:    formatTime(a.UpdatedAt),
	}
}

func fromApprovalItem(it approvalItem) entities.ApprovalRequest {
	return entities.ApprovalRequest{
		ID:           it.ID,
		QuoteNumber:  it.QuoteNumber,
		CustomerID:   it.CustomerID,
		CustomerName: it.CustomerName,
		ProjectName:  it.ProjectName,
		Agent:        it.Agent,
		Amount:       it.Amount,
		ItemCount:    it.ItemCount,
		Status:       entities.ApprovalStatus(it.Status),
		DecidedBy:    it.DecidedBy,
		CreatedAt:    parseTime(it.CreatedAt),
		UpdatedAt:    parseTime(it.UpdatedAt),
	}
}
