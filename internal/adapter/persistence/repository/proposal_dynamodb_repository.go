package repository

import (
	"context"
	"errors"
	"sort"
	"strconv"
	"time"

	"proposal_catalog/internal/domain/entities"
	"proposal_catalog/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultProposalsTableName = "proposals"

type proposalItem struct {
	ID               string   `dynamodbav:"id"`
	ClientID         string   `dynamodbav:"client_id"`
	ProductID        string   `dynamodbav:"product_id"`
	Quantity         int      `dynamodbav:"quantity"`
	StartDate        string   `dynamodbav:"start_date"`
	SelectedAddOnIDs []string `dynamodbav:"selected_add_on_ids"`
	Total            string   `dynamodbav:"total"`
	Status           string   `dynamodbav:"status"`
	Notes            string   `dynamodbav:"notes"`
	CreatedAt        string   `dynamodbav:"created_at"`
	UpdatedAt        string   `dynamodbav:"updated_at"`
}

// ProposalDynamoRepository persists Proposal entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// DynamoDB scans are unordered, so List sorts by created_at to restore
// insertion order.

type ProposalDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IProposalRepository = (*ProposalDynamoRepository)(nil)

// NewProposalDynamoRepository uses tableName, or "proposals" when it is empty.
func NewProposalDynamoRepository(ddb *dynamodb.Client, tableName string) *ProposalDynamoRepository {
	if tableName == "" {
		tableName = defaultProposalsTableName
	}
	return &ProposalDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *ProposalDynamoRepository) Create(ctx context.Context, p entities.Proposal) (entities.Proposal, error) {
	it := toProposalItem(p)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Proposal{}, err
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
		return entities.Proposal{}, err
	}
	return p, nil
}

func (r *ProposalDynamoRepository) GetByID(ctx context.Context, id string) (entities.Proposal, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Proposal{}, err
	}
	if len(out.Item) == 0 {
		return entities.Proposal{}, nil
	}

	var it proposalItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Proposal{}, err
	}
	return fromProposalItem(it), nil
}

func (r *ProposalDynamoRepository) List(ctx context.Context) ([]entities.Proposal, error) {
	var items []entities.Proposal
	paginator := dynamodb.NewScanPaginator(r.ddb, &dynamodb.ScanInput{
		TableName:      aws.String(r.tableName),
		ConsistentRead: aws.Bool(true),
	})
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, raw := range page.Items {
			var it proposalItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			items = append(items, fromProposalItem(it))
		}
	}
	sortByInsertion(items)
	return items, nil
}

func (r *ProposalDynamoRepository) UpdateStatusByID(ctx context.Context, id string, status entities.ProposalStatus) (entities.Proposal, error) {
	now := time.Now().UTC().Format(time.RFC3339Nano)

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression:    aws.String("SET #status = :status, #updated_at = :updated_at"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":status":     &types.AttributeValueMemberS{Value: string(status)},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		},
		ExpressionAttributeNames: map[string]string{
			"#id":         "id",
			"#status":     "status",
			"#updated_at": "updated_at",
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Proposal{}, nil
		}
		return entities.Proposal{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Proposal{}, nil
	}
	var it proposalItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Proposal{}, err
	}
	return fromProposalItem(it), nil
}

func toProposalItem(p entities.Proposal) proposalItem {
	ids := p.SelectedAddOnIDs
	if ids == nil {
		ids = []string{}
	}
	return proposalItem{
		ID:               p.ID,
		ClientID:         p.ClientID,
		ProductID:        p.ProductID,
		Quantity:         p.Quantity,
		StartDate:        p.StartDate,
		SelectedAddOnIDs: ids,
		Total:            floatToString(p.Total),
		Status:           string(p.Status),
		Notes:            p.Notes,
		CreatedAt:        p.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:        p.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromProposalItem(it proposalItem) entities.Proposal {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	total, _ := strconv.ParseFloat(it.Total, 64)
	ids := it.SelectedAddOnIDs
	if ids == nil {
		ids = []string{}
	}
	return entities.Proposal{
		ID:               it.ID,
		ClientID:         it.ClientID,
		ProductID:        it.ProductID,
		Quantity:         it.Quantity,
		StartDate:        it.StartDate,
		SelectedAddOnIDs: ids,
		Total:            total,
		Status:           entities.ProposalStatus(it.Status),
		Notes:            it.Notes,
		CreatedAt:        createdAt,
		UpdatedAt:        updatedAt,
	}
}

func sortByInsertion(ps []entities.Proposal) {
	sort.SliceStable(ps, func(i, j int) bool {
		if !ps[i].CreatedAt.Equal(ps[j].CreatedAt) {
			return ps[i].CreatedAt.Before(ps[j].CreatedAt)
		}
		return ps[i].ID < ps[j].ID
	})
}

func floatToString(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
