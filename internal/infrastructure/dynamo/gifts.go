package dynamo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/YuvaneshV12/chrono-gift/internal/domain"
)

// giftProjection lists every gift attribute except passcode_hash, so
// ordinary reads can never leak the hash. GetWithPasscode is the explicit
// opt-in used only by the open path.
const giftProjection = "gift_id, sender_id, receiver_id, receiver_email, " +
	"text_message, image_url, video_url, unlock_at, is_opened, opened_at, " +
	"created_at, updated_at"

// GiftRepo provides typed DynamoDB operations for the gifts table.
type GiftRepo struct {
	client    *dynamodb.Client
	tableName string
}

func NewGiftRepo(client *dynamodb.Client, tableName string) *GiftRepo {
	return &GiftRepo{client: client, tableName: tableName}
}

func (r *GiftRepo) Put(ctx context.Context, g *domain.Gift) error {
	item, err := attributevalue.MarshalMap(g)
	if err != nil {
		return fmt.Errorf("marshal gift: %w", err)
	}
	_, err = r.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      item,
	})
	return err
}

// Get returns the gift without its passcode hash.
func (r *GiftRepo) Get(ctx context.Context, giftID string) (*domain.Gift, error) {
	return r.get(ctx, giftID, aws.String(giftProjection))
}

// GetWithPasscode returns the gift including its passcode hash.
func (r *GiftRepo) GetWithPasscode(ctx context.Context, giftID string) (*domain.Gift, error) {
	return r.get(ctx, giftID, nil)
}

func (r *GiftRepo) get(ctx context.Context, giftID string, projection *string) (*domain.Gift, error) {
	out, err := r.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:            aws.String(r.tableName),
		Key:                  strKey("gift_id", giftID),
		ProjectionExpression: projection,
	})
	if err != nil {
		return nil, err
	}
	if out.Item == nil {
		return nil, fmt.Errorf("gift not found: %w", domain.ErrNotFound)
	}
	var g domain.Gift
	if err := attributevalue.UnmarshalMap(out.Item, &g); err != nil {
		return nil, err
	}
	return &g, nil
}

// MarkOpened flips is_opened and records the opener, conditioned on the gift
// not having been opened yet. Two concurrent opens race here and the store
// picks the single winner; the loser gets domain.ErrAlreadyOpened.
func (r *GiftRepo) MarkOpened(ctx context.Context, giftID, receiverID string, openedAt time.Time) error {
	_, err := r.client.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:           aws.String(r.tableName),
		Key:                 strKey("gift_id", giftID),
		ConditionExpression: aws.String("is_opened = :f"),
		UpdateExpression:    aws.String("SET is_opened = :t, receiver_id = :rid, opened_at = :at, updated_at = :at"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":f":   &types.AttributeValueMemberBOOL{Value: false},
			":t":   &types.AttributeValueMemberBOOL{Value: true},
			":rid": &types.AttributeValueMemberS{Value: receiverID},
			":at":  &types.AttributeValueMemberS{Value: openedAt.UTC().Format(time.RFC3339)},
		},
	})
	if err != nil {
		var ccfe *types.ConditionalCheckFailedException
		if errors.As(err, &ccfe) {
			return domain.ErrAlreadyOpened
		}
		return err
	}
	return nil
}

// ListBySender returns the gifts created by one sender, via the sender_id GSI.
// The passcode hash is filtered out of the projection here as well.
func (r *GiftRepo) ListBySender(ctx context.Context, senderID string) ([]domain.Gift, error) {
	out, err := r.client.Query(ctx, &dynamodb.QueryInput{
		TableName:                 aws.String(r.tableName),
		IndexName:                 aws.String("sender_id-index"),
		KeyConditionExpression:    aws.String("sender_id = :v"),
		ExpressionAttributeValues: map[string]types.AttributeValue{":v": &types.AttributeValueMemberS{Value: senderID}},
		ProjectionExpression:      aws.String(giftProjection),
	})
	if err != nil {
		return nil, err
	}
	var gifts []domain.Gift
	if err := attributevalue.UnmarshalListOfMaps(out.Items, &gifts); err != nil {
		return nil, err
	}
	return gifts, nil
}
