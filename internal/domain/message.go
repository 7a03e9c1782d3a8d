package domain

import "time"

// GiftMessage is a well-wish note attached to a gift by its sender.
type GiftMessage struct {
	MessageID     string    `json:"id" dynamodbav:"message_id"`
	GiftID        string    `json:"gift_id" dynamodbav:"gift_id"`
	SenderID      string    `json:"sender_id" dynamodbav:"sender_id"`
	ReceiverEmail string    `json:"receiver_email" dynamodbav:"receiver_email"`
	MessageText   string    `json:"message_text" dynamodbav:"message_text"`
	CreatedAt     time.Time `json:"created" dynamodbav:"created_at"`
}

type CreateMessageRequest struct {
	GiftID        string `json:"gift_id" validate:"required"`
	SenderID      string `json:"sender_id" validate:"required"`
	ReceiverEmail string `json:"receiver_email" validate:"required,email"`
	MessageText   string `json:"message_text" validate:"required"`
}
