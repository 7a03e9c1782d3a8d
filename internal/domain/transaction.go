package domain

import "time"

// Transaction statuses. One CREATED per gift, at most one OPENED.
const (
	TxCreated = "CREATED"
	TxOpened  = "OPENED"
)

// Transaction is an append-only audit event for a gift's lifecycle.
// It is never read back to make authorization decisions.
type Transaction struct {
	TransactionID string    `json:"id" dynamodbav:"transaction_id"`
	GiftID        string    `json:"gift_id" dynamodbav:"gift_id"`
	Sender        string    `json:"sender" dynamodbav:"sender"`
	Receiver      *string   `json:"receiver,omitempty" dynamodbav:"receiver"`
	Status        string    `json:"status" dynamodbav:"status"`
	CreatedAt     time.Time `json:"created" dynamodbav:"created_at"`
}
