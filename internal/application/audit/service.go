package audit

import (
	"context"
	"log/slog"
	"time"

	"github.com/YuvaneshV12/chrono-gift/internal/domain"
	"github.com/YuvaneshV12/chrono-gift/internal/pkg/id"
)

// Recorder appends gift lifecycle events. Recording is best-effort: a
// failed write is logged and swallowed so it can never change the outcome
// of the create or open that triggered it. Nothing reads the trail back
// into authorization decisions.
type Recorder interface {
	Record(ctx context.Context, giftID, senderID string, receiverID *string, status string)
	List(ctx context.Context) ([]domain.Transaction, error)
	ListByGift(ctx context.Context, giftID string) ([]domain.Transaction, error)
}

type txStore interface {
	Put(ctx context.Context, tx *domain.Transaction) error
	Scan(ctx context.Context) ([]domain.Transaction, error)
	ListByGift(ctx context.Context, giftID string) ([]domain.Transaction, error)
}

type recorder struct {
	repo txStore
}

func NewRecorder(repo txStore) Recorder {
	return &recorder{repo: repo}
}

func (r *recorder) Record(ctx context.Context, giftID, senderID string, receiverID *string, status string) {
	tx := &domain.Transaction{
		TransactionID: id.New(),
		GiftID:        giftID,
		Sender:        senderID,
		Receiver:      receiverID,
		Status:        status,
		CreatedAt:     time.Now().UTC(),
	}
	if err := r.repo.Put(ctx, tx); err != nil {
		slog.Warn("failed to record transaction", "gift_id", giftID, "status", status, "err", err)
	}
}

func (r *recorder) List(ctx context.Context) ([]domain.Transaction, error) {
	return r.repo.Scan(ctx)
}

func (r *recorder) ListByGift(ctx context.Context, giftID string) ([]domain.Transaction, error) {
	return r.repo.ListByGift(ctx, giftID)
}
