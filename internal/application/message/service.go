package message

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/YuvaneshV12/chrono-gift/internal/domain"
	"github.com/YuvaneshV12/chrono-gift/internal/pkg/id"
	"github.com/YuvaneshV12/chrono-gift/internal/pkg/validate"
)

type Service interface {
	Create(ctx context.Context, req domain.CreateMessageRequest) (*domain.GiftMessage, error)
	ListByGift(ctx context.Context, giftID string) ([]domain.GiftMessage, error)
}

type messageStore interface {
	Put(ctx context.Context, m *domain.GiftMessage) error
	ListByGift(ctx context.Context, giftID string) ([]domain.GiftMessage, error)
}

type giftStore interface {
	Get(ctx context.Context, giftID string) (*domain.Gift, error)
}

type service struct {
	repo     messageStore
	giftRepo giftStore
}

func NewService(repo messageStore, giftRepo giftStore) Service {
	return &service{repo: repo, giftRepo: giftRepo}
}

func (s *service) Create(ctx context.Context, req domain.CreateMessageRequest) (*domain.GiftMessage, error) {
	if err := validate.Struct(req); err != nil {
		return nil, fmt.Errorf("%s: %w", err, domain.ErrBadRequest)
	}
	// Messages only attach to gifts that exist.
	if _, err := s.giftRepo.Get(ctx, req.GiftID); err != nil {
		return nil, err
	}
	m := &domain.GiftMessage{
		MessageID:     id.New(),
		GiftID:        req.GiftID,
		SenderID:      req.SenderID,
		ReceiverEmail: strings.ToLower(req.ReceiverEmail),
		MessageText:   req.MessageText,
		CreatedAt:     time.Now().UTC(),
	}
	if err := s.repo.Put(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}

func (s *service) ListByGift(ctx context.Context, giftID string) ([]domain.GiftMessage, error) {
	return s.repo.ListByGift(ctx, giftID)
}
