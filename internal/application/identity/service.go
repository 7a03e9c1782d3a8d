package identity

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/YuvaneshV12/chrono-gift/internal/domain"
	"github.com/YuvaneshV12/chrono-gift/internal/infrastructure/google"
	"github.com/YuvaneshV12/chrono-gift/internal/pkg/id"
)

type Service interface {
	// Resolve exchanges a Google credential for the local identity,
	// creating it on first sight. The returned email is always lowercased.
	Resolve(ctx context.Context, token string) (*domain.User, error)
}

type googleVerifier interface {
	Verify(ctx context.Context, token string) (*google.Payload, error)
}

type userStore interface {
	GetBySub(ctx context.Context, googleSub string) (*domain.User, error)
	Put(ctx context.Context, u *domain.User) error
	Update(ctx context.Context, userID string, updates map[string]interface{}) error
}

type service struct {
	verifier googleVerifier
	repo     userStore
}

func NewService(verifier googleVerifier, repo userStore) Service {
	return &service{verifier: verifier, repo: repo}
}

func (s *service) Resolve(ctx context.Context, token string) (*domain.User, error) {
	p, err := s.verifier.Verify(ctx, token)
	if err != nil {
		return nil, err
	}
	email := strings.ToLower(p.Email)

	u, err := s.repo.GetBySub(ctx, p.Sub)
	if errors.Is(err, domain.ErrNotFound) {
		now := time.Now().UTC()
		u = &domain.User{
			UserID:    id.New(),
			GoogleSub: p.Sub,
			Email:     email,
			Name:      p.Name,
			Picture:   p.Picture,
			CreatedAt: now,
			UpdatedAt: now,
		}
		if err := s.repo.Put(ctx, u); err != nil {
			return nil, fmt.Errorf("create identity: %w", err)
		}
		return u, nil
	}
	if err != nil {
		return nil, err
	}

	// Display fields follow the provider; the subject id never changes.
	updates := map[string]interface{}{}
	if p.Name != "" && p.Name != u.Name {
		updates["name"] = p.Name
	}
	if p.Picture != "" && p.Picture != u.Picture {
		updates["picture"] = p.Picture
	}
	if len(updates) > 0 {
		if err := s.repo.Update(ctx, u.UserID, updates); err != nil {
			slog.Warn("failed to refresh identity display fields", "user_id", u.UserID, "err", err)
		} else {
			if v, ok := updates["name"].(string); ok {
				u.Name = v
			}
			if v, ok := updates["picture"].(string); ok {
				u.Picture = v
			}
		}
	}
	u.Email = strings.ToLower(u.Email)
	return u, nil
}
