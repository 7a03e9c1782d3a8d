package gift

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/YuvaneshV12/chrono-gift/internal/domain"
	"github.com/YuvaneshV12/chrono-gift/internal/infrastructure/smtp"
	"github.com/YuvaneshV12/chrono-gift/internal/pkg/id"
	"github.com/YuvaneshV12/chrono-gift/internal/pkg/passcode"
	"github.com/YuvaneshV12/chrono-gift/internal/pkg/validate"
)

// unlockDisplayFormat renders the unlock instant for humans in denial
// messages, e.g. "Sunday, January 4, 2026 5:30 PM IST".
const unlockDisplayFormat = "Monday, January 2, 2006 3:04 PM MST"

// Accepted unlock timestamp layouts. Zone-less layouts are interpreted in
// the configured display zone; everything is stored as a UTC instant.
var unlockLayouts = []string{
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
}

type Service interface {
	Create(ctx context.Context, req domain.CreateGiftRequest) (*domain.Gift, error)
	// Open is the unlock gate: it authorizes the claimant against the gift
	// and, only when every check passes, marks the gift opened exactly once
	// and releases the payload.
	Open(ctx context.Context, giftID string, claimant *domain.User, enteredPasscode string) (*domain.OpenedView, error)
	Get(ctx context.Context, giftID string) (*domain.PublicView, error)
	ListBySender(ctx context.Context, senderID string) ([]domain.Gift, error)
}

type giftStore interface {
	Put(ctx context.Context, g *domain.Gift) error
	Get(ctx context.Context, giftID string) (*domain.Gift, error)
	GetWithPasscode(ctx context.Context, giftID string) (*domain.Gift, error)
	MarkOpened(ctx context.Context, giftID, receiverID string, openedAt time.Time) error
	ListBySender(ctx context.Context, senderID string) ([]domain.Gift, error)
}

type auditRecorder interface {
	Record(ctx context.Context, giftID, senderID string, receiverID *string, status string)
}

type service struct {
	repo          giftStore
	audit         auditRecorder
	mailer        smtp.Mailer
	displayLoc    *time.Location
	publicBaseURL string
	now           func() time.Time
}

type ServiceDeps struct {
	GiftRepo      giftStore
	Audit         auditRecorder
	Mailer        smtp.Mailer // optional; recipient notification is best-effort
	DisplayLoc    *time.Location
	PublicBaseURL string
	Now           func() time.Time // defaults to time.Now
}

func NewService(deps ServiceDeps) Service {
	now := deps.Now
	if now == nil {
		now = time.Now
	}
	loc := deps.DisplayLoc
	if loc == nil {
		loc = time.UTC
	}
	return &service{
		repo:          deps.GiftRepo,
		audit:         deps.Audit,
		mailer:        deps.Mailer,
		displayLoc:    loc,
		publicBaseURL: deps.PublicBaseURL,
		now:           now,
	}
}

func (s *service) Create(ctx context.Context, req domain.CreateGiftRequest) (*domain.Gift, error) {
	if err := validate.Struct(req); err != nil {
		return nil, fmt.Errorf("%s: %w", err, domain.ErrBadRequest)
	}
	unlockAt, err := s.parseUnlockInstant(req.UnlockTimestamp)
	if err != nil {
		return nil, fmt.Errorf("invalid unlock_timestamp format: %w", domain.ErrBadRequest)
	}
	if !unlockAt.After(s.now().UTC()) {
		return nil, fmt.Errorf("unlock_timestamp must be in the future: %w", domain.ErrBadRequest)
	}
	hash, err := passcode.Seal(req.Passcode)
	if err != nil {
		return nil, err
	}

	now := s.now().UTC()
	g := &domain.Gift{
		GiftID:        id.New(),
		SenderID:      req.SenderID,
		ReceiverEmail: strings.ToLower(req.ReceiverEmail),
		TextMessage:   req.TextMessage,
		ImageURL:      req.ImageURL,
		VideoURL:      req.VideoURL,
		UnlockAt:      unlockAt,
		PasscodeHash:  hash,
		IsOpened:      false,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := s.repo.Put(ctx, g); err != nil {
		return nil, err
	}

	s.audit.Record(ctx, g.GiftID, g.SenderID, nil, domain.TxCreated)
	s.notifyRecipient(g)
	return g, nil
}

// Open evaluates the unlock checks in a fixed order: already-opened,
// recipient, unlock time, passcode. The first failing check denies the
// attempt. Only the allow path mutates state, through a conditional write,
// so concurrent opens have a single winner.
func (s *service) Open(ctx context.Context, giftID string, claimant *domain.User, enteredPasscode string) (*domain.OpenedView, error) {
	g, err := s.repo.GetWithPasscode(ctx, giftID)
	if err != nil {
		return nil, err
	}

	if g.IsOpened {
		return nil, domain.ErrAlreadyOpened
	}
	if !strings.EqualFold(g.ReceiverEmail, claimant.Email) {
		return nil, domain.ErrWrongRecipient
	}
	now := s.now().UTC()
	if now.Before(g.UnlockAt) {
		return nil, fmt.Errorf("gift unlocks at %s: %w",
			g.UnlockAt.In(s.displayLoc).Format(unlockDisplayFormat), domain.ErrNotYetUnlockable)
	}
	if !passcode.Verify(enteredPasscode, g.PasscodeHash) {
		return nil, domain.ErrWrongPasscode
	}

	if err := s.repo.MarkOpened(ctx, g.GiftID, claimant.UserID, now); err != nil {
		return nil, err
	}
	g.IsOpened = true
	g.ReceiverID = &claimant.UserID
	g.OpenedAt = &now

	s.audit.Record(ctx, g.GiftID, g.SenderID, &claimant.UserID, domain.TxOpened)
	return g.Opened(), nil
}

func (s *service) Get(ctx context.Context, giftID string) (*domain.PublicView, error) {
	g, err := s.repo.Get(ctx, giftID)
	if err != nil {
		return nil, err
	}
	return g.Public(), nil
}

func (s *service) ListBySender(ctx context.Context, senderID string) ([]domain.Gift, error) {
	return s.repo.ListBySender(ctx, senderID)
}

func (s *service) parseUnlockInstant(value string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t.UTC(), nil
	}
	for _, layout := range unlockLayouts {
		if t, err := time.ParseInLocation(layout, value, s.displayLoc); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("unparseable unlock timestamp %q", value)
}

func (s *service) notifyRecipient(g *domain.Gift) {
	if s.mailer == nil {
		return
	}
	link := fmt.Sprintf("%s/gift/%s", s.publicBaseURL, g.GiftID)
	body := fmt.Sprintf("Someone sealed a gift for you.\r\n\r\nIt unlocks at %s.\r\nOpen it here: %s\r\n",
		g.UnlockAt.In(s.displayLoc).Format(unlockDisplayFormat), link)
	if err := s.mailer.SendEmail(g.ReceiverEmail, "A ChronoGift is waiting for you", body); err != nil {
		slog.Warn("failed to send gift notification", "gift_id", g.GiftID, "err", err)
	}
}
