package domain

import "time"

// Gift is the sealed unit: optional media/text, a passcode hash and an
// unlock instant. It is mutated exactly once, when opened.
type Gift struct {
	GiftID        string     `json:"id" dynamodbav:"gift_id"`
	SenderID      string     `json:"sender_id" dynamodbav:"sender_id"`
	ReceiverID    *string    `json:"receiver_id,omitempty" dynamodbav:"receiver_id"` // set iff opened
	ReceiverEmail string     `json:"receiver_email,omitempty" dynamodbav:"receiver_email"`
	TextMessage   string     `json:"text_message,omitempty" dynamodbav:"text_message"`
	ImageURL      string     `json:"image_url,omitempty" dynamodbav:"image_url"`
	VideoURL      string     `json:"video_url,omitempty" dynamodbav:"video_url"`
	UnlockAt      time.Time  `json:"unlock_timestamp" dynamodbav:"unlock_at"`
	PasscodeHash  string     `json:"-" dynamodbav:"passcode_hash"`
	IsOpened      bool       `json:"is_opened" dynamodbav:"is_opened"`
	OpenedAt      *time.Time `json:"opened_at,omitempty" dynamodbav:"opened_at"`
	CreatedAt     time.Time  `json:"created" dynamodbav:"created_at"`
	UpdatedAt     time.Time  `json:"updated" dynamodbav:"updated_at"`
}

type CreateGiftRequest struct {
	SenderID        string `json:"sender_id" validate:"required"`
	ReceiverEmail   string `json:"receiver_email" validate:"required,email"`
	TextMessage     string `json:"text_message"`
	ImageURL        string `json:"image_url" validate:"omitempty,url"`
	VideoURL        string `json:"video_url" validate:"omitempty,url"`
	UnlockTimestamp string `json:"unlock_timestamp" validate:"required"`
	Passcode        string `json:"passcode" validate:"required,min=4,max=72"`
}

type OpenGiftRequest struct {
	GiftID      string `json:"gift_id" validate:"required"`
	Passcode    string `json:"passcode" validate:"required"`
	AccessToken string `json:"access_token" validate:"required"`
}

// PublicView is the pre-open projection served to anyone with the link.
// The receiver email stays hidden so a shared link leaks nothing about
// who the gift is for.
type PublicView struct {
	GiftID   string    `json:"id"`
	SenderID string    `json:"sender_id"`
	UnlockAt time.Time `json:"unlock_timestamp"`
	IsOpened bool      `json:"is_opened"`
	Created  time.Time `json:"created"`
}

func (g *Gift) Public() *PublicView {
	return &PublicView{
		GiftID:   g.GiftID,
		SenderID: g.SenderID,
		UnlockAt: g.UnlockAt,
		IsOpened: g.IsOpened,
		Created:  g.CreatedAt,
	}
}

// Opened is the post-open projection: full payload, no passcode hash.
type OpenedView struct {
	GiftID      string     `json:"id"`
	SenderID    string     `json:"sender_id"`
	ReceiverID  *string    `json:"receiver_id,omitempty"`
	TextMessage string     `json:"text_message,omitempty"`
	ImageURL    string     `json:"image_url,omitempty"`
	VideoURL    string     `json:"video_url,omitempty"`
	UnlockAt    time.Time  `json:"unlock_timestamp"`
	IsOpened    bool       `json:"is_opened"`
	OpenedAt    *time.Time `json:"opened_at,omitempty"`
	Created     time.Time  `json:"created"`
}

func (g *Gift) Opened() *OpenedView {
	return &OpenedView{
		GiftID:      g.GiftID,
		SenderID:    g.SenderID,
		ReceiverID:  g.ReceiverID,
		TextMessage: g.TextMessage,
		ImageURL:    g.ImageURL,
		VideoURL:    g.VideoURL,
		UnlockAt:    g.UnlockAt,
		IsOpened:    g.IsOpened,
		OpenedAt:    g.OpenedAt,
		Created:     g.CreatedAt,
	}
}
