package domain

import "time"

// User is a verified identity derived from a Google token exchange.
// Created on first sight; google_sub never changes, display fields are
// refreshed on each login.
type User struct {
	UserID    string    `json:"id" dynamodbav:"user_id"`
	GoogleSub string    `json:"-" dynamodbav:"google_sub"`
	Email     string    `json:"email" dynamodbav:"email"` // always lowercased
	Name      string    `json:"name" dynamodbav:"name"`
	Picture   string    `json:"picture" dynamodbav:"picture"`
	CreatedAt time.Time `json:"created" dynamodbav:"created_at"`
	UpdatedAt time.Time `json:"updated" dynamodbav:"updated_at"`
}
