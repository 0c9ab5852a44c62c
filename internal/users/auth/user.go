// Copyright (c) 2026 YCinema. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package auth implements console sign-in.

Accounts live in PostgreSQL. Sessions are opaque refresh tokens whose SHA-256
hash keys a Redis entry with the session TTL; the short-lived RS256 access
token carries the role checked by the admin route gate.

# Architecture

  - Service: Login, refresh rotation, logout, current account, provisioning.
  - UserRepository: PostgreSQL accounts.
  - SessionRepository: Redis sessions.
*/
package auth

import (
	"time"

	"github.com/taibuivan/ycinema/internal/platform/sec"
)

// # Domain Entities

// User is a console account.
type User struct {
	ID           string       `json:"id"`
	Email        string       `json:"email"`
	PasswordHash string       `json:"-"`
	DisplayName  string       `json:"display_name"`
	Role         sec.UserRole `json:"role"`
	LastLoginAt  *time.Time   `json:"last_login_at,omitempty"`
	CreatedAt    time.Time    `json:"created_at"`
	UpdatedAt    time.Time    `json:"updated_at"`
}

// Session is the state stored behind a refresh token.
type Session struct {
	UserID    string    `json:"user_id"`
	UserAgent string    `json:"user_agent"`
	IPAddress string    `json:"ip_address"`
	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

// # Field Identifiers

const (
	FieldEmail       = "email"
	FieldPassword    = "password"
	FieldDisplayName = "display_name"
	FieldRole        = "role"
	FieldAccessToken = "access_token"
	FieldTokenType   = "token_type"
	FieldExpiresIn   = "expires_in"
	FieldUser        = "user"
)
