// Copyright (c) 2026 YCinema. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package auth

import (
	"context"
	"time"
)

// # User Data Access

// UserRepository defines the data access contract for console accounts.
type UserRepository interface {

	/*
		FindByID returns the account with the given ID.

		Parameters:
		  - context: context.Context
		  - id: string

		Returns:
		  - *User: Hydrated entity
		  - error: apperr NotFound if missing
	*/
	FindByID(context context.Context, id string) (*User, error)

	/*
		FindByEmail returns the account with the given email, ignoring case.

		Parameters:
		  - context: context.Context
		  - email: string

		Returns:
		  - *User: Hydrated entity
		  - error: apperr NotFound if missing
	*/
	FindByEmail(context context.Context, email string) (*User, error)

	// Create persists a new account. A duplicate email is a Conflict.
	Create(context context.Context, user *User) error

	// TouchLastLogin records a successful sign-in.
	TouchLastLogin(context context.Context, id string, at time.Time) error
}

// # Session Data Access

// SessionRepository stores sessions keyed by the refresh token hash.
type SessionRepository interface {

	/*
		Create stores a session that expires after ttl.

		Parameters:
		  - context: context.Context
		  - tokenHash: string
		  - session: *Session
		  - ttl: time.Duration

		Returns:
		  - error: Storage failures
	*/
	Create(context context.Context, tokenHash string, session *Session, ttl time.Duration) error

	// Find returns the live session for tokenHash, or apperr NotFound.
	Find(context context.Context, tokenHash string) (*Session, error)

	// Delete revokes a session. Deleting a missing session is not an error.
	Delete(context context.Context, tokenHash string) error
}
