// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"fmt"
	"strconv"

	"github.com/golang-jwt/jwt/v5"
)

// Token wraps a JWT issued to a principal of one tenant.
//
// It embeds [jwt.Token] for low-level token operations (signing, parsing)
// and [jwt.RegisteredClaims] for standard claim access. The private claims
// "email" and "tid" carry the principal's address and tenant.
type Token struct {
	*jwt.Token `json:"-"`

	jwt.RegisteredClaims

	// Email is the principal's email address.
	Email string `json:"email,omitempty"`

	// TenantID is the tenant the principal belongs to.
	TenantID string `json:"tid"`

	// SignedString is the compact JWS representation of the token.
	SignedString string `json:"-"`
}

// GetUserID parses the "sub" claim as a base-10 int64.
func (t *Token) GetUserID() (int64, error) {
	userIDString, err := t.GetSubject()
	if err != nil {
		return 0, fmt.Errorf("error extracting UserID from token: %w", err)
	}

	userID, err := strconv.ParseInt(userIDString, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("error converting UserID from token to int64: %w", err)
	}

	return userID, nil
}

// Principal converts the validated claims into a [Principal].
func (t *Token) Principal() (Principal, error) {
	userID, err := t.GetUserID()
	if err != nil {
		return Principal{}, err
	}

	return Principal{ID: userID, Email: t.Email, TenantID: t.TenantID}, nil
}

// String returns the compact JWS serialization of the token.
func (t *Token) String() string {
	return t.SignedString
}
