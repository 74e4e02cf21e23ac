// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package auth

import "errors"

var (
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrAccountNotApproved = errors.New("account is not approved")
	ErrTokenIsExpired     = errors.New("token is expired")
	ErrSignInOnServer     = errors.New("error signing in on server")
	ErrUnknownModule      = errors.New("authentication module is not supported")
)
