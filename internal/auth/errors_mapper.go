// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package auth

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/go-mage/internal/adapter"
	"github.com/MKhiriev/go-mage/models"
)

// mapSignInError translates an adapter error into the login status and a
// module error.
func mapSignInError(err error) (models.AuthStatus, error) {
	switch {
	case err == nil:
		return models.AuthSuccess, nil
	case errors.Is(err, adapter.ErrUnauthorized), errors.Is(err, adapter.ErrBadRequest):
		return models.AuthUnableToAuthenticate, fmt.Errorf("%w: %v", ErrInvalidCredentials, err)
	case errors.Is(err, adapter.ErrForbidden):
		return models.AuthUnableToAuthenticate, fmt.Errorf("%w: %v", ErrAccountNotApproved, err)
	default:
		return models.AuthError, fmt.Errorf("%w: %v", ErrSignInOnServer, err)
	}
}
