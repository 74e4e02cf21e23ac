// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// AuthStatus is the outcome of an authentication module login.
type AuthStatus int

const (
	AuthSuccess AuthStatus = iota
	AuthRegistrationSuccess
	AuthAccountCreationSuccess
	AuthError
	AuthUnableToAuthenticate
)

func (s AuthStatus) String() string {
	switch s {
	case AuthSuccess:
		return "success"
	case AuthRegistrationSuccess:
		return "registration_success"
	case AuthAccountCreationSuccess:
		return "account_creation_success"
	case AuthError:
		return "error"
	case AuthUnableToAuthenticate:
		return "unable_to_authenticate"
	default:
		return "unknown"
	}
}

// SignInParams are the credentials of a local (username/password) sign-in.
type SignInParams struct {
	Username string `json:"username"`
	Password string `json:"password"`
	// UID identifies the device to the server.
	UID string `json:"uid,omitempty"`
}
