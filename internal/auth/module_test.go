// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package auth

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-mage/internal/adapter"
	"github.com/MKhiriev/go-mage/internal/mock"
	"github.com/MKhiriev/go-mage/models"
)

func tokenFor(t *testing.T, subject string, expiresAt time.Time) string {
	t.Helper()
	s, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   subject,
		ExpiresAt: jwt.NewNumericDate(expiresAt),
	}).SignedString([]byte("server-key"))
	require.NoError(t, err)
	return s
}

var credentials = models.SignInParams{Username: "jane", Password: "secret", UID: "device-1"}

func TestLocalModule_LoginStoresToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	server := mock.NewMockServerAdapter(ctrl)

	exp := time.Now().Add(time.Hour).Truncate(time.Second)
	token := tokenFor(t, "user-7", exp)
	server.EXPECT().SignIn(gomock.Any(), credentials).Return(models.SignInResult{Token: token, UserID: "ignored"}, nil)
	server.EXPECT().SetToken(token)

	m := NewLocalModule(server)
	_, ok := m.Session()
	assert.False(t, ok)

	status, err := m.Login(context.Background(), credentials)
	require.NoError(t, err)
	assert.Equal(t, models.AuthSuccess, status)

	session, ok := m.Session()
	require.True(t, ok)
	assert.Equal(t, "user-7", session.UserID)
	assert.True(t, session.ExpiresAt.Equal(exp))
	assert.Equal(t, LocalModuleName, m.Name())
}

func TestLocalModule_OpaqueToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	server := mock.NewMockServerAdapter(ctrl)
	server.EXPECT().SignIn(gomock.Any(), gomock.Any()).Return(models.SignInResult{Token: "opaque", UserID: "user-1"}, nil)
	server.EXPECT().SetToken("opaque")

	m := NewLocalModule(server)
	status, err := m.Login(context.Background(), credentials)
	require.NoError(t, err)
	assert.Equal(t, models.AuthSuccess, status)

	session, ok := m.Session()
	require.True(t, ok)
	assert.Equal(t, "user-1", session.UserID)
	assert.True(t, session.ExpiresAt.IsZero())
}

func TestLocalModule_ExpiredToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	server := mock.NewMockServerAdapter(ctrl)
	token := tokenFor(t, "user-7", time.Now().Add(-time.Minute))
	server.EXPECT().SignIn(gomock.Any(), gomock.Any()).Return(models.SignInResult{Token: token}, nil)

	m := NewLocalModule(server)
	status, err := m.Login(context.Background(), credentials)
	assert.ErrorIs(t, err, ErrTokenIsExpired)
	assert.Equal(t, models.AuthError, status)

	_, ok := m.Session()
	assert.False(t, ok)
}

func TestLocalModule_SessionExpires(t *testing.T) {
	ctrl := gomock.NewController(t)
	server := mock.NewMockServerAdapter(ctrl)
	exp := time.Now().Add(time.Hour)
	token := tokenFor(t, "user-7", exp)
	server.EXPECT().SignIn(gomock.Any(), gomock.Any()).Return(models.SignInResult{Token: token}, nil)
	server.EXPECT().SetToken(token)

	m := NewLocalModule(server)
	_, err := m.Login(context.Background(), credentials)
	require.NoError(t, err)

	m.now = func() time.Time { return exp.Add(time.Second) }
	_, ok := m.Session()
	assert.False(t, ok)
}

func TestLocalModule_LoginErrors(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus models.AuthStatus
		wantErr    error
	}{
		{
			name:       "wrong password",
			err:        fmt.Errorf("%w: Invalid username or password", adapter.ErrUnauthorized),
			wantStatus: models.AuthUnableToAuthenticate,
			wantErr:    ErrInvalidCredentials,
		},
		{
			name:       "missing fields",
			err:        adapter.ErrBadRequest,
			wantStatus: models.AuthUnableToAuthenticate,
			wantErr:    ErrInvalidCredentials,
		},
		{
			name:       "inactive account",
			err:        adapter.ErrForbidden,
			wantStatus: models.AuthUnableToAuthenticate,
			wantErr:    ErrAccountNotApproved,
		},
		{
			name:       "server down",
			err:        errors.New("connection refused"),
			wantStatus: models.AuthError,
			wantErr:    ErrSignInOnServer,
		},
		{
			name:       "no token",
			err:        adapter.ErrEmptyToken,
			wantStatus: models.AuthError,
			wantErr:    ErrSignInOnServer,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			server := mock.NewMockServerAdapter(ctrl)
			server.EXPECT().SignIn(gomock.Any(), gomock.Any()).Return(models.SignInResult{}, tt.err)

			status, err := NewLocalModule(server).Login(context.Background(), credentials)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Equal(t, tt.wantStatus, status)
		})
	}
}

func TestModules(t *testing.T) {
	ctrl := gomock.NewController(t)
	server := mock.NewMockServerAdapter(ctrl)
	server.EXPECT().GetServerInfo(gomock.Any()).Return(models.ServerInfo{
		AuthenticationStrategies: map[string]models.AuthenticationStrategy{
			"local":  {},
			"google": {Type: "oauth"},
		},
	}, nil)

	modules, err := Modules(context.Background(), server)
	require.NoError(t, err)
	require.Len(t, modules, 1)
	assert.Equal(t, LocalModuleName, modules["local"].Name())

	status, err := Login(context.Background(), modules, "google", credentials)
	assert.ErrorIs(t, err, ErrUnknownModule)
	assert.Equal(t, models.AuthError, status)
}

func TestModules_ServerInfoError(t *testing.T) {
	ctrl := gomock.NewController(t)
	server := mock.NewMockServerAdapter(ctrl)
	server.EXPECT().GetServerInfo(gomock.Any()).Return(models.ServerInfo{}, adapter.ErrNotFound)

	_, err := Modules(context.Background(), server)
	assert.ErrorIs(t, err, adapter.ErrNotFound)
}
