// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package auth

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/MKhiriev/go-mage/internal/adapter"
	"github.com/MKhiriev/go-mage/internal/logger"
	"github.com/MKhiriev/go-mage/internal/utils"
	"github.com/MKhiriev/go-mage/models"
)

// LocalModuleName is the descriptor key of the username/password strategy.
const LocalModuleName = "local"

// Module signs a user in with one authentication strategy.
type Module interface {
	Name() string
	Login(ctx context.Context, params models.SignInParams) (models.AuthStatus, error)
}

// Session is the signed-in user as read from the token.
type Session struct {
	UserID    string
	ExpiresAt time.Time
}

// LocalModule signs in through POST /auth/local/signin and keeps the token
// in the adapter for the following requests.
type LocalModule struct {
	adapter adapter.ServerAdapter
	now     func() time.Time

	mu       sync.RWMutex
	session  Session
	signedIn bool
}

func NewLocalModule(serverAdapter adapter.ServerAdapter) *LocalModule {
	return &LocalModule{adapter: serverAdapter, now: time.Now}
}

func (m *LocalModule) Name() string {
	return LocalModuleName
}

func (m *LocalModule) Login(ctx context.Context, params models.SignInParams) (models.AuthStatus, error) {
	log := logger.FromContext(ctx)

	result, err := m.adapter.SignIn(ctx, params)
	if err != nil {
		status, mapped := mapSignInError(err)
		log.Err(mapped).Str("func", "LocalModule.Login").Str("status", status.String()).Msg("sign in failed")
		return status, mapped
	}

	session := Session{UserID: result.UserID, ExpiresAt: result.ExpiresAt}
	if claims, err := utils.ParseTokenClaims(result.Token); err == nil {
		session.UserID = claims.Subject
		session.ExpiresAt = claims.ExpiresAt
	} else {
		// opaque tokens are accepted; the user id comes from the body
		log.Debug().Err(err).Str("func", "LocalModule.Login").Msg("token carries no readable claims")
	}

	if !session.ExpiresAt.IsZero() && !session.ExpiresAt.After(m.now()) {
		return models.AuthError, ErrTokenIsExpired
	}

	m.adapter.SetToken(result.Token)
	m.mu.Lock()
	m.session = session
	m.signedIn = true
	m.mu.Unlock()

	log.Info().Str("func", "LocalModule.Login").Str("user_id", session.UserID).Msg("signed in")
	return models.AuthSuccess, nil
}

// Session returns the current session; ok is false before a successful
// login or once the token expired.
func (m *LocalModule) Session() (Session, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	s := m.session
	if !m.signedIn {
		return Session{}, false
	}
	if !s.ExpiresAt.IsZero() && !s.ExpiresAt.After(m.now()) {
		return s, false
	}
	return s, true
}

// Modules returns the modules usable with the strategies the server
// advertises, keyed by name.
func Modules(ctx context.Context, serverAdapter adapter.ServerAdapter) (map[string]Module, error) {
	info, err := serverAdapter.GetServerInfo(ctx)
	if err != nil {
		return nil, fmt.Errorf("get server info: %w", err)
	}

	modules := make(map[string]Module)
	for _, name := range info.ModuleNames() {
		if name == LocalModuleName {
			modules[name] = NewLocalModule(serverAdapter)
			continue
		}
		logger.FromContext(ctx).Debug().
			Str("func", "auth.Modules").
			Str("module", name).
			Msg("authentication strategy not supported by this client")
	}
	return modules, nil
}

// Login signs in with the named module.
func Login(ctx context.Context, modules map[string]Module, name string, params models.SignInParams) (models.AuthStatus, error) {
	module, ok := modules[name]
	if !ok {
		return models.AuthError, fmt.Errorf("%w: %s", ErrUnknownModule, name)
	}
	return module.Login(ctx, params)
}
