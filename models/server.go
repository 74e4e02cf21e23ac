// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"slices"
	"time"
)

// ServerInfo describes a MAGE server as returned by GET /api.
type ServerInfo struct {
	Version ServerVersion `json:"version"`

	// AuthenticationStrategies maps module names ("local", "google", ...)
	// to their descriptors.
	AuthenticationStrategies map[string]AuthenticationStrategy `json:"authenticationStrategies"`
}

// ServerVersion is the semantic version reported by the server.
type ServerVersion struct {
	Major int `json:"major"`
	Minor int `json:"minor"`
	Micro int `json:"micro"`
}

// AuthenticationStrategy describes one named authentication module.
type AuthenticationStrategy struct {
	Title string `json:"title,omitempty"`
	Type  string `json:"type,omitempty"`
	URL   string `json:"url,omitempty"`
}

// ModuleNames returns the names of the authentication modules the server
// exposes.
func (s ServerInfo) ModuleNames() []string {
	names := make([]string, 0, len(s.AuthenticationStrategies))
	for name := range s.AuthenticationStrategies {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// SignInResult is what a successful sign-in returns.
type SignInResult struct {
	Token     string    `json:"token"`
	UserID    string    `json:"-"`
	ExpiresAt time.Time `json:"-"`
}
