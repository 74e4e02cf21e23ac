// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

// HTTPClient is a resty client preconfigured for a JSON API.
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient returns a client sending JSON to baseURL. A zero timeout
// means no timeout.
//
//	client, err := utils.NewHTTPClient("mage.example.com", 30*time.Second)
//	resp, err := client.R().Get("/api")
func NewHTTPClient(baseURL string, timeout time.Duration) (*HTTPClient, error) {
	base, err := NormalizeBaseURL(baseURL)
	if err != nil {
		return nil, err
	}

	client := resty.New().
		SetBaseURL(base).
		SetTimeout(timeout).
		SetHeader("Accept", "application/json").
		SetHeader("Content-Type", "application/json")

	return &HTTPClient{Client: client}, nil
}

// NormalizeBaseURL adds a missing http scheme and drops trailing slashes.
func NormalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}
