// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"sync"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-mage/internal/config"
	"github.com/MKhiriev/go-mage/internal/logger"
	"github.com/MKhiriev/go-mage/internal/utils"
	"github.com/MKhiriev/go-mage/models"
)

type httpServerAdapter struct {
	client *utils.HTTPClient

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs the resty implementation of
// [ServerAdapter] for the server at adapterCfg.HTTPAddress.
func NewHTTPServerAdapter(adapterCfg config.ClientAdapter, logger *logger.Logger) (ServerAdapter, error) {
	client, err := utils.NewHTTPClient(adapterCfg.HTTPAddress, adapterCfg.RequestTimeout)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	return &httpServerAdapter{client: client, logger: logger}, nil
}

func (h *httpServerAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

func (h *httpServerAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// GetServerInfo implements [ServerAdapter]. GET /api does not need a token.
func (h *httpServerAdapter) GetServerInfo(ctx context.Context) (models.ServerInfo, error) {
	var info models.ServerInfo

	resp, err := h.client.R().
		SetContext(ctx).
		Get("/api")
	if err != nil {
		return info, fmt.Errorf("server info request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return info, err
	}

	if err = json.Unmarshal(resp.Body(), &info); err != nil {
		return info, fmt.Errorf("decode server info: %w", err)
	}
	return info, nil
}

type signInResponse struct {
	Token string `json:"token"`
	User  struct {
		ID string `json:"id"`
	} `json:"user"`
}

// SignIn implements [ServerAdapter] with POST /auth/local/signin.
func (h *httpServerAdapter) SignIn(ctx context.Context, params models.SignInParams) (models.SignInResult, error) {
	var body signInResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetBody(params).
		Post("/auth/local/signin")
	if err != nil {
		return models.SignInResult{}, fmt.Errorf("sign in request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.SignInResult{}, err
	}

	if err = json.Unmarshal(resp.Body(), &body); err != nil {
		return models.SignInResult{}, fmt.Errorf("decode sign in response: %w", err)
	}

	token := body.Token
	if token == "" {
		// some deployments only return the token in the header
		token, _ = utils.ParseBearerToken(resp.Header().Get("Authorization"))
	}
	if token == "" {
		return models.SignInResult{}, ErrEmptyToken
	}

	return models.SignInResult{Token: token, UserID: body.User.ID}, nil
}

func importantPath(m models.ObservationImportantModel) string {
	return "/api/events/" + strconv.FormatInt(m.EventID, 10) +
		"/observations/" + url.PathEscape(m.ObservationRemoteID) + "/important"
}

// PushImportant implements [ImportantRemoteDataSource]. A set flag is a PUT
// carrying the reason, a cleared one a DELETE.
func (h *httpServerAdapter) PushImportant(ctx context.Context, m models.ObservationImportantModel) map[string]any {
	req := h.authedRequest(ctx)

	var (
		resp *resty.Response
		err  error
	)
	if m.Important {
		resp, err = req.SetBody(map[string]string{"description": m.Reason}).Put(importantPath(m))
	} else {
		resp, err = req.Delete(importantPath(m))
	}

	return h.decodePush(ctx, "httpServerAdapter.PushImportant", m.ObservationRemoteID, resp, err)
}

// DeleteAttachment implements [AttachmentRemoteDataSource].
func (h *httpServerAdapter) DeleteAttachment(ctx context.Context, a models.AttachmentModel) map[string]any {
	path := "/api/events/" + strconv.FormatInt(a.EventID, 10) +
		"/observations/" + url.PathEscape(a.ObservationRemoteID) +
		"/attachments/" + url.PathEscape(a.RemoteID)

	resp, err := h.authedRequest(ctx).Delete(path)
	return h.decodePush(ctx, "httpServerAdapter.DeleteAttachment", a.RemoteID, resp, err)
}

// decodePush turns a push round trip into the response map. Every failure
// is logged and becomes an empty map.
func (h *httpServerAdapter) decodePush(ctx context.Context, fn, remoteID string, resp *resty.Response, err error) map[string]any {
	log := logger.FromContext(ctx)
	empty := map[string]any{}

	if err != nil {
		log.Warn().Err(err).Str("func", fn).Str("remote_id", remoteID).Msg("push request failed")
		return empty
	}
	if err = mapHTTPError(resp); err != nil {
		log.Warn().Err(err).Str("func", fn).Str("remote_id", remoteID).Int("status", resp.StatusCode()).Msg("push rejected")
		return empty
	}

	var body map[string]any
	if err = json.Unmarshal(resp.Body(), &body); err != nil {
		log.Warn().Err(err).Str("func", fn).Str("remote_id", remoteID).Msg("undecodable push response")
		return empty
	}
	if body == nil {
		return empty
	}
	return body
}

func (h *httpServerAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetAuthToken(token)
	}
	return req
}
