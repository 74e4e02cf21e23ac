// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-mage/internal/logger"
)

func executeWithTraceID(h *Handler, incoming string) (*httptest.ResponseRecorder, *http.Request) {
	var captured *http.Request
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		captured = r
		logger.FromRequest(r).Info().Msg("inside")
	})

	req := httptest.NewRequest(http.MethodGet, "/features", nil)
	if incoming != "" {
		req.Header.Set(traceIDHeader, incoming)
	}
	rec := httptest.NewRecorder()
	h.withTraceID(next).ServeHTTP(rec, req)
	return rec, captured
}

func TestWithTraceID_ReusesIncoming(t *testing.T) {
	var buf bytes.Buffer
	h := &Handler{logger: bufferLogger(&buf)}

	rec, captured := executeWithTraceID(h, "550e8400-e29b-41d4-a716-446655440000")

	require.NotNil(t, captured)
	assert.Equal(t, "550e8400-e29b-41d4-a716-446655440000", rec.Header().Get(traceIDHeader))
	assert.Equal(t, "550e8400-e29b-41d4-a716-446655440000", decodeEntry(t, &buf)["trace_id"])
}

func TestWithTraceID_GeneratesUUID(t *testing.T) {
	var buf bytes.Buffer
	h := &Handler{logger: bufferLogger(&buf)}

	rec, _ := executeWithTraceID(h, "")

	traceID := rec.Header().Get(traceIDHeader)
	_, err := uuid.Parse(traceID)
	require.NoError(t, err)
	assert.Equal(t, traceID, decodeEntry(t, &buf)["trace_id"])
}

func TestWithTraceID_UniquePerRequest(t *testing.T) {
	h := &Handler{logger: logger.Nop()}

	seen := make(map[string]struct{})
	for i := 0; i < 20; i++ {
		rec, _ := executeWithTraceID(h, "")
		seen[rec.Header().Get(traceIDHeader)] = struct{}{}
	}

	assert.Len(t, seen, 20)
}

func TestWithTraceID_DoesNotLeakIntoHandlerLogger(t *testing.T) {
	var buf bytes.Buffer
	h := &Handler{logger: bufferLogger(&buf)}

	executeWithTraceID(h, "trace-a")
	buf.Reset()
	h.logger.Info().Msg("lifecycle")

	assert.NotContains(t, decodeEntry(t, &buf), "trace_id")
}
