/**
 *
 * (c) Copyright ClickUp Relay Authors 2025
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 *
 */

package controller

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/clickup-mcp/webhook-relay/pkg/config"
	"github.com/clickup-mcp/webhook-relay/pkg/events"
	"github.com/clickup-mcp/webhook-relay/pkg/log"
	"github.com/stretchr/testify/assert"
)

func newEventsConfig(secret string) *config.EventsConfig {
	cfg := &config.EventsConfig{}
	cfg.Events.Backend = "local"
	cfg.Events.Topic = "clickup.webhooks"
	cfg.Events.MaxFailures = 25
	cfg.Events.WebhookSecret = secret
	return cfg
}

func postWebhook(handler http.HandlerFunc, body string, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/webhook/clickup", strings.NewReader(body))
	for name, value := range headers {
		req.Header.Set(name, value)
	}
	recorder := httptest.NewRecorder()
	handler(recorder, req)
	return recorder
}

func TestPostReceiveWebhook(t *testing.T) {
	t.Run("dispatches a valid notification", func(t *testing.T) {
		registry := events.NewRegistry()
		var seen *events.Event
		registry.Register(events.TaskCreated, func(ctx context.Context, event *events.Event) error {
			seen = event
			return nil
		})

		controller := NewWebhookController(events.NewLocalSink(registry), newEventsConfig(""), log.NewEmptyLogger())
		recorder := postWebhook(
			controller.BuildPostReceiveWebhook(),
			`{"event":"taskCreated","task_id":"abc123","data":{"foo":"bar"}}`,
			map[string]string{"X-Request-Id": "req-42"},
		)

		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.JSONEq(t, `{"ok":true}`, recorder.Body.String())
		assert.NotNil(t, seen)
		assert.Equal(t, events.TaskCreated, seen.Type)
		assert.Equal(t, "req-42", seen.DeliveryID)
		assert.Equal(t, "req-42", seen.Headers["X-Request-Id"])
		assert.Equal(t, "abc123", seen.Body["task_id"])
		data, ok := seen.Body["data"].(map[string]interface{})
		assert.True(t, ok)
		assert.Equal(t, "bar", data["foo"])
	})

	t.Run("accepts a notification without handlers", func(t *testing.T) {
		controller := NewWebhookController(events.NewLocalSink(events.NewRegistry()), newEventsConfig(""), log.NewEmptyLogger())
		recorder := postWebhook(controller.BuildPostReceiveWebhook(), `{"event":"goalDeleted"}`, nil)

		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.JSONEq(t, `{"ok":true}`, recorder.Body.String())
	})

	t.Run("rejects malformed json", func(t *testing.T) {
		controller := NewWebhookController(events.NewLocalSink(events.NewRegistry()), newEventsConfig(""), log.NewEmptyLogger())
		recorder := postWebhook(controller.BuildPostReceiveWebhook(), `{"event":`, nil)

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})

	t.Run("rejects a missing event field", func(t *testing.T) {
		controller := NewWebhookController(events.NewLocalSink(events.NewRegistry()), newEventsConfig(""), log.NewEmptyLogger())
		recorder := postWebhook(controller.BuildPostReceiveWebhook(), `{"task_id":"abc123"}`, nil)

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})

	t.Run("rejects an unknown event type", func(t *testing.T) {
		controller := NewWebhookController(events.NewLocalSink(events.NewRegistry()), newEventsConfig(""), log.NewEmptyLogger())
		recorder := postWebhook(controller.BuildPostReceiveWebhook(), `{"event":"taskExploded"}`, nil)

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})

	t.Run("reports handler failures", func(t *testing.T) {
		registry := events.NewRegistry()
		registry.Register(events.TaskCreated, func(ctx context.Context, event *events.Event) error {
			return errors.New("boom")
		})

		controller := NewWebhookController(events.NewLocalSink(registry), newEventsConfig(""), log.NewEmptyLogger())
		recorder := postWebhook(controller.BuildPostReceiveWebhook(), `{"event":"taskCreated"}`, nil)

		assert.Equal(t, http.StatusBadGateway, recorder.Code)
		assert.Contains(t, recorder.Body.String(), `"ok":false`)
	})

	t.Run("verifies the payload signature", func(t *testing.T) {
		body := `{"event":"taskCreated"}`
		mac := hmac.New(sha256.New, []byte("mock-secret"))
		mac.Write([]byte(body))
		signature := hex.EncodeToString(mac.Sum(nil))

		controller := NewWebhookController(events.NewLocalSink(events.NewRegistry()), newEventsConfig("mock-secret"), log.NewEmptyLogger())
		handler := controller.BuildPostReceiveWebhook()

		recorder := postWebhook(handler, body, map[string]string{"X-Signature": signature})
		assert.Equal(t, http.StatusOK, recorder.Code)

		recorder = postWebhook(handler, body, map[string]string{"X-Signature": "deadbeef"})
		assert.Equal(t, http.StatusUnauthorized, recorder.Code)

		recorder = postWebhook(handler, body, nil)
		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	})
}
