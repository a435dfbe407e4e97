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
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/clickup-mcp/webhook-relay/pkg/config"
	"github.com/clickup-mcp/webhook-relay/pkg/events"
	plog "github.com/clickup-mcp/webhook-relay/pkg/log"
	"github.com/clickup-mcp/webhook-relay/services/shared/request"
	"github.com/clickup-mcp/webhook-relay/services/shared/response"
)

type WebhookController struct {
	sink   events.Sink
	config *config.EventsConfig
	logger plog.Logger
}

func NewWebhookController(
	sink events.Sink,
	config *config.EventsConfig,
	logger plog.Logger,
) WebhookController {
	return WebhookController{
		sink:   sink,
		config: config,
		logger: logger,
	}
}

func (c WebhookController) sendErrorResponse(errorText string, status int, rw http.ResponseWriter) {
	c.logger.Error(errorText)
	rw.WriteHeader(status)
	rw.Write(response.WebhookErrorResponse{
		OK:    false,
		Error: errorText,
	}.ToJSON())
}

func (c WebhookController) verifySignature(signature string, body []byte) bool {
	mac := hmac.New(sha256.New, []byte(c.config.Events.WebhookSecret))
	mac.Write(body)
	expected := hex.EncodeToString(mac.Sum(nil))
	return hmac.Equal([]byte(signature), []byte(expected))
}

// BuildPostReceiveWebhook handles ClickUp webhook notifications. The payload
// is normalized into an event and forwarded to the configured sink; with the
// local backend the response is sent only after every handler ran.
func (c WebhookController) BuildPostReceiveWebhook() http.HandlerFunc {
	return func(rw http.ResponseWriter, r *http.Request) {
		rw.Header().Set("Content-Type", "application/json")
		receivedAt := time.Now().UTC()

		buf, err := io.ReadAll(r.Body)
		if err != nil {
			c.sendErrorResponse("could not read a webhook body", http.StatusBadRequest, rw)
			return
		}

		if c.config.Events.WebhookSecret != "" {
			if !c.verifySignature(r.Header.Get("X-Signature"), buf) {
				c.sendErrorResponse("invalid webhook signature", http.StatusUnauthorized, rw)
				return
			}
		}

		var wreq request.WebhookRequest
		if err := json.Unmarshal(buf, &wreq); err != nil {
			c.sendErrorResponse("could not decode a webhook body", http.StatusBadRequest, rw)
			return
		}

		if err := wreq.Validate(); err != nil {
			c.sendErrorResponse(err.Error(), http.StatusBadRequest, rw)
			return
		}

		etype, err := events.ParseType(wreq.Event)
		if err != nil {
			c.sendErrorResponse(err.Error(), http.StatusBadRequest, rw)
			return
		}

		var body map[string]interface{}
		if err := json.Unmarshal(buf, &body); err != nil {
			c.sendErrorResponse("could not decode a webhook body", http.StatusBadRequest, rw)
			return
		}

		headers := make(map[string]string, len(r.Header))
		for name, values := range r.Header {
			if len(values) > 0 {
				headers[name] = values[0]
			}
		}

		event := events.NewEvent(etype, body, headers, receivedAt, r.Header.Get("X-Request-Id"))
		if err := c.sink.Handle(r.Context(), event); err != nil {
			c.logger.Errorf("could not dispatch a %s event: %s", wreq.Event, err.Error())
			c.sendErrorResponse("could not dispatch an event", http.StatusBadGateway, rw)
			return
		}

		rw.WriteHeader(http.StatusOK)
		rw.Write(response.WebhookResponse{
			OK: true,
		}.ToJSON())
	}
}
