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

package request

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/clickup-mcp/webhook-relay/pkg/events"
)

type MissingRequestFieldsError struct {
	Request string
	Field   string
	Reason  string
}

func (e *MissingRequestFieldsError) Error() string {
	return fmt.Sprintf("missing %s's field %s. Reason: %s", e.Request, e.Field, e.Reason)
}

type WebhookUser struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

type WebhookHistoryItem struct {
	ID     string          `json:"id"`
	Field  string          `json:"field"`
	User   WebhookUser     `json:"user"`
	Before json.RawMessage `json:"before"`
	After  json.RawMessage `json:"after"`
}

// WebhookRequest is the notification payload ClickUp posts to a registered
// webhook endpoint. Only the event discriminator is mandatory; the remaining
// identifiers depend on the event family.
type WebhookRequest struct {
	Event        string               `json:"event"`
	WebhookID    string               `json:"webhook_id,omitempty"`
	TaskID       string               `json:"task_id,omitempty"`
	ListID       string               `json:"list_id,omitempty"`
	FolderID     string               `json:"folder_id,omitempty"`
	SpaceID      string               `json:"space_id,omitempty"`
	GoalID       string               `json:"goal_id,omitempty"`
	KeyResultID  string               `json:"key_result_id,omitempty"`
	HistoryItems []WebhookHistoryItem `json:"history_items,omitempty"`
}

func (r WebhookRequest) ToJSON() []byte {
	buf, _ := json.Marshal(r)
	return buf
}

// ParseWebhook reshapes an event's opaque body into the typed notification
// view. Handlers that only need entity ids or history items can use it
// instead of walking the raw map.
func ParseWebhook(event *events.Event) (WebhookRequest, error) {
	var req WebhookRequest

	buf, err := json.Marshal(event.Body)
	if err != nil {
		return req, err
	}

	if err := json.Unmarshal(buf, &req); err != nil {
		return req, err
	}

	return req, req.Validate()
}

func (r *WebhookRequest) Validate() error {
	r.Event = strings.TrimSpace(r.Event)

	if r.Event == "" {
		return &MissingRequestFieldsError{
			Request: "Webhook",
			Field:   "Event",
			Reason:  "Should not be empty",
		}
	}

	return nil
}
