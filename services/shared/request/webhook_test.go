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
	"testing"
	"time"

	"github.com/clickup-mcp/webhook-relay/pkg/events"
	"github.com/stretchr/testify/assert"
)

func TestWebhookRequestValidation(t *testing.T) {
	t.Run("accepts a valid notification", func(t *testing.T) {
		req := WebhookRequest{Event: "taskCreated", TaskID: "abc123"}
		assert.NoError(t, req.Validate())
	})

	t.Run("trims and rejects an empty event", func(t *testing.T) {
		req := WebhookRequest{Event: "   "}
		err := req.Validate()

		var merr *MissingRequestFieldsError
		assert.ErrorAs(t, err, &merr)
		assert.Equal(t, "Event", merr.Field)
	})

	t.Run("decodes history items", func(t *testing.T) {
		var req WebhookRequest
		assert.NoError(t, json.Unmarshal([]byte(`{
			"event": "taskStatusUpdated",
			"task_id": "abc123",
			"history_items": [
				{"id": "1", "field": "status", "user": {"id": 7, "username": "mock"}, "before": {"status": "open"}, "after": {"status": "done"}}
			]
		}`), &req))

		assert.NoError(t, req.Validate())
		assert.Len(t, req.HistoryItems, 1)
		assert.Equal(t, "status", req.HistoryItems[0].Field)
		assert.Equal(t, 7, req.HistoryItems[0].User.ID)
	})
}

func TestParseWebhook(t *testing.T) {
	t.Run("reshapes an event body", func(t *testing.T) {
		event := events.NewEvent(events.TaskMoved, map[string]interface{}{
			"event":   "taskMoved",
			"task_id": "abc123",
			"list_id": "l-9",
			"extra":   map[string]interface{}{"foo": "bar"},
		}, nil, time.Now().UTC(), "")

		req, err := ParseWebhook(event)
		assert.NoError(t, err)
		assert.Equal(t, "taskMoved", req.Event)
		assert.Equal(t, "abc123", req.TaskID)
		assert.Equal(t, "l-9", req.ListID)
	})

	t.Run("fails on a body without an event field", func(t *testing.T) {
		event := events.NewEvent(events.TaskMoved, map[string]interface{}{"task_id": "abc123"}, nil, time.Now().UTC(), "")
		_, err := ParseWebhook(event)
		assert.Error(t, err)
	})
}
