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

package events

import (
	"encoding/json"
	"time"
)

// wireEvent is the transport representation shared by producers and
// consumers. The field set and names are part of the wire contract.
type wireEvent struct {
	Type       string            `json:"type"`
	Body       map[string]any    `json:"body"`
	Headers    map[string]string `json:"headers"`
	ReceivedAt string            `json:"received_at"`
	DeliveryID *string           `json:"delivery_id"`
}

// Marshal encodes an event into its wire payload. Timestamps keep
// nanosecond precision so a round trip preserves the received instant.
func Marshal(event *Event) ([]byte, error) {
	var deliveryID *string
	if event.DeliveryID != "" {
		deliveryID = &event.DeliveryID
	}

	headers := event.Headers
	if headers == nil {
		headers = map[string]string{}
	}

	return json.Marshal(wireEvent{
		Type:       string(event.Type),
		Body:       event.Body,
		Headers:    headers,
		ReceivedAt: event.ReceivedAt.Format(time.RFC3339Nano),
		DeliveryID: deliveryID,
	})
}

// Unmarshal decodes a wire payload back into an Event. Raw is set equal to
// Body: the pre-serialization raw payload does not travel across the wire.
func Unmarshal(payload []byte) (*Event, error) {
	var wire wireEvent
	if err := json.Unmarshal(payload, &wire); err != nil {
		return nil, err
	}

	t, err := ParseType(wire.Type)
	if err != nil {
		return nil, err
	}

	receivedAt, err := time.Parse(time.RFC3339Nano, wire.ReceivedAt)
	if err != nil {
		return nil, err
	}

	deliveryID := ""
	if wire.DeliveryID != nil {
		deliveryID = *wire.DeliveryID
	}

	headers := wire.Headers
	if headers == nil {
		headers = map[string]string{}
	}

	return &Event{
		Type:       t,
		Body:       wire.Body,
		Raw:        wire.Body,
		Headers:    headers,
		ReceivedAt: receivedAt,
		DeliveryID: deliveryID,
	}, nil
}
