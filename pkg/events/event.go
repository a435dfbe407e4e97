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

import "time"

// Event is the normalized representation of one inbound ClickUp webhook
// notification. Treat it as immutable after construction: handlers receive a
// shared pointer and must not mutate the maps.
type Event struct {
	// Type is the canonical webhook kind parsed from the payload.
	Type Type
	// Body is the opaque webhook payload. The dispatch core never inspects
	// it beyond the "event" discriminator; handlers parse their own shape.
	Body map[string]interface{}
	// Raw is the original request body. It equals Body unless an ingress
	// transformation applied; after a wire round trip it always equals Body.
	Raw map[string]interface{}
	// Headers are the inbound request headers captured at ingress.
	Headers map[string]string
	// ReceivedAt is the UTC instant the webhook arrived.
	ReceivedAt time.Time
	// DeliveryID carries the X-Request-Id correlation value when present.
	// Empty means absent.
	DeliveryID string
}

// NewEvent builds an Event from the ingress adapter's view of a request.
// Raw is initialized to body.
func NewEvent(t Type, body map[string]interface{}, headers map[string]string, receivedAt time.Time, deliveryID string) *Event {
	if headers == nil {
		headers = map[string]string{}
	}

	return &Event{
		Type:       t,
		Body:       body,
		Raw:        body,
		Headers:    headers,
		ReceivedAt: receivedAt,
		DeliveryID: deliveryID,
	}
}

// PartitionKey is the ordering key used by queue backends that preserve
// per-key ordering: the delivery id when present, the wire type otherwise.
func (e *Event) PartitionKey() string {
	if e.DeliveryID != "" {
		return e.DeliveryID
	}
	return string(e.Type)
}
