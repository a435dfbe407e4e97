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

import "context"

// Backend is the message-queue seam behind the queue sink and the consumer
// loop. Delivery guarantees are entirely the backend's: this subsystem adds
// no retry, ack or ordering logic of its own.
type Backend interface {
	// Publish sends one payload to a topic. Key is an ordering hint for
	// backends that preserve per-key ordering.
	Publish(ctx context.Context, topic, key string, payload []byte) error
	// Subscribe delivers every inbound payload on the topic to fn and
	// blocks until ctx is done or the subscription fails.
	Subscribe(ctx context.Context, topic string, fn func(ctx context.Context, payload []byte) error) error
}

// Resolver constructs a named backend. The same name resolves to the same
// logical broker on the producer and the consumer side.
type Resolver func(name string) (Backend, error)
