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
	"context"
	"sync"

	"github.com/clickup-mcp/webhook-relay/pkg/config"
)

// LocalBackendName selects in-process dispatch instead of a queue.
const LocalBackendName = "local"

// Sink is the delivery strategy boundary between the ingress adapter and
// handler execution.
type Sink interface {
	Handle(ctx context.Context, event *Event) error
}

// LocalSink forwards events straight into the registry. Ordering and failure
// semantics are exactly those of Registry.Dispatch; handler errors surface
// synchronously to the ingress caller.
type LocalSink struct {
	registry *Registry
}

func NewLocalSink(registry *Registry) *LocalSink {
	return &LocalSink{registry: registry}
}

func (s *LocalSink) Handle(ctx context.Context, event *Event) error {
	return s.registry.Dispatch(ctx, event)
}

// QueueSink serializes events and publishes them to a named queue backend.
// The backend is resolved at most once per sink, on first use. Publish
// failures propagate synchronously; resilience belongs to the backend.
type QueueSink struct {
	name     string
	topic    string
	resolver Resolver

	once    sync.Once
	backend Backend
	err     error
}

func NewQueueSink(name, topic string, resolver Resolver) *QueueSink {
	return &QueueSink{
		name:     name,
		topic:    topic,
		resolver: resolver,
	}
}

func (s *QueueSink) ensureBackend() (Backend, error) {
	s.once.Do(func() {
		s.backend, s.err = s.resolver(s.name)
	})
	return s.backend, s.err
}

func (s *QueueSink) Handle(ctx context.Context, event *Event) error {
	backend, err := s.ensureBackend()
	if err != nil {
		return err
	}

	payload, err := Marshal(event)
	if err != nil {
		return err
	}

	return backend.Publish(ctx, s.topic, event.PartitionKey(), payload)
}

// NewSink selects the delivery strategy from the events configuration:
// "local" dispatches in-process, anything else names a queue backend.
func NewSink(config *config.EventsConfig, registry *Registry, resolver Resolver) Sink {
	if config.Events.Backend == LocalBackendName {
		return NewLocalSink(registry)
	}

	return NewQueueSink(config.Events.Backend, config.Events.Topic, resolver)
}
