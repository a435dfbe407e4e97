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
	"errors"
	"testing"
	"time"

	"github.com/clickup-mcp/webhook-relay/pkg/config"
	"github.com/stretchr/testify/assert"
)

type publishedMessage struct {
	topic   string
	key     string
	payload []byte
}

type mockBackend struct {
	published []publishedMessage
}

func (b *mockBackend) Publish(ctx context.Context, topic, key string, payload []byte) error {
	b.published = append(b.published, publishedMessage{topic: topic, key: key, payload: payload})
	return nil
}

func (b *mockBackend) Subscribe(ctx context.Context, topic string, fn func(ctx context.Context, payload []byte) error) error {
	<-ctx.Done()
	return ctx.Err()
}

func newEventsConfig(backend string) *config.EventsConfig {
	cfg := &config.EventsConfig{}
	cfg.Events.Backend = backend
	cfg.Events.Topic = "clickup.webhooks"
	cfg.Events.MaxFailures = 25
	return cfg
}

func TestLocalSink(t *testing.T) {
	t.Run("dispatches through the registry", func(t *testing.T) {
		registry := NewRegistry()
		ran := false
		registry.Register(TaskCreated, func(ctx context.Context, event *Event) error {
			ran = true
			return nil
		})

		sink := NewSink(newEventsConfig(LocalBackendName), registry, nil)
		assert.IsType(t, &LocalSink{}, sink)
		assert.NoError(t, sink.Handle(context.Background(), newTestEvent(TaskCreated)))
		assert.True(t, ran)
	})

	t.Run("surfaces handler errors synchronously", func(t *testing.T) {
		registry := NewRegistry()
		boom := errors.New("boom")
		registry.Register(TaskCreated, func(ctx context.Context, event *Event) error {
			return boom
		})

		sink := NewLocalSink(registry)
		assert.Same(t, boom, sink.Handle(context.Background(), newTestEvent(TaskCreated)))
	})
}

func TestQueueSink(t *testing.T) {
	t.Run("publishes the serialized event", func(t *testing.T) {
		backend := &mockBackend{}
		resolved := 0
		resolver := func(name string) (Backend, error) {
			resolved++
			assert.Equal(t, "memory", name)
			return backend, nil
		}

		sink := NewSink(newEventsConfig("memory"), NewRegistry(), resolver)
		assert.IsType(t, &QueueSink{}, sink)

		event := NewEvent(
			TaskCreated,
			map[string]interface{}{"task_id": "abc123"},
			map[string]string{"X-Request-Id": "req-9"},
			time.Now().UTC(),
			"req-9",
		)

		assert.NoError(t, sink.Handle(context.Background(), event))
		assert.NoError(t, sink.Handle(context.Background(), event))
		assert.Equal(t, 1, resolved)
		assert.Len(t, backend.published, 2)
		assert.Equal(t, "clickup.webhooks", backend.published[0].topic)
		assert.Equal(t, "req-9", backend.published[0].key)

		decoded, err := Unmarshal(backend.published[0].payload)
		assert.NoError(t, err)
		assert.Equal(t, TaskCreated, decoded.Type)
		assert.Equal(t, "abc123", decoded.Body["task_id"])
	})

	t.Run("falls back to the wire type as partition key", func(t *testing.T) {
		backend := &mockBackend{}
		sink := NewQueueSink("memory", "clickup.webhooks", func(name string) (Backend, error) {
			return backend, nil
		})

		assert.NoError(t, sink.Handle(context.Background(), newTestEvent(SpaceUpdated)))
		assert.Equal(t, "spaceUpdated", backend.published[0].key)
	})

	t.Run("propagates resolver failures", func(t *testing.T) {
		boom := errors.New("no such broker")
		sink := NewQueueSink("bogus", "clickup.webhooks", func(name string) (Backend, error) {
			return nil, boom
		})

		assert.Same(t, boom, sink.Handle(context.Background(), newTestEvent(TaskCreated)))
		assert.Same(t, boom, sink.Handle(context.Background(), newTestEvent(TaskCreated)))
	})
}
