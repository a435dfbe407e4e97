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

package messaging

import (
	"context"
	"testing"
	"time"

	"github.com/clickup-mcp/webhook-relay/pkg/config"
	"github.com/stretchr/testify/assert"
)

func TestBackendResolver(t *testing.T) {
	resolver := NewBackendResolver(nil, &config.BrokerConfig{})

	t.Run("resolves known backend names", func(t *testing.T) {
		for _, name := range []string{"memory", "rabbitmq", "nats"} {
			backend, err := resolver(name)
			assert.NoError(t, err)
			assert.NotNil(t, backend)
		}
	})

	t.Run("rejects an unknown backend name", func(t *testing.T) {
		_, err := resolver("kafka")
		var uerr *UnknownBackendError
		assert.ErrorAs(t, err, &uerr)
		assert.Equal(t, "kafka", uerr.Name)
	})
}

func TestMemoryBackendRoundTrip(t *testing.T) {
	resolver := NewBackendResolver(nil, &config.BrokerConfig{})
	backend, err := resolver("memory")
	assert.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	delivered := make(chan []byte, 1)
	done := make(chan error, 1)
	go func() {
		done <- backend.Subscribe(ctx, "clickup.webhooks", func(ctx context.Context, payload []byte) error {
			delivered <- payload
			return nil
		})
	}()

	// The memory broker subscribes synchronously inside Subscribe; give the
	// goroutine a moment to get there before publishing.
	time.Sleep(50 * time.Millisecond)

	assert.NoError(t, backend.Publish(ctx, "clickup.webhooks", "abc123", []byte("payload")))

	select {
	case payload := <-delivered:
		assert.Equal(t, []byte("payload"), payload)
	case <-time.After(2 * time.Second):
		t.Fatal("message was not delivered")
	}

	cancel()
	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(2 * time.Second):
		t.Fatal("subscribe did not stop")
	}
}
