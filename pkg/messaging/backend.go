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
	"sync"

	"github.com/clickup-mcp/webhook-relay/pkg/config"
	"github.com/clickup-mcp/webhook-relay/pkg/events"
	"github.com/google/uuid"
	"go-micro.dev/v4/broker"
	"go-micro.dev/v4/registry"
)

// Broker message headers carrying event metadata alongside the payload.
const (
	HeaderKey       = "Clickup-Partition-Key"
	HeaderMessageID = "Clickup-Message-Id"
)

// brokerBackend adapts a go-micro broker to the events.Backend seam. The
// broker is connected at most once, on first use.
type brokerBackend struct {
	broker  broker.Broker
	subOpts []broker.SubscribeOption

	once sync.Once
	err  error
}

func newBrokerBackend(b BrokerWithOptions) *brokerBackend {
	return &brokerBackend{
		broker:  b.Broker,
		subOpts: b.SubOptions,
	}
}

func (b *brokerBackend) connect() error {
	b.once.Do(func() {
		if err := b.broker.Init(); err != nil {
			b.err = err
			return
		}
		b.err = b.broker.Connect()
	})
	return b.err
}

func (b *brokerBackend) Publish(ctx context.Context, topic, key string, payload []byte) error {
	if err := b.connect(); err != nil {
		return err
	}

	return b.broker.Publish(topic, &broker.Message{
		Header: map[string]string{
			HeaderKey:       key,
			HeaderMessageID: uuid.NewString(),
		},
		Body: payload,
	})
}

func (b *brokerBackend) Subscribe(ctx context.Context, topic string, fn func(ctx context.Context, payload []byte) error) error {
	if err := b.connect(); err != nil {
		return err
	}

	opts := append([]broker.SubscribeOption{broker.Queue(topic)}, b.subOpts...)
	sub, err := b.broker.Subscribe(topic, func(e broker.Event) error {
		return fn(ctx, e.Message().Body)
	}, opts...)
	if err != nil {
		return err
	}

	<-ctx.Done()
	if err := sub.Unsubscribe(); err != nil {
		return err
	}

	return ctx.Err()
}

// NewBackendResolver resolves backend names onto go-micro brokers. The same
// name always maps to the same broker type, so producers and consumers
// configured alike talk to the same logical broker.
func NewBackendResolver(reg registry.Registry, cfg *config.BrokerConfig) events.Resolver {
	return func(name string) (events.Backend, error) {
		kind, ok := brokerKinds[name]
		if !ok {
			return nil, &UnknownBackendError{Name: name}
		}

		return newBrokerBackend(newBrokerOfType(kind, reg, cfg)), nil
	}
}

var brokerKinds = map[string]int{
	"memory":   config.BrokerTypeMemory,
	"rabbitmq": config.BrokerTypeRabbitMQ,
	"nats":     config.BrokerTypeNATS,
}
