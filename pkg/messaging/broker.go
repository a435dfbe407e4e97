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
	"github.com/clickup-mcp/webhook-relay/pkg/config"
	"github.com/go-micro/plugins/v4/broker/memory"
	"github.com/go-micro/plugins/v4/broker/nats"
	"github.com/go-micro/plugins/v4/broker/rabbitmq"
	"go-micro.dev/v4/broker"
	"go-micro.dev/v4/registry"
)

type BrokerWithOptions struct {
	Broker     broker.Broker
	SubOptions []broker.SubscribeOption
}

// NewBroker creates a broker instance based on the messaging type value.
func NewBroker(registry registry.Registry, config *config.BrokerConfig) BrokerWithOptions {
	return newBrokerOfType(config.Messaging.Type, registry, config)
}

func newBrokerOfType(kind int, reg registry.Registry, cfg *config.BrokerConfig) BrokerWithOptions {
	bo := []broker.Option{
		broker.Addrs(cfg.Messaging.Addrs...),
		broker.Registry(reg),
	}

	var b broker.Broker
	var subOpts []broker.SubscribeOption

	switch kind {
	case config.BrokerTypeRabbitMQ:
		b = rabbitmq.NewBroker(bo...)

		if cfg.Messaging.DisableAutoAck {
			subOpts = append(subOpts, broker.DisableAutoAck())
		}

		if cfg.Messaging.AckOnSuccess {
			subOpts = append(subOpts, rabbitmq.AckOnSuccess())
		}

		if cfg.Messaging.Durable {
			subOpts = append(subOpts, rabbitmq.DurableQueue())
		}

		if cfg.Messaging.RequeueOnError {
			subOpts = append(subOpts, rabbitmq.RequeueOnError())
		}
	case config.BrokerTypeNATS:
		b = nats.NewBroker(bo...)
	default:
		b = memory.NewBroker(bo...)
	}

	return BrokerWithOptions{
		Broker:     b,
		SubOptions: subOpts,
	}
}
