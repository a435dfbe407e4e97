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
	"strings"
	"sync"

	"github.com/clickup-mcp/webhook-relay/pkg/config"
	"github.com/clickup-mcp/webhook-relay/pkg/log"
)

// Consumer replays queued webhook events through the registry. It resolves
// the same named backend the producer side publishes to, subscribes to the
// configured topic and dispatches every message it receives.
//
// Dispatch failures do not kill the loop: they are logged and counted, and
// only a run of MaxFailures consecutive failures aborts consumption with a
// PoisonBudgetError. Delivery guarantees remain whatever the backend's
// consume contract provides.
type Consumer struct {
	registry *Registry
	resolver Resolver
	config   *config.EventsConfig
	logger   log.Logger
}

func NewConsumer(
	registry *Registry,
	resolver Resolver,
	config *config.EventsConfig,
	logger log.Logger,
) *Consumer {
	return &Consumer{
		registry: registry,
		resolver: resolver,
		config:   config,
		logger:   logger,
	}
}

// Run blocks consuming messages until ctx is done, the subscription fails,
// or the poison budget is exhausted. Configured handler modules run first so
// their registrations exist before the first message arrives.
func (c *Consumer) Run(ctx context.Context) error {
	c.logger.Debugf("available handler modules: %s", strings.Join(Modules(), ", "))
	if err := RunModules(c.registry, c.config.Events.HandlerModules...); err != nil {
		return err
	}

	backend, err := c.resolver(c.config.Events.Backend)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var mu sync.Mutex
	failures := 0
	var fatal error

	c.logger.Infof("consuming %s events from backend %s", c.config.Events.Topic, c.config.Events.Backend)

	err = backend.Subscribe(ctx, c.config.Events.Topic, func(ctx context.Context, payload []byte) error {
		event, derr := Unmarshal(payload)
		if derr != nil {
			c.logger.Errorf("could not decode an inbound event: %s", derr.Error())
			return c.recordFailure(&mu, &failures, &fatal, derr, cancel)
		}

		if herr := c.registry.Dispatch(ctx, event); herr != nil {
			c.logger.Errorf("could not dispatch a %s event: %s", event.Type, herr.Error())
			return c.recordFailure(&mu, &failures, &fatal, herr, cancel)
		}

		mu.Lock()
		failures = 0
		mu.Unlock()
		return nil
	})

	mu.Lock()
	defer mu.Unlock()
	if fatal != nil {
		return fatal
	}

	return err
}

func (c *Consumer) recordFailure(mu *sync.Mutex, failures *int, fatal *error, err error, cancel context.CancelFunc) error {
	mu.Lock()
	defer mu.Unlock()

	*failures++
	if *failures >= c.config.Events.MaxFailures {
		*fatal = &PoisonBudgetError{
			Failures: *failures,
			Last:     err,
		}
		cancel()
	}

	return err
}
