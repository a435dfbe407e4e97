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

package config

import (
	"context"
	"os"
	"strings"
	"time"

	"github.com/sethvargo/go-envconfig"
	"gopkg.in/yaml.v2"
)

type EventsConfig struct {
	Events struct {
		// Backend selects the delivery strategy: "local" dispatches webhook
		// events in-process, any other value names a message-queue backend
		// ("memory", "nats", "rabbitmq").
		Backend string `yaml:"backend" env:"EVENTS_BACKEND,overwrite"`
		// Topic is the single event stream all producers and consumers share.
		Topic string `yaml:"topic" env:"EVENTS_TOPIC,overwrite"`
		// HandlerModules lists named handler modules to run at startup so
		// their registrations execute before traffic.
		HandlerModules []string `yaml:"handler_modules" env:"EVENTS_HANDLER_MODULES,overwrite"`
		// MaxFailures bounds consecutive consumer dispatch failures before
		// the loop gives up on a poisoned stream.
		MaxFailures int `yaml:"max_failures" env:"EVENTS_MAX_FAILURES,overwrite"`
		// WebhookSecret, when set, enables X-Signature verification on the
		// ingress endpoint.
		WebhookSecret string `yaml:"webhook_secret" env:"EVENTS_WEBHOOK_SECRET,overwrite"`
	} `yaml:"events"`
}

func (ec *EventsConfig) Validate() error {
	ec.Events.Backend = strings.TrimSpace(ec.Events.Backend)
	ec.Events.Topic = strings.TrimSpace(ec.Events.Topic)

	if ec.Events.Backend == "" {
		return &InvalidConfigurationParameterError{
			Parameter: "Backend",
			Reason:    "Should not be empty",
		}
	}

	if ec.Events.Topic == "" {
		return &InvalidConfigurationParameterError{
			Parameter: "Topic",
			Reason:    "Should not be empty",
		}
	}

	if ec.Events.MaxFailures <= 0 {
		return &InvalidConfigurationParameterError{
			Parameter: "MaxFailures",
			Reason:    "Should be greater than zero",
		}
	}

	return nil
}

func BuildNewEventsConfig(path string) func() (*EventsConfig, error) {
	return func() (*EventsConfig, error) {
		var config EventsConfig
		config.Events.Backend = "local"
		config.Events.Topic = "clickup.webhooks"
		config.Events.MaxFailures = 25
		if path != "" {
			file, err := os.Open(path)
			if err != nil {
				return nil, err
			}
			defer file.Close()

			decoder := yaml.NewDecoder(file)

			if err := decoder.Decode(&config); err != nil {
				return nil, err
			}
		}

		ctx, cancel := context.WithTimeout(context.Background(), 4*time.Second)
		defer cancel()
		if err := envconfig.Process(ctx, &config); err != nil {
			return nil, err
		}

		return &config, config.Validate()
	}
}
