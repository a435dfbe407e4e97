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

package web

import (
	"net/http"
	"strings"

	"github.com/clickup-mcp/webhook-relay/pkg/config"
	"github.com/clickup-mcp/webhook-relay/pkg/events"
	plog "github.com/clickup-mcp/webhook-relay/pkg/log"
	chttp "github.com/clickup-mcp/webhook-relay/pkg/service/http"
	"github.com/clickup-mcp/webhook-relay/services/webhook/web/controller"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
)

type WebhookService struct {
	mux               *chi.Mux
	registry          *events.Registry
	config            *config.EventsConfig
	webhookController controller.WebhookController
	logger            plog.Logger
}

// NewServer initializes the webhook ingress engine with options.
func NewServer(
	registry *events.Registry,
	config *config.EventsConfig,
	webhookController controller.WebhookController,
	logger plog.Logger,
) chttp.ServerEngine {
	service := WebhookService{
		mux:               chi.NewRouter(),
		registry:          registry,
		config:            config,
		webhookController: webhookController,
		logger:            logger,
	}

	return service
}

// ApplyMiddleware used to apply http server middlewares.
func (s WebhookService) ApplyMiddleware(middlewares ...func(http.Handler) http.Handler) {
	s.mux.Use(middlewares...)
}

// NewHandler returns http server engine.
func (s WebhookService) NewHandler() interface {
	ServeHTTP(w http.ResponseWriter, r *http.Request)
} {
	return s.InitializeServer()
}

// InitializeServer sets all injected dependencies.
func (s *WebhookService) InitializeServer() *chi.Mux {
	s.logger.Debugf("available handler modules: %s", strings.Join(events.Modules(), ", "))
	if err := events.RunModules(s.registry, s.config.Events.HandlerModules...); err != nil {
		s.logger.Fatalf("could not run handler modules: %s", err.Error())
	}

	s.InitializeRoutes()
	return s.mux
}

// InitializeRoutes builds all http routes.
func (s *WebhookService) InitializeRoutes() {
	s.mux.Group(func(r chi.Router) {
		r.Use(chimiddleware.Recoverer)

		r.Route("/webhook", func(cr chi.Router) {
			cr.Post("/clickup", s.webhookController.BuildPostReceiveWebhook())
		})
	})
}
