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

package pkg

import (
	"context"
	"net/http"
	"os"

	"github.com/clickup-mcp/webhook-relay/pkg/cache"
	"github.com/clickup-mcp/webhook-relay/pkg/client"
	"github.com/clickup-mcp/webhook-relay/pkg/config"
	"github.com/clickup-mcp/webhook-relay/pkg/events"
	"github.com/clickup-mcp/webhook-relay/pkg/log"
	"github.com/clickup-mcp/webhook-relay/pkg/messaging"
	"github.com/clickup-mcp/webhook-relay/pkg/registry"
	"github.com/clickup-mcp/webhook-relay/pkg/service/repl"
	"go-micro.dev/v4"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"golang.org/x/sync/errgroup"
)

type option func(*options)

type options struct {
	invokables []interface{}
	modules    []interface{}
}

func newOptions(opts ...option) options {
	opt := options{}
	for _, o := range opts {
		o(&opt)
	}

	return opt
}

func WithInvokables(val ...interface{}) option {
	return func(o *options) {
		o.invokables = val
	}
}

func WithModules(val ...interface{}) option {
	return func(o *options) {
		o.modules = val
	}
}

type bootstrapper struct {
	path       string
	invokables []interface{}
	modules    []interface{}
}

func NewBootstrapper(path string, opts ...option) bootstrapper {
	options := newOptions(opts...)
	return bootstrapper{
		path:       path,
		invokables: options.invokables,
		modules:    options.modules,
	}
}

func (b bootstrapper) provides(builder func() (*config.ServerConfig, error)) []fx.Option {
	return []fx.Option{
		fx.Provide(config.BuildNewCacheConfig(b.path)),
		fx.Provide(config.BuildNewCorsConfig(b.path)),
		fx.Provide(config.BuildNewEventsConfig(b.path)),
		fx.Provide(config.BuildNewLoggerConfig(b.path)),
		fx.Provide(config.BuildNewMessagingConfig(b.path)),
		fx.Provide(config.BuildNewRegistryConfig(b.path)),
		fx.Provide(config.BuildNewResilienceConfig(b.path)),
		fx.Provide(builder),
		fx.Provide(cache.NewCache),
		fx.Provide(log.NewLogrusLogger),
		fx.Provide(registry.NewRegistry),
		fx.Provide(messaging.NewBroker),
		fx.Provide(messaging.NewBackendResolver),
		fx.Provide(client.NewClient),
		fx.Provide(events.NewRegistry),
		fx.Provide(events.NewSink),
		fx.Provide(events.NewConsumer),
		fx.Provide(repl.NewService),
		fx.Provide(b.modules...),
	}
}

func (b bootstrapper) fxLogger(sconf *config.ServerConfig) fx.Option {
	if sconf.Debug {
		return fx.WithLogger(func() fxevent.Logger {
			return &fxevent.ConsoleLogger{W: os.Stdout}
		})
	}

	return fx.NopLogger
}

// Bootstrap assembles the webhook ingress application. The resulting fx app
// runs the go-micro http service alongside the repl side server.
func (b bootstrapper) Bootstrap() *fx.App {
	builder := config.BuildNewServerConfig(b.path)
	sconf, err := builder()
	if err != nil {
		log := log.NewDefaultLogger(&config.LoggerConfig{})
		log.Fatal(err.Error())
		return nil
	}

	opts := b.provides(builder)
	opts = append(opts,
		fx.Invoke(b.invokables...),
		fx.Invoke(func(lifecycle fx.Lifecycle, service micro.Service, repl *http.Server, logger log.Logger) {
			lifecycle.Append(fx.Hook{
				OnStart: func(ctx context.Context) error {
					go repl.ListenAndServe()
					go service.Run()
					return nil
				},
				OnStop: func(ctx context.Context) error {
					g, gCtx := errgroup.WithContext(ctx)
					g.Go(func() error {
						return repl.Shutdown(gCtx)
					})
					return g.Wait()
				},
			})
		}),
		b.fxLogger(sconf),
	)

	return fx.New(opts...)
}

// BootstrapConsumer assembles the standalone consumer application. Instead of
// an http ingress it runs the blocking consumer loop next to the repl server.
func (b bootstrapper) BootstrapConsumer() *fx.App {
	builder := config.BuildNewServerConfig(b.path)
	sconf, err := builder()
	if err != nil {
		log := log.NewDefaultLogger(&config.LoggerConfig{})
		log.Fatal(err.Error())
		return nil
	}

	opts := b.provides(builder)
	opts = append(opts,
		fx.Invoke(b.invokables...),
		fx.Invoke(func(lifecycle fx.Lifecycle, shutdowner fx.Shutdowner, consumer *events.Consumer, repl *http.Server, logger log.Logger) {
			ctx, cancel := context.WithCancel(context.Background())
			lifecycle.Append(fx.Hook{
				OnStart: func(context.Context) error {
					go repl.ListenAndServe()
					go func() {
						if err := consumer.Run(ctx); err != nil && ctx.Err() == nil {
							logger.Errorf("consumer stopped: %s", err.Error())
							shutdowner.Shutdown()
						}
					}()
					return nil
				},
				OnStop: func(sctx context.Context) error {
					cancel()
					g, gCtx := errgroup.WithContext(sctx)
					g.Go(func() error {
						return repl.Shutdown(gCtx)
					})
					return g.Wait()
				},
			})
		}),
		b.fxLogger(sconf),
	)

	return fx.New(opts...)
}
