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

	"github.com/gookit/event"
)

// Handler processes one webhook event. Handlers are owned by the registering
// module; the registry only holds references to them.
type Handler func(ctx context.Context, event *Event) error

// Keys carrying dispatch state through a fired event's parameters.
const (
	paramContext = "ctx"
	paramEvent   = "event"
)

// Registry routes events to handlers keyed by Type, firing through a
// dedicated gookit event manager. All registration surfaces reduce to
// Register. Safe for concurrent use; under normal operation registration
// completes at startup before traffic begins.
type Registry struct {
	mu      sync.RWMutex
	manager *event.Manager
	counts  map[Type]int
}

func NewRegistry() *Registry {
	return &Registry{
		manager: event.NewManager("relay"),
		counts:  make(map[Type]int),
	}
}

// Register appends a handler to the list for the given type. Registering the
// same handler twice is accepted and will invoke it twice. Listener
// priorities decrease per registration: the manager fires higher priorities
// first, so handlers run in registration order.
func (r *Registry) Register(t Type, handler Handler) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.manager.On(string(t), event.ListenerFunc(func(e event.Event) error {
		ctx, _ := e.Get(paramContext).(context.Context)
		evt, _ := e.Get(paramEvent).(*Event)
		return handler(ctx, evt)
	}), -r.counts[t])
	r.counts[t]++
}

// Bind registers a handler under a snake_case alias ("task_created"),
// matching case-insensitively. An unknown alias fails immediately and
// registers nothing.
func (r *Registry) Bind(alias string, handler Handler) error {
	t, ok := aliases[strings.ToLower(alias)]
	if !ok {
		return &UnknownEventTypeError{Value: alias}
	}

	r.Register(t, handler)
	return nil
}

// Dispatch fires the event through the manager, invoking every registered
// handler strictly in registration order. The first handler error aborts the
// chain and is returned unmodified. No handlers is a no-op, not an error.
func (r *Registry) Dispatch(ctx context.Context, evt *Event) error {
	r.mu.RLock()
	defer r.mu.RUnlock()

	err, _ := r.manager.Fire(string(evt.Type), event.M{
		paramContext: ctx,
		paramEvent:   evt,
	})

	return err
}

// Len reports how many handlers are registered for a type.
func (r *Registry) Len(t Type) int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.counts[t]
}

// Clear drops every registration. Test isolation helper.
func (r *Registry) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.manager.Reset()
	r.counts = make(map[Type]int)
}
