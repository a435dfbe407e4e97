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

	"github.com/stretchr/testify/assert"
)

func newTestEvent(t Type) *Event {
	return NewEvent(t, map[string]interface{}{"data": "mock"}, map[string]string{}, time.Now().UTC(), "")
}

func TestRegistryDispatch(t *testing.T) {
	t.Run("invokes handlers in registration order", func(t *testing.T) {
		registry := NewRegistry()
		var order []string
		registry.Register(TaskCreated, func(ctx context.Context, event *Event) error {
			order = append(order, "first")
			return nil
		})
		registry.Register(TaskCreated, func(ctx context.Context, event *Event) error {
			order = append(order, "second")
			return nil
		})

		assert.NoError(t, registry.Dispatch(context.Background(), newTestEvent(TaskCreated)))
		assert.Equal(t, []string{"first", "second"}, order)
	})

	t.Run("preserves registration order across many handlers", func(t *testing.T) {
		registry := NewRegistry()
		var order []int
		for i := 0; i < 10; i++ {
			i := i
			registry.Register(TaskCommentPosted, func(ctx context.Context, event *Event) error {
				order = append(order, i)
				return nil
			})
		}

		assert.NoError(t, registry.Dispatch(context.Background(), newTestEvent(TaskCommentPosted)))
		assert.Equal(t, []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}, order)
	})

	t.Run("handlers receive the dispatch context and event", func(t *testing.T) {
		type ctxKey struct{}
		registry := NewRegistry()
		sent := newTestEvent(TaskMoved)
		var gotCtx context.Context
		var gotEvent *Event
		registry.Register(TaskMoved, func(ctx context.Context, event *Event) error {
			gotCtx = ctx
			gotEvent = event
			return nil
		})

		ctx := context.WithValue(context.Background(), ctxKey{}, "mock")
		assert.NoError(t, registry.Dispatch(ctx, sent))
		assert.Same(t, sent, gotEvent)
		assert.Equal(t, "mock", gotCtx.Value(ctxKey{}))
	})

	t.Run("first error aborts the chain unmodified", func(t *testing.T) {
		registry := NewRegistry()
		boom := errors.New("boom")
		ran := 0
		registry.Register(TaskUpdated, func(ctx context.Context, event *Event) error {
			ran++
			return boom
		})
		registry.Register(TaskUpdated, func(ctx context.Context, event *Event) error {
			ran++
			return nil
		})

		err := registry.Dispatch(context.Background(), newTestEvent(TaskUpdated))
		assert.Same(t, boom, err)
		assert.Equal(t, 1, ran)
	})

	t.Run("no handlers is a no-op", func(t *testing.T) {
		registry := NewRegistry()
		assert.NoError(t, registry.Dispatch(context.Background(), newTestEvent(SpaceDeleted)))
	})

	t.Run("does not leak handlers across types", func(t *testing.T) {
		registry := NewRegistry()
		ran := false
		registry.Register(TaskCreated, func(ctx context.Context, event *Event) error {
			ran = true
			return nil
		})

		assert.NoError(t, registry.Dispatch(context.Background(), newTestEvent(TaskDeleted)))
		assert.False(t, ran)
	})

	t.Run("duplicate registration runs twice", func(t *testing.T) {
		registry := NewRegistry()
		ran := 0
		handler := func(ctx context.Context, event *Event) error {
			ran++
			return nil
		}
		registry.Register(GoalCreated, handler)
		registry.Register(GoalCreated, handler)

		assert.NoError(t, registry.Dispatch(context.Background(), newTestEvent(GoalCreated)))
		assert.Equal(t, 2, ran)
		assert.Equal(t, 2, registry.Len(GoalCreated))
	})
}

func TestRegistryBind(t *testing.T) {
	t.Run("binds a snake case alias", func(t *testing.T) {
		registry := NewRegistry()
		ran := false
		assert.NoError(t, registry.Bind("task_status_updated", func(ctx context.Context, event *Event) error {
			ran = true
			return nil
		}))

		assert.NoError(t, registry.Dispatch(context.Background(), newTestEvent(TaskStatusUpdated)))
		assert.True(t, ran)
	})

	t.Run("matches aliases case insensitively", func(t *testing.T) {
		registry := NewRegistry()
		assert.NoError(t, registry.Bind("Task_Created", func(ctx context.Context, event *Event) error {
			return nil
		}))
		assert.Equal(t, 1, registry.Len(TaskCreated))
	})

	t.Run("unknown alias registers nothing", func(t *testing.T) {
		registry := NewRegistry()
		err := registry.Bind("task_vaporized", func(ctx context.Context, event *Event) error {
			return nil
		})

		var uerr *UnknownEventTypeError
		assert.ErrorAs(t, err, &uerr)
		for _, typ := range Types {
			assert.Zero(t, registry.Len(typ))
		}
	})
}

func TestRegistryClear(t *testing.T) {
	registry := NewRegistry()
	registry.Register(ListCreated, func(ctx context.Context, event *Event) error {
		return errors.New("should never run")
	})

	registry.Clear()

	assert.Zero(t, registry.Len(ListCreated))
	assert.NoError(t, registry.Dispatch(context.Background(), newTestEvent(ListCreated)))
}
