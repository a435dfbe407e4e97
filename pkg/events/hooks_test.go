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
	"testing"

	"github.com/stretchr/testify/assert"
)

type mockTaskHooks struct {
	created int
	deleted int
}

func (m *mockTaskHooks) OnTaskCreated(ctx context.Context, event *Event) error {
	m.created++
	return nil
}

func (m *mockTaskHooks) OnTaskDeleted(ctx context.Context, event *Event) error {
	m.deleted++
	return nil
}

type mockEmptyHooks struct{}

func TestRegisterHooks(t *testing.T) {
	t.Run("registers exactly the implemented hooks", func(t *testing.T) {
		registry := NewRegistry()
		hooks := &mockTaskHooks{}

		assert.Equal(t, 2, RegisterHooks(registry, hooks))
		assert.Equal(t, 1, registry.Len(TaskCreated))
		assert.Equal(t, 1, registry.Len(TaskDeleted))
		assert.Zero(t, registry.Len(TaskUpdated))
	})

	t.Run("value without hook methods registers nothing", func(t *testing.T) {
		registry := NewRegistry()
		assert.Zero(t, RegisterHooks(registry, mockEmptyHooks{}))
		for _, typ := range Types {
			assert.Zero(t, registry.Len(typ))
		}
	})

	t.Run("dispatch reaches the hook method", func(t *testing.T) {
		registry := NewRegistry()
		hooks := &mockTaskHooks{}
		RegisterHooks(registry, hooks)

		assert.NoError(t, registry.Dispatch(context.Background(), newTestEvent(TaskCreated)))
		assert.NoError(t, registry.Dispatch(context.Background(), newTestEvent(TaskDeleted)))
		assert.Equal(t, 1, hooks.created)
		assert.Equal(t, 1, hooks.deleted)
	})

	t.Run("independent values do not affect each other", func(t *testing.T) {
		registry := NewRegistry()
		first := &mockTaskHooks{}
		second := &mockTaskHooks{}
		RegisterHooks(registry, first)
		RegisterHooks(registry, second)

		assert.NoError(t, registry.Dispatch(context.Background(), newTestEvent(TaskCreated)))
		assert.Equal(t, 1, first.created)
		assert.Equal(t, 1, second.created)
	})
}

func TestHooksHandler(t *testing.T) {
	t.Run("resolves the hook at dispatch time", func(t *testing.T) {
		hooks := &mockTaskHooks{}
		handler := HooksHandler(hooks)

		assert.NoError(t, handler(context.Background(), newTestEvent(TaskCreated)))
		assert.Equal(t, 1, hooks.created)
	})

	t.Run("ignores events without a matching hook", func(t *testing.T) {
		hooks := &mockTaskHooks{}
		handler := HooksHandler(hooks)

		assert.NoError(t, handler(context.Background(), newTestEvent(TaskUpdated)))
		assert.Zero(t, hooks.created)
		assert.Zero(t, hooks.deleted)
	})
}
