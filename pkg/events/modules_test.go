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

	"github.com/stretchr/testify/assert"
)

func TestModules(t *testing.T) {
	t.Run("runs registered modules against the registry", func(t *testing.T) {
		RegisterModule("test.tasks", func(registry *Registry) error {
			registry.Register(TaskCreated, func(ctx context.Context, event *Event) error {
				return nil
			})
			return nil
		})

		registry := NewRegistry()
		assert.NoError(t, RunModules(registry, "test.tasks"))
		assert.Equal(t, 1, registry.Len(TaskCreated))
		assert.Contains(t, Modules(), "test.tasks")
	})

	t.Run("unknown module fails before any setup runs", func(t *testing.T) {
		ran := false
		RegisterModule("test.ordered", func(registry *Registry) error {
			ran = true
			return nil
		})

		err := RunModules(NewRegistry(), "test.ordered", "test.missing")
		var merr *UnknownModuleError
		assert.ErrorAs(t, err, &merr)
		assert.Equal(t, "test.missing", merr.Name)
		assert.False(t, ran)
	})

	t.Run("setup errors propagate", func(t *testing.T) {
		boom := errors.New("bad module")
		RegisterModule("test.broken", func(registry *Registry) error {
			return boom
		})

		assert.Same(t, boom, RunModules(NewRegistry(), "test.broken"))
	})

	t.Run("duplicate registration panics", func(t *testing.T) {
		RegisterModule("test.duplicate", func(registry *Registry) error {
			return nil
		})

		assert.Panics(t, func() {
			RegisterModule("test.duplicate", func(registry *Registry) error {
				return nil
			})
		})
	})

	t.Run("empty name panics", func(t *testing.T) {
		assert.Panics(t, func() {
			RegisterModule("", func(registry *Registry) error {
				return nil
			})
		})
	})
}
