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
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseType(t *testing.T) {
	t.Run("resolves a known wire string", func(t *testing.T) {
		parsed, err := ParseType("taskCreated")
		assert.NoError(t, err)
		assert.Equal(t, TaskCreated, parsed)
	})

	t.Run("rejects an unknown wire string", func(t *testing.T) {
		_, err := ParseType("taskExploded")
		assert.Error(t, err)
		var uerr *UnknownEventTypeError
		assert.ErrorAs(t, err, &uerr)
		assert.Equal(t, "taskExploded", uerr.Value)
	})

	t.Run("rejects a snake case alias", func(t *testing.T) {
		_, err := ParseType("task_created")
		assert.Error(t, err)
	})

	t.Run("every declared type round trips", func(t *testing.T) {
		for _, typ := range Types {
			parsed, err := ParseType(string(typ))
			assert.NoError(t, err)
			assert.Equal(t, typ, parsed)
		}
	})
}

func TestTypeCatalog(t *testing.T) {
	t.Run("every type has an alias", func(t *testing.T) {
		assert.Equal(t, len(Types), len(aliases))
		seen := map[Type]bool{}
		for _, typ := range aliases {
			seen[typ] = true
		}
		for _, typ := range Types {
			assert.True(t, seen[typ], "missing alias for %s", typ)
		}
	})
}
