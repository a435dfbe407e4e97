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
	"sort"
	"sync"
)

// ModuleFunc performs a handler module's registrations against a registry.
type ModuleFunc func(registry *Registry) error

var (
	modulesMu sync.RWMutex
	modules   = make(map[string]ModuleFunc)
)

// RegisterModule makes a named handler module available to RunModules.
// Modules typically call it from an init function so that blank-importing
// the module's package is enough to make it selectable by configuration.
// Panics on an empty name or a duplicate, like database/sql drivers.
func RegisterModule(name string, setup ModuleFunc) {
	modulesMu.Lock()
	defer modulesMu.Unlock()
	if name == "" || setup == nil {
		panic("events: RegisterModule requires a name and a setup function")
	}
	if _, dup := modules[name]; dup {
		panic("events: RegisterModule called twice for module " + name)
	}
	modules[name] = setup
}

// Modules lists every registered module name, sorted.
func Modules() []string {
	modulesMu.RLock()
	defer modulesMu.RUnlock()
	names := make([]string, 0, len(modules))
	for name := range modules {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// RunModules executes the named module setups against the registry, in the
// order given, so their registrations happen before traffic begins. An
// unknown name fails before any setup runs.
func RunModules(registry *Registry, names ...string) error {
	modulesMu.RLock()
	setups := make([]ModuleFunc, 0, len(names))
	for _, name := range names {
		setup, ok := modules[name]
		if !ok {
			modulesMu.RUnlock()
			return &UnknownModuleError{Name: name}
		}
		setups = append(setups, setup)
	}
	modulesMu.RUnlock()

	for _, setup := range setups {
		if err := setup(registry); err != nil {
			return err
		}
	}

	return nil
}
