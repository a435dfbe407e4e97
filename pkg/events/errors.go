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

import "fmt"

// UnknownEventTypeError signals a wire string or alias that does not name a
// declared webhook kind.
type UnknownEventTypeError struct {
	Value string
}

func (e *UnknownEventTypeError) Error() string {
	return fmt.Sprintf("unknown clickup webhook event type: %s", e.Value)
}

// UnknownModuleError signals a configured handler module name with no
// registered setup function.
type UnknownModuleError struct {
	Name string
}

func (e *UnknownModuleError) Error() string {
	return fmt.Sprintf("unknown handler module: %s", e.Name)
}

// PoisonBudgetError terminates the consumer loop after too many consecutive
// dispatch failures.
type PoisonBudgetError struct {
	Failures int
	Last     error
}

func (e *PoisonBudgetError) Error() string {
	return fmt.Sprintf("consumer exceeded %d consecutive dispatch failures. Last: %s", e.Failures, e.Last)
}

func (e *PoisonBudgetError) Unwrap() error {
	return e.Last
}
