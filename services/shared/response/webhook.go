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

package response

import "encoding/json"

type WebhookResponse struct {
	OK bool `json:"ok"`
}

func (r WebhookResponse) ToJSON() []byte {
	buf, _ := json.Marshal(r)
	return buf
}

type WebhookErrorResponse struct {
	OK    bool   `json:"ok"`
	Error string `json:"error"`
}

func (r WebhookErrorResponse) ToJSON() []byte {
	buf, _ := json.Marshal(r)
	return buf
}
