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

package resilience

import (
	"github.com/clickup-mcp/webhook-relay/pkg/config"
	"github.com/go-micro/plugins/v4/wrapper/breaker/hystrix"
)

func BuildHystrixCommandConfig(resilienceConfig *config.ResilienceConfig) hystrix.CommandConfig {
	var cmd hystrix.CommandConfig
	if resilienceConfig.Resilience.CircuitBreaker.Timeout > 0 {
		cmd.Timeout = resilienceConfig.Resilience.CircuitBreaker.Timeout
	}

	if resilienceConfig.Resilience.CircuitBreaker.MaxConcurrent > 0 {
		cmd.MaxConcurrentRequests = resilienceConfig.Resilience.CircuitBreaker.MaxConcurrent
	}

	if resilienceConfig.Resilience.CircuitBreaker.VolumeThreshold > 0 {
		cmd.RequestVolumeThreshold = resilienceConfig.Resilience.CircuitBreaker.VolumeThreshold
	}

	if resilienceConfig.Resilience.CircuitBreaker.SleepWindow > 0 {
		cmd.SleepWindow = resilienceConfig.Resilience.CircuitBreaker.SleepWindow
	}

	if resilienceConfig.Resilience.CircuitBreaker.ErrorPercentThreshold > 0 {
		cmd.ErrorPercentThreshold = resilienceConfig.Resilience.CircuitBreaker.ErrorPercentThreshold
	}

	return cmd
}
