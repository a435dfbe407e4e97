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

package main

import (
	"log"
	"os"

	consumer "github.com/clickup-mcp/webhook-relay/services/consumer/cmd"
	webhook "github.com/clickup-mcp/webhook-relay/services/webhook/cmd"
	"github.com/urfave/cli/v2"
)

func main() {
	app := &cli.App{
		Name:  "relay",
		Usage: "clickup webhook relay services",
		Commands: []*cli.Command{
			webhook.Server(),
			consumer.Consumer(),
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
