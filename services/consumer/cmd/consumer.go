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

package cmd

import (
	"os"

	"github.com/clickup-mcp/webhook-relay/pkg"
	"github.com/urfave/cli/v2"
)

func Consumer() *cli.Command {
	return &cli.Command{
		Name:     "consumer",
		Usage:    "starts a new webhook consumer instance",
		Category: "consumer",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config_path",
				Usage:   "sets custom configuration path",
				Aliases: []string{"config", "conf", "c"},
			},
			&cli.StringFlag{
				Name:    "backend",
				Usage:   "overrides the configured events backend (memory, rabbitmq, nats)",
				Aliases: []string{"b"},
			},
		},
		Action: func(c *cli.Context) error {
			var (
				CONFIG_PATH = c.String("config_path")
				BACKEND     = c.String("backend")
			)

			if BACKEND != "" {
				os.Setenv("EVENTS_BACKEND", BACKEND)
			}

			app := pkg.NewBootstrapper(CONFIG_PATH).BootstrapConsumer()

			if err := app.Err(); err != nil {
				return err
			}

			app.Run()

			return nil
		},
	}
}
