/*
 * lits3 (C) 2026 lits3 contributors
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
 */

package main

import (
	"github.com/minio/cli"
	log "github.com/sirupsen/logrus"
)

// Version - release tag, set at build time.
var Version = "DEVELOPMENT.GOGET"

func main() {
	app := cli.NewApp()
	app.Name = "lits3"
	app.Usage = "Command line interface for S3-compatible object storage."
	app.Version = Version
	app.Flags = []cli.Flag{
		cli.StringFlag{
			Name:  "config, C",
			Value: "lits3.yaml",
			Usage: "Path to the host configuration file.",
		},
		cli.BoolFlag{
			Name:  "debug",
			Usage: "Enable HTTP wire tracing.",
		},
	}
	app.Before = func(ctx *cli.Context) error {
		if ctx.GlobalBool("debug") {
			log.SetLevel(log.DebugLevel)
		}
		return nil
	}
	app.Commands = []cli.Command{
		lsCmd,
		mbCmd,
		catCmd,
		pipeCmd,
		rmCmd,
	}
	app.RunAndExitOnError()
}
