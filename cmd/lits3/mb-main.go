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
)

// make a bucket.
var mbCmd = cli.Command{
	Name:   "mb",
	Usage:  "Make a bucket.",
	Action: mainMakeBucket,
	CustomHelpTemplate: `NAME:
   lits3 {{.Name}} - {{.Usage}}

USAGE:
   lits3 {{.Name}} BUCKET

EXAMPLES:
   1. Create a bucket on the configured host.
      $ lits3 {{.Name}} backup

`,
}

// mainMakeBucket - handler for the mb command.
func mainMakeBucket(ctx *cli.Context) {
	if len(ctx.Args()) != 1 {
		cli.ShowCommandHelpAndExit(ctx, "mb", 1) // last argument is exit code
	}
	bucket := ctx.Args().First()

	clnt := newClient(ctx)
	fatalIf(clnt.MakeBucket(bucket), "Unable to make bucket ‘"+bucket+"’.")
}
