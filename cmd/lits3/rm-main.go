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

// remove a bucket or an object.
var rmCmd = cli.Command{
	Name:   "rm",
	Usage:  "Remove a bucket or an object.",
	Action: mainRemove,
	CustomHelpTemplate: `NAME:
   lits3 {{.Name}} - {{.Usage}}

USAGE:
   lits3 {{.Name}} BUCKET [OBJECT]

EXAMPLES:
   1. Remove an object.
      $ lits3 {{.Name}} backup 2015-Mar-1/backup.tar.gz

   2. Remove an empty bucket.
      $ lits3 {{.Name}} backup

`,
}

// mainRemove - handler for the rm command.
func mainRemove(ctx *cli.Context) {
	clnt := newClient(ctx)
	switch len(ctx.Args()) {
	case 1:
		bucket := ctx.Args().First()
		fatalIf(clnt.RemoveBucket(bucket), "Unable to remove bucket ‘"+bucket+"’.")
	case 2:
		bucket, object := ctx.Args().Get(0), ctx.Args().Get(1)
		fatalIf(clnt.RemoveObject(bucket, object), "Unable to remove object ‘"+object+"’.")
	default:
		cli.ShowCommandHelpAndExit(ctx, "rm", 1) // last argument is exit code
	}
}
