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
	"io"
	"os"

	"github.com/minio/cli"
)

// print object contents to standard output.
var catCmd = cli.Command{
	Name:   "cat",
	Usage:  "Write an object to standard output.",
	Action: mainCat,
	CustomHelpTemplate: `NAME:
   lits3 {{.Name}} - {{.Usage}}

USAGE:
   lits3 {{.Name}} BUCKET OBJECT

EXAMPLES:
   1. Concatenate an object to standard output.
      $ lits3 {{.Name}} backup 2015-Mar-1/backup.tar.gz | tar -xz

`,
}

// mainCat - handler for the cat command.
func mainCat(ctx *cli.Context) {
	if len(ctx.Args()) != 2 {
		cli.ShowCommandHelpAndExit(ctx, "cat", 1) // last argument is exit code
	}
	bucket, object := ctx.Args().Get(0), ctx.Args().Get(1)

	clnt := newClient(ctx)
	body, _, _, err := clnt.GetObject(bucket, object)
	fatalIf(err, "Unable to read object ‘"+object+"’.")
	defer body.Close()

	_, err = io.Copy(os.Stdout, body)
	fatalIf(err, "Unable to write object ‘"+object+"’ to standard output.")
}
