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
	"bytes"
	"crypto/md5"
	"encoding/base64"
	"io"
	"os"

	"github.com/minio/cli"
)

// upload standard input as an object.
var pipeCmd = cli.Command{
	Name:   "pipe",
	Usage:  "Upload standard input as an object.",
	Action: mainPipe,
	Flags: []cli.Flag{
		cli.StringFlag{
			Name:  "content-type",
			Value: "application/octet-stream",
			Usage: "Content type of the uploaded object.",
		},
	},
	CustomHelpTemplate: `NAME:
   lits3 {{.Name}} - {{.Usage}}

USAGE:
   lits3 {{.Name}} BUCKET OBJECT

EXAMPLES:
   1. Stream a tarball into a bucket.
      $ tar -cz . | lits3 {{.Name}} backup 2015-Mar-1/backup.tar.gz

`,
}

// mainPipe - handler for the pipe command. Standard input is buffered so the
// upload can carry Content-MD5 and an exact length.
func mainPipe(ctx *cli.Context) {
	if len(ctx.Args()) != 2 {
		cli.ShowCommandHelpAndExit(ctx, "pipe", 1) // last argument is exit code
	}
	bucket, object := ctx.Args().Get(0), ctx.Args().Get(1)

	data, err := io.ReadAll(os.Stdin)
	fatalIf(err, "Unable to read standard input.")

	sum := md5.Sum(data)
	md5sum := base64.StdEncoding.EncodeToString(sum[:])

	clnt := newClient(ctx)
	err = clnt.PutObject(bucket, object, md5sum, ctx.String("content-type"),
		int64(len(data)), bytes.NewReader(data))
	fatalIf(err, "Unable to write object ‘"+object+"’.")
}
