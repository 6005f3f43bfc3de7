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
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/minio/cli"
)

// list buckets and objects.
var lsCmd = cli.Command{
	Name:   "ls",
	Usage:  "List buckets and objects.",
	Action: mainList,
	CustomHelpTemplate: `NAME:
   lits3 {{.Name}} - {{.Usage}}

USAGE:
   lits3 {{.Name}} [BUCKET [PREFIX]]

EXAMPLES:
   1. List all buckets on the configured host.
      $ lits3 {{.Name}}
      [2015-01-20 15:42:00 UTC] rom/
      [2015-01-15 00:05:40 UTC] zek/

   2. List objects under a prefix.
      $ lits3 {{.Name}} backup 2015-
      [2015-03-31 14:46:33 UTC]  55MiB 2015-Mar-1/backup.tar.gz

`,
}

var (
	timeColor = color.New(color.FgGreen)
	dirColor  = color.New(color.FgCyan, color.Bold)
	sizeColor = color.New(color.FgYellow)
)

const printDate = "2006-01-02 15:04:05 MST"

// mainList - handler for the ls command.
func mainList(ctx *cli.Context) {
	if ctx.Args().First() == "help" {
		cli.ShowCommandHelpAndExit(ctx, "ls", 1) // last argument is exit code
	}
	clnt := newClient(ctx)

	if !ctx.Args().Present() {
		buckets, err := clnt.ListBuckets()
		fatalIf(err, "Unable to list buckets.")
		for _, bucket := range buckets {
			fmt.Printf("[%s] %s\n",
				timeColor.Sprint(bucket.CreationDate.Format(printDate)),
				dirColor.Sprint(bucket.Name+"/"))
		}
		return
	}

	bucket := ctx.Args().First()
	prefix := ctx.Args().Get(1)
	contents, err := clnt.ListObjects(bucket, prefix)
	fatalIf(err, "Unable to list objects in bucket ‘"+bucket+"’.")
	for _, content := range contents {
		fmt.Printf("[%s] %6s %s\n",
			timeColor.Sprint(content.LastModified.Format(printDate)),
			sizeColor.Sprint(humanize.IBytes(uint64(content.Size))),
			content.Key)
	}
}
