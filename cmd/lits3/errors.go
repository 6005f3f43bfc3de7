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
	log "github.com/sirupsen/logrus"
)

// fatalIf exits with msg when err is set. The secret key never appears in
// err messages, so logging them verbatim is safe.
func fatalIf(err error, msg string) {
	if err == nil {
		return
	}
	log.WithError(err).Fatalln(msg)
}
