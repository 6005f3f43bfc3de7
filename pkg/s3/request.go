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

package s3

import (
	"fmt"
	"net/http"
	"strings"
)

// Request is a pending, not yet dispatched call against the service. It is
// owned by the call stack that built it and must not be shared across
// goroutines. The embedded header map is the mutable surface for
// Content-Type, Content-MD5 and x-amz-meta-* values; populate it before
// signing, never after.
type Request struct {
	*http.Request

	// resolvedBucket keeps the bucket name visible after the URL has been
	// rewritten for subdomain addressing, where it no longer appears as a
	// path segment. The signer re-inserts it into the canonical resource.
	resolvedBucket string
	virtualStyle   bool
	signed         bool
}

// NewRequest builds an unauthenticated request addressed per config.
// bucket and object may both be empty for service-level calls.
func NewRequest(config *Config, method, bucket, object string) (*Request, error) {
	if err := config.validate(); err != nil {
		return nil, err
	}
	req, err := http.NewRequest(method, requestURL(config, bucket, object), nil)
	if err != nil {
		return nil, err
	}
	if config.UserAgent != "" {
		req.Header.Set("User-Agent", config.UserAgent)
	}
	r := &Request{Request: req}
	if bucket != "" && config.VirtualStyle {
		r.resolvedBucket = bucket
		r.virtualStyle = true
	}
	return r, nil
}

// Supports URLs in following formats
//   - http://<host>/<bucketname>/<object>
//   - http://<bucketname>.<host>/<object>
func requestURL(config *Config, bucket, object string) string {
	scheme, defaultPort := "http", 80
	if config.UseTLS {
		scheme, defaultPort = "https", 443
	}
	var b strings.Builder
	b.WriteString(scheme)
	b.WriteString("://")
	if bucket != "" && config.VirtualStyle {
		b.WriteString(bucket)
		b.WriteByte('.')
	}
	b.WriteString(config.Host)
	if config.Port != 0 && config.Port != defaultPort {
		fmt.Fprintf(&b, ":%d", config.Port)
	}
	b.WriteByte('/')
	if bucket != "" && !config.VirtualStyle {
		b.WriteString(bucket)
		b.WriteByte('/')
	}
	b.WriteString(object)
	return b.String()
}
