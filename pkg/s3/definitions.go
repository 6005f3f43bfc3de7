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
	"strings"
	"time"
)

// Config - see http://docs.amazonwebservices.com/AmazonS3/latest/dev/index.html?RESTAuthentication.html
type Config struct {
	Host            string
	Port            int // 0 picks the default port for the scheme
	UseTLS          bool
	VirtualStyle    bool // address buckets as subdomains instead of path segments
	AccessKeyID     string
	SecretAccessKey string
	UserAgent       string
	Debug           bool

	// Clock supplies the signing timestamp. Leave nil for wall-clock time;
	// tests freeze it for deterministic signatures.
	Clock func() time.Time
}

func (c *Config) now() time.Time {
	if c.Clock != nil {
		return c.Clock().UTC()
	}
	return time.Now().UTC()
}

func (c *Config) validate() error {
	if c == nil || strings.TrimSpace(c.Host) == "" {
		return ConfigError{Reason: "empty host"}
	}
	return nil
}

// Bucket - a service-level bucket entry.
type Bucket struct {
	Name         string
	CreationDate time.Time
}

// Content - a single object entry in a bucket listing.
type Content struct {
	Key          string
	LastModified time.Time
	ETag         string
	Size         int64
}

type commonPrefix struct {
	Prefix string
}

type listAllMyBucketsResult struct {
	Owner struct {
		ID          string
		DisplayName string
	}
	Buckets struct {
		Bucket []Bucket
	}
}

type listBucketResult struct {
	Name           string
	Prefix         string
	Marker         string
	NextMarker     string
	MaxKeys        int
	Delimiter      string
	IsTruncated    bool
	Contents       []Content
	CommonPrefixes []commonPrefix
}
