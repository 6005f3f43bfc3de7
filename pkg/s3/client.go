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

// Package s3 implements a generic client for S3-compatible object storage
// using signature V2 request authorization.
package s3

import (
	"net/http"

	"github.com/xingh/lits3/pkg/httptracer"
)

// Client issues signed requests against one configured endpoint. Requests
// are dispatched through the RoundTripper directly, so redirects are never
// followed and nothing rewrites the bytes after they are signed.
type Client struct {
	config    *Config
	transport http.RoundTripper
}

// New returns an initialized Client. transport may be nil for the default
// behavior; with config.Debug set it is wrapped in a tracing transport that
// dumps wire traffic with credentials redacted.
func New(config *Config, transport http.RoundTripper) (*Client, error) {
	if err := config.validate(); err != nil {
		return nil, err
	}
	if transport == nil {
		transport = http.DefaultTransport
	}
	if config.Debug {
		transport = httptracer.New(traceV2{}, transport)
	}
	return &Client{config: config, transport: transport}, nil
}

// do signs req (unless the caller already did) and performs the exchange.
// Transport failures propagate unchanged.
func (c *Client) do(req *Request) (*GuardedResponse, error) {
	if !req.signed {
		if err := c.SignRequest(req); err != nil {
			return nil, err
		}
	}
	res, err := c.transport.RoundTrip(req.Request)
	if err != nil {
		return nil, err
	}
	return NewGuardedResponse(res)
}

// responseToError drains res as a service <Error> document. Falls back to
// the bare status line when the body is not parseable.
func responseToError(res *GuardedResponse) error {
	defer res.Close()
	apiErr := APIError{Status: res.Status}
	cur, err := res.Cursor()
	if err != nil {
		return apiErr
	}
	if err := cur.Decode(&apiErr); err != nil {
		return APIError{Status: res.Status}
	}
	return apiErr
}
