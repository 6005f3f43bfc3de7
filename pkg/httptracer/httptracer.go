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

// Package httptracer interposes an http.RoundTripper with caller supplied
// request and response hooks.
package httptracer

import (
	"errors"
	"net/http"
	"time"

	log "github.com/sirupsen/logrus"
)

// HTTPTracer provides callback hooks for each side of an HTTP exchange.
type HTTPTracer interface {
	Request(req *http.Request) error
	Response(res *http.Response) error
}

// TraceTransport interposes HTTP requests and responses using HTTPTracer
// hooks. Hooks run after a successful round trip; transport errors pass
// through without tracing.
type TraceTransport struct {
	Trace     HTTPTracer        // caller provided callback methods
	Transport http.RoundTripper // transport that needs to be intercepted
}

// New returns a traceable transport wrapping the given RoundTripper.
func New(trace HTTPTracer, transport http.RoundTripper) *TraceTransport {
	return &TraceTransport{Trace: trace, Transport: transport}
}

// RoundTrip executes the exchange and runs the hooks on its result.
func (t *TraceTransport) RoundTrip(req *http.Request) (res *http.Response, err error) {
	if t.Transport == nil {
		return nil, errors.New("httptracer: no transport to trace")
	}
	timeStamp := time.Now()
	res, err = t.Transport.RoundTrip(req)
	if err != nil {
		return res, err
	}
	if t.Trace != nil {
		if err = t.Trace.Request(req); err != nil {
			return nil, err
		}
		if err = t.Trace.Response(res); err != nil {
			return nil, err
		}
		log.Debugln("Response Time: ", time.Since(timeStamp).String())
	}
	return res, err
}
