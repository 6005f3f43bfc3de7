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
	"bytes"
	"crypto/hmac"
	"crypto/sha1"
	"encoding/base64"
	"io"
	"net/http"
	"sort"
	"strings"
)

const (
	// Credential scheme tag for signature V2 authorization headers.
	signScheme = "AWS"

	// Header-name prefix identifying provider metadata/control headers
	// subject to canonicalization.
	amzHeaderPrefix = "x-amz-"

	// The signing timestamp. Included in the canonical header block, which
	// is why the standard Date line of the string-to-sign stays empty: the
	// transport may rewrite Date after signing, x-amz-date it cannot.
	amzDateHeader = "x-amz-date"
)

// SignRequest stamps req with x-amz-date from the configured clock, computes
// the V2 signature and sets the Authorization header. The request is mutated
// in place and becomes immutable for signing purposes; a second call fails
// with AlreadySignedError.
func (c *Client) SignRequest(req *Request) error {
	if req.signed {
		return AlreadySignedError{Method: req.Method, URL: req.URL.String()}
	}
	req.Header.Set(amzDateHeader, c.config.now().Format(http.TimeFormat))
	req.Header.Set("Authorization",
		signScheme+" "+c.config.AccessKeyID+":"+signature(c.config.SecretAccessKey, stringToSign(req)))
	req.signed = true
	return nil
}

// signature computes base64(hmac-sha1(secretKey, stringToSign)). The MAC is
// scoped to this call; key-derived state never outlives it.
func signature(secretKey, stringToSign string) string {
	hm := hmac.New(sha1.New, []byte(secretKey))
	io.WriteString(hm, stringToSign)
	return base64.StdEncoding.EncodeToString(hm.Sum(nil))
}

// From the Amazon docs:
//
// StringToSign = HTTP-Verb + "\n" +
//	 Content-MD5 + "\n" +
//	 Content-Type + "\n" +
//	 Date + "\n" +
//	 CanonicalizedAmzHeaders +
//	 CanonicalizedResource;
func stringToSign(req *Request) string {
	buf := new(bytes.Buffer)
	buf.WriteString(req.Method)
	buf.WriteByte('\n')
	buf.WriteString(req.Header.Get("Content-MD5"))
	buf.WriteByte('\n')
	buf.WriteString(req.Header.Get("Content-Type"))
	buf.WriteByte('\n')
	if req.Header.Get(amzDateHeader) == "" {
		buf.WriteString(req.Header.Get("Date"))
	}
	buf.WriteByte('\n')
	writeCanonicalizedAmzHeaders(buf, req)
	writeCanonicalizedResource(buf, req)
	return buf.String()
}

// writeCanonicalizedAmzHeaders renders every x-amz-* header as
// `name:values-joined-by-comma\n`, names lowercased and sorted. Runs of
// whitespace inside and around the joined value collapse to a single space;
// nothing pads the colon.
func writeCanonicalizedAmzHeaders(buf *bytes.Buffer, req *Request) {
	var amzHeaders []string
	vals := make(map[string][]string)
	for k, vv := range req.Header {
		lk := strings.ToLower(k)
		if strings.HasPrefix(lk, amzHeaderPrefix) {
			amzHeaders = append(amzHeaders, lk)
			vals[lk] = vv
		}
	}
	sort.Strings(amzHeaders)
	for _, k := range amzHeaders {
		buf.WriteString(k)
		buf.WriteByte(':')
		buf.WriteString(strings.Join(strings.Fields(strings.Join(vals[k], ",")), " "))
		buf.WriteByte('\n')
	}
}

// From the Amazon docs:
//
// CanonicalizedResource = [ "/" + Bucket ] +
//	  <HTTP-Request-URI, from the protocol name up to the query string>
//
// Under subdomain addressing the bucket is no longer a path segment, so it
// is re-inserted from the request's side-channel field; with path-style
// addressing the URL path already carries it.
//
// TODO: fold sub-resource query markers (?acl, ?location, ?logging,
// ?torrent, ...) into the resource. Until then a request addressing a
// sub-resource produces a signature the service will refuse.
func writeCanonicalizedResource(buf *bytes.Buffer, req *Request) {
	if req.virtualStyle && req.resolvedBucket != "" {
		buf.WriteByte('/')
		buf.WriteString(req.resolvedBucket)
	}
	buf.WriteString(req.URL.Path)
}
