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
	"encoding/xml"
	"net/http"
)

// rejectionLocation is where the service redirects requests it refuses to
// handle, typically because authorization is missing or malformed. The match
// is exact; if the service ever changes the target this check stops firing.
const rejectionLocation = "http://aws.amazon.com/s3"

// GuardedResponse wraps a raw transport response after checking that the
// service did not reject the request outright. Status, headers and body
// remain accessible through the embedded response.
type GuardedResponse struct {
	*http.Response

	cursor *Cursor
	closed bool
}

// NewGuardedResponse validates res before anything reads its body. A 307
// pointing at the well-known rejection endpoint surfaces as
// AuthRejectedError; every other status passes through untouched for the
// caller to interpret.
func NewGuardedResponse(res *http.Response) (*GuardedResponse, error) {
	if res.StatusCode == http.StatusTemporaryRedirect &&
		res.Header.Get("Location") == rejectionLocation {
		res.Body.Close()
		return nil, AuthRejectedError{Location: rejectionLocation}
	}
	return &GuardedResponse{Response: res}, nil
}

// Cursor returns a streaming XML reader over the response body, positioned
// at the document's first element. The reader is created on first call and
// reused afterwards.
func (g *GuardedResponse) Cursor() (*Cursor, error) {
	if g.cursor != nil {
		return g.cursor, nil
	}
	dec := xml.NewDecoder(g.Body)
	for {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		if start, ok := tok.(xml.StartElement); ok {
			g.cursor = &Cursor{dec: dec, root: start}
			return g.cursor, nil
		}
	}
}

// Close releases the underlying transport response. Safe to call more than
// once; repeated calls do nothing.
func (g *GuardedResponse) Close() error {
	if g.closed {
		return nil
	}
	g.closed = true
	return g.Body.Close()
}

// Cursor is a forward-only XML reader over a response body. Elements are
// addressed by local name; the service namespace-qualifies its documents but
// consumers never care.
type Cursor struct {
	dec  *xml.Decoder
	root xml.StartElement
}

// Root reports the local name of the document's first element.
func (c *Cursor) Root() string {
	return c.root.Name.Local
}

// Decode unmarshals the document rooted at the cursor position into v.
func (c *Cursor) Decode(v interface{}) error {
	return c.dec.DecodeElement(v, &c.root)
}

// Token returns the next raw token from the underlying reader. Whitespace
// character data inside the document is significant and returned as-is.
func (c *Cursor) Token() (xml.Token, error) {
	return c.dec.Token()
}
