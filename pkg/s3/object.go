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
	"io"
	"net/http"
	"strings"
	"time"
)

/// Object API operations

// GetObject - download an object. Returns the body, its length and the ETag
// with the erroneous double quotes trimmed off. The caller owns the body and
// must close it.
func (c *Client) GetObject(bucket, object string) (io.ReadCloser, int64, string, error) {
	req, err := NewRequest(c.config, "GET", bucket, object)
	if err != nil {
		return nil, 0, "", err
	}
	res, err := c.do(req)
	if err != nil {
		return nil, 0, "", err
	}

	switch res.StatusCode {
	case http.StatusOK:
	case http.StatusNotFound:
		res.Close()
		return nil, 0, "", ObjectNotFound{Bucket: bucket, Key: object}
	default:
		return nil, 0, "", responseToError(res)
	}
	md5sum := strings.Trim(res.Header.Get("ETag"), "\"")
	return res.Body, res.ContentLength, md5sum, nil
}

// PutObject - upload an object of a known size. md5 is the base64 encoded
// Content-MD5 of the body and may be empty to skip the integrity header.
func (c *Client) PutObject(bucket, object, md5, contentType string, size int64, body io.Reader) error {
	req, err := NewRequest(c.config, "PUT", bucket, object)
	if err != nil {
		return err
	}
	req.Body = io.NopCloser(body)
	req.ContentLength = size
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	req.Header.Set("Content-Type", contentType)
	if md5 != "" {
		req.Header.Set("Content-MD5", md5)
	}

	res, err := c.do(req)
	if err != nil {
		return err
	}
	defer res.Close()

	if res.StatusCode != http.StatusOK {
		return responseToError(res)
	}
	return nil
}

// StatObject - fetch size and modification time of an object without
// downloading it.
func (c *Client) StatObject(bucket, object string) (int64, time.Time, error) {
	req, err := NewRequest(c.config, "HEAD", bucket, object)
	if err != nil {
		return 0, time.Time{}, err
	}
	res, err := c.do(req)
	if err != nil {
		return 0, time.Time{}, err
	}
	defer res.Close()

	switch res.StatusCode {
	case http.StatusOK:
	case http.StatusNotFound:
		return 0, time.Time{}, ObjectNotFound{Bucket: bucket, Key: object}
	default:
		return 0, time.Time{}, responseToError(res)
	}
	modTime, err := http.ParseTime(res.Header.Get("Last-Modified"))
	if err != nil {
		modTime = time.Time{}
	}
	return res.ContentLength, modTime, nil
}

// RemoveObject - delete an object.
func (c *Client) RemoveObject(bucket, object string) error {
	req, err := NewRequest(c.config, "DELETE", bucket, object)
	if err != nil {
		return err
	}
	res, err := c.do(req)
	if err != nil {
		return err
	}
	defer res.Close()

	switch res.StatusCode {
	case http.StatusOK, http.StatusNoContent:
		return nil
	case http.StatusNotFound:
		return ObjectNotFound{Bucket: bucket, Key: object}
	default:
		return responseToError(res)
	}
}
