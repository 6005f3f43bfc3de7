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
	"net/http"
	"net/url"
	"strconv"
)

/// Bucket API operations

// ListBuckets - fetch the service-level bucket listing.
func (c *Client) ListBuckets() ([]Bucket, error) {
	req, err := NewRequest(c.config, "GET", "", "")
	if err != nil {
		return nil, err
	}
	res, err := c.do(req)
	if err != nil {
		return nil, err
	}
	defer res.Close()

	if res.StatusCode != http.StatusOK {
		return nil, responseToError(res)
	}
	cur, err := res.Cursor()
	if err != nil {
		return nil, err
	}
	var result listAllMyBucketsResult
	if err := cur.Decode(&result); err != nil {
		return nil, err
	}
	return result.Buckets.Bucket, nil
}

// MakeBucket - create a new bucket.
func (c *Client) MakeBucket(bucket string) error {
	req, err := NewRequest(c.config, "PUT", bucket, "")
	if err != nil {
		return err
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

// RemoveBucket - delete an empty bucket.
func (c *Client) RemoveBucket(bucket string) error {
	req, err := NewRequest(c.config, "DELETE", bucket, "")
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
		return BucketNotFound{Bucket: bucket}
	default:
		return responseToError(res)
	}
}

// StatBucket - check a bucket exists and is reachable with the configured
// credentials.
func (c *Client) StatBucket(bucket string) error {
	req, err := NewRequest(c.config, "HEAD", bucket, "")
	if err != nil {
		return err
	}
	res, err := c.do(req)
	if err != nil {
		return err
	}
	defer res.Close()

	switch res.StatusCode {
	case http.StatusOK, http.StatusMovedPermanently:
		return nil
	case http.StatusNotFound:
		return BucketNotFound{Bucket: bucket}
	default:
		return responseToError(res)
	}
}

// ListObjects - list objects in a bucket matching prefix, following
// truncated results until the listing is complete. Listing parameters
// travel in the query string, which signature V2 leaves out of the
// canonical resource, so signatures stay valid.
func (c *Client) ListObjects(bucket, prefix string) ([]Content, error) {
	var contents []Content
	marker := ""
	for {
		result, err := c.listObjectsOnce(bucket, prefix, marker)
		if err != nil {
			return nil, err
		}
		contents = append(contents, result.Contents...)
		if !result.IsTruncated {
			return contents, nil
		}
		marker = result.NextMarker
		if marker == "" && len(result.Contents) > 0 {
			marker = result.Contents[len(result.Contents)-1].Key
		}
	}
}

func (c *Client) listObjectsOnce(bucket, prefix, marker string) (*listBucketResult, error) {
	req, err := NewRequest(c.config, "GET", bucket, "")
	if err != nil {
		return nil, err
	}
	query := url.Values{}
	if prefix != "" {
		query.Set("prefix", prefix)
	}
	if marker != "" {
		query.Set("marker", marker)
	}
	query.Set("max-keys", strconv.Itoa(listMaxKeys))
	req.URL.RawQuery = query.Encode()

	res, err := c.do(req)
	if err != nil {
		return nil, err
	}
	defer res.Close()

	switch res.StatusCode {
	case http.StatusOK:
	case http.StatusNotFound:
		return nil, BucketNotFound{Bucket: bucket}
	default:
		return nil, responseToError(res)
	}
	cur, err := res.Cursor()
	if err != nil {
		return nil, err
	}
	var result listBucketResult
	if err := cur.Decode(&result); err != nil {
		return nil, err
	}
	return &result, nil
}

// Page size for bucket listings.
const listMaxKeys = 1000
