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

// ConfigError - the endpoint configuration cannot produce a usable request.
type ConfigError struct {
	Reason string
}

func (e ConfigError) Error() string {
	return "Invalid configuration: " + e.Reason + "."
}

// AlreadySignedError - the caller attempted to authorize a request twice.
// Signing is write-once; hitting this is a bug in the caller, not a
// condition to retry.
type AlreadySignedError struct {
	Method string
	URL    string
}

func (e AlreadySignedError) Error() string {
	return "Request ‘" + e.Method + " " + e.URL + "’ is already authorized."
}

// AuthRejectedError - the service refused to handle the request and
// redirected to its well-known endpoint instead of answering.
type AuthRejectedError struct {
	Location string
}

func (e AuthRejectedError) Error() string {
	return "The service is not handling the request (redirected to ‘" + e.Location +
		"’). Your authorization is likely missing or incorrect."
}

// APIError - a decoded <Error> response document.
type APIError struct {
	Status    string `xml:"-"` // HTTP status line
	Code      string
	Message   string
	Resource  string
	RequestID string `xml:"RequestId"`
	HostID    string `xml:"HostId"`
}

func (e APIError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return e.Status
}

// BucketNotFound - no bucket by this name on the service.
type BucketNotFound struct {
	Bucket string
}

func (e BucketNotFound) Error() string {
	return "Bucket ‘" + e.Bucket + "’ not found."
}

// ObjectNotFound - no object by this key in the bucket.
type ObjectNotFound struct {
	Bucket string
	Key    string
}

func (e ObjectNotFound) Error() string {
	return "Object ‘" + e.Key + "’ in bucket ‘" + e.Bucket + "’ not found."
}
