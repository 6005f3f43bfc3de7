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
	"net"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"strings"
	"time"

	. "gopkg.in/check.v1"
)

const errorXML = `<?xml version="1.0" encoding="UTF-8"?>
<Error><Code>AccessDenied</Code><Message>Access Denied</Message><Resource>/mybucket/photo.jpg</Resource><RequestId>F19772218238A85A</RequestId><HostId>GuWkjyviSiGHizehqpmsD1ndz5NClSP19DOT</HostId></Error>`

const objectsXML = `<?xml version="1.0" encoding="UTF-8"?>
<ListBucketResult xmlns="http://s3.amazonaws.com/doc/2006-03-01/"><Name>mybucket</Name><Prefix></Prefix><Marker></Marker><MaxKeys>1000</MaxKeys><IsTruncated>false</IsTruncated><Contents><Key>one.txt</Key><LastModified>2006-01-01T12:00:00.000Z</LastModified><ETag>&quot;828ef3fdfa96f00ad9f27c383fc9ac7f&quot;</ETag><Size>5</Size></Contents><Contents><Key>two.txt</Key><LastModified>2006-01-02T12:00:00.000Z</LastModified><ETag>&quot;ce114e4501d2f4e2dcea3e17b546f339&quot;</ETag><Size>7</Size></Contents></ListBucketResult>`

// serverConfig derives a path-style endpoint config from an httptest URL.
func serverConfig(c *C, rawurl string) *Config {
	u, err := url.Parse(rawurl)
	c.Assert(err, IsNil)
	host, portStr, err := net.SplitHostPort(u.Host)
	c.Assert(err, IsNil)
	port, err := strconv.Atoi(portStr)
	c.Assert(err, IsNil)
	return &Config{
		Host:            host,
		Port:            port,
		AccessKeyID:     "key",
		SecretAccessKey: "secretkey",
		UserAgent:       "lits3/test",
		Clock:           frozenTime,
	}
}

func (s *MySuite) TestListBuckets(c *C) {
	var gotPath, gotAuth, gotDate string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		gotDate = r.Header.Get("x-amz-date")
		w.Header().Set("Content-Type", "application/xml")
		io.WriteString(w, bucketsXML)
	}))
	defer server.Close()

	clnt := testClient(c, serverConfig(c, server.URL))
	buckets, err := clnt.ListBuckets()
	c.Assert(err, IsNil)

	c.Assert(gotPath, Equals, "/")
	c.Assert(strings.HasPrefix(gotAuth, "AWS key:"), Equals, true)
	c.Assert(gotDate, Equals, "Sat, 02 Apr 2011 04:23:52 GMT")

	t1, _ := time.Parse(time.RFC3339, "2006-06-21T07:04:31.000Z")
	t2, _ := time.Parse(time.RFC3339, "2006-06-21T07:04:32.000Z")
	c.Assert(buckets, DeepEquals, []Bucket{
		{Name: "bucketOne", CreationDate: t1},
		{Name: "bucketTwo", CreationDate: t2},
	})
}

func (s *MySuite) TestListBucketsRejected(c *C) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Location", "http://aws.amazon.com/s3")
		w.WriteHeader(http.StatusTemporaryRedirect)
	}))
	defer server.Close()

	clnt := testClient(c, serverConfig(c, server.URL))
	_, err := clnt.ListBuckets()
	c.Assert(err, FitsTypeOf, AuthRejectedError{})
	c.Assert(err, ErrorMatches, ".*authorization is likely missing or incorrect.*")
}

func (s *MySuite) TestGetObjectAPIError(c *C) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/xml")
		w.WriteHeader(http.StatusForbidden)
		io.WriteString(w, errorXML)
	}))
	defer server.Close()

	clnt := testClient(c, serverConfig(c, server.URL))
	_, _, _, err := clnt.GetObject("mybucket", "photo.jpg")
	c.Assert(err, FitsTypeOf, APIError{})
	c.Assert(err.(APIError).Code, Equals, "AccessDenied")
	c.Assert(err.(APIError).Resource, Equals, "/mybucket/photo.jpg")
	c.Assert(err.Error(), Equals, "Access Denied")
}

func (s *MySuite) TestGetObject(c *C) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("ETag", `"828ef3fdfa96f00ad9f27c383fc9ac7f"`)
		io.WriteString(w, "hello")
	}))
	defer server.Close()

	clnt := testClient(c, serverConfig(c, server.URL))
	body, size, md5sum, err := clnt.GetObject("mybucket", "one.txt")
	c.Assert(err, IsNil)
	defer body.Close()

	c.Assert(size, Equals, int64(5))
	c.Assert(md5sum, Equals, "828ef3fdfa96f00ad9f27c383fc9ac7f")
	data, err := io.ReadAll(body)
	c.Assert(err, IsNil)
	c.Assert(string(data), Equals, "hello")
}

func (s *MySuite) TestPutObject(c *C) {
	var gotMethod, gotPath, gotType, gotMD5, gotBody string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		gotType = r.Header.Get("Content-Type")
		gotMD5 = r.Header.Get("Content-MD5")
		data, _ := io.ReadAll(r.Body)
		gotBody = string(data)
	}))
	defer server.Close()

	clnt := testClient(c, serverConfig(c, server.URL))
	err := clnt.PutObject("mybucket", "data.bin", "CzJI4UnR5dGIvyVw6K7mPg==", "",
		int64(len("payload")), strings.NewReader("payload"))
	c.Assert(err, IsNil)

	c.Assert(gotMethod, Equals, "PUT")
	c.Assert(gotPath, Equals, "/mybucket/data.bin")
	c.Assert(gotType, Equals, "application/octet-stream")
	c.Assert(gotMD5, Equals, "CzJI4UnR5dGIvyVw6K7mPg==")
	c.Assert(gotBody, Equals, "payload")
}

func (s *MySuite) TestListObjects(c *C) {
	var gotPrefix string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPrefix = r.URL.Query().Get("prefix")
		w.Header().Set("Content-Type", "application/xml")
		io.WriteString(w, objectsXML)
	}))
	defer server.Close()

	clnt := testClient(c, serverConfig(c, server.URL))
	contents, err := clnt.ListObjects("mybucket", "on")
	c.Assert(err, IsNil)
	c.Assert(gotPrefix, Equals, "on")
	c.Assert(len(contents), Equals, 2)
	c.Assert(contents[0].Key, Equals, "one.txt")
	c.Assert(contents[0].Size, Equals, int64(5))
	c.Assert(contents[1].Key, Equals, "two.txt")
}

func (s *MySuite) TestStatObject(c *C) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Last-Modified", "Wed, 21 Oct 2015 07:28:00 GMT")
		w.Header().Set("Content-Length", "42")
	}))
	defer server.Close()

	clnt := testClient(c, serverConfig(c, server.URL))
	size, modTime, err := clnt.StatObject("mybucket", "one.txt")
	c.Assert(err, IsNil)
	c.Assert(size, Equals, int64(42))

	want, _ := http.ParseTime("Wed, 21 Oct 2015 07:28:00 GMT")
	c.Assert(modTime.Equal(want), Equals, true)
}

func (s *MySuite) TestStatObjectNotFound(c *C) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	clnt := testClient(c, serverConfig(c, server.URL))
	_, _, err := clnt.StatObject("mybucket", "missing.txt")
	c.Assert(err, FitsTypeOf, ObjectNotFound{})
}

func (s *MySuite) TestRemoveObject(c *C) {
	var gotMethod, gotPath string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	clnt := testClient(c, serverConfig(c, server.URL))
	c.Assert(clnt.RemoveObject("mybucket", "one.txt"), IsNil)
	c.Assert(gotMethod, Equals, "DELETE")
	c.Assert(gotPath, Equals, "/mybucket/one.txt")
}

func (s *MySuite) TestMakeAndRemoveBucket(c *C) {
	var methods []string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		methods = append(methods, r.Method+" "+r.URL.Path)
		if r.Method == "DELETE" {
			w.WriteHeader(http.StatusNoContent)
		}
	}))
	defer server.Close()

	clnt := testClient(c, serverConfig(c, server.URL))
	c.Assert(clnt.MakeBucket("mybucket"), IsNil)
	c.Assert(clnt.RemoveBucket("mybucket"), IsNil)
	c.Assert(methods, DeepEquals, []string{"PUT /mybucket/", "DELETE /mybucket/"})
}
