/*
 * Copyright 2025 Carver Automation Corporation.
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

// Package duo pkg/duo/client.go provides a client for the Duo Admin API.
package duo

import (
	"context"
	"crypto/hmac"
	"crypto/sha1" //nolint:gosec // HMAC-SHA1 is what the Duo Admin API signs with
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/carverauto/duocleanup/pkg/logger"
)

const (
	defaultTimeout   = 30 * time.Second
	defaultPageLimit = 100

	usersPath  = "/admin/v1/users"
	phonesPath = "/admin/v1/phones"
)

// AdminClient talks to the Duo Admin API with HMAC-SHA1 signed requests.
type AdminClient struct {
	ikey       string
	skey       string
	host       string
	scheme     string
	httpClient HTTPClient
	pageLimit  int
	log        logger.Logger
}

// NewAdminClient creates a client for the Admin API at host (the bare
// api-XXXXXXXX.duosecurity.com hostname, no scheme).
func NewAdminClient(ikey, skey, host string, httpClient HTTPClient, log logger.Logger) *AdminClient {
	if httpClient == nil {
		httpClient = &http.Client{
			Timeout: defaultTimeout,
		}
	}

	return &AdminClient{
		ikey:       ikey,
		skey:       skey,
		host:       strings.ToLower(host),
		scheme:     "https",
		httpClient: httpClient,
		pageLimit:  defaultPageLimit,
		log:        log,
	}
}

// ListUsers fetches the complete user list, following pagination until the
// API stops returning a next offset. Each user embeds its phones.
func (c *AdminClient) ListUsers(ctx context.Context) ([]User, error) {
	var users []User

	offset := 0

	for {
		params := url.Values{}
		params.Set("limit", strconv.Itoa(c.pageLimit))
		params.Set("offset", strconv.Itoa(offset))

		env, err := c.call(ctx, http.MethodGet, usersPath, params)
		if err != nil {
			return nil, fmt.Errorf("failed to list users: %w", err)
		}

		var page []User

		if err := json.Unmarshal(env.Response, &page); err != nil {
			return nil, fmt.Errorf("failed to parse user list: %w", err)
		}

		users = append(users, page...)

		if env.Metadata == nil || env.Metadata.NextOffset == nil {
			break
		}

		offset = *env.Metadata.NextOffset

		c.log.Debug().
			Int("fetched", len(users)).
			Int("next_offset", offset).
			Msg("Following user list pagination")
	}

	c.log.Info().
		Int("users", len(users)).
		Msg("Fetched user list from Duo")

	return users, nil
}

// UpdatePhoneName writes a new value into the phone's free-text name field.
func (c *AdminClient) UpdatePhoneName(ctx context.Context, phoneID, name string) error {
	params := url.Values{}
	params.Set("name", name)

	if _, err := c.call(ctx, http.MethodPost, phonePath(phoneID), params); err != nil {
		return fmt.Errorf("failed to update phone %s: %w", phoneID, err)
	}

	return nil
}

// DeletePhone removes the phone from Duo entirely.
func (c *AdminClient) DeletePhone(ctx context.Context, phoneID string) error {
	if _, err := c.call(ctx, http.MethodDelete, phonePath(phoneID), nil); err != nil {
		return fmt.Errorf("failed to delete phone %s: %w", phoneID, err)
	}

	return nil
}

func phonePath(phoneID string) string {
	return fmt.Sprintf("%s/%s", phonesPath, url.PathEscape(phoneID))
}

// call issues one signed request and unwraps the response envelope.
func (c *AdminClient) call(ctx context.Context, method, path string, params url.Values) (*apiResponse, error) {
	req, err := c.signedRequest(ctx, method, path, params)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	var env apiResponse

	if resp.StatusCode != http.StatusOK {
		// The failure envelope carries a machine code and message; surface
		// them when the body parses.
		if json.Unmarshal(bodyBytes, &env) == nil && env.Message != "" {
			return nil, fmt.Errorf("%w: %d, code %d: %s %s", errUnexpectedStatusCode,
				resp.StatusCode, env.Code, env.Message, env.MessageDetail)
		}

		return nil, fmt.Errorf("%w: %d, response: %s", errUnexpectedStatusCode,
			resp.StatusCode, string(bodyBytes))
	}

	if err := json.Unmarshal(bodyBytes, &env); err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}

	if env.Stat != "OK" {
		return nil, fmt.Errorf("%w: code %d: %s %s", errAPIFail,
			env.Code, env.Message, env.MessageDetail)
	}

	return &env, nil
}

// signedRequest builds a request with the Admin API authorization scheme:
// HMAC-SHA1 over date, method, host, path and the canonical parameter
// string, presented as basic auth ikey:signature.
func (c *AdminClient) signedRequest(ctx context.Context, method, path string, params url.Values) (*http.Request, error) {
	canon := canonParams(params)
	date := time.Now().UTC().Format(time.RFC1123Z)

	mac := hmac.New(sha1.New, []byte(c.skey))
	mac.Write([]byte(strings.Join([]string{date, strings.ToUpper(method), c.host, path, canon}, "\n")))
	sig := hex.EncodeToString(mac.Sum(nil))

	reqURL := fmt.Sprintf("%s://%s%s", c.scheme, c.host, path)

	var body io.Reader = http.NoBody

	switch method {
	case http.MethodGet, http.MethodDelete:
		if canon != "" {
			reqURL += "?" + canon
		}
	default:
		body = strings.NewReader(canon)
	}

	req, err := http.NewRequestWithContext(ctx, method, reqURL, body)
	if err != nil {
		return nil, err
	}

	req.Header.Set("Date", date)
	req.Header.Set("Accept", "application/json")
	req.SetBasicAuth(c.ikey, sig)

	if body != http.NoBody {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}

	return req, nil
}

// canonParams renders params the way the signature expects them: keys and
// values RFC 3986 encoded, pairs sorted, joined with '&'.
func canonParams(params url.Values) string {
	if len(params) == 0 {
		return ""
	}

	keys := make([]string, 0, len(params))
	for k := range params {
		keys = append(keys, k)
	}

	sort.Strings(keys)

	pairs := make([]string, 0, len(params))

	for _, k := range keys {
		values := append([]string(nil), params[k]...)
		sort.Strings(values)

		for _, v := range values {
			pairs = append(pairs, escape(k)+"="+escape(v))
		}
	}

	return strings.Join(pairs, "&")
}

// escape percent-encodes per RFC 3986; Duo rejects '+' for spaces.
func escape(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}
