// Copyright (C) 2025 Allen Li
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package xivapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
)

const defaultBaseURL = "https://v2.xivapi.com/api"

const (
	packageVersion = "0.1.0"
	userAgent      = "go.felesatra.moe/xivapi " + packageVersion
)

// A Client is an XIVAPI client.
//
// The client handles basic rate limiting.
// The client does not retry failed requests.
//
// Multiple goroutines may invoke methods on a Client simultaneously.
type Client struct {
	httpClient *http.Client
	baseURL    string
	limiter    Limiter
	logger     Logger
	userAgent  string
}

// NewClient makes a new Client.
func NewClient(o ...Option) *Client {
	c := &Client{
		httpClient: http.DefaultClient,
		baseURL:    defaultBaseURL,
		limiter:    newLimiter(),
		logger:     nullLogger{},
		userAgent:  userAgent,
	}
	for _, o := range o {
		o.apply(c)
	}
	return c
}

// An Option is passed to NewClient for configuration.
type Option interface {
	apply(*Client)
}

// UseLogger returns an Option for setting a Logger.
// If nil, logging is disabled.
func UseLogger(l Logger) Option {
	return loggerOpt{l}
}

type loggerOpt struct {
	logger Logger
}

func (o loggerOpt) apply(c *Client) {
	if o.logger == nil {
		c.logger = nullLogger{}
		return
	}
	c.logger = o.logger
}

// UseLimiter returns an Option for setting the rate limiter.
// If nil, no rate limiting is done.
func UseLimiter(l Limiter) Option {
	return limiterOpt{l}
}

type limiterOpt struct {
	limiter Limiter
}

func (o limiterOpt) apply(c *Client) {
	c.limiter = o.limiter
}

// UseBaseURL returns an Option for setting the API base URL, for use
// with API proxies or self hosted instances.
func UseBaseURL(u string) Option {
	return baseURLOpt{strings.TrimSuffix(u, "/")}
}

type baseURLOpt struct {
	url string
}

func (o baseURLOpt) apply(c *Client) {
	c.baseURL = o.url
}

// UseHTTPClient returns an Option for setting the http.Client used
// for requests.
func UseHTTPClient(h *http.Client) Option {
	return httpClientOpt{h}
}

type httpClientOpt struct {
	httpClient *http.Client
}

func (o httpClientOpt) apply(c *Client) {
	if o.httpClient == nil {
		c.httpClient = http.DefaultClient
		return
	}
	c.httpClient = o.httpClient
}

// UseUserAgent returns an Option for setting the User-Agent header.
// The service asks that clients identify themselves.
func UseUserAgent(ua string) Option {
	return userAgentOpt{ua}
}

type userAgentOpt struct {
	userAgent string
}

func (o userAgentOpt) apply(c *Client) {
	c.userAgent = o.userAgent
}

// get performs a GET request against the API and decodes the JSON
// response into dst.
func (c *Client) get(ctx context.Context, path string, params url.Values, dst any) error {
	d, err := c.getRaw(ctx, path, params)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(d, dst); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidResponse, err)
	}
	return nil
}

// getRaw performs a GET request against the API and returns the raw
// response body.
func (c *Client) getRaw(ctx context.Context, path string, params url.Values) ([]byte, error) {
	u := c.baseURL + path
	if len(params) > 0 {
		u += "?" + params.Encode()
	}
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, err
		}
	}
	c.logger.Printf("Requesting %s", u)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", c.userAgent)
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if err := checkStatus(resp.StatusCode); err != nil {
		return nil, err
	}
	d, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	return d, nil
}
