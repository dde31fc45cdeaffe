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
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
)

// newTestClient makes a Client talking to a test server running the
// given handler.  Rate limiting is off so tests run instantly.
func newTestClient(t *testing.T, h http.HandlerFunc, o ...Option) *Client {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	o = append([]Option{UseBaseURL(srv.URL), UseLimiter(nil)}, o...)
	return NewClient(o...)
}

func TestClientUserAgent(t *testing.T) {
	t.Parallel()
	var got string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Get("User-Agent")
		fmt.Fprint(w, `{"sheets":[]}`)
	})
	if _, err := c.Sheets(context.Background()); err != nil {
		t.Fatalf("Error listing sheets: %s", err)
	}
	if got != userAgent {
		t.Errorf("got User-Agent %q; want %q", got, userAgent)
	}
}

func TestClientCustomUserAgent(t *testing.T) {
	t.Parallel()
	var got string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Get("User-Agent")
		fmt.Fprint(w, `{"sheets":[]}`)
	}, UseUserAgent("mikochi/1.0"))
	if _, err := c.Sheets(context.Background()); err != nil {
		t.Fatalf("Error listing sheets: %s", err)
	}
	if got != "mikochi/1.0" {
		t.Errorf("got User-Agent %q; want %q", got, "mikochi/1.0")
	}
}

func TestClientLogsRequests(t *testing.T) {
	t.Parallel()
	var s spyLogger
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"sheets":[]}`)
	}, UseLogger(&s))
	if _, err := c.Sheets(context.Background()); err != nil {
		t.Fatalf("Error listing sheets: %s", err)
	}
	msgs := s.messages()
	if len(msgs) != 1 {
		t.Fatalf("got %d log messages; want 1", len(msgs))
	}
	if want := "Requesting " + c.baseURL + "/sheet"; msgs[0] != want {
		t.Errorf("got log message %q; want %q", msgs[0], want)
	}
}

func TestClientWaitsOnLimiter(t *testing.T) {
	t.Parallel()
	l := &spyLimiter{}
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"sheets":[]}`)
	}, UseLimiter(l))
	if _, err := c.Sheets(context.Background()); err != nil {
		t.Fatalf("Error listing sheets: %s", err)
	}
	if got := l.waited(); got != 1 {
		t.Errorf("got %d limiter waits; want 1", got)
	}
}

func TestClientLimiterError(t *testing.T) {
	t.Parallel()
	requested := false
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		requested = true
	}, UseLimiter(stuckLimiter{}))
	_, err := c.Sheets(context.Background())
	if err == nil {
		t.Fatalf("Did not get error")
	}
	if requested {
		t.Errorf("Request was sent despite limiter error")
	}
}

func TestClientRateLimited(t *testing.T) {
	t.Parallel()
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	})
	_, err := c.Sheets(context.Background())
	if !errors.Is(err, ErrRateLimited) {
		t.Errorf("got error %v; want ErrRateLimited", err)
	}
}

func TestClientStatusError(t *testing.T) {
	t.Parallel()
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})
	_, err := c.Sheets(context.Background())
	var se *StatusError
	if !errors.As(err, &se) {
		t.Fatalf("got error %v; want a StatusError", err)
	}
	if se.Code != 500 {
		t.Errorf("got status %d; want 500", se.Code)
	}
}

func TestClientInvalidResponse(t *testing.T) {
	t.Parallel()
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `<html>not json</html>`)
	})
	_, err := c.Sheets(context.Background())
	if !errors.Is(err, ErrInvalidResponse) {
		t.Errorf("got error %v; want ErrInvalidResponse", err)
	}
}

func TestClientTransportError(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()
	c := NewClient(UseBaseURL(srv.URL), UseLimiter(nil))
	if _, err := c.Sheets(context.Background()); err == nil {
		t.Errorf("Did not get error")
	}
}

func TestClientContextCanceled(t *testing.T) {
	t.Parallel()
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"sheets":[]}`)
	})
	ctx, cf := context.WithCancel(context.Background())
	cf()
	_, err := c.Sheets(ctx)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("got error %v; want context.Canceled", err)
	}
}

func TestUseBaseURLTrailingSlash(t *testing.T) {
	t.Parallel()
	var got string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.URL.Path
		fmt.Fprint(w, `{"sheets":[]}`)
	}))
	t.Cleanup(srv.Close)
	c := NewClient(UseBaseURL(srv.URL+"/"), UseLimiter(nil))
	if _, err := c.Sheets(context.Background()); err != nil {
		t.Fatalf("Error listing sheets: %s", err)
	}
	if got != "/sheet" {
		t.Errorf("got request path %q; want %q", got, "/sheet")
	}
}

type spyLogger struct {
	mu   sync.Mutex
	msgs []string
}

func (l *spyLogger) Printf(format string, a ...any) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.msgs = append(l.msgs, fmt.Sprintf(format, a...))
}

func (l *spyLogger) messages() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]string(nil), l.msgs...)
}

type spyLimiter struct {
	mu sync.Mutex
	n  int
}

func (l *spyLimiter) Wait(context.Context) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.n++
	return nil
}

func (l *spyLimiter) waited() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.n
}

// A stuckLimiter always refuses to let requests through.
type stuckLimiter struct{}

func (stuckLimiter) Wait(context.Context) error {
	return errors.New("stuck")
}
