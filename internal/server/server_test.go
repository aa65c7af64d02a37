package server

import (
	"context"
	"io"
	"net"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/desertthunder/setlist/internal/shared"
)

func TestServer(t *testing.T) {
	t.Run("New applies defaults", func(t *testing.T) {
		srv := New(Options{Logger: shared.NewLogger(io.Discard)})

		if srv.http.Addr != "127.0.0.1:5000" {
			t.Errorf("expected default address, got %s", srv.http.Addr)
		}
		if srv.Handler() == nil {
			t.Error("expected handler")
		}
	})

	t.Run("metrics endpoint", func(t *testing.T) {
		srv, reg := newTestServer(t)
		seed(t, reg, "a")
		seed(t, reg, "b")

		do(t, srv.Handler(), http.MethodGet, "/playlist/a", "")
		rec := do(t, srv.Handler(), http.MethodGet, "/metrics", "")
		assertStatus(t, rec, http.StatusOK)

		body := rec.Body.String()
		for _, want := range []string{
			"setlist_playlists 2",
			`setlist_http_requests_total{method="GET",route="GET /playlist/{name}",status_code="200"} 1`,
		} {
			if !strings.Contains(body, want) {
				t.Errorf("expected metrics to contain %q", want)
			}
		}
	})

	t.Run("rate limit from config", func(t *testing.T) {
		config := shared.DefaultConfig()
		config.RateLimit.RequestsPerSecond = 0.001
		config.RateLimit.Burst = 1
		srv := New(Options{Config: config, Logger: shared.NewLogger(io.Discard)})

		assertStatus(t, do(t, srv.Handler(), http.MethodGet, "/health", ""), http.StatusOK)
		rec := do(t, srv.Handler(), http.MethodGet, "/health", "")
		assertStatus(t, rec, http.StatusTooManyRequests)
		if rec.Header().Get(RequestIDHeader) == "" {
			t.Error("expected limited responses to carry a request id")
		}
	})

	t.Run("Serve shuts down on cancel", func(t *testing.T) {
		srv, _ := newTestServer(t)

		ln, err := net.Listen("tcp", "127.0.0.1:0")
		if err != nil {
			t.Fatalf("failed to listen: %v", err)
		}

		ctx, cancel := context.WithCancel(context.Background())
		done := make(chan error, 1)
		go func() { done <- srv.Serve(ctx, ln) }()

		resp, err := http.Get("http://" + ln.Addr().String() + "/health")
		if err != nil {
			t.Fatalf("request failed: %v", err)
		}
		resp.Body.Close()
		if resp.StatusCode != http.StatusOK {
			t.Errorf("expected 200, got %d", resp.StatusCode)
		}

		cancel()
		select {
		case err := <-done:
			if err != nil {
				t.Errorf("expected clean shutdown, got %v", err)
			}
		case <-time.After(5 * time.Second):
			t.Fatal("server did not shut down")
		}
	})

	t.Run("Start fails when address is taken", func(t *testing.T) {
		ln, err := net.Listen("tcp", "127.0.0.1:0")
		if err != nil {
			t.Fatalf("failed to listen: %v", err)
		}
		defer ln.Close()

		config := shared.DefaultConfig()
		config.Server.Port = ln.Addr().(*net.TCPAddr).Port
		srv := New(Options{Config: config, Logger: shared.NewLogger(io.Discard)})

		err = srv.Start(context.Background())
		if err == nil || !strings.Contains(err.Error(), "failed to listen") {
			t.Errorf("expected listen error, got %v", err)
		}
	})
}
