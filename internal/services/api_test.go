package services

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"slices"
	"strings"
	"testing"

	"github.com/desertthunder/setlist/internal/models"
	"github.com/desertthunder/setlist/internal/shared"
	tu "github.com/desertthunder/setlist/internal/testing"
)

func TestAPIService(t *testing.T) {
	t.Run("New", func(t *testing.T) {
		t.Run("With Custom BaseURL and Client", func(t *testing.T) {
			customClient := &http.Client{}
			srv := NewAPIService("http://example.com", customClient)

			if srv.baseURL != "http://example.com" {
				t.Errorf("expected baseURL 'http://example.com', got %s", srv.baseURL)
			}
			if srv.httpClient != customClient {
				t.Error("expected custom client to be used")
			}
		})

		t.Run("With Empty BaseURL", func(t *testing.T) {
			srv := NewAPIService("", nil)

			if srv.baseURL != "http://127.0.0.1:5000" {
				t.Errorf("expected default baseURL 'http://127.0.0.1:5000', got %s", srv.baseURL)
			}
		})

		t.Run("With Nil Client", func(t *testing.T) {
			srv := NewAPIService("http://example.com", nil)

			if srv.httpClient != http.DefaultClient {
				t.Error("expected http.DefaultClient to be used")
			}
		})
	})

	t.Run("Get", func(t *testing.T) {
		t.Run("Successful Request With JSON Response", func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if r.Method != http.MethodGet {
					t.Errorf("expected GET method, got %s", r.Method)
				}
				if r.URL.Path != "/health" {
					t.Errorf("expected path '/health', got %s", r.URL.Path)
				}

				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusOK)
				json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
			}))
			defer server.Close()

			srv := NewAPIService(server.URL, nil)
			resp, err := srv.Get(context.Background(), "/health")

			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if resp.StatusCode != http.StatusOK {
				t.Errorf("expected status 200, got %d", resp.StatusCode)
			}
			if !resp.OK() {
				t.Error("expected OK to be true")
			}
			if !resp.IsJSON {
				t.Error("expected response to be JSON")
			}
			if resp.JSONData == nil {
				t.Error("expected JSONData to be populated")
			}
		})

		t.Run("Successful Request With Non-JSON Response", func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "text/plain")
				w.WriteHeader(http.StatusOK)
				w.Write([]byte("Playlist: road trip"))
			}))
			defer server.Close()

			srv := NewAPIService(server.URL, nil)
			resp, err := srv.Get(context.Background(), "/playlist/x/export")

			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if resp.IsJSON {
				t.Error("expected response to not be JSON")
			}
			if resp.JSONData != nil {
				t.Error("expected JSONData to be nil")
			}
			if string(resp.Body) != "Playlist: road trip" {
				t.Errorf("expected body 'Playlist: road trip', got %s", string(resp.Body))
			}
		})

		t.Run("Failed Request Creation", func(t *testing.T) {
			srv := NewAPIService("http://example.com", nil)
			_, err := srv.Get(context.Background(), "/test\x00invalid")

			if err == nil {
				t.Fatal("expected error for invalid URL")
			}
			if !strings.Contains(err.Error(), "failed to create request") {
				t.Errorf("expected 'failed to create request' error, got %v", err)
			}
		})

		t.Run("Failed HTTP Request", func(t *testing.T) {
			client := &http.Client{
				Transport: tu.NewMockRoundTripper(nil, errors.New("connection failed")),
			}

			srv := NewAPIService("http://example.com", client)
			_, err := srv.Get(context.Background(), "/test")

			if err == nil {
				t.Fatal("expected error for failed request")
			}
			if !strings.Contains(err.Error(), "request failed") {
				t.Errorf("expected 'request failed' error, got %v", err)
			}
		})

		t.Run("Failed Response Body Read", func(t *testing.T) {
			client := &http.Client{
				Transport: tu.NewMockRoundTripper(&http.Response{
					StatusCode: http.StatusOK,
					Body:       &tu.FCloser{},
					Header:     http.Header{},
				}, nil),
			}

			srv := NewAPIService("http://example.com", client)
			_, err := srv.Get(context.Background(), "/test")

			if err == nil {
				t.Fatal("expected error for failed body read")
			}
			if !strings.Contains(err.Error(), "failed to read response") {
				t.Errorf("expected 'failed to read response' error, got %v", err)
			}
		})

		t.Run("With Canceled Context", func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusOK)
			}))
			defer server.Close()

			ctx, cancel := context.WithCancel(context.Background())
			cancel()

			srv := NewAPIService(server.URL, nil)
			if _, err := srv.Get(ctx, "/test"); err == nil {
				t.Error("expected error for canceled context")
			}
		})

		t.Run("Response Headers Are Preserved", func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("X-Request-ID", "abc")
				w.WriteHeader(http.StatusOK)
			}))
			defer server.Close()

			srv := NewAPIService(server.URL, nil)
			resp, err := srv.Get(context.Background(), "/test")

			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if resp.Headers.Get("X-Request-ID") != "abc" {
				t.Errorf("expected request id header 'abc', got %s", resp.Headers.Get("X-Request-ID"))
			}
		})
	})

	t.Run("Post", func(t *testing.T) {
		t.Run("Sends JSON Body", func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if r.Method != http.MethodPost {
					t.Errorf("expected POST method, got %s", r.Method)
				}
				if r.Header.Get("Content-Type") != "application/json" {
					t.Errorf("expected Content-Type 'application/json', got %s", r.Header.Get("Content-Type"))
				}

				body, _ := io.ReadAll(r.Body)
				if string(body) != `{"name":"road trip"}` {
					t.Errorf("unexpected body %s", body)
				}
				w.WriteHeader(http.StatusCreated)
			}))
			defer server.Close()

			srv := NewAPIService(server.URL, nil)
			resp, err := srv.Post(context.Background(), "/playlist", []byte(`{"name":"road trip"}`))

			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if resp.StatusCode != http.StatusCreated {
				t.Errorf("expected status 201, got %d", resp.StatusCode)
			}
		})
	})

	t.Run("Delete", func(t *testing.T) {
		t.Run("Without Body Omits Content-Type", func(t *testing.T) {
			rt := tu.NewMockRoundTripper(&http.Response{
				StatusCode: http.StatusOK,
				Body:       io.NopCloser(strings.NewReader(`{"message":"Playlist deleted"}`)),
				Header:     http.Header{},
			}, nil)

			srv := NewAPIService("http://example.com", &http.Client{Transport: rt})
			if _, err := srv.Delete(context.Background(), "/playlist/x", nil); err != nil {
				t.Fatalf("expected no error, got %v", err)
			}

			if len(rt.Requests) != 1 {
				t.Fatalf("expected 1 request, got %d", len(rt.Requests))
			}
			req := rt.Requests[0]
			if req.Method != http.MethodDelete {
				t.Errorf("expected DELETE, got %s", req.Method)
			}
			if req.Header.Get("Content-Type") != "" {
				t.Errorf("expected no Content-Type, got %s", req.Header.Get("Content-Type"))
			}
		})
	})
}

func TestPlaylistClient(t *testing.T) {
	t.Run("ListPlaylists", func(t *testing.T) {
		rt := tu.NewMockRoundTripper(tu.JSONResponse(t, http.StatusOK, models.PlaylistListResponse{
			Playlists: []models.PlaylistSummary{{Name: "a", SongCount: 2}, {Name: "b"}},
		}), nil)
		srv := NewAPIService("http://example.com", &http.Client{Transport: rt})

		got, err := srv.ListPlaylists(context.Background())
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if len(got) != 2 || got[0].Name != "a" || got[0].SongCount != 2 {
			t.Errorf("unexpected playlists %+v", got)
		}
		if rt.Requests[0].URL.Path != "/playlist" {
			t.Errorf("expected path /playlist, got %s", rt.Requests[0].URL.Path)
		}
	})

	t.Run("GetPlaylist Escapes Name", func(t *testing.T) {
		rt := tu.NewMockRoundTripper(tu.JSONResponse(t, http.StatusOK, models.PlaylistResponse{
			Name:  "road trip",
			Songs: []string{"Africa by Toto [Rock]"},
		}), nil)
		srv := NewAPIService("http://example.com", &http.Client{Transport: rt})

		got, err := srv.GetPlaylist(context.Background(), "road trip")
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if got.Name != "road trip" || len(got.Songs) != 1 {
			t.Errorf("unexpected playlist %+v", got)
		}
		if p := rt.Requests[0].URL.EscapedPath(); p != "/playlist/road%20trip" {
			t.Errorf("expected escaped path, got %s", p)
		}
	})

	t.Run("AddSong Sends Song Fields", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path != "/playlist/mix/add_song" {
				t.Errorf("unexpected path %s", r.URL.Path)
			}
			var song models.Song
			if err := json.NewDecoder(r.Body).Decode(&song); err != nil {
				t.Fatalf("decode: %v", err)
			}
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusOK)
			json.NewEncoder(w).Encode(models.SongResponse{Message: "Song added", Song: song.String()})
		}))
		defer server.Close()

		srv := NewAPIService(server.URL, nil)
		got, err := srv.AddSong(context.Background(), "mix", models.NewSong("Africa", "Toto", "Rock"))
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if got != "Africa by Toto [Rock]" {
			t.Errorf("expected rendered song, got %q", got)
		}
	})

	t.Run("SearchPlaylist Encodes Title Query", func(t *testing.T) {
		rt := tu.NewMockRoundTripper(tu.JSONResponse(t, http.StatusOK, models.SearchResponse{
			Message: "Song found",
			Songs:   []string{"Africa by Toto [Rock]"},
		}), nil)
		srv := NewAPIService("http://example.com", &http.Client{Transport: rt})

		got, err := srv.SearchPlaylist(context.Background(), "mix", "rock & roll")
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if len(got) != 1 {
			t.Errorf("expected 1 song, got %v", got)
		}
		if title := rt.Requests[0].URL.Query().Get("title"); title != "rock & roll" {
			t.Errorf("expected title query 'rock & roll', got %q", title)
		}
	})

	t.Run("SortPlaylist", func(t *testing.T) {
		want := []string{"A by X [Pop]", "B by Y [Rock]"}
		rt := tu.NewMockRoundTripper(tu.JSONResponse(t, http.StatusOK, models.SortResponse{
			Message:     "Songs sorted",
			SortedSongs: want,
		}), nil)
		srv := NewAPIService("http://example.com", &http.Client{Transport: rt})

		got, err := srv.SortPlaylist(context.Background(), "mix", "title")
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if !slices.Equal(got, want) {
			t.Errorf("expected %v, got %v", want, got)
		}
	})

	t.Run("ExportPlaylist Returns Raw Body", func(t *testing.T) {
		rt := tu.NewMockRoundTripper(&http.Response{
			StatusCode: http.StatusOK,
			Body:       io.NopCloser(strings.NewReader("Position,Title,Artist,Genre\n")),
			Header:     http.Header{"Content-Type": {"text/csv"}},
		}, nil)
		srv := NewAPIService("http://example.com", &http.Client{Transport: rt})

		got, err := srv.ExportPlaylist(context.Background(), "mix", "csv")
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if string(got) != "Position,Title,Artist,Genre\n" {
			t.Errorf("unexpected export %q", got)
		}
		if f := rt.Requests[0].URL.Query().Get("format"); f != "csv" {
			t.Errorf("expected format csv, got %q", f)
		}
	})

	t.Run("Error Responses", func(t *testing.T) {
		tests := []struct {
			name    string
			status  int
			message string
			want    error
		}{
			{"Not Found", http.StatusNotFound, "Playlist not found", shared.ErrPlaylistNotFound},
			{"Song Not Found", http.StatusNotFound, "Song not found in playlist", shared.ErrSongNotFound},
			{"Exists", http.StatusBadRequest, "Playlist already exists", shared.ErrPlaylistExists},
			{"Missing Fields", http.StatusBadRequest, "Missing song data", shared.ErrMissingFields},
			{"Invalid Name", http.StatusBadRequest, "Invalid playlist name", shared.ErrInvalidName},
			{"Invalid Attribute", http.StatusBadRequest, "Invalid attribute for sorting", shared.ErrInvalidAttribute},
			{"Rate Limited", http.StatusTooManyRequests, "Rate limit exceeded", shared.ErrRateLimited},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				rt := tu.NewMockRoundTripper(tu.JSONResponse(t, tt.status, models.MessageResponse{Message: tt.message}), nil)
				srv := NewAPIService("http://example.com", &http.Client{Transport: rt})

				err := srv.DeletePlaylist(context.Background(), "mix")
				if !errors.Is(err, tt.want) {
					t.Errorf("expected %v, got %v", tt.want, err)
				}
				if !errors.Is(err, shared.ErrAPIRequest) {
					t.Errorf("expected ErrAPIRequest, got %v", err)
				}

				var apiErr *APIError
				if !errors.As(err, &apiErr) {
					t.Fatalf("expected *APIError, got %T", err)
				}
				if apiErr.StatusCode != tt.status || apiErr.Message != tt.message {
					t.Errorf("unexpected APIError %+v", apiErr)
				}
			})
		}

		t.Run("Unrecognized Message", func(t *testing.T) {
			rt := tu.NewMockRoundTripper(&http.Response{
				StatusCode: http.StatusBadGateway,
				Body:       io.NopCloser(strings.NewReader("bad gateway")),
				Header:     http.Header{},
			}, nil)
			srv := NewAPIService("http://example.com", &http.Client{Transport: rt})

			err := srv.CreatePlaylist(context.Background(), "mix")
			if !errors.Is(err, shared.ErrAPIRequest) {
				t.Errorf("expected ErrAPIRequest, got %v", err)
			}
			if IsNotFound(err) {
				t.Error("expected IsNotFound to be false")
			}
			if !strings.Contains(err.Error(), "status 502") {
				t.Errorf("expected status in message, got %v", err)
			}
		})

		t.Run("Transport Failure", func(t *testing.T) {
			client := &http.Client{Transport: tu.NewMockRoundTripper(nil, errors.New("connection refused"))}
			srv := NewAPIService("http://example.com", client)

			_, err := srv.Health(context.Background())
			if !errors.Is(err, shared.ErrAPIRequest) {
				t.Errorf("expected ErrAPIRequest, got %v", err)
			}
		})
	})
}
