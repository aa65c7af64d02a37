// API service for making HTTP requests to the setlist server
package services

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/desertthunder/setlist/internal/models"
	"github.com/desertthunder/setlist/internal/shared"
)

var _ Service = (*APIService)(nil)

// APIService provides raw and typed access to the playlist API.
type APIService struct {
	baseURL    string
	httpClient *http.Client
}

// NewAPIService creates a new API service instance for the server at baseURL.
func NewAPIService(baseURL string, client *http.Client) *APIService {
	if baseURL == "" {
		baseURL = "http://127.0.0.1:5000"
	}
	if client == nil {
		client = http.DefaultClient
	}

	return &APIService{
		baseURL:    baseURL,
		httpClient: client,
	}
}

// APIResponse represents a raw API response with status and body.
type APIResponse struct {
	StatusCode int
	Headers    http.Header
	Body       []byte
	IsJSON     bool
	JSONData   any
}

// OK reports whether the status is 2xx.
func (r *APIResponse) OK() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}

// APIError is returned by typed methods for non-2xx responses.
type APIError struct {
	StatusCode int
	Message    string
	kind       error
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("%v: status %d", shared.ErrAPIRequest, e.StatusCode)
	}
	return fmt.Sprintf("%v: status %d: %s", shared.ErrAPIRequest, e.StatusCode, e.Message)
}

// Unwrap exposes [shared.ErrAPIRequest] and the recognized domain error, if any.
func (e *APIError) Unwrap() []error {
	if e.kind == nil {
		return []error{shared.ErrAPIRequest}
	}
	return []error{shared.ErrAPIRequest, e.kind}
}

var messageErrors = map[string]error{
	"Playlist already exists":       shared.ErrPlaylistExists,
	"Playlist not found":            shared.ErrPlaylistNotFound,
	"Song not found in playlist":    shared.ErrSongNotFound,
	"Missing song data":             shared.ErrMissingFields,
	"Missing playlist name":         shared.ErrMissingFields,
	"Invalid playlist name":         shared.ErrInvalidName,
	"Invalid attribute for sorting": shared.ErrInvalidAttribute,
	"Invalid export format":         shared.ErrInvalidFormat,
}

func newAPIError(resp *APIResponse) *APIError {
	apiErr := &APIError{StatusCode: resp.StatusCode}

	var msg models.MessageResponse
	if err := json.Unmarshal(resp.Body, &msg); err == nil {
		apiErr.Message = msg.Message
		apiErr.kind = messageErrors[msg.Message]
	}
	if resp.StatusCode == http.StatusTooManyRequests {
		apiErr.kind = shared.ErrRateLimited
	}
	return apiErr
}

// Get performs a GET request to the specified path and returns the raw response.
func (a *APIService) Get(ctx context.Context, path string) (*APIResponse, error) {
	return a.Do(ctx, http.MethodGet, path, nil)
}

// Post performs a POST request with the given JSON data and returns the raw response.
func (a *APIService) Post(ctx context.Context, path string, data []byte) (*APIResponse, error) {
	return a.Do(ctx, http.MethodPost, path, data)
}

// Delete performs a DELETE request with an optional JSON body and returns the raw response.
func (a *APIService) Delete(ctx context.Context, path string, data []byte) (*APIResponse, error) {
	return a.Do(ctx, http.MethodDelete, path, data)
}

// Do performs a request with an optional JSON body and returns the raw response.
func (a *APIService) Do(ctx context.Context, method, path string, data []byte) (*APIResponse, error) {
	fullURL := a.baseURL + path

	var body io.Reader
	if data != nil {
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, fullURL, body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	if data != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := a.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	apiResp := &APIResponse{
		StatusCode: resp.StatusCode,
		Headers:    resp.Header,
		Body:       respBody,
	}

	var jsonData any
	if err := json.Unmarshal(respBody, &jsonData); err == nil {
		apiResp.IsJSON = true
		apiResp.JSONData = jsonData
	}

	return apiResp, nil
}

// call sends in as JSON (when non-nil), checks the status and decodes the body into out (when non-nil).
func (a *APIService) call(ctx context.Context, method, path string, in, out any) error {
	var data []byte
	if in != nil {
		var err error
		if data, err = json.Marshal(in); err != nil {
			return fmt.Errorf("failed to marshal request: %w", err)
		}
	}

	resp, err := a.Do(ctx, method, path, data)
	if err != nil {
		return fmt.Errorf("%w: %w", shared.ErrAPIRequest, err)
	}
	if !resp.OK() {
		return newAPIError(resp)
	}

	if out != nil {
		if err := json.Unmarshal(resp.Body, out); err != nil {
			return fmt.Errorf("%w: failed to decode response: %v", shared.ErrAPIRequest, err)
		}
	}
	return nil
}

func playlistPath(name string, suffix ...string) string {
	p := "/playlist/" + url.PathEscape(name)
	for _, s := range suffix {
		p += "/" + s
	}
	return p
}

func (a *APIService) ListPlaylists(ctx context.Context) ([]models.PlaylistSummary, error) {
	var out models.PlaylistListResponse
	if err := a.call(ctx, http.MethodGet, "/playlist", nil, &out); err != nil {
		return nil, err
	}
	return out.Playlists, nil
}

func (a *APIService) GetPlaylist(ctx context.Context, name string) (*models.PlaylistResponse, error) {
	var out models.PlaylistResponse
	if err := a.call(ctx, http.MethodGet, playlistPath(name), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (a *APIService) CreatePlaylist(ctx context.Context, name string) error {
	return a.call(ctx, http.MethodPost, "/playlist", models.CreatePlaylistRequest{Name: name}, nil)
}

func (a *APIService) DeletePlaylist(ctx context.Context, name string) error {
	return a.call(ctx, http.MethodDelete, playlistPath(name), nil, nil)
}

func (a *APIService) AddSong(ctx context.Context, name string, song models.Song) (string, error) {
	var out models.SongResponse
	if err := a.call(ctx, http.MethodPost, playlistPath(name, "add_song"), song, &out); err != nil {
		return "", err
	}
	return out.Song, nil
}

func (a *APIService) RemoveSong(ctx context.Context, name, title string) (string, error) {
	var out models.SongResponse
	if err := a.call(ctx, http.MethodDelete, playlistPath(name, "remove_song"), models.RemoveSongRequest{Title: &title}, &out); err != nil {
		return "", err
	}
	return out.Song, nil
}

func (a *APIService) SortPlaylist(ctx context.Context, name, attribute string) ([]string, error) {
	var out models.SortResponse
	if err := a.call(ctx, http.MethodPost, playlistPath(name, "sort"), models.SortRequest{Attribute: attribute}, &out); err != nil {
		return nil, err
	}
	return out.SortedSongs, nil
}

func (a *APIService) SearchPlaylist(ctx context.Context, name, title string) ([]string, error) {
	var out models.SearchResponse
	path := playlistPath(name, "search") + "?" + url.Values{"title": {title}}.Encode()
	if err := a.call(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return out.Songs, nil
}

func (a *APIService) ExportPlaylist(ctx context.Context, name, format string) ([]byte, error) {
	path := playlistPath(name, "export") + "?" + url.Values{"format": {format}}.Encode()
	resp, err := a.Get(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", shared.ErrAPIRequest, err)
	}
	if !resp.OK() {
		return nil, newAPIError(resp)
	}
	return resp.Body, nil
}

func (a *APIService) Health(ctx context.Context) (*models.HealthResponse, error) {
	var out models.HealthResponse
	if err := a.call(ctx, http.MethodGet, "/health", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// IsNotFound reports whether err means the playlist or song does not exist.
func IsNotFound(err error) bool {
	return errors.Is(err, shared.ErrPlaylistNotFound) || errors.Is(err, shared.ErrSongNotFound)
}
