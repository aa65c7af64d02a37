package shared

import "fmt"

var (
	// Playlist errors
	ErrPlaylistExists   = fmt.Errorf("playlist already exists")
	ErrPlaylistNotFound = fmt.Errorf("playlist not found")
	ErrInvalidName      = fmt.Errorf("invalid playlist name")
	ErrSongNotFound     = fmt.Errorf("song not found in playlist")
	ErrMissingFields    = fmt.Errorf("missing song data")
	ErrInvalidAttribute = fmt.Errorf("invalid attribute for sorting")
	ErrInvalidFormat    = fmt.Errorf("invalid export format")

	// Configuration errors
	ErrMissingConfig = fmt.Errorf("configuration not found")
	ErrInvalidConfig = fmt.Errorf("invalid configuration")

	// API and service errors
	ErrAPIRequest         = fmt.Errorf("API request failed")
	ErrServiceUnavailable = fmt.Errorf("service unavailable")
	ErrRateLimited        = fmt.Errorf("rate limit exceeded")

	// Input validation errors
	ErrInvalidInput    = fmt.Errorf("invalid input")
	ErrMissingArgument = fmt.Errorf("missing required argument")
	ErrInvalidArgument = fmt.Errorf("invalid argument")
)
