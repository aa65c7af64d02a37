package models

// Request and response bodies of the playlist HTTP API. Songs inside
// responses are rendered with [Song.String].

type CreatePlaylistRequest struct {
	Name string `json:"name"`
}

// RemoveSongRequest carries a nullable title so an absent field can be told
// apart from an empty one.
type RemoveSongRequest struct {
	Title *string `json:"title"`
}

type SortRequest struct {
	Attribute string `json:"attribute"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type CreatePlaylistResponse struct {
	Message string `json:"message"`
	Name    string `json:"name"`
}

type PlaylistResponse struct {
	Name  string   `json:"name"`
	Songs []string `json:"songs"`
}

type PlaylistListResponse struct {
	Playlists []PlaylistSummary `json:"playlists"`
}

type SongResponse struct {
	Message string `json:"message"`
	Song    string `json:"song"`
}

type SortResponse struct {
	Message     string   `json:"message"`
	SortedSongs []string `json:"sorted_songs"`
}

type SearchResponse struct {
	Message string   `json:"message"`
	Songs   []string `json:"songs"`
}

type HealthResponse struct {
	Status    string `json:"status"`
	Playlists int    `json:"playlists"`
}
