// Package server exposes the playlist registry over HTTP.
//
// # Router Infrastructure
//
// The [Router] interface defines HTTP routing with middleware support.
//
// [Middleware] wraps handlers in reverse order (last added executes first), following the standard Go pattern.
//
// The [BasicRouter] implementation uses [http.ServeMux] method patterns internally, so a known path
// requested with the wrong method gets 405 from the mux.
//
// # Middleware
//
// [New] installs, outermost first:
//   - [Recovery] : converts panics into a 500 JSON body
//   - [RequestID] : propagates or generates X-Request-ID
//   - [Instrument] : structured request logs and Prometheus metrics labelled by route pattern
//   - [RateLimiter] : per-client token buckets answering 429 (when enabled in config)
//
// # Playlist Routes
//
// [PlaylistHandler] serves the playlist API. Every error body is {"message": ...}:
//
//	POST   /playlist                     201 {message, name}     400 exists or missing name
//	GET    /playlist                     200 {playlists}
//	GET    /playlist/{name}              200 {name, songs}       404
//	DELETE /playlist/{name}              200 {message}           404
//	POST   /playlist/{name}/add_song     200 {message, song}     404, 400 missing fields
//	DELETE /playlist/{name}/remove_song  200 {message, song}     404 playlist or song
//	POST   /playlist/{name}/sort         200 {message, sorted_songs}  404, 400 attribute
//	GET    /playlist/{name}/search       200 {message, songs}    404 playlist or no match
//	GET    /playlist/{name}/export       200 document            404, 400 format
//
// A missing playlist is reported before any problem with the request body.
//
// # Handler Interface
//
// Custom handlers implement the [Handler] interface, which wraps the stdlib handler interface and adds routes,
// allowing handlers to register multiple routes to encapsulate route definitions within the implementation.
package server
