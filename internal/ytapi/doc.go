// Package ytapi provides the YouTube Data API v3 client used for candidate
// discovery and playlist assembly.
//
// The Client speaks the REST surface directly (search, playlistItems,
// playlists, videos) and normalizes raw API items into tagged Candidate
// values. The Provider interface captures the operations the search engine
// and playlist builder depend on so tests can substitute stubs.
//
// Pagination helpers follow nextPageToken cursors to exhaustion, one page at
// a time. A single page failure aborts the whole fetch with no partial
// results; callers that want partial-success semantics must not use these
// helpers.
package ytapi
