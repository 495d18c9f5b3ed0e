// Package playlist turns a reviewed shortlist into a guide playlist on the
// operator's account. Selected playlists are expanded into their videos
// before insertion, duplicates are collapsed across the whole selection,
// and every created guide is recorded in a small local history.
package playlist
