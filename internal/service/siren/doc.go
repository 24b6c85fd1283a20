// Package siren turns Monster Siren catalog entries into tagged FLAC files on disk.
//
// The orchestrator walks the catalog, an album or a single song, downloads raw WAV audio and album covers
// through an idempotent file fetcher and hands them to an ffmpeg-based assembler that embeds the cover
// and writes the Vorbis comments. Finished files are checked by a verifier before the raw audio is removed.
// The layout on disk is <root>/<album name>/<song name>.flac with one cover.jpg per album directory.
// Existing files are never fetched or assembled again.
package siren
