package siren

import (
	"time"

	"github.com/oshokin/siren-grabber/internal/client/siren"
)

// ScopeKind represents what a run should resolve.
type ScopeKind uint8

const (
	// ScopeAll resolves the whole catalog.
	ScopeAll ScopeKind = iota + 1
	// ScopeAlbum resolves a single album.
	ScopeAlbum
	// ScopeSong resolves a single song.
	ScopeSong
)

// Scope is the resolved selection of one run.
type Scope struct {
	// Kind is the selected mode.
	Kind ScopeKind
	// AlbumID is set for ScopeAlbum.
	AlbumID uint64
	// SongID is set for ScopeSong.
	SongID uint64
}

// FetchResult describes the outcome of a file fetch.
type FetchResult struct {
	// Skipped is true when the destination already existed and nothing was downloaded.
	Skipped bool
	// Bytes is the number of bytes written.
	Bytes int64
}

// AssembleRequest carries everything the assembler needs to produce one song.
type AssembleRequest struct {
	// RawAudioPath is the downloaded WAV file.
	RawAudioPath string
	// CoverPath is the album cover image.
	CoverPath string
	// OutputPath is the FLAC file to create.
	OutputPath string
	// Album is the album the song belongs to.
	Album *siren.AlbumData
	// Song is the song being assembled.
	Song *siren.SongData
}

// ExpectedTags holds the Vorbis comments a finished file must carry.
type ExpectedTags struct {
	// Title is the expected TITLE comment.
	Title string
	// Album is the expected ALBUM comment.
	Album string
}

// RunStatistics tracks what a run did.
type RunStatistics struct {
	// AlbumsProcessed is the number of albums walked.
	AlbumsProcessed int64
	// SongsAssembled is the number of FLAC files produced.
	SongsAssembled int64
	// SongsSkipped is the number of songs whose FLAC file already existed.
	SongsSkipped int64
	// CoversDownloaded is the number of album covers fetched.
	CoversDownloaded int64
	// CoversSkipped is the number of album covers that already existed.
	CoversSkipped int64
	// BytesDownloaded is the total size of all fetched files.
	BytesDownloaded int64
	// Errors lists the failures recorded while continuing past them.
	Errors []error
	// StartTime is when the run started.
	StartTime time.Time
	// EndTime is when the run finished.
	EndTime time.Time
}
