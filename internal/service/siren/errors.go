package siren

import "errors"

var (
	// ErrNoSelector indicates that neither --all, --album-id nor --song-id was given.
	ErrNoSelector = errors.New("one of --all, --album-id or --song-id is required")
	// ErrConflictingSelectors indicates that both an album and a song were requested.
	ErrConflictingSelectors = errors.New("--album-id and --song-id are mutually exclusive")
	// ErrUnknownScope indicates an unsupported scope kind.
	ErrUnknownScope = errors.New("unknown scope")
	// ErrInvalidCID indicates that an identifier from the catalog is not a positive integer.
	ErrInvalidCID = errors.New("invalid catalog identifier")
	// ErrIncompleteDownload indicates that fewer bytes were received than announced.
	ErrIncompleteDownload = errors.New("incomplete download")
	// ErrTranscoderFailed indicates that the transcoder exited with an error.
	ErrTranscoderFailed = errors.New("transcoder failed")
	// ErrMissingInput indicates that an input file of the assembler does not exist.
	ErrMissingInput = errors.New("input file does not exist")
	// ErrOutputExists indicates that the assembler output already exists.
	ErrOutputExists = errors.New("output file already exists")
	// ErrTagMismatch indicates that a Vorbis comment of the finished file differs from the expected value.
	ErrTagMismatch = errors.New("tag mismatch")
	// ErrMissingCover indicates that the finished file has no front cover picture.
	ErrMissingCover = errors.New("front cover is not embedded")
)
