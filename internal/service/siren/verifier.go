package siren

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/go-flac/flacpicture"
	"github.com/go-flac/flacvorbis"
	"github.com/go-flac/go-flac"

	"github.com/oshokin/siren-grabber/internal/errkind"
	"github.com/oshokin/siren-grabber/internal/logger"
)

// Verifier checks a finished artifact.
type Verifier interface {
	// Verify fails when path lacks the expected tags or the front cover.
	Verify(ctx context.Context, path string, expected *ExpectedTags) error
}

// FLACVerifier parses FLAC metadata blocks.
type FLACVerifier struct{}

// NewFLACVerifier creates a Verifier for FLAC files.
func NewFLACVerifier() Verifier {
	return &FLACVerifier{}
}

// Verify fails when path lacks the expected tags or the front cover.
// A file that fails verification is removed so that the next run assembles it again.
func (v *FLACVerifier) Verify(ctx context.Context, path string, expected *ExpectedTags) error {
	err := v.verify(path, expected)
	if err == nil {
		logger.Debugf(ctx, "Verified '%s'", path)

		return nil
	}

	removeIfExists(ctx, path)

	return errkind.Transcode("verify "+filepath.Base(path), err)
}

func (v *FLACVerifier) verify(path string, expected *ExpectedTags) error {
	f, err := flac.ParseFile(filepath.Clean(path))
	if err != nil {
		return fmt.Errorf("failed to parse FLAC file: %w", err)
	}

	var (
		comments    []string
		hasPicture  bool
		pictureType flacpicture.PictureType
	)

	for _, meta := range f.Meta {
		switch meta.Type { //nolint:exhaustive // Only comments and pictures matter here.
		case flac.VorbisComment:
			block, parseErr := flacvorbis.ParseFromMetaDataBlock(*meta)
			if parseErr != nil {
				return fmt.Errorf("failed to parse Vorbis comments: %w", parseErr)
			}

			comments = append(comments, block.Comments...)
		case flac.Picture:
			picture, parseErr := flacpicture.ParseFromMetaDataBlock(*meta)
			if parseErr != nil {
				return fmt.Errorf("failed to parse picture: %w", parseErr)
			}

			if !hasPicture || picture.PictureType == flacpicture.PictureTypeFrontCover {
				pictureType = picture.PictureType
			}

			hasPicture = true
		}
	}

	for key, want := range map[string]string{"TITLE": expected.Title, "ALBUM": expected.Album} {
		got, found := commentValue(comments, key)
		if !found || got != want {
			return fmt.Errorf("%w: %s is '%s', expected '%s'", ErrTagMismatch, key, got, want)
		}
	}

	if !hasPicture || pictureType != flacpicture.PictureTypeFrontCover {
		return ErrMissingCover
	}

	return nil
}

// commentValue returns the first value of key; Vorbis comment names are case-insensitive.
func commentValue(comments []string, key string) (string, bool) {
	for _, comment := range comments {
		name, value, found := strings.Cut(comment, "=")
		if found && strings.EqualFold(name, key) {
			return value, true
		}
	}

	return "", false
}
