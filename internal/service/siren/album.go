package siren

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/oshokin/siren-grabber/internal/constants"
	"github.com/oshokin/siren-grabber/internal/errkind"
	"github.com/oshokin/siren-grabber/internal/logger"
)

// ResolveAlbum resolves one album into parentDir/<album name>.
// The cover is fetched first, then every song in album order.
func (s *ServiceImpl) ResolveAlbum(ctx context.Context, parentDir string, albumID uint64) error {
	response, err := s.client.GetAlbumDetail(ctx, albumID)
	if err != nil {
		return err
	}

	album := response.Data
	albumDir := filepath.Join(parentDir, s.entryName(ctx, "Album", album.Name))

	if err = os.MkdirAll(albumDir, constants.DefaultFolderPermissions); err != nil {
		return errkind.Filesystem("create album folder", err)
	}

	ctx = logger.WithKV(ctx, "album", album.Name)

	if err = s.fetchCover(ctx, album, filepath.Join(albumDir, constants.CoverFilename)); err != nil {
		return err
	}

	songsCount := len(album.Songs)
	logger.Infof(ctx, "Album '%s' has %d songs", album.Name, songsCount)

	for index, summary := range album.Songs {
		if err = ctx.Err(); err != nil {
			return err
		}

		songID, parseErr := parseCID(summary.CID)
		if parseErr != nil {
			return parseErr
		}

		logger.Infof(ctx, "Song %d / %d: %s", index+1, songsCount, summary.Name)

		if _, err = s.ResolveSong(ctx, albumDir, songID, album); err != nil {
			return fmt.Errorf("song %s '%s': %w", summary.CID, summary.Name, err)
		}
	}

	s.incrementAlbumProcessed()

	return nil
}
