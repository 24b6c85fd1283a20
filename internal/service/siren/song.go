package siren

import (
	"context"
	"os"
	"path/filepath"
	"strconv"

	"github.com/oshokin/siren-grabber/internal/client/siren"
	"github.com/oshokin/siren-grabber/internal/constants"
	"github.com/oshokin/siren-grabber/internal/errkind"
	"github.com/oshokin/siren-grabber/internal/logger"
)

// ResolveSong resolves one song and returns the path of its finished file.
// With a nil album, parentDir is the root and the album directory is derived from the song's album.
// Otherwise parentDir is the album directory and a song listed in the album
// is checked on disk before any request is made.
func (s *ServiceImpl) ResolveSong(
	ctx context.Context,
	parentDir string,
	songID uint64,
	album *siren.AlbumData,
) (string, error) {
	var albumDir, songBase string

	if album != nil {
		albumDir = parentDir

		if summary := findSongSummary(album, songID); summary != nil {
			songBase = filepath.Join(albumDir, s.entryName(ctx, "Song", summary.Name))
			if s.isSongFinished(ctx, songBase) {
				return songBase + constants.ExtensionFLAC, nil
			}
		}
	}

	songResponse, err := s.client.GetSong(ctx, songID)
	if err != nil {
		return "", err
	}

	song := songResponse.Data

	if album == nil {
		album, err = s.fetchSongAlbum(ctx, song)
		if err != nil {
			return "", err
		}

		albumDir = filepath.Join(parentDir, s.entryName(ctx, "Album", album.Name))
	}

	if songBase == "" {
		songBase = filepath.Join(albumDir, s.entryName(ctx, "Song", song.Name))
		if s.isSongFinished(ctx, songBase) {
			return songBase + constants.ExtensionFLAC, nil
		}
	}

	if err = os.MkdirAll(albumDir, constants.DefaultFolderPermissions); err != nil {
		return "", errkind.Filesystem("create album folder", err)
	}

	coverPath := filepath.Join(albumDir, constants.CoverFilename)
	if !s.idempotency.Exists(coverPath) {
		if err = s.fetchCover(ctx, album, coverPath); err != nil {
			return "", err
		}
	}

	return s.assembleSong(ctx, album, song, songBase, coverPath)
}

// assembleSong downloads the raw audio, assembles and verifies the FLAC file and removes the raw audio.
func (s *ServiceImpl) assembleSong(
	ctx context.Context,
	album *siren.AlbumData,
	song *siren.SongData,
	songBase, coverPath string,
) (string, error) {
	var (
		rawPath    = songBase + constants.ExtensionWAV
		outputPath = songBase + constants.ExtensionFLAC
	)

	fetchResult, err := s.fetcher.Fetch(ctx, song.SourceURL, rawPath)
	if err != nil {
		return "", err
	}

	s.addBytesDownloaded(fetchResult.Bytes)

	logger.Infof(ctx, "Assembling '%s'", outputPath)

	outputPath, err = s.assembler.Assemble(ctx, &AssembleRequest{
		RawAudioPath: rawPath,
		CoverPath:    coverPath,
		OutputPath:   outputPath,
		Album:        album,
		Song:         song,
	})
	if err != nil {
		return "", err
	}

	if s.cfg.VerifyOutput && s.verifier != nil {
		err = s.verifier.Verify(ctx, outputPath, &ExpectedTags{
			Title: song.Name,
			Album: album.Name,
		})
		if err != nil {
			return "", err
		}
	}

	if err = os.Remove(rawPath); err != nil && !os.IsNotExist(err) {
		return "", errkind.Filesystem("remove raw audio", err)
	}

	s.incrementSongAssembled()
	logger.Infof(ctx, "Song '%s' is ready", outputPath)

	return outputPath, nil
}

// fetchSongAlbum retrieves the album a standalone song belongs to.
func (s *ServiceImpl) fetchSongAlbum(ctx context.Context, song *siren.SongData) (*siren.AlbumData, error) {
	albumID, err := parseCID(song.AlbumCID)
	if err != nil {
		return nil, err
	}

	response, err := s.client.GetAlbumDetail(ctx, albumID)
	if err != nil {
		return nil, err
	}

	return response.Data, nil
}

func (s *ServiceImpl) isSongFinished(ctx context.Context, songBase string) bool {
	outputPath := songBase + constants.ExtensionFLAC
	if !s.idempotency.Exists(outputPath) {
		return false
	}

	logger.Infof(ctx, "Song '%s' already exists, skipping", outputPath)
	s.incrementSongSkipped()

	return true
}

func findSongSummary(album *siren.AlbumData, songID uint64) *siren.SongSummary {
	cid := strconv.FormatUint(songID, 10)

	for _, summary := range album.Songs {
		if summary.CID == cid {
			return summary
		}
	}

	return nil
}
