package siren

//go:generate $MOCKGEN -source=service.go -destination=mocks/service_mock.go

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/oshokin/siren-grabber/internal/client/siren"
	"github.com/oshokin/siren-grabber/internal/config"
	"github.com/oshokin/siren-grabber/internal/constants"
	"github.com/oshokin/siren-grabber/internal/errkind"
	"github.com/oshokin/siren-grabber/internal/logger"
	"github.com/oshokin/siren-grabber/internal/utils"
)

// Service resolves catalog entries into finished files on disk.
type Service interface {
	// Resolve dispatches the scope to the matching resolver under the configured output path.
	Resolve(ctx context.Context, scope Scope) error
	// ResolveAll resolves every album of the catalog in catalog order.
	ResolveAll(ctx context.Context, rootDir string) error
	// ResolveAlbum resolves one album into parentDir/<album name>.
	ResolveAlbum(ctx context.Context, parentDir string, albumID uint64) error
	// ResolveSong resolves one song and returns the path of its finished file.
	// With a nil album, parentDir is the root and the album directory is derived from the song's album.
	// Otherwise parentDir is the album directory.
	ResolveSong(ctx context.Context, parentDir string, songID uint64, album *siren.AlbumData) (string, error)
	// PrintRunSummary logs what the run did.
	PrintRunSummary(ctx context.Context)
	// Statistics returns a snapshot of the run counters.
	Statistics() RunStatistics
}

// ServiceImpl walks the catalog sequentially, one album and one song at a time.
type ServiceImpl struct {
	// cfg contains the application configuration.
	cfg *config.Config
	// client is the catalog API client.
	client siren.Client
	// fetcher downloads covers and raw audio.
	fetcher FileFetcher
	// assembler produces FLAC files.
	assembler Assembler
	// verifier checks finished FLAC files.
	verifier Verifier
	// idempotency decides whether an artifact is already in place.
	idempotency Idempotency
	// stats tracks statistics for the current run.
	stats *RunStatistics
	// statsMutex protects access to statistics.
	statsMutex *sync.Mutex
}

// NewService creates a resolution service with dependency-injected components.
func NewService(
	cfg *config.Config,
	client siren.Client,
	fetcher FileFetcher,
	assembler Assembler,
	verifier Verifier,
	idempotency Idempotency,
) Service {
	return &ServiceImpl{
		cfg:         cfg,
		client:      client,
		fetcher:     fetcher,
		assembler:   assembler,
		verifier:    verifier,
		idempotency: idempotency,
		stats:       new(RunStatistics),
		statsMutex:  new(sync.Mutex),
	}
}

// Resolve dispatches the scope to the matching resolver under the configured output path.
func (s *ServiceImpl) Resolve(ctx context.Context, scope Scope) error {
	s.statsMutex.Lock()
	s.stats.StartTime = time.Now()
	s.statsMutex.Unlock()

	defer func() {
		s.statsMutex.Lock()
		s.stats.EndTime = time.Now()
		s.statsMutex.Unlock()
	}()

	rootDir := s.cfg.OutputPath
	if err := os.MkdirAll(rootDir, constants.DefaultFolderPermissions); err != nil {
		return errkind.Filesystem("create output path", err)
	}

	logger.Infof(ctx, "Resolving %s into '%s'", scope, rootDir)

	switch scope.Kind {
	case ScopeAll:
		return s.ResolveAll(ctx, rootDir)
	case ScopeAlbum:
		return s.ResolveAlbum(ctx, rootDir, scope.AlbumID)
	case ScopeSong:
		_, err := s.ResolveSong(ctx, rootDir, scope.SongID, nil)

		return err
	default:
		return errkind.Usage("resolve", fmt.Errorf("%w: %d", ErrUnknownScope, scope.Kind))
	}
}

// ResolveAll resolves every album of the catalog in catalog order.
// A failing album stops the run unless continue_on_error is set,
// in which case all failures are joined into the returned error.
func (s *ServiceImpl) ResolveAll(ctx context.Context, rootDir string) error {
	catalog, err := s.client.GetAlbums(ctx)
	if err != nil {
		return err
	}

	albumsCount := len(catalog.Data)
	logger.Infof(ctx, "Catalog contains %d albums", albumsCount)

	var errs []error

	for index, summary := range catalog.Data {
		if ctx.Err() != nil {
			return errors.Join(append(errs, ctx.Err())...)
		}

		logger.Infof(ctx, "Album %d / %d: %s", index+1, albumsCount, summary.Name)

		albumID, parseErr := parseCID(summary.CID)
		if parseErr == nil {
			err = s.ResolveAlbum(ctx, rootDir, albumID)
		} else {
			err = parseErr
		}

		if err == nil {
			continue
		}

		err = fmt.Errorf("album %s '%s': %w", summary.CID, summary.Name, err)
		if !s.cfg.ContinueOnError || ctx.Err() != nil {
			return err
		}

		logger.Errorf(ctx, "Skipping failed album: %v", err)
		s.recordError(err)

		errs = append(errs, err)
	}

	return errors.Join(errs...)
}

// entryName turns a display name into a file or folder name.
func (s *ServiceImpl) entryName(ctx context.Context, kind, name string) string {
	sanitized := utils.SanitizeFilename(name)

	truncated, isTruncated := utils.TruncateName(sanitized, s.cfg.MaxFolderNameLength)
	if isTruncated {
		logger.Infof(ctx, "%s name '%s' was truncated to %d characters", kind, name, s.cfg.MaxFolderNameLength)
	}

	return truncated
}

// fetchCover downloads the album cover into albumDir.
func (s *ServiceImpl) fetchCover(ctx context.Context, album *siren.AlbumData, coverPath string) error {
	result, err := s.fetcher.Fetch(ctx, album.CoverURL, coverPath)
	if err != nil {
		return fmt.Errorf("failed to fetch cover of album '%s': %w", album.Name, err)
	}

	if result.Skipped {
		s.incrementCoverSkipped()
	} else {
		s.incrementCoverDownloaded(result.Bytes)
	}

	return nil
}
