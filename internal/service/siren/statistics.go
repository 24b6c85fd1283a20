package siren

import (
	"context"
	"fmt"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/oshokin/siren-grabber/internal/logger"
)

const summarySeparator = "═══════════════════════════════════════════════════════════════"

// formatDuration formats a duration into a human-readable string.
func formatDuration(d time.Duration) string {
	if d < time.Second {
		return fmt.Sprintf("%dms", d.Milliseconds())
	}

	hours := int(d.Hours())
	minutes := int(d.Minutes()) % 60
	seconds := int(d.Seconds()) % 60

	if hours > 0 {
		return fmt.Sprintf("%dh %dm %ds", hours, minutes, seconds)
	}

	if minutes > 0 {
		return fmt.Sprintf("%dm %ds", minutes, seconds)
	}

	return fmt.Sprintf("%ds", seconds)
}

func (s *ServiceImpl) incrementAlbumProcessed() {
	s.statsMutex.Lock()
	defer s.statsMutex.Unlock()

	s.stats.AlbumsProcessed++
}

func (s *ServiceImpl) incrementSongAssembled() {
	s.statsMutex.Lock()
	defer s.statsMutex.Unlock()

	s.stats.SongsAssembled++
}

func (s *ServiceImpl) incrementSongSkipped() {
	s.statsMutex.Lock()
	defer s.statsMutex.Unlock()

	s.stats.SongsSkipped++
}

func (s *ServiceImpl) incrementCoverDownloaded(bytes int64) {
	s.statsMutex.Lock()
	defer s.statsMutex.Unlock()

	s.stats.CoversDownloaded++
	s.stats.BytesDownloaded += bytes
}

func (s *ServiceImpl) incrementCoverSkipped() {
	s.statsMutex.Lock()
	defer s.statsMutex.Unlock()

	s.stats.CoversSkipped++
}

func (s *ServiceImpl) addBytesDownloaded(bytes int64) {
	s.statsMutex.Lock()
	defer s.statsMutex.Unlock()

	s.stats.BytesDownloaded += bytes
}

func (s *ServiceImpl) recordError(err error) {
	s.statsMutex.Lock()
	defer s.statsMutex.Unlock()

	s.stats.Errors = append(s.stats.Errors, err)
}

// Statistics returns a snapshot of the run counters.
func (s *ServiceImpl) Statistics() RunStatistics {
	s.statsMutex.Lock()
	defer s.statsMutex.Unlock()

	snapshot := *s.stats
	snapshot.Errors = append([]error(nil), s.stats.Errors...)

	return snapshot
}

// PrintRunSummary logs what the run did.
func (s *ServiceImpl) PrintRunSummary(ctx context.Context) {
	stats := s.Statistics()

	if stats.SongsAssembled == 0 && stats.SongsSkipped == 0 && stats.CoversDownloaded == 0 && len(stats.Errors) == 0 {
		return
	}

	wasInterrupted := ctx.Err() != nil

	logger.Info(ctx, "")
	logger.Info(ctx, summarySeparator)

	if wasInterrupted {
		logger.Info(ctx, "                 RUN SUMMARY (Interrupted)")
	} else {
		logger.Info(ctx, "                        RUN SUMMARY")
	}

	logger.Info(ctx, summarySeparator)
	logger.Infof(ctx, "Albums:           %d processed", stats.AlbumsProcessed)
	logger.Infof(ctx, "Songs:            %d total", stats.SongsAssembled+stats.SongsSkipped)
	logger.Infof(ctx, "  Assembled:      %d", stats.SongsAssembled)
	logger.Infof(ctx, "  Already Exist:  %d", stats.SongsSkipped)

	if totalCovers := stats.CoversDownloaded + stats.CoversSkipped; totalCovers > 0 {
		logger.Infof(ctx, "Covers:           %d total", totalCovers)
		logger.Infof(ctx, "  Downloaded:     %d", stats.CoversDownloaded)
		logger.Infof(ctx, "  Skipped:        %d", stats.CoversSkipped)
	}

	if stats.BytesDownloaded > 0 {
		//nolint:gosec // BytesDownloaded is always positive, no overflow risk.
		logger.Infof(ctx, "Data Downloaded:  %s", humanize.Bytes(uint64(stats.BytesDownloaded)))
	}

	if !stats.StartTime.IsZero() && !stats.EndTime.IsZero() {
		duration := stats.EndTime.Sub(stats.StartTime)
		logger.Infof(ctx, "Duration:         %s", formatDuration(duration))

		if stats.BytesDownloaded > 0 && duration > 100*time.Millisecond {
			bytesPerSecond := float64(stats.BytesDownloaded) / duration.Seconds()
			logger.Infof(ctx, "Average Speed:    %s/s", humanize.Bytes(uint64(bytesPerSecond)))
		}
	}

	if len(stats.Errors) > 0 {
		logger.Infof(ctx, "Failed Albums:    %d", len(stats.Errors))

		for _, err := range stats.Errors {
			logger.Infof(ctx, "  - %v", err)
		}
	}

	logger.Info(ctx, summarySeparator)
}
