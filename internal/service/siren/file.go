package siren

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/schollz/progressbar/v3"
	"go.uber.org/zap"

	"github.com/oshokin/siren-grabber/internal/client/siren"
	"github.com/oshokin/siren-grabber/internal/constants"
	"github.com/oshokin/siren-grabber/internal/errkind"
	"github.com/oshokin/siren-grabber/internal/logger"
)

// FileFetcher downloads remote resources to local paths.
type FileFetcher interface {
	// Fetch downloads remoteURL to localPath unless localPath already exists.
	Fetch(ctx context.Context, remoteURL, localPath string) (*FetchResult, error)
}

// FileFetcherImpl streams downloads into a temporary sibling file and renames it into place.
type FileFetcherImpl struct {
	// client streams remote content.
	client siren.Client
	// idempotency decides whether a destination is already present.
	idempotency Idempotency
	// speedLimit is the maximum number of bytes copied per second, 0 means unlimited.
	speedLimit int64
	// showProgress enables the progress bar at info level.
	showProgress bool
}

// File options for a fresh temporary file.
const createNewFileOptions = os.O_CREATE | os.O_EXCL | os.O_WRONLY

// NewFileFetcher creates a FileFetcher.
func NewFileFetcher(
	client siren.Client,
	idempotency Idempotency,
	speedLimit int64,
	showProgress bool,
) FileFetcher {
	return &FileFetcherImpl{
		client:       client,
		idempotency:  idempotency,
		speedLimit:   speedLimit,
		showProgress: showProgress,
	}
}

// Fetch downloads remoteURL to localPath unless localPath already exists.
func (f *FileFetcherImpl) Fetch(ctx context.Context, remoteURL, localPath string) (*FetchResult, error) {
	if f.idempotency.Exists(localPath) {
		logger.Infof(ctx, "File '%s' already exists, skipping download", localPath)

		return &FetchResult{Skipped: true}, nil
	}

	download, err := f.client.DownloadFromURL(ctx, remoteURL)
	if err != nil {
		return nil, err
	}

	defer download.Body.Close() //nolint:errcheck // Error on close is not critical here.

	tempPath := partFilePath(localPath)

	file, err := os.OpenFile(filepath.Clean(tempPath), createNewFileOptions, constants.DefaultFilePermissions)
	if err != nil {
		return nil, errkind.Filesystem("create temporary file", err)
	}

	var isCompleted bool

	defer func() {
		if isCompleted {
			return
		}

		_ = file.Close()

		if removeErr := os.Remove(tempPath); removeErr != nil && !os.IsNotExist(removeErr) {
			logger.Warnf(ctx, "Failed to clean up temporary file '%s': %v", tempPath, removeErr)
		}
	}()

	bytesWritten, err := f.copy(ctx, f.progressWriter(file, download.TotalBytes, localPath), download.Body)
	if err != nil {
		return nil, err
	}

	if download.TotalBytes >= 0 && bytesWritten != download.TotalBytes {
		return nil, errkind.Transport(
			"download "+remoteURL,
			fmt.Errorf("%w: wrote %d bytes, expected %d bytes", ErrIncompleteDownload, bytesWritten, download.TotalBytes),
		)
	}

	if err = file.Close(); err != nil {
		return nil, errkind.Filesystem("close temporary file", err)
	}

	if err = os.Rename(tempPath, localPath); err != nil {
		return nil, errkind.Filesystem("rename temporary file", err)
	}

	isCompleted = true

	logger.Debugf(ctx, "Saved '%s' (%d bytes)", localPath, bytesWritten)

	return &FetchResult{
		Skipped: false,
		Bytes:   bytesWritten,
	}, nil
}

// copy moves the body into writer, throttled to speedLimit bytes per second when set.
// Read failures are transport errors, write failures are filesystem errors.
func (f *FileFetcherImpl) copy(ctx context.Context, writer io.Writer, body io.Reader) (int64, error) {
	var (
		reader       = &trackingReader{reader: body}
		bytesWritten int64
		err          error
	)

	if f.speedLimit <= 0 {
		bytesWritten, err = io.Copy(writer, reader)
	} else {
		for {
			var n int64

			n, err = io.CopyN(writer, reader, f.speedLimit)
			bytesWritten += n

			if errors.Is(err, io.EOF) {
				err = nil

				break
			}

			if err != nil {
				break
			}

			// Throttle to respect speed limit.
			select {
			case <-ctx.Done():
				err = ctx.Err()
			case <-time.After(time.Second):
			}

			if err != nil {
				break
			}
		}
	}

	switch {
	case err == nil:
		return bytesWritten, nil
	case reader.err != nil && errors.Is(err, reader.err):
		return bytesWritten, errkind.Transport("read response body", err)
	case ctx.Err() != nil:
		return bytesWritten, errkind.Transport("download", err)
	default:
		return bytesWritten, errkind.Filesystem("write file", err)
	}
}

func (f *FileFetcherImpl) progressWriter(file *os.File, totalBytes int64, localPath string) io.Writer {
	if !f.showProgress || logger.Level() > zap.InfoLevel {
		return file
	}

	bar := progressbar.DefaultBytes(totalBytes, "Downloading "+filepath.Base(localPath))

	return io.MultiWriter(file, bar)
}

// partFilePath returns a unique temporary sibling of path.
func partFilePath(path string) string {
	return path + "." + uuid.NewString() + constants.ExtensionPart
}

// trackingReader remembers the last read error so read and write failures can be told apart.
type trackingReader struct {
	reader io.Reader
	err    error
}

func (r *trackingReader) Read(p []byte) (int, error) {
	n, err := r.reader.Read(p)
	if err != nil && !errors.Is(err, io.EOF) {
		r.err = err
	}

	return n, err
}
