package siren

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"sync"

	"github.com/google/uuid"
	ffmpeg "github.com/u2takey/ffmpeg-go"
	"golang.org/x/sync/errgroup"

	"github.com/oshokin/siren-grabber/internal/constants"
	"github.com/oshokin/siren-grabber/internal/errkind"
	"github.com/oshokin/siren-grabber/internal/logger"
)

// Assembler combines raw audio, a cover image and metadata into a finished FLAC file.
type Assembler interface {
	// Assemble produces req.OutputPath and returns it.
	Assemble(ctx context.Context, req *AssembleRequest) (string, error)
}

// FFmpegAssembler runs ffmpeg as a subprocess.
type FFmpegAssembler struct {
	// ffmpegPath is the executable name or path.
	ffmpegPath string
}

const (
	// coverComment is the comment ffmpeg stores on the attached picture stream.
	// It marks the picture as the front cover.
	coverComment = "Cover (front)"
	// tailLinesCount is the number of trailing transcoder log lines kept for error reports.
	tailLinesCount = 20
	// maxTranscoderLineLength caps a single transcoder log line.
	maxTranscoderLineLength = 1024 * 1024
)

// NewFFmpegAssembler creates an assembler running the given ffmpeg executable.
func NewFFmpegAssembler(ffmpegPath string) Assembler {
	return &FFmpegAssembler{ffmpegPath: ffmpegPath}
}

// Assemble produces req.OutputPath and returns it.
// The transcoder writes into a temporary sibling that is renamed into place on success,
// so an interrupted run never leaves a finished-looking file behind.
func (a *FFmpegAssembler) Assemble(ctx context.Context, req *AssembleRequest) (string, error) {
	const op = "assemble"

	for _, input := range []string{req.RawAudioPath, req.CoverPath} {
		if _, err := os.Stat(input); err != nil {
			return "", errkind.Transcode(op, fmt.Errorf("%w: %s", ErrMissingInput, input))
		}
	}

	if _, err := os.Stat(req.OutputPath); err == nil {
		return "", errkind.Transcode(op, fmt.Errorf("%w: %s", ErrOutputExists, req.OutputPath))
	}

	tempPath := strings.TrimSuffix(req.OutputPath, constants.ExtensionFLAC) +
		"." + uuid.NewString() + constants.ExtensionPart + constants.ExtensionFLAC

	args := BuildFFmpegArgs(req, tempPath)
	logger.Debugf(ctx, "Running %s %s", a.ffmpegPath, strings.Join(args, " "))

	if err := a.run(ctx, args); err != nil {
		removeIfExists(ctx, tempPath)

		return "", errkind.Transcode(op, err)
	}

	if err := os.Rename(tempPath, req.OutputPath); err != nil {
		removeIfExists(ctx, tempPath)

		return "", errkind.Filesystem("rename assembled file", err)
	}

	return req.OutputPath, nil
}

// BuildFFmpegArgs composes the transcoder arguments that mux the raw audio and the cover into outputPath.
func BuildFFmpegArgs(req *AssembleRequest, outputPath string) []string {
	audio := ffmpeg.Input(req.RawAudioPath)
	cover := ffmpeg.Input(req.CoverPath)

	stream := ffmpeg.Output([]*ffmpeg.Stream{audio, cover}, outputPath, ffmpeg.KwArgs{
		"c:a":           "flac",
		"c:v":           "copy",
		"disposition:v": "attached_pic",
		"metadata:s:v":  "comment=" + coverComment,
		"metadata":      MetadataArgs(req),
		"f":             "flac",
	})

	return append([]string{"-hide_banner", "-nostdin", "-n"}, stream.GetArgs()...)
}

// MetadataArgs returns the key=value pairs written as Vorbis comments.
func MetadataArgs(req *AssembleRequest) []string {
	return []string{
		"title=" + req.Song.Name,
		"album=" + req.Album.Name,
		"lyrics=" + req.Song.Lyrics(),
		"artist=" + strings.Join(req.Song.Artists, ","),
		fmt.Sprintf("comment=albumCid %s, cid %s", req.Album.CID, req.Song.CID),
	}
}

// run spawns the transcoder and drains both output pipes before waiting for it.
func (a *FFmpegAssembler) run(ctx context.Context, args []string) error {
	//nolint:gosec // The executable comes from the user's own configuration.
	cmd := exec.CommandContext(ctx, a.ffmpegPath, args...)

	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return fmt.Errorf("failed to open stdout pipe: %w", err)
	}

	stderr, err := cmd.StderrPipe()
	if err != nil {
		return fmt.Errorf("failed to open stderr pipe: %w", err)
	}

	if err = cmd.Start(); err != nil {
		return fmt.Errorf("failed to start %s: %w", a.ffmpegPath, err)
	}

	tail := newLineTail(tailLinesCount)

	var g errgroup.Group

	g.Go(func() error { return drainLines(ctx, stdout, "stdout", tail) })
	g.Go(func() error { return drainLines(ctx, stderr, "stderr", tail) })

	drainErr := g.Wait()
	waitErr := cmd.Wait()

	if waitErr != nil {
		if lines := tail.String(); lines != "" {
			return fmt.Errorf("%w: %w\n%s", ErrTranscoderFailed, waitErr, lines)
		}

		return fmt.Errorf("%w: %w", ErrTranscoderFailed, waitErr)
	}

	if drainErr != nil {
		return fmt.Errorf("failed to read transcoder output: %w", drainErr)
	}

	return nil
}

// drainLines echoes every line of r to the console until EOF.
// r is read to the end even after a scan error, so the transcoder never blocks on a full pipe.
func drainLines(ctx context.Context, r io.Reader, stream string, tail *lineTail) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxTranscoderLineLength)
	scanner.Split(scanLinesOrCarriageReturns)

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		tail.Add(line)
		logger.InfoKV(ctx, line, "stream", stream)
	}

	scanErr := scanner.Err()
	if _, err := io.Copy(io.Discard, r); err != nil && scanErr == nil {
		scanErr = err
	}

	return scanErr
}

// scanLinesOrCarriageReturns splits on '\n' or '\r', since ffmpeg redraws its progress line with '\r'.
func scanLinesOrCarriageReturns(data []byte, atEOF bool) (int, []byte, error) {
	if atEOF && len(data) == 0 {
		return 0, nil, nil
	}

	if i := bytes.IndexAny(data, "\r\n"); i >= 0 {
		return i + 1, data[:i], nil
	}

	if atEOF {
		return len(data), data, nil
	}

	return 0, nil, nil
}

// lineTail keeps the last lines written by both pipes.
type lineTail struct {
	mu    sync.Mutex
	lines []string
	limit int
}

func newLineTail(limit int) *lineTail {
	return &lineTail{
		lines: make([]string, 0, limit),
		limit: limit,
	}
}

func (t *lineTail) Add(line string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if len(t.lines) == t.limit {
		t.lines = append(t.lines[:0], t.lines[1:]...)
	}

	t.lines = append(t.lines, line)
}

func (t *lineTail) String() string {
	t.mu.Lock()
	defer t.mu.Unlock()

	return strings.Join(t.lines, "\n")
}

func removeIfExists(ctx context.Context, path string) {
	if err := os.Remove(filepath.Clean(path)); err != nil && !os.IsNotExist(err) {
		logger.Warnf(ctx, "Failed to remove '%s': %v", path, err)
	}
}
