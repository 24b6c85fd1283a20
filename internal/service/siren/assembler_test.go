package siren

import (
	"bufio"
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/oshokin/siren-grabber/internal/errkind"
	"github.com/oshokin/siren-grabber/internal/logger"
)

const (
	// fakeFFmpegOK logs like ffmpeg and writes a stub file to the last argument.
	fakeFFmpegOK = `#!/bin/sh
echo "ffmpeg version test" >&2
printf 'size=1kB\rsize=2kB\r' >&2
echo "done"
for last; do :; done
printf 'fLaC' > "$last"
`
	// fakeFFmpegFail leaves a partial output behind and fails.
	fakeFFmpegFail = `#!/bin/sh
for last; do :; done
printf 'fL' > "$last"
echo "Invalid data found when processing input" >&2
exit 1
`
)

func writeScript(t *testing.T, body string) string {
	t.Helper()

	if runtime.GOOS == "windows" {
		t.Skip("shell scripts are not executable on windows")
	}

	path := filepath.Join(t.TempDir(), "ffmpeg")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o755)) //nolint:gosec // Test executable.

	return path
}

func newAssembleRequest(t *testing.T) *AssembleRequest {
	t.Helper()

	dir := t.TempDir()
	req := &AssembleRequest{
		RawAudioPath: filepath.Join(dir, "Song A.wav"),
		CoverPath:    filepath.Join(dir, "cover.jpg"),
		OutputPath:   filepath.Join(dir, "Song A.flac"),
		Album:        testAlbum(),
		Song:         testSong("7", "Song A", "A", "B"),
	}

	writeFile(t, req.RawAudioPath, testAudioData)
	writeFile(t, req.CoverPath, testCoverData)

	return req
}

// indexOfSequence returns the position of seq inside args or -1.
func indexOfSequence(args []string, seq ...string) int {
	for i := 0; i+len(seq) <= len(args); i++ {
		matched := true

		for j := range seq {
			if args[i+j] != seq[j] {
				matched = false

				break
			}
		}

		if matched {
			return i
		}
	}

	return -1
}

func TestBuildFFmpegArgs(t *testing.T) {
	t.Parallel()

	req := &AssembleRequest{
		RawAudioPath: "/music/First Album/Song A.wav",
		CoverPath:    "/music/First Album/cover.jpg",
		OutputPath:   "/music/First Album/Song A.flac",
		Album:        testAlbum(),
		Song:         testSong("7", "Song A", "A", "B"),
	}

	args := BuildFFmpegArgs(req, req.OutputPath)

	assert.Equal(t, []string{"-hide_banner", "-nostdin", "-n"}, args[:3])
	assert.Equal(t, req.OutputPath, args[len(args)-1])

	audioInput := indexOfSequence(args, "-i", req.RawAudioPath)
	coverInput := indexOfSequence(args, "-i", req.CoverPath)

	require.GreaterOrEqual(t, audioInput, 0)
	require.GreaterOrEqual(t, coverInput, 0)
	assert.Less(t, audioInput, coverInput)

	for _, pair := range [][]string{
		{"-map", "0"},
		{"-map", "1"},
		{"-c:a", "flac"},
		{"-c:v", "copy"},
		{"-disposition:v", "attached_pic"},
		{"-metadata:s:v", "comment=Cover (front)"},
		{"-metadata", "title=Song A"},
		{"-metadata", "album=First Album"},
		{"-metadata", "lyrics="},
		{"-metadata", "artist=A,B"},
		{"-metadata", "comment=albumCid 3, cid 7"},
		{"-f", "flac"},
	} {
		assert.GreaterOrEqual(t, indexOfSequence(args, pair...), 0, "missing %v in %v", pair, args)
	}
}

func TestMetadataArgsWithoutArtists(t *testing.T) {
	t.Parallel()

	req := &AssembleRequest{Album: testAlbum(), Song: testSong("8", "Song B")}

	assert.Contains(t, MetadataArgs(req), "artist=")
	assert.Contains(t, MetadataArgs(req), "comment=albumCid 3, cid 8")
}

func TestAssemble(t *testing.T) {
	t.Parallel()

	assembler := NewFFmpegAssembler(writeScript(t, fakeFFmpegOK))
	req := newAssembleRequest(t)

	path, err := assembler.Assemble(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, req.OutputPath, path)

	data, err := os.ReadFile(req.OutputPath)
	require.NoError(t, err)
	assert.Equal(t, "fLaC", string(data))

	// The caller removes the raw audio, the assembler keeps its inputs.
	assert.FileExists(t, req.RawAudioPath)
	assert.Empty(t, leftoversByPattern(t, filepath.Dir(req.OutputPath), "*.part.flac"))
}

func TestAssembleEchoesTranscoderOutputAtInfoLevel(t *testing.T) {
	t.Parallel()

	core, logs := observer.New(zapcore.InfoLevel)
	ctx := logger.ToContext(context.Background(), zap.New(core).Sugar())

	assembler := NewFFmpegAssembler(writeScript(t, fakeFFmpegOK))

	_, err := assembler.Assemble(ctx, newAssembleRequest(t))
	require.NoError(t, err)

	expected := map[string]string{
		"ffmpeg version test": "stderr",
		"size=1kB":            "stderr",
		"size=2kB":            "stderr",
		"done":                "stdout",
	}

	for line, stream := range expected {
		entries := logs.FilterMessage(line).All()
		require.Len(t, entries, 1, "line %q", line)
		assert.Equal(t, zapcore.InfoLevel, entries[0].Level)
		assert.Equal(t, stream, entries[0].ContextMap()["stream"])
	}
}

func TestAssembleFailureRemovesPartialOutput(t *testing.T) {
	t.Parallel()

	assembler := NewFFmpegAssembler(writeScript(t, fakeFFmpegFail))
	req := newAssembleRequest(t)

	_, err := assembler.Assemble(context.Background(), req)
	require.ErrorIs(t, err, ErrTranscoderFailed)
	assert.Equal(t, errkind.KindTranscode, errkind.KindOf(err))
	assert.Contains(t, err.Error(), "Invalid data found when processing input")

	assert.NoFileExists(t, req.OutputPath)
	assert.Empty(t, leftoversByPattern(t, filepath.Dir(req.OutputPath), "*.part.flac"))
}

func TestAssembleSpawnFailure(t *testing.T) {
	t.Parallel()

	assembler := NewFFmpegAssembler(filepath.Join(t.TempDir(), "no-such-ffmpeg"))

	_, err := assembler.Assemble(context.Background(), newAssembleRequest(t))
	require.Error(t, err)
	assert.Equal(t, errkind.KindTranscode, errkind.KindOf(err))
}

func TestAssemblePreconditions(t *testing.T) {
	t.Parallel()

	assembler := NewFFmpegAssembler("ffmpeg")

	t.Run("missing raw audio", func(t *testing.T) {
		t.Parallel()

		req := newAssembleRequest(t)
		require.NoError(t, os.Remove(req.RawAudioPath))

		_, err := assembler.Assemble(context.Background(), req)
		require.ErrorIs(t, err, ErrMissingInput)
	})

	t.Run("missing cover", func(t *testing.T) {
		t.Parallel()

		req := newAssembleRequest(t)
		require.NoError(t, os.Remove(req.CoverPath))

		_, err := assembler.Assemble(context.Background(), req)
		require.ErrorIs(t, err, ErrMissingInput)
	})

	t.Run("existing output", func(t *testing.T) {
		t.Parallel()

		req := newAssembleRequest(t)
		writeFile(t, req.OutputPath, "fLaC")

		_, err := assembler.Assemble(context.Background(), req)
		require.ErrorIs(t, err, ErrOutputExists)
	})
}

func TestScanLinesOrCarriageReturns(t *testing.T) {
	t.Parallel()

	scanner := bufio.NewScanner(strings.NewReader("first\rsecond\nthird\r\nlast"))
	scanner.Split(scanLinesOrCarriageReturns)

	var lines []string
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}

	require.NoError(t, scanner.Err())
	assert.Equal(t, []string{"first", "second", "third", "", "last"}, lines)
}

func TestDrainLinesReadsPastOverlongLine(t *testing.T) {
	t.Parallel()

	reader, writer := io.Pipe()

	go func() {
		_, err := writer.Write(bytes.Repeat([]byte("x"), maxTranscoderLineLength+1))
		if err == nil {
			_, err = io.WriteString(writer, "\nafter\n")
		}

		writer.CloseWithError(err)
	}()

	done := make(chan error, 1)

	go func() {
		done <- drainLines(context.Background(), reader, "stderr", newLineTail(tailLinesCount))
	}()

	select {
	case err := <-done:
		require.ErrorIs(t, err, bufio.ErrTooLong)
	case <-time.After(10 * time.Second):
		t.Fatal("drainLines stopped reading the pipe")
	}
}

func TestLineTail(t *testing.T) {
	t.Parallel()

	tail := newLineTail(2)
	tail.Add("one")
	tail.Add("two")
	tail.Add("three")

	assert.Equal(t, "two\nthree", tail.String())
}

func leftoversByPattern(t *testing.T, dir, pattern string) []string {
	t.Helper()

	matches, err := filepath.Glob(filepath.Join(dir, pattern))
	require.NoError(t, err)

	return matches
}
