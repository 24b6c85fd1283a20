package siren

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/oshokin/siren-grabber/internal/client/siren"
	mock_siren_client "github.com/oshokin/siren-grabber/internal/client/siren/mocks"
	"github.com/oshokin/siren-grabber/internal/config"
	"github.com/oshokin/siren-grabber/internal/constants"
)

const (
	testAlbumID   = 3
	testAlbumName = "First Album"
	testCoverURL  = "https://cdn.example.com/3.jpg"
	testCoverData = "JPEG-COVER"
	testAudioData = "RIFF-WAVE-DATA"
)

// fakeAssembler writes a placeholder FLAC file and records every request.
type fakeAssembler struct {
	mu       sync.Mutex
	requests []*AssembleRequest
	err      error
}

func (a *fakeAssembler) Assemble(_ context.Context, req *AssembleRequest) (string, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.requests = append(a.requests, req)

	if a.err != nil {
		return "", a.err
	}

	if err := os.WriteFile(req.OutputPath, []byte("fLaC"), constants.DefaultFilePermissions); err != nil {
		return "", err
	}

	return req.OutputPath, nil
}

func (a *fakeAssembler) calls() []*AssembleRequest {
	a.mu.Lock()
	defer a.mu.Unlock()

	return append([]*AssembleRequest(nil), a.requests...)
}

// fakeVerifier records verified paths and fails with err when set.
type fakeVerifier struct {
	mu       sync.Mutex
	verified []string
	err      error
}

func (v *fakeVerifier) Verify(_ context.Context, path string, _ *ExpectedTags) error {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.verified = append(v.verified, path)

	return v.err
}

// testEnv bundles a service with its collaborators.
type testEnv struct {
	service   *ServiceImpl
	client    *mock_siren_client.MockClient
	assembler *fakeAssembler
	verifier  *fakeVerifier
	cfg       *config.Config
	rootDir   string
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	ctrl := gomock.NewController(t)
	client := mock_siren_client.NewMockClient(ctrl)

	cfg := config.Default()
	cfg.OutputPath = t.TempDir()
	cfg.ShowProgress = false
	require.NoError(t, config.ValidateConfig(cfg))

	var (
		assembler   = new(fakeAssembler)
		verifier    = new(fakeVerifier)
		idempotency = NewFilesystemIdempotency()
		fetcher     = NewFileFetcher(client, idempotency, 0, false)
	)

	service, ok := NewService(cfg, client, fetcher, assembler, verifier, idempotency).(*ServiceImpl)
	require.True(t, ok)

	return &testEnv{
		service:   service,
		client:    client,
		assembler: assembler,
		verifier:  verifier,
		cfg:       cfg,
		rootDir:   cfg.OutputPath,
	}
}

func (e *testEnv) albumDir() string {
	return filepath.Join(e.rootDir, testAlbumName)
}

// expectDownload serves data for url exactly once.
func (e *testEnv) expectDownload(url, data string) *gomock.Call {
	return e.client.EXPECT().
		DownloadFromURL(gomock.Any(), url).
		DoAndReturn(func(context.Context, string) (*siren.DownloadResult, error) {
			return &siren.DownloadResult{
				Body:       io.NopCloser(strings.NewReader(data)),
				TotalBytes: int64(len(data)),
			}, nil
		})
}

func (e *testEnv) expectAlbumDetail(album *siren.AlbumData) *gomock.Call {
	id, err := strconv.ParseUint(album.CID, 10, 64)
	if err != nil {
		panic(err)
	}

	return e.client.EXPECT().
		GetAlbumDetail(gomock.Any(), id).
		Return(&siren.GetAlbumDetailResponse{Data: album}, nil)
}

func (e *testEnv) expectSong(song *siren.SongData) *gomock.Call {
	id, err := strconv.ParseUint(song.CID, 10, 64)
	if err != nil {
		panic(err)
	}

	return e.client.EXPECT().
		GetSong(gomock.Any(), id).
		Return(&siren.GetSongResponse{Data: song}, nil)
}

func testAlbum() *siren.AlbumData {
	return &siren.AlbumData{
		CID:      strconv.Itoa(testAlbumID),
		Name:     testAlbumName,
		CoverURL: testCoverURL,
		Songs: []*siren.SongSummary{
			{CID: "7", Name: "Song A", Artists: []string{"A", "B"}},
			{CID: "8", Name: "Song B", Artists: []string{"C"}},
		},
	}
}

func testSong(cid, name string, artists ...string) *siren.SongData {
	return &siren.SongData{
		CID:       cid,
		Name:      name,
		AlbumCID:  strconv.Itoa(testAlbumID),
		SourceURL: "https://cdn.example.com/" + cid + ".wav",
		Artists:   artists,
	}
}

func writeFile(t *testing.T, path, data string) {
	t.Helper()

	require.NoError(t, os.MkdirAll(filepath.Dir(path), constants.DefaultFolderPermissions))
	require.NoError(t, os.WriteFile(path, []byte(data), constants.DefaultFilePermissions))
}

// leftovers lists temporary and raw files below dir.
func leftovers(t *testing.T, dir string) []string {
	t.Helper()

	var found []string

	err := filepath.WalkDir(dir, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if d.IsDir() {
			return nil
		}

		if strings.Contains(path, constants.ExtensionPart) || strings.HasSuffix(path, constants.ExtensionWAV) {
			found = append(found, path)
		}

		return nil
	})
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		require.NoError(t, err)
	}

	return found
}
