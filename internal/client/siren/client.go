package siren

//go:generate $MOCKGEN -source=client.go -destination=mocks/client_mock.go

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/oshokin/siren-grabber/internal/config"
	"github.com/oshokin/siren-grabber/internal/errkind"
	"github.com/oshokin/siren-grabber/internal/logger"
	http_transport "github.com/oshokin/siren-grabber/internal/transport/http"
	"github.com/oshokin/siren-grabber/internal/utils"
	"github.com/oshokin/siren-grabber/internal/version"
)

// Client defines the interface for interacting with the Monster Siren API.
type Client interface {
	// DownloadFromURL streams content from the specified URL.
	DownloadFromURL(ctx context.Context, url string) (*DownloadResult, error)
	// GetAlbums retrieves the whole album catalog.
	GetAlbums(ctx context.Context) (*GetAlbumsResponse, error)
	// GetAlbumDetail retrieves an album with its song list.
	GetAlbumDetail(ctx context.Context, albumID uint64) (*GetAlbumDetailResponse, error)
	// GetSong retrieves a song with its download URL.
	GetSong(ctx context.Context, songID uint64) (*GetSongResponse, error)
}

// ClientImpl implements the Client interface for interacting with the Monster Siren API.
type ClientImpl struct {
	// baseURL is the base URL for API requests.
	baseURL string
	// httpClient is the HTTP client for catalog requests, bounded by the request timeout.
	httpClient *http.Client
	// downloadClient streams files; it has no overall timeout, so a throttled body is bounded
	// only by the context and by the time to the response headers.
	downloadClient *http.Client
	// strictResponseCode makes a non-zero envelope code fail the call.
	strictResponseCode bool
}

// NewClient creates and returns a new instance of ClientImpl.
func NewClient(cfg *config.Config) (Client, error) {
	baseURL, err := url.Parse(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid base URL: %w", err)
	}

	timeout := cfg.ParsedRequestTimeout
	if timeout <= 0 {
		timeout = http_transport.DefaultTimeout
	}

	userAgentProvider := utils.NewStaticUserAgentProvider(cfg.UserAgent, productName, version.Short())

	httpClient := &http.Client{
		Transport: http_transport.NewUserAgentInjector(
			http_transport.NewLogTransport(http.DefaultTransport, 0),
			userAgentProvider),
		Timeout: timeout,
	}

	downloadTransport := http.DefaultTransport.(*http.Transport).Clone() //nolint:forcetypeassert // Always *http.Transport.
	downloadTransport.ResponseHeaderTimeout = timeout

	client := NewClientWithHTTPClient(baseURL.String(), httpClient, cfg.StrictResponseCode)
	client.downloadClient = &http.Client{
		Transport: http_transport.NewUserAgentInjector(
			http_transport.NewLogTransport(downloadTransport, 0),
			userAgentProvider),
	}

	return client, nil
}

// NewClientWithHTTPClient creates a client on top of an existing HTTP client.
func NewClientWithHTTPClient(baseURL string, httpClient *http.Client, strictResponseCode bool) *ClientImpl {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	return &ClientImpl{
		baseURL:            baseURL,
		httpClient:         httpClient,
		downloadClient:     httpClient,
		strictResponseCode: strictResponseCode,
	}
}

// DownloadFromURL streams content from the specified URL.
func (c *ClientImpl) DownloadFromURL(ctx context.Context, url string) (*DownloadResult, error) {
	const op = "download"

	request, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
	if err != nil {
		return nil, errkind.Transport(op, err)
	}

	response, err := c.downloadClient.Do(request)
	if err != nil {
		return nil, errkind.Transport(op, err)
	}

	if response.StatusCode != http.StatusOK {
		response.Body.Close() //nolint:gosec // Error on close is not critical here.

		return nil, errkind.Transport(op, fmt.Errorf("%w: %d", ErrUnexpectedHTTPStatus, response.StatusCode))
	}

	return &DownloadResult{
		Body:       response.Body,
		TotalBytes: response.ContentLength,
	}, nil
}

// GetAlbums retrieves the whole album catalog.
func (c *ClientImpl) GetAlbums(ctx context.Context) (*GetAlbumsResponse, error) {
	const op = "get albums"

	result, err := fetchJSON[GetAlbumsResponse](c, ctx, op, sirenAPIAlbumsURI)
	if err != nil {
		return nil, err
	}

	if err = c.checkEnvelope(op, &result.Data.Envelope); err != nil {
		return nil, err
	}

	if err = result.Data.validate(); err != nil {
		return nil, errkind.Decode(op, err)
	}

	logger.Debugf(ctx, "Catalog lists %d albums", len(result.Data.Data))

	return result.Data, nil
}

// GetAlbumDetail retrieves an album with its song list.
func (c *ClientImpl) GetAlbumDetail(ctx context.Context, albumID uint64) (*GetAlbumDetailResponse, error) {
	op := "get album " + strconv.FormatUint(albumID, 10)

	result, err := fetchJSON[GetAlbumDetailResponse](
		c,
		ctx,
		op,
		sirenAPIAlbumURIPath,
		strconv.FormatUint(albumID, 10),
		sirenAPIAlbumDetailURIPath,
	)
	if err != nil {
		return nil, err
	}

	if err = c.checkEnvelope(op, &result.Data.Envelope); err != nil {
		return nil, err
	}

	if err = result.Data.validate(); err != nil {
		return nil, errkind.Decode(op, err)
	}

	return result.Data, nil
}

// GetSong retrieves a song with its download URL.
func (c *ClientImpl) GetSong(ctx context.Context, songID uint64) (*GetSongResponse, error) {
	op := "get song " + strconv.FormatUint(songID, 10)

	result, err := fetchJSON[GetSongResponse](c, ctx, op, sirenAPISongURIPath, strconv.FormatUint(songID, 10))
	if err != nil {
		return nil, err
	}

	if err = c.checkEnvelope(op, &result.Data.Envelope); err != nil {
		return nil, err
	}

	if err = result.Data.validate(); err != nil {
		return nil, errkind.Decode(op, err)
	}

	return result.Data, nil
}
