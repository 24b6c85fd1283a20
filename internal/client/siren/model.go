package siren

import (
	"fmt"
	"io"
)

// Envelope holds the fields every API response carries next to its payload.
type Envelope struct {
	// Code is the API status code, 0 on success.
	Code int `json:"code"`
	// Message is the API status message, usually empty on success.
	Message string `json:"msg"`
}

// GetAlbumsResponse represents the album catalog.
type GetAlbumsResponse struct {
	Envelope

	// Data lists all albums in catalog order.
	Data []*AlbumSummary `json:"data"`
}

// AlbumSummary is a catalog listing entry of an album.
type AlbumSummary struct {
	// CID is the album identifier.
	CID string `json:"cid"`
	// Name is the album display name.
	Name string `json:"name"`
	// CoverURL is the URL of the album cover image.
	CoverURL string `json:"coverUrl"`
	// Artists lists the album artists.
	Artists []string `json:"artistes"`
}

// GetAlbumDetailResponse represents the details of one album.
type GetAlbumDetailResponse struct {
	Envelope

	// Data contains the album details.
	Data *AlbumData `json:"data"`
}

// AlbumData holds the details of an album including its songs.
type AlbumData struct {
	// CID is the album identifier.
	CID string `json:"cid"`
	// Name is the album display name.
	Name string `json:"name"`
	// Intro is the album description.
	Intro string `json:"intro"`
	// Belong is the franchise the album belongs to.
	Belong string `json:"belong"`
	// CoverURL is the URL of the album cover image.
	CoverURL string `json:"coverUrl"`
	// CoverDeURL is the URL of the wide cover image.
	CoverDeURL string `json:"coverDeUrl"`
	// Songs lists the album songs in track order.
	Songs []*SongSummary `json:"songs"`
}

// SongSummary is a song entry inside an album detail.
type SongSummary struct {
	// CID is the song identifier.
	CID string `json:"cid"`
	// Name is the song display name.
	Name string `json:"name"`
	// Artists lists the song artists.
	Artists []string `json:"artistes"`
}

// GetSongResponse represents the details of one song.
type GetSongResponse struct {
	Envelope

	// Data contains the song details.
	Data *SongData `json:"data"`
}

// SongData holds the details of a song including its download URL.
type SongData struct {
	// CID is the song identifier.
	CID string `json:"cid"`
	// Name is the song display name.
	Name string `json:"name"`
	// AlbumCID is the identifier of the album the song belongs to.
	AlbumCID string `json:"albumCid"`
	// SourceURL is the download URL of the raw WAV audio.
	SourceURL string `json:"sourceUrl"`
	// LyricURL is the URL of the lyrics file, if any.
	LyricURL *string `json:"lyricUrl"`
	// MVURL is the URL of the music video, if any.
	MVURL *string `json:"mvUrl"`
	// MVCoverURL is the URL of the music video cover, if any.
	MVCoverURL *string `json:"mvCoverUrl"`
	// Artists lists the song artists.
	Artists []string `json:"artists"`
}

// DownloadResult represents a streamed remote resource.
type DownloadResult struct {
	// Body is the response body. The caller must close it.
	Body io.ReadCloser
	// TotalBytes is the announced content length, -1 when unknown.
	TotalBytes int64
}

// FetchJSONResult represents the result of fetching JSON data.
type FetchJSONResult[T any] struct {
	// Data contains the decoded payload.
	Data *T
	// StatusCode is the HTTP status code of the response.
	StatusCode int
}

// Lyrics returns the lyric URL or an empty string when the song has none.
func (s *SongData) Lyrics() string {
	if s == nil || s.LyricURL == nil {
		return ""
	}

	return *s.LyricURL
}

func (r *GetAlbumsResponse) validate() error {
	if r.Data == nil {
		return missingField("data")
	}

	for i, album := range r.Data {
		if album == nil {
			return missingField(fmt.Sprintf("data[%d]", i))
		}

		if album.CID == "" {
			return missingField(fmt.Sprintf("data[%d].cid", i))
		}

		if album.Name == "" {
			return missingField(fmt.Sprintf("data[%d].name", i))
		}
	}

	return nil
}

func (r *GetAlbumDetailResponse) validate() error {
	if r.Data == nil {
		return missingField("data")
	}

	if r.Data.CID == "" {
		return missingField("data.cid")
	}

	if r.Data.Name == "" {
		return missingField("data.name")
	}

	if r.Data.CoverURL == "" {
		return missingField("data.coverUrl")
	}

	for i, song := range r.Data.Songs {
		if song == nil || song.CID == "" {
			return missingField(fmt.Sprintf("data.songs[%d].cid", i))
		}

		if song.Name == "" {
			return missingField(fmt.Sprintf("data.songs[%d].name", i))
		}
	}

	return nil
}

func (r *GetSongResponse) validate() error {
	switch {
	case r.Data == nil:
		return missingField("data")
	case r.Data.CID == "":
		return missingField("data.cid")
	case r.Data.Name == "":
		return missingField("data.name")
	case r.Data.AlbumCID == "":
		return missingField("data.albumCid")
	case r.Data.SourceURL == "":
		return missingField("data.sourceUrl")
	}

	return nil
}

func missingField(name string) error {
	return fmt.Errorf("%w: %s", ErrMissingField, name)
}
