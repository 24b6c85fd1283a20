package siren

const (
	// sirenAPIAlbumsURI is the URI path of the album catalog.
	sirenAPIAlbumsURI = "albums"
	// sirenAPIAlbumURIPath is the URI path component for a single album.
	sirenAPIAlbumURIPath = "album"
	// sirenAPIAlbumDetailURIPath is the URI path suffix for album details.
	sirenAPIAlbumDetailURIPath = "detail"
	// sirenAPISongURIPath is the URI path component for a single song.
	sirenAPISongURIPath = "song"
)

// maxResponseBodySize caps metadata responses. The whole catalog is well below it.
const maxResponseBodySize = 16 << 20

// productName is the product token of the generated User-Agent.
const productName = "siren-grabber"
