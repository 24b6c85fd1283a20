package siren

import (
	"fmt"
	"strconv"

	"github.com/oshokin/siren-grabber/internal/errkind"
)

// ParseScope maps the command-line selectors to a Scope.
// --all wins over the ids; otherwise exactly one positive id is required.
func ParseScope(all bool, albumID, songID uint64) (Scope, error) {
	switch {
	case all:
		return Scope{Kind: ScopeAll}, nil
	case albumID > 0 && songID > 0:
		return Scope{}, errkind.Usage("parse scope", ErrConflictingSelectors)
	case albumID > 0:
		return Scope{Kind: ScopeAlbum, AlbumID: albumID}, nil
	case songID > 0:
		return Scope{Kind: ScopeSong, SongID: songID}, nil
	default:
		return Scope{}, errkind.Usage("parse scope", ErrNoSelector)
	}
}

// String returns a human-readable representation of the Scope.
func (s Scope) String() string {
	switch s.Kind {
	case ScopeAll:
		return "all albums"
	case ScopeAlbum:
		return "album " + strconv.FormatUint(s.AlbumID, 10)
	case ScopeSong:
		return "song " + strconv.FormatUint(s.SongID, 10)
	default:
		return fmt.Sprintf("unknown scope %d", s.Kind)
	}
}

// parseCID converts a catalog identifier into a numeric id.
func parseCID(cid string) (uint64, error) {
	id, err := strconv.ParseUint(cid, 10, 64)
	if err != nil || id == 0 {
		return 0, errkind.Decode("parse identifier", fmt.Errorf("%w: '%s'", ErrInvalidCID, cid))
	}

	return id, nil
}
