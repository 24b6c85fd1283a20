package siren

import "github.com/oshokin/siren-grabber/internal/utils"

// Idempotency decides whether a local artifact is already in place.
type Idempotency interface {
	// Exists reports whether path is present on disk.
	Exists(path string) bool
}

// FilesystemIdempotency treats any existing path as done.
type FilesystemIdempotency struct{}

// NewFilesystemIdempotency creates an Idempotency backed by the local filesystem.
func NewFilesystemIdempotency() Idempotency {
	return &FilesystemIdempotency{}
}

// Exists reports whether a regular file is present at path.
// A failing stat counts as absent, the following write reports the real problem.
func (FilesystemIdempotency) Exists(path string) bool {
	isExist, err := utils.IsFileExist(path)

	return err == nil && isExist
}
